package shared

import (
	"github.com/spaolacci/murmur3"
	"strconv"
)

// AccountKey derives the stable local identifier for a linked account.
// Remote user ids are only unique per instance, so the key hashes both.
func AccountKey(instance, remoteUserId string) string {
	hasher := murmur3.New64()
	_, _ = hasher.Write([]byte(NormalizeInstance(instance)))
	_, _ = hasher.Write([]byte{'\t'})
	_, _ = hasher.Write([]byte(remoteUserId))
	return strconv.FormatUint(hasher.Sum64(), 16)
}
