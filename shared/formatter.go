package shared

import (
	"strings"
	"unicode"
)

const MaxPreviewLen = 256

// NormalizeInstance reduces whatever the user typed into a bare host name:
// no scheme, no trailing slash, no path, lower-cased.
func NormalizeInstance(instance string) string {
	res := strings.TrimSpace(instance)
	res = strings.TrimPrefix(res, "http://")
	res = strings.TrimPrefix(res, "https://")
	if ix := strings.IndexByte(res, '/'); ix >= 0 {
		res = res[:ix]
	}
	return strings.ToLower(res)
}

func MakeFullMoniker(instance, username string) string {
	return "@" + username + "@" + instance
}

func TruncateWithEllipsis(text string, maxLen int) string {
	// https://stackoverflow.com/a/73939904/7479498
	lastSpaceIx := maxLen
	len := 0
	for i, r := range text {
		if unicode.IsSpace(r) {
			lastSpaceIx = i
		}
		len++
		if len > maxLen {
			return text[:lastSpaceIx] + "…"
		}
	}
	// If here, string is shorter or equal to maxLen
	return text
}
