package dal

import "time"

// Account is a linked account as persisted locally. Id is the murmur3 key
// of instance + remote user id; the access token never leaves this process.
type Account struct {
	Id           string
	CreatedAt    time.Time
	Instance     string
	RemoteId     string
	Username     string
	DisplayName  string
	AvatarUrl    string
	AccessToken  string
	ClientId     string
	ClientSecret string
}

// PendingAuth is the single in-flight OAuth handshake: app credentials
// registered with an instance while the user is off authorizing in a
// browser.
type PendingAuth struct {
	CreatedAt    time.Time
	Instance     string
	ClientId     string
	ClientSecret string
}
