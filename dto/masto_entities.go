package dto

import "time"

// Wire shapes of the remote platform's REST and streaming payloads. The
// engine treats them as opaque values keyed by id and created_at.

type User struct {
	Id           string `json:"id"`
	Username     string `json:"username"`
	Acct         string `json:"acct"`
	DisplayName  string `json:"display_name"`
	Avatar       string `json:"avatar"`
	AvatarStatic string `json:"avatar_static"`
	Url          string `json:"url"`
}

type MediaAttachment struct {
	Id          string  `json:"id"`
	Type        string  `json:"type"`
	Url         string  `json:"url"`
	PreviewUrl  string  `json:"preview_url"`
	Description *string `json:"description"`
}

type Status struct {
	Id               string            `json:"id"`
	CreatedAt        time.Time         `json:"created_at"`
	Content          string            `json:"content"`
	Account          User              `json:"account"`
	Reblog           *Status           `json:"reblog"`
	MediaAttachments []MediaAttachment `json:"media_attachments"`
	FavouritesCount  int               `json:"favourites_count"`
	ReblogsCount     int               `json:"reblogs_count"`
	RepliesCount     int               `json:"replies_count"`
	Url              string            `json:"url"`
	SpoilerText      string            `json:"spoiler_text"`
	Sensitive        bool              `json:"sensitive"`
	Favourited       bool              `json:"favourited"`
	Reblogged        bool              `json:"reblogged"`
	Visibility       string            `json:"visibility"`
}

type Notification struct {
	Id        string    `json:"id"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	Account   User      `json:"account"`
	Status    *Status   `json:"status,omitempty"`
}

// UnifiedNotification tags a notification with the linked account it was
// delivered to; that's what the cross-account merged view is made of.
type UnifiedNotification struct {
	Notification *Notification `json:"notification"`
	AccountId    string        `json:"account_id"`
	Instance     string        `json:"instance"`
	Preview      string        `json:"preview,omitempty"`
}

// StreamEvent is the raw envelope arriving on the streaming connection:
// a kind tag plus an opaque payload (JSON text, or a bare id for deletes).
type StreamEvent struct {
	Event   string `json:"event"`
	Payload string `json:"payload"`
}

type AppCredentials struct {
	ClientId     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

type PostStatusOptions struct {
	Status      string   `json:"status"`
	Visibility  string   `json:"visibility,omitempty"`
	SpoilerText string   `json:"spoiler_text,omitempty"`
	Sensitive   bool     `json:"sensitive,omitempty"`
	MediaIds    []string `json:"media_ids,omitempty"`
	InReplyToId string   `json:"in_reply_to_id,omitempty"`
}

// InstanceInfo is the part of GET /api/v2/instance the engine cares about.
type InstanceInfo struct {
	Configuration struct {
		Urls struct {
			Streaming string `json:"streaming"`
		} `json:"urls"`
	} `json:"configuration"`
}
