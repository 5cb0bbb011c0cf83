package logic

import (
	"fedi_deck/dto"
	"fedi_deck/shared"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var stripPolicy = bluemonday.StrictPolicy()

// StripHtml reduces an HTML fragment to its plain text, entities decoded.
func StripHtml(raw string) string {
	res := stripPolicy.Sanitize(raw)
	res = html.UnescapeString(res)
	res = strings.TrimSpace(res)
	return res
}

// NotificationPreview makes the short plain-text summary shown next to a
// notification: the attached status's content, stripped and truncated.
func NotificationPreview(notif *dto.Notification) string {
	if notif.Status == nil {
		return ""
	}
	text := StripHtml(notif.Status.Content)
	return shared.TruncateWithEllipsis(text, shared.MaxPreviewLen)
}
