package shared

import (
	"fmt"
	"net/url"
	"strconv"
)

// ApiBuilder builds the remote platform's REST and OAuth endpoint URLs for
// one instance host.
type ApiBuilder struct {
	Instance string
}

func (ab *ApiBuilder) Apps() string {
	return fmt.Sprintf("https://%s/api/v1/apps", ab.Instance)
}

func (ab *ApiBuilder) OauthAuthorize() string {
	return fmt.Sprintf("https://%s/oauth/authorize", ab.Instance)
}

func (ab *ApiBuilder) OauthToken() string {
	return fmt.Sprintf("https://%s/oauth/token", ab.Instance)
}

func (ab *ApiBuilder) VerifyCredentials() string {
	return fmt.Sprintf("https://%s/api/v1/accounts/verify_credentials", ab.Instance)
}

func (ab *ApiBuilder) InstanceV2() string {
	return fmt.Sprintf("https://%s/api/v2/instance", ab.Instance)
}

func (ab *ApiBuilder) HomeTimeline(sinceId string, limit int) string {
	return ab.withPaging(fmt.Sprintf("https://%s/api/v1/timelines/home", ab.Instance), sinceId, limit)
}

func (ab *ApiBuilder) Notifications(sinceId string, limit int) string {
	return ab.withPaging(fmt.Sprintf("https://%s/api/v1/notifications", ab.Instance), sinceId, limit)
}

func (ab *ApiBuilder) Statuses() string {
	return fmt.Sprintf("https://%s/api/v1/statuses", ab.Instance)
}

func (ab *ApiBuilder) StatusAction(statusId, action string) string {
	return fmt.Sprintf("https://%s/api/v1/statuses/%s/%s", ab.Instance, url.PathEscape(statusId), action)
}

func (ab *ApiBuilder) Media() string {
	return fmt.Sprintf("https://%s/api/v2/media", ab.Instance)
}

// StreamingFallback is the conventional streaming address, used when the
// instance does not advertise one.
func (ab *ApiBuilder) StreamingFallback() string {
	return fmt.Sprintf("wss://%s/api/v1/streaming", ab.Instance)
}

func (ab *ApiBuilder) withPaging(base, sinceId string, limit int) string {
	q := url.Values{}
	if sinceId != "" {
		q.Set("since_id", sinceId)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if len(q) == 0 {
		return base
	}
	return base + "?" + q.Encode()
}
