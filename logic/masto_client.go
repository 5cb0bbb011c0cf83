package logic

import (
	"bytes"
	"encoding/json"
	"fedi_deck/dto"
	"fedi_deck/shared"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_masto_client.go -package mocks fedi_deck/logic IMastoClient

const requestTimeoutSec = 10
const oauthScopes = "read write"
const appName = "FediDeck"

// FetchError is what a failed remote call surfaces: which operation, and
// the HTTP status if the request made it that far.
type FetchError struct {
	Op         string
	StatusCode int
	Wrapped    error
}

func (e *FetchError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s failed: %v", e.Op, e.Wrapped)
	}
	return fmt.Sprintf("%s failed with status %d", e.Op, e.StatusCode)
}

func (e *FetchError) Unwrap() error {
	return e.Wrapped
}

// IMastoClient talks to the remote platform's REST endpoints. Instance is
// always a bare host name; token is the account's OAuth bearer token.
type IMastoClient interface {
	RegisterApp(instance, redirectUri string) (*dto.AppCredentials, error)
	AuthorizationURL(instance, clientId, redirectUri string) string
	ExchangeToken(instance, clientId, clientSecret, redirectUri, code string) (string, error)
	VerifyCredentials(instance, token string) (*dto.User, error)
	ResolveStreamingEndpoint(instance string) (string, error)
	GetHomeTimeline(instance, token, sinceId string, limit int) ([]*dto.Status, error)
	GetNotifications(instance, token, sinceId string, limit int) ([]*dto.Notification, error)
	PostStatus(instance, token string, opts *dto.PostStatusOptions) (*dto.Status, error)
	FavouriteStatus(instance, token, statusId string) (*dto.Status, error)
	UnfavouriteStatus(instance, token, statusId string) (*dto.Status, error)
	ReblogStatus(instance, token, statusId string) (*dto.Status, error)
	UnreblogStatus(instance, token, statusId string) (*dto.Status, error)
	UploadMedia(instance, token, fileName string, file io.Reader, description string) (*dto.MediaAttachment, error)
}

type mastoClient struct {
	cfg       *shared.Config
	logger    shared.ILogger
	userAgent shared.IUserAgent
}

func NewMastoClient(cfg *shared.Config, logger shared.ILogger, userAgent shared.IUserAgent) IMastoClient {
	return &mastoClient{
		cfg:       cfg,
		logger:    logger,
		userAgent: userAgent,
	}
}

func (mc *mastoClient) doRequest(op, method, urlStr, token string, body io.Reader, contentType string) ([]byte, error) {

	var req *http.Request
	var err error
	if req, err = http.NewRequest(method, urlStr, body); err != nil {
		return nil, &FetchError{Op: op, Wrapped: err}
	}
	mc.userAgent.AddUserAgent(req)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	client := http.Client{}
	client.Timeout = requestTimeoutSec * time.Second
	var resp *http.Response
	if resp, err = client.Do(req); err != nil {
		return nil, &FetchError{Op: op, Wrapped: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{Op: op, StatusCode: resp.StatusCode}
	}
	var respBody []byte
	if respBody, err = io.ReadAll(resp.Body); err != nil {
		return nil, &FetchError{Op: op, Wrapped: err}
	}
	return respBody, nil
}

func (mc *mastoClient) getJson(op, urlStr, token string, out any) error {
	body, err := mc.doRequest(op, "GET", urlStr, token, nil, "")
	if err != nil {
		return err
	}
	if err = json.Unmarshal(body, out); err != nil {
		return &FetchError{Op: op, Wrapped: err}
	}
	return nil
}

func (mc *mastoClient) postJson(op, urlStr, token string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return &FetchError{Op: op, Wrapped: err}
		}
		body = bytes.NewReader(buf)
	}
	respBody, err := mc.doRequest(op, "POST", urlStr, token, body, "application/json")
	if err != nil {
		return err
	}
	if out != nil {
		if err = json.Unmarshal(respBody, out); err != nil {
			return &FetchError{Op: op, Wrapped: err}
		}
	}
	return nil
}

func (mc *mastoClient) RegisterApp(instance, redirectUri string) (*dto.AppCredentials, error) {
	ab := shared.ApiBuilder{Instance: instance}
	payload := map[string]string{
		"client_name":   appName,
		"redirect_uris": redirectUri,
		"scopes":        oauthScopes,
	}
	var creds dto.AppCredentials
	if err := mc.postJson("register app", ab.Apps(), "", payload, &creds); err != nil {
		return nil, err
	}
	return &creds, nil
}

func (mc *mastoClient) AuthorizationURL(instance, clientId, redirectUri string) string {
	ab := shared.ApiBuilder{Instance: instance}
	q := url.Values{}
	q.Set("client_id", clientId)
	q.Set("redirect_uri", redirectUri)
	q.Set("response_type", "code")
	q.Set("scope", oauthScopes)
	return ab.OauthAuthorize() + "?" + q.Encode()
}

func (mc *mastoClient) ExchangeToken(instance, clientId, clientSecret, redirectUri, code string) (string, error) {
	ab := shared.ApiBuilder{Instance: instance}
	payload := map[string]string{
		"client_id":     clientId,
		"client_secret": clientSecret,
		"redirect_uri":  redirectUri,
		"grant_type":    "authorization_code",
		"code":          code,
		"scope":         oauthScopes,
	}
	var res struct {
		AccessToken string `json:"access_token"`
	}
	if err := mc.postJson("exchange token", ab.OauthToken(), "", payload, &res); err != nil {
		return "", err
	}
	return res.AccessToken, nil
}

func (mc *mastoClient) VerifyCredentials(instance, token string) (*dto.User, error) {
	ab := shared.ApiBuilder{Instance: instance}
	var user dto.User
	if err := mc.getJson("verify credentials", ab.VerifyCredentials(), token, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (mc *mastoClient) ResolveStreamingEndpoint(instance string) (string, error) {
	ab := shared.ApiBuilder{Instance: instance}
	var info dto.InstanceInfo
	if err := mc.getJson("resolve streaming endpoint", ab.InstanceV2(), "", &info); err != nil {
		return "", err
	}
	if info.Configuration.Urls.Streaming != "" {
		return info.Configuration.Urls.Streaming, nil
	}
	return ab.StreamingFallback(), nil
}

func (mc *mastoClient) GetHomeTimeline(instance, token, sinceId string, limit int) ([]*dto.Status, error) {
	ab := shared.ApiBuilder{Instance: instance}
	var statuses []*dto.Status
	if err := mc.getJson("get timeline", ab.HomeTimeline(sinceId, limit), token, &statuses); err != nil {
		return nil, err
	}
	return statuses, nil
}

func (mc *mastoClient) GetNotifications(instance, token, sinceId string, limit int) ([]*dto.Notification, error) {
	ab := shared.ApiBuilder{Instance: instance}
	var notifs []*dto.Notification
	if err := mc.getJson("get notifications", ab.Notifications(sinceId, limit), token, &notifs); err != nil {
		return nil, err
	}
	return notifs, nil
}

func (mc *mastoClient) PostStatus(instance, token string, opts *dto.PostStatusOptions) (*dto.Status, error) {
	ab := shared.ApiBuilder{Instance: instance}
	var status dto.Status
	if err := mc.postJson("post status", ab.Statuses(), token, opts, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (mc *mastoClient) statusAction(op, instance, token, statusId, action string) (*dto.Status, error) {
	ab := shared.ApiBuilder{Instance: instance}
	var status dto.Status
	if err := mc.postJson(op, ab.StatusAction(statusId, action), token, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (mc *mastoClient) FavouriteStatus(instance, token, statusId string) (*dto.Status, error) {
	return mc.statusAction("favourite status", instance, token, statusId, "favourite")
}

func (mc *mastoClient) UnfavouriteStatus(instance, token, statusId string) (*dto.Status, error) {
	return mc.statusAction("unfavourite status", instance, token, statusId, "unfavourite")
}

func (mc *mastoClient) ReblogStatus(instance, token, statusId string) (*dto.Status, error) {
	return mc.statusAction("reblog status", instance, token, statusId, "reblog")
}

func (mc *mastoClient) UnreblogStatus(instance, token, statusId string) (*dto.Status, error) {
	return mc.statusAction("unreblog status", instance, token, statusId, "unreblog")
}

func (mc *mastoClient) UploadMedia(instance, token, fileName string, file io.Reader, description string) (*dto.MediaAttachment, error) {

	op := "upload media"
	ab := shared.ApiBuilder{Instance: instance}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", fileName)
	if err != nil {
		return nil, &FetchError{Op: op, Wrapped: err}
	}
	if _, err = io.Copy(part, file); err != nil {
		return nil, &FetchError{Op: op, Wrapped: err}
	}
	if description != "" {
		if err = mw.WriteField("description", description); err != nil {
			return nil, &FetchError{Op: op, Wrapped: err}
		}
	}
	if err = mw.Close(); err != nil {
		return nil, &FetchError{Op: op, Wrapped: err}
	}

	respBody, err := mc.doRequest(op, "POST", ab.Media(), token, &buf, mw.FormDataContentType())
	if err != nil {
		return nil, err
	}
	var attachment dto.MediaAttachment
	if err = json.Unmarshal(respBody, &attachment); err != nil {
		return nil, &FetchError{Op: op, Wrapped: err}
	}
	return &attachment, nil
}
