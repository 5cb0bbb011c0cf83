package server

import (
	"encoding/json"
	"errors"
	"fedi_deck/dal"
	"fedi_deck/dto"
	"fedi_deck/logic"
	"fedi_deck/shared"
	"fedi_deck/texts"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

const oobRedirectUri = "urn:ietf:wg:oauth:2.0:oob"

type apiHandlerGroup struct {
	cfg     *shared.Config
	logger  shared.ILogger
	repo    dal.IRepo
	deck    logic.IDeck
	masto   logic.IMastoClient
	metrics logic.IMetrics
	txt     texts.ITexts
}

func NewApiHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	deck logic.IDeck,
	masto logic.IMastoClient,
	metrics logic.IMetrics,
	txt texts.ITexts,
) IHandlerGroup {
	res := apiHandlerGroup{
		cfg:     cfg,
		logger:  logger,
		repo:    repo,
		deck:    deck,
		masto:   masto,
		metrics: metrics,
		txt:     txt,
	}
	return &res
}

func (hg *apiHandlerGroup) Prefix() string {
	return "/api"
}

func (hg *apiHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", "/accounts", func(w http.ResponseWriter, r *http.Request) { hg.getAccounts(w, r) }},
		{"POST", "/accounts", func(w http.ResponseWriter, r *http.Request) { hg.postAccount(w, r) }},
		{"DELETE", "/accounts/{id}", func(w http.ResponseWriter, r *http.Request) { hg.deleteAccount(w, r) }},
		{"GET", "/timeline/{accountId}", func(w http.ResponseWriter, r *http.Request) { hg.getTimeline(w, r) }},
		{"GET", "/notifications", func(w http.ResponseWriter, r *http.Request) { hg.getNotifications(w, r) }},
		{"GET", "/health", func(w http.ResponseWriter, r *http.Request) { hg.getHealth(w, r) }},
		{"POST", "/refresh", func(w http.ResponseWriter, r *http.Request) { hg.postRefresh(w, r) }},
		{"POST", "/statuses", func(w http.ResponseWriter, r *http.Request) { hg.postStatus(w, r) }},
		{"POST", "/statuses/{id}/{action}", func(w http.ResponseWriter, r *http.Request) { hg.postStatusAction(w, r) }},
		{"POST", "/media", func(w http.ResponseWriter, r *http.Request) { hg.postMedia(w, r) }},
		{"POST", "/auth/start", func(w http.ResponseWriter, r *http.Request) { hg.postAuthStart(w, r) }},
		{"POST", "/auth/complete", func(w http.ResponseWriter, r *http.Request) { hg.postAuthComplete(w, r) }},
	}
}

func (hg *apiHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return hg.authMW(next)
	}
}

func (hg *apiHandlerGroup) authMW(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var apiKey = r.Header.Get(apiKeyHeader)
		found := false
		for _, key := range hg.cfg.Secrets.ApiKeys {
			if apiKey == key {
				found = true
			}
		}
		if !found {
			keyPart := apiKey
			if len(apiKey) > 4 {
				keyPart = apiKey[:4] + "..."
			}
			hg.logger.Warnf("API request with missing or invalid key '%s': %s", keyPart, r.URL.Path)
			writeErrorResponse(w, badApiKeyStr, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ==================== accounts ====================

type respAccount struct {
	Id          string `json:"id"`
	Instance    string `json:"instance"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	AvatarUrl   string `json:"avatar_url"`
	Moniker     string `json:"moniker"`
	ConnStatus  string `json:"conn_status"`
}

func (hg *apiHandlerGroup) getAccounts(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartApiRequestIn("get_accounts")
	defer obs.Finish()
	accounts, err := hg.repo.GetAccounts()
	if err != nil {
		hg.logger.Errorf("Failed to list accounts: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	resp := make([]respAccount, 0, len(accounts))
	for _, acct := range accounts {
		resp = append(resp, respAccount{
			Id:          acct.Id,
			Instance:    acct.Instance,
			Username:    acct.Username,
			DisplayName: acct.DisplayName,
			AvatarUrl:   acct.AvatarUrl,
			Moniker:     shared.MakeFullMoniker(acct.Instance, acct.Username),
			ConnStatus:  hg.deck.ConnStatus(acct.Id).String(),
		})
	}
	writeJsonResponse(hg.logger, w, resp)
}

func (hg *apiHandlerGroup) deleteAccount(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartApiRequestIn("delete_account")
	defer obs.Finish()
	id := mux.Vars(r)["id"]
	acct, err := hg.repo.GetAccount(id)
	if err != nil {
		hg.logger.Errorf("Failed to get account %s: %v", id, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if acct == nil {
		writeErrorResponse(w, notFoundStr, http.StatusNotFound)
		return
	}
	hg.deck.Detach(id)
	if err = hg.repo.DeleteAccount(id); err != nil {
		hg.logger.Errorf("Failed to delete account %s: %v", id, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	hg.logger.Infof("Unlinked account %s", id)
	writeJsonResponse(hg.logger, w, struct {
		Deleted string `json:"deleted"`
	}{id})
}

// ==================== feeds ====================

// respStatus decorates a merged timeline item with the Gyazo capture ids
// found in its content, so the client can render inline previews.
type respStatus struct {
	*dto.Status
	GyazoIds []string `json:"gyazo_ids,omitempty"`
}

func (hg *apiHandlerGroup) getTimeline(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartApiRequestIn("get_timeline")
	defer obs.Finish()
	accountId := mux.Vars(r)["accountId"]
	statuses := hg.deck.Timeline(accountId)
	resp := make([]respStatus, 0, len(statuses))
	for _, status := range statuses {
		content := status.Content
		if status.Reblog != nil {
			content = status.Reblog.Content
		}
		resp = append(resp, respStatus{status, logic.ExtractGyazoIds(content)})
	}
	writeJsonResponse(hg.logger, w, resp)
}

func (hg *apiHandlerGroup) getNotifications(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartApiRequestIn("get_notifications")
	defer obs.Finish()
	writeJsonResponse(hg.logger, w, hg.deck.Notifications())
}

type respHealth struct {
	Accounts   map[string]string `json:"accounts"`
	PollErrors map[string]string `json:"poll_errors"`
	Banner     string            `json:"banner,omitempty"`
}

func (hg *apiHandlerGroup) getHealth(w http.ResponseWriter, r *http.Request) {
	resp := respHealth{
		Accounts:   make(map[string]string),
		PollErrors: hg.deck.PollErrors(),
	}
	for _, id := range hg.deck.TrackedAccountIds() {
		resp.Accounts[id] = hg.deck.ConnStatus(id).String()
	}
	if len(resp.PollErrors) != 0 {
		resp.Banner = hg.txt.WithVals("failed-accounts.txt", map[string]string{
			"count": fmt.Sprintf("%d", len(resp.PollErrors)),
		})
	}
	writeJsonResponse(hg.logger, w, resp)
}

func (hg *apiHandlerGroup) postRefresh(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartApiRequestIn("post_refresh")
	defer obs.Finish()
	hg.deck.ManualRefresh()
	writeJsonResponse(hg.logger, w, struct {
		Refreshed bool `json:"refreshed"`
	}{true})
}

// ==================== statuses ====================

type reqPostStatus struct {
	AccountId string `json:"account_id"`
	dto.PostStatusOptions
}

func (hg *apiHandlerGroup) postStatus(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartApiRequestIn("post_status")
	defer obs.Finish()
	body := readBody(hg.logger, w, r)
	if body == nil {
		return
	}
	var req reqPostStatus
	if err := json.Unmarshal(body, &req); err != nil || req.Status == "" {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	acct := hg.mustGetAccount(w, req.AccountId)
	if acct == nil {
		return
	}
	status, err := hg.masto.PostStatus(acct.Instance, acct.AccessToken, &req.PostStatusOptions)
	if err != nil {
		hg.writeUpstreamError(w, "post status", err)
		return
	}
	writeJsonResponse(hg.logger, w, status)
}

func (hg *apiHandlerGroup) postStatusAction(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartApiRequestIn("post_status_action")
	defer obs.Finish()
	vars := mux.Vars(r)
	statusId, action := vars["id"], vars["action"]
	acct := hg.mustGetAccount(w, r.URL.Query().Get("account"))
	if acct == nil {
		return
	}
	var status *dto.Status
	var err error
	switch action {
	case "favourite":
		status, err = hg.masto.FavouriteStatus(acct.Instance, acct.AccessToken, statusId)
	case "unfavourite":
		status, err = hg.masto.UnfavouriteStatus(acct.Instance, acct.AccessToken, statusId)
	case "reblog":
		status, err = hg.masto.ReblogStatus(acct.Instance, acct.AccessToken, statusId)
	case "unreblog":
		status, err = hg.masto.UnreblogStatus(acct.Instance, acct.AccessToken, statusId)
	default:
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	if err != nil {
		hg.writeUpstreamError(w, action, err)
		return
	}
	writeJsonResponse(hg.logger, w, status)
}

func (hg *apiHandlerGroup) postMedia(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartApiRequestIn("post_media")
	defer obs.Finish()
	acct := hg.mustGetAccount(w, r.URL.Query().Get("account"))
	if acct == nil {
		return
	}
	file, hdr, err := r.FormFile("file")
	if err != nil {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	defer file.Close()
	description := r.FormValue("description")
	attachment, err := hg.masto.UploadMedia(acct.Instance, acct.AccessToken, hdr.Filename, file, description)
	if err != nil {
		hg.writeUpstreamError(w, "upload media", err)
		return
	}
	writeJsonResponse(hg.logger, w, attachment)
}

// ==================== auth ====================

type reqAuthStart struct {
	Instance string `json:"instance"`
}

type respAuthStart struct {
	Instance     string `json:"instance"`
	AuthorizeUrl string `json:"authorize_url"`
	Instructions string `json:"instructions"`
}

func (hg *apiHandlerGroup) postAuthStart(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartApiRequestIn("post_auth_start")
	defer obs.Finish()
	body := readBody(hg.logger, w, r)
	if body == nil {
		return
	}
	var req reqAuthStart
	if err := json.Unmarshal(body, &req); err != nil || req.Instance == "" {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	instance := shared.NormalizeInstance(req.Instance)
	creds, err := hg.masto.RegisterApp(instance, oobRedirectUri)
	if err != nil {
		hg.writeUpstreamError(w, "register app", err)
		return
	}
	pa := dal.PendingAuth{
		CreatedAt:    time.Now(),
		Instance:     instance,
		ClientId:     creds.ClientId,
		ClientSecret: creds.ClientSecret,
	}
	if err = hg.repo.SavePendingAuth(&pa); err != nil {
		hg.logger.Errorf("Failed to save pending auth: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	resp := respAuthStart{
		Instance:     instance,
		AuthorizeUrl: hg.masto.AuthorizationURL(instance, creds.ClientId, oobRedirectUri),
		Instructions: hg.txt.WithVals("auth-instructions.txt", map[string]string{"instance": instance}),
	}
	writeJsonResponse(hg.logger, w, resp)
}

type reqAuthComplete struct {
	Code string `json:"code"`
}

func (hg *apiHandlerGroup) postAuthComplete(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartApiRequestIn("post_auth_complete")
	defer obs.Finish()
	body := readBody(hg.logger, w, r)
	if body == nil {
		return
	}
	var req reqAuthComplete
	if err := json.Unmarshal(body, &req); err != nil || req.Code == "" {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	pa, err := hg.repo.GetPendingAuth()
	if err != nil {
		hg.logger.Errorf("Failed to get pending auth: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if pa == nil {
		writeErrorResponse(w, "no authorization in progress", http.StatusConflict)
		return
	}
	token, err := hg.masto.ExchangeToken(pa.Instance, pa.ClientId, pa.ClientSecret, oobRedirectUri, req.Code)
	if err != nil {
		hg.writeUpstreamError(w, "exchange token", err)
		return
	}
	hg.linkAccount(w, pa.Instance, token, pa.ClientId, pa.ClientSecret, true)
}

type reqPostAccount struct {
	Instance    string `json:"instance"`
	AccessToken string `json:"access_token"`
}

// postAccount links an account directly from a pre-existing access token,
// bypassing the interactive OAuth flow.
func (hg *apiHandlerGroup) postAccount(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartApiRequestIn("post_account")
	defer obs.Finish()
	body := readBody(hg.logger, w, r)
	if body == nil {
		return
	}
	var req reqPostAccount
	if err := json.Unmarshal(body, &req); err != nil || req.Instance == "" || req.AccessToken == "" {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	instance := shared.NormalizeInstance(req.Instance)
	hg.linkAccount(w, instance, req.AccessToken, "", "", false)
}

// linkAccount verifies the token against the instance, persists the account
// if it is not linked yet, and attaches a new account to the deck.
func (hg *apiHandlerGroup) linkAccount(w http.ResponseWriter, instance, token, clientId, clientSecret string, clearPending bool) {
	user, err := hg.masto.VerifyCredentials(instance, token)
	if err != nil {
		hg.writeUpstreamError(w, "verify credentials", err)
		return
	}
	acct := dal.Account{
		Id:           shared.AccountKey(instance, user.Id),
		CreatedAt:    time.Now(),
		Instance:     instance,
		RemoteId:     user.Id,
		Username:     user.Username,
		DisplayName:  user.DisplayName,
		AvatarUrl:    user.Avatar,
		AccessToken:  token,
		ClientId:     clientId,
		ClientSecret: clientSecret,
	}
	isNew, err := hg.repo.AddAccountIfNotExist(&acct)
	if err != nil {
		hg.logger.Errorf("Failed to store account: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if clearPending {
		_ = hg.repo.ClearPendingAuth()
	}
	if isNew {
		hg.deck.Attach(&acct)
		hg.logger.Infof("Linked new account %s (%s)", acct.Id, shared.MakeFullMoniker(acct.Instance, acct.Username))
	}
	writeJsonResponse(hg.logger, w, respAccount{
		Id:          acct.Id,
		Instance:    acct.Instance,
		Username:    acct.Username,
		DisplayName: acct.DisplayName,
		AvatarUrl:   acct.AvatarUrl,
		Moniker:     shared.MakeFullMoniker(acct.Instance, acct.Username),
		ConnStatus:  hg.deck.ConnStatus(acct.Id).String(),
	})
}

// ==================== helpers ====================

func (hg *apiHandlerGroup) mustGetAccount(w http.ResponseWriter, id string) *dal.Account {
	if id == "" {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return nil
	}
	acct, err := hg.repo.GetAccount(id)
	if err != nil {
		hg.logger.Errorf("Failed to get account %s: %v", id, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return nil
	}
	if acct == nil {
		writeErrorResponse(w, notFoundStr, http.StatusNotFound)
		return nil
	}
	return acct
}

func (hg *apiHandlerGroup) writeUpstreamError(w http.ResponseWriter, op string, err error) {
	hg.logger.Warnf("Upstream request failed (%s): %v", op, err)
	code := http.StatusBadGateway
	var fe *logic.FetchError
	if errors.As(err, &fe) && fe.StatusCode != 0 {
		code = fe.StatusCode
	}
	writeErrorResponse(w, err.Error(), code)
}
