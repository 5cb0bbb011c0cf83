package test

import (
	"encoding/json"
	"fedi_deck/dal"
	"fedi_deck/dto"
	"fedi_deck/logic"
	"fedi_deck/server"
	"fedi_deck/shared"
	"fedi_deck/test/mocks"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testApiKey = "test-api-key"

type apiHarness struct {
	cfg         *shared.Config
	mockLogger  *mocks.MockILogger
	mockRepo    *mocks.MockIRepo
	mockDeck    *mocks.MockIDeck
	mockMasto   *mocks.MockIMastoClient
	mockMetrics *mocks.MockIMetrics
	mockTexts   *mocks.MockITexts
	router      *mux.Router
}

func setupApiTest(t *testing.T) (*gomock.Controller, *apiHarness) {

	ctrl := gomock.NewController(t)

	h := &apiHarness{
		cfg: &shared.Config{
			Secrets: shared.Secrets{ApiKeys: []string{testApiKey}},
		},
		mockLogger:  mocks.NewMockILogger(ctrl),
		mockRepo:    mocks.NewMockIRepo(ctrl),
		mockDeck:    mocks.NewMockIDeck(ctrl),
		mockMasto:   mocks.NewMockIMastoClient(ctrl),
		mockMetrics: mocks.NewMockIMetrics(ctrl),
		mockTexts:   mocks.NewMockITexts(ctrl),
	}
	setupDummyLogger(h.mockLogger)
	setupFakeTexts(h.mockTexts)

	obs := mocks.NewMockIRequestObserver(ctrl)
	obs.EXPECT().Finish().AnyTimes()
	h.mockMetrics.EXPECT().StartApiRequestIn(gomock.Any()).Return(obs).AnyTimes()

	group := server.NewApiHandlerGroup(h.cfg, h.mockLogger, h.mockRepo, h.mockDeck,
		h.mockMasto, h.mockMetrics, h.mockTexts)
	h.router = server.NewMux([]server.IHandlerGroup{group}, h.mockLogger)

	return ctrl, h
}

func (h *apiHarness) request(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	req.Header.Set("X-API-KEY", testApiKey)
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	return rec
}

func TestApi_RejectsMissingKey(t *testing.T) {

	ctrl, h := setupApiTest(t)
	defer ctrl.Finish()

	req := httptest.NewRequest("GET", "/api/accounts", nil)
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestApi_GetAccounts(t *testing.T) {

	ctrl, h := setupApiTest(t)
	defer ctrl.Finish()

	h.mockRepo.EXPECT().GetAccounts().Return([]*dal.Account{
		{Id: "a1", Instance: "fedi.example.org", Username: "alice"},
	}, nil)
	h.mockDeck.EXPECT().ConnStatus("a1").Return(logic.CsStreaming)

	rec := h.request("GET", "/api/accounts", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "a1", resp[0]["id"])
	assert.Equal(t, "@alice@fedi.example.org", resp[0]["moniker"])
	assert.Equal(t, "streaming", resp[0]["conn_status"])
}

func TestApi_GetTimelineWithGyazoIds(t *testing.T) {

	ctrl, h := setupApiTest(t)
	defer ctrl.Finish()

	status := makeStatus("s1", 1)
	status.Content = `<p><a href="https://gyazo.com/0123abcd">pic</a></p>`
	h.mockDeck.EXPECT().Timeline("a1").Return([]*dto.Status{status})

	rec := h.request("GET", "/api/timeline/a1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []struct {
		Id       string   `json:"id"`
		GyazoIds []string `json:"gyazo_ids"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "s1", resp[0].Id)
	assert.Equal(t, []string{"0123abcd"}, resp[0].GyazoIds)
}

func TestApi_HealthWithFailures(t *testing.T) {

	ctrl, h := setupApiTest(t)
	defer ctrl.Finish()

	h.mockDeck.EXPECT().PollErrors().Return(map[string]string{"a1": "api down"})
	h.mockDeck.EXPECT().TrackedAccountIds().Return([]string{"a1"})
	h.mockDeck.EXPECT().ConnStatus("a1").Return(logic.CsPolling)

	rec := h.request("GET", "/api/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Accounts   map[string]string `json:"accounts"`
		PollErrors map[string]string `json:"poll_errors"`
		Banner     string            `json:"banner"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "polling", resp.Accounts["a1"])
	assert.Equal(t, "api down", resp.PollErrors["a1"])
	assert.Contains(t, resp.Banner, "count\t1")
}

func TestApi_Refresh(t *testing.T) {

	ctrl, h := setupApiTest(t)
	defer ctrl.Finish()

	h.mockDeck.EXPECT().ManualRefresh()
	rec := h.request("POST", "/api/refresh", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestApi_AuthStart(t *testing.T) {

	ctrl, h := setupApiTest(t)
	defer ctrl.Finish()

	h.mockMasto.EXPECT().RegisterApp("fedi.example.org", gomock.Any()).
		Return(&dto.AppCredentials{ClientId: "cid", ClientSecret: "csec"}, nil)
	h.mockRepo.EXPECT().SavePendingAuth(gomock.Any()).
		DoAndReturn(func(pa *dal.PendingAuth) error {
			assert.Equal(t, "fedi.example.org", pa.Instance)
			assert.Equal(t, "cid", pa.ClientId)
			return nil
		})
	h.mockMasto.EXPECT().AuthorizationURL("fedi.example.org", "cid", gomock.Any()).
		Return("https://fedi.example.org/oauth/authorize?x=1")

	// Instance gets normalized before anything else happens
	rec := h.request("POST", "/api/auth/start", `{"instance": "https://fedi.example.org/"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Instance     string `json:"instance"`
		AuthorizeUrl string `json:"authorize_url"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "fedi.example.org", resp.Instance)
	assert.Contains(t, resp.AuthorizeUrl, "/oauth/authorize")
}

func TestApi_AuthCompleteLinksAccount(t *testing.T) {

	ctrl, h := setupApiTest(t)
	defer ctrl.Finish()

	h.mockRepo.EXPECT().GetPendingAuth().Return(&dal.PendingAuth{
		Instance: "fedi.example.org", ClientId: "cid", ClientSecret: "csec",
	}, nil)
	h.mockMasto.EXPECT().ExchangeToken("fedi.example.org", "cid", "csec", gomock.Any(), "the-code").
		Return("the-token", nil)
	h.mockMasto.EXPECT().VerifyCredentials("fedi.example.org", "the-token").
		Return(&dto.User{Id: "42", Username: "alice", DisplayName: "Alice"}, nil)
	h.mockRepo.EXPECT().AddAccountIfNotExist(gomock.Any()).
		DoAndReturn(func(acct *dal.Account) (bool, error) {
			assert.Equal(t, shared.AccountKey("fedi.example.org", "42"), acct.Id)
			assert.Equal(t, "the-token", acct.AccessToken)
			return true, nil
		})
	h.mockRepo.EXPECT().ClearPendingAuth().Return(nil)
	h.mockDeck.EXPECT().Attach(gomock.Any())
	h.mockDeck.EXPECT().ConnStatus(gomock.Any()).Return(logic.CsConnecting)

	rec := h.request("POST", "/api/auth/complete", `{"code": "the-code"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp["username"])
}

func TestApi_PostAccountLinksWithExistingToken(t *testing.T) {

	ctrl, h := setupApiTest(t)
	defer ctrl.Finish()

	h.mockMasto.EXPECT().VerifyCredentials("fedi.example.org", "my-token").
		Return(&dto.User{Id: "42", Username: "alice", DisplayName: "Alice"}, nil)
	h.mockRepo.EXPECT().AddAccountIfNotExist(gomock.Any()).
		DoAndReturn(func(acct *dal.Account) (bool, error) {
			assert.Equal(t, shared.AccountKey("fedi.example.org", "42"), acct.Id)
			assert.Equal(t, "my-token", acct.AccessToken)
			assert.Empty(t, acct.ClientId)
			return true, nil
		})
	h.mockDeck.EXPECT().Attach(gomock.Any())
	h.mockDeck.EXPECT().ConnStatus(gomock.Any()).Return(logic.CsConnecting)

	rec := h.request("POST", "/api/accounts",
		`{"instance": "https://fedi.example.org/", "access_token": "my-token"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "@alice@fedi.example.org", resp["moniker"])
}

func TestApi_PostAccountRejectsBadBody(t *testing.T) {

	ctrl, h := setupApiTest(t)
	defer ctrl.Finish()

	rec := h.request("POST", "/api/accounts", `{"instance": "fedi.example.org"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestApi_AuthCompleteWithoutPending(t *testing.T) {

	ctrl, h := setupApiTest(t)
	defer ctrl.Finish()

	h.mockRepo.EXPECT().GetPendingAuth().Return(nil, nil)
	rec := h.request("POST", "/api/auth/complete", `{"code": "whatever"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestApi_StatusAction(t *testing.T) {

	ctrl, h := setupApiTest(t)
	defer ctrl.Finish()

	acct := makeAccount("a1", "fedi.example.org")
	h.mockRepo.EXPECT().GetAccount("a1").Return(acct, nil)
	h.mockMasto.EXPECT().FavouriteStatus(acct.Instance, acct.AccessToken, "s1").
		Return(makeStatus("s1", 1), nil)

	rec := h.request("POST", "/api/statuses/s1/favourite?account=a1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestApi_StatusActionUnknownVerb(t *testing.T) {

	ctrl, h := setupApiTest(t)
	defer ctrl.Finish()

	acct := makeAccount("a1", "fedi.example.org")
	h.mockRepo.EXPECT().GetAccount("a1").Return(acct, nil)
	rec := h.request("POST", "/api/statuses/s1/explode?account=a1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestApi_DeleteAccount(t *testing.T) {

	ctrl, h := setupApiTest(t)
	defer ctrl.Finish()

	acct := makeAccount("a1", "fedi.example.org")
	h.mockRepo.EXPECT().GetAccount("a1").Return(acct, nil)
	h.mockDeck.EXPECT().Detach("a1")
	h.mockRepo.EXPECT().DeleteAccount("a1").Return(nil)

	rec := h.request("DELETE", "/api/accounts/a1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestApi_DeleteUnknownAccount(t *testing.T) {

	ctrl, h := setupApiTest(t)
	defer ctrl.Finish()

	h.mockRepo.EXPECT().GetAccount("nope").Return(nil, nil)
	rec := h.request("DELETE", "/api/accounts/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
