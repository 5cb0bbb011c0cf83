package test

import (
	"errors"
	"fedi_deck/dal"
	"fedi_deck/dto"
	"fedi_deck/logic"
	"fedi_deck/shared"
	"fedi_deck/test/mocks"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type deckHarness struct {
	cfg         *shared.Config
	mockLogger  *mocks.MockILogger
	mockMasto   *mocks.MockIMastoClient
	mockDialer  *mocks.MockIStreamDialer
	mockMetrics *mocks.MockIMetrics
}

func setupDeckTest(t *testing.T) (*gomock.Controller, *deckHarness, logic.IDeck) {

	ctrl := gomock.NewController(t)

	h := &deckHarness{
		cfg: &shared.Config{
			Polling: shared.PollingConfig{
				IntervalMs:       3600000,
				TimelinePageSize: 40,
				NotifPageSize:    30,
			},
			Streaming: shared.StreamingConfig{
				BackoffBaseMs:        1,
				BackoffMaxMs:         4,
				MaxReconnectAttempts: 3,
			},
		},
		mockLogger:  mocks.NewMockILogger(ctrl),
		mockMasto:   mocks.NewMockIMastoClient(ctrl),
		mockDialer:  mocks.NewMockIStreamDialer(ctrl),
		mockMetrics: mocks.NewMockIMetrics(ctrl),
	}
	setupDummyLogger(h.mockLogger)
	setupDummyMetrics(h.mockMetrics)

	deck := logic.NewDeck(h.cfg, h.mockLogger, h.mockMasto, h.mockDialer, h.mockMetrics)
	return ctrl, h, deck
}

func makeAccount(id, instance string) *dal.Account {
	return &dal.Account{
		Id:          id,
		Instance:    instance,
		RemoteId:    "u-" + id,
		Username:    "user_" + id,
		AccessToken: "token-" + id,
	}
}

// expectStreamingAccount wires the masto and dialer mocks so that the
// given account connects successfully; the dialed callbacks come out on
// the returned channel.
func (h *deckHarness) expectStreamingAccount(ctrl *gomock.Controller, acct *dal.Account,
	polled []*dto.Status, polledNotifs []*dto.Notification) chan logic.StreamCallbacks {

	cbCh := make(chan logic.StreamCallbacks, 1)
	conn := mocks.NewMockIStreamConn(ctrl)
	conn.EXPECT().Close().AnyTimes()

	h.mockMasto.EXPECT().ResolveStreamingEndpoint(acct.Instance).
		Return("wss://"+acct.Instance+"/api/v1/streaming", nil).AnyTimes()
	h.mockDialer.EXPECT().Dial(hasPrefix("wss://"+acct.Instance+"/"), gomock.Any()).
		DoAndReturn(func(urlStr string, cb logic.StreamCallbacks) (logic.IStreamConn, error) {
			cbCh <- cb
			cb.OnOpen()
			return conn, nil
		}).AnyTimes()
	h.mockMasto.EXPECT().GetHomeTimeline(acct.Instance, acct.AccessToken, gomock.Any(), 40).
		Return(polled, nil).AnyTimes()
	h.mockMasto.EXPECT().GetNotifications(acct.Instance, acct.AccessToken, gomock.Any(), 30).
		Return(polledNotifs, nil).AnyTimes()

	return cbCh
}

func TestDeck_MergesPushedAndPolledWithoutDuplicates(t *testing.T) {

	ctrl, h, deck := setupDeckTest(t)
	defer ctrl.Finish()

	acct := makeAccount("a1", "fedi.example.org")
	polled := []*dto.Status{makeStatus("p2", 20), makeStatus("p1", 10)}
	cbCh := h.expectStreamingAccount(ctrl, acct, polled, nil)

	deck.Attach(acct)
	defer deck.Detach(acct.Id)
	cb := <-cbCh

	require.Eventually(t, func() bool { return len(deck.Timeline(acct.Id)) == 2 }, waitFor, tick)
	assert.Equal(t, []string{"p2", "p1"}, timelineIds(deck.Timeline(acct.Id)))

	// A pushed status lands in timestamp order among the polled ones
	cb.OnMessage(makeStatusFrame(makeStatus("p3", 30)))
	require.Eventually(t, func() bool { return len(deck.Timeline(acct.Id)) == 3 }, waitFor, tick)
	assert.Equal(t, []string{"p3", "p2", "p1"}, timelineIds(deck.Timeline(acct.Id)))

	// A pushed copy of an id already seen via polling replaces it instead
	// of duplicating it
	pushedCopy := makeStatus("p2", 20)
	pushedCopy.Content = "<p>edited</p>"
	cb.OnMessage(makeStatusFrame(pushedCopy))
	require.Eventually(t, func() bool {
		tl := deck.Timeline(acct.Id)
		return len(tl) == 3 && tl[1].Content == "<p>edited</p>"
	}, waitFor, tick)
	assert.Equal(t, []string{"p3", "p2", "p1"}, timelineIds(deck.Timeline(acct.Id)))
}

func TestDeck_DeleteRemovesPushedCopyOnly(t *testing.T) {

	ctrl, h, deck := setupDeckTest(t)
	defer ctrl.Finish()

	acct := makeAccount("a1", "fedi.example.org")
	polled := []*dto.Status{makeStatus("p1", 10)}
	cbCh := h.expectStreamingAccount(ctrl, acct, polled, nil)

	deck.Attach(acct)
	defer deck.Detach(acct.Id)
	cb := <-cbCh

	cb.OnMessage(makeStatusFrame(makeStatus("p2", 20)))
	require.Eventually(t, func() bool { return len(deck.Timeline(acct.Id)) == 2 }, waitFor, tick)

	cb.OnMessage(makeDeleteFrame("p2"))
	require.Eventually(t, func() bool { return len(deck.Timeline(acct.Id)) == 1 }, waitFor, tick)
	assert.Equal(t, []string{"p1"}, timelineIds(deck.Timeline(acct.Id)))

	// Deleting an id only known from polling is a no-op until the next
	// full refresh
	cb.OnMessage(makeDeleteFrame("p1"))
	time.Sleep(25 * time.Millisecond)
	assert.Equal(t, []string{"p1"}, timelineIds(deck.Timeline(acct.Id)))
}

func TestDeck_CrossAccountNotifications(t *testing.T) {

	ctrl, h, deck := setupDeckTest(t)
	defer ctrl.Finish()

	acct1 := makeAccount("a1", "one.example.org")
	acct2 := makeAccount("a2", "two.example.org")
	notif1 := makeNotif("n1", 10, true)
	notif1.Status.Content = "<p>Hello &amp; <b>welcome</b></p>"
	cbCh1 := h.expectStreamingAccount(ctrl, acct1, nil, []*dto.Notification{notif1})
	_ = h.expectStreamingAccount(ctrl, acct2, nil, []*dto.Notification{makeNotif("n2", 20, false)})

	deck.Attach(acct1)
	deck.Attach(acct2)
	defer deck.Detach(acct1.Id)
	cb1 := <-cbCh1

	require.Eventually(t, func() bool { return len(deck.Notifications()) == 2 }, waitFor, tick)
	merged := deck.Notifications()
	assert.Equal(t, "n2", merged[0].Notification.Id)
	assert.Equal(t, "a2", merged[0].AccountId)
	assert.Equal(t, "n1", merged[1].Notification.Id)
	assert.Equal(t, "a1", merged[1].AccountId)
	assert.Equal(t, "Hello & welcome", merged[1].Preview)

	// Same notification id on another account is a distinct entry
	cb1.OnMessage(makeNotifFrame(makeNotif("n2", 30, false)))
	require.Eventually(t, func() bool { return len(deck.Notifications()) == 3 }, waitFor, tick)

	// Detaching drops that account's entries from the merged view
	deck.Detach(acct2.Id)
	require.Eventually(t, func() bool { return len(deck.Notifications()) == 2 }, waitFor, tick)
	for _, notif := range deck.Notifications() {
		assert.Equal(t, "a1", notif.AccountId)
	}
}

func TestDeck_ConnStatusDrivesPolling(t *testing.T) {

	ctrl, h, deck := setupDeckTest(t)
	defer ctrl.Finish()

	acct := makeAccount("a1", "fedi.example.org")

	// Streaming never comes up, so the poller must stay active and the
	// account must land in the polling state
	h.mockMasto.EXPECT().ResolveStreamingEndpoint(acct.Instance).
		Return("", errors.New("no streaming")).AnyTimes()
	h.mockMasto.EXPECT().GetHomeTimeline(acct.Instance, acct.AccessToken, gomock.Any(), 40).
		Return([]*dto.Status{makeStatus("p1", 10)}, nil).AnyTimes()
	h.mockMasto.EXPECT().GetNotifications(acct.Instance, acct.AccessToken, gomock.Any(), 30).
		Return([]*dto.Notification{}, nil).AnyTimes()

	deck.Attach(acct)
	defer deck.Detach(acct.Id)

	require.Eventually(t, func() bool { return deck.ConnStatus(acct.Id) == logic.CsPolling }, waitFor, tick)
	require.Eventually(t, func() bool { return len(deck.Timeline(acct.Id)) == 1 }, waitFor, tick)
}

func TestDeck_PollErrorsSurfaceAndClearOnRefresh(t *testing.T) {

	ctrl, h, deck := setupDeckTest(t)
	defer ctrl.Finish()

	acct := makeAccount("a1", "fedi.example.org")

	h.mockMasto.EXPECT().ResolveStreamingEndpoint(acct.Instance).
		Return("", errors.New("no streaming")).AnyTimes()
	firstPoll := h.mockMasto.EXPECT().GetHomeTimeline(acct.Instance, acct.AccessToken, "", 40).
		Return(nil, errors.New("api down"))
	h.mockMasto.EXPECT().GetHomeTimeline(acct.Instance, acct.AccessToken, "", 40).
		Return([]*dto.Status{makeStatus("p1", 10)}, nil).After(firstPoll).AnyTimes()
	h.mockMasto.EXPECT().GetNotifications(acct.Instance, acct.AccessToken, gomock.Any(), 30).
		Return([]*dto.Notification{}, nil).AnyTimes()

	deck.Attach(acct)
	defer deck.Detach(acct.Id)

	require.Eventually(t, func() bool {
		errs := deck.PollErrors()
		return errs[acct.Id] != ""
	}, waitFor, tick)

	// Manual refresh clears the recorded error and re-fetches cursorless
	deck.ManualRefresh()
	require.Eventually(t, func() bool { return len(deck.Timeline(acct.Id)) == 1 }, waitFor, tick)
	require.Eventually(t, func() bool { return len(deck.PollErrors()) == 0 }, waitFor, tick)
}

func TestDeck_RefreshWithEmptyNotificationsClearsPolledSet(t *testing.T) {

	ctrl, h, deck := setupDeckTest(t)
	defer ctrl.Finish()

	acct := makeAccount("a1", "fedi.example.org")

	h.mockMasto.EXPECT().ResolveStreamingEndpoint(acct.Instance).
		Return("", errors.New("no streaming")).AnyTimes()
	h.mockMasto.EXPECT().GetHomeTimeline(acct.Instance, acct.AccessToken, gomock.Any(), 40).
		Return(nil, nil).AnyTimes()
	firstFetch := h.mockMasto.EXPECT().GetNotifications(acct.Instance, acct.AccessToken, "", 30).
		Return([]*dto.Notification{makeNotif("n1", 10, false)}, nil)
	h.mockMasto.EXPECT().GetNotifications(acct.Instance, acct.AccessToken, "", 30).
		Return(nil, nil).After(firstFetch).AnyTimes()

	deck.Attach(acct)
	defer deck.Detach(acct.Id)

	require.Eventually(t, func() bool { return len(deck.Notifications()) == 1 }, waitFor, tick)

	// A cursorless re-fetch that comes back empty replaces the polled set
	// rather than keeping the stale one
	deck.ManualRefresh()
	require.Eventually(t, func() bool { return len(deck.Notifications()) == 0 }, waitFor, tick)
}

func TestDeck_DetachIsAtomic(t *testing.T) {

	ctrl, h, deck := setupDeckTest(t)
	defer ctrl.Finish()

	acct := makeAccount("a1", "fedi.example.org")
	cbCh := h.expectStreamingAccount(ctrl, acct, []*dto.Status{makeStatus("p1", 10)}, nil)

	deck.Attach(acct)
	cb := <-cbCh
	require.Eventually(t, func() bool { return deck.ConnStatus(acct.Id) == logic.CsStreaming }, waitFor, tick)

	deck.Detach(acct.Id)
	assert.Nil(t, deck.Timeline(acct.Id))
	assert.Equal(t, logic.CsDisconnected, deck.ConnStatus(acct.Id))
	assert.Empty(t, deck.TrackedAccountIds())

	// Events from the torn-down connection change nothing
	cb.OnMessage(makeStatusFrame(makeStatus("p9", 90)))
	time.Sleep(25 * time.Millisecond)
	assert.Nil(t, deck.Timeline(acct.Id))

	// Detaching twice is harmless
	deck.Detach(acct.Id)
}
