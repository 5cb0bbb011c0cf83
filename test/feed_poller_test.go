package test

import (
	"errors"
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

const pollAccountId = "acct-1"

type pollerHarness struct {
	cfg         *shared.Config
	mockLogger  *mocks.MockILogger
	mockMasto   *mocks.MockIMastoClient
	mockMetrics *mocks.MockIMetrics
	sink        *fakeSink
}

func setupPollerTest(t *testing.T, intervalMs int) (*gomock.Controller, *pollerHarness, logic.IFeedPoller) {

	ctrl := gomock.NewController(t)

	h := &pollerHarness{
		cfg: &shared.Config{
			Polling: shared.PollingConfig{
				IntervalMs:       intervalMs,
				TimelinePageSize: 40,
				NotifPageSize:    30,
			},
		},
		mockLogger:  mocks.NewMockILogger(ctrl),
		mockMasto:   mocks.NewMockIMastoClient(ctrl),
		mockMetrics: mocks.NewMockIMetrics(ctrl),
		sink:        &fakeSink{},
	}
	setupDummyLogger(h.mockLogger)
	setupDummyMetrics(h.mockMetrics)

	poller := logic.NewFeedPoller(h.cfg, h.mockLogger, h.mockMasto, h.mockMetrics, h.sink,
		pollAccountId, testInstance, testToken)

	return ctrl, h, poller
}

func TestFeedPoller_FirstCycleReplacesThenIncrements(t *testing.T) {

	ctrl, h, poller := setupPollerTest(t, 10)
	defer ctrl.Finish()
	defer poller.Stop()

	// First cycle has no cursor; afterwards only deltas above the newest
	// seen id get requested
	gomock.InOrder(
		h.mockMasto.EXPECT().GetHomeTimeline(testInstance, testToken, "", 40).
			Return([]*dto.Status{makeStatus("s2", 20), makeStatus("s1", 10)}, nil),
		h.mockMasto.EXPECT().GetHomeTimeline(testInstance, testToken, "s2", 40).
			Return([]*dto.Status{makeStatus("s3", 30)}, nil),
		h.mockMasto.EXPECT().GetHomeTimeline(testInstance, testToken, "s3", 40).
			Return([]*dto.Status{}, nil).AnyTimes(),
	)
	h.mockMasto.EXPECT().GetNotifications(testInstance, testToken, gomock.Any(), 30).
		Return([]*dto.Notification{}, nil).AnyTimes()

	poller.Activate()
	assert.True(t, poller.IsActive())

	require.Eventually(t, func() bool { return h.sink.statusCallCount() >= 2 }, waitFor, tick)
	poller.Deactivate()
	assert.False(t, poller.IsActive())

	first := h.sink.statusCall(0)
	assert.True(t, first.replace)
	assert.Equal(t, []string{"s2", "s1"}, timelineIds(first.items))
	second := h.sink.statusCall(1)
	assert.False(t, second.replace)
	assert.Equal(t, []string{"s3"}, timelineIds(second.items))
}

func TestFeedPoller_ActivateIsIdempotent(t *testing.T) {

	ctrl, h, poller := setupPollerTest(t, 3600000)
	defer ctrl.Finish()
	defer poller.Stop()

	// Double activation must not spawn a second timer or a second
	// immediate cycle
	h.mockMasto.EXPECT().GetHomeTimeline(testInstance, testToken, "", 40).
		Return([]*dto.Status{}, nil).Times(1)
	h.mockMasto.EXPECT().GetNotifications(testInstance, testToken, "", 30).
		Return([]*dto.Notification{}, nil).Times(1)

	poller.Activate()
	poller.Activate()

	require.Eventually(t, func() bool { return h.sink.statusCallCount() >= 1 }, waitFor, tick)
	time.Sleep(25 * time.Millisecond)
	assert.Equal(t, 1, h.sink.statusCallCount())
	assert.Equal(t, 1, h.sink.notifCallCount())
}

func TestFeedPoller_FeedFailuresAreIsolated(t *testing.T) {

	ctrl, h, poller := setupPollerTest(t, 3600000)
	defer ctrl.Finish()
	defer poller.Stop()

	h.mockMasto.EXPECT().GetHomeTimeline(testInstance, testToken, "", 40).
		Return(nil, errors.New("api down"))
	h.mockMasto.EXPECT().GetNotifications(testInstance, testToken, "", 30).
		Return([]*dto.Notification{makeNotif("n1", 5, false)}, nil)

	poller.Activate()

	require.Eventually(t, func() bool {
		return h.sink.failureCount() == 1 && h.sink.notifCallCount() == 1
	}, waitFor, tick)

	failure := h.sink.failure(0)
	assert.Equal(t, pollAccountId, failure.accountId)
	assert.Equal(t, logic.FeedTimeline, failure.feed)
	assert.Equal(t, 0, h.sink.statusCallCount())
}

func TestFeedPoller_ForceRefreshDropsCursors(t *testing.T) {

	ctrl, h, poller := setupPollerTest(t, 3600000)
	defer ctrl.Finish()
	defer poller.Stop()

	// Activation fetch advances the cursor to s2; the forced refresh must
	// fetch cursorless again and replace
	h.mockMasto.EXPECT().GetHomeTimeline(testInstance, testToken, "", 40).
		Return([]*dto.Status{makeStatus("s2", 20)}, nil).Times(2)
	h.mockMasto.EXPECT().GetNotifications(testInstance, testToken, "", 30).
		Return([]*dto.Notification{}, nil).Times(2)

	poller.Activate()
	require.Eventually(t, func() bool { return h.sink.statusCallCount() == 1 }, waitFor, tick)

	poller.ForceRefresh()
	require.Eventually(t, func() bool { return h.sink.statusCallCount() == 2 }, waitFor, tick)
	assert.True(t, h.sink.statusCall(1).replace)
}

func TestFeedPoller_ForceRefreshWorksWhileDeactivated(t *testing.T) {

	ctrl, h, poller := setupPollerTest(t, 3600000)
	defer ctrl.Finish()
	defer poller.Stop()

	h.mockMasto.EXPECT().GetHomeTimeline(testInstance, testToken, "", 40).
		Return([]*dto.Status{makeStatus("s1", 10)}, nil)
	h.mockMasto.EXPECT().GetNotifications(testInstance, testToken, "", 30).
		Return([]*dto.Notification{}, nil)

	// Never activated: say the account is streaming, and the user hits
	// refresh anyway
	poller.ForceRefresh()
	require.Eventually(t, func() bool { return h.sink.statusCallCount() == 1 }, waitFor, tick)
	assert.False(t, poller.IsActive())
}

func TestFeedPoller_StoppedPollerDoesNothing(t *testing.T) {

	ctrl, _, poller := setupPollerTest(t, 10)
	defer ctrl.Finish()

	poller.Stop()
	poller.Activate()
	poller.ForceRefresh()
	time.Sleep(25 * time.Millisecond)
	assert.False(t, poller.IsActive())
}
