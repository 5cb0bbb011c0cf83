package test

import (
	"errors"
	"fedi_deck/logic"
	"fedi_deck/shared"
	"fedi_deck/test/mocks"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testInstance = "fedi.example.org"
const testToken = "secret-token"
const testEndpoint = "wss://fedi.example.org/api/v1/streaming"

const waitFor = 2 * time.Second
const tick = 2 * time.Millisecond

type streamHarness struct {
	cfg         *shared.Config
	mockLogger  *mocks.MockILogger
	mockMasto   *mocks.MockIMastoClient
	mockDialer  *mocks.MockIStreamDialer
	mockMetrics *mocks.MockIMetrics
}

func setupStreamTest(t *testing.T) (*gomock.Controller, *streamHarness, logic.IStreamClient) {

	ctrl := gomock.NewController(t)

	h := &streamHarness{
		cfg: &shared.Config{
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

	client := logic.NewStreamClient(h.cfg, h.mockLogger, h.mockMasto, h.mockDialer, h.mockMetrics,
		testInstance, testToken)

	return ctrl, h, client
}

func TestStreamClient_ConnectsAndDeliversEvents(t *testing.T) {

	ctrl, h, client := setupStreamTest(t)
	defer ctrl.Finish()

	rec := &statusRecorder{}
	client.OnStatusChange(rec.record)

	var mu sync.Mutex
	var updates []*logic.StreamUpdate
	client.OnEvent(func(upd *logic.StreamUpdate) {
		mu.Lock()
		updates = append(updates, upd)
		mu.Unlock()
	})

	conn := mocks.NewMockIStreamConn(ctrl)
	cbCh := make(chan logic.StreamCallbacks, 1)
	h.mockMasto.EXPECT().ResolveStreamingEndpoint(testInstance).Return(testEndpoint, nil)
	h.mockDialer.EXPECT().Dial(gomock.Any(), gomock.Any()).
		DoAndReturn(func(urlStr string, cb logic.StreamCallbacks) (logic.IStreamConn, error) {
			assert.True(t, strings.HasPrefix(urlStr, testEndpoint+"?stream=user&access_token="))
			cbCh <- cb
			cb.OnOpen()
			return conn, nil
		})

	client.Connect()
	require.Eventually(t, func() bool { return rec.last() == logic.CsStreaming }, waitFor, tick)
	assert.Equal(t, []logic.ConnStatus{logic.CsConnecting, logic.CsStreaming}, rec.all())
	assert.Equal(t, logic.CsStreaming, client.Status())

	cb := <-cbCh
	cb.OnMessage(makeStatusFrame(makeStatus("s1", 1)))
	cb.OnMessage([]byte("this is not json"))
	cb.OnMessage(makeNotifFrame(makeNotif("n1", 2, false)))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(updates) == 2
	}, waitFor, tick)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, logic.SuStatus, updates[0].Kind)
	assert.Equal(t, "s1", updates[0].Status.Id)
	assert.Equal(t, logic.SuNotification, updates[1].Kind)
	assert.Equal(t, "n1", updates[1].Notification.Id)
}

func TestStreamClient_FirstFailureFallsBackToPolling(t *testing.T) {

	ctrl, h, client := setupStreamTest(t)
	defer ctrl.Finish()

	rec := &statusRecorder{}
	client.OnStatusChange(rec.record)

	h.mockMasto.EXPECT().ResolveStreamingEndpoint(testInstance).Return(testEndpoint, nil)
	h.mockDialer.EXPECT().Dial(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))

	client.Connect()
	require.Eventually(t, func() bool { return rec.last() == logic.CsPolling }, waitFor, tick)
	assert.Equal(t, []logic.ConnStatus{logic.CsConnecting, logic.CsPolling}, rec.all())

	// Permanent fallback: no reconnect ever gets scheduled
	time.Sleep(25 * time.Millisecond)
	assert.Equal(t, logic.CsPolling, client.Status())
}

func TestStreamClient_EndpointResolutionFailureFallsBack(t *testing.T) {

	ctrl, h, client := setupStreamTest(t)
	defer ctrl.Finish()

	rec := &statusRecorder{}
	client.OnStatusChange(rec.record)

	h.mockMasto.EXPECT().ResolveStreamingEndpoint(testInstance).Return("", errors.New("no streaming url"))

	client.Connect()
	require.Eventually(t, func() bool { return rec.last() == logic.CsPolling }, waitFor, tick)
	assert.Equal(t, []logic.ConnStatus{logic.CsConnecting, logic.CsPolling}, rec.all())
}

func TestStreamClient_ReconnectsWithBackoffThenGivesUp(t *testing.T) {

	ctrl, h, client := setupStreamTest(t)
	defer ctrl.Finish()

	rec := &statusRecorder{}
	client.OnStatusChange(rec.record)

	conn := mocks.NewMockIStreamConn(ctrl)
	cbCh := make(chan logic.StreamCallbacks, 1)
	var failedDials int32

	h.mockMasto.EXPECT().ResolveStreamingEndpoint(testInstance).Return(testEndpoint, nil).AnyTimes()
	first := h.mockDialer.EXPECT().Dial(gomock.Any(), gomock.Any()).
		DoAndReturn(func(urlStr string, cb logic.StreamCallbacks) (logic.IStreamConn, error) {
			cbCh <- cb
			cb.OnOpen()
			return conn, nil
		})
	h.mockDialer.EXPECT().Dial(gomock.Any(), gomock.Any()).After(first).Times(3).
		DoAndReturn(func(urlStr string, cb logic.StreamCallbacks) (logic.IStreamConn, error) {
			atomic.AddInt32(&failedDials, 1)
			return nil, errors.New("connection refused")
		})

	client.Connect()
	cb := <-cbCh
	require.Eventually(t, func() bool { return rec.last() == logic.CsStreaming }, waitFor, tick)

	// Connection drops; each retry fails, and after the attempt budget is
	// spent the client lands in the error state for good
	cb.OnClose()
	require.Eventually(t, func() bool { return rec.last() == logic.CsError }, waitFor, tick)
	assert.Equal(t, int32(3), atomic.LoadInt32(&failedDials))
	assert.Equal(t,
		[]logic.ConnStatus{logic.CsConnecting, logic.CsStreaming, logic.CsConnecting, logic.CsError},
		rec.all())
}

func TestStreamClient_BackoffDelaysDoubleThenCap(t *testing.T) {

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := &streamHarness{
		cfg: &shared.Config{
			Streaming: shared.StreamingConfig{
				BackoffBaseMs:        8,
				BackoffMaxMs:         32,
				MaxReconnectAttempts: 5,
			},
		},
		mockLogger:  mocks.NewMockILogger(ctrl),
		mockMasto:   mocks.NewMockIMastoClient(ctrl),
		mockDialer:  mocks.NewMockIStreamDialer(ctrl),
		mockMetrics: mocks.NewMockIMetrics(ctrl),
	}
	// Registered before the catch-alls so it wins the match for the
	// scheduling log line, whose second argument is the delay
	var mu sync.Mutex
	var delays []int
	h.mockLogger.EXPECT().
		Infof(gomock.Eq("Scheduling reconnect attempt %d in %dms for %s"), gomock.Any()).
		Do(func(format string, args ...interface{}) {
			mu.Lock()
			delays = append(delays, args[1].(int))
			mu.Unlock()
		}).AnyTimes()
	setupDummyLogger(h.mockLogger)
	setupDummyMetrics(h.mockMetrics)

	client := logic.NewStreamClient(h.cfg, h.mockLogger, h.mockMasto, h.mockDialer, h.mockMetrics,
		testInstance, testToken)

	conn := mocks.NewMockIStreamConn(ctrl)
	cbCh := make(chan logic.StreamCallbacks, 1)
	h.mockMasto.EXPECT().ResolveStreamingEndpoint(testInstance).Return(testEndpoint, nil).AnyTimes()
	first := h.mockDialer.EXPECT().Dial(gomock.Any(), gomock.Any()).
		DoAndReturn(func(urlStr string, cb logic.StreamCallbacks) (logic.IStreamConn, error) {
			cbCh <- cb
			cb.OnOpen()
			return conn, nil
		})
	h.mockDialer.EXPECT().Dial(gomock.Any(), gomock.Any()).After(first).AnyTimes().
		Return(nil, errors.New("connection refused"))

	client.Connect()
	cb := <-cbCh
	require.Eventually(t, func() bool { return client.Status() == logic.CsStreaming }, waitFor, tick)

	// Connection drops after a successful session and every retry fails:
	// the scheduled delays double from the base and stick at the cap
	cb.OnClose()
	require.Eventually(t, func() bool { return client.Status() == logic.CsError }, waitFor, tick)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{8, 16, 32, 32, 32}, delays)
}

func TestStreamClient_ReopenAfterDropResetsAttempts(t *testing.T) {

	ctrl, h, client := setupStreamTest(t)
	defer ctrl.Finish()

	rec := &statusRecorder{}
	client.OnStatusChange(rec.record)

	conn := mocks.NewMockIStreamConn(ctrl)
	cbCh := make(chan logic.StreamCallbacks, 2)

	h.mockMasto.EXPECT().ResolveStreamingEndpoint(testInstance).Return(testEndpoint, nil).AnyTimes()
	h.mockDialer.EXPECT().Dial(gomock.Any(), gomock.Any()).Times(2).
		DoAndReturn(func(urlStr string, cb logic.StreamCallbacks) (logic.IStreamConn, error) {
			cbCh <- cb
			cb.OnOpen()
			return conn, nil
		})

	client.Connect()
	cb := <-cbCh
	require.Eventually(t, func() bool { return rec.last() == logic.CsStreaming }, waitFor, tick)

	cb.OnClose()
	<-cbCh
	require.Eventually(t, func() bool {
		return client.Status() == logic.CsStreaming
	}, waitFor, tick)
	assert.Equal(t,
		[]logic.ConnStatus{logic.CsConnecting, logic.CsStreaming, logic.CsConnecting, logic.CsStreaming},
		rec.all())
}

func TestStreamClient_DisconnectSilencesEverything(t *testing.T) {

	ctrl, h, client := setupStreamTest(t)
	defer ctrl.Finish()

	rec := &statusRecorder{}
	client.OnStatusChange(rec.record)

	var gotEvent int32
	client.OnEvent(func(upd *logic.StreamUpdate) {
		atomic.AddInt32(&gotEvent, 1)
	})

	conn := mocks.NewMockIStreamConn(ctrl)
	cbCh := make(chan logic.StreamCallbacks, 1)
	h.mockMasto.EXPECT().ResolveStreamingEndpoint(testInstance).Return(testEndpoint, nil)
	h.mockDialer.EXPECT().Dial(gomock.Any(), gomock.Any()).
		DoAndReturn(func(urlStr string, cb logic.StreamCallbacks) (logic.IStreamConn, error) {
			cbCh <- cb
			cb.OnOpen()
			return conn, nil
		})
	conn.EXPECT().Close()

	client.Connect()
	cb := <-cbCh
	require.Eventually(t, func() bool { return rec.last() == logic.CsStreaming }, waitFor, tick)

	client.Disconnect()
	assert.Equal(t, logic.CsDisconnected, client.Status())

	// Late transport callbacks are dropped on the floor
	cb.OnMessage(makeStatusFrame(makeStatus("s9", 9)))
	cb.OnError(errors.New("broken pipe"))
	cb.OnClose()
	time.Sleep(25 * time.Millisecond)
	assert.Equal(t, []logic.ConnStatus{logic.CsConnecting, logic.CsStreaming}, rec.all())
	assert.Equal(t, int32(0), atomic.LoadInt32(&gotEvent))
	assert.Equal(t, logic.CsDisconnected, client.Status())
}
