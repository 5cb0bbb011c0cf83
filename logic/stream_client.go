package logic

import (
	"fedi_deck/shared"
	"net/url"
	"sync"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_stream_client.go -package mocks fedi_deck/logic IStreamClient

type ConnStatus int32

const (
	CsDisconnected ConnStatus = 0
	CsConnecting   ConnStatus = 1
	CsStreaming    ConnStatus = 2
	CsPolling      ConnStatus = 3
	CsError        ConnStatus = 4
)

func (cs ConnStatus) String() string {
	switch cs {
	case CsDisconnected:
		return "disconnected"
	case CsConnecting:
		return "connecting"
	case CsStreaming:
		return "streaming"
	case CsPolling:
		return "polling"
	case CsError:
		return "error"
	}
	return "unknown"
}

// IStreamClient owns one account's live streaming connection and its
// reconnection policy. Subscribers get each distinct status exactly once,
// and decoded events unbuffered in arrival order. After Disconnect no
// callback fires again.
type IStreamClient interface {
	Connect()
	Disconnect()
	Status() ConnStatus
	OnStatusChange(cb func(status ConnStatus))
	OnEvent(cb func(upd *StreamUpdate))
}

type streamClient struct {
	cfg      *shared.Config
	logger   shared.ILogger
	masto    IMastoClient
	dialer   IStreamDialer
	metrics  IMetrics
	instance string
	token    string

	mu             sync.Mutex
	status         ConnStatus
	conn           IStreamConn
	reconnectTimer *time.Timer
	attempts       int
	everStreamed   bool
	detached       bool
	connEpoch      int
	statusCbs      []func(ConnStatus)
	eventCbs       []func(*StreamUpdate)
}

func NewStreamClient(
	cfg *shared.Config,
	logger shared.ILogger,
	masto IMastoClient,
	dialer IStreamDialer,
	metrics IMetrics,
	instance, token string,
) IStreamClient {
	return &streamClient{
		cfg:      cfg,
		logger:   logger,
		masto:    masto,
		dialer:   dialer,
		metrics:  metrics,
		instance: instance,
		token:    token,
		status:   CsDisconnected,
	}
}

func (sc *streamClient) OnStatusChange(cb func(status ConnStatus)) {
	sc.mu.Lock()
	sc.statusCbs = append(sc.statusCbs, cb)
	sc.mu.Unlock()
}

func (sc *streamClient) OnEvent(cb func(upd *StreamUpdate)) {
	sc.mu.Lock()
	sc.eventCbs = append(sc.eventCbs, cb)
	sc.mu.Unlock()
}

func (sc *streamClient) Status() ConnStatus {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.status
}

func (sc *streamClient) Connect() {
	go sc.connect()
}

// Disconnect tears the client down for good: pending reconnect cancelled,
// live connection closed, no callbacks afterwards. Part of account detach.
func (sc *streamClient) Disconnect() {
	sc.mu.Lock()
	sc.detached = true
	if sc.reconnectTimer != nil {
		sc.reconnectTimer.Stop()
		sc.reconnectTimer = nil
	}
	conn := sc.conn
	sc.conn = nil
	sc.connEpoch++
	sc.attempts = 0
	sc.status = CsDisconnected
	sc.mu.Unlock()
	if conn != nil {
		conn.Close()
	}
}

func (sc *streamClient) connect() {

	sc.setStatus(CsConnecting)

	base, err := sc.masto.ResolveStreamingEndpoint(sc.instance)
	if err != nil {
		sc.logger.Warnf("Failed to resolve streaming endpoint for %s: %v", sc.instance, err)
		sc.handleConnBroken()
		return
	}
	urlStr := base + "?stream=user&access_token=" + url.QueryEscape(sc.token)

	sc.mu.Lock()
	if sc.detached {
		sc.mu.Unlock()
		return
	}
	sc.connEpoch++
	epoch := sc.connEpoch
	sc.mu.Unlock()

	cb := StreamCallbacks{
		OnOpen:    func() { sc.handleOpen(epoch) },
		OnMessage: func(data []byte) { sc.handleMessage(epoch, data) },
		OnError:   func(err error) { sc.handleError(epoch, err) },
		OnClose:   func() { sc.handleClose(epoch) },
	}
	conn, err := sc.dialer.Dial(urlStr, cb)
	if err != nil {
		sc.logger.Warnf("Failed to connect to streaming for %s: %v", sc.instance, err)
		sc.handleConnBroken()
		return
	}

	sc.mu.Lock()
	if sc.detached || epoch != sc.connEpoch {
		sc.mu.Unlock()
		conn.Close()
		return
	}
	sc.conn = conn
	sc.mu.Unlock()
}

func (sc *streamClient) handleOpen(epoch int) {
	sc.mu.Lock()
	if sc.detached || epoch != sc.connEpoch {
		sc.mu.Unlock()
		return
	}
	sc.everStreamed = true
	sc.attempts = 0
	sc.mu.Unlock()
	sc.logger.Infof("Streaming connected to %s", sc.instance)
	sc.setStatus(CsStreaming)
}

func (sc *streamClient) handleMessage(epoch int, data []byte) {
	sc.mu.Lock()
	if sc.detached || epoch != sc.connEpoch {
		sc.mu.Unlock()
		return
	}
	cbs := make([]func(*StreamUpdate), len(sc.eventCbs))
	copy(cbs, sc.eventCbs)
	sc.mu.Unlock()

	upd, err := DecodeStreamFrame(data)
	if err != nil {
		// Malformed frames are dropped; the connection stays up
		sc.logger.Warnf("Dropping stream frame from %s: %v", sc.instance, err)
		return
	}
	sc.metrics.StreamEventIn(upd.Kind.String())
	for _, cb := range cbs {
		cb(upd)
	}
}

func (sc *streamClient) handleError(epoch int, err error) {
	sc.mu.Lock()
	stale := sc.detached || epoch != sc.connEpoch
	sc.mu.Unlock()
	if stale {
		return
	}
	// The close that follows decides what happens next
	sc.logger.Warnf("Streaming error for %s: %v", sc.instance, err)
}

func (sc *streamClient) handleClose(epoch int) {
	sc.mu.Lock()
	if sc.detached || epoch != sc.connEpoch {
		sc.mu.Unlock()
		return
	}
	sc.conn = nil
	sc.connEpoch++
	sc.mu.Unlock()
	sc.logger.Infof("Streaming connection closed for %s", sc.instance)
	sc.handleConnBroken()
}

// handleConnBroken is the one place that decides between the one-shot
// polling fallback, a scheduled reconnect, and giving up.
func (sc *streamClient) handleConnBroken() {

	sc.mu.Lock()
	if sc.detached {
		sc.mu.Unlock()
		return
	}
	everStreamed := sc.everStreamed
	status := sc.status
	sc.mu.Unlock()

	if !everStreamed {
		// The handshake never succeeded for this account: the instance
		// has no usable streaming. Fall back to polling and stay there.
		sc.logger.Infof("Initial streaming connection failed for %s, falling back to polling", sc.instance)
		sc.metrics.StreamFellBack()
		sc.setStatus(CsPolling)
		return
	}
	if status == CsError || status == CsPolling {
		return
	}
	sc.setStatus(CsConnecting)
	sc.scheduleReconnect()
}

func (sc *streamClient) scheduleReconnect() {

	sc.mu.Lock()
	if sc.detached {
		sc.mu.Unlock()
		return
	}
	if sc.attempts >= sc.cfg.Streaming.MaxReconnectAttempts {
		sc.mu.Unlock()
		sc.logger.Warnf("Max reconnect attempts reached for %s, giving up", sc.instance)
		sc.setStatus(CsError)
		return
	}

	delayMs := sc.cfg.Streaming.BackoffBaseMs << sc.attempts
	if delayMs > sc.cfg.Streaming.BackoffMaxMs {
		delayMs = sc.cfg.Streaming.BackoffMaxMs
	}
	sc.attempts++
	attempt := sc.attempts
	sc.reconnectTimer = time.AfterFunc(time.Duration(delayMs)*time.Millisecond, func() {
		sc.mu.Lock()
		sc.reconnectTimer = nil
		detached := sc.detached
		sc.mu.Unlock()
		if !detached {
			sc.connect()
		}
	})
	sc.mu.Unlock()

	sc.metrics.ReconnectScheduled()
	sc.logger.Infof("Scheduling reconnect attempt %d in %dms for %s", attempt, delayMs, sc.instance)
}

func (sc *streamClient) setStatus(status ConnStatus) {
	sc.mu.Lock()
	if sc.detached || sc.status == status {
		sc.mu.Unlock()
		return
	}
	sc.status = status
	cbs := make([]func(ConnStatus), len(sc.statusCbs))
	copy(cbs, sc.statusCbs)
	sc.mu.Unlock()
	for _, cb := range cbs {
		cb(status)
	}
}
