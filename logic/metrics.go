package logic

import (
	"fedi_deck/shared"
	"github.com/prometheus/client_golang/prometheus"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_metrics.go -package mocks fedi_deck/logic IMetrics,IRequestObserver

type IMetrics interface {
	StartApiRequestIn(label string) IRequestObserver
	ServiceStarted()
	AccountsTracked(count int)
	StreamEventIn(kind string)
	ReconnectScheduled()
	StreamFellBack()
	PollCycle(feed string)
	PollError(feed string)
}

type IRequestObserver interface {
	Finish()
}

type metrics struct {
	cfg                 *shared.Config
	apiRequestsIn       *prometheus.HistogramVec
	serviceStarted      prometheus.Counter
	accountsTracked     prometheus.Gauge
	streamEventsIn      *prometheus.CounterVec
	reconnectsScheduled prometheus.Counter
	streamFallbacks     prometheus.Counter
	pollCycles          *prometheus.CounterVec
	pollErrors          *prometheus.CounterVec
}

func NewMetrics(cfg *shared.Config) IMetrics {

	res := metrics{}
	res.cfg = cfg

	res.apiRequestsIn = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "api_requests_in_duration",
		Help: "Duration in seconds of local API requests served.",
	}, []string{"label"})
	prometheus.Register(res.apiRequestsIn)

	res.serviceStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "service_started",
		Help: "Service has started up",
	})
	prometheus.Register(res.serviceStarted)

	res.accountsTracked = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "accounts_tracked",
		Help: "Number of accounts currently attached to the deck",
	})
	prometheus.Register(res.accountsTracked)

	res.streamEventsIn = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "stream_events_in",
		Help: "Number of streaming events received, by kind",
	}, []string{"kind"})
	prometheus.Register(res.streamEventsIn)

	res.reconnectsScheduled = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "reconnects_scheduled",
		Help: "Number of streaming reconnect attempts scheduled",
	})
	prometheus.Register(res.reconnectsScheduled)

	res.streamFallbacks = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "stream_fallbacks",
		Help: "Number of accounts permanently fallen back to polling",
	})
	prometheus.Register(res.streamFallbacks)

	res.pollCycles = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "poll_cycles",
		Help: "Number of poll fetches completed, by feed",
	}, []string{"feed"})
	prometheus.Register(res.pollCycles)

	res.pollErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "poll_errors",
		Help: "Number of poll fetches failed, by feed",
	}, []string{"feed"})
	prometheus.Register(res.pollErrors)

	return &res
}

type requestObserver struct {
	label string
	start time.Time
	hgvec *prometheus.HistogramVec
}

func (ro *requestObserver) Finish() {
	now := time.Now()
	elapsed := float64(now.UnixMilli()-ro.start.UnixMilli()) / 1000.0
	ro.hgvec.WithLabelValues(ro.label).Observe(elapsed)
}

func (m *metrics) StartApiRequestIn(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.apiRequestsIn}
}

func (m *metrics) ServiceStarted() {
	m.serviceStarted.Add(1)
}

func (m *metrics) AccountsTracked(count int) {
	m.accountsTracked.Set(float64(count))
}

func (m *metrics) StreamEventIn(kind string) {
	m.streamEventsIn.WithLabelValues(kind).Add(1)
}

func (m *metrics) ReconnectScheduled() {
	m.reconnectsScheduled.Add(1)
}

func (m *metrics) StreamFellBack() {
	m.streamFallbacks.Add(1)
}

func (m *metrics) PollCycle(feed string) {
	m.pollCycles.WithLabelValues(feed).Add(1)
}

func (m *metrics) PollError(feed string) {
	m.pollErrors.WithLabelValues(feed).Add(1)
}
