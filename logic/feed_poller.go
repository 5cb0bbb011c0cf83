package logic

import (
	"fedi_deck/dto"
	"fedi_deck/shared"
	"sync"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_feed_poller.go -package mocks fedi_deck/logic IFeedPoller

type FeedKind int32

const (
	FeedTimeline      FeedKind = 0
	FeedNotifications FeedKind = 1
)

func (fk FeedKind) String() string {
	if fk == FeedNotifications {
		return "notifications"
	}
	return "timeline"
}

// IFeedSink receives everything a poller fetches. The deck implements it.
// Results are delivered in fetch-completion order; failures are reported
// per feed and never abort the other feed's fetch in the same cycle.
type IFeedSink interface {
	PolledStatuses(accountId string, items []*dto.Status, replace bool)
	PolledNotifications(accountId string, items []*dto.Notification, replace bool)
	PollFailed(accountId string, feed FeedKind, err error)
}

// IFeedPoller periodically fetches incremental deltas for one account
// while that account is not streaming. Activate is idempotent: there is
// never more than one timer. ForceRefresh drops the cursors and fetches
// from scratch whether or not the timer is running.
type IFeedPoller interface {
	Activate()
	Deactivate()
	IsActive() bool
	ForceRefresh()
	Stop()
}

type feedPoller struct {
	cfg       *shared.Config
	logger    shared.ILogger
	masto     IMastoClient
	metrics   IMetrics
	sink      IFeedSink
	accountId string
	instance  string
	token     string

	mu      sync.Mutex
	cursors map[FeedKind]string
	stopCh  chan struct{}
	active  bool
	stopped bool
}

func NewFeedPoller(
	cfg *shared.Config,
	logger shared.ILogger,
	masto IMastoClient,
	metrics IMetrics,
	sink IFeedSink,
	accountId, instance, token string,
) IFeedPoller {
	return &feedPoller{
		cfg:       cfg,
		logger:    logger,
		masto:     masto,
		metrics:   metrics,
		sink:      sink,
		accountId: accountId,
		instance:  instance,
		token:     token,
		cursors:   make(map[FeedKind]string),
	}
}

func (p *feedPoller) Activate() {
	p.mu.Lock()
	if p.stopped || p.active {
		p.mu.Unlock()
		return
	}
	p.active = true
	stop := make(chan struct{})
	p.stopCh = stop
	p.mu.Unlock()

	p.logger.Debugf("Polling activated for account %s", p.accountId)
	go p.run(stop)
}

func (p *feedPoller) Deactivate() {
	p.mu.Lock()
	if !p.active {
		p.mu.Unlock()
		return
	}
	p.active = false
	close(p.stopCh)
	p.stopCh = nil
	p.mu.Unlock()
	p.logger.Debugf("Polling deactivated for account %s", p.accountId)
}

func (p *feedPoller) IsActive() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active
}

// Stop deactivates for good; part of account detach.
func (p *feedPoller) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	if p.active {
		p.active = false
		close(p.stopCh)
		p.stopCh = nil
	}
	p.mu.Unlock()
}

func (p *feedPoller) ForceRefresh() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.cursors = make(map[FeedKind]string)
	p.mu.Unlock()
	go p.cycle()
}

func (p *feedPoller) run(stop chan struct{}) {

	// Immediate fetch on activation, then the fixed interval
	p.cycle()

	ticker := time.NewTicker(time.Duration(p.cfg.Polling.IntervalMs) * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			p.cycle()
		}
	}
}

// cycle fetches both feeds concurrently. Each fetch settles on its own:
// one feed failing never blocks or cancels the other.
func (p *feedPoller) cycle() {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		p.fetchTimeline()
	}()
	go func() {
		defer wg.Done()
		p.fetchNotifications()
	}()
	wg.Wait()
}

func (p *feedPoller) fetchTimeline() {

	cursor := p.cursor(FeedTimeline)
	items, err := p.masto.GetHomeTimeline(p.instance, p.token, cursor, p.cfg.Polling.TimelinePageSize)
	if err != nil {
		p.logger.Warnf("Timeline poll failed for account %s: %v", p.accountId, err)
		p.metrics.PollError(FeedTimeline.String())
		p.sink.PollFailed(p.accountId, FeedTimeline, err)
		return
	}
	p.metrics.PollCycle(FeedTimeline.String())

	// Cursors advance on poll results only, never on pushed items;
	// re-fetched pushed items are absorbed by the id-keyed merge.
	if len(items) > 0 {
		p.setCursor(FeedTimeline, items[0].Id)
	}
	p.sink.PolledStatuses(p.accountId, items, cursor == "")
}

func (p *feedPoller) fetchNotifications() {

	cursor := p.cursor(FeedNotifications)
	items, err := p.masto.GetNotifications(p.instance, p.token, cursor, p.cfg.Polling.NotifPageSize)
	if err != nil {
		p.logger.Warnf("Notification poll failed for account %s: %v", p.accountId, err)
		p.metrics.PollError(FeedNotifications.String())
		p.sink.PollFailed(p.accountId, FeedNotifications, err)
		return
	}
	p.metrics.PollCycle(FeedNotifications.String())

	if len(items) > 0 {
		p.setCursor(FeedNotifications, items[0].Id)
	}
	p.sink.PolledNotifications(p.accountId, items, cursor == "")
}

func (p *feedPoller) cursor(feed FeedKind) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cursors[feed]
}

func (p *feedPoller) setCursor(feed FeedKind, id string) {
	p.mu.Lock()
	p.cursors[feed] = id
	p.mu.Unlock()
}
