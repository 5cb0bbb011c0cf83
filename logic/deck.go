package logic

import (
	"fedi_deck/dal"
	"fedi_deck/dto"
	"fedi_deck/shared"
	"sort"
	"sync"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_deck.go -package mocks fedi_deck/logic IDeck

type DeckChangeKind int32

const (
	DcTimeline      DeckChangeKind = 0
	DcNotifications DeckChangeKind = 1
	DcConnStatus    DeckChangeKind = 2
	DcPollErrors    DeckChangeKind = 3
)

// DeckChange tells a listener which published view just moved. AccountId
// is empty for the cross-account notification view.
type DeckChange struct {
	Kind      DeckChangeKind
	AccountId string
}

// IDeck is the engine façade: one streaming state machine and one poller
// per attached account, all funneled into merged, duplicate-free,
// time-ordered views. Attach and Detach are synchronous; Detach is an
// atomic teardown after which nothing from that account fires again.
type IDeck interface {
	Attach(acct *dal.Account)
	Detach(accountId string)
	ManualRefresh()
	TrackedAccountIds() []string
	Timeline(accountId string) []*dto.Status
	Notifications() []*dto.UnifiedNotification
	ConnStatus(accountId string) ConnStatus
	PollErrors() map[string]string
	OnChange(cb func(change DeckChange))
}

const deckQueueLen = 64

type deckMsgKind int32

const (
	dmAttach deckMsgKind = iota
	dmDetach
	dmRefresh
	dmStatus
	dmPush
	dmPolledStatuses
	dmPolledNotifs
	dmPollFailed
)

type deckMsg struct {
	kind       deckMsgKind
	accountId  string
	acct       *dal.Account
	status     ConnStatus
	upd        *StreamUpdate
	items      []*dto.Status
	notifItems []*dto.Notification
	replace    bool
	feed       FeedKind
	err        error
	done       chan struct{}
}

// accountSlot is one account's contribution to the deck. Only the reducer
// goroutine touches it; the published fields (timeline, connStatus,
// pollErrs) are additionally guarded by the deck mutex for readers.
type accountSlot struct {
	acct   *dal.Account
	client IStreamClient
	poller IFeedPoller

	connStatus  ConnStatus
	pushedOrder []string
	pushedById  map[string]*dto.Status
	polled      []*dto.Status

	pushedNotifOrder []string
	pushedNotifById  map[string]*dto.Notification
	polledNotifs     []*dto.Notification

	pollErrs map[FeedKind]string

	timeline []*dto.Status
}

type deck struct {
	cfg     *shared.Config
	logger  shared.ILogger
	masto   IMastoClient
	dialer  IStreamDialer
	metrics IMetrics

	mu     sync.RWMutex
	slots  map[string]*accountSlot
	notifs []*dto.UnifiedNotification
	cbs    []func(DeckChange)

	msgCh chan deckMsg
}

func NewDeck(
	cfg *shared.Config,
	logger shared.ILogger,
	masto IMastoClient,
	dialer IStreamDialer,
	metrics IMetrics,
) IDeck {
	d := deck{
		cfg:     cfg,
		logger:  logger,
		masto:   masto,
		dialer:  dialer,
		metrics: metrics,
		slots:   make(map[string]*accountSlot),
		msgCh:   make(chan deckMsg, deckQueueLen),
	}
	go d.reduceLoop()
	return &d
}

// ==================== commands ====================

func (d *deck) Attach(acct *dal.Account) {
	done := make(chan struct{})
	d.msgCh <- deckMsg{kind: dmAttach, accountId: acct.Id, acct: acct, done: done}
	<-done
}

func (d *deck) Detach(accountId string) {
	done := make(chan struct{})
	d.msgCh <- deckMsg{kind: dmDetach, accountId: accountId, done: done}
	<-done
}

func (d *deck) ManualRefresh() {
	done := make(chan struct{})
	d.msgCh <- deckMsg{kind: dmRefresh, done: done}
	<-done
}

func (d *deck) OnChange(cb func(change DeckChange)) {
	d.mu.Lock()
	d.cbs = append(d.cbs, cb)
	d.mu.Unlock()
}

// ==================== accessors ====================

func (d *deck) TrackedAccountIds() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	res := make([]string, 0, len(d.slots))
	for id := range d.slots {
		res = append(res, id)
	}
	sort.Strings(res)
	return res
}

func (d *deck) Timeline(accountId string) []*dto.Status {
	d.mu.RLock()
	defer d.mu.RUnlock()
	slot := d.slots[accountId]
	if slot == nil {
		return nil
	}
	res := make([]*dto.Status, len(slot.timeline))
	copy(res, slot.timeline)
	return res
}

func (d *deck) Notifications() []*dto.UnifiedNotification {
	d.mu.RLock()
	defer d.mu.RUnlock()
	res := make([]*dto.UnifiedNotification, len(d.notifs))
	copy(res, d.notifs)
	return res
}

func (d *deck) ConnStatus(accountId string) ConnStatus {
	d.mu.RLock()
	defer d.mu.RUnlock()
	slot := d.slots[accountId]
	if slot == nil {
		return CsDisconnected
	}
	return slot.connStatus
}

// PollErrors returns the last poll failure per account, for accounts that
// have one; display material for the "N account(s) failed to load" banner.
func (d *deck) PollErrors() map[string]string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	res := make(map[string]string)
	for id, slot := range d.slots {
		for _, msg := range slot.pollErrs {
			res[id] = msg
			break
		}
	}
	return res
}

// ==================== sink (called by pollers) ====================

func (d *deck) PolledStatuses(accountId string, items []*dto.Status, replace bool) {
	d.msgCh <- deckMsg{kind: dmPolledStatuses, accountId: accountId, items: items, replace: replace}
}

func (d *deck) PolledNotifications(accountId string, items []*dto.Notification, replace bool) {
	d.msgCh <- deckMsg{kind: dmPolledNotifs, accountId: accountId, notifItems: items, replace: replace}
}

func (d *deck) PollFailed(accountId string, feed FeedKind, err error) {
	d.msgCh <- deckMsg{kind: dmPollFailed, accountId: accountId, feed: feed, err: err}
}

// ==================== reducer ====================

// reduceLoop is the single goroutine that owns all slot state. Every
// mutation, from every account's connection and timer, goes through here;
// the merge step needs no locks of its own.
func (d *deck) reduceLoop() {
	for msg := range d.msgCh {
		switch msg.kind {
		case dmAttach:
			d.reduceAttach(msg.acct)
		case dmDetach:
			d.reduceDetach(msg.accountId)
		case dmRefresh:
			d.reduceRefresh()
		case dmStatus:
			d.reduceStatus(msg.accountId, msg.status)
		case dmPush:
			d.reducePush(msg.accountId, msg.upd)
		case dmPolledStatuses:
			d.reducePolledStatuses(msg.accountId, msg.items, msg.replace)
		case dmPolledNotifs:
			d.reducePolledNotifs(msg.accountId, msg.notifItems, msg.replace)
		case dmPollFailed:
			d.reducePollFailed(msg.accountId, msg.feed, msg.err)
		}
		if msg.done != nil {
			close(msg.done)
		}
	}
}

func (d *deck) reduceAttach(acct *dal.Account) {

	if _, exists := d.slots[acct.Id]; exists {
		d.logger.Warnf("Account %s is already attached", acct.Id)
		return
	}

	slot := &accountSlot{
		acct:            acct,
		connStatus:      CsDisconnected,
		pushedById:      make(map[string]*dto.Status),
		pushedNotifById: make(map[string]*dto.Notification),
		pollErrs:        make(map[FeedKind]string),
	}
	slot.client = NewStreamClient(d.cfg, d.logger, d.masto, d.dialer, d.metrics, acct.Instance, acct.AccessToken)
	slot.poller = NewFeedPoller(d.cfg, d.logger, d.masto, d.metrics, d, acct.Id, acct.Instance, acct.AccessToken)

	accountId := acct.Id
	slot.client.OnStatusChange(func(status ConnStatus) {
		d.msgCh <- deckMsg{kind: dmStatus, accountId: accountId, status: status}
	})
	slot.client.OnEvent(func(upd *StreamUpdate) {
		d.msgCh <- deckMsg{kind: dmPush, accountId: accountId, upd: upd}
	})

	d.mu.Lock()
	d.slots[acct.Id] = slot
	d.mu.Unlock()
	d.metrics.AccountsTracked(len(d.slots))
	d.logger.Infof("Attached account %s (%s@%s)", acct.Id, acct.Username, acct.Instance)

	// Polling carries the account until streaming is established
	slot.poller.Activate()
	slot.client.Connect()
}

func (d *deck) reduceDetach(accountId string) {

	slot := d.slots[accountId]
	if slot == nil {
		return
	}

	// One atomic teardown: connection closed, reconnect timer cancelled,
	// polling timer cancelled. Anything still in flight from this account
	// gets dropped below because the slot is gone.
	slot.client.Disconnect()
	slot.poller.Stop()

	d.mu.Lock()
	delete(d.slots, accountId)
	d.mu.Unlock()
	d.metrics.AccountsTracked(len(d.slots))
	d.logger.Infof("Detached account %s", accountId)

	d.recomputeNotifications()
	d.notify(DeckChange{Kind: DcNotifications})
}

func (d *deck) reduceRefresh() {
	d.logger.Info("Manual refresh requested")
	for id, slot := range d.slots {
		if len(slot.pollErrs) != 0 {
			d.mu.Lock()
			slot.pollErrs = make(map[FeedKind]string)
			d.mu.Unlock()
			d.notify(DeckChange{Kind: DcPollErrors, AccountId: id})
		}
		// Drops the cursors and fetches from scratch, streaming or not
		slot.poller.ForceRefresh()
	}
}

func (d *deck) reduceStatus(accountId string, status ConnStatus) {

	slot := d.slots[accountId]
	if slot == nil {
		return
	}

	d.mu.Lock()
	slot.connStatus = status
	d.mu.Unlock()
	d.logger.Debugf("Account %s connection status: %s", accountId, status)

	// The scheduler runs exactly when the account is not streaming
	if status == CsStreaming {
		slot.poller.Deactivate()
	} else {
		slot.poller.Activate()
	}
	d.notify(DeckChange{Kind: DcConnStatus, AccountId: accountId})
}

func (d *deck) reducePush(accountId string, upd *StreamUpdate) {

	slot := d.slots[accountId]
	if slot == nil {
		return
	}

	switch upd.Kind {
	case SuStatus:
		if _, exists := slot.pushedById[upd.Status.Id]; !exists {
			slot.pushedOrder = append(slot.pushedOrder, upd.Status.Id)
		}
		slot.pushedById[upd.Status.Id] = upd.Status
		d.recomputeTimeline(slot)
		d.notify(DeckChange{Kind: DcTimeline, AccountId: accountId})
	case SuNotification:
		if _, exists := slot.pushedNotifById[upd.Notification.Id]; !exists {
			slot.pushedNotifOrder = append(slot.pushedNotifOrder, upd.Notification.Id)
		}
		slot.pushedNotifById[upd.Notification.Id] = upd.Notification
		d.recomputeNotifications()
		d.notify(DeckChange{Kind: DcNotifications})
	case SuDelete:
		// Removes the pushed copy only. A copy that came in via polling
		// stays until the next full refresh.
		if _, exists := slot.pushedById[upd.DeleteId]; exists {
			delete(slot.pushedById, upd.DeleteId)
			for i, id := range slot.pushedOrder {
				if id == upd.DeleteId {
					slot.pushedOrder = append(slot.pushedOrder[:i], slot.pushedOrder[i+1:]...)
					break
				}
			}
			d.recomputeTimeline(slot)
			d.notify(DeckChange{Kind: DcTimeline, AccountId: accountId})
		}
	case SuFiltersChanged:
		d.logger.Debugf("Filters changed for account %s", accountId)
	}
}

func (d *deck) reducePolledStatuses(accountId string, items []*dto.Status, replace bool) {

	slot := d.slots[accountId]
	if slot == nil {
		return
	}

	d.mu.Lock()
	delete(slot.pollErrs, FeedTimeline)
	d.mu.Unlock()
	if len(items) > 0 {
		if replace {
			slot.polled = items
		} else {
			merged := make([]*dto.Status, 0, len(items)+len(slot.polled))
			merged = append(merged, items...)
			merged = append(merged, slot.polled...)
			slot.polled = merged
		}
	}
	d.recomputeTimeline(slot)
	d.notify(DeckChange{Kind: DcTimeline, AccountId: accountId})
}

func (d *deck) reducePolledNotifs(accountId string, items []*dto.Notification, replace bool) {

	slot := d.slots[accountId]
	if slot == nil {
		return
	}

	d.mu.Lock()
	delete(slot.pollErrs, FeedNotifications)
	d.mu.Unlock()
	// Unlike the timeline, a cursorless fetch replaces the polled set even
	// when it comes back empty.
	if replace {
		slot.polledNotifs = items
	} else if len(items) > 0 {
		merged := make([]*dto.Notification, 0, len(items)+len(slot.polledNotifs))
		merged = append(merged, items...)
		merged = append(merged, slot.polledNotifs...)
		slot.polledNotifs = merged
	}
	d.recomputeNotifications()
	d.notify(DeckChange{Kind: DcNotifications})
}

func (d *deck) reducePollFailed(accountId string, feed FeedKind, err error) {

	slot := d.slots[accountId]
	if slot == nil {
		return
	}

	d.mu.Lock()
	slot.pollErrs[feed] = err.Error()
	d.mu.Unlock()
	d.notify(DeckChange{Kind: DcPollErrors, AccountId: accountId})
}

// recomputeTimeline re-derives one account's merged view from scratch:
// pushed items first, then polled, duplicate ids skipped, then a full
// sort by creation time, newest first. The pushed-first insertion is what
// makes a pushed copy win ties against a polled copy of the same id.
func (d *deck) recomputeTimeline(slot *accountSlot) {

	seen := make(map[string]struct{})
	merged := make([]*dto.Status, 0, len(slot.pushedOrder)+len(slot.polled))
	for _, id := range slot.pushedOrder {
		merged = append(merged, slot.pushedById[id])
		seen[id] = struct{}{}
	}
	for _, item := range slot.polled {
		if _, exists := seen[item.Id]; exists {
			continue
		}
		seen[item.Id] = struct{}{}
		merged = append(merged, item)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})

	d.mu.Lock()
	slot.timeline = merged
	d.mu.Unlock()
}

// recomputeNotifications rebuilds the cross-account view. Ids are only
// unique per instance, so deduplication is keyed by account and id.
func (d *deck) recomputeNotifications() {

	seen := make(map[string]struct{})
	var merged []*dto.UnifiedNotification

	add := func(slot *accountSlot, notif *dto.Notification) {
		key := slot.acct.Id + "\x00" + notif.Id
		if _, exists := seen[key]; exists {
			return
		}
		seen[key] = struct{}{}
		merged = append(merged, &dto.UnifiedNotification{
			Notification: notif,
			AccountId:    slot.acct.Id,
			Instance:     slot.acct.Instance,
			Preview:      NotificationPreview(notif),
		})
	}

	// Pushed before polled, so a pushed copy wins id collisions
	for _, slot := range d.slots {
		for _, id := range slot.pushedNotifOrder {
			add(slot, slot.pushedNotifById[id])
		}
	}
	for _, slot := range d.slots {
		for _, notif := range slot.polledNotifs {
			add(slot, notif)
		}
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Notification.CreatedAt.After(merged[j].Notification.CreatedAt)
	})

	d.mu.Lock()
	d.notifs = merged
	d.mu.Unlock()
}

func (d *deck) notify(change DeckChange) {
	d.mu.RLock()
	cbs := make([]func(DeckChange), len(d.cbs))
	copy(cbs, d.cbs)
	d.mu.RUnlock()
	for _, cb := range cbs {
		cb(change)
	}
}
