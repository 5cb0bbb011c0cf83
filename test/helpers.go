package test

import (
	"encoding/json"
	"fedi_deck/dto"
	"fedi_deck/logic"
	"strings"
	"sync"
	"time"
)

// hasPrefix matches any string argument starting with the given prefix.
type hasPrefix string

func (p hasPrefix) Matches(x any) bool {
	str, ok := x.(string)
	return ok && strings.HasPrefix(str, string(p))
}

func (p hasPrefix) String() string {
	return "has prefix " + string(p)
}

var feedEpoch = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func makeStatus(id string, minute int) *dto.Status {
	return &dto.Status{
		Id:        id,
		CreatedAt: feedEpoch.Add(time.Duration(minute) * time.Minute),
		Content:   "<p>status " + id + "</p>",
	}
}

func makeNotif(id string, minute int, withStatus bool) *dto.Notification {
	res := &dto.Notification{
		Id:        id,
		Type:      "mention",
		CreatedAt: feedEpoch.Add(time.Duration(minute) * time.Minute),
	}
	if withStatus {
		res.Status = makeStatus("st-"+id, minute)
	}
	return res
}

func makeStatusFrame(status *dto.Status) []byte {
	payload, _ := json.Marshal(status)
	frame, _ := json.Marshal(dto.StreamEvent{Event: "update", Payload: string(payload)})
	return frame
}

func makeNotifFrame(notif *dto.Notification) []byte {
	payload, _ := json.Marshal(notif)
	frame, _ := json.Marshal(dto.StreamEvent{Event: "notification", Payload: string(payload)})
	return frame
}

func makeDeleteFrame(id string) []byte {
	frame, _ := json.Marshal(dto.StreamEvent{Event: "delete", Payload: id})
	return frame
}

func timelineIds(items []*dto.Status) []string {
	res := make([]string, 0, len(items))
	for _, item := range items {
		res = append(res, item.Id)
	}
	return res
}

// statusRecorder collects connection status transitions from a stream
// client, for asserting exact sequences.
type statusRecorder struct {
	mu       sync.Mutex
	statuses []logic.ConnStatus
}

func (r *statusRecorder) record(status logic.ConnStatus) {
	r.mu.Lock()
	r.statuses = append(r.statuses, status)
	r.mu.Unlock()
}

func (r *statusRecorder) all() []logic.ConnStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := make([]logic.ConnStatus, len(r.statuses))
	copy(res, r.statuses)
	return res
}

func (r *statusRecorder) last() logic.ConnStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.statuses) == 0 {
		return logic.CsDisconnected
	}
	return r.statuses[len(r.statuses)-1]
}

// fakeSink is an in-memory feed sink recording everything a poller
// delivers.
type fakeSink struct {
	mu          sync.Mutex
	statusCalls []sinkStatusCall
	notifCalls  []sinkNotifCall
	failures    []sinkFailure
}

type sinkStatusCall struct {
	accountId string
	items     []*dto.Status
	replace   bool
}

type sinkNotifCall struct {
	accountId string
	items     []*dto.Notification
	replace   bool
}

type sinkFailure struct {
	accountId string
	feed      logic.FeedKind
	err       error
}

func (s *fakeSink) PolledStatuses(accountId string, items []*dto.Status, replace bool) {
	s.mu.Lock()
	s.statusCalls = append(s.statusCalls, sinkStatusCall{accountId, items, replace})
	s.mu.Unlock()
}

func (s *fakeSink) PolledNotifications(accountId string, items []*dto.Notification, replace bool) {
	s.mu.Lock()
	s.notifCalls = append(s.notifCalls, sinkNotifCall{accountId, items, replace})
	s.mu.Unlock()
}

func (s *fakeSink) PollFailed(accountId string, feed logic.FeedKind, err error) {
	s.mu.Lock()
	s.failures = append(s.failures, sinkFailure{accountId, feed, err})
	s.mu.Unlock()
}

func (s *fakeSink) statusCallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.statusCalls)
}

func (s *fakeSink) notifCallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.notifCalls)
}

func (s *fakeSink) failureCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.failures)
}

func (s *fakeSink) statusCall(i int) sinkStatusCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statusCalls[i]
}

func (s *fakeSink) failure(i int) sinkFailure {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failures[i]
}
