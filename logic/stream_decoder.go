package logic

import (
	"encoding/json"
	"fedi_deck/dto"
	"fmt"
)

type StreamUpdateKind int32

const (
	SuStatus         StreamUpdateKind = 0
	SuNotification   StreamUpdateKind = 1
	SuDelete         StreamUpdateKind = 2
	SuFiltersChanged StreamUpdateKind = 3
)

func (k StreamUpdateKind) String() string {
	switch k {
	case SuStatus:
		return "update"
	case SuNotification:
		return "notification"
	case SuDelete:
		return "delete"
	case SuFiltersChanged:
		return "filters_changed"
	}
	return "unknown"
}

// StreamUpdate is one decoded streaming event. Exactly one of Status,
// Notification and DeleteId is set, per Kind; filters_changed carries
// nothing.
type StreamUpdate struct {
	Kind         StreamUpdateKind
	Status       *dto.Status
	Notification *dto.Notification
	DeleteId     string
}

// DecodeStreamFrame turns one raw frame into a typed update. It never
// panics on malformed input; callers log the error and drop the frame
// without touching the connection.
func DecodeStreamFrame(data []byte) (*StreamUpdate, error) {

	var envelope dto.StreamEvent
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("malformed stream frame: %v", err)
	}

	switch envelope.Event {
	case "update":
		var status dto.Status
		if err := json.Unmarshal([]byte(envelope.Payload), &status); err != nil {
			return nil, fmt.Errorf("malformed status payload: %v", err)
		}
		if status.Id == "" {
			return nil, fmt.Errorf("status payload without id")
		}
		return &StreamUpdate{Kind: SuStatus, Status: &status}, nil
	case "notification":
		var notif dto.Notification
		if err := json.Unmarshal([]byte(envelope.Payload), &notif); err != nil {
			return nil, fmt.Errorf("malformed notification payload: %v", err)
		}
		if notif.Id == "" {
			return nil, fmt.Errorf("notification payload without id")
		}
		return &StreamUpdate{Kind: SuNotification, Notification: &notif}, nil
	case "delete":
		// The payload is the bare status id, not JSON
		if envelope.Payload == "" {
			return nil, fmt.Errorf("delete event without id")
		}
		return &StreamUpdate{Kind: SuDelete, DeleteId: envelope.Payload}, nil
	case "filters_changed":
		return &StreamUpdate{Kind: SuFiltersChanged}, nil
	}
	return nil, fmt.Errorf("unknown stream event kind '%s'", envelope.Event)
}
