package domain

import "time"

// EventType is the kind of ad interaction. Only views and clicks exist.
type EventType string

const (
	EventTypeView  EventType = "view"
	EventTypeClick EventType = "click"
)

func (t EventType) Valid() bool {
	return t == EventTypeView || t == EventTypeClick
}

// Event is one recorded ad interaction. Events are write-once: nothing in
// this service updates or deletes them after the append.
type Event struct {
	ID        string
	PackageID string
	AdID      string
	DeviceID  string
	Type      EventType
	Timestamp time.Time
}
