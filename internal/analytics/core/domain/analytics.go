package domain

import "time"

// Event types as they appear in the log. Anything else never reaches the
// store; ingestion rejects it.
const (
	EventTypeView  = "view"
	EventTypeClick = "click"
)

// EventRecord is the read-side view of one logged event.
type EventRecord struct {
	ID        string
	PackageID string
	AdID      string
	DeviceID  string
	Type      string
	Timestamp time.Time
}

type GlobalCounts struct {
	TotalViews  int64
	TotalClicks int64
}

type PackageAnalytics struct {
	PackageID   string
	TotalViews  int64
	TotalClicks int64
	CTR         float64 // percentage, rounded to 2 decimals, 0 when no views
	Events      []EventRecord
}

type AdAnalytics struct {
	AdID        string
	TotalViews  int64
	TotalClicks int64
	CTR         float64
	Events      []EventRecord
}

type TimeframeResult struct {
	From   int64 // unix seconds, inclusive
	To     int64 // unix seconds, inclusive
	Count  int
	Events []EventRecord
}

type DailyViewBucket struct {
	Date      string // UTC calendar date, "2006-01-02"
	ViewCount int64
}
