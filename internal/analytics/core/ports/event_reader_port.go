package ports

import (
	"context"
	"time"

	"adtrack-service/internal/analytics/core/domain"
)

// EventFilter is the whole query surface the store offers: exact-match
// filters, one inclusive range on the timestamp, ascending time order.
// Aggregation happens above this port, never inside it.
type EventFilter struct {
	PackageID      *string
	AdID           *string
	Type           *string
	From           *time.Time // inclusive
	To             *time.Time // inclusive
	OrderByTimeAsc bool
}

type EventReaderPort interface {
	QueryEvents(ctx context.Context, f EventFilter) ([]domain.EventRecord, error)
}
