package ports

import (
	"context"

	"adtrack-service/internal/events/core/domain"
)

type EventRepositoryPort interface {
	// InsertEvent appends a single event and returns the identifier the
	// store assigned to it. The id is only ever echoed back to callers;
	// no query logic depends on it.
	InsertEvent(ctx context.Context, e *domain.Event) (id string, err error)
}
