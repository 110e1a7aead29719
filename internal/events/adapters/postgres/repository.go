package postgres

import (
	"context"
	"fmt"

	"adtrack-service/internal/events/core/domain"
	"adtrack-service/internal/events/core/ports"

	"github.com/google/uuid"
)

type EventRepository struct {
	db DB
}

func NewEventRepository(db DB) *EventRepository {
	return &EventRepository{db: db}
}

var _ ports.EventRepositoryPort = (*EventRepository)(nil)

// SQL template
const insertEventSQL = `
INSERT INTO ad_events (
    id,
    package_id,
    ad_id,
    device_id,
    event_type,
    event_time
) VALUES (
    $1, $2, $3, $4, $5, $6
);
`

func (r *EventRepository) InsertEvent(ctx context.Context, e *domain.Event) (string, error) {
	// The store assigns the id at append time; it is opaque to everything
	// but the caller it gets echoed back to.
	id := uuid.NewString()

	_, err := r.db.ExecContext(ctx, insertEventSQL,
		id,
		e.PackageID,
		e.AdID,
		e.DeviceID,
		string(e.Type),
		e.Timestamp,
	)
	if err != nil {
		return "", fmt.Errorf("insert ad event: %w", err)
	}

	return id, nil
}
