package postgres

import (
	"context"
	"fmt"
	"strings"

	"adtrack-service/internal/analytics/core/domain"
	"adtrack-service/internal/analytics/core/ports"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

type EventReader struct {
	db DB
}

func NewEventReader(db DB) *EventReader {
	return &EventReader{db: db}
}

var _ ports.EventReaderPort = (*EventReader)(nil)

const selectEventsSQL = `
SELECT
    id,
    package_id,
    ad_id,
    device_id,
    event_type,
    event_time
FROM ad_events`

func (r *EventReader) QueryEvents(ctx context.Context, f ports.EventFilter) ([]domain.EventRecord, error) {
	var conds []string
	var args []any
	argIndex := 1

	if f.PackageID != nil {
		conds = append(conds, fmt.Sprintf("package_id = $%d", argIndex))
		args = append(args, *f.PackageID)
		argIndex++
	}
	if f.AdID != nil {
		conds = append(conds, fmt.Sprintf("ad_id = $%d", argIndex))
		args = append(args, *f.AdID)
		argIndex++
	}
	if f.Type != nil {
		conds = append(conds, fmt.Sprintf("event_type = $%d", argIndex))
		args = append(args, *f.Type)
		argIndex++
	}
	if f.From != nil {
		conds = append(conds, fmt.Sprintf("event_time >= $%d", argIndex))
		args = append(args, *f.From)
		argIndex++
	}
	if f.To != nil {
		conds = append(conds, fmt.Sprintf("event_time <= $%d", argIndex))
		args = append(args, *f.To)
		argIndex++
	}

	query := selectEventsSQL
	if len(conds) > 0 {
		query += "\nWHERE " + strings.Join(conds, " AND ")
	}
	if f.OrderByTimeAsc {
		query += "\nORDER BY event_time ASC"
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query ad events: %w", err)
	}
	defer rows.Close()

	var events []domain.EventRecord

	for rows.Next() {
		var e domain.EventRecord
		if err := rows.Scan(&e.ID, &e.PackageID, &e.AdID, &e.DeviceID, &e.Type, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scan ad event: %w", err)
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ad events: %w", err)
	}

	return events, nil
}
