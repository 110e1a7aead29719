package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"adtrack-service/internal/events/core/domain"
	"adtrack-service/internal/events/core/ports"
)

var (
	ErrInvalidEvent     = errors.New("packageId, adId and deviceId are required")
	ErrInvalidEventType = errors.New("event type must be view or click")
	ErrMissingTimestamp = errors.New("timestamp is required")
)

type RecordEventUseCase struct {
	repo ports.EventRepositoryPort
}

func NewRecordEventUseCase(repo ports.EventRepositoryPort) *RecordEventUseCase {
	return &RecordEventUseCase{repo: repo}
}

type RecordEventInput struct {
	PackageID string
	AdID      string
	DeviceID  string
	Type      string
}

// Execute validates and appends a single event. The timestamp is assigned
// here from the server clock; callers cannot influence it on this path.
func (uc *RecordEventUseCase) Execute(ctx context.Context, in RecordEventInput) (string, error) {

	if in.PackageID == "" || in.AdID == "" || in.DeviceID == "" {
		return "", ErrInvalidEvent
	}

	eventType := domain.EventType(in.Type)
	if !eventType.Valid() {
		return "", ErrInvalidEventType
	}

	e := &domain.Event{
		PackageID: in.PackageID,
		AdID:      in.AdID,
		DeviceID:  in.DeviceID,
		Type:      eventType,
		Timestamp: time.Now().UTC(),
	}

	id, err := uc.repo.InsertEvent(ctx, e)
	if err != nil {
		return "", err
	}

	return id, nil
}

type BatchEventInput struct {
	PackageID string
	AdID      string
	DeviceID  string
	Type      string
	Timestamp int64 // unix seconds, caller-supplied and trusted as given
}

type RecordBatchInput struct {
	Events []BatchEventInput
}

type RecordBatchResult struct {
	Appended int
	IDs      []string
}

// RecordBatch appends caller-timestamped events in input order. Each element
// is validated right before its own append: the first invalid element aborts
// the call, but events appended before it stay appended. The result always
// reflects what is durably in the log, error or not.
func (uc *RecordEventUseCase) RecordBatch(ctx context.Context, in RecordBatchInput) (RecordBatchResult, error) {
	var res RecordBatchResult

	for i, ev := range in.Events {
		if err := validateBatchEvent(ev); err != nil {
			return res, fmt.Errorf("event %d: %w", i, err)
		}

		e := &domain.Event{
			PackageID: ev.PackageID,
			AdID:      ev.AdID,
			DeviceID:  ev.DeviceID,
			Type:      domain.EventType(ev.Type),
			Timestamp: time.Unix(ev.Timestamp, 0).UTC(),
		}

		id, err := uc.repo.InsertEvent(ctx, e)
		if err != nil {
			return res, fmt.Errorf("event %d: %w", i, err)
		}

		res.Appended++
		res.IDs = append(res.IDs, id)
	}

	return res, nil
}

func validateBatchEvent(ev BatchEventInput) error {
	if ev.PackageID == "" || ev.AdID == "" || ev.DeviceID == "" {
		return ErrInvalidEvent
	}
	if !domain.EventType(ev.Type).Valid() {
		return ErrInvalidEventType
	}
	if ev.Timestamp == 0 {
		return ErrMissingTimestamp
	}
	return nil
}
