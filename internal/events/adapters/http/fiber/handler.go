package fiber

import (
	"context"
	"errors"
	"net/http"

	"adtrack-service/internal/events/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type RecordEventUseCase interface {
	Execute(ctx context.Context, in usecase.RecordEventInput) (string, error)
	RecordBatch(ctx context.Context, in usecase.RecordBatchInput) (usecase.RecordBatchResult, error)
}

type EventHandler struct {
	recordUC RecordEventUseCase
}

func NewEventHandler(recordUC RecordEventUseCase) *EventHandler {
	return &EventHandler{recordUC: recordUC}
}

// CreateEvent godoc
// @Summary Record an ad interaction
// @Description Appends a single view or click event with a server-assigned timestamp
// @Tags Events
// @Accept json
// @Produce json
// @Param request body CreateEventRequest true "Event payload"
// @Success 201 {object} CreateEventResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /events [post]
func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	var req CreateEventRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	input := usecase.RecordEventInput{
		PackageID: req.PackageID,
		AdID:      req.AdID,
		DeviceID:  req.DeviceID,
		Type:      req.Type,
	}

	id, err := h.recordUC.Execute(c.UserContext(), input)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidEvent),
			errors.Is(err, usecase.ErrInvalidEventType):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_event",
				Message: err.Error(),
			})
		default:
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error:   "storage_error",
				Message: err.Error(),
			})
		}
	}

	resp := CreateEventResponse{
		ID:     id,
		Status: "created",
	}
	return c.Status(http.StatusCreated).JSON(resp)
}

// BatchCreateEvents godoc
// @Summary Record a batch of ad interactions
// @Description Appends caller-timestamped events in order; a mid-batch failure leaves earlier appends in place
// @Tags Events
// @Accept json
// @Produce json
// @Param request body BatchCreateEventsRequest true "Batch event payload"
// @Success 201 {object} BatchCreateEventsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /events/batch [post]
func (h *EventHandler) BatchCreateEvents(c *fiber.Ctx) error {
	var req BatchCreateEventsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	if len(req.Events) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "events_list_required",
		})
	}

	inputs := make([]usecase.BatchEventInput, len(req.Events))
	for i, e := range req.Events {
		inputs[i] = usecase.BatchEventInput{
			PackageID: e.PackageID,
			AdID:      e.AdID,
			DeviceID:  e.DeviceID,
			Type:      e.Type,
			Timestamp: e.Timestamp,
		}
	}

	result, err := h.recordUC.RecordBatch(
		c.UserContext(),
		usecase.RecordBatchInput{Events: inputs},
	)
	if err != nil {
		// "appended" reports writes that landed before the failure; the
		// batch has no atomicity across elements.
		switch {
		case errors.Is(err, usecase.ErrInvalidEvent),
			errors.Is(err, usecase.ErrInvalidEventType),
			errors.Is(err, usecase.ErrMissingTimestamp):
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error":    "invalid_event",
				"message":  err.Error(),
				"appended": result.Appended,
			})
		default:
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
				"error":    "storage_error",
				"message":  err.Error(),
				"appended": result.Appended,
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(BatchCreateEventsResponse{
		Appended: result.Appended,
		IDs:      result.IDs,
	})
}
