package fiber

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"adtrack-service/internal/analytics/core/domain"
	"adtrack-service/internal/analytics/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type GetAnalyticsUseCase interface {
	GlobalCounts(ctx context.Context) (*domain.GlobalCounts, error)
	PackageAnalytics(ctx context.Context, in usecase.PackageAnalyticsInput) (*domain.PackageAnalytics, error)
	AdAnalytics(ctx context.Context, in usecase.AdAnalyticsInput) (*domain.AdAnalytics, error)
	TimeframeEvents(ctx context.Context, in usecase.TimeframeInput) (*domain.TimeframeResult, error)
	DailyViewSeries(ctx context.Context) ([]domain.DailyViewBucket, error)
}

type AnalyticsHandler struct {
	uc GetAnalyticsUseCase
}

func NewAnalyticsHandler(uc GetAnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// GetStats godoc
// @Summary Global view/click counts
// @Description Tallies views and clicks over the whole event log
// @Tags Analytics
// @Produce json
// @Success 200 {object} StatsResponse
// @Failure 500 {object} ErrorResponse
// @Router /stats [get]
func (h *AnalyticsHandler) GetStats(c *fiber.Ctx) error {
	res, err := h.uc.GlobalCounts(c.UserContext())
	if err != nil {
		return storageError(c, err)
	}

	return c.Status(http.StatusOK).JSON(StatsResponse{
		TotalViews:  res.TotalViews,
		TotalClicks: res.TotalClicks,
	})
}

// GetPackageAnalytics godoc
// @Summary Per-package analytics
// @Description Counts, CTR and matching events for one package, optionally inside an inclusive from/to window (unix seconds)
// @Tags Analytics
// @Produce json
// @Param packageId path string true "Package id"
// @Param from query int false "Window start (unix seconds, inclusive)"
// @Param to query int false "Window end (unix seconds, inclusive)"
// @Success 200 {object} PackageAnalyticsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /analytics/packages/{packageId} [get]
func (h *AnalyticsHandler) GetPackageAnalytics(c *fiber.Ctx) error {
	in := usecase.PackageAnalyticsInput{
		PackageID: c.Params("packageId"),
	}

	var err error
	if in.From, err = optionalUnixParam(c, "from"); err != nil {
		return badRequest(c, "invalid 'from' parameter")
	}
	if in.To, err = optionalUnixParam(c, "to"); err != nil {
		return badRequest(c, "invalid 'to' parameter")
	}

	res, err := h.uc.PackageAnalytics(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingPackageID),
			errors.Is(err, usecase.ErrInvalidTimeRange):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_query",
				Message: err.Error(),
			})
		default:
			return storageError(c, err)
		}
	}

	return c.Status(http.StatusOK).JSON(PackageAnalyticsResponse{
		PackageID:   res.PackageID,
		TotalViews:  res.TotalViews,
		TotalClicks: res.TotalClicks,
		CTR:         res.CTR,
		Events:      toEventResponses(res.Events),
	})
}

// GetAdAnalytics godoc
// @Summary Per-ad analytics
// @Description Counts, CTR and matching events for one ad across all time
// @Tags Analytics
// @Produce json
// @Param adId path string true "Ad id"
// @Success 200 {object} AdAnalyticsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /analytics/ads/{adId} [get]
func (h *AnalyticsHandler) GetAdAnalytics(c *fiber.Ctx) error {
	in := usecase.AdAnalyticsInput{
		AdID: c.Params("adId"),
	}

	res, err := h.uc.AdAnalytics(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingAdID):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_query",
				Message: err.Error(),
			})
		default:
			return storageError(c, err)
		}
	}

	return c.Status(http.StatusOK).JSON(AdAnalyticsResponse{
		AdID:        res.AdID,
		TotalViews:  res.TotalViews,
		TotalClicks: res.TotalClicks,
		CTR:         res.CTR,
		Events:      toEventResponses(res.Events),
	})
}

// GetTimeframeEvents godoc
// @Summary Events inside a time window
// @Description All events with a timestamp inside the required inclusive from/to window (unix seconds)
// @Tags Analytics
// @Produce json
// @Param from query int true "Window start (unix seconds, inclusive)"
// @Param to query int true "Window end (unix seconds, inclusive)"
// @Success 200 {object} TimeframeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /events [get]
func (h *AnalyticsHandler) GetTimeframeEvents(c *fiber.Ctx) error {
	fromStr := c.Query("from", "")
	toStr := c.Query("to", "")
	if fromStr == "" || toStr == "" {
		return badRequest(c, "from and to are required")
	}

	from, err := strconv.ParseInt(fromStr, 10, 64)
	if err != nil {
		return badRequest(c, "invalid 'from' parameter")
	}
	to, err := strconv.ParseInt(toStr, 10, 64)
	if err != nil {
		return badRequest(c, "invalid 'to' parameter")
	}

	res, err := h.uc.TimeframeEvents(c.UserContext(), usecase.TimeframeInput{
		From: from,
		To:   to,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidTimeRange):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_query",
				Message: err.Error(),
			})
		default:
			return storageError(c, err)
		}
	}

	return c.Status(http.StatusOK).JSON(TimeframeResponse{
		From:   res.From,
		To:     res.To,
		Count:  res.Count,
		Events: toEventResponses(res.Events),
	})
}

// GetDailyViewSeries godoc
// @Summary Daily view counts
// @Description View events grouped by UTC calendar date, ascending
// @Tags Analytics
// @Produce json
// @Success 200 {object} DailyViewsResponse
// @Failure 500 {object} ErrorResponse
// @Router /analytics/daily-views [get]
func (h *AnalyticsHandler) GetDailyViewSeries(c *fiber.Ctx) error {
	series, err := h.uc.DailyViewSeries(c.UserContext())
	if err != nil {
		return storageError(c, err)
	}

	resp := DailyViewsResponse{
		Series: make([]DailyViewBucketResponse, 0, len(series)),
	}
	for _, b := range series {
		resp.Series = append(resp.Series, DailyViewBucketResponse{
			Date:      b.Date,
			ViewCount: b.ViewCount,
		})
	}

	return c.Status(http.StatusOK).JSON(resp)
}

func toEventResponses(events []domain.EventRecord) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, EventResponse{
			ID:        e.ID,
			PackageID: e.PackageID,
			AdID:      e.AdID,
			DeviceID:  e.DeviceID,
			Type:      e.Type,
			Timestamp: e.Timestamp.Unix(),
		})
	}
	return out
}

func optionalUnixParam(c *fiber.Ctx, name string) (*int64, error) {
	raw := c.Query(name, "")
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(fiber.Map{
		"error": msg,
	})
}

func storageError(c *fiber.Ctx, err error) error {
	return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
		Error:   "storage_error",
		Message: err.Error(),
	})
}
