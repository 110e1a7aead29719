package usecase

import (
	"context"
	"errors"
	"math"
	"sort"
	"time"

	"adtrack-service/internal/analytics/core/domain"
	"adtrack-service/internal/analytics/core/ports"
)

var (
	ErrMissingPackageID = errors.New("packageId is required")
	ErrMissingAdID      = errors.New("adId is required")
	ErrInvalidTimeRange = errors.New("invalid time range")
)

type GetAnalyticsUseCase struct {
	reader ports.EventReaderPort
}

func NewGetAnalyticsUseCase(reader ports.EventReaderPort) *GetAnalyticsUseCase {
	return &GetAnalyticsUseCase{reader: reader}
}

// GlobalCounts tallies views and clicks over the whole event log.
func (uc *GetAnalyticsUseCase) GlobalCounts(ctx context.Context) (*domain.GlobalCounts, error) {
	events, err := uc.reader.QueryEvents(ctx, ports.EventFilter{})
	if err != nil {
		return nil, err
	}

	views, clicks := tally(events)

	return &domain.GlobalCounts{
		TotalViews:  views,
		TotalClicks: clicks,
	}, nil
}

type PackageAnalyticsInput struct {
	PackageID string
	From      *int64 // unix seconds, optional window (both bounds or neither)
	To        *int64
}

// PackageAnalytics computes counts and CTR for one package, optionally
// restricted to an inclusive time window, and returns the matching events.
func (uc *GetAnalyticsUseCase) PackageAnalytics(ctx context.Context, in PackageAnalyticsInput) (*domain.PackageAnalytics, error) {

	if in.PackageID == "" {
		return nil, ErrMissingPackageID
	}
	if (in.From == nil) != (in.To == nil) {
		return nil, ErrInvalidTimeRange
	}

	filter := ports.EventFilter{PackageID: &in.PackageID}

	if in.From != nil {
		if *in.From <= 0 || *in.To <= 0 || *in.From > *in.To {
			return nil, ErrInvalidTimeRange
		}
		from := time.Unix(*in.From, 0).UTC()
		to := time.Unix(*in.To, 0).UTC()
		filter.From = &from
		filter.To = &to
	}

	events, err := uc.reader.QueryEvents(ctx, filter)
	if err != nil {
		return nil, err
	}

	views, clicks := tally(events)

	return &domain.PackageAnalytics{
		PackageID:   in.PackageID,
		TotalViews:  views,
		TotalClicks: clicks,
		CTR:         ctr(views, clicks),
		Events:      events,
	}, nil
}

type AdAnalyticsInput struct {
	AdID string
}

// AdAnalytics computes counts and CTR for one ad across all time.
func (uc *GetAnalyticsUseCase) AdAnalytics(ctx context.Context, in AdAnalyticsInput) (*domain.AdAnalytics, error) {

	if in.AdID == "" {
		return nil, ErrMissingAdID
	}

	events, err := uc.reader.QueryEvents(ctx, ports.EventFilter{AdID: &in.AdID})
	if err != nil {
		return nil, err
	}

	views, clicks := tally(events)

	return &domain.AdAnalytics{
		AdID:        in.AdID,
		TotalViews:  views,
		TotalClicks: clicks,
		CTR:         ctr(views, clicks),
		Events:      events,
	}, nil
}

type TimeframeInput struct {
	From int64 // unix seconds
	To   int64 // unix seconds
}

// TimeframeEvents returns every event with a timestamp inside the inclusive
// window, regardless of package or ad.
func (uc *GetAnalyticsUseCase) TimeframeEvents(ctx context.Context, in TimeframeInput) (*domain.TimeframeResult, error) {

	if in.From <= 0 || in.To <= 0 || in.From > in.To {
		return nil, ErrInvalidTimeRange
	}

	from := time.Unix(in.From, 0).UTC()
	to := time.Unix(in.To, 0).UTC()

	events, err := uc.reader.QueryEvents(ctx, ports.EventFilter{
		From:           &from,
		To:             &to,
		OrderByTimeAsc: true,
	})
	if err != nil {
		return nil, err
	}

	return &domain.TimeframeResult{
		From:   in.From,
		To:     in.To,
		Count:  len(events),
		Events: events,
	}, nil
}

// DailyViewSeries groups view events by their UTC calendar date and returns
// one bucket per distinct date, ascending. The store only orders; the
// grouping key is computed here, so two events in the same UTC day always
// share a bucket no matter how close their timestamps are.
func (uc *GetAnalyticsUseCase) DailyViewSeries(ctx context.Context) ([]domain.DailyViewBucket, error) {
	viewType := domain.EventTypeView

	events, err := uc.reader.QueryEvents(ctx, ports.EventFilter{
		Type:           &viewType,
		OrderByTimeAsc: true,
	})
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64)
	for _, e := range events {
		counts[e.Timestamp.UTC().Format("2006-01-02")]++
	}

	dates := make([]string, 0, len(counts))
	for d := range counts {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	series := make([]domain.DailyViewBucket, 0, len(dates))
	for _, d := range dates {
		series = append(series, domain.DailyViewBucket{
			Date:      d,
			ViewCount: counts[d],
		})
	}

	return series, nil
}

func tally(events []domain.EventRecord) (views, clicks int64) {
	for _, e := range events {
		switch e.Type {
		case domain.EventTypeView:
			views++
		case domain.EventTypeClick:
			clicks++
		}
	}
	return views, clicks
}

// ctr is clicks over views as a percentage, rounded to two decimals.
// Zero views means zero CTR, not a division.
func ctr(views, clicks int64) float64 {
	if views == 0 {
		return 0
	}
	return math.Round(float64(clicks)/float64(views)*10000) / 100
}
