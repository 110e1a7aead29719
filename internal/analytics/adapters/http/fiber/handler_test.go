package fiber_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	httpadapter "adtrack-service/internal/analytics/adapters/http/fiber"
	"adtrack-service/internal/analytics/core/domain"
	"adtrack-service/internal/analytics/core/usecase"

	"github.com/gofiber/fiber/v2"
)

// Fake usecase implementing the interface that handler depends on.
type fakeAnalyticsUseCase struct {
	GlobalCountsFn     func(ctx context.Context) (*domain.GlobalCounts, error)
	PackageAnalyticsFn func(ctx context.Context, in usecase.PackageAnalyticsInput) (*domain.PackageAnalytics, error)
	AdAnalyticsFn      func(ctx context.Context, in usecase.AdAnalyticsInput) (*domain.AdAnalytics, error)
	TimeframeEventsFn  func(ctx context.Context, in usecase.TimeframeInput) (*domain.TimeframeResult, error)
	DailyViewSeriesFn  func(ctx context.Context) ([]domain.DailyViewBucket, error)
}

func (f *fakeAnalyticsUseCase) GlobalCounts(ctx context.Context) (*domain.GlobalCounts, error) {
	return f.GlobalCountsFn(ctx)
}

func (f *fakeAnalyticsUseCase) PackageAnalytics(ctx context.Context, in usecase.PackageAnalyticsInput) (*domain.PackageAnalytics, error) {
	return f.PackageAnalyticsFn(ctx, in)
}

func (f *fakeAnalyticsUseCase) AdAnalytics(ctx context.Context, in usecase.AdAnalyticsInput) (*domain.AdAnalytics, error) {
	return f.AdAnalyticsFn(ctx, in)
}

func (f *fakeAnalyticsUseCase) TimeframeEvents(ctx context.Context, in usecase.TimeframeInput) (*domain.TimeframeResult, error) {
	return f.TimeframeEventsFn(ctx, in)
}

func (f *fakeAnalyticsUseCase) DailyViewSeries(ctx context.Context) ([]domain.DailyViewBucket, error) {
	return f.DailyViewSeriesFn(ctx)
}

func setupApp(t *testing.T, uc httpadapter.GetAnalyticsUseCase) *fiber.App {
	t.Helper()
	app := fiber.New()
	h := httpadapter.NewAnalyticsHandler(uc)
	app.Get("/stats", h.GetStats)
	app.Get("/events", h.GetTimeframeEvents)
	app.Get("/analytics/packages/:packageId", h.GetPackageAnalytics)
	app.Get("/analytics/ads/:adId", h.GetAdAnalytics)
	app.Get("/analytics/daily-views", h.GetDailyViewSeries)
	return app
}

func get(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	return resp
}

// ------------------------------------------------------------
// STATS
// ------------------------------------------------------------

func TestGetStats(t *testing.T) {
	uc := &fakeAnalyticsUseCase{
		GlobalCountsFn: func(ctx context.Context) (*domain.GlobalCounts, error) {
			return &domain.GlobalCounts{TotalViews: 10, TotalClicks: 4}, nil
		},
	}
	app := setupApp(t, uc)

	resp := get(t, app, "/stats")

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var body struct {
		TotalViews  int64 `json:"totalViews"`
		TotalClicks int64 `json:"totalClicks"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.TotalViews != 10 || body.TotalClicks != 4 {
		t.Fatalf("unexpected body: %+v", body)
	}
}

// ------------------------------------------------------------
// PACKAGE ANALYTICS
// ------------------------------------------------------------

func TestGetPackageAnalytics_WithWindow(t *testing.T) {
	uc := &fakeAnalyticsUseCase{
		PackageAnalyticsFn: func(ctx context.Context, in usecase.PackageAnalyticsInput) (*domain.PackageAnalytics, error) {
			if in.PackageID != "com.example.app" {
				t.Fatalf("expected packageId from path, got %s", in.PackageID)
			}
			if in.From == nil || *in.From != 100 || in.To == nil || *in.To != 200 {
				t.Fatalf("expected window [100,200], got %+v", in)
			}
			return &domain.PackageAnalytics{
				PackageID:   in.PackageID,
				TotalViews:  2,
				TotalClicks: 1,
				CTR:         50.00,
				Events: []domain.EventRecord{
					{ID: "1", PackageID: in.PackageID, AdID: "ad_1", DeviceID: "d1", Type: "view", Timestamp: time.Unix(150, 0).UTC()},
				},
			}, nil
		},
	}
	app := setupApp(t, uc)

	params := url.Values{}
	params.Set("from", "100")
	params.Set("to", "200")

	resp := get(t, app, "/analytics/packages/com.example.app?"+params.Encode())

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var body struct {
		PackageID string  `json:"packageId"`
		CTR       float64 `json:"ctr"`
		Events    []struct {
			ID        string `json:"id"`
			Timestamp int64  `json:"timestamp"`
		} `json:"events"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.PackageID != "com.example.app" || body.CTR != 50.00 {
		t.Fatalf("unexpected body: %+v", body)
	}
	if len(body.Events) != 1 || body.Events[0].ID != "1" || body.Events[0].Timestamp != 150 {
		t.Fatalf("unexpected events: %+v", body.Events)
	}
}

func TestGetPackageAnalytics_BadWindowParam(t *testing.T) {
	uc := &fakeAnalyticsUseCase{
		PackageAnalyticsFn: func(ctx context.Context, in usecase.PackageAnalyticsInput) (*domain.PackageAnalytics, error) {
			t.Fatalf("usecase must not be called for unparseable params")
			return nil, nil
		},
	}
	app := setupApp(t, uc)

	resp := get(t, app, "/analytics/packages/com.example.app?from=abc&to=200")

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.StatusCode)
	}
}

func TestGetPackageAnalytics_ValidationError(t *testing.T) {
	uc := &fakeAnalyticsUseCase{
		PackageAnalyticsFn: func(ctx context.Context, in usecase.PackageAnalyticsInput) (*domain.PackageAnalytics, error) {
			return nil, usecase.ErrInvalidTimeRange
		},
	}
	app := setupApp(t, uc)

	resp := get(t, app, "/analytics/packages/com.example.app?from=100")

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.StatusCode)
	}
}

// ------------------------------------------------------------
// AD ANALYTICS
// ------------------------------------------------------------

func TestGetAdAnalytics(t *testing.T) {
	uc := &fakeAnalyticsUseCase{
		AdAnalyticsFn: func(ctx context.Context, in usecase.AdAnalyticsInput) (*domain.AdAnalytics, error) {
			if in.AdID != "ad_42" {
				t.Fatalf("expected adId from path, got %s", in.AdID)
			}
			return &domain.AdAnalytics{
				AdID:        in.AdID,
				TotalViews:  3,
				TotalClicks: 1,
				CTR:         33.33,
			}, nil
		},
	}
	app := setupApp(t, uc)

	resp := get(t, app, "/analytics/ads/ad_42")

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var body struct {
		AdID string  `json:"adId"`
		CTR  float64 `json:"ctr"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.AdID != "ad_42" || body.CTR != 33.33 {
		t.Fatalf("unexpected body: %+v", body)
	}
}

// ------------------------------------------------------------
// TIMEFRAME
// ------------------------------------------------------------

func TestGetTimeframeEvents_MissingParams(t *testing.T) {
	uc := &fakeAnalyticsUseCase{
		TimeframeEventsFn: func(ctx context.Context, in usecase.TimeframeInput) (*domain.TimeframeResult, error) {
			t.Fatalf("usecase must not be called without both bounds")
			return nil, nil
		},
	}
	app := setupApp(t, uc)

	resp := get(t, app, "/events?from=100")

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.StatusCode)
	}
}

func TestGetTimeframeEvents_Success(t *testing.T) {
	uc := &fakeAnalyticsUseCase{
		TimeframeEventsFn: func(ctx context.Context, in usecase.TimeframeInput) (*domain.TimeframeResult, error) {
			if in.From != 100 || in.To != 200 {
				t.Fatalf("expected from=100,to=200, got %+v", in)
			}
			return &domain.TimeframeResult{
				From:  in.From,
				To:    in.To,
				Count: 1,
				Events: []domain.EventRecord{
					{ID: "1", PackageID: "A", AdID: "ad_1", DeviceID: "d1", Type: "click", Timestamp: time.Unix(150, 0).UTC()},
				},
			}, nil
		},
	}
	app := setupApp(t, uc)

	resp := get(t, app, "/events?from=100&to=200")

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var body struct {
		Count  int `json:"count"`
		Events []struct {
			Type string `json:"type"`
		} `json:"events"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Count != 1 || len(body.Events) != 1 || body.Events[0].Type != "click" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

// ------------------------------------------------------------
// DAILY VIEWS
// ------------------------------------------------------------

func TestGetDailyViewSeries(t *testing.T) {
	uc := &fakeAnalyticsUseCase{
		DailyViewSeriesFn: func(ctx context.Context) ([]domain.DailyViewBucket, error) {
			return []domain.DailyViewBucket{
				{Date: "2024-01-01", ViewCount: 1},
				{Date: "2024-01-02", ViewCount: 2},
			}, nil
		},
	}
	app := setupApp(t, uc)

	resp := get(t, app, "/analytics/daily-views")

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var body struct {
		Series []struct {
			Date      string `json:"date"`
			ViewCount int64  `json:"viewCount"`
		} `json:"series"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Series) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(body.Series))
	}
	if body.Series[0].Date != "2024-01-01" || body.Series[1].ViewCount != 2 {
		t.Fatalf("unexpected series: %+v", body.Series)
	}
}

// ------------------------------------------------------------
// STORAGE ERROR
// ------------------------------------------------------------

func TestGetStats_StorageError(t *testing.T) {
	uc := &fakeAnalyticsUseCase{
		GlobalCountsFn: func(ctx context.Context) (*domain.GlobalCounts, error) {
			return nil, context.DeadlineExceeded
		},
	}
	app := setupApp(t, uc)

	resp := get(t, app, "/stats")

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.StatusCode)
	}

	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Error != "storage_error" || body.Message == "" {
		t.Fatalf("expected storage_error with cause, got %+v", body)
	}
}
