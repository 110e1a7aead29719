package fiber

type EventResponse struct {
	ID        string `json:"id"`
	PackageID string `json:"packageId"`
	AdID      string `json:"adId"`
	DeviceID  string `json:"deviceId"`
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
}

type StatsResponse struct {
	TotalViews  int64 `json:"totalViews"`
	TotalClicks int64 `json:"totalClicks"`
}

type PackageAnalyticsResponse struct {
	PackageID   string          `json:"packageId"`
	TotalViews  int64           `json:"totalViews"`
	TotalClicks int64           `json:"totalClicks"`
	CTR         float64         `json:"ctr"`
	Events      []EventResponse `json:"events"`
}

type AdAnalyticsResponse struct {
	AdID        string          `json:"adId"`
	TotalViews  int64           `json:"totalViews"`
	TotalClicks int64           `json:"totalClicks"`
	CTR         float64         `json:"ctr"`
	Events      []EventResponse `json:"events"`
}

type TimeframeResponse struct {
	From   int64           `json:"from"`
	To     int64           `json:"to"`
	Count  int             `json:"count"`
	Events []EventResponse `json:"events"`
}

type DailyViewBucketResponse struct {
	Date      string `json:"date"`
	ViewCount int64  `json:"viewCount"`
}

type DailyViewsResponse struct {
	Series []DailyViewBucketResponse `json:"series"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_query"`
	Message string `json:"message" example:"packageId is required"`
}
