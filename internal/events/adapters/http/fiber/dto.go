package fiber

// CreateEventRequest represents a single ad interaction payload
// @Description Ad event creation DTO
type CreateEventRequest struct {
	PackageID string `json:"packageId"`
	AdID      string `json:"adId"`
	DeviceID  string `json:"deviceId"`
	Type      string `json:"type"`
}

type CreateEventResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type BatchCreateEventsRequest struct {
	Events []batchEventItem `json:"events"`
}

type batchEventItem struct {
	PackageID string `json:"packageId"`
	AdID      string `json:"adId"`
	DeviceID  string `json:"deviceId"`
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
}

type BatchCreateEventsResponse struct {
	Appended int      `json:"appended"`
	IDs      []string `json:"ids"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_event"`
	Message string `json:"message" example:"Event payload is invalid"`
}
