package chi

import "time"

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type createItemRequest struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Visibility   string  `json:"visibility,omitempty"`
	ThumbnailRef string  `json:"thumbnail_ref,omitempty"`
	DurationSec  float64 `json:"duration_sec,omitempty"`
}

type updateItemRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type setVisibilityRequest struct {
	Visibility string `json:"visibility"`
}

type recordEngagementRequest struct {
	Likes    int64 `json:"likes,omitempty"`
	Comments int64 `json:"comments,omitempty"`
}

type engagementResponse struct {
	Likes    int64 `json:"likes"`
	Comments int64 `json:"comments"`
}

type itemResponse struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"owner_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Tags         []string  `json:"tags"`
	Visibility   string    `json:"visibility"`
	ThumbnailRef string    `json:"thumbnail_ref,omitempty"`
	DurationSec  float64   `json:"duration_sec,omitempty"`
	Views        int64     `json:"views"`
	CreatedAt    time.Time `json:"created_at"`
}

type itemListResponse struct {
	Items      []itemResponse `json:"items"`
	Page       int            `json:"page,omitempty"`
	Limit      int            `json:"limit,omitempty"`
	TotalCount int            `json:"total_count"`
}

type searchEntryResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	ThumbnailRef string    `json:"thumbnail_ref,omitempty"`
	OwnerID      string    `json:"owner_id"`
	Views        int64     `json:"views"`
	Likes        int64     `json:"likes"`
	Comments     int64     `json:"comments"`
	Score        float64   `json:"score"`
	CreatedAt    time.Time `json:"created_at"`
}

type searchPageResponse struct {
	Items      []searchEntryResponse `json:"items"`
	Page       int                   `json:"page"`
	Limit      int                   `json:"limit"`
	TotalCount int                   `json:"total_count"`
	Degraded   bool                  `json:"degraded,omitempty"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
