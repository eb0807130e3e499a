// Package result holds the ranked search output types.
package result

// Entry is one ranked item as returned to callers.
type Entry struct {
	ID           string
	Title        string
	ThumbnailRef string
	OwnerID      string
	Views        int64
	Likes        int64
	Comments     int64
	Score        float64
	CreatedAt    int64 // unix seconds
}

// Page is a bounded window of ranked entries.
// Degraded is set when the candidate retrieval ceiling was hit and the
// ranking covered only a truncated candidate set.
type Page struct {
	Entries    []Entry
	Page       int
	Limit      int
	TotalCount int
	Degraded   bool
}
