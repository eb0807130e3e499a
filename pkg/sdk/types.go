package tagrank

import (
	"time"

	"github.com/clipstack/tagrank/internal/domain/item"
	"github.com/clipstack/tagrank/internal/domain/search/result"
)

// Visibility controls whether an item appears on the public search surface.
type Visibility string

const (
	// Public items are searchable by anyone.
	Public Visibility = "public"
	// Private items are reachable only by their owner.
	Private Visibility = "private"
)

// Item is a content item as returned by the SDK.
type Item struct {
	ID           string
	OwnerID      string
	Title        string
	Description  string
	Tags         []string
	Visibility   Visibility
	ThumbnailRef string
	DurationSec  float64
	Views        int64
	CreatedAt    time.Time
}

// CreateItemParams describes a new item.
type CreateItemParams struct {
	OwnerID      string
	Title        string
	Description  string
	Visibility   Visibility // defaults to Public
	ThumbnailRef string
	DurationSec  float64
}

// SearchOptions tune one search invocation.
type SearchOptions struct {
	ViewerID string // empty for anonymous
	Page     int    // 1-based, defaults to 1
	Limit    int    // defaults to 10, max 30
}

// SearchEntry is one ranked search hit.
type SearchEntry struct {
	ID           string
	Title        string
	ThumbnailRef string
	OwnerID      string
	Views        int64
	Likes        int64
	Comments     int64
	Score        float64
	CreatedAt    time.Time
}

// SearchPage is a bounded window of ranked entries. Degraded is set when
// the candidate retrieval ceiling was hit.
type SearchPage struct {
	Entries    []SearchEntry
	Page       int
	Limit      int
	TotalCount int
	Degraded   bool
}

// FeedPage is a recency window of items.
type FeedPage struct {
	Items      []Item
	Page       int
	Limit      int
	TotalCount int
}

// Engagement holds like and comment counters for one item.
type Engagement struct {
	Likes    int64
	Comments int64
}

func itemFromDomain(it item.Item) Item {
	return Item{
		ID:           it.ID(),
		OwnerID:      it.OwnerID(),
		Title:        it.Title(),
		Description:  it.Description(),
		Tags:         it.Tags(),
		Visibility:   Visibility(it.Visibility()),
		ThumbnailRef: it.ThumbnailRef(),
		DurationSec:  it.DurationSec(),
		Views:        it.Views(),
		CreatedAt:    time.Unix(it.CreatedAt(), 0).UTC(),
	}
}

func searchPageFromDomain(p result.Page) SearchPage {
	entries := make([]SearchEntry, len(p.Entries))
	for i, e := range p.Entries {
		entries[i] = SearchEntry{
			ID:           e.ID,
			Title:        e.Title,
			ThumbnailRef: e.ThumbnailRef,
			OwnerID:      e.OwnerID,
			Views:        e.Views,
			Likes:        e.Likes,
			Comments:     e.Comments,
			Score:        e.Score,
			CreatedAt:    time.Unix(e.CreatedAt, 0).UTC(),
		}
	}
	return SearchPage{
		Entries:    entries,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalCount: p.TotalCount,
		Degraded:   p.Degraded,
	}
}
