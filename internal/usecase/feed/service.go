// Package feed serves recency-ordered item listings: the public explore
// feed for everyone, and the subscriptions feed for authenticated viewers.
package feed

import (
	"context"
	"fmt"
	"sort"

	"github.com/clipstack/tagrank/internal/domain"
	"github.com/clipstack/tagrank/internal/domain/item"
	"github.com/clipstack/tagrank/internal/domain/search/request"
)

// Service handles feed listings.
type Service struct {
	content  ContentStore
	affinity AffinityStore
}

// New creates a feed service.
func New(content ContentStore, affinity AffinityStore) *Service {
	return &Service{content: content, affinity: affinity}
}

// Page is a recency window of items.
type Page struct {
	Items      []item.Item
	Page       int
	Limit      int
	TotalCount int
}

// Public returns the newest public items, paginated.
func (s *Service) Public(ctx context.Context, page, limit int) (Page, error) {
	page, limit = clamp(page, limit)

	items, total, err := s.content.ListPublic(ctx, (page-1)*limit, limit)
	if err != nil {
		return Page{}, fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	return Page{Items: items, Page: page, Limit: limit, TotalCount: total}, nil
}

// Subscribed returns the newest public items from creators the viewer
// follows. A viewer with no subscriptions gets an empty page.
func (s *Service) Subscribed(ctx context.Context, viewerID string, page, limit int) (Page, error) {
	page, limit = clamp(page, limit)

	owners, err := s.affinity.Following(ctx, viewerID)
	if err != nil {
		return Page{}, fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	if len(owners) == 0 {
		return Page{Items: []item.Item{}, Page: page, Limit: limit}, nil
	}

	// Each owner contributes at most the page horizon; the merged list is
	// then re-sorted by recency and sliced. Bounded by owners * horizon.
	horizon := page * limit
	merged := make([]item.Item, 0, len(owners)*limit)
	total := 0
	for _, owner := range owners {
		items, ownerTotal, err := s.content.RecentPublicByOwner(ctx, owner, horizon)
		if err != nil {
			return Page{}, fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
		}
		merged = append(merged, items...)
		total += ownerTotal
	}

	sort.Slice(merged, func(i, j int) bool {
		if merged[i].CreatedAt() != merged[j].CreatedAt() {
			return merged[i].CreatedAt() > merged[j].CreatedAt()
		}
		return merged[i].ID() < merged[j].ID()
	})

	offset := (page - 1) * limit
	if offset >= len(merged) {
		return Page{Items: []item.Item{}, Page: page, Limit: limit, TotalCount: total}, nil
	}
	end := offset + limit
	if end > len(merged) {
		end = len(merged)
	}

	return Page{Items: merged[offset:end], Page: page, Limit: limit, TotalCount: total}, nil
}

// clamp applies the same pagination bounds as search.
func clamp(page, limit int) (int, int) {
	if page < 1 {
		page = request.DefaultPage
	}
	if page > request.MaxPage {
		page = request.MaxPage
	}
	if limit < 1 {
		limit = request.DefaultLimit
	}
	if limit > request.MaxLimit {
		limit = request.MaxLimit
	}
	return page, limit
}
