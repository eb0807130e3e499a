package tagrank

import (
	"context"
	"time"

	"github.com/clipstack/tagrank/internal/domain/item"
	"github.com/clipstack/tagrank/internal/domain/search/request"
	contentuc "github.com/clipstack/tagrank/internal/usecase/content"
	engagementuc "github.com/clipstack/tagrank/internal/usecase/engagement"
	feeduc "github.com/clipstack/tagrank/internal/usecase/feed"
	searchuc "github.com/clipstack/tagrank/internal/usecase/search"
)

// SearchService runs ranked queries over public items.
type SearchService struct {
	svc *searchuc.Service
	obs *observer
}

// Query executes one ranked search. Fails with ErrInvalidQuery when the
// query is empty or normalizes to nothing.
func (s *SearchService) Query(ctx context.Context, query string, opts SearchOptions) (page SearchPage, err error) {
	start := time.Now()
	defer func() { s.obs.observe("search", start, err) }()

	req := request.New(query, opts.ViewerID, opts.Page, opts.Limit)
	res, err := s.svc.Search(ctx, req)
	if err != nil {
		return SearchPage{}, err
	}
	return searchPageFromDomain(res), nil
}

// ExpandQuery normalizes a raw query into its tag tokens without running
// the search. Useful for suggesting or debugging vocabularies.
func (s *SearchService) ExpandQuery(query string) ([]string, error) {
	return searchuc.ExpandQuery(query)
}

// ItemService manages content items.
type ItemService struct {
	svc *contentuc.Service
	obs *observer
}

// Create validates and persists a new item, deriving its tag set from
// title and description.
func (s *ItemService) Create(ctx context.Context, p CreateItemParams) (it Item, err error) {
	start := time.Now()
	defer func() { s.obs.observe("item_create", start, err) }()

	vis := p.Visibility
	if vis == "" {
		vis = Public
	}
	created, err := s.svc.Create(ctx, p.OwnerID, p.Title, p.Description,
		item.Visibility(vis), p.ThumbnailRef, p.DurationSec)
	if err != nil {
		return Item{}, err
	}
	return itemFromDomain(created), nil
}

// Get fetches one item and counts the view. Private items are visible to
// their owner only.
func (s *ItemService) Get(ctx context.Context, id, viewerID string) (it Item, err error) {
	start := time.Now()
	defer func() { s.obs.observe("item_get", start, err) }()

	got, err := s.svc.Get(ctx, id, viewerID)
	if err != nil {
		return Item{}, err
	}
	return itemFromDomain(got), nil
}

// UpdateText changes title and description, re-deriving the tag set.
func (s *ItemService) UpdateText(ctx context.Context, id, ownerID, title, description string) (it Item, err error) {
	start := time.Now()
	defer func() { s.obs.observe("item_update", start, err) }()

	updated, err := s.svc.UpdateText(ctx, id, ownerID, title, description)
	if err != nil {
		return Item{}, err
	}
	return itemFromDomain(updated), nil
}

// SetVisibility toggles an item between public and private.
func (s *ItemService) SetVisibility(ctx context.Context, id, ownerID string, v Visibility) (it Item, err error) {
	start := time.Now()
	defer func() { s.obs.observe("item_set_visibility", start, err) }()

	updated, err := s.svc.SetVisibility(ctx, id, ownerID, item.Visibility(v))
	if err != nil {
		return Item{}, err
	}
	return itemFromDomain(updated), nil
}

// Delete removes an item and its engagement counters.
func (s *ItemService) Delete(ctx context.Context, id, ownerID string) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("item_delete", start, err) }()

	return s.svc.Delete(ctx, id, ownerID)
}

// ListByOwner returns the owner's own items newest first, private included.
func (s *ItemService) ListByOwner(ctx context.Context, ownerID string, page, limit int) (items []Item, total int, err error) {
	start := time.Now()
	defer func() { s.obs.observe("item_list", start, err) }()

	got, total, err := s.svc.ListByOwner(ctx, ownerID, page, limit)
	if err != nil {
		return nil, 0, err
	}
	items = make([]Item, len(got))
	for i, it := range got {
		items[i] = itemFromDomain(it)
	}
	return items, total, nil
}

// FeedService serves recency-ordered listings.
type FeedService struct {
	svc *feeduc.Service
	obs *observer
}

// Public returns the newest public items, paginated.
func (s *FeedService) Public(ctx context.Context, page, limit int) (fp FeedPage, err error) {
	start := time.Now()
	defer func() { s.obs.observe("feed_public", start, err) }()

	res, err := s.svc.Public(ctx, page, limit)
	if err != nil {
		return FeedPage{}, err
	}
	return feedPageFromDomain(res), nil
}

// Subscribed returns the newest public items from creators the viewer follows.
func (s *FeedService) Subscribed(ctx context.Context, viewerID string, page, limit int) (fp FeedPage, err error) {
	start := time.Now()
	defer func() { s.obs.observe("feed_subscribed", start, err) }()

	res, err := s.svc.Subscribed(ctx, viewerID, page, limit)
	if err != nil {
		return FeedPage{}, err
	}
	return feedPageFromDomain(res), nil
}

// EngagementService ingests like and comment counter deltas.
type EngagementService struct {
	svc *engagementuc.Service
	obs *observer
}

// Record applies like and comment deltas for one item and returns the
// resulting counters.
func (s *EngagementService) Record(ctx context.Context, itemID string, likes, comments int64) (e Engagement, err error) {
	start := time.Now()
	defer func() { s.obs.observe("engagement_record", start, err) }()

	snap, err := s.svc.Record(ctx, itemID, likes, comments)
	if err != nil {
		return Engagement{}, err
	}
	return Engagement{Likes: snap.Likes, Comments: snap.Comments}, nil
}

func feedPageFromDomain(p feeduc.Page) FeedPage {
	items := make([]Item, len(p.Items))
	for i, it := range p.Items {
		items[i] = itemFromDomain(it)
	}
	return FeedPage{Items: items, Page: p.Page, Limit: p.Limit, TotalCount: p.TotalCount}
}
