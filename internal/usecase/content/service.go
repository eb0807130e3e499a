// Package content implements the item write path. Tag derivation runs
// synchronously inside every text mutation: an item is never committed with
// a tag set that does not match its current title and description.
package content

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/clipstack/tagrank/internal/domain"
	"github.com/clipstack/tagrank/internal/domain/item"
	"github.com/clipstack/tagrank/internal/domain/search/request"
)

// Service handles item creation, mutation, and owner listing.
type Service struct {
	repo   Repository
	engage EngagementCleaner
	now    func() time.Time
	newID  func() string
}

// New creates a content service.
func New(repo Repository, engage EngagementCleaner) *Service {
	return &Service{
		repo:   repo,
		engage: engage,
		now:    time.Now,
		newID:  func() string { return uuid.NewString() },
	}
}

// WithClock overrides the time source (tests).
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// WithIDGenerator overrides ID generation (tests).
func (s *Service) WithIDGenerator(newID func() string) *Service {
	s.newID = newID
	return s
}

// Create validates and persists a new item. The tag set is derived from
// title and description before the item is stored.
func (s *Service) Create(
	ctx context.Context, ownerID, title, description string,
	visibility item.Visibility, thumbnailRef string, durationSec float64,
) (item.Item, error) {
	it, err := item.New(
		s.newID(), ownerID, title, description,
		visibility, thumbnailRef, durationSec, s.now().Unix(),
	)
	if err != nil {
		return item.Item{}, err
	}

	if err := s.repo.Create(ctx, it); err != nil {
		return item.Item{}, fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	return it, nil
}

// UpdateText changes an item's title and description, re-deriving the tag
// set. The new tags fully replace the old ones before the mutation commits.
func (s *Service) UpdateText(ctx context.Context, id, ownerID, title, description string) (item.Item, error) {
	prev, err := s.get(ctx, id)
	if err != nil {
		return item.Item{}, err
	}
	if prev.OwnerID() != ownerID {
		return item.Item{}, domain.ErrForbidden
	}

	next, err := prev.WithText(title, description)
	if err != nil {
		return item.Item{}, err
	}

	if err := s.repo.Update(ctx, prev, next); err != nil {
		return item.Item{}, fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	return next, nil
}

// SetVisibility toggles an item between the public search surface and the
// owner-only listing.
func (s *Service) SetVisibility(ctx context.Context, id, ownerID string, v item.Visibility) (item.Item, error) {
	switch v {
	case item.Public, item.Private:
		// ok
	default:
		return item.Item{}, fmt.Errorf("%w: visibility must be %q or %q, got %q",
			domain.ErrValidation, item.Public, item.Private, v)
	}

	prev, err := s.get(ctx, id)
	if err != nil {
		return item.Item{}, err
	}
	if prev.OwnerID() != ownerID {
		return item.Item{}, domain.ErrForbidden
	}

	next := prev.WithVisibility(v)
	if err := s.repo.Update(ctx, prev, next); err != nil {
		return item.Item{}, fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	return next, nil
}

// Delete removes an item and cascades its engagement counters.
func (s *Service) Delete(ctx context.Context, id, ownerID string) error {
	it, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	if it.OwnerID() != ownerID {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, it); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	if err := s.engage.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	return nil
}

// Get returns one item and counts the view. Private items are visible to
// their owner only.
func (s *Service) Get(ctx context.Context, id, viewerID string) (item.Item, error) {
	it, err := s.get(ctx, id)
	if err != nil {
		return item.Item{}, err
	}
	if !it.IsPublic() && it.OwnerID() != viewerID {
		return item.Item{}, domain.ErrForbidden
	}

	views, err := s.repo.IncrementViews(ctx, id)
	if err != nil {
		return item.Item{}, fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}

	return item.Reconstruct(
		it.ID(), it.OwnerID(), it.Title(), it.Description(), it.Tags(),
		it.Visibility(), it.ThumbnailRef(), it.DurationSec(),
		views, it.CreatedAt(),
	), nil
}

// ListByOwner returns the owner's own items newest first, private included.
// This listing path is separate from the public search surface.
func (s *Service) ListByOwner(ctx context.Context, ownerID string, page, limit int) ([]item.Item, int, error) {
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
	items, total, err := s.repo.ListByOwner(ctx, ownerID, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	return items, total, nil
}

func (s *Service) get(ctx context.Context, id string) (item.Item, error) {
	it, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return item.Item{}, err
		}
		return item.Item{}, fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	return it, nil
}
