package search

import (
	"context"

	"github.com/clipstack/tagrank/internal/domain"
	"github.com/clipstack/tagrank/internal/domain/item"
)

// ContentStore retrieves candidate items by tag intersection.
type ContentStore interface {
	// FindByAnyTag returns items whose tag set intersects tokens, capped at
	// max items. The bool reports whether the cap truncated retrieval.
	FindByAnyTag(ctx context.Context, tokens []string, max int) ([]item.Item, bool, error)
}

// EngagementStore reads like/comment counter snapshots.
type EngagementStore interface {
	// Snapshots returns counters positionally aligned with itemIDs.
	Snapshots(ctx context.Context, itemIDs []string) ([]domain.Engagement, error)
}

// AffinityStore reads the creators a viewer follows.
type AffinityStore interface {
	Following(ctx context.Context, viewerID string) ([]string, error)
}
