package content

import (
	"context"

	"github.com/clipstack/tagrank/internal/domain/item"
)

// Repository persists items and their search indexes.
type Repository interface {
	Create(ctx context.Context, it item.Item) error
	Update(ctx context.Context, prev, next item.Item) error
	Get(ctx context.Context, id string) (item.Item, error)
	Delete(ctx context.Context, it item.Item) error
	IncrementViews(ctx context.Context, id string) (int64, error)
	ListByOwner(ctx context.Context, ownerID string, offset, limit int) ([]item.Item, int, error)
}

// EngagementCleaner removes an item's engagement counters on deletion.
type EngagementCleaner interface {
	Delete(ctx context.Context, itemID string) error
}
