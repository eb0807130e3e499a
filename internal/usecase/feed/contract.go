package feed

import (
	"context"

	"github.com/clipstack/tagrank/internal/domain/item"
)

// ContentStore provides the recency listings feeds are built from.
type ContentStore interface {
	ListPublic(ctx context.Context, offset, limit int) ([]item.Item, int, error)
	RecentPublicByOwner(ctx context.Context, ownerID string, limit int) ([]item.Item, int, error)
}

// AffinityStore reads the creators a viewer follows.
type AffinityStore interface {
	Following(ctx context.Context, viewerID string) ([]string, error)
}
