package engagement

import "context"

// Counter persists engagement deltas.
type Counter interface {
	IncrLikes(ctx context.Context, itemID string, delta int64) (int64, error)
	IncrComments(ctx context.Context, itemID string, delta int64) (int64, error)
}
