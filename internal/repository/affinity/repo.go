// Package affinity reads the set of creators a viewer follows. Subscription
// management belongs to the subscription collaborator; this repository is a
// read-only snapshot per query.
package affinity

import (
	"context"
	"fmt"

	"github.com/clipstack/tagrank/internal/domain"
)

// store is the consumer interface for affinity reads (ISP).
type store interface {
	SMembers(ctx context.Context, key string) ([]string, error)
}

// Repo implements the affinity store contracts.
type Repo struct {
	store store
}

// New creates an affinity repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

func subsKey(viewerID string) string { return domain.KeyPrefix + "subs:" + viewerID }

// Following returns the IDs of creators the viewer follows. An unknown
// viewer yields an empty set.
func (r *Repo) Following(ctx context.Context, viewerID string) ([]string, error) {
	ids, err := r.store.SMembers(ctx, subsKey(viewerID))
	if err != nil {
		return nil, fmt.Errorf("fetch affinity %s: %w", viewerID, err)
	}
	return ids, nil
}
