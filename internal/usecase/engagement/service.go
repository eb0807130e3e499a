// Package engagement ingests like and comment counter deltas from the
// engagement collaborator. Counters are ingested here, not managed: the
// ranking path only ever reads them as snapshots.
package engagement

import (
	"context"
	"fmt"

	"github.com/clipstack/tagrank/internal/domain"
)

// Service applies engagement counter deltas.
type Service struct {
	counter Counter
}

// New creates an engagement ingest service.
func New(counter Counter) *Service {
	return &Service{counter: counter}
}

// Record applies like and comment deltas for one item and returns the
// resulting counters. Negative deltas retract prior engagement; counters
// floor at zero.
func (s *Service) Record(ctx context.Context, itemID string, likes, comments int64) (domain.Engagement, error) {
	if itemID == "" {
		return domain.Engagement{}, fmt.Errorf("%w: item ID is required", domain.ErrValidation)
	}
	if likes == 0 && comments == 0 {
		return domain.Engagement{}, fmt.Errorf("%w: at least one delta must be non-zero", domain.ErrValidation)
	}

	var out domain.Engagement
	var err error

	if likes != 0 {
		out.Likes, err = s.counter.IncrLikes(ctx, itemID, likes)
		if err != nil {
			return domain.Engagement{}, fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
		}
	}
	if comments != 0 {
		out.Comments, err = s.counter.IncrComments(ctx, itemID, comments)
		if err != nil {
			return domain.Engagement{}, fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
		}
	}
	return out, nil
}
