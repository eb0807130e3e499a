// Package engagement persists per-item like and comment counters. The
// counters are written by the like/comment collaborators; ranking reads
// snapshots only.
package engagement

import (
	"context"
	"fmt"
	"strconv"

	"github.com/clipstack/tagrank/internal/domain"
)

// store is the consumer interface for engagement counters (ISP).
type store interface {
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	HIncrBy(ctx context.Context, key, field string, delta int64) (int64, error)
	Del(ctx context.Context, key string) error
}

// Repo implements the engagement store contracts.
type Repo struct {
	store store
}

// New creates an engagement repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

func engageKey(itemID string) string { return domain.KeyPrefix + "engage:" + itemID }

// Snapshots returns current counter snapshots for the given item IDs in one
// round-trip. Items without counters yield zero snapshots, not errors.
func (r *Repo) Snapshots(ctx context.Context, itemIDs []string) ([]domain.Engagement, error) {
	if len(itemIDs) == 0 {
		return nil, nil
	}

	keys := make([]string, len(itemIDs))
	for i, id := range itemIDs {
		keys[i] = engageKey(id)
	}

	hashes, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("fetch engagement: %w", err)
	}

	out := make([]domain.Engagement, len(itemIDs))
	for i, m := range hashes {
		snap, err := snapshotFromHash(itemIDs[i], m)
		if err != nil {
			return nil, err
		}
		out[i] = snap
	}
	return out, nil
}

// IncrLikes adjusts the like counter (collaborator write hook). The counter
// floors at zero: an over-retraction can never leave it negative.
func (r *Repo) IncrLikes(ctx context.Context, itemID string, delta int64) (int64, error) {
	return r.incr(ctx, itemID, "likes", delta)
}

// IncrComments adjusts the comment counter (collaborator write hook). Floors
// at zero like IncrLikes.
func (r *Repo) IncrComments(ctx context.Context, itemID string, delta int64) (int64, error) {
	return r.incr(ctx, itemID, "comments", delta)
}

func (r *Repo) incr(ctx context.Context, itemID, field string, delta int64) (int64, error) {
	n, err := r.store.HIncrBy(ctx, engageKey(itemID), field, delta)
	if err != nil {
		return 0, fmt.Errorf("incr %s %s: %w", field, itemID, err)
	}
	if n < 0 {
		// Over-retraction. Bring the stored counter back to zero so ranking
		// never reads a negative snapshot.
		if _, err := r.store.HIncrBy(ctx, engageKey(itemID), field, -n); err != nil {
			return 0, fmt.Errorf("floor %s %s: %w", field, itemID, err)
		}
		n = 0
	}
	return n, nil
}

// Delete removes an item's counters (cascade on content deletion).
func (r *Repo) Delete(ctx context.Context, itemID string) error {
	if err := r.store.Del(ctx, engageKey(itemID)); err != nil {
		return fmt.Errorf("del engagement %s: %w", itemID, err)
	}
	return nil
}

func snapshotFromHash(itemID string, m map[string]string) (domain.Engagement, error) {
	var snap domain.Engagement
	var err error

	if v := m["likes"]; v != "" {
		if snap.Likes, err = strconv.ParseInt(v, 10, 64); err != nil {
			return domain.Engagement{}, fmt.Errorf("invalid likes for item %s: %w", itemID, err)
		}
	}
	if v := m["comments"]; v != "" {
		if snap.Comments, err = strconv.ParseInt(v, 10, 64); err != nil {
			return domain.Engagement{}, fmt.Errorf("invalid comments for item %s: %w", itemID, err)
		}
	}
	return snap, nil
}
