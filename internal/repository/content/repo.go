// Package content persists items and maintains the tag and recency indexes
// used by search and feeds.
package content

import (
	"context"
	"fmt"

	"github.com/clipstack/tagrank/internal/domain"
	"github.com/clipstack/tagrank/internal/domain/item"
)

// store is the consumer interface for content persistence (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	HIncrBy(ctx context.Context, key, field string, delta int64) (int64, error)
	Del(ctx context.Context, key string) error
	SAdd(ctx context.Context, key string, members ...string) error
	SRem(ctx context.Context, key string, members ...string) error
	SUnion(ctx context.Context, keys ...string) ([]string, error)
	ZAdd(ctx context.Context, key string, score float64, member string) error
	ZRem(ctx context.Context, key string, members ...string) error
	ZRevRange(ctx context.Context, key string, start, stop int64) ([]string, error)
	ZCard(ctx context.Context, key string) (int64, error)
}

// Repo implements the content store contracts of the search, content, and
// feed use cases.
type Repo struct {
	store store
}

// New creates a content repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Create persists a new item and indexes its tags and recency.
func (r *Repo) Create(ctx context.Context, it item.Item) error {
	if err := r.store.HSet(ctx, itemKey(it.ID()), itemToHash(it)); err != nil {
		return fmt.Errorf("hset item %s: %w", it.ID(), err)
	}
	for _, tag := range it.Tags() {
		if err := r.store.SAdd(ctx, tagKey(tag), it.ID()); err != nil {
			return fmt.Errorf("index tag %q for item %s: %w", tag, it.ID(), err)
		}
	}
	return r.indexRecency(ctx, it)
}

// Update persists a changed item and reconciles the tag and recency indexes
// against its previous state. Tags no longer derived are removed, so a
// rename never leaves stale index entries.
func (r *Repo) Update(ctx context.Context, prev, next item.Item) error {
	if err := r.store.HSet(ctx, itemKey(next.ID()), itemToHash(next)); err != nil {
		return fmt.Errorf("hset item %s: %w", next.ID(), err)
	}

	added, removed := diffTags(prev.Tags(), next.Tags())
	for _, tag := range added {
		if err := r.store.SAdd(ctx, tagKey(tag), next.ID()); err != nil {
			return fmt.Errorf("index tag %q for item %s: %w", tag, next.ID(), err)
		}
	}
	for _, tag := range removed {
		if err := r.store.SRem(ctx, tagKey(tag), next.ID()); err != nil {
			return fmt.Errorf("unindex tag %q for item %s: %w", tag, next.ID(), err)
		}
	}

	return r.indexRecency(ctx, next)
}

// Get returns an item by ID.
func (r *Repo) Get(ctx context.Context, id string) (item.Item, error) {
	m, err := r.store.HGetAll(ctx, itemKey(id))
	if err != nil {
		return item.Item{}, fmt.Errorf("hgetall item %s: %w", id, err)
	}
	if len(m) == 0 {
		return item.Item{}, domain.ErrItemNotFound
	}
	return itemFromHash(id, m)
}

// Delete removes an item and all its index entries.
func (r *Repo) Delete(ctx context.Context, it item.Item) error {
	for _, tag := range it.Tags() {
		if err := r.store.SRem(ctx, tagKey(tag), it.ID()); err != nil {
			return fmt.Errorf("unindex tag %q for item %s: %w", tag, it.ID(), err)
		}
	}
	if err := r.store.ZRem(ctx, publicKey(), it.ID()); err != nil {
		return fmt.Errorf("unindex public %s: %w", it.ID(), err)
	}
	if err := r.store.ZRem(ctx, ownerKey(it.OwnerID()), it.ID()); err != nil {
		return fmt.Errorf("unindex owner %s: %w", it.ID(), err)
	}
	if err := r.store.ZRem(ctx, ownerPubKey(it.OwnerID()), it.ID()); err != nil {
		return fmt.Errorf("unindex pubowner %s: %w", it.ID(), err)
	}
	if err := r.store.Del(ctx, itemKey(it.ID())); err != nil {
		return fmt.Errorf("del item %s: %w", it.ID(), err)
	}
	return nil
}

// IncrementViews bumps the view counter and returns the new value.
func (r *Repo) IncrementViews(ctx context.Context, id string) (int64, error) {
	n, err := r.store.HIncrBy(ctx, itemKey(id), "views", 1)
	if err != nil {
		return 0, fmt.Errorf("incr views %s: %w", id, err)
	}
	return n, nil
}

// FindByAnyTag returns items whose tag set intersects tokens, via a union
// over the per-token index sets. Retrieval is truncated at max IDs; the
// second return value reports whether truncation happened.
func (r *Repo) FindByAnyTag(ctx context.Context, tokens []string, max int) ([]item.Item, bool, error) {
	if len(tokens) == 0 {
		return nil, false, nil
	}

	keys := make([]string, len(tokens))
	for i, t := range tokens {
		keys[i] = tagKey(t)
	}

	ids, err := r.store.SUnion(ctx, keys...)
	if err != nil {
		return nil, false, fmt.Errorf("union tag index: %w", err)
	}
	if len(ids) == 0 {
		return nil, false, nil
	}

	truncated := false
	if max > 0 && len(ids) > max {
		ids = ids[:max]
		truncated = true
	}

	items, err := r.hydrate(ctx, ids)
	if err != nil {
		return nil, false, err
	}
	return items, truncated, nil
}

// ListPublic returns a recency page of public items plus the total count.
func (r *Repo) ListPublic(ctx context.Context, offset, limit int) ([]item.Item, int, error) {
	return r.listZSet(ctx, publicKey(), offset, limit)
}

// ListByOwner returns a recency page over all of an owner's items,
// private included. This is the owner's own listing surface.
func (r *Repo) ListByOwner(ctx context.Context, ownerID string, offset, limit int) ([]item.Item, int, error) {
	return r.listZSet(ctx, ownerKey(ownerID), offset, limit)
}

// RecentPublicByOwner returns up to limit most recent public items of one
// owner plus the owner's total public count.
func (r *Repo) RecentPublicByOwner(ctx context.Context, ownerID string, limit int) ([]item.Item, int, error) {
	return r.listZSet(ctx, ownerPubKey(ownerID), 0, limit)
}

func (r *Repo) listZSet(ctx context.Context, key string, offset, limit int) ([]item.Item, int, error) {
	total, err := r.store.ZCard(ctx, key)
	if err != nil {
		return nil, 0, fmt.Errorf("zcard %s: %w", key, err)
	}
	if total == 0 || int64(offset) >= total {
		return nil, int(total), nil
	}

	ids, err := r.store.ZRevRange(ctx, key, int64(offset), int64(offset+limit-1))
	if err != nil {
		return nil, 0, fmt.Errorf("zrevrange %s: %w", key, err)
	}

	items, err := r.hydrate(ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	return items, int(total), nil
}

// hydrate fetches item hashes in one round-trip. IDs whose hash has vanished
// (index entry racing a delete) are skipped.
func (r *Repo) hydrate(ctx context.Context, ids []string) ([]item.Item, error) {
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = itemKey(id)
	}

	hashes, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("fetch items: %w", err)
	}

	items := make([]item.Item, 0, len(ids))
	for i, m := range hashes {
		if len(m) == 0 {
			continue
		}
		it, err := itemFromHash(ids[i], m)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

// indexRecency reconciles the recency zsets with the item's visibility.
func (r *Repo) indexRecency(ctx context.Context, it item.Item) error {
	score := float64(it.CreatedAt())

	if err := r.store.ZAdd(ctx, ownerKey(it.OwnerID()), score, it.ID()); err != nil {
		return fmt.Errorf("index owner %s: %w", it.ID(), err)
	}

	if it.IsPublic() {
		if err := r.store.ZAdd(ctx, publicKey(), score, it.ID()); err != nil {
			return fmt.Errorf("index public %s: %w", it.ID(), err)
		}
		if err := r.store.ZAdd(ctx, ownerPubKey(it.OwnerID()), score, it.ID()); err != nil {
			return fmt.Errorf("index pubowner %s: %w", it.ID(), err)
		}
		return nil
	}

	if err := r.store.ZRem(ctx, publicKey(), it.ID()); err != nil {
		return fmt.Errorf("unindex public %s: %w", it.ID(), err)
	}
	if err := r.store.ZRem(ctx, ownerPubKey(it.OwnerID()), it.ID()); err != nil {
		return fmt.Errorf("unindex pubowner %s: %w", it.ID(), err)
	}
	return nil
}

// diffTags splits next vs prev into added and removed tag lists.
func diffTags(prev, next []string) (added, removed []string) {
	prevSet := make(map[string]struct{}, len(prev))
	for _, t := range prev {
		prevSet[t] = struct{}{}
	}
	nextSet := make(map[string]struct{}, len(next))
	for _, t := range next {
		nextSet[t] = struct{}{}
	}

	for _, t := range next {
		if _, ok := prevSet[t]; !ok {
			added = append(added, t)
		}
	}
	for _, t := range prev {
		if _, ok := nextSet[t]; !ok {
			removed = append(removed, t)
		}
	}
	return added, removed
}
