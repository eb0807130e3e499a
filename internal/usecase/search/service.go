// Package search implements the relevance-ranked query path: query
// expansion, candidate filtering, feature computation, scoring, and
// pagination.
package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/clipstack/tagrank/internal/domain"
	"github.com/clipstack/tagrank/internal/domain/search/request"
	"github.com/clipstack/tagrank/internal/domain/search/result"
	"github.com/clipstack/tagrank/internal/domain/text"
)

// defaultMaxCandidates caps retrieval on pathological vocabularies.
const defaultMaxCandidates = 5000

// Service handles relevance-ranked search over public items.
type Service struct {
	content       ContentStore
	engage        EngagementStore
	affinity      AffinityStore
	params        Params
	maxCandidates int
	now           func() time.Time
}

// New creates a search service with default ranking parameters.
func New(content ContentStore, engage EngagementStore, affinity AffinityStore) *Service {
	return &Service{
		content:       content,
		engage:        engage,
		affinity:      affinity,
		params:        DefaultParams(),
		maxCandidates: defaultMaxCandidates,
		now:           time.Now,
	}
}

// WithParams overrides the ranking constants.
func (s *Service) WithParams(p Params) *Service {
	if p.DampingHours > 0 {
		s.params.DampingHours = p.DampingHours
	}
	if p.FollowBoost > 0 {
		s.params.FollowBoost = p.FollowBoost
	}
	return s
}

// WithMaxCandidates overrides the candidate retrieval ceiling.
func (s *Service) WithMaxCandidates(n int) *Service {
	if n > 0 {
		s.maxCandidates = n
	}
	return s
}

// WithClock overrides the time source (tests).
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// ExpandQuery normalizes a raw query into the tag vocabulary. It fails with
// ErrInvalidQuery when the query is empty or normalizes to nothing (pure
// punctuation, all stopwords); an empty expansion must never silently mean
// "match everything".
func ExpandQuery(rawQuery string) ([]string, error) {
	if strings.TrimSpace(rawQuery) == "" {
		return nil, fmt.Errorf("%w: query is empty", domain.ErrInvalidQuery)
	}
	tokens := text.Normalize(rawQuery)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: query %q normalizes to no tokens", domain.ErrInvalidQuery, rawQuery)
	}
	return tokens, nil
}

// Search executes one ranked query. Zero matches yield a valid empty page.
// Collaborator failures surface as ErrStoreUnavailable; no partial page is
// ever returned.
func (s *Service) Search(ctx context.Context, req request.Request) (result.Page, error) {
	tokens, err := ExpandQuery(req.Query())
	if err != nil {
		return result.Page{}, err
	}

	fetched, truncated, err := s.content.FindByAnyTag(ctx, tokens, s.maxCandidates)
	if err != nil {
		return result.Page{}, fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}

	// The public-only filter re-checks the predicate even though the tag
	// index was queried by intersection: index entries may lag the item
	// hash after a visibility change.
	candidates := make([]candidate, 0, len(fetched))
	for _, it := range fetched {
		if !it.IsPublic() {
			continue
		}
		matched := matchedTerms(it.Tags(), tokens)
		if matched == 0 {
			continue
		}
		candidates = append(candidates, candidate{
			it:    it,
			feats: features{matchedTerms: matched, views: it.Views()},
		})
	}

	if len(candidates) == 0 {
		return result.Page{
			Entries:  []result.Entry{},
			Page:     req.Page(),
			Limit:    req.Limit(),
			Degraded: truncated,
		}, nil
	}

	snapshots, followed, err := s.fetchSignals(ctx, candidates, req)
	if err != nil {
		return result.Page{}, fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}

	now := s.now()
	for i := range candidates {
		c := &candidates[i]
		c.feats.engagement = snapshots[i]
		c.feats.ageHours = ageHours(now, c.it.CreatedAt())
		_, c.feats.isFollowed = followed[c.it.OwnerID()]
		c.score = score(c.feats, s.params)
	}

	sortCandidates(candidates)

	return result.Page{
		Entries:    paginate(candidates, req.Page(), req.Limit()),
		Page:       req.Page(),
		Limit:      req.Limit(),
		TotalCount: len(candidates),
		Degraded:   truncated,
	}, nil
}

// fetchSignals loads engagement snapshots and the viewer's affinity set
// concurrently. The two reads are independent; neither orders the other.
// Affinity is skipped entirely for anonymous viewers.
func (s *Service) fetchSignals(
	ctx context.Context, candidates []candidate, req request.Request,
) ([]domain.Engagement, map[string]struct{}, error) {
	ids := make([]string, len(candidates))
	for i, c := range candidates {
		ids[i] = c.it.ID()
	}

	var (
		snapshots []domain.Engagement
		followed  map[string]struct{}
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		snaps, err := s.engage.Snapshots(gctx, ids)
		if err != nil {
			return fmt.Errorf("engagement snapshots: %w", err)
		}
		snapshots = snaps
		return nil
	})

	if !req.IsAnonymous() {
		g.Go(func() error {
			owners, err := s.affinity.Following(gctx, req.ViewerID())
			if err != nil {
				return fmt.Errorf("affinity set: %w", err)
			}
			followed = make(map[string]struct{}, len(owners))
			for _, o := range owners {
				followed[o] = struct{}{}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	if len(snapshots) != len(ids) {
		return nil, nil, fmt.Errorf("engagement snapshots: got %d for %d items", len(snapshots), len(ids))
	}
	return snapshots, followed, nil
}

// ageHours returns the candidate age in fractional hours, clamped to zero
// so clock skew never produces a negative age.
func ageHours(now time.Time, createdAtUnix int64) float64 {
	h := now.Sub(time.Unix(createdAtUnix, 0)).Hours()
	if h < 0 {
		return 0
	}
	return h
}
