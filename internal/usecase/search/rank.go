package search

import (
	"sort"

	"github.com/clipstack/tagrank/internal/domain/item"
	"github.com/clipstack/tagrank/internal/domain/search/result"
)

// candidate is the ephemeral join of an item, its engagement snapshot, and
// the viewer affinity flag. It exists only for the duration of one request.
type candidate struct {
	it    item.Item
	feats features
	score float64
}

// sortCandidates orders candidates by score descending, then creation time
// descending, then ID ascending. The ordering is total: no two distinct
// candidates compare equal.
func sortCandidates(cands []candidate) {
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].score != cands[j].score {
			return cands[i].score > cands[j].score
		}
		if cands[i].it.CreatedAt() != cands[j].it.CreatedAt() {
			return cands[i].it.CreatedAt() > cands[j].it.CreatedAt()
		}
		return cands[i].it.ID() < cands[j].it.ID()
	})
}

// paginate slices sorted candidates into the requested page window. An
// offset past the end yields an empty entry list, not an error.
func paginate(cands []candidate, page, limit int) []result.Entry {
	offset := (page - 1) * limit
	if offset >= len(cands) {
		return []result.Entry{}
	}

	end := offset + limit
	if end > len(cands) {
		end = len(cands)
	}

	entries := make([]result.Entry, 0, end-offset)
	for _, c := range cands[offset:end] {
		entries = append(entries, result.Entry{
			ID:           c.it.ID(),
			Title:        c.it.Title(),
			ThumbnailRef: c.it.ThumbnailRef(),
			OwnerID:      c.it.OwnerID(),
			Views:        c.it.Views(),
			Likes:        c.feats.engagement.Likes,
			Comments:     c.feats.engagement.Comments,
			Score:        c.score,
			CreatedAt:    c.it.CreatedAt(),
		})
	}
	return entries
}

// matchedTerms counts the intersection of an item's tags with the query
// tokens.
func matchedTerms(tags, queryTokens []string) int {
	if len(tags) == 0 || len(queryTokens) == 0 {
		return 0
	}
	set := make(map[string]struct{}, len(queryTokens))
	for _, t := range queryTokens {
		set[t] = struct{}{}
	}
	n := 0
	for _, tag := range tags {
		if _, ok := set[tag]; ok {
			n++
		}
	}
	return n
}
