package search

import (
	"math"

	"github.com/clipstack/tagrank/internal/domain"
)

// Engagement rate weights: a weighted combination of likes, comments, and
// views approximating audience interaction.
const (
	likeWeight    = 0.5
	commentWeight = 0.3
	viewWeight    = 0.2

	// engagementWeight scales the engagement rate inside the score.
	engagementWeight = 2.0
)

// Params holds the named, configurable ranking constants.
type Params struct {
	// DampingHours is added to the candidate age in the denominator so
	// near-zero-age items cannot produce unbounded scores.
	DampingHours float64
	// FollowBoost is added when the viewer follows the item's owner.
	FollowBoost float64
}

// DefaultParams returns the standard ranking constants.
func DefaultParams() Params {
	return Params{DampingHours: 10, FollowBoost: 1}
}

// features are the ranking inputs of one candidate.
type features struct {
	matchedTerms int
	views        int64
	engagement   domain.Engagement
	ageHours     float64
	isFollowed   bool
}

// engagementRate computes the weighted interaction rate.
func engagementRate(e domain.Engagement, views int64) float64 {
	return likeWeight*float64(e.Likes) + commentWeight*float64(e.Comments) + viewWeight*float64(views)
}

// score combines candidate features into a single ranking value:
//
//	(matchedTerms * ln(views+1) + 2*engagementRate + followBoost) / (ageHours + dampingHours)
//
// The +1 inside the logarithm avoids ln(0) for view-less items. Candidates
// always have matchedTerms >= 1; zero-match items never reach scoring.
func score(f features, p Params) float64 {
	boost := 0.0
	if f.isFollowed {
		boost = p.FollowBoost
	}

	numerator := float64(f.matchedTerms)*math.Log(float64(f.views)+1) +
		engagementWeight*engagementRate(f.engagement, f.views) +
		boost

	return numerator / (f.ageHours + p.DampingHours)
}
