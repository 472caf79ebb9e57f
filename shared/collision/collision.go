// Package collision implements the two-phase hit test used by the projectile
// systems: a cheap bounding-box pre-filter followed by an exact polygon test.
package collision

import (
	"github.com/automoto/plasmaship/shared/geometry"
	"github.com/jakecoffman/cp"
)

// DefaultBroadPhaseMargin is how far (world units) a static hitbox's bounds
// are grown before the broad-phase overlap test. One tile.
const DefaultBroadPhaseMargin = 32.0

// AreColliding reports whether any polygon of a intersects any polygon of b.
// Touching edges count as a hit. Either side being empty means no hit.
func AreColliding(a, b []geometry.Polygon) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	for _, pa := range a {
		for _, pb := range b {
			if PolygonsIntersect(pa, pb) {
				return true
			}
		}
	}
	return false
}

// IsEligibleForCollision is the broad phase: it reports whether candidate is
// close enough to static for a narrow-phase test to be worth running. It
// never rejects a pair AreColliding would accept.
func IsEligibleForCollision(static, candidate *geometry.Colliders) bool {
	return IsEligibleWithin(static, candidate, DefaultBroadPhaseMargin)
}

// IsEligibleWithin is IsEligibleForCollision with an explicit margin.
// Negative margins are treated as zero.
func IsEligibleWithin(static, candidate *geometry.Colliders, margin float64) bool {
	if static == nil || candidate == nil || static.Len() == 0 || candidate.Len() == 0 {
		return false
	}
	return boundsNear(static.Bounds(), candidate.Bounds(), margin)
}

func boundsNear(a, b cp.BB, margin float64) bool {
	if margin < 0 {
		margin = 0
	}
	grown := cp.BB{L: a.L - margin, B: a.B - margin, R: a.R + margin, T: a.T + margin}
	return grown.Intersects(b)
}
