package collision

import "github.com/automoto/plasmaship/shared/geometry"

// PolygonsIntersect runs a separating axis test on two convex polygons.
// Polygons with fewer than three vertices have no area and never intersect.
func PolygonsIntersect(a, b geometry.Polygon) bool {
	if len(a) < 3 || len(b) < 3 {
		return false
	}
	return !hasSeparatingAxis(a, b) && !hasSeparatingAxis(b, a)
}

// hasSeparatingAxis tests the edge normals of a only.
func hasSeparatingAxis(a, b geometry.Polygon) bool {
	for i := range a {
		edge := a[(i+1)%len(a)].Sub(a[i])
		if edge.X == 0 && edge.Y == 0 {
			continue
		}
		axis := edge.Perp()

		minA, maxA := project(a, axis)
		minB, maxB := project(b, axis)
		if maxA < minB || maxB < minA {
			return true
		}
	}
	return false
}

func project(p geometry.Polygon, axis geometry.Point2D) (float64, float64) {
	lo := p[0].Dot(axis)
	hi := lo
	for _, v := range p[1:] {
		d := v.Dot(axis)
		lo = min(lo, d)
		hi = max(hi, d)
	}
	return lo, hi
}
