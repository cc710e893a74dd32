package twod

import (
	"github.com/osuushi/hull/geom"
	"github.com/osuushi/hull/precision"
)

// Akl-Toussaint heuristic. Before paying O(nlog(n)) for the exact hull, one
// O(n) pass finds the four extreme points (min x, max x, min y, max y) and
// discards everything strictly inside the quadrilateral they span. No point
// inside that quadrilateral can be a hull vertex, so the reduced set is
// always a superset of the true hull vertices and the exact builder's
// output is unaffected.

// quad is the extremal quadrilateral, wound counterclockwise. Corners that
// coincide within tolerance are collapsed, so it may have fewer than four
// points.
type quad []geom.Vec2

// ReducePoints filters out points that provably cannot be vertices of the
// convex hull. If the extrema span fewer than three distinct corners (for
// example when every point is collinear), nothing can be safely discarded
// and the input is returned unchanged.
func ReducePoints(points []geom.Vec2, prec precision.Context) []geom.Vec2 {
	if len(points) < 3 {
		return points
	}
	q := extremalQuad(points, prec)
	if len(q) < 3 {
		return points
	}
	reduced := make([]geom.Vec2, 0, len(points))
	for _, p := range points {
		if q.containsStrictly(p, prec) {
			continue
		}
		reduced = append(reduced, p)
	}
	return reduced
}

// extremalQuad finds the four extreme points in one pass. Ties keep the
// first point encountered.
func extremalQuad(points []geom.Vec2, prec precision.Context) quad {
	if len(points) == 0 {
		return nil
	}
	minX, maxX, minY, maxY := points[0], points[0], points[0], points[0]
	for _, p := range points[1:] {
		if p.X < minX.X {
			minX = p
		}
		if p.X > maxX.X {
			maxX = p
		}
		if p.Y < minY.Y {
			minY = p
		}
		if p.Y > maxY.Y {
			maxY = p
		}
	}
	return makeQuad(minX, minY, maxX, maxY, prec)
}

// makeQuad assembles the corners in counterclockwise order (leftmost,
// bottom, rightmost, top), collapsing tolerance duplicates.
func makeQuad(left, bottom, right, top geom.Vec2, prec precision.Context) quad {
	var q quad
	for _, corner := range []geom.Vec2{left, bottom, right, top} {
		dup := false
		for _, existing := range q {
			if vec2Eq(existing, corner, prec) {
				dup = true
				break
			}
		}
		if !dup {
			q = append(q, corner)
		}
	}
	return q
}

// containsStrictly reports whether p lies strictly inside the
// quadrilateral: beyond tolerance on the interior side of every edge.
// Points on an edge are not contained, so collinear candidates survive the
// filter and remain available when the chain builder is keeping collinear
// points.
func (q quad) containsStrictly(p geom.Vec2, prec precision.Context) bool {
	if len(q) < 3 {
		return false
	}
	for i, a := range q {
		b := q[(i+1)%len(q)]
		if prec.Sign(geom.SignedArea(a, b, p)) <= 0 {
			return false
		}
	}
	return true
}

func vec2Eq(a, b geom.Vec2, prec precision.Context) bool {
	return prec.Eq(a.X, b.X) && prec.Eq(a.Y, b.Y)
}
