package twod

import (
	"github.com/osuushi/hull/geom"
	"github.com/osuushi/hull/precision"
)

// Hull is an immutable 2D convex hull. Its vertex sequence is a closed
// counterclockwise loop with no repeated vertices: empty for empty input,
// a single point when all inputs coincide, two points when all inputs are
// collinear (or more, when collinear points were kept), and a proper
// polygon otherwise. Callers must not modify the returned slices.
type Hull struct {
	vertices   []geom.Vec2
	degenerate bool
	prec       precision.Context
	region     *Polygon
}

func newHull(vertices []geom.Vec2, degenerate bool, prec precision.Context) *Hull {
	return &Hull{vertices: vertices, degenerate: degenerate, prec: prec}
}

// Vertices returns the hull vertex sequence in counterclockwise order.
func (h *Hull) Vertices() []geom.Vec2 {
	return h.vertices
}

// Degenerate reports whether the input had fewer than two dimensions of
// spread. Degenerate hulls bound no region.
func (h *Hull) Degenerate() bool {
	return h.degenerate
}

// Region returns the closed convex region bounded by the hull, or nil for
// a degenerate hull. The region is derived on first call and cached; like
// the rest of a hull computation, this is not safe for concurrent use.
func (h *Hull) Region() *Polygon {
	if h.degenerate {
		return nil
	}
	if h.region == nil {
		h.region = &Polygon{vertices: h.vertices, prec: h.prec}
	}
	return h.region
}

// validate checks the fundamental convexity invariant: every consecutive
// vertex triple makes a non-negative (counterclockwise) turn within
// tolerance, and no vertex duplicates its neighbor. A failure means the
// epsilon was too coarse for the spread of the input points.
func (h *Hull) validate() error {
	if h.degenerate {
		return nil
	}
	n := len(h.vertices)
	for i := 0; i < n; i++ {
		o := h.vertices[i]
		a := h.vertices[(i+1)%n]
		b := h.vertices[(i+2)%n]
		if vec2Eq(o, a, h.prec) {
			return geom.Convexityf("2D hull vertex %d duplicates its neighbor", i)
		}
		if turn := geom.SignedArea(o, a, b); h.prec.Sign(turn) < 0 {
			return geom.Convexityf("2D hull makes a clockwise turn at vertex %d (offset %g)", (i+1)%n, turn)
		}
	}
	return nil
}

// Polygon is the closed convex region bounded by a non-degenerate hull.
type Polygon struct {
	vertices []geom.Vec2
	prec     precision.Context
}

// Vertices returns the boundary in counterclockwise order.
func (p *Polygon) Vertices() []geom.Vec2 {
	return p.vertices
}

// Area computes the enclosed area by the shoelace formula.
func (p *Polygon) Area() float64 {
	var sum float64
	for i, a := range p.vertices {
		b := p.vertices[(i+1)%len(p.vertices)]
		sum += a.Cross(b)
	}
	return sum / 2
}

// Contains reports whether the point is inside the region or on its
// boundary, within tolerance.
func (p *Polygon) Contains(pt geom.Vec2) bool {
	for i, a := range p.vertices {
		b := p.vertices[(i+1)%len(p.vertices)]
		if p.prec.Sign(geom.SignedArea(a, b, pt)) < 0 {
			return false
		}
	}
	return true
}
