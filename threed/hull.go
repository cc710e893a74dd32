package threed

import (
	"github.com/osuushi/hull/geom"
	"github.com/osuushi/hull/precision"
)

// Hull is an immutable 3D convex hull: a vertex table plus triangulated
// facets with outward planes. Callers must not modify the returned
// slices.
type Hull struct {
	vertices   []geom.Vec3
	facets     []Facet
	degenerate bool
	prec       precision.Context
	region     *Polytope
}

// newDegenerateHull wraps an input without four non-coplanar points. The
// vertex sequence is a copy of the input, order preserved verbatim; there
// are no facets and no region.
func newDegenerateHull(points []geom.Vec3, prec precision.Context) *Hull {
	return &Hull{
		vertices:   append([]geom.Vec3(nil), points...),
		degenerate: true,
		prec:       prec,
	}
}

// Vertices returns the hull vertex table. For a proper hull it holds only
// points that appear in facets; for a degenerate hull it is the original
// input sequence, unreordered.
func (h *Hull) Vertices() []geom.Vec3 {
	return h.vertices
}

// Facets returns the triangulated boundary, empty for a degenerate hull.
func (h *Hull) Facets() []Facet {
	return h.facets
}

// Degenerate reports whether the input had fewer than three dimensions of
// spread. Degenerate hulls bound no region.
func (h *Hull) Degenerate() bool {
	return h.degenerate
}

// Region returns the closed convex region bounded by the hull, or nil for
// a degenerate hull. The region is derived on first call and cached; like
// the rest of a hull computation, this is not safe for concurrent use.
func (h *Hull) Region() *Polytope {
	if h.degenerate {
		return nil
	}
	if h.region == nil {
		h.region = &Polytope{vertices: h.vertices, facets: h.facets, prec: h.prec}
	}
	return h.region
}

// validate checks the two invariants a finished hull must satisfy: every
// facet plane has every hull vertex on its closed negative side within
// tolerance (convexity), and every edge is shared by exactly two facets
// with opposite orientation (closed 2-manifold), with adjacency pointing
// across each edge. A failure means the epsilon was too coarse for the
// spread of the input points.
func (h *Hull) validate() error {
	if h.degenerate {
		return nil
	}
	for fi, f := range h.facets {
		pl := plane{origin: f.Origin, normal: f.Normal}
		for vi, v := range h.vertices {
			if d := pl.offset(v); h.prec.Sign(d) > 0 {
				return geom.Convexityf("3D hull vertex %d is outside facet %d (offset %g)", vi, fi, d)
			}
		}
	}

	owners := make(map[edge]int)
	for fi, f := range h.facets {
		for i := 0; i < 3; i++ {
			e := edge{f.Vertices[i], f.Vertices[(i+1)%3]}
			if prev, dup := owners[e]; dup {
				return geom.Convexityf("edge (%d %d) appears in facets %d and %d with the same orientation", e.from, e.to, prev, fi)
			}
			owners[e] = fi
		}
	}
	for fi, f := range h.facets {
		for i := 0; i < 3; i++ {
			e := edge{f.Vertices[i], f.Vertices[(i+1)%3]}
			nb, ok := owners[e.reverse()]
			if !ok {
				return geom.Convexityf("edge (%d %d) of facet %d has no opposite facet", e.from, e.to, fi)
			}
			if f.Adjacent[i] != nb {
				return geom.Convexityf("facet %d adjacency is stale across edge (%d %d)", fi, e.from, e.to)
			}
		}
	}
	return nil
}

// Polytope is the closed convex region bounded by a non-degenerate hull.
type Polytope struct {
	vertices []geom.Vec3
	facets   []Facet
	prec     precision.Context
}

// Volume computes the enclosed volume as a sum of signed tetrahedra
// against one of the vertices. Anchoring at a vertex instead of the
// origin keeps the partial sums small for hulls far from the origin.
func (p *Polytope) Volume() float64 {
	r := p.vertices[0]
	var sum float64
	for _, f := range p.facets {
		a := p.vertices[f.Vertices[0]].Sub(r)
		b := p.vertices[f.Vertices[1]].Sub(r)
		c := p.vertices[f.Vertices[2]].Sub(r)
		sum += a.Dot(b.Cross(c))
	}
	return sum / 6
}

// Contains reports whether the point is inside the region or on its
// boundary, within tolerance.
func (p *Polytope) Contains(pt geom.Vec3) bool {
	for _, f := range p.facets {
		pl := plane{origin: f.Origin, normal: f.Normal}
		if p.prec.Sign(pl.offset(pt)) > 0 {
			return false
		}
	}
	return true
}
