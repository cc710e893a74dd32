package threed

import (
	"github.com/osuushi/hull/geom"
)

// plane is an oriented plane through origin with a unit normal. For hull
// facets the normal points outward, away from the hull interior.
type plane struct {
	origin geom.Vec3
	normal geom.Vec3
}

// newPlane builds the plane through the triangle (a, b, c) with its normal
// on the counterclockwise side. Returns false if the triangle has no area
// at all (exactly, not within tolerance; tolerance checks are the
// builder's job).
func newPlane(a, b, c geom.Vec3) (plane, bool) {
	n := b.Sub(a).Cross(c.Sub(a))
	norm := n.Norm()
	if norm == 0 {
		return plane{}, false
	}
	return plane{origin: a, normal: n.Scale(1 / norm)}, true
}

// offset is the signed distance of p from the plane, positive on the
// normal's side.
func (pl plane) offset(p geom.Vec3) float64 {
	return pl.normal.Dot(p.Sub(pl.origin))
}

// facet is a builder-internal hull face in the facet arena. Facets are
// addressed by index and never physically removed; deletion during
// horizon processing just sets the mark, which keeps every adjacency
// reference stable.
type facet struct {
	verts [3]int // indices into the builder's point table, CCW from outside
	adj   [3]int // neighbor facet across edge verts[i] -> verts[i+1]
	pl    plane

	// Conflict state: points beyond the facet's plane, plus the deepest of
	// them. Only meaningful while the facet is alive.
	outside []int
	far     int
	farDist float64

	deleted bool
}

// addOutside records a conflict point and its distance from the facet
// plane, tracking the deepest one.
func (f *facet) addOutside(pointIdx int, dist float64) {
	f.outside = append(f.outside, pointIdx)
	if len(f.outside) == 1 || dist > f.farDist {
		f.far = pointIdx
		f.farDist = dist
	}
}

// edge is a directed edge between two point indices.
type edge struct {
	from, to int
}

func (e edge) reverse() edge {
	return edge{e.to, e.from}
}

// edgeIndex locates the directed edge (u, v) within the facet, or -1.
func (f *facet) edgeIndex(u, v int) int {
	for i := 0; i < 3; i++ {
		if f.verts[i] == u && f.verts[(i+1)%3] == v {
			return i
		}
	}
	return -1
}

// Facet is a triangular face of a finished 3D hull: three indices into the
// hull's vertex table winding counterclockwise as seen from outside, the
// facet's outward plane, and the neighboring facet across each edge.
type Facet struct {
	Vertices [3]int
	Adjacent [3]int // neighbor across edge Vertices[i] -> Vertices[i+1]
	Origin   geom.Vec3
	Normal   geom.Vec3 // unit length, outward
}
