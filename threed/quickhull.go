package threed

import (
	"github.com/osuushi/hull/geom"
	"github.com/osuushi/hull/internal"
	"github.com/osuushi/hull/precision"
)

// Incremental quickhull. Starting from a tetrahedron of well-spread
// points, each remaining point is assigned to the outside set of at most
// one facet it can see. The deepest conflict point overall is then folded
// into the hull: every facet visible from it is deleted, the horizon loop
// around the deleted region is re-tented to the point, and the orphaned
// outside points are redistributed among the new facets. Points that no
// facet can see anymore have become interior and are dropped, so every
// round strictly shrinks the conflict set and the loop terminates.
//
// Facets live in an arena and refer to each other by index; see facet.go.
// The horizon walk uses an explicit stack, so recursion depth does not
// grow with input size.

// Generate computes the convex hull of the given points. A nil slice is
// rejected with geom.ErrNilPoints. If there are fewer than four points, or
// every point is collinear or coplanar within tolerance, the result is a
// degenerate hull: no facets, no region, and the input sequence preserved
// in its original order.
func Generate(points []geom.Vec3, prec precision.Context) (h *Hull, err error) {
	if points == nil {
		return nil, geom.ErrNilPoints
	}
	defer func() {
		if recoveredErr := internal.HandleHullPanicRecover(recover()); recoveredErr != nil {
			h = nil
			err = recoveredErr
		}
	}()

	b := &builder{prec: prec, points: append([]geom.Vec3(nil), points...)}
	if !b.initialSimplex() {
		return newDegenerateHull(points, prec), nil
	}
	for {
		fi := b.deepestConflict()
		if fi < 0 {
			break
		}
		b.resolve(fi)
	}
	hull := b.finish()
	if err := hull.validate(); err != nil {
		return nil, err
	}
	return hull, nil
}

type builder struct {
	prec   precision.Context
	points []geom.Vec3
	facets []facet
}

// initialSimplex picks four points that are not coplanar within tolerance
// and builds the starting tetrahedron, spreading the picks as far apart as
// possible to avoid a near-degenerate first facet: the farthest pair of
// coordinate extremes, the point farthest from their line, and the point
// farthest from the resulting plane. Returns false when no such simplex
// exists; the input is degenerate.
func (b *builder) initialSimplex() bool {
	if len(b.points) < 4 {
		return false
	}

	extremes := b.coordinateExtremes()

	// Farthest pair among the extremes.
	var i0, i1 int
	var bestDist float64
	for i, ei := range extremes {
		for _, ej := range extremes[i+1:] {
			if d := b.points[ei].Dist(b.points[ej]); d > bestDist {
				i0, i1, bestDist = ei, ej, d
			}
		}
	}
	if b.prec.EqZero(bestDist) {
		// Everything coincides within tolerance.
		return false
	}

	// Farthest point from the line through i0 and i1.
	dir := b.points[i1].Sub(b.points[i0])
	dirNorm := dir.Norm()
	i2 := -1
	bestDist = 0
	for i, p := range b.points {
		d := dir.Cross(p.Sub(b.points[i0])).Norm() / dirNorm
		if d > bestDist {
			i2, bestDist = i, d
		}
	}
	if i2 < 0 || b.prec.EqZero(bestDist) {
		// Collinear.
		return false
	}

	// Farthest point from the plane through i0, i1, i2.
	base, ok := newPlane(b.points[i0], b.points[i1], b.points[i2])
	if !ok {
		return false
	}
	i3 := -1
	bestDist = 0
	for i, p := range b.points {
		d := base.offset(p)
		if d < 0 {
			d = -d
		}
		if d > bestDist {
			i3, bestDist = i, d
		}
	}
	if i3 < 0 || b.prec.EqZero(bestDist) {
		// Coplanar.
		return false
	}

	// Orient so the apex is below the base facet, then tent the three side
	// facets. With the apex on the negative side of (v0, v1, v2), all four
	// windings below have outward normals.
	v0, v1, v2, v3 := i0, i1, i2, i3
	if base.offset(b.points[v3]) > 0 {
		v1, v2 = v2, v1
	}
	b.addFacet(v0, v1, v2)
	b.addFacet(v0, v3, v1)
	b.addFacet(v1, v3, v2)
	b.addFacet(v2, v3, v0)
	b.linkAll()

	b.partition(v0, v1, v2, v3)
	return true
}

// coordinateExtremes returns the point indices of the per-axis minima and
// maxima, deduplicated. Ties keep the first point encountered.
func (b *builder) coordinateExtremes() []int {
	coords := func(p geom.Vec3) [3]float64 {
		return [3]float64{p.X, p.Y, p.Z}
	}
	var min, max [3]int
	for i, p := range b.points {
		c := coords(p)
		for axis := 0; axis < 3; axis++ {
			if c[axis] < coords(b.points[min[axis]])[axis] {
				min[axis] = i
			}
			if c[axis] > coords(b.points[max[axis]])[axis] {
				max[axis] = i
			}
		}
	}
	var extremes []int
	for _, idx := range []int{min[0], max[0], min[1], max[1], min[2], max[2]} {
		dup := false
		for _, e := range extremes {
			if e == idx {
				dup = true
				break
			}
		}
		if !dup {
			extremes = append(extremes, idx)
		}
	}
	return extremes
}

// partition assigns every non-simplex point to the outside set of the
// first facet whose plane it is beyond. Points inside every facet (within
// tolerance) are interior and dropped immediately.
func (b *builder) partition(simplex ...int) {
	for i, p := range b.points {
		skip := false
		for _, s := range simplex {
			if i == s {
				skip = true
				break
			}
		}
		if skip {
			continue
		}
		b.assign(i, p)
	}
}

func (b *builder) assign(pointIdx int, p geom.Vec3) {
	for fi := range b.facets {
		f := &b.facets[fi]
		if f.deleted {
			continue
		}
		if d := f.pl.offset(p); b.prec.Sign(d) > 0 {
			f.addOutside(pointIdx, d)
			return
		}
	}
}

func (b *builder) addFacet(v0, v1, v2 int) int {
	pl, ok := newPlane(b.points[v0], b.points[v1], b.points[v2])
	if !ok {
		internal.Fatalf("zero-area facet (%d %d %d)", v0, v1, v2)
	}
	b.facets = append(b.facets, facet{
		verts: [3]int{v0, v1, v2},
		adj:   [3]int{-1, -1, -1},
		pl:    pl,
	})
	return len(b.facets) - 1
}

// linkAll rebuilds adjacency for every alive facet from scratch by
// matching each directed edge with its reverse. Only used for the initial
// simplex; horizon replacement links incrementally.
func (b *builder) linkAll() {
	owners := make(map[edge]int)
	for fi := range b.facets {
		f := &b.facets[fi]
		if f.deleted {
			continue
		}
		for i := 0; i < 3; i++ {
			owners[edge{f.verts[i], f.verts[(i+1)%3]}] = fi
		}
	}
	for fi := range b.facets {
		f := &b.facets[fi]
		if f.deleted {
			continue
		}
		for i := 0; i < 3; i++ {
			nb, ok := owners[edge{f.verts[(i+1)%3], f.verts[i]}]
			if !ok {
				internal.Fatalf("facet %d edge %d has no reverse", fi, i)
			}
			f.adj[i] = nb
		}
	}
}

// deepestConflict returns the facet whose farthest outside point is
// deepest overall, or -1 when every outside set is empty. Farthest-first
// processing keeps the expected redistribution cost bounded.
func (b *builder) deepestConflict() int {
	best := -1
	var bestDist float64
	for fi := range b.facets {
		f := &b.facets[fi]
		if f.deleted || len(f.outside) == 0 {
			continue
		}
		if best < 0 || f.farDist > bestDist {
			best, bestDist = fi, f.farDist
		}
	}
	return best
}

// horizonEdge is a directed edge on the boundary between facets visible
// from the conflict point and facets that are not, winding
// counterclockwise around the visible region as seen from the point.
// outer is the surviving facet on the far side.
type horizonEdge struct {
	from, to int
	outer    int
}

// resolve folds the deepest outside point of facet fi into the hull.
func (b *builder) resolve(fi int) {
	apex := b.facets[fi].far
	p := b.points[apex]

	visible := b.visibleFrom(fi, p)
	loop := b.horizon(visible)

	// Delete the visible facets, setting their conflict points aside.
	var orphans []int
	for vi, isVisible := range visible {
		if !isVisible {
			continue
		}
		f := &b.facets[vi]
		orphans = append(orphans, f.outside...)
		f.outside = nil
		f.deleted = true
	}

	// Tent a new facet from each horizon edge to the apex. Edge 0 of each
	// new facet is the horizon edge itself, facing the surviving outer
	// facet; edges 1 and 2 face the neighboring new facets around the loop.
	newIdx := make([]int, len(loop))
	for i, he := range loop {
		ni := b.addFacet(he.from, he.to, apex)
		b.facets[ni].adj[0] = he.outer
		j := b.facets[he.outer].edgeIndex(he.to, he.from)
		if j < 0 {
			internal.Fatalf("horizon edge (%d %d) missing from outer facet %d", he.from, he.to, he.outer)
		}
		b.facets[he.outer].adj[j] = ni
		newIdx[i] = ni
	}
	n := len(newIdx)
	for i, ni := range newIdx {
		b.facets[ni].adj[1] = newIdx[(i+1)%n]
		b.facets[ni].adj[2] = newIdx[(i-1+n)%n]
	}

	// Redistribute the orphaned conflict points. The apex is now a hull
	// vertex; anything no new facet can see has become interior.
	for _, pi := range orphans {
		if pi == apex {
			continue
		}
		q := b.points[pi]
		for _, ni := range newIdx {
			f := &b.facets[ni]
			if d := f.pl.offset(q); b.prec.Sign(d) > 0 {
				f.addOutside(pi, d)
				break
			}
		}
	}
}

// visibleFrom flood-fills the set of facets whose planes have p strictly
// on the positive side, starting from a facet known to be visible. Uses an
// explicit stack; visible regions can span many facets.
func (b *builder) visibleFrom(start int, p geom.Vec3) []bool {
	visible := make([]bool, len(b.facets))
	visible[start] = true
	stack := []int{start}
	for len(stack) > 0 {
		fi := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, nb := range b.facets[fi].adj {
			if nb < 0 {
				internal.Fatalf("facet %d has an unlinked edge", fi)
			}
			if visible[nb] {
				continue
			}
			if b.prec.Sign(b.facets[nb].pl.offset(p)) > 0 {
				visible[nb] = true
				stack = append(stack, nb)
			}
		}
	}
	return visible
}

// horizon collects the directed edges separating visible from non-visible
// facets and orders them into a single closed loop. For a convex
// polytope the visible region is a topological disk, so anything else
// means the tolerance has broken the geometry.
func (b *builder) horizon(visible []bool) []horizonEdge {
	byStart := make(map[int]horizonEdge)
	count := 0
	for fi := range b.facets {
		f := &b.facets[fi]
		if f.deleted || !visible[fi] {
			continue
		}
		for i := 0; i < 3; i++ {
			nb := f.adj[i]
			if visible[nb] {
				continue
			}
			he := horizonEdge{from: f.verts[i], to: f.verts[(i+1)%3], outer: nb}
			if _, dup := byStart[he.from]; dup {
				internal.Fatalf("horizon pinched at vertex %d", he.from)
			}
			byStart[he.from] = he
			count++
		}
	}
	if count < 3 {
		internal.Fatalf("horizon has only %d edges", count)
	}

	loop := make([]horizonEdge, 0, count)
	var first horizonEdge
	for _, he := range byStart {
		first = he
		break
	}
	he := first
	for {
		loop = append(loop, he)
		next, ok := byStart[he.to]
		if !ok {
			internal.Fatalf("horizon is not closed at vertex %d", he.to)
		}
		if next == first {
			break
		}
		if len(loop) > count {
			internal.Fatalf("horizon contains more than one loop")
		}
		he = next
	}
	if len(loop) != count {
		internal.Fatalf("horizon split into multiple loops")
	}
	return loop
}

// finish compacts the arena into an immutable hull: only vertices still
// referenced by alive facets survive, in their original input order, and
// facet adjacency is remapped to the compacted indices.
func (b *builder) finish() *Hull {
	used := make([]bool, len(b.points))
	for fi := range b.facets {
		if b.facets[fi].deleted {
			continue
		}
		for _, v := range b.facets[fi].verts {
			used[v] = true
		}
	}

	vertexRemap := make([]int, len(b.points))
	var vertices []geom.Vec3
	for i, p := range b.points {
		if used[i] {
			vertexRemap[i] = len(vertices)
			vertices = append(vertices, p)
		}
	}

	facetRemap := make([]int, len(b.facets))
	var facets []Facet
	for fi := range b.facets {
		f := &b.facets[fi]
		if f.deleted {
			continue
		}
		facetRemap[fi] = len(facets)
		facets = append(facets, Facet{
			Vertices: [3]int{vertexRemap[f.verts[0]], vertexRemap[f.verts[1]], vertexRemap[f.verts[2]]},
			Origin:   f.pl.origin,
			Normal:   f.pl.normal,
		})
	}
	outIdx := 0
	for fi := range b.facets {
		f := &b.facets[fi]
		if f.deleted {
			continue
		}
		for i := 0; i < 3; i++ {
			facets[outIdx].Adjacent[i] = facetRemap[f.adj[i]]
		}
		outIdx++
	}

	return &Hull{
		vertices: vertices,
		facets:   facets,
		prec:     b.prec,
	}
}
