package twod

import (
	"sort"

	"github.com/osuushi/hull/geom"
	"github.com/osuushi/hull/internal"
	"github.com/osuushi/hull/precision"
)

// Andrew's monotone chain. Points are sorted lexicographically, then a
// lower and an upper chain are grown with a stack discipline: a new point
// pops chain points until the last two chain points and the new point make
// a proper left turn. All turn tests go through the precision context, so
// nearly collinear triples are treated as collinear rather than as noise
// turns.

// Generate computes the convex hull of the given points. The result's
// vertices wind counterclockwise. When includeCollinear is true, points
// that lie on a hull edge (within tolerance) are kept in the vertex
// sequence; otherwise only the edge endpoints survive.
//
// A nil slice is rejected with geom.ErrNilPoints. Inputs without two
// dimensions of spread (empty, single point, or all collinear) yield a
// degenerate hull with no region, not an error.
func Generate(points []geom.Vec2, prec precision.Context, includeCollinear bool) (h *Hull, err error) {
	if points == nil {
		return nil, geom.ErrNilPoints
	}
	defer func() {
		if recoveredErr := internal.HandleHullPanicRecover(recover()); recoveredErr != nil {
			h = nil
			err = recoveredErr
		}
	}()

	sorted := make([]geom.Vec2, len(points))
	copy(sorted, points)
	// Sort by x, breaking ties by y. The x comparison is tolerant so that
	// points within epsilon of the same x are ordered by y instead of by
	// floating noise.
	sort.SliceStable(sorted, func(i, j int) bool {
		if c := prec.Compare(sorted[i].X, sorted[j].X); c != 0 {
			return c < 0
		}
		return sorted[i].Y < sorted[j].Y
	})

	lower := chain{prec: prec, includeCollinear: includeCollinear}
	for _, p := range sorted {
		lower.add(p)
	}
	upper := chain{prec: prec, includeCollinear: includeCollinear}
	for i := len(sorted) - 1; i >= 0; i-- {
		upper.add(sorted[i])
	}

	vertices, degenerate := joinChains(lower.points, upper.points, prec)
	hull := newHull(vertices, degenerate, prec)
	if err := hull.validate(); err != nil {
		return nil, err
	}
	return hull, nil
}

// chain builds one monotone half of the hull.
type chain struct {
	prec             precision.Context
	includeCollinear bool
	points           []geom.Vec2
}

func (c *chain) add(p geom.Vec2) {
	for len(c.points) >= 2 {
		last := c.points[len(c.points)-1]
		anchor := c.points[len(c.points)-2]
		offset := geom.SignedArea(anchor, last, p)

		if c.prec.EqZero(offset) {
			c.addCollinear(anchor, last, p)
			return
		}
		if offset < 0 {
			// Clockwise turn beyond tolerance: the last chain point cannot
			// be on this half of the hull.
			c.points = c.points[:len(c.points)-1]
			continue
		}
		// Proper left turn.
		break
	}
	if len(c.points) > 0 && vec2Eq(c.points[len(c.points)-1], p, c.prec) {
		return
	}
	c.points = append(c.points, p)
}

// addCollinear handles a new point that is collinear (within tolerance)
// with the last two chain points. The chain's turn structure cannot
// change, so this is always terminal: no further popping happens.
func (c *chain) addCollinear(anchor, last, p geom.Vec2) {
	if vec2Eq(p, last, c.prec) || vec2Eq(p, anchor, c.prec) {
		// Tolerance duplicate of an existing chain point.
		return
	}
	if c.includeCollinear {
		// Keep every collinear point, ordered by distance from the anchor
		// so interior points sit between the two extreme endpoints.
		if anchor.Dist(p) < anchor.Dist(last) {
			c.points[len(c.points)-1] = p
			c.points = append(c.points, last)
		} else {
			c.points = append(c.points, p)
		}
		return
	}
	// Only the farther of the two competing endpoints stays.
	if anchor.Dist(p) > anchor.Dist(last) {
		c.points[len(c.points)-1] = p
	}
}

// joinChains concatenates the lower and upper chains into a closed
// counterclockwise loop, dropping the last point of each chain (it
// duplicates the other chain's first point). Degenerate inputs are
// detected here: if every chain point is collinear the hull is a point or
// segment, and the lower chain alone is the vertex sequence.
func joinChains(lower, upper []geom.Vec2, prec precision.Context) ([]geom.Vec2, bool) {
	if len(lower) == 0 {
		return nil, true
	}
	if len(lower) == 1 || len(upper) <= 1 {
		return lower, true
	}
	if chainsCollinear(lower, upper, prec) {
		// The upper chain retraces the lower one. With includeCollinear the
		// lower chain holds the full sorted sequence of distinct points;
		// without it, just the two endpoints.
		return lower, true
	}
	vertices := make([]geom.Vec2, 0, len(lower)+len(upper)-2)
	vertices = append(vertices, lower[:len(lower)-1]...)
	vertices = append(vertices, upper[:len(upper)-1]...)
	return vertices, false
}

func chainsCollinear(lower, upper []geom.Vec2, prec precision.Context) bool {
	a := lower[0]
	b := lower[len(lower)-1]
	for _, p := range lower {
		if !prec.EqZero(geom.SignedArea(a, b, p)) {
			return false
		}
	}
	for _, p := range upper {
		if !prec.EqZero(geom.SignedArea(a, b, p)) {
			return false
		}
	}
	return true
}
