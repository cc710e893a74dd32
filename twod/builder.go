package twod

import (
	"github.com/osuushi/hull/geom"
	"github.com/osuushi/hull/precision"
)

// Builder accumulates candidate points one at a time, filtering as it
// goes: each appended point is tested against the extremal quadrilateral
// of the extrema seen so far, and discarded if it is strictly inside.
//
// This streaming filter is an approximation of the batch heuristic. The
// quadrilateral corners can change as later points arrive, but
// previously-discarded points are never re-examined, and retained points
// that a later quadrilateral would cover are never re-tested. The retained
// set can therefore differ from what ReducePoints would keep for the same
// input. It is still always a superset of the true hull vertices, so
// Build produces the exact hull either way.
//
// A Builder is single-use and not safe for concurrent use: confine it to
// one goroutine, call Build once, and discard it.
type Builder struct {
	prec             precision.Context
	includeCollinear bool

	candidates             []geom.Vec2
	hasExtrema             bool
	minX, maxX, minY, maxY geom.Vec2
}

func NewBuilder(includeCollinear bool, prec precision.Context) *Builder {
	return &Builder{
		prec:             prec,
		includeCollinear: includeCollinear,
		candidates:       []geom.Vec2{},
	}
}

// Append adds a candidate point, unless it is provably interior to the
// hull of the points appended so far.
func (b *Builder) Append(p geom.Vec2) {
	if !b.hasExtrema {
		b.minX, b.maxX, b.minY, b.maxY = p, p, p, p
		b.hasExtrema = true
		b.candidates = append(b.candidates, p)
		return
	}
	if p.X < b.minX.X {
		b.minX = p
	}
	if p.X > b.maxX.X {
		b.maxX = p
	}
	if p.Y < b.minY.Y {
		b.minY = p
	}
	if p.Y > b.maxY.Y {
		b.maxY = p
	}
	q := makeQuad(b.minX, b.minY, b.maxX, b.maxY, b.prec)
	if q.containsStrictly(p, b.prec) {
		return
	}
	b.candidates = append(b.candidates, p)
}

// AppendAll appends each point in order.
func (b *Builder) AppendAll(points []geom.Vec2) {
	for _, p := range points {
		b.Append(p)
	}
}

// Build consumes the retained candidates into an immutable hull.
func (b *Builder) Build() (*Hull, error) {
	return Generate(b.candidates, b.prec, b.includeCollinear)
}
