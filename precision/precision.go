// Tolerant floating point comparison. Every comparison made during a hull
// computation goes through a single Context so that the whole computation
// agrees on what "equal" means. If we don't account for float imprecision,
// we end up keeping absurdly thin slivers on nearly collinear points, or
// popping vertices that belong on the hull.
package precision

import "math"

// DefaultEpsilon is a reasonable tolerance for inputs with coordinates
// around unit scale.
const DefaultEpsilon = 1e-10

// Context compares float64 values under a fixed epsilon. The zero value
// compares exactly; use New for a tolerant context. Contexts are immutable
// and safe to copy.
type Context struct {
	eps float64
}

func New(eps float64) Context {
	return Context{eps: eps}
}

func Default() Context {
	return Context{eps: DefaultEpsilon}
}

func (c Context) Epsilon() float64 {
	return c.eps
}

// Eq reports whether a and b are within epsilon of each other.
func (c Context) Eq(a, b float64) bool {
	return math.Abs(a-b) <= c.eps
}

// EqZero reports whether a is within epsilon of zero.
func (c Context) EqZero(a float64) bool {
	return math.Abs(a) <= c.eps
}

// Compare returns -1, 0, or 1. Values within epsilon compare as equal.
// Note that this is not transitive: a ~ b and b ~ c do not imply a ~ c.
// Callers that sort with it must be tolerant of that, as the hull
// generators are.
func (c Context) Compare(a, b float64) int {
	if c.Eq(a, b) {
		return 0
	}
	if a < b {
		return -1
	}
	return 1
}

// Sign is Compare against zero.
func (c Context) Sign(a float64) int {
	return c.Compare(a, 0)
}

func (c Context) Lt(a, b float64) bool {
	return c.Compare(a, b) < 0
}

func (c Context) Lte(a, b float64) bool {
	return c.Compare(a, b) <= 0
}

func (c Context) Gt(a, b float64) bool {
	return c.Compare(a, b) > 0
}

func (c Context) Gte(a, b float64) bool {
	return c.Compare(a, b) >= 0
}
