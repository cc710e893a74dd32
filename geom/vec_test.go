package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignedArea(t *testing.T) {
	o := Vec2{0, 0}
	a := Vec2{1, 0}
	b := Vec2{0, 1}

	// Counterclockwise positive, clockwise negative, collinear zero.
	assert.Equal(t, 1.0, SignedArea(o, a, b))
	assert.Equal(t, -1.0, SignedArea(o, b, a))
	assert.Equal(t, 0.0, SignedArea(o, a, Vec2{2, 0}))

	// Translation invariant.
	shift := Vec2{17, -3}
	assert.InDelta(t, 1.0, SignedArea(o.Add(shift), a.Add(shift), b.Add(shift)), 1e-12)
}

func TestVec2Ops(t *testing.T) {
	v := Vec2{3, 4}
	assert.Equal(t, 5.0, v.Norm())
	assert.Equal(t, 5.0, v.Dist(Vec2{0, 0}))
	assert.Equal(t, Vec2{2, 2}, Vec2{3, 5}.Sub(Vec2{1, 3}))
	assert.Equal(t, 0.0, Vec2{1, 0}.Dot(Vec2{0, 1}))
	assert.Equal(t, 1.0, Vec2{1, 0}.Cross(Vec2{0, 1}))
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	z := Vec3{0, 0, 1}

	assert.Equal(t, z, x.Cross(y))
	assert.Equal(t, Vec3{0, 0, -1}, y.Cross(x))
	assert.Equal(t, x, y.Cross(z))

	// The cross product is orthogonal to both inputs.
	v := Vec3{1, 2, 3}
	w := Vec3{-2, 0.5, 4}
	c := v.Cross(w)
	assert.InDelta(t, 0, c.Dot(v), 1e-12)
	assert.InDelta(t, 0, c.Dot(w), 1e-12)
}

func TestVec3Ops(t *testing.T) {
	v := Vec3{1, 2, 2}
	assert.Equal(t, 3.0, v.Norm())
	assert.Equal(t, 3.0, v.Dist(Vec3{0, 0, 0}))
	assert.Equal(t, Vec3{2, 4, 4}, v.Scale(2))
	assert.InDelta(t, 1.0, v.Scale(1/v.Norm()).Norm(), 1e-12)
	assert.Equal(t, 9.0, v.Dot(v))
	assert.True(t, math.IsInf(Vec3{math.Inf(1), 0, 0}.Norm(), 1))
}

func TestErrorTaxonomy(t *testing.T) {
	assert.EqualError(t, ErrNilPoints, "hull: nil candidate point collection")

	err := Convexityf("vertex %d is misplaced", 3)
	assert.EqualError(t, err, "hull: convexity validation failed: vertex 3 is misplaced")
	var convexityErr *ConvexityError
	assert.ErrorAs(t, err, &convexityErr)
	assert.Equal(t, "vertex 3 is misplaced", convexityErr.Msg)
}
