package precision

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEq(t *testing.T) {
	c := New(1e-6)
	assert.True(t, c.Eq(1.0, 1.0))
	assert.True(t, c.Eq(1.0, 1.0+1e-7))
	assert.True(t, c.Eq(1.0, 1.0-1e-7))
	assert.False(t, c.Eq(1.0, 1.0+1e-5))
	// The tolerance band is closed.
	assert.True(t, c.Eq(0, 1e-6))
}

func TestEqZero(t *testing.T) {
	c := New(1e-6)
	assert.True(t, c.EqZero(0))
	assert.True(t, c.EqZero(-1e-7))
	assert.False(t, c.EqZero(2e-6))
}

func TestCompare(t *testing.T) {
	c := New(1e-6)
	assert.Equal(t, 0, c.Compare(3, 3+1e-8))
	assert.Equal(t, -1, c.Compare(3, 4))
	assert.Equal(t, 1, c.Compare(4, 3))

	assert.Equal(t, 0, c.Sign(-1e-9))
	assert.Equal(t, -1, c.Sign(-0.5))
	assert.Equal(t, 1, c.Sign(0.5))
}

func TestOrderingHelpers(t *testing.T) {
	c := New(1e-6)
	assert.True(t, c.Lt(1, 2))
	assert.False(t, c.Lt(1, 1+1e-8)) // equal within tolerance
	assert.True(t, c.Lte(1, 1+1e-8))
	assert.True(t, c.Gt(2, 1))
	assert.True(t, c.Gte(1+1e-8, 1))
	assert.False(t, c.Gt(1+1e-8, 1))
}

func TestZeroValueComparesExactly(t *testing.T) {
	var c Context
	assert.False(t, c.Eq(1, 1+1e-300))
	assert.True(t, c.Eq(1, 1))
}
