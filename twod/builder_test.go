package twod

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/hull/geom"
	"github.com/osuushi/hull/precision"
)

var bigDiamond = []geom.Vec2{
	{X: -10, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: -10}, {X: 0, Y: 10},
}

func TestBuilderMatchesBatch(t *testing.T) {
	prec := precision.Default()
	for _, seed := range []int64{11, 12, 13} {
		points := randomCloud(seed, 250)

		b := NewBuilder(false, prec)
		b.AppendAll(points)
		streamed, err := b.Build()
		require.NoError(t, err)

		direct, err := Generate(points, prec, false)
		require.NoError(t, err)

		assertSameLoop(t, direct.Vertices(), streamed.Vertices(), prec)
	}
}

func TestBuilderEmpty(t *testing.T) {
	b := NewBuilder(false, precision.Default())
	h, err := b.Build()
	require.NoError(t, err)
	assert.Empty(t, h.Vertices())
	assert.True(t, h.Degenerate())
}

// The streaming filter only tests each point against the quadrilateral of
// the extrema seen so far. Retained points are never reconsidered when the
// quadrilateral later grows, so the builder can retain more candidates
// than the batch filter would. The hull itself is unaffected; the exact
// builder discards the extras.
func TestBuilderUnderFilters(t *testing.T) {
	prec := precision.Default()
	// A small square first: its corners are all extrema when they arrive,
	// so they are all retained. Then a diamond that swallows it.
	points := append([]geom.Vec2{
		{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2},
	}, bigDiamond...)

	b := NewBuilder(false, prec)
	b.AppendAll(points)
	batch := ReducePoints(points, prec)

	// The batch filter sees the final extrema and drops the small square;
	// the streaming builder already committed to keeping it.
	assert.Len(t, batch, 4)
	assert.Len(t, b.candidates, 8)

	h, err := b.Build()
	require.NoError(t, err)
	assertSameLoop(t, []geom.Vec2{
		{X: -10, Y: 0}, {X: 0, Y: -10}, {X: 10, Y: 0}, {X: 0, Y: 10},
	}, h.Vertices(), prec)
}

func TestBuilderDiscardsCoveredAppends(t *testing.T) {
	prec := precision.Default()
	b := NewBuilder(false, prec)
	b.AppendAll(bigDiamond)
	// Now strictly inside the current quadrilateral: dropped on arrival.
	b.Append(geom.Vec2{X: 0, Y: 1})
	b.Append(geom.Vec2{X: -3, Y: 2})
	assert.Len(t, b.candidates, 4)
}
