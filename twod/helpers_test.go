package twod

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/hull/geom"
	"github.com/osuushi/hull/precision"
)

// Shared assertion helpers for the 2D hull tests.

// AssertConvexCCW checks the fundamental hull property: every consecutive
// vertex triple makes a non-negative counterclockwise turn.
func AssertConvexCCW(t *testing.T, h *Hull, prec precision.Context) {
	t.Helper()
	vertices := h.Vertices()
	n := len(vertices)
	if n < 3 {
		return
	}
	for i := 0; i < n; i++ {
		turn := geom.SignedArea(vertices[i], vertices[(i+1)%n], vertices[(i+2)%n])
		assert.GreaterOrEqual(t, prec.Sign(turn), 0,
			"clockwise turn at vertex %d of %v", (i+1)%n, vertices)
	}
}

// AssertContainsAll checks that the hull's region contains every input
// point.
func AssertContainsAll(t *testing.T, h *Hull, points []geom.Vec2) {
	t.Helper()
	region := h.Region()
	require.NotNil(t, region)
	for i, p := range points {
		assert.True(t, region.Contains(p), "input point %d %v is outside the hull", i, p)
	}
}

// assertSameLoop checks that two vertex sequences are the same closed loop
// up to rotation of the starting index.
func assertSameLoop(t *testing.T, expected, actual []geom.Vec2, prec precision.Context) {
	t.Helper()
	if !assert.Equal(t, len(expected), len(actual)) {
		return
	}
	n := len(expected)
	if n == 0 {
		return
	}
	start := -1
	for i, p := range actual {
		if vec2Eq(p, expected[0], prec) {
			start = i
			break
		}
	}
	if !assert.GreaterOrEqual(t, start, 0, "start vertex %v not found in %v", expected[0], actual) {
		return
	}
	for i := range expected {
		assert.True(t, vec2Eq(expected[i], actual[(start+i)%n], prec),
			"loops diverge at offset %d: %v vs %v", i, expected, actual)
	}
}

// randomCloud generates a reproducible point cloud in the unit square.
func randomCloud(seed int64, n int) []geom.Vec2 {
	rng := rand.New(rand.NewSource(seed))
	points := make([]geom.Vec2, n)
	for i := range points {
		points[i] = geom.Vec2{X: rng.Float64(), Y: rng.Float64()}
	}
	return points
}
