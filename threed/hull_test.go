package threed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/hull/geom"
	"github.com/osuushi/hull/precision"
)

func TestRegionLifecycle(t *testing.T) {
	prec := precision.Default()
	h, err := Generate(unitCube(), prec)
	require.NoError(t, err)

	region := h.Region()
	require.NotNil(t, region)
	// Derived once, cached thereafter.
	assert.Same(t, region, h.Region())

	assert.True(t, region.Contains(geom.Vec3{X: 0.5, Y: 0.5, Z: 0.5}))
	assert.True(t, region.Contains(geom.Vec3{X: 1, Y: 1, Z: 0.5})) // on an edge
	assert.False(t, region.Contains(geom.Vec3{X: 1.5, Y: 0.5, Z: 0.5}))
	assert.False(t, region.Contains(geom.Vec3{X: -0.1, Y: 0.5, Z: 0.5}))
}

func TestFacetPlanesPointOutward(t *testing.T) {
	prec := precision.Default()
	h, err := Generate(unitCube(), prec)
	require.NoError(t, err)

	centroid := geom.Vec3{X: 0.5, Y: 0.5, Z: 0.5}
	for fi, f := range h.Facets() {
		pl := plane{origin: f.Origin, normal: f.Normal}
		assert.Negative(t, pl.offset(centroid), "facet %d normal points inward", fi)
		assert.InDelta(t, 1.0, f.Normal.Norm(), 1e-12, "facet %d normal is not unit length", fi)
	}
}

func TestValidateCatchesBrokenManifold(t *testing.T) {
	prec := precision.Default()
	h, err := Generate(unitCube(), prec)
	require.NoError(t, err)

	// Flip one facet's winding. Its directed edges now collide with its
	// neighbors' instead of opposing them.
	flipped := *h
	flipped.facets = append([]Facet(nil), h.facets...)
	flipped.facets[0].Vertices[0], flipped.facets[0].Vertices[1] =
		flipped.facets[0].Vertices[1], flipped.facets[0].Vertices[0]

	err = flipped.validate()
	require.Error(t, err)
	var convexityErr *geom.ConvexityError
	assert.ErrorAs(t, err, &convexityErr)
}

func TestValidateCatchesOutsideVertex(t *testing.T) {
	prec := precision.Default()
	h, err := Generate(unitCube(), prec)
	require.NoError(t, err)

	// Push a vertex outside every plane that doesn't contain it.
	broken := *h
	broken.vertices = append([]geom.Vec3(nil), h.vertices...)
	broken.vertices[0] = broken.vertices[0].Add(geom.Vec3{X: -1, Y: -1, Z: -1})

	err = broken.validate()
	require.Error(t, err)
	var convexityErr *geom.ConvexityError
	assert.ErrorAs(t, err, &convexityErr)
}
