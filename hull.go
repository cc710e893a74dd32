// Robust convex hulls for finite point sets in 2 and 3 dimensions.
//
// The hard part of hull construction is not the textbook algorithm but
// floating point: deciding when three points are "really" collinear, when
// four are coplanar, and keeping the output provably convex despite
// tolerance-based comparisons. Every comparison here goes through a
// precision context with a fixed epsilon, degenerate inputs (a point, a
// segment, a flat cloud) come back as valid region-less hulls rather than
// errors, and every hull is validated after construction: a hull that
// fails its own convexity check is reported as an error instead of being
// returned.
//
// The 2D pipeline is an Akl-Toussaint prefilter followed by Andrew's
// monotone chain; the 3D pipeline is incremental quickhull over an
// index-addressed facet arena. See the twod and threed packages for the
// pieces, or use the top level functions here.
package hull

import (
	"github.com/osuushi/hull/geom"
	"github.com/osuushi/hull/precision"
	"github.com/osuushi/hull/threed"
	"github.com/osuushi/hull/twod"
)

type Vec2 = geom.Vec2
type Vec3 = geom.Vec3
type Hull2D = twod.Hull
type Hull3D = threed.Hull
type Facet = threed.Facet

// ErrNilPoints is returned when a candidate collection is nil.
var ErrNilPoints = geom.ErrNilPoints

// ConvexHull2D computes the convex hull of the points under the given
// epsilon. The vertex sequence winds counterclockwise. When
// includeCollinear is true, points lying on hull edges within tolerance
// are kept in the sequence.
func ConvexHull2D(points []Vec2, epsilon float64, includeCollinear bool) (*Hull2D, error) {
	if points == nil {
		return nil, geom.ErrNilPoints
	}
	prec := precision.New(epsilon)
	return twod.Generate(twod.ReducePoints(points, prec), prec, includeCollinear)
}

// ConvexHull3D computes the convex hull of the points under the given
// epsilon, producing triangulated facets with outward planes.
func ConvexHull3D(points []Vec3, epsilon float64) (*Hull3D, error) {
	return threed.Generate(points, precision.New(epsilon))
}
