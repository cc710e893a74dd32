package geom

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNilPoints is returned when a generator is handed a nil candidate
// collection. An empty (but non-nil) collection is valid input and yields
// an empty degenerate hull.
var ErrNilPoints = errors.New("hull: nil candidate point collection")

// ConvexityError reports that a freshly built hull failed its own
// post-construction convexity check. This almost always means the epsilon
// was too coarse for the spread of the input points. The computation is
// deterministic, so retrying with the same input and epsilon will fail the
// same way; callers should tighten the epsilon instead.
type ConvexityError struct {
	Msg string
}

func (e *ConvexityError) Error() string {
	return "hull: convexity validation failed: " + e.Msg
}

// Convexityf builds a ConvexityError from a format string.
func Convexityf(format string, args ...interface{}) error {
	return &ConvexityError{Msg: fmt.Sprintf(format, args...)}
}
