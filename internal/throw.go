package internal

import "github.com/pkg/errors"

// Threading errors up through the quickhull conflict loop and the chain
// builders would add a lot of plumbing for conditions that are either
// caller mistakes or epsilon problems detected at the very end. Instead,
// the internals use panics, and the public API recovers to convert to an
// error.

type HullError error

// Fatalf panics with a HullError.
func Fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

// Throw panics with an existing error, e.g. a typed validation error.
func Throw(err error) {
	panic(err)
}

// HandleHullPanicRecover converts a recovered value back into an error.
// Call it with the result of recover() in a deferred function. Non-error
// panic values are re-panicked; those are real bugs, not hull errors.
func HandleHullPanicRecover(r interface{}) error {
	if r != nil {
		if hullError, ok := r.(HullError); ok {
			return hullError
		}
		panic(r)
	}
	return nil
}
