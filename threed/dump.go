package threed

import (
	"fmt"
	"io"

	"github.com/osuushi/hull/dbg"
)

// dumpConflicts writes the live facet arena in a readable form. This is
// for debugging the conflict resolution loop: indices are stable but hard
// to follow across rounds, so each facet also gets a memoized readable
// name.
func (b *builder) dumpConflicts(w io.Writer) {
	for fi := range b.facets {
		f := &b.facets[fi]
		if f.deleted {
			continue
		}
		fmt.Fprintf(w, "%s facet %d %v adj %v outside=%d", dbg.Name(f), fi, f.verts, f.adj, len(f.outside))
		if len(f.outside) > 0 {
			fmt.Fprintf(w, " far=%d dist=%.4g", f.far, f.farDist)
		}
		fmt.Fprintln(w)
	}
}
