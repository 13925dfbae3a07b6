// pkg/memquery/walker.go
package memquery

// Walker iterates the regions of a process address space from address 0 up
// to an upper bound. It is single-use:
//
//	w := NewWalker(proc, MaxUserAddress)
//	for w.Next() {
//		r := w.Region()
//	}
//	if err := w.Err(); err != nil { ... }
type Walker struct {
	q          RegionQuerier
	upperBound uint64
	cursor     uint64
	region     Region
	done       bool
	err        error
}

// NewWalker creates a walker over q, bounded by upperBound (exclusive)
func NewWalker(q RegionQuerier, upperBound uint64) *Walker {
	return &Walker{q: q, upperBound: upperBound}
}

// Next advances to the next region. It returns false at the end of the
// address space or on error.
func (w *Walker) Next() bool {
	if w.done || w.cursor >= w.upperBound {
		w.done = true
		return false
	}

	r, ok := w.q.QueryRegion(w.cursor)
	if !ok {
		if w.cursor == 0 {
			w.err = ErrProcessUnavailable
		}
		w.done = true
		return false
	}
	if r.Size == 0 {
		w.done = true
		return false
	}

	// Regions are reported from the cursor so consecutive regions always touch
	r.BaseAddress = w.cursor

	// Round a partial trailing page up so the cursor stays page aligned
	if rem := r.Size % PageSize; rem != 0 && r.Size <= ^uint64(0)-PageSize {
		r.Size += PageSize - rem
	}

	// Clip at the bound, also catches uint64 wrap-around
	if limit := w.upperBound - w.cursor; r.Size > limit {
		r.Size = limit
	}

	w.region = r
	w.cursor += r.Size
	return true
}

// Region returns the current region. Only valid after Next returned true.
func (w *Walker) Region() Region {
	return w.region
}

// Err returns the error that stopped the walk, or nil when it ended normally
func (w *Walker) Err() error {
	return w.err
}

// CommittedSize walks the whole address space and sums committed region sizes
func CommittedSize(q RegionQuerier, upperBound uint64) (uint64, error) {
	var total uint64
	w := NewWalker(q, upperBound)
	for w.Next() {
		if r := w.Region(); r.State == StateCommitted {
			total += r.Size
		}
	}
	return total, w.Err()
}
