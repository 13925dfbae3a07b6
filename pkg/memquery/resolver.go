// pkg/memquery/resolver.go
package memquery

import "fmt"

// ResolvePages queries the sharing attributes of all addresses in one batch
func ResolvePages(q PageQuerier, addresses []uint64) ([]PageClassification, error) {
	if len(addresses) == 0 {
		return nil, nil
	}

	pages, err := q.QueryPageShare(addresses)
	if err != nil {
		return nil, fmt.Errorf("%w: working set: %v", ErrQueryFailed, err)
	}
	if len(pages) != len(addresses) {
		return nil, fmt.Errorf("%w: working set returned %d entries for %d pages",
			ErrQueryFailed, len(pages), len(addresses))
	}

	return pages, nil
}

// pageAddresses appends the address of every page in r to dst
func pageAddresses(dst []uint64, r Region) []uint64 {
	for a := r.BaseAddress; a < r.End(); a += PageSize {
		dst = append(dst, a)
	}
	return dst
}

// CommittedSizeShared walks the address space and splits committed memory
// into private and shared bytes. Private-backed regions are counted whole,
// pages of other committed regions are classified through the working set.
func CommittedSizeShared(p Process, upperBound uint64) (private, shared uint64, err error) {
	var addresses []uint64

	w := NewWalker(p, upperBound)
	for w.Next() {
		r := w.Region()
		if r.State != StateCommitted {
			continue
		}
		if r.PrivateBacked {
			private += r.Size
			continue
		}
		addresses = pageAddresses(addresses, r)
	}
	if err := w.Err(); err != nil {
		return 0, 0, err
	}

	pages, err := ResolvePages(p, addresses)
	if err != nil {
		return 0, 0, err
	}

	for _, page := range pages {
		if page.CountsAsShared() {
			shared += PageSize
		} else {
			private += PageSize
		}
	}

	return private, shared, nil
}
