// pkg/memquery/result.go
package memquery

import (
	"cmp"
	"slices"
)

// Entry is the outcome of querying one process
type Entry struct {
	PID uint32

	// Report is nil when the process could not be queried
	Report *Report

	// Err is set when the process was opened but accounting failed
	Err error
}

// Totals holds exact byte sums over all reported processes
type Totals struct {
	PrivateUsage     uint64
	CommittedTotal   uint64
	CommittedPrivate uint64
	CommittedShared  uint64
}

// Snapshot is the result of one sweep over all processes
type Snapshot struct {
	// SystemCommitTotal is the commit charge of the whole system in bytes
	SystemCommitTotal uint64

	// Entries are sorted by SortEntries order
	Entries []Entry

	Totals Totals
}

// Reported returns the number of entries that carry a report
func (s *Snapshot) Reported() int {
	n := 0
	for _, e := range s.Entries {
		if e.Report != nil {
			n++
		}
	}
	return n
}

// Errors returns the per-process accounting errors of the sweep
func (s *Snapshot) Errors() []error {
	var errs []error
	for _, e := range s.Entries {
		if e.Err != nil {
			errs = append(errs, e.Err)
		}
	}
	return errs
}

// SumTotals adds up all reported entries
func SumTotals(entries []Entry) Totals {
	var t Totals
	for _, e := range entries {
		if e.Report == nil {
			continue
		}
		t.PrivateUsage += e.Report.PrivateUsage
		t.CommittedTotal += e.Report.CommittedTotal
		t.CommittedPrivate += e.Report.CommittedPrivate
		t.CommittedShared += e.Report.CommittedShared
	}
	return t
}

// SortEntries orders reported entries by descending private usage, then by
// ascending pid. Entries without a report go last, by ascending pid.
func SortEntries(entries []Entry) {
	slices.SortFunc(entries, func(a, b Entry) int {
		switch {
		case a.Report != nil && b.Report == nil:
			return -1
		case a.Report == nil && b.Report != nil:
			return 1
		case a.Report != nil && b.Report != nil:
			if c := cmp.Compare(b.Report.PrivateUsage, a.Report.PrivateUsage); c != 0 {
				return c
			}
		}
		return cmp.Compare(a.PID, b.PID)
	})
}
