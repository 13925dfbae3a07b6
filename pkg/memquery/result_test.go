package memquery

import "testing"

func TestSortEntries(t *testing.T) {
	entries := []Entry{
		{PID: 9},
		{PID: 5, Report: &Report{PrivateUsage: 10}},
		{PID: 3},
		{PID: 2, Report: &Report{PrivateUsage: 30}},
		{PID: 7, Report: &Report{PrivateUsage: 30}},
		{PID: 4, Report: &Report{PrivateUsage: 0}},
	}

	SortEntries(entries)

	expected := []uint32{2, 7, 5, 4, 3, 9}
	for i, pid := range expected {
		if entries[i].PID != pid {
			t.Errorf("Position %d: expected pid %d, got %d", i, pid, entries[i].PID)
		}
	}
}

func TestSumTotalsSkipsAbsent(t *testing.T) {
	entries := []Entry{
		{PID: 1, Report: &Report{PrivateUsage: 1, CommittedTotal: 2, CommittedPrivate: 3, CommittedShared: 4}},
		{PID: 2},
		{PID: 3, Report: &Report{PrivateUsage: 10, CommittedTotal: 20, CommittedPrivate: 30, CommittedShared: 40}},
	}

	got := SumTotals(entries)
	want := Totals{PrivateUsage: 11, CommittedTotal: 22, CommittedPrivate: 33, CommittedShared: 44}
	if got != want {
		t.Errorf("SumTotals = %+v; want %+v", got, want)
	}
}

func TestOptionsValidate(t *testing.T) {
	opts := &Options{}
	if err := opts.Validate(); err != nil {
		t.Fatal(err)
	}
	if opts.Workers <= 0 {
		t.Errorf("Workers should default to NumCPU, got %d", opts.Workers)
	}
	if opts.UpperBound != MaxUserAddress {
		t.Errorf("UpperBound should default to %#x, got %#x", MaxUserAddress, opts.UpperBound)
	}

	bad := &Options{UpperBound: 123}
	if err := bad.Validate(); err != ErrInvalidUpperBound {
		t.Errorf("Expected ErrInvalidUpperBound, got %v", err)
	}
}
