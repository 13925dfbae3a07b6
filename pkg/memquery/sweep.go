// pkg/memquery/sweep.go
package memquery

import (
	"errors"
	"fmt"
	"sync"
)

// ProgressCallback is called for progress updates during a sweep.
// It may be called concurrently from several workers.
type ProgressCallback func(event ProgressEvent)

// ProgressEvent contains progress information
type ProgressEvent struct {
	Type    EventType
	PID     uint32
	Current int64
	Total   int64
	Err     error
}

// EventType indicates the type of progress event
type EventType int

const (
	EventStart EventType = iota
	EventProcessComplete
	EventProcessSkipped
	EventProcessError
	EventComplete
)

// Sweep queries every process of sys and returns a sorted snapshot.
// Only a failure to list processes or to read the system commit total is
// fatal; per-process failures end up as entries without a report.
func Sweep(sys System, opts *Options, progressCb ProgressCallback) (*Snapshot, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	pids, err := sys.ListProcessIDs()
	if err != nil {
		if !errors.Is(err, ErrEnumerationFailed) {
			err = fmt.Errorf("%w: %v", ErrEnumerationFailed, err)
		}
		return nil, fmt.Errorf("list processes: %w", err)
	}

	if progressCb != nil {
		progressCb(ProgressEvent{Type: EventStart, Total: int64(len(pids))})
	}

	entries := make([]Entry, len(pids))
	accountant := NewAccountant(sys, opts)

	workers := opts.Workers
	if workers > len(pids) {
		workers = len(pids)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	var progressMu sync.Mutex
	var done int64

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				pid := pids[i]
				report, err := accountant.Query(pid)
				entries[i] = Entry{PID: pid, Report: report, Err: err}

				if progressCb == nil {
					continue
				}
				event := ProgressEvent{PID: pid, Total: int64(len(pids)), Err: err}
				switch {
				case err != nil:
					event.Type = EventProcessError
				case report == nil:
					event.Type = EventProcessSkipped
				default:
					event.Type = EventProcessComplete
				}
				progressMu.Lock()
				done++
				event.Current = done
				progressMu.Unlock()
				progressCb(event)
			}
		}()
	}

	for i := range pids {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	commitTotal, err := sys.SystemCommitTotal()
	if err != nil {
		if !errors.Is(err, ErrQueryFailed) {
			err = fmt.Errorf("%w: %v", ErrQueryFailed, err)
		}
		return nil, fmt.Errorf("system commit total: %w", err)
	}

	SortEntries(entries)

	if progressCb != nil {
		progressCb(ProgressEvent{
			Type:    EventComplete,
			Current: int64(len(pids)),
			Total:   int64(len(pids)),
		})
	}

	return &Snapshot{
		SystemCommitTotal: commitTotal,
		Entries:           entries,
		Totals:            SumTotals(entries),
	}, nil
}
