// pkg/memquery/accountant.go
package memquery

import (
	"fmt"
	"strings"
)

// Accountant computes memory reports for single processes
type Accountant struct {
	sys        System
	upperBound uint64
}

// NewAccountant creates an accountant on top of sys.
// opts may be nil, in which case defaults are used.
func NewAccountant(sys System, opts *Options) *Accountant {
	upperBound := MaxUserAddress
	if opts != nil && opts.UpperBound != 0 {
		upperBound = opts.UpperBound
	}
	return &Accountant{sys: sys, upperBound: upperBound}
}

// Query returns the memory report of pid.
// A nil report with a nil error means the process could not be opened or
// identified, or exited while it was being walked, which is common during a
// sweep. Errors are failures while the
// process was already open and are scoped to that process only.
func (a *Accountant) Query(pid uint32) (*Report, error) {
	proc, err := a.sys.OpenProcess(pid)
	if err != nil {
		if IsExpected(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open process %d: %w", pid, err)
	}
	defer proc.Close()

	path, err := proc.ExecutablePath()
	if err != nil || path == "" {
		return nil, nil
	}

	privateUsage, err := proc.PrivateUsage()
	if err != nil {
		return nil, fmt.Errorf("pid %d: %w: private usage: %v", pid, ErrQueryFailed, err)
	}

	committed, err := CommittedSize(proc, a.upperBound)
	if err != nil {
		if IsExpected(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("pid %d: committed size: %w", pid, err)
	}

	private, shared, err := CommittedSizeShared(proc, a.upperBound)
	if err != nil {
		if IsExpected(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("pid %d: committed sharing: %w", pid, err)
	}

	return &Report{
		PID:              pid,
		PrivateUsage:     privateUsage,
		CommittedTotal:   committed,
		CommittedPrivate: private,
		CommittedShared:  shared,
		Name:             baseName(path),
	}, nil
}

// baseName strips the directory from an executable path. Both separators are
// accepted since paths come from the target OS, not the host.
func baseName(path string) string {
	if i := strings.LastIndexAny(path, `\/`); i >= 0 {
		return path[i+1:]
	}
	return path
}
