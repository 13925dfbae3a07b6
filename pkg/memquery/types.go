// pkg/memquery/types.go
package memquery

const (
	// PageSize is the granularity used for page-level share accounting
	PageSize = 4096

	// MaxUserAddress is the exclusive upper bound of the user-mode address
	// space on 64-bit Windows (2^47)
	MaxUserAddress uint64 = 0x800000000000
)

// CommitState is the allocation state of a virtual memory region
type CommitState int

const (
	StateUnknown CommitState = iota
	StateCommitted
	StateFree
	StateReserved
)

func (s CommitState) String() string {
	switch s {
	case StateCommitted:
		return "MEM_COMMIT"
	case StateFree:
		return "MEM_FREE"
	case StateReserved:
		return "MEM_RESERVE"
	default:
		return "Unknown"
	}
}

// Region describes one contiguous range of a process address space
type Region struct {
	BaseAddress   uint64
	Size          uint64
	State         CommitState
	PrivateBacked bool // backed by private memory only (MEM_PRIVATE)
}

// End returns the first address past the region
func (r Region) End() uint64 {
	return r.BaseAddress + r.Size
}

// PageClassification holds the working-set sharing attributes of one page
type PageClassification struct {
	Address    uint64
	Valid      bool // page is resident and attributes are fully resolved
	Shared     bool
	ShareCount uint32
}

// CountsAsShared reports whether the page is charged to the shared total.
// Valid pages need a non-zero share count; for invalid pages only the
// shared bit is meaningful.
func (p PageClassification) CountsAsShared() bool {
	if p.Valid {
		return p.Shared && p.ShareCount > 0
	}
	return p.Shared
}

// Report is the memory accounting of a single process
type Report struct {
	PID uint32

	// PrivateUsage is the commit charge reported by the OS for the process
	PrivateUsage uint64

	// CommittedTotal is the sum of all committed region sizes
	CommittedTotal uint64

	// CommittedPrivate and CommittedShared split committed memory by page
	// sharing. They come from a separate walk and are not reconciled with
	// CommittedTotal.
	CommittedPrivate uint64
	CommittedShared  uint64

	// Name is the executable file name (no directory)
	Name string
}
