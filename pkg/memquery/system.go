// pkg/memquery/system.go
package memquery

// RegionQuerier returns the region containing an address.
// ok is false when no region can be reported, which ends a walk.
type RegionQuerier interface {
	QueryRegion(address uint64) (region Region, ok bool)
}

// PageQuerier resolves working-set sharing attributes for a batch of pages.
// The result has one entry per requested address, in request order.
type PageQuerier interface {
	QueryPageShare(addresses []uint64) ([]PageClassification, error)
}

// Process is an open, query-only handle to a running process
type Process interface {
	RegionQuerier
	PageQuerier

	// ExecutablePath returns the full path of the main module
	ExecutablePath() (string, error)

	// PrivateUsage returns the private commit charge in bytes
	PrivateUsage() (uint64, error)

	Close() error
}

// System gives access to the processes of the local machine
type System interface {
	// ListProcessIDs returns the identifiers of all running processes
	ListProcessIDs() ([]uint32, error)

	// OpenProcess opens pid for querying. Errors wrap ErrProcessUnavailable
	// or ErrAccessDenied when the process simply cannot be opened.
	OpenProcess(pid uint32) (Process, error)

	// SystemCommitTotal returns the committed memory of the whole system in bytes
	SystemCommitTotal() (uint64, error)
}
