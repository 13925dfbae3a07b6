// Package winproc implements memquery.System on top of the Win32 process
// and memory APIs. Only Windows builds have a working backend; elsewhere New
// returns memquery.ErrUnsupportedPlatform.
package winproc

import "github.com/creativeyann17/commitmem/pkg/memquery"

// VirtualQueryEx State and Type values (winnt.h)
const (
	memCommit  = 0x1000
	memReserve = 0x2000
	memFree    = 0x10000
	memPrivate = 0x20000
)

const (
	// initialProcessIDs is the first EnumProcesses buffer size, in entries
	initialProcessIDs = 1024

	// maxProcessIDs bounds buffer growth; far above any real process count
	maxProcessIDs = 1 << 20

	// maxPathChars is the longest extended-length Windows path
	maxPathChars = 32768
)

// regionFromInfo converts MEMORY_BASIC_INFORMATION fields to a region
func regionFromInfo(base, size uint64, state, typ uint32) memquery.Region {
	r := memquery.Region{
		BaseAddress:   base,
		Size:          size,
		PrivateBacked: typ == memPrivate,
	}
	switch state {
	case memCommit:
		r.State = memquery.StateCommitted
	case memFree:
		r.State = memquery.StateFree
	case memReserve:
		r.State = memquery.StateReserved
	default:
		r.State = memquery.StateUnknown
	}
	return r
}

// PSAPI_WORKING_SET_EX_BLOCK layout. Valid and Shared sit at the same bits
// whether or not the page is valid; ShareCount only means something for
// valid pages.
const (
	wsValidBit       = 1 << 0
	wsShareCountMask = 0x7
	wsShareCountPos  = 1
	wsSharedBit      = 1 << 15
)

// decodeWorkingSetBlock unpacks the attribute word of one working set entry
func decodeWorkingSetBlock(address uint64, block uint64) memquery.PageClassification {
	pc := memquery.PageClassification{
		Address: address,
		Valid:   block&wsValidBit != 0,
		Shared:  block&wsSharedBit != 0,
	}
	if pc.Valid {
		pc.ShareCount = uint32(block>>wsShareCountPos) & wsShareCountMask
	}
	return pc
}

// nextBufferSize returns the grown EnumProcesses buffer size, or 0 when the
// buffer may not grow any further
func nextBufferSize(n int) int {
	if n >= maxProcessIDs {
		return 0
	}
	n *= 2
	if n > maxProcessIDs {
		n = maxProcessIDs
	}
	return n
}
