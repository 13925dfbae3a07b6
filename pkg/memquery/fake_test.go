package memquery

import (
	"errors"
	"fmt"
	"sync/atomic"
)

type fakeProcess struct {
	path         string
	pathErr      error
	privateUsage uint64
	usageErr     error
	regions      []Region
	pages        map[uint64]PageClassification
	pageErr      error
	truncate     bool     // return one page less than requested
	secondWalk   []Region // layout seen from the second walk on
	requested    []uint64

	walks     atomic.Int32
	pageCalls atomic.Int32
	closed    atomic.Int32
}

// QueryRegion answers like VirtualQueryEx: the region runs from the queried
// address to the end of the containing range.
func (p *fakeProcess) QueryRegion(address uint64) (Region, bool) {
	if address == 0 {
		p.walks.Add(1)
	}
	regions := p.regions
	if p.secondWalk != nil && p.walks.Load() > 1 {
		regions = p.secondWalk
	}
	for _, r := range regions {
		if address >= r.BaseAddress && address < r.End() {
			r.Size = r.End() - address
			r.BaseAddress = address
			return r, true
		}
	}
	return Region{}, false
}

func (p *fakeProcess) QueryPageShare(addresses []uint64) ([]PageClassification, error) {
	p.pageCalls.Add(1)
	p.requested = append(p.requested, addresses...)
	if p.pageErr != nil {
		return nil, p.pageErr
	}
	out := make([]PageClassification, 0, len(addresses))
	for _, a := range addresses {
		pc := p.pages[a]
		pc.Address = a
		out = append(out, pc)
	}
	if p.truncate && len(out) > 0 {
		out = out[:len(out)-1]
	}
	return out, nil
}

func (p *fakeProcess) ExecutablePath() (string, error) {
	return p.path, p.pathErr
}

func (p *fakeProcess) PrivateUsage() (uint64, error) {
	return p.privateUsage, p.usageErr
}

func (p *fakeProcess) Close() error {
	p.closed.Add(1)
	return nil
}

type fakeSystem struct {
	pids      []uint32
	listErr   error
	procs     map[uint32]*fakeProcess
	openErrs  map[uint32]error
	commit    uint64
	commitErr error
}

func (s *fakeSystem) ListProcessIDs() ([]uint32, error) {
	return s.pids, s.listErr
}

func (s *fakeSystem) OpenProcess(pid uint32) (Process, error) {
	if err, ok := s.openErrs[pid]; ok {
		return nil, err
	}
	p, ok := s.procs[pid]
	if !ok {
		return nil, fmt.Errorf("pid %d: %w", pid, ErrProcessUnavailable)
	}
	return p, nil
}

func (s *fakeSystem) SystemCommitTotal() (uint64, error) {
	return s.commit, s.commitErr
}

// sampleLayout is a small address space:
//
//	0x00000-0x10000 free
//	0x10000-0x12000 committed, private
//	0x12000-0x20000 reserved
//	0x20000-0x23000 committed, image (shareable)
//	0x23000-0x30000 free
//
// Queries past 0x30000 fail, which ends the walk.
func sampleLayout() []Region {
	return []Region{
		{BaseAddress: 0x00000, Size: 0x10000, State: StateFree},
		{BaseAddress: 0x10000, Size: 0x2000, State: StateCommitted, PrivateBacked: true},
		{BaseAddress: 0x12000, Size: 0xE000, State: StateReserved, PrivateBacked: true},
		{BaseAddress: 0x20000, Size: 0x3000, State: StateCommitted},
		{BaseAddress: 0x23000, Size: 0xD000, State: StateFree},
	}
}

// samplePages classifies the three image pages as shared, private and shared
func samplePages() map[uint64]PageClassification {
	return map[uint64]PageClassification{
		0x20000: {Valid: true, Shared: true, ShareCount: 2},
		0x21000: {Valid: true, Shared: true, ShareCount: 0},
		0x22000: {Valid: false, Shared: true},
	}
}

func newSampleProcess(path string, privateUsage uint64) *fakeProcess {
	return &fakeProcess{
		path:         path,
		privateUsage: privateUsage,
		regions:      sampleLayout(),
		pages:        samplePages(),
	}
}

var errBoom = errors.New("boom")
