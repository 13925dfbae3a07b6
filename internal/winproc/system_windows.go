//go:build windows

package winproc

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/creativeyann17/commitmem/pkg/memquery"
)

var (
	kernel32                 = windows.NewLazySystemDLL("kernel32.dll")
	procGetProcessMemoryInfo = kernel32.NewProc("K32GetProcessMemoryInfo")
	procQueryWorkingSetEx    = kernel32.NewProc("K32QueryWorkingSetEx")
	procGetPerformanceInfo   = kernel32.NewProc("K32GetPerformanceInfo")
)

type processMemoryCountersEx struct {
	cb                         uint32
	PageFaultCount             uint32
	PeakWorkingSetSize         uintptr
	WorkingSetSize             uintptr
	QuotaPeakPagedPoolUsage    uintptr
	QuotaPagedPoolUsage        uintptr
	QuotaPeakNonPagedPoolUsage uintptr
	QuotaNonPagedPoolUsage     uintptr
	PagefileUsage              uintptr
	PeakPagefileUsage          uintptr
	PrivateUsage               uintptr
}

type performanceInformation struct {
	cb                uint32
	CommitTotal       uintptr
	CommitLimit       uintptr
	CommitPeak        uintptr
	PhysicalTotal     uintptr
	PhysicalAvailable uintptr
	SystemCache       uintptr
	KernelTotal       uintptr
	KernelPaged       uintptr
	KernelNonpaged    uintptr
	PageSize          uintptr
	HandleCount       uint32
	ProcessCount      uint32
	ThreadCount       uint32
}

type workingSetExInformation struct {
	VirtualAddress    uintptr
	VirtualAttributes uintptr
}

type system struct{}

// New returns the process backend for the running OS
func New() (memquery.System, error) {
	return system{}, nil
}

func (system) ListProcessIDs() ([]uint32, error) {
	for n := initialProcessIDs; n != 0; n = nextBufferSize(n) {
		pids := make([]uint32, n)
		var bytesReturned uint32
		if err := windows.EnumProcesses(pids, &bytesReturned); err != nil {
			return nil, fmt.Errorf("%w: EnumProcesses: %v", memquery.ErrEnumerationFailed, err)
		}
		count := int(bytesReturned) / int(unsafe.Sizeof(pids[0]))
		// A full buffer may have been truncated
		if count < n {
			return pids[:count], nil
		}
	}
	return nil, fmt.Errorf("%w: more than %d processes", memquery.ErrEnumerationFailed, maxProcessIDs)
}

func (system) OpenProcess(pid uint32) (memquery.Process, error) {
	h, err := windows.OpenProcess(windows.PROCESS_QUERY_INFORMATION|windows.PROCESS_VM_READ, false, pid)
	if err != nil {
		if errors.Is(err, windows.ERROR_ACCESS_DENIED) {
			return nil, fmt.Errorf("open pid %d: %w (%v)", pid, memquery.ErrAccessDenied, err)
		}
		return nil, fmt.Errorf("open pid %d: %w (%v)", pid, memquery.ErrProcessUnavailable, err)
	}
	return &process{handle: h}, nil
}

func (system) SystemCommitTotal() (uint64, error) {
	var info performanceInformation
	info.cb = uint32(unsafe.Sizeof(info))

	ret, _, err := procGetPerformanceInfo.Call(uintptr(unsafe.Pointer(&info)), uintptr(info.cb))
	if ret == 0 {
		return 0, fmt.Errorf("%w: GetPerformanceInfo: %v", memquery.ErrQueryFailed, err)
	}

	// CommitTotal is in pages
	return uint64(info.CommitTotal) * memquery.PageSize, nil
}

type process struct {
	handle windows.Handle
}

func (p *process) Close() error {
	return windows.CloseHandle(p.handle)
}

func (p *process) ExecutablePath() (string, error) {
	buf := make([]uint16, maxPathChars)
	if err := windows.GetModuleFileNameEx(p.handle, 0, &buf[0], uint32(len(buf))); err != nil {
		return "", fmt.Errorf("GetModuleFileNameEx: %w", err)
	}
	return windows.UTF16ToString(buf), nil
}

func (p *process) PrivateUsage() (uint64, error) {
	var counters processMemoryCountersEx
	counters.cb = uint32(unsafe.Sizeof(counters))

	ret, _, err := procGetProcessMemoryInfo.Call(
		uintptr(p.handle),
		uintptr(unsafe.Pointer(&counters)),
		uintptr(counters.cb),
	)
	if ret == 0 {
		return 0, fmt.Errorf("GetProcessMemoryInfo: %w", err)
	}

	return uint64(counters.PrivateUsage), nil
}

func (p *process) QueryRegion(address uint64) (memquery.Region, bool) {
	var mbi windows.MemoryBasicInformation
	if err := windows.VirtualQueryEx(p.handle, uintptr(address), &mbi, unsafe.Sizeof(mbi)); err != nil {
		return memquery.Region{}, false
	}
	return regionFromInfo(uint64(mbi.BaseAddress), uint64(mbi.RegionSize), mbi.State, mbi.Type), true
}

func (p *process) QueryPageShare(addresses []uint64) ([]memquery.PageClassification, error) {
	if len(addresses) == 0 {
		return nil, nil
	}

	infos := make([]workingSetExInformation, len(addresses))
	for i, a := range addresses {
		infos[i].VirtualAddress = uintptr(a)
	}

	ret, _, err := procQueryWorkingSetEx.Call(
		uintptr(p.handle),
		uintptr(unsafe.Pointer(&infos[0])),
		uintptr(len(infos))*unsafe.Sizeof(infos[0]),
	)
	if ret == 0 {
		return nil, fmt.Errorf("QueryWorkingSetEx: %w", err)
	}

	pages := make([]memquery.PageClassification, len(infos))
	for i, info := range infos {
		pages[i] = decodeWorkingSetBlock(addresses[i], uint64(info.VirtualAttributes))
	}
	return pages, nil
}
