//go:build windows

package guard

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// The lazy procs resolve on first use and stay resolved for the life of the
// process; ntdll is never unloaded.
var (
	ntdll                          = windows.NewLazyDLL("ntdll.dll")
	procNtCreateJobObject          = ntdll.NewProc("NtCreateJobObject")
	procNtAssignProcessToJobObject = ntdll.NewProc("NtAssignProcessToJobObject")
	procNtSetInformationJobObject  = ntdll.NewProc("NtSetInformationJobObject")
)

// windowsAPI drives the job-object primitives through the ntdll entry points.
type windowsAPI struct{}

func platformAPI() ntAPI { return windowsAPI{} }

// resolved probes all three entry points by name. A lookup failure, the
// hosting library included, makes the whole capability set unavailable.
func (windowsAPI) resolved() bool {
	return procNtCreateJobObject.Find() == nil &&
		procNtAssignProcessToJobObject.Find() == nil &&
		procNtSetInformationJobObject.Find() == nil
}

// createJobObject creates an anonymous job with maximum allowed access and
// no security descriptor.
func (windowsAPI) createJobObject() (jobHandle, ntStatus) {
	var job windows.Handle
	r, _, _ := procNtCreateJobObject.Call(
		uintptr(unsafe.Pointer(&job)),
		uintptr(windows.MAXIMUM_ALLOWED),
		0,
	)
	return jobHandle(job), ntStatus(r)
}

// assignCurrentProcess binds the calling process to the job using the
// current-process pseudo-handle, which needs no closing.
func (windowsAPI) assignCurrentProcess(job jobHandle) ntStatus {
	r, _, _ := procNtAssignProcessToJobObject.Call(
		uintptr(job),
		uintptr(windows.CurrentProcess()),
	)
	return ntStatus(r)
}

// setMemoryLimits writes the extended-limit record into the job.
func (windowsAPI) setMemoryLimits(job jobHandle, limits jobMemoryLimits) ntStatus {
	var info windows.JOBOBJECT_EXTENDED_LIMIT_INFORMATION
	info.ProcessMemoryLimit = uintptr(limits.ProcessMemoryLimit)
	info.BasicLimitInformation.LimitFlags = limits.LimitFlags

	r, _, _ := procNtSetInformationJobObject.Call(
		uintptr(job),
		uintptr(windows.JobObjectExtendedLimitInformation),
		uintptr(unsafe.Pointer(&info)),
		unsafe.Sizeof(info),
	)
	return ntStatus(r)
}

func (windowsAPI) closeHandle(job jobHandle) {
	windows.CloseHandle(windows.Handle(job)) //nolint:errcheck
}
