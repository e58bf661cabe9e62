// Package guard restricts the host process's own memory budget through a
// kernel job object. The ceiling is set so low that a debugger has no room
// to allocate event buffers, create remote threads, or write breakpoints,
// while the already-loaded process keeps running inside the working set it
// holds. The job-object primitives exist only on the Windows family; other
// platforms get a backend that reports the capability as unavailable.
package guard

import (
	"github.com/tusharlock10/memfence/internal/logging"
)

// memoryCeiling is the process memory limit written into the job object.
// Far below what a debugger needs to operate, above what an already-running
// process with no further heap growth needs. Policy constant, never computed.
const memoryCeiling = 0x1000

// limitProcessMemory marks the process-memory ceiling as the only active
// restriction in the limit record (JOB_OBJECT_LIMIT_PROCESS_MEMORY).
const limitProcessMemory = 0x00000100

// ntStatus follows the kernel NTSTATUS convention: any non-negative value,
// informational and warning categories included, counts as success.
type ntStatus int32

func (s ntStatus) ok() bool { return s >= 0 }

// jobHandle is an opaque handle to a kernel job object.
type jobHandle uintptr

// jobMemoryLimits is the logical limit record written into the job object.
type jobMemoryLimits struct {
	ProcessMemoryLimit uint64
	LimitFlags         uint32
}

// ntAPI is the kernel capability set behind the guard. The entry points are
// internal NT APIs that may be absent on some builds, so each platform
// backend probes for them at runtime instead of linking statically.
type ntAPI interface {
	// resolved reports whether every required entry point was located.
	// A single missing symbol makes the whole set unavailable.
	resolved() bool
	createJobObject() (jobHandle, ntStatus)
	assignCurrentProcess(job jobHandle) ntStatus
	setMemoryLimits(job jobHandle, limits jobMemoryLimits) ntStatus
	closeHandle(job jobHandle)
}

// Guard applies a near-zero memory ceiling to the current process.
type Guard struct {
	sink logging.Sink
	api  ntAPI
}

// New returns a Guard that reports outcomes through sink.
// A nil sink discards all output.
func New(sink logging.Sink) *Guard {
	if sink == nil {
		sink = logging.Discard
	}
	return &Guard{sink: sink, api: platformAPI()}
}

// Enable binds the current process to a fresh job object and writes the
// memory ceiling into it. It returns true only if every step succeeded;
// on any failure it logs the failing step at error severity and returns
// false, leaving the process in whatever state the last completed step
// produced. The local job handle is closed on every path after creation —
// the process's job membership, and with it the ceiling, outlives the handle.
//
// Enable is meant to be called once, early in process startup. Concurrent
// calls are outside the contract.
func (g *Guard) Enable() bool {
	if !g.api.resolved() {
		g.sink.Log(logging.Error, "Failed to get NT API functions")
		return false
	}

	job, status := g.api.createJobObject()
	if !status.ok() {
		g.sink.Log(logging.Error, "Failed to create job object")
		return false
	}
	defer g.api.closeHandle(job)

	if status := g.api.assignCurrentProcess(job); !status.ok() {
		g.sink.Log(logging.Error, "Failed to assign process to job")
		return false
	}

	limits := jobMemoryLimits{
		ProcessMemoryLimit: memoryCeiling,
		LimitFlags:         limitProcessMemory,
	}
	if status := g.api.setMemoryLimits(job, limits); !status.ok() {
		g.sink.Log(logging.Error, "Failed to set job limits")
		return false
	}

	g.sink.Log(logging.Info, "Memory protection active")
	return true
}
