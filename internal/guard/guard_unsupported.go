//go:build !windows

package guard

// STATUS_NOT_IMPLEMENTED. Returned by the stub primitives, though Enable
// never reaches them: resolved() already reports the set unavailable.
const statusNotImplemented ntStatus = -1073741822 // 0xC0000002

// unsupportedAPI is the backend on platforms without NT job objects.
// Every probe fails, so Enable degrades to a uniform resolution failure
// without attempting any OS call.
type unsupportedAPI struct{}

func platformAPI() ntAPI { return unsupportedAPI{} }

func (unsupportedAPI) resolved() bool { return false }

func (unsupportedAPI) createJobObject() (jobHandle, ntStatus) {
	return 0, statusNotImplemented
}

func (unsupportedAPI) assignCurrentProcess(jobHandle) ntStatus {
	return statusNotImplemented
}

func (unsupportedAPI) setMemoryLimits(jobHandle, jobMemoryLimits) ntStatus {
	return statusNotImplemented
}

func (unsupportedAPI) closeHandle(jobHandle) {}
