package utils

import "sync/atomic"

// sizeTracker is a process-wide diagnostic counter of bytes allocated by EF
// components. It descends from the source's global SIZE_TRACKER (see
// EF_encoder.h / node.h in original_source), which was incremented on
// construction and decremented on destruction. Go has no destructors, and
// the GC reclaims a component's backing arrays whenever it becomes
// unreachable, so there is no matching decrement here: the counter is a
// monotonically increasing "bytes built so far" figure, useful for build-time
// diagnostics, never a live resident-set estimate. It is not load-bearing.
var sizeTracker atomic.Int64

// TrackAlloc adds n bytes to the process-wide diagnostic counter.
func TrackAlloc(n int) {
	sizeTracker.Add(int64(n))
}

// TrackedBytes returns the cumulative bytes reported via TrackAlloc so far.
func TrackedBytes() int64 {
	return sizeTracker.Load()
}
