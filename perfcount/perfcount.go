// Package perfcount reads hardware performance counters around a closure:
// CPU cycles, retired instructions, branches, and branch misses.
//
// What:
//
//	Measure(loops, f) runs f loops times with counters enabled and returns
//	the totals. Counters are scoped to the calling thread and to user space,
//	so readings reflect the measured code, not the kernel or sibling
//	goroutines that happen to share the process.
//
// Why:
//
//	Wall time alone cannot say whether a traversal reorder pays off through
//	fewer stalls or just less work; instruction and branch counts separate
//	the two. The bench package attaches these readings to its comparisons.
//
// Platform support: Linux only, via perf_event_open (the kernel may still
// deny access depending on perf_event_paranoid or a missing PMU). Every
// other platform returns ErrUnsupported, and callers are expected to
// degrade to timing-only measurement.
package perfcount

import "errors"

// Counters holds totals accumulated while the measured closure ran.
type Counters struct {
	Cycles       uint64 // CPU cycles
	Instructions uint64 // retired instructions
	Branches     uint64 // retired branch instructions
	BranchMisses uint64 // mispredicted branches
}

// ErrUnsupported indicates hardware counters are unavailable: not on
// Linux, no accessible PMU, or the kernel refused perf_event_open.
var ErrUnsupported = errors.New("perfcount: hardware counters unavailable")

// Measure runs f loops times with hardware counters enabled on the calling
// thread and returns the accumulated totals. Counter setup and teardown sit
// outside the enabled window, so readings cover only the f calls.
// Returns ErrUnsupported (possibly wrapped) when counters cannot be opened.
func Measure(loops int, f func()) (Counters, error) {
	return measure(loops, f)
}
