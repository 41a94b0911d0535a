//go:build linux

package perfcount

import (
	"encoding/binary"
	"fmt"
	"runtime"
	"unsafe"

	"golang.org/x/sys/unix"
)

// events lists the four hardware counters in Counters field order.
var events = [4]struct {
	name   string
	config uint64
}{
	{"cycles", unix.PERF_COUNT_HW_CPU_CYCLES},
	{"instructions", unix.PERF_COUNT_HW_INSTRUCTIONS},
	{"branches", unix.PERF_COUNT_HW_BRANCH_INSTRUCTIONS},
	{"branch-misses", unix.PERF_COUNT_HW_BRANCH_MISSES},
}

// measure opens one counting fd per event on the calling thread, runs f
// loops times inside an enable/disable window, and reads the totals.
func measure(loops int, f func()) (Counters, error) {
	// Counters follow the thread they were opened on (pid=0, cpu=-1);
	// pin the goroutine so f runs on that thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	var fds [4]int
	for i := range fds {
		fds[i] = -1
	}
	defer func() {
		for _, fd := range fds {
			if fd >= 0 {
				_ = unix.Close(fd)
			}
		}
	}()

	for i, ev := range events {
		attr := unix.PerfEventAttr{
			Type:   unix.PERF_TYPE_HARDWARE,
			Size:   uint32(unsafe.Sizeof(unix.PerfEventAttr{})),
			Config: ev.config,
			Bits:   unix.PerfBitDisabled | unix.PerfBitExcludeKernel | unix.PerfBitExcludeHv,
		}
		fd, err := unix.PerfEventOpen(&attr, 0, -1, -1, unix.PERF_FLAG_FD_CLOEXEC)
		if err != nil {
			return Counters{}, fmt.Errorf("open %s: %v: %w", ev.name, err, ErrUnsupported)
		}
		fds[i] = fd
	}

	for _, fd := range fds {
		if err := unix.IoctlSetInt(fd, unix.PERF_EVENT_IOC_RESET, 0); err != nil {
			return Counters{}, fmt.Errorf("reset: %v: %w", err, ErrUnsupported)
		}
	}
	for _, fd := range fds {
		if err := unix.IoctlSetInt(fd, unix.PERF_EVENT_IOC_ENABLE, 0); err != nil {
			return Counters{}, fmt.Errorf("enable: %v: %w", err, ErrUnsupported)
		}
	}

	for i := 0; i < loops; i++ {
		f()
	}

	for _, fd := range fds {
		if err := unix.IoctlSetInt(fd, unix.PERF_EVENT_IOC_DISABLE, 0); err != nil {
			return Counters{}, fmt.Errorf("disable: %v: %w", err, ErrUnsupported)
		}
	}

	var vals [4]uint64
	buf := make([]byte, 8)
	for i, fd := range fds {
		if _, err := unix.Read(fd, buf); err != nil {
			return Counters{}, fmt.Errorf("read %s: %v: %w", events[i].name, err, ErrUnsupported)
		}
		vals[i] = binary.LittleEndian.Uint64(buf)
	}

	return Counters{
		Cycles:       vals[0],
		Instructions: vals[1],
		Branches:     vals[2],
		BranchMisses: vals[3],
	}, nil
}
