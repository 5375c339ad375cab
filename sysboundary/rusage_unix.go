//go:build !windows

package sysboundary

import (
	"syscall"
	"time"
)

// getrusageTimes wraps getrusage(RUSAGE_SELF, ...), the syscall
// system.c reaches for on every platform that isn't Windows.
func getrusageTimes() (user, system time.Duration, err error) {
	var ru syscall.Rusage
	if err := retryEINTR(func() error { return syscall.Getrusage(syscall.RUSAGE_SELF, &ru) }); err != nil {
		return 0, 0, err
	}
	return time.Duration(ru.Utime.Nano()), time.Duration(ru.Stime.Nano()), nil
}

// retryEINTR retries fn once per EINTR, matching system.c's SCM_SYSCALL
// macro (retry after a signal check, rather than surfacing EINTR to the
// caller as an ordinary error).
func retryEINTR(fn func() error) error {
	for {
		err := fn()
		if err == syscall.EINTR {
			continue
		}
		return err
	}
}
