//go:build windows

package sysboundary

import (
	"errors"
	"time"
)

// getrusageTimes has no getrusage equivalent wired up on Windows;
// system.c's own Scm_GetTimesOfDay is similarly conditionally compiled
// per platform. GetProcessTimes would be the analogous win32 call, not
// implemented here since nothing in the retrieval pack exercises it.
func getrusageTimes() (user, system time.Duration, err error) {
	return 0, 0, errors.New("sysboundary: process CPU time not implemented on windows")
}
