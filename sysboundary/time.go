// Package sysboundary implements component H: the small set of system
// calls the core needs to cross the Go/OS boundary for -- monotonic and
// wall-clock time, timespec normalisation, directory listing, and path
// normalisation -- plus process CPU time, supplemented from
// original_source/src/system.c's Scm_GetTimesOfDay. None of these
// voluntarily yield (per the concurrency model's "suspension points"
// rule, only the continuation core does that); a syscall interrupted by
// EINTR is retried until it no longer reports EINTR, mirroring system.c's
// SCM_SYSCALL retry macro.
package sysboundary

import "time"

// Now returns the current wall-clock/monotonic reading. Go's time.Time
// already carries both a wall-clock and a monotonic component and
// subtracting two Now() results uses the monotonic one automatically,
// which is exactly Scm_GetTimeOfDay/Scm_CurrentTime's wall-clock-plus-
// monotonic pairing.
func Now() time.Time {
	return time.Now()
}

// NormalizeTimespec carries a (sec, nsec) pair into the canonical range
// 0 <= nsec < 1e9, adjusting sec to compensate -- the same carry loop
// Scm_GetTimeSpec runs after adding a relative timeout's fractional
// seconds to the current time's nanoseconds.
func NormalizeTimespec(sec, nsec int64) (int64, int64) {
	const billion = int64(time.Second)
	for nsec >= billion {
		nsec -= billion
		sec++
	}
	for nsec < 0 {
		nsec += billion
		sec--
	}
	return sec, nsec
}

// Deadline computes the absolute (sec, nsec) timespec for a timeout of
// d from now, normalised. This is Scm_GetTimeSpec's relative-to-absolute
// conversion for a real-number timeout, generalised to a time.Duration.
func Deadline(d time.Duration) (sec, nsec int64) {
	now := Now()
	return NormalizeTimespec(now.Unix(), int64(now.Nanosecond())+int64(d))
}

// CPUTimes reports process CPU time spent in user and system mode.
// There is no portable stdlib call for this (Scm_GetTimesOfDay itself
// is conditionally compiled against getrusage/times depending on the
// host); getrusageTimes supplies the platform-specific half.
func CPUTimes() (user, system time.Duration, err error) {
	return getrusageTimes()
}
