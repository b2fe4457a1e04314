package formatter

import (
	"fmt"
	"math"
)

// msEpsilon absorbs float representation error, so 1.001s is 1001ms rather than 1000.
const msEpsilon = 1e-6

// toMillis truncates seconds to whole milliseconds. Negative and NaN clamp to zero,
// values beyond the int64 range (including +Inf) clamp to math.MaxInt64.
func toMillis(seconds float64) int64 {
	if math.IsNaN(seconds) || seconds <= 0 {
		return 0
	}
	ms := math.Floor(seconds*1000 + msEpsilon)
	if ms >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(ms)
}

// SRTTimestamp renders seconds as HH:MM:SS,mmm. Milliseconds are truncated.
func SRTTimestamp(seconds float64) string {
	ms := toMillis(seconds)
	h := ms / 3_600_000
	m := (ms / 60_000) % 60
	s := (ms / 1000) % 60
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms%1000)
}

// ClockTimestamp renders seconds as HH:MM:SS, truncated to the second.
func ClockTimestamp(seconds float64) string {
	ms := toMillis(seconds)
	h := ms / 3_600_000
	m := (ms / 60_000) % 60
	s := (ms / 1000) % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
