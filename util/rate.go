package util

import "time"

// Delta returns curr - prev, or 0 if curr < prev (counter wrap or device
// reset). Clamping here is what keeps every rendered rate non-negative.
func Delta(prev, curr uint64) uint64 {
	if curr < prev {
		return 0
	}
	return curr - prev
}

// Rate computes the per-second rate between two counter values.
func Rate(prev, curr uint64, dt time.Duration) float64 {
	if dt <= 0 {
		return 0
	}
	return float64(Delta(prev, curr)) / dt.Seconds()
}
