package common

// Physics tuning shared across the core.
const (
	// Gravity is the downward acceleration in world units per second squared.
	Gravity = 50.0
	// SafeImpactSpeed is the landing speed under which no fall damage accrues.
	SafeImpactSpeed = 30.0
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
