//go:build !fastmath

package spectrum

import "math"

// silence is the level reported for zero magnitude.
const silence = -400.0

func toDB(mag float64) float64 {
	if mag <= 0 {
		return silence
	}
	return 20 * math.Log10(mag)
}
