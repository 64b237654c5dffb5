//go:build fastmath

package spectrum

import "github.com/meko-christian/algo-approx"

// silence is the level reported for zero magnitude.
const silence = -400.0

// ln10 is the natural logarithm of 10.
const ln10 = 2.302585092994045684017991454684

func toDB(mag float64) float64 {
	if mag <= 0 {
		return silence
	}
	return 20 * approx.FastLog(mag) / ln10
}
