package nn

import (
	"math"
	"math/rand"
)

// Xavier draws a weight from the Xavier/Glorot uniform distribution.
//
// Values are sampled from U(-bound, bound) with bound = sqrt(6 / (fanIn + fanOut)).
// A nil rng uses the global source.
func Xavier(fanIn, fanOut int, rng *rand.Rand) float32 {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
	var u float64
	if rng != nil {
		u = rng.Float64()
	} else {
		//nolint:gosec // Using math/rand for weight initialization (not security-critical)
		u = rand.Float64()
	}
	return float32((u*2.0 - 1.0) * bound)
}
