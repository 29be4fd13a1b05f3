package constraint

import (
	"math"

	"github.com/akmonengine/minkowski/sdf"
)

// Deepest returns the candidate with the smallest signed distance, which is
// the binding constraint between the candidates. The earliest candidate wins
// a tie. With no candidates the result has an infinite distance and a zero
// normal.
func Deepest(candidates ...sdf.Gradient) sdf.Gradient {
	best := sdf.Gradient{Distance: math.Inf(1)}

	for _, c := range candidates {
		if c.Distance < best.Distance {
			best = c
		}
	}

	return best
}
