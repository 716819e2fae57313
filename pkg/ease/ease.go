// Package ease provides interpolation curves for animation timing.
package ease

import "math"

// InSine reshapes a linear time fraction in [0,1] so the animation starts
// slow and accelerates.
func InSine(v float32) float32 {
	return 1.0 - float32(math.Cos(float64(v)*math.Pi/2.0))
}
