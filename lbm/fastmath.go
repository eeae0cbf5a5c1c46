package lbm

import "math"

// fastSqrt returns x multiplied by a reciprocal square root estimate of x.
// The emitted speeds are defined in terms of a low-precision estimate, so the
// bit-trick seed is refined with a single Newton-Raphson step, which leaves a
// relative error of at most about 1.75e-3 (roughly 9 mantissa bits). Do not
// substitute a full-precision square root here.
func fastSqrt(x float32) float32 {
	if x == 0 {
		return 0
	}
	half := 0.5 * x
	y := math.Float32frombits(0x5f3759df - math.Float32bits(x)>>1)
	y = y * (1.5 - half*y*y)
	return x * y
}
