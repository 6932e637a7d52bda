package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// SafeNormalize returns the unit vector and true, or the zero vector and false for zero-length input
// mgl64 Normalize divides by length unconditionally
func SafeNormalize(v mgl64.Vec3) (mgl64.Vec3, bool) {
	lenSq := v.Dot(v)
	if lenSq == 0 || math.IsNaN(lenSq) || math.IsInf(lenSq, 0) {
		return mgl64.Vec3{}, false
	}
	inv := 1.0 / math.Sqrt(lenSq)
	return mgl64.Vec3{v[0] * inv, v[1] * inv, v[2] * inv}, true
}

// RejectFrom removes the component of v along unit normal n
func RejectFrom(v, n mgl64.Vec3) mgl64.Vec3 {
	return v.Sub(n.Mul(v.Dot(n)))
}

// LenSq returns squared vector length
func LenSq(v mgl64.Vec3) float64 {
	return v.Dot(v)
}

// Clamp limits x to [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Lerp interpolates a toward b by t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Axis returns the unit vector along world axis index 0, 1 or 2
func Axis(i int) mgl64.Vec3 {
	var v mgl64.Vec3
	v[i] = 1
	return v
}
