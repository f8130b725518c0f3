// math32 is a stand-in for the built-in math package, but the functions take float32s instead of float64s.
// The trigonometric and root functions are backed by github.com/chewxy/math32, which implements them natively
// for float32 rather than round-tripping through float64.
package math32

import (
	"math"

	cm "github.com/chewxy/math32"
)

const MaxFloat32 = float32(math.MaxFloat32)

const (
	Pi      = float32(math.Pi)
	PiOver2 = float32(math.Pi / 2)
	PiOver4 = float32(math.Pi / 4)
	TwoPi   = float32(math.Pi * 2)
	Epsilon = float32(1e-6)
)

// ToRadians is a helper function to easily convert degrees to radians (which is what the rotation-oriented functions in tetramath use).
func ToRadians(degrees float32) float32 {
	return Pi * degrees / 180
}

// ToDegrees is a helper function to easily convert radians to degrees for human readability.
func ToDegrees(radians float32) float32 {
	return radians / Pi * 180
}

// Min returns the minimum value out of two provided values.
func Min[number float32 | float64 | int | int32 | int64](x, y number) number {
	if x < y {
		return x
	}
	return y
}

// Max returns the maximum value out of two provided values.
func Max[number float32 | float64 | int | int32 | int64](x, y number) number {
	if x > y {
		return x
	}
	return y
}

// Sign returns the sign of the value given. If it's greater than 0, it returns 1. If less than 0, it returns -1. Otherwise, it returns 0.
func Sign(f float32) float32 {
	if f > 0 {
		return 1
	} else if f < 0 {
		return -1
	}
	return 0
}

// IsNaN returns if the provided float32 is a NaN.
func IsNaN(x float32) bool {
	return cm.IsNaN(x)
}

// IsInf returns if the provided float32 (x) is Inf in the direction of the sign provided.
func IsInf(x float32, sign int) bool {
	return cm.IsInf(x, sign)
}

// Inf returns positive infinity if sign >= 0, negative infinity if sign < 0.
func Inf(sign int) float32 {
	return cm.Inf(sign)
}

// IsFinite returns true if x is neither NaN nor an infinity.
func IsFinite(x float32) bool {
	return !cm.IsNaN(x) && !cm.IsInf(x, 0)
}

// Sqrt returns the square root of x.
//
// Special cases are:
//
//	Sqrt(+Inf) = +Inf
//	Sqrt(±0) = ±0
//	Sqrt(x < 0) = NaN
//	Sqrt(NaN) = NaN
func Sqrt(x float32) float32 {
	return cm.Sqrt(x)
}

// Sin returns the sine of the radian argument x.
func Sin(x float32) float32 {
	return cm.Sin(x)
}

// Cos returns the cosine of the radian argument x.
func Cos(x float32) float32 {
	return cm.Cos(x)
}

// Sincos returns Sin(x), Cos(x).
func Sincos(x float32) (float32, float32) {
	return cm.Sincos(x)
}

// Tan returns the tangent of the radian argument x.
func Tan(x float32) float32 {
	return cm.Tan(x)
}

// Acos returns the arccosine, in radians, of x.
//
// Special case is:
//
//	Acos(x) = NaN if x < -1 or x > 1
func Acos(x float32) float32 {
	return cm.Acos(x)
}

// Asin returns the arcsine, in radians, of x.
//
// Special cases are:
//
//	Asin(±0) = ±0
//	Asin(x) = NaN if x < -1 or x > 1
func Asin(x float32) float32 {
	return cm.Asin(x)
}

// Atan2 returns the arc tangent of y/x, using the signs of the two to determine the quadrant
// of the return value.
func Atan2(y, x float32) float32 {
	return cm.Atan2(y, x)
}

// Abs returns the absolute value of x.
//
// Special cases are:
//
//	Abs(±Inf) = +Inf
//	Abs(NaN) = NaN
func Abs(x float32) float32 {
	return cm.Abs(x)
}

// Pow returns x**y, the base-x exponential of y.
func Pow(x, y float32) float32 {
	return cm.Pow(x, y)
}

// Round returns the nearest integer, rounding half away from zero.
func Round(x float32) float32 {
	return float32(math.Round(float64(x)))
}

// Floor returns the greatest integer value less than or equal to x.
func Floor(x float32) float32 {
	return cm.Floor(x)
}

// Ceil returns the least integer value greater than or equal to x.
func Ceil(x float32) float32 {
	return cm.Ceil(x)
}

// Mod returns the floating-point remainder of x/y.
// The magnitude of the result is less than y and its
// sign agrees with that of x.
func Mod(x, y float32) float32 {
	return cm.Mod(x, y)
}

// Copysign returns a value with the magnitude of f
// and the sign of sign.
func Copysign(f, sign float32) float32 {
	return float32(math.Copysign(float64(f), float64(sign)))
}
