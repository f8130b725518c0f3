package math32

import "github.com/tanema/gween/ease"

// Clamp clamps a value to the minimum and maximum values provided.
func Clamp[number float32 | float64 | int | int32 | int64](value, min, max number) number {
	if value < min {
		return min
	} else if value > max {
		return max
	}
	return value
}

// MoveTowardsZero subtracts a value from the given float and gives that result, unless it is less than
// that value, in which case 0 is returned.
func MoveTowardsZero(f, delta float32) float32 {
	if f > delta {
		return f - delta
	} else if f < -delta {
		return f + delta
	}
	return 0
}

// Lerp linearly interpolates from value1 to value2 by amount. An amount of 0 returns value1, 1 returns value2;
// amounts outside of that range extrapolate.
func Lerp(value1, value2, amount float32) float32 {
	return value1 + (value2-value1)*amount
}

// SmoothStep interpolates between value1 and value2 using a cubic curve with flat tangents at both ends.
// amount is clamped to [0, 1].
func SmoothStep(value1, value2, amount float32) float32 {
	return Hermite(value1, 0, value2, 0, Clamp(amount, 0, 1))
}

// Hermite performs a cubic Hermite spline interpolation between value1 (with tangent1) and value2 (with tangent2).
// The endpoints are returned exactly for an amount of 0 or 1.
func Hermite(value1, tangent1, value2, tangent2, amount float32) float32 {

	if amount == 0 {
		return value1
	} else if amount == 1 {
		return value2
	}

	s := amount
	s2 := s * s
	s3 := s2 * s

	return (2*value1-2*value2+tangent2+tangent1)*s3 +
		(3*value2-3*value1-2*tangent1-tangent2)*s2 +
		tangent1*s +
		value1

}

// CatmullRom performs a Catmull-Rom interpolation using the four control values given. The curve passes through
// value2 at an amount of 0 and value3 at an amount of 1; value1 and value4 only shape the tangents.
func CatmullRom(value1, value2, value3, value4, amount float32) float32 {
	s := amount
	s2 := s * s
	s3 := s2 * s
	return 0.5 * (2*value2 +
		(value3-value1)*s +
		(2*value1-5*value2+4*value3-value4)*s2 +
		(3*value2-value1-3*value3+value4)*s3)
}

// Barycentric returns the coordinate of a point given in barycentric form relative to a triangle whose vertices,
// along one axis, are value1, value2, and value3. amount1 weighs value2 and amount2 weighs value3.
func Barycentric(value1, value2, value3, amount1, amount2 float32) float32 {
	return value1 + (value2-value1)*amount1 + (value3-value1)*amount2
}

// WrapAngle wraps the angle given (in radians) into the range (-Pi, Pi].
func WrapAngle(angle float32) float32 {
	angle = Mod(angle+Pi, TwoPi)
	if angle <= 0 {
		angle += TwoPi
	}
	return angle - Pi
}

// Ease interpolates from value1 to value2 by amount (clamped to [0, 1]) following the easing curve provided,
// such as ease.InOutSine or ease.OutBounce. A nil curve is treated as ease.Linear.
func Ease(value1, value2, amount float32, curve ease.TweenFunc) float32 {
	if curve == nil {
		curve = ease.Linear
	}
	return curve(Clamp(amount, 0, 1), value1, value2-value1, 1)
}
