package tetramath

import (
	"strconv"

	"github.com/solarlune/tetramath/math32"
	"github.com/tanema/gween/ease"
)

// WorldRight represents a unit vector in the global direction of WorldRight on the right-handed coordinate system (+X).
var WorldRight = NewVector3(1, 0, 0)

// WorldLeft represents a unit vector in the global direction of WorldLeft on the right-handed coordinate system (-X).
var WorldLeft = NewVector3(-1, 0, 0)

// WorldUp represents a unit vector in the global direction of WorldUp on the right-handed coordinate system (+Y).
var WorldUp = NewVector3(0, 1, 0)

// WorldDown represents a unit vector in the global direction of WorldDown on the right-handed coordinate system (-Y).
var WorldDown = NewVector3(0, -1, 0)

// WorldBackward represents a unit vector in the global direction of WorldBackward on the right-handed coordinate system
// (+Z, backwards, towards you).
var WorldBackward = NewVector3(0, 0, 1)

// WorldForward represents a unit vector in the global direction of WorldForward on the right-handed coordinate system
// (-Z, away from you). This is the reference direction that LookAt rotates from.
var WorldForward = NewVector3(0, 0, -1)

var (
	UnitX      = NewVector3(1, 0, 0)
	UnitY      = NewVector3(0, 1, 0)
	UnitZ      = NewVector3(0, 0, 1)
	VectorZero = NewVector3(0, 0, 0)
	VectorOne  = NewVector3(1, 1, 1)
)

// DefaultEpsilon is the tolerance used by the Equals functions of Vector3, Quaternion, and AxisAngle.
const DefaultEpsilon = 1e-5

// Vector3 represents a 3D Vector, which can be used for usual 3D applications (position, direction, velocity, etc).
// Any Vector3 functions that modify the calling Vector3 return copies of the modified Vector3, meaning you can do method-chaining easily.
// Vector3s are most efficient when copied, so try not to store pointers to them.
type Vector3 struct {
	X float32 // The X (1st) component of the Vector
	Y float32 // The Y (2nd) component of the Vector
	Z float32 // The Z (3rd) component of the Vector
}

// NewVector3 creates a new Vector3 with the specified x, y, and z components.
func NewVector3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// NewVector3Uniform creates a new Vector3 with all three components set to value.
func NewVector3Uniform(value float32) Vector3 {
	return Vector3{X: value, Y: value, Z: value}
}

// Add returns a copy of the calling vector, added together with the other Vector3 provided.
func (vec Vector3) Add(other Vector3) Vector3 {
	vec.X += other.X
	vec.Y += other.Y
	vec.Z += other.Z
	return vec
}

// Sub returns a copy of the calling Vector3, with the other Vector3 subtracted from it.
func (vec Vector3) Sub(other Vector3) Vector3 {
	vec.X -= other.X
	vec.Y -= other.Y
	vec.Z -= other.Z
	return vec
}

// Cross returns a new Vector3, indicating the cross product of the calling Vector3 and the provided Other Vector3.
func (vec Vector3) Cross(other Vector3) Vector3 {

	ogVecY := vec.Y
	ogVecZ := vec.Z

	vec.Z = vec.X*other.Y - other.X*vec.Y
	vec.Y = ogVecZ*other.X - other.Z*vec.X
	vec.X = ogVecY*other.Z - other.Y*ogVecZ

	return vec

}

// Invert returns a copy of the Vector3 with all components negated.
func (vec Vector3) Invert() Vector3 {
	vec.X = -vec.X
	vec.Y = -vec.Y
	vec.Z = -vec.Z
	return vec
}

// Magnitude returns the length of the Vector3.
func (vec Vector3) Magnitude() float32 {
	return math32.Sqrt(vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z)
}

// MagnitudeSquared returns the squared length of the Vector3; this is faster than Magnitude() as it avoids using math32.Sqrt().
func (vec Vector3) MagnitudeSquared() float32 {
	return vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z
}

// DistanceTo returns the distance from the calling Vector3 to the other Vector3 provided.
func (vec Vector3) DistanceTo(other Vector3) float32 {
	return vec.Sub(other).Magnitude()
}

// DistanceSquaredTo returns the squared distance from the calling Vector3 to the other Vector3 provided.
func (vec Vector3) DistanceSquaredTo(other Vector3) float32 {
	return vec.Sub(other).MagnitudeSquared()
}

// MultComp returns a copy of the Vector3 with each component multiplied by the matching component of other.
func (vec Vector3) MultComp(other Vector3) Vector3 {
	vec.X *= other.X
	vec.Y *= other.Y
	vec.Z *= other.Z
	return vec
}

// DivideComp returns a copy of the Vector3 with each component divided by the matching component of other.
func (vec Vector3) DivideComp(other Vector3) Vector3 {
	vec.X /= other.X
	vec.Y /= other.Y
	vec.Z /= other.Z
	return vec
}

// Unit returns a copy of the Vector3, normalized (set to be of unit length).
// A zero-length Vector3 has no direction, so it is returned unchanged.
func (vec Vector3) Unit() Vector3 {
	l := vec.Magnitude()
	if l < 1e-8 {
		return vec
	}
	vec.X, vec.Y, vec.Z = vec.X/l, vec.Y/l, vec.Z/l
	return vec
}

// Scale scales a Vector3 by the given scalar.
func (vec Vector3) Scale(scalar float32) Vector3 {
	vec.X *= scalar
	vec.Y *= scalar
	vec.Z *= scalar
	return vec
}

// Divide divides a Vector3 by the given scalar.
func (vec Vector3) Divide(scalar float32) Vector3 {
	vec.X /= scalar
	vec.Y /= scalar
	vec.Z /= scalar
	return vec
}

// Dot returns the dot product of a Vector3 and another Vector3.
func (vec Vector3) Dot(other Vector3) float32 {
	return vec.X*other.X + vec.Y*other.Y + vec.Z*other.Z
}

// Angle returns the angle between the calling Vector3 and the provided other Vector3.
func (vec Vector3) Angle(other Vector3) float32 {
	return math32.Acos(math32.Clamp(vec.Unit().Dot(other.Unit()), -1, 1))
}

// Min returns a Vector3 composed of the smaller of each pair of components.
func (vec Vector3) Min(other Vector3) Vector3 {
	vec.X = math32.Min(vec.X, other.X)
	vec.Y = math32.Min(vec.Y, other.Y)
	vec.Z = math32.Min(vec.Z, other.Z)
	return vec
}

// Max returns a Vector3 composed of the larger of each pair of components.
func (vec Vector3) Max(other Vector3) Vector3 {
	vec.X = math32.Max(vec.X, other.X)
	vec.Y = math32.Max(vec.Y, other.Y)
	vec.Z = math32.Max(vec.Z, other.Z)
	return vec
}

// Clamp clamps each component of the Vector3 between the matching components of min and max.
func (vec Vector3) Clamp(min, max Vector3) Vector3 {
	vec.X = math32.Clamp(vec.X, min.X, max.X)
	vec.Y = math32.Clamp(vec.Y, min.Y, max.Y)
	vec.Z = math32.Clamp(vec.Z, min.Z, max.Z)
	return vec
}

// ClampMagnitude returns a copy of the Vector3 scaled down to have a length of at most maxLength.
// Vectors that are already short enough are returned unchanged.
func (vec Vector3) ClampMagnitude(maxLength float32) Vector3 {
	if l := vec.Magnitude(); l > maxLength {
		return vec.Scale(maxLength / l)
	}
	return vec
}

// MoveTowards moves the Vector3 towards the target by at most maxDelta, returning the result. If the target is
// within maxDelta, the target itself is returned.
func (vec Vector3) MoveTowards(target Vector3, maxDelta float32) Vector3 {
	diff := target.Sub(vec)
	dist := diff.Magnitude()
	if dist <= maxDelta || dist == 0 {
		return target
	}
	return vec.Add(diff.Scale(maxDelta / dist))
}

// Reflect returns the Vector3 reflected off of a surface with the given normal. The normal should be of unit length.
func (vec Vector3) Reflect(normal Vector3) Vector3 {
	return vec.Sub(normal.Scale(2 * vec.Dot(normal)))
}

// Lerp linearly interpolates the Vector3 towards other by the amount given.
func (vec Vector3) Lerp(other Vector3, amount float32) Vector3 {
	return vec.Add(other.Sub(vec).Scale(amount))
}

// SmoothStep interpolates the Vector3 towards other using a cubic curve with flat ends; amount is clamped to [0, 1].
func (vec Vector3) SmoothStep(other Vector3, amount float32) Vector3 {
	return Vector3{
		X: math32.SmoothStep(vec.X, other.X, amount),
		Y: math32.SmoothStep(vec.Y, other.Y, amount),
		Z: math32.SmoothStep(vec.Z, other.Z, amount),
	}
}

// Ease interpolates the Vector3 towards other following the easing curve given (see math32.Ease).
func (vec Vector3) Ease(other Vector3, amount float32, curve ease.TweenFunc) Vector3 {
	return Vector3{
		X: math32.Ease(vec.X, other.X, amount, curve),
		Y: math32.Ease(vec.Y, other.Y, amount, curve),
		Z: math32.Ease(vec.Z, other.Z, amount, curve),
	}
}

// Hermite performs a cubic Hermite spline interpolation from value1 (with tangent1) to value2 (with tangent2).
func Hermite(value1, tangent1, value2, tangent2 Vector3, amount float32) Vector3 {
	return Vector3{
		X: math32.Hermite(value1.X, tangent1.X, value2.X, tangent2.X, amount),
		Y: math32.Hermite(value1.Y, tangent1.Y, value2.Y, tangent2.Y, amount),
		Z: math32.Hermite(value1.Z, tangent1.Z, value2.Z, tangent2.Z, amount),
	}
}

// CatmullRom performs a Catmull-Rom interpolation between value2 and value3, using value1 and value4 as the outer control points.
func CatmullRom(value1, value2, value3, value4 Vector3, amount float32) Vector3 {
	return Vector3{
		X: math32.CatmullRom(value1.X, value2.X, value3.X, value4.X, amount),
		Y: math32.CatmullRom(value1.Y, value2.Y, value3.Y, value4.Y, amount),
		Z: math32.CatmullRom(value1.Z, value2.Z, value3.Z, value4.Z, amount),
	}
}

// Barycentric returns the point at the barycentric coordinates (amount1, amount2) of the triangle value1, value2, value3.
func Barycentric(value1, value2, value3 Vector3, amount1, amount2 float32) Vector3 {
	return Vector3{
		X: math32.Barycentric(value1.X, value2.X, value3.X, amount1, amount2),
		Y: math32.Barycentric(value1.Y, value2.Y, value3.Y, amount1, amount2),
		Z: math32.Barycentric(value1.Z, value2.Z, value3.Z, amount1, amount2),
	}
}

// ClosestPointOnLine returns the closest point to point along the line segment spanning from start to end.
// A zero-length segment returns start.
func ClosestPointOnLine(start, end, point Vector3) Vector3 {
	ab := end.Sub(start)
	lengthSquared := ab.Dot(ab)
	if lengthSquared == 0 {
		return start
	}
	t := point.Sub(start).Dot(ab) / lengthSquared
	return start.Add(ab.Scale(math32.Clamp(t, 0, 1)))
}

// Set sets the values in the Vector3 to the x, y, and z values provided.
func (vec Vector3) Set(x, y, z float32) Vector3 {
	vec.X = x
	vec.Y = y
	vec.Z = z
	return vec
}

// Floats returns a [3]float32 array consisting of the Vector3's contents.
func (vec Vector3) Floats() [3]float32 {
	return [3]float32{vec.X, vec.Y, vec.Z}
}

// Equals returns true if the two Vector3s are within DefaultEpsilon of each other in all components.
func (vec Vector3) Equals(other Vector3) bool {
	return vec.EqualsEpsilon(other, DefaultEpsilon)
}

// EqualsEpsilon returns true if every component of the two Vector3s differs by no more than epsilon.
func (vec Vector3) EqualsEpsilon(other Vector3, epsilon float32) bool {
	return math32.Abs(vec.X-other.X) <= epsilon &&
		math32.Abs(vec.Y-other.Y) <= epsilon &&
		math32.Abs(vec.Z-other.Z) <= epsilon
}

// IsZero returns true if the values in the Vector3 are extremely close to 0.
func (vec Vector3) IsZero() bool {
	return vec.EqualsEpsilon(VectorZero, 1e-8)
}

// IsFinite returns true if no component of the Vector3 is NaN or infinite.
func (vec Vector3) IsFinite() bool {
	return math32.IsFinite(vec.X) && math32.IsFinite(vec.Y) && math32.IsFinite(vec.Z)
}

func (vec Vector3) String() string {
	return "{" + strconv.FormatFloat(float64(vec.X), 'f', -1, 32) + ", " +
		strconv.FormatFloat(float64(vec.Y), 'f', -1, 32) + ", " +
		strconv.FormatFloat(float64(vec.Z), 'f', -1, 32) + "}"
}
