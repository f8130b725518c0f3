package tetramath

import (
	"errors"
	"strconv"

	"github.com/solarlune/tetramath/math32"
	"github.com/tanema/gween/ease"
)

// ErrZeroQuaternion is returned when an operation needs to divide by the length of a Quaternion that has none.
var ErrZeroQuaternion = errors.New("tetramath: zero-length quaternion has no normalized form or inverse")

// QuaternionIdentity is the Quaternion representing no rotation.
var QuaternionIdentity = NewQuaternion(0, 0, 0, 1)

// Quaternion represents a rotation as a vector part (X, Y, Z) and a scalar part (W).
// Quaternions produced by the rotation constructors (FromAxisAngle, FromYawPitchRoll, FromRotationMatrix, LookAt) are
// of unit length. Arithmetic results may not be; those are valid values, but they are not rotations until normalized.
// Repeated concatenation slowly drifts a Quaternion away from unit length; call Normalize on long-lived rotations periodically.
type Quaternion struct {
	X, Y, Z, W float32
}

// NewQuaternion returns a new Quaternion with the given components.
func NewQuaternion(x, y, z, w float32) Quaternion {
	return Quaternion{x, y, z, w}
}

// NewQuaternionFromVector returns a new Quaternion with the vector part set to vec and the scalar part set to w.
func NewQuaternionFromVector(vec Vector3, w float32) Quaternion {
	return Quaternion{vec.X, vec.Y, vec.Z, w}
}

// NewQuaternionFromVector4 returns a new Quaternion with the components of the Vector4 given.
func NewQuaternionFromVector4(vec Vector4) Quaternion {
	return Quaternion{vec.X, vec.Y, vec.Z, vec.W}
}

// Vector returns the vector (X, Y, Z) part of the Quaternion.
func (quat Quaternion) Vector() Vector3 {
	return Vector3{quat.X, quat.Y, quat.Z}
}

// Add returns the component-wise sum of the Quaternion and other.
func (quat Quaternion) Add(other Quaternion) Quaternion {
	return Quaternion{quat.X + other.X, quat.Y + other.Y, quat.Z + other.Z, quat.W + other.W}
}

// Sub returns the component-wise difference of the Quaternion and other.
func (quat Quaternion) Sub(other Quaternion) Quaternion {
	return Quaternion{quat.X - other.X, quat.Y - other.Y, quat.Z - other.Z, quat.W - other.W}
}

// Scale returns the Quaternion with every component multiplied by scalar.
func (quat Quaternion) Scale(scalar float32) Quaternion {
	return Quaternion{quat.X * scalar, quat.Y * scalar, quat.Z * scalar, quat.W * scalar}
}

// Negate returns the Quaternion with every component negated. For a unit Quaternion, the result represents the same rotation.
func (quat Quaternion) Negate() Quaternion {
	return Quaternion{-quat.X, -quat.Y, -quat.Z, -quat.W}
}

// Mult returns the Hamilton product quat * other. Rotating a vector by the result is the same as rotating it by other first, and then by quat.
func (quat Quaternion) Mult(other Quaternion) Quaternion {
	return Quaternion{
		X: quat.W*other.X + quat.X*other.W + quat.Y*other.Z - quat.Z*other.Y,
		Y: quat.W*other.Y - quat.X*other.Z + quat.Y*other.W + quat.Z*other.X,
		Z: quat.W*other.Z + quat.X*other.Y - quat.Y*other.X + quat.Z*other.W,
		W: quat.W*other.W - quat.X*other.X - quat.Y*other.Y - quat.Z*other.Z,
	}
}

// Concatenate combines two rotations into one: the result rotates by q1 first, and then by q2.
// This is the Hamilton product q2 * q1, so that
//
//	TransformQuaternion(TransformQuaternion(v, q1), q2) == TransformQuaternion(v, Concatenate(q1, q2))
func Concatenate(q1, q2 Quaternion) Quaternion {
	return q2.Mult(q1)
}

// Conjugated returns the conjugate of the Quaternion (the vector part negated). For a unit Quaternion, this is the inverse rotation.
func (quat Quaternion) Conjugated() Quaternion {
	return Quaternion{-quat.X, -quat.Y, -quat.Z, quat.W}
}

// Conjugate conjugates the Quaternion in place.
func (quat *Quaternion) Conjugate() {
	quat.X = -quat.X
	quat.Y = -quat.Y
	quat.Z = -quat.Z
}

// Dot returns the four-dimensional dot product of the Quaternion and other.
func (quat Quaternion) Dot(other Quaternion) float32 {
	return quat.X*other.X + quat.Y*other.Y + quat.Z*other.Z + quat.W*other.W
}

// LengthSquared returns the squared length of the Quaternion.
func (quat Quaternion) LengthSquared() float32 {
	return quat.Dot(quat)
}

// Length returns the length (magnitude) of the Quaternion.
func (quat Quaternion) Length() float32 {
	return math32.Sqrt(quat.LengthSquared())
}

// Inverse returns the multiplicative inverse of the Quaternion: the conjugate divided by the squared length.
// ErrZeroQuaternion is returned for a zero Quaternion.
func (quat Quaternion) Inverse() (Quaternion, error) {
	lenSq := quat.LengthSquared()
	if lenSq == 0 {
		return Quaternion{}, ErrZeroQuaternion
	}
	return quat.Conjugated().Scale(1 / lenSq), nil
}

// Divide returns q1 * inverse(q2). ErrZeroQuaternion is returned if q2 is zero.
func Divide(q1, q2 Quaternion) (Quaternion, error) {
	inv, err := q2.Inverse()
	if err != nil {
		return Quaternion{}, err
	}
	return q1.Mult(inv), nil
}

// Normalize returns the Quaternion scaled to unit length. A zero Quaternion has no normalized form,
// so ErrZeroQuaternion is returned for it.
func Normalize(quat Quaternion) (Quaternion, error) {
	l := quat.Length()
	if l == 0 {
		return Quaternion{}, ErrZeroQuaternion
	}
	return quat.Scale(1 / l), nil
}

// Normalize scales the Quaternion to unit length in place. The Quaternion is left untouched and ErrZeroQuaternion is
// returned if it is zero.
func (quat *Quaternion) Normalize() error {
	n, err := Normalize(*quat)
	if err != nil {
		return err
	}
	*quat = n
	return nil
}

// Unit returns the Quaternion scaled to unit length; a zero Quaternion is returned unchanged.
// Use Normalize instead to detect that case.
func (quat Quaternion) Unit() Quaternion {
	if n, err := Normalize(quat); err == nil {
		return n
	}
	return quat
}

// Lerp linearly interpolates between the Quaternion and other, flipping other onto the same hemisphere if necessary, and
// normalizes the result. It's cheaper than Slerp, but does not rotate at a constant speed.
func (quat Quaternion) Lerp(other Quaternion, percent float32) Quaternion {
	if quat.Dot(other) < 0 {
		other = other.Negate()
	}
	return quat.Add(other.Sub(quat).Scale(percent)).Unit()
}

// Slerp spherically interpolates between the Quaternion and other by the percent given, taking the shortest path.
// A percent of 0 or below returns the Quaternion, and 1 or above returns other.
func (quat Quaternion) Slerp(other Quaternion, percent float32) Quaternion {

	if percent <= 0 {
		return quat
	} else if percent >= 1 {
		return other
	}

	cosHalfTheta := quat.Dot(other)

	if cosHalfTheta < 0 {
		other = other.Negate()
		cosHalfTheta = -cosHalfTheta
	}

	// Nearly identical rotations; the sine below would vanish.
	if cosHalfTheta > 1-math32.Epsilon {
		return quat.Lerp(other, percent)
	}

	halfTheta := math32.Acos(cosHalfTheta)
	sinHalfTheta := math32.Sqrt(1 - cosHalfTheta*cosHalfTheta)

	ratioA := math32.Sin((1-percent)*halfTheta) / sinHalfTheta
	ratioB := math32.Sin(percent*halfTheta) / sinHalfTheta

	return quat.Scale(ratioA).Add(other.Scale(ratioB))

}

// SlerpEase spherically interpolates between the Quaternion and other, following the easing curve given (e.g. ease.InOutCubic).
func (quat Quaternion) SlerpEase(other Quaternion, percent float32, curve ease.TweenFunc) Quaternion {
	return quat.Slerp(other, math32.Ease(0, 1, percent, curve))
}

// Equals returns true if all components of the Quaternions are within DefaultEpsilon of each other.
func (quat Quaternion) Equals(other Quaternion) bool {
	return quat.EqualsEpsilon(other, DefaultEpsilon)
}

// EqualsEpsilon returns true if all components of the Quaternions differ by no more than epsilon.
func (quat Quaternion) EqualsEpsilon(other Quaternion, epsilon float32) bool {
	return math32.Abs(quat.X-other.X) <= epsilon &&
		math32.Abs(quat.Y-other.Y) <= epsilon &&
		math32.Abs(quat.Z-other.Z) <= epsilon &&
		math32.Abs(quat.W-other.W) <= epsilon
}

// SameRotation returns true if the Quaternions represent the same rotation within epsilon. q and -q rotate identically,
// so either sign matches.
func (quat Quaternion) SameRotation(other Quaternion, epsilon float32) bool {
	return quat.EqualsEpsilon(other, epsilon) || quat.EqualsEpsilon(other.Negate(), epsilon)
}

// IsIdentity returns true if the Quaternion is (within DefaultEpsilon) the identity rotation.
func (quat Quaternion) IsIdentity() bool {
	return quat.Equals(QuaternionIdentity)
}

func (quat Quaternion) String() string {
	return "{" + strconv.FormatFloat(float64(quat.X), 'f', -1, 32) + ", " +
		strconv.FormatFloat(float64(quat.Y), 'f', -1, 32) + ", " +
		strconv.FormatFloat(float64(quat.Z), 'f', -1, 32) + ", " +
		strconv.FormatFloat(float64(quat.W), 'f', -1, 32) + "}"
}
