package tetramath

import "github.com/solarlune/tetramath/math32"

// AxisAngle represents a rotation in radians around a given 3D axis. This being the case, a AxisAngle can easily also be stored in a 4-dimensional vector; it's separated
// here into a 3D Vector and angle for simplicity and readability.
type AxisAngle struct {
	Axis  Vector3 // 3 dimensional axis for rotating
	Angle float32 // Rotation in radians
}

// NewAxisAngle creates a new AxisAngle out of the given 3D vector axis and angular rotation. The axis is normalized.
func NewAxisAngle(axis Vector3, angle float32) AxisAngle {
	return AxisAngle{
		Axis:  axis.Unit(),
		Angle: angle,
	}
}

// ToQuaternion returns the AxisAngle as a unit Quaternion.
func (aa AxisAngle) ToQuaternion() Quaternion {
	return FromAxisAngle(aa.Axis, aa.Angle)
}

// ToMatrix4 returns the AxisAngle as a rotation Matrix4.
func (aa AxisAngle) ToMatrix4() Matrix4 {
	return NewMatrix4Rotate(aa.Axis.X, aa.Axis.Y, aa.Axis.Z, aa.Angle)
}

// RotateVector rotates the given Vector3 by the axis and angle given, returning a rotated copy of it. For example, assuming the AxisAngle had an Axis
// of [0, 1, 0] (+Y, or "Up") and an Angle of pi / 2, axisAngle.RotateVector(Vector3{1, 0, 0}) would return Vector3{0, 0, -1}.
func (aa AxisAngle) RotateVector(vec Vector3) Vector3 {
	return TransformQuaternion(vec, aa.ToQuaternion())
}

// Equals returns true if both AxisAngles describe the same axis and angle within DefaultEpsilon. Note that an AxisAngle
// with a negated axis and angle is the same rotation, but is not considered equal here.
func (aa AxisAngle) Equals(other AxisAngle) bool {
	return aa.Axis.Equals(other.Axis) && math32.Abs(aa.Angle-other.Angle) <= DefaultEpsilon
}
