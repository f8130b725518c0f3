package tetramath

import "github.com/solarlune/tetramath/math32"

// lookAtEpsilon is the largest length of WorldForward x direction for which a LookAt direction is treated as
// (anti)parallel to WorldForward.
const lookAtEpsilon = 1e-6

// FromAxisAngle returns a Quaternion that rotates counter-clockwise by angle (in radians) around the axis given.
// The axis is expected to be of unit length and is not normalized here; a longer or shorter axis produces a valid
// Quaternion that is not a pure rotation by angle. A zero axis has no rotation to offer, so QuaternionIdentity is returned.
func FromAxisAngle(axis Vector3, angle float32) Quaternion {

	if axis.IsZero() {
		return QuaternionIdentity
	}

	sin, cos := math32.Sincos(angle / 2)

	return Quaternion{
		X: axis.X * sin,
		Y: axis.Y * sin,
		Z: axis.Z * sin,
		W: cos,
	}

}

// FromYawPitchRoll returns a Quaternion built from Euler angles (in radians): yaw around +Y, pitch around +X, and roll around +Z.
// Roll is applied first, then pitch, then yaw, matching NewMatrix4RotateYawPitchRoll.
func FromYawPitchRoll(yaw, pitch, roll float32) Quaternion {
	rollQuat := FromAxisAngle(UnitZ, roll)
	pitchQuat := FromAxisAngle(UnitX, pitch)
	yawQuat := FromAxisAngle(UnitY, yaw)
	return Concatenate(Concatenate(rollQuat, pitchQuat), yawQuat)
}

// FromRotationMatrix returns the Quaternion represented by the upper-left 3x3 (rotation) block of the Matrix4, which is assumed
// to be a pure, orthonormal rotation.
//
// To avoid dividing by a value near zero, the component with the largest magnitude is solved for first:
//
//	trace > 0                     -> W is largest
//	m[0][0] >= m[1][1], m[2][2]   -> X is largest
//	m[1][1] > m[2][2]             -> Y is largest
//	otherwise                     -> Z is largest
func FromRotationMatrix(matrix Matrix4) Quaternion {

	m := matrix
	trace := m[0][0] + m[1][1] + m[2][2]

	switch {

	case trace > 0:
		s := math32.Sqrt(trace + 1)
		half := 0.5 / s
		return Quaternion{
			X: (m[1][2] - m[2][1]) * half,
			Y: (m[2][0] - m[0][2]) * half,
			Z: (m[0][1] - m[1][0]) * half,
			W: s * 0.5,
		}

	case m[0][0] >= m[1][1] && m[0][0] >= m[2][2]:
		s := math32.Sqrt(1 + m[0][0] - m[1][1] - m[2][2])
		half := 0.5 / s
		return Quaternion{
			X: s * 0.5,
			Y: (m[0][1] + m[1][0]) * half,
			Z: (m[0][2] + m[2][0]) * half,
			W: (m[1][2] - m[2][1]) * half,
		}

	case m[1][1] > m[2][2]:
		s := math32.Sqrt(1 + m[1][1] - m[0][0] - m[2][2])
		half := 0.5 / s
		return Quaternion{
			X: (m[1][0] + m[0][1]) * half,
			Y: s * 0.5,
			Z: (m[2][1] + m[1][2]) * half,
			W: (m[2][0] - m[0][2]) * half,
		}

	default:
		s := math32.Sqrt(1 + m[2][2] - m[0][0] - m[1][1])
		half := 0.5 / s
		return Quaternion{
			X: (m[2][0] + m[0][2]) * half,
			Y: (m[2][1] + m[1][2]) * half,
			Z: s * 0.5,
			W: (m[0][1] - m[1][0]) * half,
		}

	}

}

// LookAt returns the shortest-arc rotation that carries WorldForward (0, 0, -1) onto direction, which should be of unit length.
// Looking straight forward (or at a zero direction) returns QuaternionIdentity. Looking straight backward has infinitely many
// shortest arcs; the one chosen is a half-turn (Pi radians) around WorldUp.
func LookAt(direction Vector3) Quaternion {

	cross := WorldForward.Cross(direction)
	sin := cross.Magnitude()
	dot := WorldForward.Dot(direction)

	if sin < lookAtEpsilon {
		if dot >= 0 {
			return QuaternionIdentity
		}
		return FromAxisAngle(WorldUp, math32.Pi)
	}

	return FromAxisAngle(cross.Divide(sin), math32.Atan2(sin, dot))

}

// ToMatrix4 returns a rotation Matrix4 representing the Quaternion, which should be of unit length.
func (quat Quaternion) ToMatrix4() Matrix4 {

	xx := quat.X * quat.X
	yy := quat.Y * quat.Y
	zz := quat.Z * quat.Z
	xy := quat.X * quat.Y
	zw := quat.Z * quat.W
	zx := quat.Z * quat.X
	yw := quat.Y * quat.W
	yz := quat.Y * quat.Z
	xw := quat.X * quat.W

	return Matrix4{
		{1 - 2*(yy+zz), 2 * (xy + zw), 2 * (zx - yw), 0},
		{2 * (xy - zw), 1 - 2*(zz+xx), 2 * (yz + xw), 0},
		{2 * (zx + yw), 2 * (yz - xw), 1 - 2*(yy+xx), 0},
		{0, 0, 0, 1},
	}

}

// ToAxisAngle returns the rotation the Quaternion represents as an axis and an angle in radians. The Quaternion is normalized first.
// For rotations too small to have a meaningful axis, WorldUp is returned as the axis alongside the (near-zero) angle. A zero
// Quaternion represents no rotation at all, and returns WorldUp with an angle of 0.
func (quat Quaternion) ToAxisAngle() AxisAngle {

	if quat.LengthSquared() == 0 {
		return AxisAngle{Axis: WorldUp}
	}

	q := quat.Unit()
	angle := 2 * math32.Acos(math32.Clamp(q.W, -1, 1))
	s := math32.Sqrt(1 - q.W*q.W)

	if s < 1e-6 {
		return AxisAngle{Axis: WorldUp, Angle: angle}
	}

	return AxisAngle{
		Axis:  Vector3{q.X / s, q.Y / s, q.Z / s},
		Angle: angle,
	}

}

// Rotate returns the Vector3 provided, rotated by the Quaternion. It's shorthand for TransformQuaternion(vec, quat).
func (quat Quaternion) Rotate(vec Vector3) Vector3 {
	return TransformQuaternion(vec, quat)
}

// SetAxisAngle sets the Quaternion to the result of FromAxisAngle(axis, angle).
func (quat *Quaternion) SetAxisAngle(axis Vector3, angle float32) {
	*quat = FromAxisAngle(axis, angle)
}

// SetYawPitchRoll sets the Quaternion to the result of FromYawPitchRoll(yaw, pitch, roll).
func (quat *Quaternion) SetYawPitchRoll(yaw, pitch, roll float32) {
	*quat = FromYawPitchRoll(yaw, pitch, roll)
}

// SetRotationMatrix sets the Quaternion to the result of FromRotationMatrix(matrix).
func (quat *Quaternion) SetRotationMatrix(matrix Matrix4) {
	*quat = FromRotationMatrix(matrix)
}

// SetLookAt sets the Quaternion to the result of LookAt(direction).
func (quat *Quaternion) SetLookAt(direction Vector3) {
	*quat = LookAt(direction)
}
