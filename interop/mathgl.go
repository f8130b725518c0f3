package interop

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/solarlune/tetramath"
)

// ToMglVec3 returns the Vector3 as a mathgl Vec3.
func ToMglVec3(vec tetramath.Vector3) mgl32.Vec3 {
	return mgl32.Vec3{vec.X, vec.Y, vec.Z}
}

// FromMglVec3 returns the mathgl Vec3 as a Vector3.
func FromMglVec3(vec mgl32.Vec3) tetramath.Vector3 {
	return tetramath.NewVector3(vec[0], vec[1], vec[2])
}

// ToMglQuat returns the Quaternion as a mathgl Quat, which stores the scalar part first.
func ToMglQuat(quat tetramath.Quaternion) mgl32.Quat {
	return mgl32.Quat{W: quat.W, V: mgl32.Vec3{quat.X, quat.Y, quat.Z}}
}

// FromMglQuat is the inverse of ToMglQuat.
func FromMglQuat(quat mgl32.Quat) tetramath.Quaternion {
	return tetramath.NewQuaternion(quat.V[0], quat.V[1], quat.V[2], quat.W)
}

// ToMglMat4 returns the Matrix4 as a mathgl Mat4. mathgl is column-major and multiplies column vectors, so the
// transposition cancels out and the 16 values are copied in order.
func ToMglMat4(matrix tetramath.Matrix4) mgl32.Mat4 {
	return mgl32.Mat4(matrix.ToFloats())
}

// FromMglMat4 is the inverse of ToMglMat4.
func FromMglMat4(matrix mgl32.Mat4) tetramath.Matrix4 {
	var out tetramath.Matrix4
	out.SetFloats([16]float32(matrix))
	return out
}
