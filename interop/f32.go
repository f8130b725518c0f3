package interop

import (
	"github.com/solarlune/tetramath"
	"golang.org/x/image/math/f32"
)

// ToF32Vec3 returns the Vector3 as an f32.Vec3.
func ToF32Vec3(vec tetramath.Vector3) f32.Vec3 {
	return f32.Vec3{vec.X, vec.Y, vec.Z}
}

// FromF32Vec3 returns the f32.Vec3 as a Vector3.
func FromF32Vec3(vec f32.Vec3) tetramath.Vector3 {
	return tetramath.NewVector3(vec[0], vec[1], vec[2])
}

// ToF32Vec4 returns the Vector4 as an f32.Vec4.
func ToF32Vec4(vec tetramath.Vector4) f32.Vec4 {
	return f32.Vec4{vec.X, vec.Y, vec.Z, vec.W}
}

// FromF32Vec4 returns the f32.Vec4 as a Vector4.
func FromF32Vec4(vec f32.Vec4) tetramath.Vector4 {
	return tetramath.NewVector4(vec[0], vec[1], vec[2], vec[3])
}

// QuaternionToF32 returns the Quaternion as an f32.Vec4 in [x, y, z, w] order.
func QuaternionToF32(quat tetramath.Quaternion) f32.Vec4 {
	return f32.Vec4{quat.X, quat.Y, quat.Z, quat.W}
}

// QuaternionFromF32 is the inverse of QuaternionToF32.
func QuaternionFromF32(vec f32.Vec4) tetramath.Quaternion {
	return tetramath.NewQuaternion(vec[0], vec[1], vec[2], vec[3])
}

// ToF32Mat4 returns the Matrix4 as an f32.Mat4. f32.Mat4 is row-major like Matrix4, but (like f32.Aff3) it's meant
// for column vectors, with the translation in the last column, so the matrix is transposed.
func ToF32Mat4(matrix tetramath.Matrix4) f32.Mat4 {
	return f32.Mat4(matrix.Transposed().ToFloats())
}

// FromF32Mat4 is the inverse of ToF32Mat4.
func FromF32Mat4(matrix f32.Mat4) tetramath.Matrix4 {
	var out tetramath.Matrix4
	out.SetFloats([16]float32(matrix))
	return out.Transposed()
}
