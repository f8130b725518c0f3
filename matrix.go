package tetramath

import (
	"strconv"

	"github.com/solarlune/tetramath/math32"
)

// Matrix4 represents a 4x4 matrix for translation, scale, and rotation. A Matrix4 is row-major (i.e. the X axis is matrix[0]),
// and vectors are multiplied as rows (v * M), so the translation lives in matrix[3]. Only the upper-left 3x3 block takes
// part in rotation.
type Matrix4 [4][4]float32

// NewMatrix4 returns a new identity Matrix4. A Matrix4 is row-major (i.e. the X axis for a rotation Matrix4 is matrix[0][0], matrix[0][1], matrix[0][2]).
func NewMatrix4() Matrix4 {

	mat := Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
	return mat

}

// NewEmptyMatrix4 returns a Matrix4 with every value set to 0.
func NewEmptyMatrix4() Matrix4 {
	return Matrix4{}
}

// Clear zeroes the Matrix4 in place.
func (matrix *Matrix4) Clear() {
	*matrix = Matrix4{}
}

// SetFloats sets the Matrix4's values from 16 row-major floats, returning the result.
func (matrix *Matrix4) SetFloats(floats [16]float32) Matrix4 {
	for x := 0; x < 16; x++ {
		matrix.SetByIndex(x, floats[x])
	}
	return *matrix
}

// NewMatrix4Translate returns a new identity Matrix4, but with the x, y, and z translation components set as provided.
func NewMatrix4Translate(x, y, z float32) Matrix4 {
	mat := NewMatrix4()
	mat[3][0] = x
	mat[3][1] = y
	mat[3][2] = z
	return mat
}

// NewMatrix4Scale returns a new identity Matrix4, but with the scale components set as provided. 1, 1, 1 is the default.
func NewMatrix4Scale(x, y, z float32) Matrix4 {
	mat := NewMatrix4()
	mat[0][0] = x
	mat[1][1] = y
	mat[2][2] = z
	return mat
}

// NewMatrix4Rotate returns a new Matrix4 designed to rotate by the angle given (in radians) along the axis given [x, y, z].
// This rotation works as though you pierced the object utilizing the matrix through by the axis, and then rotated it
// counter-clockwise by the angle in radians. The axis is normalized; a zero axis spins on +Y.
func NewMatrix4Rotate(x, y, z, angle float32) Matrix4 {

	// Default to spinning on +Y axis if there is no valid axis
	if x == 0 && y == 0 && z == 0 {
		y = 1
	}

	mat := NewMatrix4()
	vector := Vector3{X: x, Y: y, Z: z}.Unit()
	s, c := math32.Sincos(angle)
	m := 1 - c

	mat[0][0] = m*vector.X*vector.X + c
	mat[0][1] = m*vector.X*vector.Y + vector.Z*s
	mat[0][2] = m*vector.Z*vector.X - vector.Y*s

	mat[1][0] = m*vector.X*vector.Y - vector.Z*s
	mat[1][1] = m*vector.Y*vector.Y + c
	mat[1][2] = m*vector.Y*vector.Z + vector.X*s

	mat[2][0] = m*vector.Z*vector.X + vector.Y*s
	mat[2][1] = m*vector.Y*vector.Z - vector.X*s
	mat[2][2] = m*vector.Z*vector.Z + c

	return mat

}

// NewMatrix4RotateX returns a Matrix4 rotating counter-clockwise around +X by the angle given (in radians).
func NewMatrix4RotateX(angle float32) Matrix4 {
	s, c := math32.Sincos(angle)
	return Matrix4{
		{1, 0, 0, 0},
		{0, c, s, 0},
		{0, -s, c, 0},
		{0, 0, 0, 1},
	}
}

// NewMatrix4RotateY returns a Matrix4 rotating counter-clockwise around +Y by the angle given (in radians).
func NewMatrix4RotateY(angle float32) Matrix4 {
	s, c := math32.Sincos(angle)
	return Matrix4{
		{c, 0, -s, 0},
		{0, 1, 0, 0},
		{s, 0, c, 0},
		{0, 0, 0, 1},
	}
}

// NewMatrix4RotateZ returns a Matrix4 rotating counter-clockwise around +Z by the angle given (in radians).
func NewMatrix4RotateZ(angle float32) Matrix4 {
	s, c := math32.Sincos(angle)
	return Matrix4{
		{c, s, 0, 0},
		{-s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// NewMatrix4RotateYawPitchRoll creates a rotation Matrix4 from Euler angles (in radians): roll around +Z is applied first, then pitch
// around +X, then yaw around +Y. It represents the same rotation as FromYawPitchRoll.
func NewMatrix4RotateYawPitchRoll(yaw, pitch, roll float32) Matrix4 {
	return NewMatrix4RotateZ(roll).Mult(NewMatrix4RotateX(pitch)).Mult(NewMatrix4RotateY(yaw))
}

// NewMatrix4FromQuaternion returns a rotation Matrix4 representing the Quaternion given. It's the same as quat.ToMatrix4().
func NewMatrix4FromQuaternion(quat Quaternion) Matrix4 {
	return quat.ToMatrix4()
}

// ToQuaternion returns a Quaternion representative of the Matrix4's rotation (assuming it is just a purely rotational Matrix4).
func (matrix Matrix4) ToQuaternion() Quaternion {
	return FromRotationMatrix(matrix)
}

// Right returns the right-facing rotational component of the Matrix4. For an identity matrix, this would be [1, 0, 0], or +X.
func (matrix Matrix4) Right() Vector3 {
	return matrix.RowAsVector3(0).Unit()
}

// Up returns the upward rotational component of the Matrix4. For an identity matrix, this would be [0, 1, 0], or +Y.
func (matrix Matrix4) Up() Vector3 {
	return matrix.RowAsVector3(1).Unit()
}

// Backward returns the backward rotational component of the Matrix4. For an identity matrix, this would be [0, 0, 1], or +Z (towards camera).
func (matrix Matrix4) Backward() Vector3 {
	return matrix.RowAsVector3(2).Unit()
}

// Forward returns the forward rotational component of the Matrix4. For an identity matrix, this would be [0, 0, -1], or -Z (away from camera).
func (matrix Matrix4) Forward() Vector3 {
	return matrix.Backward().Invert()
}

// Rotation3x3 returns the Matrix4 with everything but the upper-left 3x3 rotation block reset to identity.
func (matrix Matrix4) Rotation3x3() Matrix4 {
	rot := NewMatrix4()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			rot[r][c] = matrix[r][c]
		}
	}
	return rot
}

// SetRotation3x3 overwrites the upper-left 3x3 block of the Matrix4 with that of rotation, leaving translation and the fourth column alone.
func (matrix *Matrix4) SetRotation3x3(rotation Matrix4) {
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			matrix[r][c] = rotation[r][c]
		}
	}
}

// Decompose decomposes the Matrix4 and returns three components - the position (a 3D Vector), scale (another 3D Vector), and rotation (a Matrix4)
// indicated by the Matrix4. The rotation's rows are the Matrix4's Right, Up, and Backward basis vectors; the scale is the length of each.
// Negative scales and shear are not supported.
func (matrix Matrix4) Decompose() (Vector3, Vector3, Matrix4) {

	position := matrix.RowAsVector3(3)

	scale := Vector3{
		X: matrix.RowAsVector3(0).Magnitude(),
		Y: matrix.RowAsVector3(1).Magnitude(),
		Z: matrix.RowAsVector3(2).Magnitude(),
	}

	rotation := NewMatrix4()
	for i, basis := range [3]Vector3{matrix.Right(), matrix.Up(), matrix.Backward()} {
		rotation.SetRow(i, NewVector4(basis.X, basis.Y, basis.Z, 0))
	}

	return position, scale, rotation

}

// Transposed transposes a Matrix4, switching the Matrix from being Row Major to being Column Major. For orthonormalized Matrices (matrices
// that have rows that are normalized (having a length of 1), like rotation matrices), this is equivalent to inverting it.
func (matrix Matrix4) Transposed() Matrix4 {

	transposed := NewEmptyMatrix4()
	for i := 0; i < 4; i++ {
		transposed.SetColumn(i, matrix.Row(i))
	}
	return transposed

}

// Inverted returns an inverted version of the Matrix4. A singular Matrix4 (one with a determinant of 0, like a zero scale) has
// no inverse; for those, a Matrix4 of all zeroes is returned.
func (matrix Matrix4) Inverted() Matrix4 {
	// Cofactor expansion over 2x2 sub-determinants, see https://stackoverflow.com/questions/1148309/inverting-a-4x4-matrix

	var A2323 = matrix[2][2]*matrix[3][3] - matrix[2][3]*matrix[3][2]
	var A1323 = matrix[2][1]*matrix[3][3] - matrix[2][3]*matrix[3][1]
	var A1223 = matrix[2][1]*matrix[3][2] - matrix[2][2]*matrix[3][1]
	var A0323 = matrix[2][0]*matrix[3][3] - matrix[2][3]*matrix[3][0]
	var A0223 = matrix[2][0]*matrix[3][2] - matrix[2][2]*matrix[3][0]
	var A0123 = matrix[2][0]*matrix[3][1] - matrix[2][1]*matrix[3][0]
	var A2313 = matrix[1][2]*matrix[3][3] - matrix[1][3]*matrix[3][2]
	var A1313 = matrix[1][1]*matrix[3][3] - matrix[1][3]*matrix[3][1]
	var A1213 = matrix[1][1]*matrix[3][2] - matrix[1][2]*matrix[3][1]
	var A2312 = matrix[1][2]*matrix[2][3] - matrix[1][3]*matrix[2][2]
	var A1312 = matrix[1][1]*matrix[2][3] - matrix[1][3]*matrix[2][1]
	var A1212 = matrix[1][1]*matrix[2][2] - matrix[1][2]*matrix[2][1]
	var A0313 = matrix[1][0]*matrix[3][3] - matrix[1][3]*matrix[3][0]
	var A0213 = matrix[1][0]*matrix[3][2] - matrix[1][2]*matrix[3][0]
	var A0312 = matrix[1][0]*matrix[2][3] - matrix[1][3]*matrix[2][0]
	var A0212 = matrix[1][0]*matrix[2][2] - matrix[1][2]*matrix[2][0]
	var A0113 = matrix[1][0]*matrix[3][1] - matrix[1][1]*matrix[3][0]
	var A0112 = matrix[1][0]*matrix[2][1] - matrix[1][1]*matrix[2][0]

	var det = matrix[0][0]*(matrix[1][1]*A2323-matrix[1][2]*A1323+matrix[1][3]*A1223) -
		matrix[0][1]*(matrix[1][0]*A2323-matrix[1][2]*A0323+matrix[1][3]*A0223) +
		matrix[0][2]*(matrix[1][0]*A1323-matrix[1][1]*A0323+matrix[1][3]*A0123) -
		matrix[0][3]*(matrix[1][0]*A1223-matrix[1][1]*A0223+matrix[1][2]*A0123)

	if det == 0 {
		return NewEmptyMatrix4()
	}

	det = 1 / det

	m := NewMatrix4()

	m[0][0] = det * (matrix[1][1]*A2323 - matrix[1][2]*A1323 + matrix[1][3]*A1223)
	m[0][1] = det * -(matrix[0][1]*A2323 - matrix[0][2]*A1323 + matrix[0][3]*A1223)
	m[0][2] = det * (matrix[0][1]*A2313 - matrix[0][2]*A1313 + matrix[0][3]*A1213)
	m[0][3] = det * -(matrix[0][1]*A2312 - matrix[0][2]*A1312 + matrix[0][3]*A1212)
	m[1][0] = det * -(matrix[1][0]*A2323 - matrix[1][2]*A0323 + matrix[1][3]*A0223)
	m[1][1] = det * (matrix[0][0]*A2323 - matrix[0][2]*A0323 + matrix[0][3]*A0223)
	m[1][2] = det * -(matrix[0][0]*A2313 - matrix[0][2]*A0313 + matrix[0][3]*A0213)
	m[1][3] = det * (matrix[0][0]*A2312 - matrix[0][2]*A0312 + matrix[0][3]*A0212)
	m[2][0] = det * (matrix[1][0]*A1323 - matrix[1][1]*A0323 + matrix[1][3]*A0123)
	m[2][1] = det * -(matrix[0][0]*A1323 - matrix[0][1]*A0323 + matrix[0][3]*A0123)
	m[2][2] = det * (matrix[0][0]*A1313 - matrix[0][1]*A0313 + matrix[0][3]*A0113)
	m[2][3] = det * -(matrix[0][0]*A1312 - matrix[0][1]*A0312 + matrix[0][3]*A0112)
	m[3][0] = det * -(matrix[1][0]*A1223 - matrix[1][1]*A0223 + matrix[1][2]*A0123)
	m[3][1] = det * (matrix[0][0]*A1223 - matrix[0][1]*A0223 + matrix[0][2]*A0123)
	m[3][2] = det * -(matrix[0][0]*A1213 - matrix[0][1]*A0213 + matrix[0][2]*A0113)
	m[3][3] = det * (matrix[0][0]*A1212 - matrix[0][1]*A0212 + matrix[0][2]*A0112)

	return m

}

// Determinant3x3 returns the determinant of the upper-left 3x3 block of the Matrix4.
func (matrix Matrix4) Determinant3x3() float32 {
	return matrix[0][0]*(matrix[1][1]*matrix[2][2]-matrix[1][2]*matrix[2][1]) -
		matrix[0][1]*(matrix[1][0]*matrix[2][2]-matrix[1][2]*matrix[2][0]) +
		matrix[0][2]*(matrix[1][0]*matrix[2][1]-matrix[1][1]*matrix[2][0])
}

// IsRotation returns true if the upper-left 3x3 block of the Matrix4 is orthonormal with a determinant of +1 (within epsilon), meaning
// it's a pure rotation that FromRotationMatrix can convert faithfully.
func (matrix Matrix4) IsRotation(epsilon float32) bool {
	rot := matrix.Rotation3x3()
	if !rot.Mult(rot.Transposed()).EqualsEpsilon(identityMatrix, epsilon) {
		return false
	}
	return math32.Abs(matrix.Determinant3x3()-1) <= epsilon
}

// SetByIndex sets the value at the given row-major index (0 through 15) of the Matrix4.
func (matrix *Matrix4) SetByIndex(index int, value float32) {
	matrix[index/4][index%4] = value
}

// Index returns the value at the given row-major index (0 through 15) of the Matrix4.
func (matrix Matrix4) Index(index int) float32 {
	return matrix[index/4][index%4]
}

// ToFloats returns the Matrix4's values as 16 row-major floats.
func (matrix Matrix4) ToFloats() [16]float32 {
	var floats [16]float32
	for i := range floats {
		floats[i] = matrix.Index(i)
	}
	return floats
}

// Equals returns true if the matrix equals the same values in the provided Other Matrix4.
func (matrix Matrix4) Equals(other Matrix4) bool {
	return matrix.EqualsEpsilon(other, 0.0001)
}

// EqualsEpsilon returns true if no value of the matrix differs from the matching value in other by more than epsilon.
func (matrix Matrix4) EqualsEpsilon(other Matrix4, epsilon float32) bool {
	for i := 0; i < len(matrix); i++ {
		for j := 0; j < len(matrix[i]); j++ {
			if math32.Abs(matrix[i][j]-other[i][j]) > epsilon {
				return false
			}
		}
	}
	return true
}

var identityMatrix = NewMatrix4()

// IsIdentity returns true if the matrix is an unmodified identity matrix.
func (matrix Matrix4) IsIdentity() bool {
	return matrix.Equals(identityMatrix)
}

// Row returns the indiced row from the Matrix4 as a Vector4.
func (matrix Matrix4) Row(rowIndex int) Vector4 {
	vec := Vector4{
		X: matrix[rowIndex][0],
		Y: matrix[rowIndex][1],
		Z: matrix[rowIndex][2],
		W: matrix[rowIndex][3],
	}
	return vec
}

// RowAsVector3 returns the indiced row from the Matrix4 as a Vector3.
func (matrix Matrix4) RowAsVector3(rowIndex int) Vector3 {
	vec := Vector3{
		X: matrix[rowIndex][0],
		Y: matrix[rowIndex][1],
		Z: matrix[rowIndex][2],
	}
	return vec
}

// Column returns the indiced column from the Matrix4 as a Vector4.
func (matrix Matrix4) Column(columnIndex int) Vector4 {
	vec := Vector4{
		X: matrix[0][columnIndex],
		Y: matrix[1][columnIndex],
		Z: matrix[2][columnIndex],
		W: matrix[3][columnIndex],
	}
	return vec
}

// SetRow sets the Matrix4 with the row in rowIndex set to the 4D vector passed.
func (matrix *Matrix4) SetRow(rowIndex int, vec Vector4) {
	matrix[rowIndex][0] = vec.X
	matrix[rowIndex][1] = vec.Y
	matrix[rowIndex][2] = vec.Z
	matrix[rowIndex][3] = vec.W
}

// SetColumn sets the Matrix4 with the column in columnIndex set to the 4D vector passed.
func (matrix *Matrix4) SetColumn(columnIndex int, vec Vector4) {
	matrix[0][columnIndex] = vec.X
	matrix[1][columnIndex] = vec.Y
	matrix[2][columnIndex] = vec.Z
	matrix[3][columnIndex] = vec.W
}

// Mult multiplies a Matrix4 by another provided Matrix4 - this effectively combines them. As vectors are multiplied as rows,
// the calling Matrix4 is applied first.
func (matrix Matrix4) Mult(other Matrix4) Matrix4 {

	newMat := NewEmptyMatrix4()

	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			newMat[r][c] = matrix[r][0]*other[0][c] + matrix[r][1]*other[1][c] + matrix[r][2]*other[2][c] + matrix[r][3]*other[3][c]
		}
	}

	return newMat

}

func (matrix Matrix4) String() string {
	s := "{"
	for i, y := range matrix {
		for _, x := range y {
			s += strconv.FormatFloat(float64(x), 'f', -1, 32) + ", "
		}
		if i < len(matrix)-1 {
			s += "\n"
		}
	}
	s += "}"
	return s
}

// NewLookAtMatrix generates a new Matrix4 to rotate an object to point towards another object. to is the target's world position,
// from is the world position of the object looking towards the target, and up is the upward vector ( usually +Y, or [0, 1, 0] ).
// The resulting Matrix4's Backward() points from the target back to from.
func NewLookAtMatrix(from, to, up Vector3) Matrix4 {

	// If from and to are the same, then an identity Matrix4 should be a sensible default
	if from.Equals(to) {
		return NewMatrix4()
	}

	z := from.Sub(to).Unit()

	up = up.Unit()

	// If z == up, then the matrix will be unusable, so we sub up out with another angle
	if z.Equals(up) || z.Equals(up.Invert()) {
		if !up.Equals(WorldRight) {
			up = WorldRight
		} else {
			up = WorldBackward
		}
	}

	x := up.Cross(z).Unit()
	y := z.Cross(x)
	return Matrix4{
		{x.X, x.Y, x.Z, 0},
		{y.X, y.Y, y.Z, 0},
		{z.X, z.Y, z.Z, 0},
		{0, 0, 0, 1},
	}
}

// Lerp lerps a matrix to another, destination Matrix by the percent given. It does this by converting both
// Matrices to Quaternions, slerping them, then converting the result back to a Matrix4.
func (matrix Matrix4) Lerp(other Matrix4, percent float32) Matrix4 {
	q1 := matrix.ToQuaternion()
	q2 := other.ToQuaternion()
	return q1.Slerp(q2, percent).ToMatrix4()
}
