package tetramath

import (
	"errors"
	"fmt"
)

var (
	// ErrDestinationTooShort is returned by the batch transform functions when the destination slice can't hold every transformed element.
	ErrDestinationTooShort = errors.New("tetramath: destination is smaller than the specified length and index")
	// ErrSourceOutOfRange is returned by the batch transform functions when the requested range runs past the end of the source slice.
	ErrSourceOutOfRange = errors.New("tetramath: source is smaller than the specified length and index")
	// ErrInvalidRange is returned by the batch transform functions for negative indices or lengths.
	ErrInvalidRange = errors.New("tetramath: negative index or length")
)

// TransformQuaternion returns the Vector3 rotated by the Quaternion provided (q * v * conjugate(q)). The rotation should be of unit length.
func TransformQuaternion(vec Vector3, rotation Quaternion) Vector3 {

	// t = 2 * cross(q.xyz, v); v' = v + w*t + cross(q.xyz, t)
	tx := 2 * (rotation.Y*vec.Z - rotation.Z*vec.Y)
	ty := 2 * (rotation.Z*vec.X - rotation.X*vec.Z)
	tz := 2 * (rotation.X*vec.Y - rotation.Y*vec.X)

	return Vector3{
		X: vec.X + tx*rotation.W + (rotation.Y*tz - rotation.Z*ty),
		Y: vec.Y + ty*rotation.W + (rotation.Z*tx - rotation.X*tz),
		Z: vec.Z + tz*rotation.W + (rotation.X*ty - rotation.Y*tx),
	}

}

// TransformMatrix returns the position given, multiplied by the Matrix4 (as a row vector, so the translation row is applied).
func TransformMatrix(position Vector3, matrix Matrix4) Vector3 {
	return Vector3{
		X: matrix[0][0]*position.X + matrix[1][0]*position.Y + matrix[2][0]*position.Z + matrix[3][0],
		Y: matrix[0][1]*position.X + matrix[1][1]*position.Y + matrix[2][1]*position.Z + matrix[3][1],
		Z: matrix[0][2]*position.X + matrix[1][2]*position.Y + matrix[2][2]*position.Z + matrix[3][2],
	}
}

// TransformNormal returns the direction given, multiplied by the upper-left 3x3 block of the Matrix4 only; translation is ignored.
func TransformNormal(normal Vector3, matrix Matrix4) Vector3 {
	return Vector3{
		X: matrix[0][0]*normal.X + matrix[1][0]*normal.Y + matrix[2][0]*normal.Z,
		Y: matrix[0][1]*normal.X + matrix[1][1]*normal.Y + matrix[2][1]*normal.Z,
		Z: matrix[0][2]*normal.X + matrix[1][2]*normal.Y + matrix[2][2]*normal.Z,
	}
}

// Transform returns a copy of the Vector3, rotated by the Quaternion provided.
func (vec Vector3) Transform(rotation Quaternion) Vector3 {
	return TransformQuaternion(vec, rotation)
}

// TransformMatrix returns a copy of the Vector3, multiplied by the Matrix4 provided.
func (vec Vector3) TransformMatrix(matrix Matrix4) Vector3 {
	return TransformMatrix(vec, matrix)
}

// SetTransformed sets the Vector3 to source rotated by the Quaternion given.
func (vec *Vector3) SetTransformed(source Vector3, rotation Quaternion) {
	*vec = TransformQuaternion(source, rotation)
}

// SetTransformedMatrix sets the Vector3 to source multiplied by the Matrix4 given.
func (vec *Vector3) SetTransformedMatrix(source Vector3, matrix Matrix4) {
	*vec = TransformMatrix(source, matrix)
}

func checkRange(sourceLen, sourceIndex, destLen, destIndex, length int) error {
	if sourceIndex < 0 || destIndex < 0 || length < 0 {
		return ErrInvalidRange
	}
	if sourceIndex+length > sourceLen {
		return fmt.Errorf("%w (source %d, index %d, length %d)", ErrSourceOutOfRange, sourceLen, sourceIndex, length)
	}
	if destIndex+length > destLen {
		return fmt.Errorf("%w (destination %d, index %d, length %d)", ErrDestinationTooShort, destLen, destIndex, length)
	}
	return nil
}

// transformRange checks the range before writing anything, so a failed call leaves dest untouched.
func transformRange(source []Vector3, sourceIndex int, dest []Vector3, destIndex, length int, transform func(Vector3) Vector3) error {
	if err := checkRange(len(source), sourceIndex, len(dest), destIndex, length); err != nil {
		return err
	}
	for i := 0; i < length; i++ {
		dest[destIndex+i] = transform(source[sourceIndex+i])
	}
	return nil
}

// TransformQuaternions rotates every Vector3 in source by the Quaternion, writing the results into the same indices of dest.
// dest may be source itself. ErrDestinationTooShort is returned (and nothing is written) if dest is shorter than source.
func TransformQuaternions(source []Vector3, rotation Quaternion, dest []Vector3) error {
	return TransformQuaternionsRange(source, 0, rotation, dest, 0, len(source))
}

// TransformQuaternionsRange rotates length elements of source, starting at sourceIndex, writing them into dest starting at destIndex.
// The arguments are validated before any element is written.
func TransformQuaternionsRange(source []Vector3, sourceIndex int, rotation Quaternion, dest []Vector3, destIndex, length int) error {
	return transformRange(source, sourceIndex, dest, destIndex, length, func(v Vector3) Vector3 {
		return TransformQuaternion(v, rotation)
	})
}

// TransformMatrices multiplies every Vector3 in source by the Matrix4, writing the results into the same indices of dest.
func TransformMatrices(source []Vector3, matrix Matrix4, dest []Vector3) error {
	return TransformMatricesRange(source, 0, matrix, dest, 0, len(source))
}

// TransformMatricesRange multiplies length elements of source, starting at sourceIndex, by the Matrix4, writing them into dest starting at destIndex.
func TransformMatricesRange(source []Vector3, sourceIndex int, matrix Matrix4, dest []Vector3, destIndex, length int) error {
	return transformRange(source, sourceIndex, dest, destIndex, length, func(v Vector3) Vector3 {
		return TransformMatrix(v, matrix)
	})
}

// TransformNormals transforms every direction in source by the rotation block of the Matrix4, writing the results into dest.
func TransformNormals(source []Vector3, matrix Matrix4, dest []Vector3) error {
	return TransformNormalsRange(source, 0, matrix, dest, 0, len(source))
}

// TransformNormalsRange transforms length directions of source, starting at sourceIndex, writing them into dest starting at destIndex.
func TransformNormalsRange(source []Vector3, sourceIndex int, matrix Matrix4, dest []Vector3, destIndex, length int) error {
	return transformRange(source, sourceIndex, dest, destIndex, length, func(v Vector3) Vector3 {
		return TransformNormal(v, matrix)
	})
}
