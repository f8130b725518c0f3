package tetramath

// Vector4 represents a 4D Vector. It's mainly used to read and write rows and columns of a Matrix4.
type Vector4 struct {
	X, Y, Z, W float32
}

// NewVector4 creates a new Vector4 with the specified components.
func NewVector4(x, y, z, w float32) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

// Vector3 returns the X, Y, and Z components of the Vector4.
func (vec Vector4) Vector3() Vector3 {
	return Vector3{X: vec.X, Y: vec.Y, Z: vec.Z}
}
