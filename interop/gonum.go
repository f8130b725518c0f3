package interop

import (
	"github.com/solarlune/tetramath"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// ToQuatNumber returns the Quaternion as a gonum quat.Number, whose Real part is W.
func ToQuatNumber(q tetramath.Quaternion) quat.Number {
	return quat.Number{Real: float64(q.W), Imag: float64(q.X), Jmag: float64(q.Y), Kmag: float64(q.Z)}
}

// FromQuatNumber is the inverse of ToQuatNumber; the float64 parts are narrowed to float32.
func FromQuatNumber(n quat.Number) tetramath.Quaternion {
	return tetramath.NewQuaternion(float32(n.Imag), float32(n.Jmag), float32(n.Kmag), float32(n.Real))
}

// ToR3Vec returns the Vector3 as a gonum r3.Vec.
func ToR3Vec(vec tetramath.Vector3) r3.Vec {
	return r3.Vec{X: float64(vec.X), Y: float64(vec.Y), Z: float64(vec.Z)}
}

// FromR3Vec returns the gonum r3.Vec as a Vector3, narrowed to float32.
func FromR3Vec(vec r3.Vec) tetramath.Vector3 {
	return tetramath.NewVector3(float32(vec.X), float32(vec.Y), float32(vec.Z))
}

// ToR3Rotation returns the Quaternion, which should be of unit length, as a gonum r3.Rotation.
func ToR3Rotation(q tetramath.Quaternion) r3.Rotation {
	return r3.Rotation(ToQuatNumber(q))
}

// ToDense returns the Matrix4 as a 4x4 gonum matrix with the same row-major layout.
func ToDense(matrix tetramath.Matrix4) *mat.Dense {
	floats := matrix.ToFloats()
	data := make([]float64, len(floats))
	for i, f := range floats {
		data[i] = float64(f)
	}
	return mat.NewDense(4, 4, data)
}

// FromDense returns the upper-left 4x4 block of a gonum matrix as a Matrix4; any cells outside the source are left as identity.
func FromDense(m mat.Matrix) tetramath.Matrix4 {
	out := tetramath.NewMatrix4()
	rows, cols := m.Dims()
	for r := 0; r < min(rows, 4); r++ {
		for c := 0; c < min(cols, 4); c++ {
			out[r][c] = float32(m.At(r, c))
		}
	}
	return out
}
