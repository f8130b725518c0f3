package interop

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/solarlune/tetramath"
	"golang.org/x/image/math/f32"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
)

func testMatrix() tetramath.Matrix4 {
	return tetramath.NewMatrix4Scale(1, 2, 0.5).
		Mult(tetramath.NewMatrix4RotateYawPitchRoll(0.3, -1.1, 2)).
		Mult(tetramath.NewMatrix4Translate(7, -3, 0.25))
}

func TestMathGL(t *testing.T) {

	v := tetramath.NewVector3(0.5, -2, 3)
	if FromMglVec3(ToMglVec3(v)) != v {
		t.Fatal("vector didn't survive a mathgl round trip")
	}

	a := tetramath.FromYawPitchRoll(0.1, 0.7, -0.4)
	b := tetramath.FromAxisAngle(tetramath.NewVector3(1, -1, 0.5).Unit(), 2.2)

	if FromMglQuat(ToMglQuat(a)) != a {
		t.Fatal("quaternion didn't survive a mathgl round trip")
	}

	if product := FromMglQuat(ToMglQuat(a).Mul(ToMglQuat(b))); !product.EqualsEpsilon(a.Mult(b), 1e-5) {
		t.Fatalf("mathgl product %s differs from %s", product, a.Mult(b))
	}

	compareVec(t, a.Rotate(v), FromMglVec3(ToMglQuat(a).Rotate(ToMglVec3(v))))

	m := testMatrix()
	if FromMglMat4(ToMglMat4(m)) != m {
		t.Fatal("matrix didn't survive a mathgl round trip")
	}

	// mathgl's translation lives in the last column of its column-vector matrices.
	mv := ToMglMat4(m).Mul4x1(mgl32.Vec4{v.X, v.Y, v.Z, 1})
	if result := tetramath.NewVector3(mv[0], mv[1], mv[2]); !result.EqualsEpsilon(tetramath.TransformMatrix(v, m), 1e-4) {
		t.Fatalf("mathgl transformed %s to %s, expected %s", v, result, tetramath.TransformMatrix(v, m))
	}

	compareRotation(t, a, FromMglQuat(mgl32.Mat4ToQuat(ToMglMat4(a.ToMatrix4()))))

}

func TestF32(t *testing.T) {

	v := tetramath.NewVector3(1, 2, 3)
	if FromF32Vec3(ToF32Vec3(v)) != v {
		t.Fatal("vector didn't survive an f32 round trip")
	}

	v4 := tetramath.NewVector4(1, 2, 3, 4)
	if FromF32Vec4(ToF32Vec4(v4)) != v4 {
		t.Fatal("4D vector didn't survive an f32 round trip")
	}

	q := tetramath.NewQuaternion(0.1, 0.2, 0.3, 0.9)
	if QuaternionFromF32(QuaternionToF32(q)) != q || QuaternionToF32(q) != (f32.Vec4{0.1, 0.2, 0.3, 0.9}) {
		t.Fatal("quaternion didn't survive an f32 round trip")
	}

	m := testMatrix()
	if FromF32Mat4(ToF32Mat4(m)) != m {
		t.Fatal("matrix didn't survive an f32 round trip")
	}

	translated := ToF32Mat4(tetramath.NewMatrix4Translate(4, 5, 6))
	if translated[3] != 4 || translated[7] != 5 || translated[11] != 6 {
		t.Fatal("expected the translation in the last column of the f32 matrix, got", translated)
	}

}

func TestGonum(t *testing.T) {

	a := tetramath.FromYawPitchRoll(1.2, 0.3, -0.9)
	b := tetramath.NewQuaternion(1, 2, -3.8, 2)

	if FromQuatNumber(ToQuatNumber(a)) != a {
		t.Fatal("quaternion didn't survive a gonum round trip")
	}

	// Concatenate(a, b) applies a, then b, which is the Hamilton product b * a.
	if product := FromQuatNumber(quat.Mul(ToQuatNumber(b), ToQuatNumber(a))); !product.EqualsEpsilon(tetramath.Concatenate(a, b), 1e-4) {
		t.Fatalf("gonum product %s differs from %s", product, tetramath.Concatenate(a, b))
	}

	v := tetramath.NewVector3(-4, 0.5, 2)
	compareVec(t, v, FromR3Vec(ToR3Vec(v)))

	if rotated := FromR3Vec(ToR3Rotation(a).Rotate(ToR3Vec(v))); !rotated.EqualsEpsilon(a.Rotate(v), 1e-5) {
		t.Fatalf("gonum rotated %s to %s, expected %s", v, rotated, a.Rotate(v))
	}

	m := testMatrix()
	if FromDense(ToDense(m)) != m {
		t.Fatal("matrix didn't survive a gonum round trip")
	}

	var inverse mat.Dense
	if err := inverse.Inverse(ToDense(m)); err != nil {
		t.Fatal(err)
	}
	if !FromDense(&inverse).Equals(m.Inverted()) {
		t.Fatalf("gonum inverse\n%s\ndiffers from\n%s", FromDense(&inverse), m.Inverted())
	}

	// Smaller sources leave the rest as identity.
	if small := FromDense(mat.NewDense(2, 2, []float64{2, 0, 0, 2})); small != tetramath.NewMatrix4Scale(2, 2, 1) {
		t.Fatal("expected a 2x2 source to fill in identity, got", small)
	}

}
