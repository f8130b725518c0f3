package tetramath

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/solarlune/tetramath/math32"
	"gonum.org/v1/gonum/num/quat"
)

func TestTransformQuaternion(t *testing.T) {

	v := NewVector3(1, 2, 3)
	q := NewQuaternion(2, 3, 4, 5)
	expected := NewVector3(33, -14, -1)

	compareVec(t, expected, TransformQuaternion(v, q))
	compareVec(t, expected, v.Transform(q))

	var result Vector3
	result.SetTransformed(v, q)
	compareVec(t, expected, result)

	compareVec(t, NewVector3(0, 0, -1), TransformQuaternion(UnitX, FromAxisAngle(UnitY, math32.PiOver2)))

}

func TestTransformMatrix(t *testing.T) {

	v := NewVector3(1, 2, 3)
	var m Matrix4
	m.SetFloats([16]float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16})
	expected := NewVector3(51, 58, 65)

	compareVec(t, expected, TransformMatrix(v, m))
	compareVec(t, expected, v.TransformMatrix(m))

	var result Vector3
	result.SetTransformedMatrix(v, m)
	compareVec(t, expected, result)

	// The translation row takes no part in transforming a normal.
	compareVec(t, NewVector3(38, 44, 50), TransformNormal(v, m))

	moved := NewMatrix4Translate(10, -4, 2)
	compareVec(t, NewVector3(11, -2, 5), TransformMatrix(v, moved))
	compareVec(t, v, TransformNormal(v, moved))

}

// Rotating by Concatenate(q1, q2) must equal rotating by q1, then by q2.
func TestTransformComposition(t *testing.T) {

	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 200; i++ {
		q1 := randomRotation(rng)
		q2 := randomRotation(rng)
		v := randomVector(rng)

		combined := TransformQuaternion(v, Concatenate(q1, q2))
		stepwise := TransformQuaternion(TransformQuaternion(v, q1), q2)

		if !approxVec(stepwise, combined, 1e-4) {
			t.Fatalf("#%d: rotating by the concatenation gave %s, rotating stepwise gave %s", i, combined, stepwise)
		}
	}

}

func TestTransformMatchesMatrixAndSandwich(t *testing.T) {

	rng := rand.New(rand.NewSource(2))

	for i := 0; i < 100; i++ {
		q := randomRotation(rng)
		v := randomVector(rng)

		rotated := TransformQuaternion(v, q)

		// q * v * conj(q), computed independently in float64.
		n := toNumber(q)
		p := quat.Mul(quat.Mul(n, quat.Number{Imag: float64(v.X), Jmag: float64(v.Y), Kmag: float64(v.Z)}), quat.Conj(n))
		sandwich := NewVector3(float32(p.Imag), float32(p.Jmag), float32(p.Kmag))

		if !approxVec(sandwich, rotated, 1e-4) {
			t.Fatalf("rotating %s by %s gave %s; the sandwich product gave %s", v, q, rotated, sandwich)
		}

		if viaMatrix := TransformMatrix(v, q.ToMatrix4()); !approxVec(rotated, viaMatrix, 1e-4) {
			t.Fatalf("rotation matrix of %s moved %s to %s, expected %s", q, v, viaMatrix, rotated)
		}

		// mathgl multiplies column vectors by the transposed layout; feeding it our flattened rows must agree.
		mv := mgl32.Mat4(q.ToMatrix4().ToFloats()).Mul4x1(mgl32.Vec4{v.X, v.Y, v.Z, 1})
		if !approxVec(rotated, NewVector3(mv[0], mv[1], mv[2]), 1e-4) {
			t.Fatalf("mathgl moved %s to %v, expected %s", v, mv, rotated)
		}
	}

}

func TestTransformQuaternions(t *testing.T) {

	q := FromAxisAngle(UnitY, math32.PiOver2)
	source := []Vector3{UnitX, UnitY, UnitZ, NewVector3(1, 2, 3)}

	dest := make([]Vector3, len(source))
	if err := TransformQuaternions(source, q, dest); err != nil {
		t.Fatal(err)
	}
	for i := range source {
		compareVec(t, TransformQuaternion(source[i], q), dest[i])
	}

	// In place.
	inPlace := append([]Vector3(nil), source...)
	if err := TransformQuaternions(inPlace, q, inPlace); err != nil {
		t.Fatal(err)
	}
	for i := range source {
		compareVec(t, dest[i], inPlace[i])
	}

	// A sub-range lands at the requested destination offset, leaving everything else alone.
	ranged := make([]Vector3, 6)
	if err := TransformQuaternionsRange(source, 1, q, ranged, 3, 2); err != nil {
		t.Fatal(err)
	}
	for i, v := range ranged {
		switch i {
		case 3:
			compareVec(t, dest[1], v)
		case 4:
			compareVec(t, dest[2], v)
		default:
			if v != (Vector3{}) {
				t.Fatal("index", i, "outside the range was written to:", v)
			}
		}
	}

	if err := TransformQuaternionsRange(source, 0, q, dest, 0, 0); err != nil {
		t.Fatal("a zero-length range should succeed, got", err)
	}

}

func TestTransformBatchErrors(t *testing.T) {

	source := []Vector3{UnitX, UnitY, UnitZ}
	q := FromAxisAngle(UnitZ, 1)
	m := NewMatrix4Translate(1, 2, 3)

	sentinel := NewVector3(-7, -7, -7)
	fresh := func(n int) []Vector3 {
		dest := make([]Vector3, n)
		for i := range dest {
			dest[i] = sentinel
		}
		return dest
	}

	tests := []struct {
		name string
		call func(dest []Vector3) error
		dest int
		err  error
	}{
		{"quaternions short destination", func(d []Vector3) error { return TransformQuaternions(source, q, d) }, 2, ErrDestinationTooShort},
		{"matrices short destination", func(d []Vector3) error { return TransformMatrices(source, m, d) }, 2, ErrDestinationTooShort},
		{"normals short destination", func(d []Vector3) error { return TransformNormals(source, m, d) }, 1, ErrDestinationTooShort},
		{"range past destination end", func(d []Vector3) error { return TransformQuaternionsRange(source, 0, q, d, 2, 2) }, 3, ErrDestinationTooShort},
		{"range past source end", func(d []Vector3) error { return TransformMatricesRange(source, 2, m, d, 0, 2) }, 3, ErrSourceOutOfRange},
		{"negative source index", func(d []Vector3) error { return TransformNormalsRange(source, -1, m, d, 0, 1) }, 3, ErrInvalidRange},
		{"negative length", func(d []Vector3) error { return TransformQuaternionsRange(source, 0, q, d, 0, -1) }, 3, ErrInvalidRange},
		{"parallel short destination", func(d []Vector3) error { return TransformQuaternionsParallel(source, q, d, 2) }, 2, ErrDestinationTooShort},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			dest := fresh(test.dest)
			if err := test.call(dest); !errors.Is(err, test.err) {
				t.Fatalf("expected %v, got %v", test.err, err)
			}
			for i, v := range dest {
				if v != sentinel {
					t.Fatalf("failed call wrote %s to index %d", v, i)
				}
			}
		})
	}

}

func TestTransformMatricesAndNormals(t *testing.T) {

	m := NewMatrix4RotateX(0.7).Mult(NewMatrix4Translate(3, 0, -1))
	source := []Vector3{UnitX, NewVector3(0.5, -2, 9)}

	points := make([]Vector3, 2)
	normals := make([]Vector3, 2)

	if err := TransformMatrices(source, m, points); err != nil {
		t.Fatal(err)
	}
	if err := TransformNormals(source, m, normals); err != nil {
		t.Fatal(err)
	}

	for i, v := range source {
		compareVec(t, TransformMatrix(v, m), points[i])
		compareVec(t, TransformNormal(v, m), normals[i])
		compareVec(t, points[i], normals[i].Add(NewVector3(3, 0, -1)))
	}

}

func TestTransformParallel(t *testing.T) {

	rng := rand.New(rand.NewSource(6))

	source := make([]Vector3, 5000)
	for i := range source {
		source[i] = randomVector(rng)
	}

	q := randomRotation(rng)
	m := q.ToMatrix4().Mult(NewMatrix4Translate(1, -2, 3))

	for _, workers := range []int{0, 1, 3, 16} {

		sequential := make([]Vector3, len(source))
		parallel := make([]Vector3, len(source))

		if err := TransformQuaternions(source, q, sequential); err != nil {
			t.Fatal(err)
		}
		if err := TransformQuaternionsParallel(source, q, parallel, workers); err != nil {
			t.Fatal(err)
		}
		for i := range source {
			if sequential[i] != parallel[i] {
				t.Fatalf("workers %d, index %d: parallel gave %s, sequential gave %s", workers, i, parallel[i], sequential[i])
			}
		}

		if err := TransformMatrices(source, m, sequential); err != nil {
			t.Fatal(err)
		}
		if err := TransformMatricesParallel(source, m, parallel, workers); err != nil {
			t.Fatal(err)
		}
		for i := range source {
			if sequential[i] != parallel[i] {
				t.Fatalf("workers %d, index %d: parallel gave %s, sequential gave %s", workers, i, parallel[i], sequential[i])
			}
		}

	}

}

func BenchmarkTransformQuaternions(b *testing.B) {

	b.StopTimer()

	source := make([]Vector3, 1200)
	for i := range source {
		source[i] = Vector3{X: rand.Float32(), Y: rand.Float32(), Z: rand.Float32()}
	}
	dest := make([]Vector3, len(source))
	q := FromYawPitchRoll(0.2, 0.4, 0.6)

	b.ReportAllocs()
	b.StartTimer()

	for i := 0; i < b.N; i++ {
		TransformQuaternions(source, q, dest)
	}

}

func BenchmarkTransformQuaternionsParallel(b *testing.B) {

	b.StopTimer()

	source := make([]Vector3, 100000)
	for i := range source {
		source[i] = Vector3{X: rand.Float32(), Y: rand.Float32(), Z: rand.Float32()}
	}
	dest := make([]Vector3, len(source))
	q := FromYawPitchRoll(0.2, 0.4, 0.6)

	b.ReportAllocs()
	b.StartTimer()

	for i := 0; i < b.N; i++ {
		TransformQuaternionsParallel(source, q, dest, 0)
	}

}
