package tetramath

import (
	"math/rand"
	"testing"

	"github.com/solarlune/tetramath/math32"
)

// approx compares two floats with a tolerance relative to their magnitude (but never tighter than eps itself).
func approx(a, b, eps float32) bool {
	return math32.Abs(a-b) <= eps*math32.Max(1, math32.Max(math32.Abs(a), math32.Abs(b)))
}

func approxVec(a, b Vector3, eps float32) bool {
	return approx(a.X, b.X, eps) && approx(a.Y, b.Y, eps) && approx(a.Z, b.Z, eps)
}

func approxQuat(a, b Quaternion, eps float32) bool {
	return approx(a.X, b.X, eps) && approx(a.Y, b.Y, eps) && approx(a.Z, b.Z, eps) && approx(a.W, b.W, eps)
}

func compareQuat(t *testing.T, expected, got Quaternion) {
	t.Helper()
	if !approxQuat(expected, got, 1e-5) {
		t.Fatalf("expected quaternion %s, got %s", expected, got)
	}
}

func compareVec(t *testing.T, expected, got Vector3) {
	t.Helper()
	if !approxVec(expected, got, 1e-5) {
		t.Fatalf("expected vector %s, got %s", expected, got)
	}
}

func randomVector(rng *rand.Rand) Vector3 {
	return Vector3{
		X: rng.Float32()*20 - 10,
		Y: rng.Float32()*20 - 10,
		Z: rng.Float32()*20 - 10,
	}
}

func randomRotation(rng *rand.Rand) Quaternion {
	for {
		q := Quaternion{
			X: float32(rng.NormFloat64()),
			Y: float32(rng.NormFloat64()),
			Z: float32(rng.NormFloat64()),
			W: float32(rng.NormFloat64()),
		}
		if n, err := Normalize(q); err == nil && q.Length() > 0.1 {
			return n
		}
	}
}
