package common

import (
	"math"
	"testing"
)

func TestInvert4RoundTrip(t *testing.T) {
	var m, inv, product [16]float32
	BuildModelMatrix(m[:], 1, 2, 3, 0.3, 0.5, 0.2, 2, 2, 2)

	if !Invert4(inv[:], m[:]) {
		t.Fatal("model matrix reported singular")
	}
	Mul4(product[:], inv[:], m[:])

	var identity [16]float32
	Identity(identity[:])
	for i := range product {
		if diff := math.Abs(float64(product[i] - identity[i])); diff > 1e-4 {
			t.Fatalf("product[%d] = %v, want %v", i, product[i], identity[i])
		}
	}
}

func TestInvert4Singular(t *testing.T) {
	var zero, out [16]float32
	out[0] = 42
	if Invert4(out[:], zero[:]) {
		t.Fatal("zero matrix must report singular")
	}
	if out[0] != 42 {
		t.Fatal("singular inversion must leave the output unchanged")
	}
}

func TestTransformPointTranslation(t *testing.T) {
	var m [16]float32
	Identity(m[:])
	m[12], m[13], m[14] = 5, -3, 2

	x, y, z := TransformPoint(m[:], 1, 1, 1)
	if x != 6 || y != -2 || z != 3 {
		t.Fatalf("translated point = (%v, %v, %v), want (6, -2, 3)", x, y, z)
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	var p [16]float32
	near, far := float32(0.1), float32(100.0)
	Perspective(p[:], float32(math.Pi/4), 1.0, near, far)

	// WebGPU convention: the near plane maps to depth 0, the far plane to 1.
	_, _, zn := TransformPoint(p[:], 0, 0, -near)
	_, _, zf := TransformPoint(p[:], 0, 0, -far)
	if math.Abs(float64(zn)) > 1e-5 {
		t.Fatalf("near plane depth = %v, want 0", zn)
	}
	if math.Abs(float64(zf-1)) > 1e-4 {
		t.Fatalf("far plane depth = %v, want 1", zf)
	}
}

func TestLookAtTransformsTargetToViewAxis(t *testing.T) {
	var v [16]float32
	LookAt(v[:], 0, 0, 10, 0, 0, 0, 0, 1, 0)

	// The target lies on the view axis, 10 units in front (-Z in view space).
	x, y, z := TransformPoint(v[:], 0, 0, 0)
	if math.Abs(float64(x)) > 1e-5 || math.Abs(float64(y)) > 1e-5 || math.Abs(float64(z+10)) > 1e-4 {
		t.Fatalf("target in view space = (%v, %v, %v), want (0, 0, -10)", x, y, z)
	}

	// The eye maps to the view-space origin.
	x, y, z = TransformPoint(v[:], 0, 0, 10)
	if math.Abs(float64(x)) > 1e-5 || math.Abs(float64(y)) > 1e-5 || math.Abs(float64(z)) > 1e-5 {
		t.Fatalf("eye in view space = (%v, %v, %v), want origin", x, y, z)
	}
}

func TestAxis(t *testing.T) {
	v := Vec3{X: 3, Y: -7, Z: 1}

	if got := AxisVertical.Component(v); got != -7 {
		t.Fatalf("vertical component = %v, want -7", got)
	}
	if got := AxisHorizontal.Component(v); got != 3 {
		t.Fatalf("horizontal component = %v, want 3", got)
	}
	if got := AxisVertical.Vector(2.5); got != (Vec3{Y: 2.5}) {
		t.Fatalf("vertical vector = %+v, want {Y:2.5}", got)
	}
	if got := AxisHorizontal.Vector(-1); got != (Vec3{X: -1}) {
		t.Fatalf("horizontal vector = %+v, want {X:-1}", got)
	}
}

func TestVec3Arithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{-1, 0.5, 2}

	if got := a.Add(b); got != (Vec3{0, 2.5, 5}) {
		t.Fatalf("Add = %+v", got)
	}
	if got := a.Sub(b); got != (Vec3{2, 1.5, 1}) {
		t.Fatalf("Sub = %+v", got)
	}
	if got := a.Scale(2); got != (Vec3{2, 4, 6}) {
		t.Fatalf("Scale = %+v", got)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 3); got != 3 {
		t.Fatalf("Clamp(5, 0, 3) = %v", got)
	}
	if got := Clamp(float32(-0.5), 0, 1); got != 0 {
		t.Fatalf("Clamp(-0.5, 0, 1) = %v", got)
	}
	if got := Clamp(0.7, 0.0, 1.0); got != 0.7 {
		t.Fatalf("Clamp(0.7, 0, 1) = %v", got)
	}
}

func TestAbs32(t *testing.T) {
	if Abs32(-2.5) != 2.5 || Abs32(2.5) != 2.5 || Abs32(0) != 0 {
		t.Fatal("Abs32 mismatch")
	}
}
