package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	id := Identity()
	result := m.Mul(id)

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestMulKnownProduct(t *testing.T) {
	// Dense product checked by hand against row-by-column expansion.
	a := Mat4{
		1, 5, 9, 3,
		2, 6, 0, 4,
		3, 7, 1, 5,
		4, 8, 2, 6,
	}
	b := Mat4{
		2, 6, 10, 4,
		3, 7, 1, 5,
		4, 8, 2, 6,
		5, 9, 3, 7,
	}
	want := Mat4{
		60, 148, 36, 104,
		40, 104, 38, 72,
		50, 130, 50, 90,
		60, 156, 62, 108,
	}

	got := a.Mul(b)
	for i := 0; i < 16; i++ {
		if absf(got[i]-want[i]) > 0.001 {
			t.Errorf("element %d: got %f, want %f", i, got[i], want[i])
		}
	}
}

func TestMulComposesRightToLeft(t *testing.T) {
	// Scale then translate: the point ends up at scale*p + offset.
	m := Translate(10, 0, 0).Mul(Scale(2, 2, 2))
	got := m.TransformPoint([3]float32{1, 1, 1})
	want := [3]float32{12, 2, 2}
	if got != want {
		t.Errorf("TransformPoint: got %v, want %v", got, want)
	}
}

func TestInverseRoundTrip(t *testing.T) {
	ms := []Mat4{
		Translate(1, -2, 3),
		RotateY(0.7),
		RotateX(-0.3).Mul(Scale(2, 0.5, 1.25)),
		Translate(5, 1, -4).Mul(RotateZ(2.1)).Mul(Scale(3, 3, 3)),
		LookAt(Vec3{0, 2, 5}, Vec3{}, Vec3{Y: 1}),
		Perspective(float32(math.Pi/2), 16.0/9.0, 0.1, 10),
	}

	for i, m := range ms {
		got := m.Mul(m.Inverse())
		id := Identity()
		for j := 0; j < 16; j++ {
			if absf(got[j]-id[j]) > 0.001 {
				t.Errorf("matrix %d: M * M^-1 element %d = %f, want %f", i, j, got[j], id[j])
			}
		}
	}
}

func TestInverseSingular(t *testing.T) {
	got := Scale(0, 1, 1).Inverse()
	if got != Identity() {
		t.Errorf("singular inverse should fall back to identity, got %v", got)
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(float32(math.Pi / 2))
	got := m.TransformPoint([3]float32{1, 0, 0})

	// (1,0,0) rotates to approximately (0,0,-1).
	if absf(got[0]) > 0.001 || absf(got[1]) > 0.001 || absf(got[2]+1) > 0.001 {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", got)
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(float32(math.Pi/4), 1.0, 0.1, 100.0)

	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero focal elements")
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
}

func TestLookAtMovesEyeToOrigin(t *testing.T) {
	eye := Vec3{3, 4, 5}
	m := LookAt(eye, Vec3{}, Vec3{Y: 1})
	got := m.TransformPoint([3]float32{eye.X, eye.Y, eye.Z})
	for i, v := range got {
		if absf(v) > 0.001 {
			t.Errorf("eye should map to origin, component %d = %f", i, v)
		}
	}
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
