package interp

import "testing"

func TestF32_Interpolate(t *testing.T) {
	tri := Triangle[F32]{0, 10, 20}
	got := Interpolate(tri, [3]float32{1, 0, 0})
	if got != 0 {
		t.Errorf("at vertex 0: got %v, want 0", got)
	}

	got = Interpolate(tri, [3]float32{0, 0.5, 0.5})
	if got != 15 {
		t.Errorf("midpoint of v1,v2: got %v, want 15", got)
	}
}

func TestVec3_Interpolate_Centroid(t *testing.T) {
	tri := Triangle[Vec3]{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
	third := float32(1) / 3
	got := Interpolate(tri, [3]float32{third, third, third})
	want := Vec3{third, third, third}
	if got != want {
		t.Errorf("centroid = %v, want %v", got, want)
	}
}

func TestFlat_IgnoresWeights(t *testing.T) {
	tri := Triangle[Flat[Vec3]]{
		{V: Vec3{1, 0, 0}},
		{V: Vec3{0, 1, 0}},
		{V: Vec3{0, 0, 1}},
	}
	got := Interpolate(tri, [3]float32{0, 0, 1})
	if got.V != (Vec3{1, 0, 0}) {
		t.Errorf("Flat picked %v, want first vertex {1 0 0}", got.V)
	}
}

func TestPair_Interpolate(t *testing.T) {
	tri := Triangle[Pair[F32, Vec2]]{
		{X: 0, Y: Vec2{0, 0}},
		{X: 10, Y: Vec2{10, 0}},
		{X: 20, Y: Vec2{0, 10}},
	}
	got := Interpolate(tri, [3]float32{0, 0.5, 0.5})
	if got.X != 15 {
		t.Errorf("X = %v, want 15", got.X)
	}
	if got.Y != (Vec2{5, 5}) {
		t.Errorf("Y = %v, want {5 5}", got.Y)
	}
}
