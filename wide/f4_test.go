package wide

import "testing"

func TestF4_Arithmetic(t *testing.T) {
	a := F4{1, 2, 3, 4}
	b := F4{10, 10, 10, 10}

	if got := a.Add(b); got != (F4{11, 12, 13, 14}) {
		t.Errorf("Add = %v, want {11 12 13 14}", got)
	}
	if got := b.Sub(a); got != (F4{9, 8, 7, 6}) {
		t.Errorf("Sub = %v, want {9 8 7 6}", got)
	}
	if got := a.Mul(SplatF4(2)); got != (F4{2, 4, 6, 8}) {
		t.Errorf("Mul = %v, want {2 4 6 8}", got)
	}
	if got := a.Div(SplatF4(2)); got != (F4{0.5, 1, 1.5, 2}) {
		t.Errorf("Div = %v, want {0.5 1 1.5 2}", got)
	}
}

func TestRangeF4(t *testing.T) {
	x := RangeF4(0, 1, false)
	y := RangeF4(0, 1, true)

	want := [4][2]float32{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	for i := range 4 {
		if x[i] != want[i][0] || y[i] != want[i][1] {
			t.Errorf("lane %d = (%v, %v), want %v", i, x[i], y[i], want[i])
		}
	}
}

func TestF4_Bitmask(t *testing.T) {
	tests := []struct {
		name string
		v    F4
		want uint32
	}{
		{"all positive", F4{1, 2, 3, 4}, 0b0000},
		{"all negative", F4{-1, -2, -3, -4}, 0b1111},
		{"lane 0 negative", F4{-1, 2, 3, 4}, 0b0001},
		{"lane 3 negative", F4{1, 2, 3, -4}, 0b1000},
		{"mixed", F4{-1, 2, -3, 4}, 0b0101},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Bits().Bitmask(); got != tt.want {
				t.Errorf("Bitmask() = %04b, want %04b", got, tt.want)
			}
		})
	}
}

func TestU4_AndSelfOrSelf(t *testing.T) {
	allNeg := F4{-1, -2, -3, -4}.Bits()
	mixed := F4{-1, 2, -3, 4}.Bits()

	if got := allNeg.AndSelf(); got != 0x8000_0000 {
		t.Errorf("AndSelf(all negative) sign bit not set: %032b", got)
	}
	if got := mixed.AndSelf(); got&0x8000_0000 != 0 {
		t.Errorf("AndSelf(mixed) sign bit set, want unset: %032b", got)
	}
	if got := mixed.OrSelf(); got&0x8000_0000 == 0 {
		t.Errorf("OrSelf(mixed) sign bit unset, want set: %032b", got)
	}
}
