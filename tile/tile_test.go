package tile

import "testing"

func TestNewTile_Shape(t *testing.T) {
	tl := NewTile()
	if len(tl.Groups) != GroupsPerSide || len(tl.Groups[0]) != GroupsPerSide {
		t.Fatalf("Tile has %dx%d groups, want %dx%d", len(tl.Groups), len(tl.Groups[0]), GroupsPerSide, GroupsPerSide)
	}
	for gy := range tl.Groups {
		for gx := range tl.Groups[gy] {
			if tl.Groups[gy][gx] == nil {
				t.Fatalf("group (%d,%d) is nil", gx, gy)
			}
		}
	}
}

func TestTile_Reset(t *testing.T) {
	tl := NewTile()
	tl.Groups[1][2].Depth[5] = 0.1
	tl.Reset()
	if tl.Groups[1][2].Depth[5] != 1 {
		t.Errorf("Reset did not restore far plane: got %v", tl.Groups[1][2].Depth[5])
	}
}

func TestGroupOrigin(t *testing.T) {
	x, y := GroupOrigin(2, 3)
	if x != 16 || y != 24 {
		t.Errorf("GroupOrigin(2,3) = (%d,%d), want (16,24)", x, y)
	}
}

func TestTileGroup_SetPixel(t *testing.T) {
	tg := NewTileGroup[uint32](0xFF)
	for _, c := range tg.Color {
		if c != 0xFF {
			t.Fatal("fill color not applied to all pixels")
		}
	}

	tg.SetPixel(5, 7, 0x42)
	if got := tg.PixelAt(5, 7); got != 0x42 {
		t.Errorf("PixelAt(5,7) = %x, want 0x42", got)
	}
	if got := tg.PixelAt(0, 0); got != 0xFF {
		t.Errorf("unrelated pixel changed: %x", got)
	}
}

func TestTileGroup_Clear(t *testing.T) {
	tg := NewTileGroup[uint32](0)
	tg.SetPixel(0, 0, 7)
	tg.Depth.Groups[0][0].Depth[0] = 0.1

	tg.Clear(9)
	if got := tg.PixelAt(0, 0); got != 9 {
		t.Errorf("PixelAt(0,0) after Clear = %x, want 9", got)
	}
	if tg.Depth.Groups[0][0].Depth[0] != 1 {
		t.Errorf("depth not reset to far plane after Clear")
	}
}
