package tile

import (
	"math/bits"
	"testing"

	"github.com/gogpu/rastercore/bary"
)

func TestNewGroup_FarPlane(t *testing.T) {
	g := NewGroup()
	for i, d := range g.Depth {
		if d != 1 {
			t.Fatalf("Depth[%d] = %v, want 1", i, d)
		}
	}
}

func TestGroup_Cover_InsideWins(t *testing.T) {
	g := NewGroup()
	// Triangle covering the whole 8x8 group footprint at (0,0).
	b, _ := bary.New([2]float32{-10, -10}, [2]float32{40, -10}, [2]float32{-10, 40})

	cov := g.Cover(b, 0.5, 0.5, [3]float32{0.5, 0.5, 0.5})
	if bits.OnesCount64(cov.Mask()) != 64 {
		t.Errorf("expected all 64 pixels covered, got %d", bits.OnesCount64(cov.Mask()))
	}
	// Depth is interpolated from three float32 weights, so a constant
	// z=0.5 comes back within float32 rounding of 0.5, not bit-exact.
	for i, d := range g.Depth {
		if d < 0.5-1e-6 || d > 0.5+1e-6 {
			t.Errorf("Depth[%d] = %v, want 0.5 after nearer triangle wins", i, d)
		}
	}
}

func TestGroup_Cover_FartherLoses(t *testing.T) {
	g := NewGroup()
	b, _ := bary.New([2]float32{-10, -10}, [2]float32{20, -10}, [2]float32{-10, 20})

	// First pass at z=0.2 wins.
	g.Cover(b, 0.5, 0.5, [3]float32{0.2, 0.2, 0.2})
	first := g.Depth[0]
	// Second pass at z=0.8 should not overwrite.
	cov := g.Cover(b, 0.5, 0.5, [3]float32{0.8, 0.8, 0.8})

	if cov.Mask() != 0 {
		t.Errorf("farther triangle should contribute no pixels, mask=%064b", cov.Mask())
	}
	if g.Depth[0] != first {
		t.Errorf("Depth[0] = %v, want %v from the z=0.2 pass (unchanged)", g.Depth[0], first)
	}
}

func TestCoverage_NextYieldsDxDy(t *testing.T) {
	g := NewGroup()
	b, _ := bary.New([2]float32{-10, -10}, [2]float32{40, -10}, [2]float32{-10, 40})
	cov := g.Cover(b, 0.5, 0.5, [3]float32{0, 0, 0})

	seen := map[[2]int]bool{}
	for {
		dx, dy, _, ok := cov.Next()
		if !ok {
			break
		}
		seen[[2]int{dx, dy}] = true
	}
	if len(seen) != 64 {
		t.Errorf("expected 64 unique (dx,dy) pairs, got %d", len(seen))
	}
	if !seen[[2]int{0, 0}] || !seen[[2]int{7, 7}] {
		t.Errorf("expected corners (0,0) and (7,7) to be covered")
	}
}
