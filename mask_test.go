package pixfit

import "testing"

// ── Corner Mask Tests ───────────────────────────────────────────────────────

func TestEffectiveRadiusClamp(t *testing.T) {
	if r := effectiveRadius(100, 60, 31); r != 30 {
		t.Fatalf("radius past the limit must clamp to 30, got %d", r)
	}
	if r := effectiveRadius(100, 60, 9999); r != 30 {
		t.Fatalf("sentinel radius must clamp to 30, got %d", r)
	}
	if r := effectiveRadius(100, 60, RadiusFull); r != 30 {
		t.Fatalf("RadiusFull must clamp to 30, got %d", r)
	}
	if r := effectiveRadius(100, 60, 12); r != 12 {
		t.Fatalf("radius within the limit must pass through, got %d", r)
	}
	// Odd short side floors: limit is 5/2 = 2 whole pixels.
	if r := effectiveRadius(9, 5, RadiusFull); r != 2 {
		t.Fatalf("expected odd short side to floor to 2, got %d", r)
	}
	if r := effectiveRadius(100, 60, -5); r != 0 {
		t.Fatalf("negative radius must clamp to 0, got %d", r)
	}
}

func TestRoundedRectMaskCorners(t *testing.T) {
	mask := RoundedRectMask(100, 100, 20)

	at := func(x, y int) uint8 { return mask.Pix[y*mask.Stride+x] }

	if a := at(0, 0); a != 0 {
		t.Fatalf("corner pixel should be fully transparent, got alpha %d", a)
	}
	if a := at(99, 0); a != 0 {
		t.Fatalf("top-right corner pixel should be transparent, got alpha %d", a)
	}
	if a := at(0, 99); a != 0 {
		t.Fatalf("bottom-left corner pixel should be transparent, got alpha %d", a)
	}
	if a := at(99, 99); a != 0 {
		t.Fatalf("bottom-right corner pixel should be transparent, got alpha %d", a)
	}

	if a := at(50, 50); a != 0xff {
		t.Fatalf("interior must be opaque, got alpha %d", a)
	}
	if a := at(50, 0); a != 0xff {
		t.Fatalf("straight top edge must be opaque, got alpha %d", a)
	}
	if a := at(0, 50); a != 0xff {
		t.Fatalf("straight left edge must be opaque, got alpha %d", a)
	}
	if a := at(19, 19); a != 0xff {
		t.Fatalf("pixel just inside the arc must be opaque, got alpha %d", a)
	}
}

func TestRoundedRectMaskFullyRound(t *testing.T) {
	// A square at RadiusFull becomes a circle: the midpoint of every edge
	// stays opaque while all four corners are carved away.
	mask := RoundedRectMask(80, 80, RadiusFull)

	at := func(x, y int) uint8 { return mask.Pix[y*mask.Stride+x] }
	if a := at(0, 0); a != 0 {
		t.Fatalf("corner of a fully-round mask should be transparent, got %d", a)
	}
	if a := at(40, 0); a == 0 {
		t.Fatalf("edge midpoint of a fully-round mask should be covered, got %d", a)
	}
	if a := at(40, 40); a != 0xff {
		t.Fatalf("center must be opaque, got %d", a)
	}
}

func TestRoundedRectMaskZeroRadius(t *testing.T) {
	mask := RoundedRectMask(10, 10, 0)
	for i, a := range mask.Pix {
		if a != 0xff {
			t.Fatalf("zero radius must leave the mask fully opaque, pixel %d has %d", i, a)
		}
	}
}
