package pixfit

import (
	"bytes"
	"testing"
)

// ── Lossy PNG Quantization Tests ────────────────────────────────────────────

func TestQuantizeLevelsLadder(t *testing.T) {
	cases := []struct {
		quality int
		levels  int
	}{
		{100, 256},
		{90, 256},
		{80, 128},
		{70, 128},
		{60, 64},
		{50, 64},
		{40, 32},
		{30, 32},
		{20, 16},
		{0, 16},
	}
	for _, c := range cases {
		if got := quantizeLevels(c.quality); got != c.levels {
			t.Errorf("quantizeLevels(%d) = %d, want %d", c.quality, got, c.levels)
		}
	}

	// The ladder rungs map onto distinct steps: 256, 128, 64, 32, 16.
	want := []int{256, 128, 64, 32, 16}
	for i, q := range pngLadder {
		if got := quantizeLevels(q); got != want[i] {
			t.Errorf("ladder rung %d (quality %d) = %d levels, want %d", i, q, got, want[i])
		}
	}
}

func TestQuantizeColorsStepMultiples(t *testing.T) {
	img := makeTestImage(64, 64)
	out := quantizeColors(img, 16)

	step := 256 / 16
	for i := 0; i < len(out.Pix); i += 4 {
		for c := 0; c < 3; c++ {
			v := int(out.Pix[i+c])
			if v%step != 0 && v != 255 {
				t.Fatalf("channel value %d at offset %d is not a multiple of %d", v, i+c, step)
			}
		}
	}
}

func TestQuantizeColorsAlphaUntouched(t *testing.T) {
	img := makeTestImageWithAlpha(32, 32)
	out := quantizeColors(img, 32)

	for i := 3; i < len(img.Pix); i += 4 {
		if out.Pix[i] != img.Pix[i] {
			t.Fatalf("alpha changed at offset %d: %d → %d", i, img.Pix[i], out.Pix[i])
		}
	}
}

func TestQuantizeColorsNoOpAt256(t *testing.T) {
	img := makeTestImage(16, 16)
	out := quantizeColors(img, 256)
	if !bytes.Equal(out.Pix, img.Pix) {
		t.Fatal("256 levels must be a no-op")
	}
}

func TestQuantizeColorsIdempotent(t *testing.T) {
	img := makeTestImage(64, 64)
	once := quantizeColors(img, 32)
	twice := quantizeColors(once, 32)
	if !bytes.Equal(once.Pix, twice.Pix) {
		t.Fatal("re-quantizing at the same level must not change pixels")
	}

	// A finer level must also leave already-coarse pixels alone.
	finer := quantizeColors(once, 64)
	if !bytes.Equal(once.Pix, finer.Pix) {
		t.Fatal("re-quantizing at a finer level must not change pixels")
	}
}

func TestQuantizeColorsDoesNotMutateInput(t *testing.T) {
	img := makeTestImage(16, 16)
	orig := make([]byte, len(img.Pix))
	copy(orig, img.Pix)

	quantizeColors(img, 16)
	if !bytes.Equal(img.Pix, orig) {
		t.Fatal("quantizeColors must not mutate its input")
	}
}

func TestQuantizeChannelRounding(t *testing.T) {
	// Step 16: values round to the nearest multiple, saturating at 255.
	if v := quantizeChannel(7, 16); v != 0 {
		t.Fatalf("7 → %d, want 0", v)
	}
	if v := quantizeChannel(8, 16); v != 16 {
		t.Fatalf("8 → %d, want 16", v)
	}
	if v := quantizeChannel(255, 16); v != 255 {
		t.Fatalf("255 → %d, want 255 (saturated)", v)
	}
}
