package pixfit

import (
	"image"
	"math"
)

// RadiusFull is a sentinel corner radius meaning "as round as possible".
// The per-image clamp turns it into half the shorter output dimension,
// which makes square outputs circular.
const RadiusFull = 9999

// RoundedRectMask rasterizes a w×h alpha mask shaped as a rectangle with
// quarter-circle corners of the given radius. The radius is clamped to
// min(w,h)/2. Corner edges are anti-aliased by pixel-center coverage; the
// interior and the straight edges are fully opaque.
//
// A radius of 0 yields a fully opaque mask, but callers should skip masking
// entirely in that case.
func RoundedRectMask(w, h, radius int) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	for i := range mask.Pix {
		mask.Pix[i] = 0xff
	}

	r := effectiveRadius(w, h, radius)
	if r <= 0 {
		return mask
	}

	// Carve each corner: coverage falls off with distance from the corner
	// circle's center, sampled at pixel centers.
	carveCorner(mask, 0, 0, r, r, r)         // top-left
	carveCorner(mask, w-r, 0, w-r, r, r)     // top-right
	carveCorner(mask, 0, h-r, r, h-r, r)     // bottom-left
	carveCorner(mask, w-r, h-r, w-r, h-r, r) // bottom-right

	return mask
}

// effectiveRadius clamps a requested corner radius to half the shorter
// canvas dimension. The limit is integer division, so an odd short side
// floors (5 clamps to 2, not 2.5): radii stay whole pixels.
func effectiveRadius(w, h, radius int) int {
	if radius < 0 {
		return 0
	}
	limit := w
	if h < limit {
		limit = h
	}
	limit /= 2
	if radius > limit {
		return limit
	}
	return radius
}

// carveCorner writes coverage values into the r×r corner square whose
// top-left pixel is (x0, y0), against the arc centered at (cx, cy).
func carveCorner(mask *image.Alpha, x0, y0 int, cx, cy, r int) {
	fr := float64(r)
	for y := y0; y < y0+r; y++ {
		for x := x0; x < x0+r; x++ {
			dx := float64(x) + 0.5 - float64(cx)
			dy := float64(y) + 0.5 - float64(cy)
			dist := math.Sqrt(dx*dx + dy*dy)

			// Coverage 1 inside the arc, 0 outside, with a one-pixel
			// anti-aliased transition straddling the boundary.
			cov := fr - dist + 0.5
			if cov >= 1 {
				continue // already opaque
			}
			if cov < 0 {
				cov = 0
			}
			mask.Pix[y*mask.Stride+x] = clampU8(cov * 255)
		}
	}
}
