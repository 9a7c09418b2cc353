package pixfit

import "math"

// FitDimensions computes output pixel dimensions from the source size and
// optional bounds. A bound of 0 means "no constraint on this axis".
//
// With keepAspect, the bounds are applied sequentially: the width is clamped
// to maxW first (scaling the height along the source ratio), then the
// already-adjusted height is clamped to maxH (scaling the width back). An
// axis is only ever shrunk, never upscaled. In extreme aspect ratios the
// width-first order can leave one axis slightly over its bound; that
// ordering is intentional and callers relying on it should not substitute
// fit-inside-box semantics.
//
// Without keepAspect each bound replaces its axis outright, which may
// distort.
//
// Results are rounded to the nearest pixel and never drop below 1.
func FitDimensions(srcW, srcH, maxW, maxH int, keepAspect bool) (int, int) {
	if srcW <= 0 || srcH <= 0 {
		return srcW, srcH
	}
	if maxW <= 0 && maxH <= 0 {
		return srcW, srcH
	}

	if !keepAspect {
		w, h := srcW, srcH
		if maxW > 0 {
			w = maxW
		}
		if maxH > 0 {
			h = maxH
		}
		return w, h
	}

	ratio := float64(srcW) / float64(srcH)
	w := float64(srcW)
	h := float64(srcH)

	if maxW > 0 && w > float64(maxW) {
		w = float64(maxW)
		h = w / ratio
	}
	if maxH > 0 && h > float64(maxH) {
		h = float64(maxH)
		w = h * ratio
	}

	return roundDim(w), roundDim(h)
}

func roundDim(v float64) int {
	r := int(math.Round(v))
	if r < 1 {
		return 1
	}
	return r
}
