package pixfit

import "image"

// quantizeLevels maps a 0–100 quality to the number of levels per color
// channel for lossy PNG. The thresholds are fixed policy: 90 and above is
// a no-op (full 256 levels), then 128/64/32 at 70/50/30, and 16 below.
func quantizeLevels(quality int) int {
	switch {
	case quality >= 90:
		return 256
	case quality >= 70:
		return 128
	case quality >= 50:
		return 64
	case quality >= 30:
		return 32
	default:
		return 16
	}
}

// quantizeColors rounds each R, G, B channel to the nearest multiple of
// 256/levels, leaving alpha untouched. At 256 levels the input is returned
// as-is. The transform is deterministic and idempotent: re-quantizing at
// the same or a finer level loses no further precision.
func quantizeColors(img *image.NRGBA, levels int) *image.NRGBA {
	if levels >= 256 {
		return img
	}
	step := 256 / levels

	bounds := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	copy(dst.Pix, img.Pix)

	for i := 0; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = quantizeChannel(dst.Pix[i], step)
		dst.Pix[i+1] = quantizeChannel(dst.Pix[i+1], step)
		dst.Pix[i+2] = quantizeChannel(dst.Pix[i+2], step)
		// dst.Pix[i+3] (alpha) stays as-is.
	}
	return dst
}

func quantizeChannel(v uint8, step int) uint8 {
	q := (int(v) + step/2) / step * step
	if q > 255 {
		return 255
	}
	return uint8(q)
}
