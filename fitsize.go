package pixfit

import "image"

// Size-fitting search policy. The window and attempt cap are engineering
// constants, not derived optima; they are fixed so results stay
// deterministic and the worst case is a predictable number of encodes.
const (
	fitQualityFloor = 10
	fitMaxAttempts  = 12
	fitWindow       = 2
)

// pngLadder walks the lossy-PNG quantization policy from finest to
// coarsest. The values are the reported qualities and feed quantizeLevels.
var pngLadder = [...]int{100, 80, 60, 40, 20}

// FitToSize finds an encoding of img in the given format whose size does
// not exceed targetBytes, preferring the highest quality that fits. The
// returned quality is the one actually applied.
//
// PNG bypasses the search: the lossless encode is returned at quality 100
// and targetBytes is ignored, unless lossyPNG is set, in which case the
// quantization ladder is walked until a level fits.
//
// For lossy formats the quality is found by bounded binary search over
// [fitQualityFloor, ceiling]. The search assumes encoded size is
// non-decreasing in quality; a codec violating that locally yields a
// suboptimal but still valid result. When no tried quality fits, the
// output encoded at the floor is returned anyway: an unreachable target
// degrades quality, it never fails the file.
func FitToSize(img *image.NRGBA, format Format, targetBytes int, lossyPNG bool) ([]byte, int, error) {
	if format == PNG {
		if lossyPNG {
			return fitPNG(img, targetBytes)
		}
		data, err := Encode(img, PNG, 100)
		return data, 100, err
	}

	data, quality, err := searchQuality(func(q int) ([]byte, error) {
		return Encode(img, format, q)
	}, targetBytes, fitQualityFloor, qualityCeiling(format))
	if err != nil {
		return nil, 0, err
	}
	return data, quality, nil
}

// searchQuality is the bounded binary search at the heart of size-fitting.
// encode is called at most fitMaxAttempts times plus one fallback encode.
// A failed or empty attempt is treated as "does not fit" and pushes the
// search downward; only the fallback encode can surface an error.
func searchQuality(encode func(quality int) ([]byte, error), targetBytes, lo, hi int) ([]byte, int, error) {
	var best []byte
	bestQuality := 0

	for attempts := 0; hi-lo > fitWindow && attempts < fitMaxAttempts; attempts++ {
		mid := (lo + hi + 1) / 2
		data, err := encode(mid)
		if err != nil || len(data) == 0 || len(data) > targetBytes {
			hi = mid
			continue
		}
		// Fits: keep it and search upward for better quality that still fits.
		best = data
		bestQuality = mid
		lo = mid
	}

	if best != nil {
		return best, bestQuality, nil
	}

	// Nothing fit within the budget. Encode at the lowest quality tried and
	// return it regardless of size.
	data, err := encode(lo)
	if err != nil {
		return nil, 0, err
	}
	return data, lo, nil
}

// fitPNG applies the lossy-PNG policy: encode at progressively coarser
// quantization levels until one fits the budget. The coarsest level is
// returned even when it still exceeds the target, mirroring the lossy
// fallback guarantee.
func fitPNG(img *image.NRGBA, targetBytes int) ([]byte, int, error) {
	var last []byte
	lastQuality := 100
	for _, q := range pngLadder {
		quantized := quantizeColors(img, quantizeLevels(q))
		data, err := Encode(quantized, PNG, 100)
		if err != nil {
			return nil, 0, err
		}
		last = data
		lastQuality = q
		if len(data) <= targetBytes {
			break
		}
	}
	return last, lastQuality, nil
}
