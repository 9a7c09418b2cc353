package pixfit

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"sync"

	"github.com/chai2010/webp"
	"github.com/gen2brain/avif"
)

// Quality ceilings per lossy codec. Above these values the encoders drift
// into near-lossless modes whose output size grows disproportionately, so
// size-driven callers never probe past them.
const (
	webpQualityCeiling = 95
	jpegQualityCeiling = 98
	avifQualityCeiling = 90
)

// encodeFunc encodes an NRGBA raster at a 1–100 quality.
type encodeFunc func(img *image.NRGBA, quality int) ([]byte, error)

// codecs is the per-format dispatch table. Adding a format means adding a
// variant here plus its ceiling in qualityCeiling.
var codecs = map[Format]encodeFunc{
	WEBP: encodeWEBP,
	AVIF: encodeAVIF,
	PNG:  encodePNG,
	JPEG: encodeJPEGBytes,
}

// Encode encodes img in the given format at the given quality (1–100).
// PNG ignores quality and always encodes lossless. Every call is
// independent and stateless; an empty result is reported as *EncodeError.
func Encode(img *image.NRGBA, format Format, quality int) ([]byte, error) {
	enc, ok := codecs[format]
	if !ok {
		return nil, fmt.Errorf("pixfit: unknown format %v", format)
	}
	data, err := enc(img, clampQuality(quality))
	if err != nil {
		return nil, fmt.Errorf("pixfit: encode %s: %w", format, err)
	}
	if len(data) == 0 {
		return nil, &EncodeError{Format: format}
	}
	return data, nil
}

// qualityCeiling is the highest quality the size fitter will request for a
// format. Lossless PNG has no meaningful ceiling.
func qualityCeiling(f Format) int {
	switch f {
	case WEBP:
		return webpQualityCeiling
	case AVIF:
		return avifQualityCeiling
	case JPEG:
		return jpegQualityCeiling
	default:
		return 100
	}
}

func clampQuality(q int) int {
	if q < 1 {
		return 1
	}
	if q > 100 {
		return 100
	}
	return q
}

func encodeWEBP(img *image.NRGBA, quality int) ([]byte, error) {
	var buf bytes.Buffer
	opts := &webp.Options{Quality: float32(quality)}
	if quality >= 100 {
		opts.Lossless = true
	}
	if err := webp.Encode(&buf, img, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeAVIF(img *image.NRGBA, quality int) ([]byte, error) {
	var buf bytes.Buffer
	opts := avif.Options{
		Quality:      quality,
		QualityAlpha: quality,
		Speed:        6,
	}
	if err := avif.Encode(&buf, img, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// encodeJPEGBytes uses an RGBA view for opaque images, which skips the
// per-pixel alpha conversion inside the encoder.
func encodeJPEGBytes(img *image.NRGBA, quality int) ([]byte, error) {
	var buf bytes.Buffer
	var src image.Image = img
	if isOpaque(img) {
		src = &image.RGBA{Pix: img.Pix, Stride: img.Stride, Rect: img.Rect}
	}
	if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodePNG(img *image.NRGBA, _ int) ([]byte, error) {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// codecProbes holds the memoized support probe per format: initialized on
// first use, retained for the process lifetime, never torn down.
var codecProbes [JPEG + 1]struct {
	once sync.Once
	ok   bool
}

// FormatSupported reports whether the host can encode the given format,
// determined by a single 1×1 trial encode the first time each format is
// asked about. Call it before committing a batch to a format; the pipeline
// also uses it as a pre-flight check and codec warmup.
func FormatSupported(format Format) bool {
	if format < WEBP || format > JPEG {
		return false
	}
	p := &codecProbes[format]
	p.once.Do(func() {
		probe := image.NewNRGBA(image.Rect(0, 0, 1, 1))
		probe.Pix[3] = 0xff
		data, err := Encode(probe, format, 80)
		p.ok = err == nil && len(data) > 0
	})
	return p.ok
}
