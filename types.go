// Package pixfit is a client-side image transcoding toolkit: it resizes,
// masks (rounded corners), and re-encodes batches of raster images into
// WEBP, AVIF, PNG, or JPEG, optionally searching for the encoder quality
// that keeps each output under a byte-size budget.
//
// The package is a library with no server, storage, or CLI surface. A batch
// is processed strictly sequentially under a single shared Options record,
// with progress callbacks after each completed file and cooperative
// cancellation between files.
package pixfit

import (
	"fmt"
	"strings"
)

// Version is the library version.
const Version = "1.0.0"

// Format identifies an output image format.
// The zero value is WEBP, the default output format.
type Format int

const (
	// WEBP is the default lossy output format.
	WEBP Format = iota
	// AVIF offers the best compression but the slowest encoder.
	AVIF
	// PNG is lossless; quality settings do not apply to it.
	PNG
	// JPEG for broad compatibility with opaque images.
	JPEG
)

func (f Format) String() string {
	switch f {
	case WEBP:
		return "WEBP"
	case AVIF:
		return "AVIF"
	case PNG:
		return "PNG"
	case JPEG:
		return "JPEG"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Extension returns the canonical file extension for the format, without
// the leading dot.
func (f Format) Extension() string {
	switch f {
	case AVIF:
		return "avif"
	case PNG:
		return "png"
	case JPEG:
		return "jpg"
	default:
		return "webp"
	}
}

// ParseFormat converts a format name ("webp", "avif", "png", "jpg"/"jpeg")
// to a Format. Matching is case-insensitive.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "webp":
		return WEBP, nil
	case "avif":
		return AVIF, nil
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	default:
		return WEBP, fmt.Errorf("pixfit: unknown format %q", s)
	}
}

// Options configures one batch. Exactly one of manual quality and
// size-fitting is active: a positive MaxSizeKB switches the batch to
// size-fitting mode and Quality is ignored.
type Options struct {
	// Format is the output format (default: WEBP, the zero value).
	Format Format

	// Quality is the encoder quality, 1–100. Ignored when MaxSizeKB is set,
	// and always ignored for PNG (treated as 100, lossless).
	Quality int

	// CornerRadius rounds the output corners by this many pixels.
	// 0 disables masking entirely. RadiusFull means "fully round";
	// any value is clamped per-image to half the shorter output dimension.
	CornerRadius int

	// MaxSizeKB, when positive, caps the output size in kilobytes. The
	// encoder quality is then found by bounded binary search (see FitToSize)
	// and Quality is ignored.
	MaxSizeKB float64

	// MaxWidth constrains the output width in pixels. 0 means no bound.
	MaxWidth int

	// MaxHeight constrains the output height in pixels. 0 means no bound.
	MaxHeight int

	// KeepAspectRatio preserves the source aspect ratio when applying
	// MaxWidth/MaxHeight (default: true). When false, each bound is applied
	// to its axis independently, which may distort.
	KeepAspectRatio bool

	// AutoOrient reads JPEG EXIF orientation and rotates the source so it
	// processes the way it displays (default: true).
	AutoOrient bool

	// LossyPNG allows the quantized-PNG ladder inside size-fitting for PNG
	// output. When false (the default), PNG bypasses size-fitting and is
	// always encoded lossless.
	LossyPNG bool
}

// DefaultOptions returns the defaults for general use: WEBP at quality 90,
// aspect ratio preserved, EXIF auto-orientation on.
func DefaultOptions() Options {
	return Options{
		Format:          WEBP,
		Quality:         90,
		KeepAspectRatio: true,
		AutoOrient:      true,
	}
}

// targetBytes converts MaxSizeKB to a whole byte budget; 0 disables fitting.
func (o Options) targetBytes() int {
	if o.MaxSizeKB <= 0 {
		return 0
	}
	return int(o.MaxSizeKB * 1024)
}

// SourceFile is one raw input: the original filename and the undecoded
// image bytes, however the caller obtained them.
type SourceFile struct {
	Name string
	Data []byte
}

// ProcessedImage is the immutable output record for one successfully
// processed file. The caller owns it once returned.
type ProcessedImage struct {
	// Data is the encoded output.
	Data []byte

	// Name is the derived output filename (original base + format extension).
	Name string

	// OriginalName is the input filename as supplied.
	OriginalName string

	// OriginalSize is the input blob size in bytes.
	OriginalSize int

	// Size is len(Data).
	Size int

	// Width and Height are the output pixel dimensions.
	Width  int
	Height int

	// Format is the output format.
	Format Format

	// Quality is the encoder quality actually applied (100 for PNG).
	Quality int
}

// SavingsPercent reports the share of bytes saved relative to the input.
// Negative when the output grew.
func (p ProcessedImage) SavingsPercent() float64 {
	if p.OriginalSize <= 0 {
		return 0
	}
	return (1 - float64(p.Size)/float64(p.OriginalSize)) * 100
}

// String returns a one-line summary of the record.
func (p ProcessedImage) String() string {
	return fmt.Sprintf(
		"%s | %s Q=%d | %dx%d | %s → %s (%.1f%% saved)",
		p.Name, p.Format, p.Quality, p.Width, p.Height,
		humanBytes(int64(p.OriginalSize)), humanBytes(int64(p.Size)),
		p.SavingsPercent(),
	)
}

// ProgressFunc is invoked after each successfully processed file with the
// number of completed files so far and the total number of inputs. The
// completed count is strictly increasing and follows input order.
type ProgressFunc func(completed, total int)

// BatchSummary aggregates a batch outcome.
type BatchSummary struct {
	Inputs    int
	Processed int
	Skipped   int
	BytesIn   int64
	BytesOut  int64
}

// Summarize computes aggregate statistics for a batch. inputs is the
// original input count; files missing from results were skipped.
func Summarize(results []ProcessedImage, inputs int) BatchSummary {
	s := BatchSummary{
		Inputs:    inputs,
		Processed: len(results),
		Skipped:   inputs - len(results),
	}
	for _, r := range results {
		s.BytesIn += int64(r.OriginalSize)
		s.BytesOut += int64(r.Size)
	}
	return s
}

// String returns a human-readable batch summary.
func (s BatchSummary) String() string {
	return fmt.Sprintf(
		"Batch: %d/%d processed | %s → %s",
		s.Processed, s.Inputs, humanBytes(s.BytesIn), humanBytes(s.BytesOut),
	)
}

// DecodeError reports a source blob that could not be interpreted as an
// image. The pipeline recovers from it per-file: the file is skipped and
// the batch continues.
type DecodeError struct {
	Name string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("pixfit: decode %q: %v", e.Name, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError reports a codec that produced no usable output for the
// requested format.
type EncodeError struct {
	Format Format
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("pixfit: %s encoder produced no output", e.Format)
}

// UnsupportedFormatError reports a format the host cannot encode. It is a
// pre-flight rejection, surfaced before any file is processed.
type UnsupportedFormatError struct {
	Format Format
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("pixfit: %s encoding is not available on this host", e.Format)
}
