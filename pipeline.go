package pixfit

import (
	"context"
	"image"
	"image/draw"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
)

// Processor runs batches of image transformations. It is stateless apart
// from its logger and safe to reuse across batches.
type Processor struct {
	logger *zap.Logger
}

// NewProcessor returns a Processor logging through logger. A nil logger
// disables logging.
func NewProcessor(logger *zap.Logger) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{logger: logger}
}

// ProcessBatch transcodes files in input order under a single options
// record and returns the records for every file that processed
// successfully, in that same order.
//
// Files that fail to decode or encode are logged and skipped; they never
// abort the batch. The only error ProcessBatch itself returns is the
// pre-flight *UnsupportedFormatError when the requested output format
// cannot be encoded on this host.
//
// Cancellation is cooperative: ctx is polled between files only, so an
// in-flight file always completes. On cancellation the completed prefix is
// returned with a nil error; callers distinguish full completion, partial
// completion, and cancellation before any completion by comparing the
// result count to the input count alongside ctx.Err().
//
// onProgress, when non-nil, fires once after each successful file with a
// strictly increasing completed count.
func (p *Processor) ProcessBatch(ctx context.Context, files []SourceFile, opts Options, onProgress ProgressFunc) ([]ProcessedImage, error) {
	// The probe doubles as warmup: the first encode for a format pays its
	// codec initialization once, here, rather than inside the first file.
	if !FormatSupported(opts.Format) {
		return nil, &UnsupportedFormatError{Format: opts.Format}
	}

	total := len(files)
	p.logger.Info("starting batch",
		zap.Int("files", total),
		zap.String("format", opts.Format.String()),
		zap.Float64("maxSizeKB", opts.MaxSizeKB),
	)

	results := make([]ProcessedImage, 0, total)
	for _, f := range files {
		if ctx != nil {
			select {
			case <-ctx.Done():
				p.logger.Info("batch cancelled",
					zap.Int("completed", len(results)),
					zap.Int("total", total),
				)
				return results, nil
			default:
			}
		}

		rec, err := p.processOne(f, opts)
		if err != nil {
			p.logger.Warn("skipping file",
				zap.String("name", f.Name),
				zap.Error(err),
			)
			continue
		}

		results = append(results, rec)
		if onProgress != nil {
			onProgress(len(results), total)
		}
	}

	p.logger.Info("batch complete",
		zap.Int("processed", len(results)),
		zap.Int("skipped", total-len(results)),
	)
	return results, nil
}

// processOne runs the per-file stages: decode, dimension computation,
// resize, optional corner mask, then size-fitting or direct encode. The
// decoded source is released before encoding so at most one decoded raster
// and one canvas are alive at a time.
func (p *Processor) processOne(f SourceFile, opts Options) (ProcessedImage, error) {
	src, err := decodeSource(f.Data, opts.AutoOrient)
	if err != nil {
		return ProcessedImage{}, &DecodeError{Name: f.Name, Err: err}
	}

	srcW := src.Bounds().Dx()
	srcH := src.Bounds().Dy()
	w, h := FitDimensions(srcW, srcH, opts.MaxWidth, opts.MaxHeight, opts.KeepAspectRatio)

	canvas := renderCanvas(src, w, h, opts.CornerRadius)
	src = nil // decode buffer no longer needed past this point

	var data []byte
	var quality int
	if target := opts.targetBytes(); target > 0 {
		data, quality, err = FitToSize(canvas, opts.Format, target, opts.LossyPNG)
	} else {
		quality = clampQuality(opts.Quality)
		if opts.Format == PNG {
			quality = 100
		}
		data, err = Encode(canvas, opts.Format, quality)
	}
	if err != nil {
		return ProcessedImage{}, err
	}

	p.logger.Debug("processed file",
		zap.String("name", f.Name),
		zap.Int("width", w),
		zap.Int("height", h),
		zap.Int("quality", quality),
		zap.Int("bytesIn", len(f.Data)),
		zap.Int("bytesOut", len(data)),
	)

	return ProcessedImage{
		Data:         data,
		Name:         DeriveFilename(f.Name, opts.Format),
		OriginalName: f.Name,
		OriginalSize: len(f.Data),
		Size:         len(data),
		Width:        w,
		Height:       h,
		Format:       opts.Format,
		Quality:      quality,
	}, nil
}

// renderCanvas scales src to w×h and, for a positive radius, composites it
// through a rounded-rectangle mask onto a fresh transparent canvas. Radius
// 0 skips masking entirely. Formats without an alpha channel render the
// masked corners on the zero-value (black) background.
func renderCanvas(src *image.NRGBA, w, h, radius int) *image.NRGBA {
	var scaled *image.NRGBA
	if w == src.Bounds().Dx() && h == src.Bounds().Dy() {
		scaled = src
	} else {
		scaled = imaging.Resize(src, w, h, imaging.Lanczos)
	}

	if radius <= 0 {
		return scaled
	}

	mask := RoundedRectMask(w, h, radius)
	canvas := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.DrawMask(canvas, canvas.Bounds(), scaled, image.Point{}, mask, image.Point{}, draw.Src)
	return canvas
}
