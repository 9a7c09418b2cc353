package pixfit

import (
	"bytes"
	"fmt"
	"image"

	// Register decoders for every accepted source format. The avif import
	// in codec.go registers the AVIF decoder as a side effect.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// decodeSource interprets a raw blob as an image and returns it as NRGBA.
// When autoOrient is set and the blob is a JPEG with an EXIF orientation
// tag, the pixels are rotated so the image processes the way it displays.
func decodeSource(data []byte, autoOrient bool) (*image.NRGBA, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, fmt.Errorf("empty image (%dx%d)", bounds.Dx(), bounds.Dy())
	}

	src := toNRGBA(img)
	if autoOrient {
		if o := readOrientation(bytes.NewReader(data)); o > orientNormal {
			src = applyOrientation(src, o)
		}
	}
	return src, nil
}
