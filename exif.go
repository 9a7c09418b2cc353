package pixfit

import (
	"encoding/binary"
	"image"
	"io"
)

// orientation is an EXIF orientation tag value (1–8).
type orientation int

const (
	orientNormal      orientation = 1
	orientFlipH       orientation = 2
	orientRotate180   orientation = 3
	orientFlipV       orientation = 4
	orientTranspose   orientation = 5 // rotate 270 CW then flip horizontal
	orientRotate90CW  orientation = 6
	orientTransverse  orientation = 7 // rotate 90 CW then flip horizontal
	orientRotate270CW orientation = 8
)

const orientationTag = 0x0112

// readOrientation extracts the EXIF orientation tag from a JPEG stream.
// It scans segment headers up to the first APP1 block and reads only that
// one tag, nothing else from the EXIF tree. Non-JPEG input, missing EXIF,
// or any parse trouble yields orientNormal.
func readOrientation(r io.ReadSeeker) orientation {
	var soi [2]byte
	if _, err := io.ReadFull(r, soi[:]); err != nil {
		return orientNormal
	}
	if soi[0] != 0xFF || soi[1] != 0xD8 {
		return orientNormal // not a JPEG
	}

	for {
		var marker [2]byte
		if _, err := io.ReadFull(r, marker[:]); err != nil {
			return orientNormal
		}
		if marker[0] != 0xFF {
			return orientNormal
		}
		for marker[1] == 0xFF { // padding
			if _, err := io.ReadFull(r, marker[1:]); err != nil {
				return orientNormal
			}
		}

		var lenBuf [2]byte
		if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
			return orientNormal
		}
		segLen := int(binary.BigEndian.Uint16(lenBuf[:])) - 2
		if segLen < 0 {
			return orientNormal
		}

		switch marker[1] {
		case 0xE1: // APP1 carries EXIF
			return parseExifSegment(r, segLen)
		case 0xDA: // SOS: image data follows, no more metadata
			return orientNormal
		}

		if _, err := r.Seek(int64(segLen), io.SeekCurrent); err != nil {
			return orientNormal
		}
	}
}

// parseExifSegment reads an APP1 payload and walks IFD0 for the
// orientation tag.
func parseExifSegment(r io.Reader, segLen int) orientation {
	if segLen < 14 {
		return orientNormal
	}
	data := make([]byte, segLen)
	if _, err := io.ReadFull(r, data); err != nil {
		return orientNormal
	}

	if len(data) < 6 || string(data[:4]) != "Exif" || data[4] != 0 || data[5] != 0 {
		return orientNormal
	}

	tiff := data[6:]
	if len(tiff) < 8 {
		return orientNormal
	}

	var bo binary.ByteOrder
	switch string(tiff[:2]) {
	case "II":
		bo = binary.LittleEndian
	case "MM":
		bo = binary.BigEndian
	default:
		return orientNormal
	}
	if bo.Uint16(tiff[2:4]) != 42 {
		return orientNormal
	}

	ifd := int(bo.Uint32(tiff[4:8]))
	if ifd < 8 || ifd+2 > len(tiff) {
		return orientNormal
	}
	entries := int(bo.Uint16(tiff[ifd : ifd+2]))
	ifd += 2

	for i := 0; i < entries; i++ {
		off := ifd + i*12
		if off+12 > len(tiff) {
			break
		}
		if bo.Uint16(tiff[off:off+2]) != orientationTag {
			continue
		}
		if bo.Uint16(tiff[off+2:off+4]) != 3 { // must be SHORT
			return orientNormal
		}
		val := bo.Uint16(tiff[off+8 : off+10])
		if val >= 1 && val <= 8 {
			return orientation(val)
		}
		return orientNormal
	}
	return orientNormal
}

// applyOrientation rotates/flips img so it displays upright with
// orientation 1. Unknown values return the image unchanged.
func applyOrientation(img *image.NRGBA, o orientation) *image.NRGBA {
	switch o {
	case orientFlipH:
		return flipHorizontal(img)
	case orientRotate180:
		return rotate180(img)
	case orientFlipV:
		return flipVertical(img)
	case orientTranspose:
		return flipHorizontal(rotate270CW(img))
	case orientRotate90CW:
		return rotate90CW(img)
	case orientTransverse:
		return flipHorizontal(rotate90CW(img))
	case orientRotate270CW:
		return rotate270CW(img)
	default:
		return img
	}
}
