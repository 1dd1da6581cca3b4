package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
)

// ErrInvalidImage is returned when the profile image is not a decodable JPEG or PNG.
var ErrInvalidImage = errors.New("invalid profile image")

const (
	imageTypePNG = "PNG"
	imageTypeJPG = "JPG"

	defaultMaxImagePixels = 320
	jpegQuality           = 90
)

var (
	pngMagic  = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	jpegMagic = []byte{0xFF, 0xD8, 0xFF}
)

type preparedImage struct {
	Type   string
	Data   []byte
	Width  int
	Height int
}

// SniffImageType returns "PNG", "JPG" or "" from the leading magic bytes.
func SniffImageType(data []byte) string {
	switch {
	case bytes.HasPrefix(data, pngMagic):
		return imageTypePNG
	case bytes.HasPrefix(data, jpegMagic):
		return imageTypeJPG
	default:
		return ""
	}
}

// prepareImage decodes the upload, bounds it to maxPixels on its longest
// side and re-encodes it in a form fpdf can embed. PNGs are always re-encoded
// as 8-bit non-interlaced since fpdf rejects 16-bit and interlaced files.
func prepareImage(data []byte, maxPixels int) (*preparedImage, error) {
	kind := SniffImageType(data)
	if kind == "" {
		return nil, fmt.Errorf("%w: expected JPEG or PNG", ErrInvalidImage)
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	bounds := src.Bounds()
	width, height := fitWithin(bounds.Dx(), bounds.Dy(), maxPixels)
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%w: empty image", ErrInvalidImage)
	}
	resized := width != bounds.Dx() || height != bounds.Dy()

	if kind == imageTypeJPG && !resized {
		return &preparedImage{Type: kind, Data: data, Width: width, Height: height}, nil
	}

	var buf bytes.Buffer
	switch kind {
	case imageTypePNG:
		dst := image.NewNRGBA(image.Rect(0, 0, width, height))
		if resized {
			draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)
		} else {
			draw.Draw(dst, dst.Bounds(), src, bounds.Min, draw.Src)
		}
		err = png.Encode(&buf, dst)
	default:
		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)
		err = jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality})
	}
	if err != nil {
		return nil, fmt.Errorf("encode profile image: %w", err)
	}

	return &preparedImage{Type: kind, Data: buf.Bytes(), Width: width, Height: height}, nil
}

// fitWithin scales w×h down so neither side exceeds limit, keeping the aspect ratio.
func fitWithin(w, h, limit int) (int, int) {
	if limit <= 0 || (w <= limit && h <= limit) {
		return w, h
	}
	if w >= h {
		nh := h * limit / w
		if nh < 1 {
			nh = 1
		}
		return limit, nh
	}
	nw := w * limit / h
	if nw < 1 {
		nw = 1
	}
	return nw, limit
}
