package sixelterm

import (
	"fmt"
	"image"
	_ "image/gif"  // file encoding accepts gif
	_ "image/jpeg" // file encoding accepts jpeg
	_ "image/png"  // file encoding accepts png
	"io"
	"os"

	"github.com/mattn/go-sixel"
)

// PixelFormat is the encoder's format code for raw pixel buffers.
type PixelFormat uint8

const (
	FormatG8 PixelFormat = iota
	FormatGA8
	FormatRGB888
	FormatRGBA8888
)

// formatForModel is the fixed lookup from 8-bit color models to
// encoder format codes. Models absent here cannot be encoded.
var formatForModel = map[ColorModel]PixelFormat{
	Gray:      FormatG8,
	GrayAlpha: FormatGA8,
	RGB:       FormatRGB888,
	RGBA:      FormatRGBA8888,
}

// Encoder converts image data into sixel escape sequences on an output
// stream. It is the boundary to the encoding library; quantization and
// dithering happen behind it.
type Encoder interface {
	// EncodeFile reads and decodes the image file at path and emits it
	// as sixel data.
	EncodeFile(path string) error
	// EncodeBytes emits a raw interleaved 8-bit pixel buffer as sixel
	// data. len(pix) must match width, height and the format's channel
	// count.
	EncodeBytes(pix []byte, width, height int, format PixelFormat) error
}

// NewEncoder returns the default Encoder writing sixel data to w, with
// dithering enabled.
func NewEncoder(w io.Writer) Encoder {
	return &sixelEncoder{w: w}
}

type sixelEncoder struct {
	w io.Writer
}

func (e *sixelEncoder) EncodeFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return e.encode(img)
}

func (e *sixelEncoder) EncodeBytes(pix []byte, width, height int, format PixelFormat) error {
	img, err := imageFromBytes(pix, width, height, format)
	if err != nil {
		return err
	}
	return e.encode(img)
}

func (e *sixelEncoder) encode(img image.Image) error {
	enc := sixel.NewEncoder(e.w)
	enc.Dither = true
	if err := enc.Encode(img); err != nil {
		return fmt.Errorf("encode sixel: %w", err)
	}
	return nil
}

// imageFromBytes wraps a raw interleaved buffer in an image.Image for
// the sixel library. Gray maps onto the stdlib gray type directly;
// the other layouts expand into NRGBA.
func imageFromBytes(pix []byte, width, height int, format PixelFormat) (image.Image, error) {
	var channels int
	switch format {
	case FormatG8:
		channels = 1
	case FormatGA8:
		channels = 2
	case FormatRGB888:
		channels = 3
	case FormatRGBA8888:
		channels = 4
	default:
		return nil, fmt.Errorf("sixelterm: unknown pixel format code %d", format)
	}
	if len(pix) != width*height*channels {
		return nil, fmt.Errorf("sixelterm: pixel buffer is %d bytes, want %d for %dx%d with %d channels",
			len(pix), width*height*channels, width, height, channels)
	}

	switch format {
	case FormatG8:
		return &image.Gray{Pix: pix, Stride: width, Rect: image.Rect(0, 0, width, height)}, nil
	case FormatRGBA8888:
		return &image.NRGBA{Pix: pix, Stride: 4 * width, Rect: image.Rect(0, 0, width, height)}, nil
	}

	out := image.NewNRGBA(image.Rect(0, 0, width, height))
	n := width * height
	for i := 0; i < n; i++ {
		src := i * channels
		dst := i * 4
		switch format {
		case FormatGA8:
			out.Pix[dst+0] = pix[src]
			out.Pix[dst+1] = pix[src]
			out.Pix[dst+2] = pix[src]
			out.Pix[dst+3] = pix[src+1]
		case FormatRGB888:
			out.Pix[dst+0] = pix[src+0]
			out.Pix[dst+1] = pix[src+1]
			out.Pix[dst+2] = pix[src+2]
			out.Pix[dst+3] = 0xff
		}
	}
	return out, nil
}
