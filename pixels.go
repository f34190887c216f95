package sixelterm

import (
	"image"
	"image/draw"
)

// ColorModel identifies the channel layout of a PixelBuffer.
type ColorModel uint8

const (
	Gray ColorModel = iota
	GrayAlpha
	RGB
	RGBA
)

func (m ColorModel) String() string {
	switch m {
	case Gray:
		return "gray"
	case GrayAlpha:
		return "gray+alpha"
	case RGB:
		return "rgb"
	case RGBA:
		return "rgba"
	default:
		return "unknown"
	}
}

func (m ColorModel) channels() int {
	switch m {
	case Gray:
		return 1
	case GrayAlpha:
		return 2
	case RGB:
		return 3
	case RGBA:
		return 4
	default:
		return 0
	}
}

// PixelBuffer is a 2-D grid of interleaved color samples. Samples are
// stored row-major: the channels of sample (r, c) start at
// (r*Cols+c) * channels * Depth/8. When Depth is 16 each channel is a
// big-endian byte pair. Every sample shares the one Model and Depth.
type PixelBuffer struct {
	Pix   []byte
	Rows  int
	Cols  int
	Model ColorModel
	Depth int
}

// PixelStack is an ordered set of frames, as produced by layered or
// animated sources. All frames share one pixel format.
type PixelStack struct {
	Frames []*PixelBuffer
}

// NewBufferFromImage converts a decoded image into an RGBA buffer.
// The result is row-major, so it draws correctly with flipping
// disabled.
func NewBufferFromImage(img image.Image) *PixelBuffer {
	b := img.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
	return &PixelBuffer{
		Pix:   nrgba.Pix,
		Rows:  b.Dy(),
		Cols:  b.Dx(),
		Model: RGBA,
		Depth: 8,
	}
}

// transpose returns a copy with rows and columns swapped. Sample
// (r, c) of the source becomes sample (c, r) of the result; channel
// bytes move as a block, so it works for any depth.
func (b *PixelBuffer) transpose() *PixelBuffer {
	sample := b.Model.channels() * b.Depth / 8
	out := &PixelBuffer{
		Pix:   make([]byte, len(b.Pix)),
		Rows:  b.Cols,
		Cols:  b.Rows,
		Model: b.Model,
		Depth: b.Depth,
	}
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			src := (r*b.Cols + c) * sample
			dst := (c*b.Rows + r) * sample
			copy(out.Pix[dst:dst+sample], b.Pix[src:src+sample])
		}
	}
	return out
}

// normalize8 reduces the buffer to 8 bits per channel, preserving the
// channel layout. Buffers already at 8 bits are returned unchanged,
// which makes the operation idempotent. 16-bit channels keep their
// high byte.
func (b *PixelBuffer) normalize8() (*PixelBuffer, error) {
	switch b.Depth {
	case 8:
		return b, nil
	case 16:
		out := &PixelBuffer{
			Pix:   make([]byte, len(b.Pix)/2),
			Rows:  b.Rows,
			Cols:  b.Cols,
			Model: b.Model,
			Depth: 8,
		}
		for i := range out.Pix {
			out.Pix[i] = b.Pix[2*i]
		}
		return out, nil
	default:
		return nil, &UnsupportedFormatError{Model: b.Model, Depth: b.Depth}
	}
}
