// Package sixelterm renders raster images inside sixel-capable
// terminals. Draw routes a file path, a pixel buffer or a layered
// pixel stack to the sixel encoder; Display wraps Draw behind a
// media-category gate for host display brokers; Supported asks the
// terminal itself whether sixel output will work.
package sixelterm

import (
	"fmt"
	"image"
	"io"
	"os"
)

// Draw renders content to w as sixel escape sequences. Content may be
// a path to an image file, a *PixelBuffer, or a *PixelStack. Only the
// first frame of a stack is rendered; animation is not supported.
// Anything else fails with *UnsupportedContentTypeError naming the
// offending type.
func Draw(w io.Writer, content any, opts ...Option) error {
	cfg := newConfig(w, opts...)
	switch c := content.(type) {
	case string:
		tlog.Printf("draw: file %s", c)
		if cfg.resizeCols > 0 {
			return drawFileFitted(c, cfg)
		}
		return cfg.enc.EncodeFile(c)
	case *PixelBuffer:
		return drawBuffer(w, c, cfg)
	case *PixelStack:
		if len(c.Frames) == 0 {
			return &UnsupportedContentTypeError{Type: "empty pixel stack"}
		}
		return drawBuffer(w, c.Frames[0], cfg)
	default:
		return &UnsupportedContentTypeError{Type: fmt.Sprintf("%T", content)}
	}
}

func drawBuffer(w io.Writer, buf *PixelBuffer, cfg *config) error {
	if cfg.flip {
		buf = buf.transpose()
	}
	buf, err := buf.normalize8()
	if err != nil {
		return err
	}
	format, ok := formatForModel[buf.Model]
	if !ok {
		return &UnsupportedFormatError{Model: buf.Model, Depth: buf.Depth}
	}
	if cfg.resizeCols > 0 {
		img, err := imageFromBytes(buf.Pix, buf.Cols, buf.Rows, format)
		if err != nil {
			return err
		}
		fitted := Fit(img, cfg.resizeCols, cfg.resizeRows, cfg.cellW, cfg.cellH)
		if fitted != img {
			buf = NewBufferFromImage(fitted)
			format = formatForModel[buf.Model]
		}
	}
	tlog.Printf("draw: buffer %dx%d %s", buf.Cols, buf.Rows, buf.Model)
	if cfg.status {
		fmt.Fprintf(w, "pixel buffer %dx%d %s\r\n", buf.Cols, buf.Rows, buf.Model)
	}
	return cfg.enc.EncodeBytes(buf.Pix, buf.Cols, buf.Rows, format)
}

// drawFileFitted decodes the file locally so the image can be
// downscaled to the resize bound before it reaches the encoder.
func drawFileFitted(path string, cfg *config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	buf := NewBufferFromImage(Fit(img, cfg.resizeCols, cfg.resizeRows, cfg.cellW, cfg.cellH))
	return cfg.enc.EncodeBytes(buf.Pix, buf.Cols, buf.Rows, FormatRGBA8888)
}
