package sixelterm

import (
	"image"
	"io"
	"strings"

	"github.com/nfnt/resize"

	"git.sr.ht/~ghost08/sixelterm/termquery"
)

// Display is a capability-gated sink for image content. It holds one
// output stream for its lifetime and is invoked generically by a host
// display broker: the broker asks CanDisplay, then hands content to
// Show.
type Display struct {
	w    io.Writer
	opts []Option
}

// NewDisplay creates a display writing to w. One Display per terminal
// session; opts apply to every draw it performs. When w is a terminal
// its reported cell pixel size replaces the 8x16 default that
// WithResize scales against.
func NewDisplay(w io.Writer, opts ...Option) *Display {
	if tty, ok := w.(termquery.TTY); ok {
		cellW, cellH := termquery.CellSize(tty)
		opts = append([]Option{withCellSize(cellW, cellH)}, opts...)
	}
	return &Display{w: w, opts: opts}
}

// CanDisplay reports whether the target handles the given media
// category: anything in the image family. This is a coarse predicate;
// Draw may still reject a buffer whose pixel format has no sixel
// mapping.
func (d *Display) CanDisplay(media string) bool {
	return strings.HasPrefix(media, "image")
}

// Show renders content if its media category is displayable.
func (d *Display) Show(media string, content any) error {
	if !d.CanDisplay(media) {
		return &UnsupportedMediaError{Media: media}
	}
	return Draw(d.w, content, d.opts...)
}

// Fit downscales img to fit within cols x rows terminal cells of
// cellW x cellH pixels each, preserving aspect ratio. One row of
// vertical margin is left so an image placed near the bottom does not
// force a scroll. Images already small enough come back unchanged.
func Fit(img image.Image, cols, rows, cellW, cellH int) image.Image {
	if rows > 1 {
		rows--
	}
	return resize.Thumbnail(uint(cols*cellW), uint(rows*cellH), img, resize.Lanczos3)
}
