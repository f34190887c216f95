package sixelterm

import "io"

type config struct {
	flip       bool
	status     bool
	enc        Encoder
	resizeCols int
	resizeRows int
	cellW      int
	cellH      int
}

type Option func(*config)

func newConfig(w io.Writer, opts ...Option) *config {
	cfg := &config{
		flip:   true,
		status: true,
		cellW:  8,
		cellH:  16,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.enc == nil {
		cfg.enc = NewEncoder(w)
	}
	return cfg
}

// WithFlip controls the transpose applied to pixel buffers before
// encoding. It is on by default: buffer sources are commonly
// column-major while the encoder expects row-major data, so a buffer
// of R rows and C cols encodes as a width=R, height=C image. Sources
// that are already row-major, such as NewBufferFromImage, should
// disable it.
func WithFlip(on bool) Option {
	return func(cfg *config) {
		cfg.flip = on
	}
}

// WithStatus controls the one-line status message written to the
// stream before a buffer is encoded.
func WithStatus(on bool) Option {
	return func(cfg *config) {
		cfg.status = on
	}
}

// WithEncoder substitutes the sixel encoder. The default encodes to
// the draw call's stream.
func WithEncoder(enc Encoder) Option {
	return func(cfg *config) {
		cfg.enc = enc
	}
}

// WithResize bounds the encoded image to cols x rows terminal cells,
// downscaling through Fit before the data reaches the encoder. The
// cell pixel size defaults to 8x16; NewDisplay substitutes the
// terminal's real cell size when its stream is one. A file path drawn
// under a resize bound is decoded locally instead of being forwarded
// to the encoder untouched.
func WithResize(cols, rows int) Option {
	return func(cfg *config) {
		cfg.resizeCols = cols
		cfg.resizeRows = rows
	}
}

// withCellSize records the cell pixel size WithResize scales against.
func withCellSize(w, h int) Option {
	return func(cfg *config) {
		cfg.cellW = w
		cfg.cellH = h
	}
}
