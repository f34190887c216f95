package sixelterm

import "fmt"

// UnsupportedContentTypeError reports a draw call with content the
// dispatcher cannot route. The offending type is always named; an
// unroutable value must never look like a silent no-op.
type UnsupportedContentTypeError struct {
	Type string
}

func (e *UnsupportedContentTypeError) Error() string {
	return "sixelterm: cannot draw content of type " + e.Type
}

// UnsupportedFormatError reports a pixel buffer whose color model or
// depth has no sixel encoding path.
type UnsupportedFormatError struct {
	Model ColorModel
	Depth int
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("sixelterm: no encoding for %s pixels at %d bits per channel", e.Model, e.Depth)
}

// UnsupportedMediaError reports a display request for a media category
// outside the image family.
type UnsupportedMediaError struct {
	Media string
}

func (e *UnsupportedMediaError) Error() string {
	return fmt.Sprintf("sixelterm: cannot display media category %q", e.Media)
}
