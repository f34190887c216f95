package termquery

import "regexp"

// Request is an escape sequence sent to the terminal, paired with the
// pattern its reply is expected to match. Requests that produce no
// reply, such as mode sets, leave Pattern nil.
type Request struct {
	Seq     string
	Pattern *regexp.Regexp
}

// The request catalogue. Sequences and reply formats follow xterm's
// ctlseqs; replies from other emulators that implement these controls
// use the same shapes.
var (
	// WindowTitle reports the window title: reply ESC ] l title ESC \
	WindowTitle = Request{"\x1b[21t", regexp.MustCompile(`\x1b\]l(.*)\x1b\\`)}

	// IconTitle reports the icon label: reply ESC ] L label ESC \
	IconTitle = Request{"\x1b[20t", regexp.MustCompile(`\x1b\]L(.*)\x1b\\`)}

	// WindowSizePixels reports the window size: reply ESC [ 4 ; height ; width t
	WindowSizePixels = Request{"\x1b[14t", regexp.MustCompile(`\x1b\[4;(\d+);(\d+)t`)}

	// WindowPosition reports the window position: reply ESC [ 3 ; x ; y t
	WindowPosition = Request{"\x1b[13t", regexp.MustCompile(`\x1b\[3;(\d+);(\d+)t`)}

	// CursorPosition reports the cursor position: reply ESC [ row ; col R
	CursorPosition = Request{"\x1b[6n", regexp.MustCompile(`\x1b\[(\d+);(\d+)R`)}

	// TextAreaSize reports the text area size in characters:
	// reply ESC [ 8 ; rows ; cols t
	TextAreaSize = Request{"\x1b[18t", regexp.MustCompile(`\x1b\[8;(\d+);(\d+)t`)}

	// ScreenSize reports the screen size in characters:
	// reply ESC [ 9 ; rows ; cols t
	ScreenSize = Request{"\x1b[19t", regexp.MustCompile(`\x1b\[9;(\d+);(\d+)t`)}

	// ReverseVideoOn and ReverseVideoOff toggle DEC private mode 5.
	// Fire and forget, no reply.
	ReverseVideoOn  = Request{Seq: "\x1b[?5h"}
	ReverseVideoOff = Request{Seq: "\x1b[?5l"}

	// DeviceAttributes asks for primary device attributes:
	// reply ESC [ ? attr ; attr ; ... c
	DeviceAttributes = Request{"\x1b[0c", regexp.MustCompile(`\x1b\[\?([0-9;]+)c`)}
)
