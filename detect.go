package sixelterm

import (
	"os"
	"strings"

	"git.sr.ht/~ghost08/sixelterm/termquery"
)

// Supported reports whether the terminal attached to tty understands
// sixel graphics. The SIXELTERM_GRAPHICS environment variable
// overrides detection: "always" forces true, "never" forces false.
// Otherwise the terminal is asked directly with a device attributes
// query; when that comes back negative or unanswered, environment
// heuristics for known sixel-capable emulators decide.
//
// The result is advisory. Draw is never blocked on it; a host UI
// should warn instead.
func Supported(tty termquery.TTY) bool {
	switch os.Getenv("SIXELTERM_GRAPHICS") {
	case "always":
		return true
	case "never":
		return false
	}

	if termquery.NewQuerier(tty).HasSixel() {
		tlog.Printf("detect: terminal advertises sixel in device attributes")
		return true
	}
	return envSuggestsSixel()
}

// envSuggestsSixel recognizes emulators known to support sixel but
// which may not answer, or not be reachable by, a device attributes
// query (e.g. when running under a multiplexer).
func envSuggestsSixel() bool {
	term := os.Getenv("TERM")
	termProgram := os.Getenv("TERM_PROGRAM")

	// foot (Wayland terminal)
	if term == "foot" || term == "foot-extra" {
		return true
	}

	switch termProgram {
	case "mintty", "iTerm.app", "WezTerm", "contour":
		return true
	}
	if os.Getenv("CONTOUR_PROFILE") != "" {
		return true
	}

	// mlterm ships with sixel enabled
	if term == "mlterm" || os.Getenv("MLTERM") != "" {
		return true
	}

	// xterm supports sixel when built with --enable-sixel-graphics;
	// TERM alone cannot confirm the build flag, so this is only a hint
	// used after the direct query went unanswered.
	if term == "xterm" || strings.HasPrefix(term, "xterm-") {
		return true
	}

	return false
}
