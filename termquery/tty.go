package termquery

import (
	"io"
	"os"
)

// TTY is the bidirectional stream connected to the controlling
// terminal. An *os.File opened on a terminal device satisfies it. The
// descriptor is used for the raw mode toggle and for waiting on reply
// bytes, so Fd must return the descriptor the reads come from.
type TTY interface {
	io.ReadWriter
	Fd() uintptr
}

// Open returns the controlling terminal as a TTY. Callers own the file
// and should close it when the session ends.
func Open() (*os.File, error) {
	return os.OpenFile("/dev/tty", os.O_RDWR, 0)
}
