//go:build unix

package termquery

import (
	"golang.org/x/sys/unix"
)

// WindowSize reports the terminal size in characters and pixels via
// TIOCGWINSZ. Pixel fields are zero on terminals that do not report
// them.
func WindowSize(tty TTY) (rows, cols, xpixel, ypixel int, err error) {
	ws, err := unix.IoctlGetWinsize(int(tty.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	return int(ws.Row), int(ws.Col), int(ws.Xpixel), int(ws.Ypixel), nil
}

// CellSize reports the size of one character cell in pixels. Terminals
// that do not report pixel dimensions get the common 8x16 fallback.
func CellSize(tty TTY) (width, height int) {
	ws, err := unix.IoctlGetWinsize(int(tty.Fd()), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 || ws.Xpixel == 0 || ws.Ypixel == 0 {
		return 8, 16
	}
	return int(ws.Xpixel) / int(ws.Col), int(ws.Ypixel) / int(ws.Row)
}
