//go:build unix

package termquery

import (
	"bytes"
	"errors"
	"io"
	"time"

	"golang.org/x/sys/unix"
)

// ErrNoReply is returned when the terminal sends nothing back within
// the read window. Some emulators ignore queries they do not
// implement, so callers usually treat this as absence of a capability
// rather than a failure.
var ErrNoReply = errors.New("termquery: no reply from terminal")

// drainWindow is how long to keep reading once the first bytes of a
// reply have arrived. Replies are short and arrive in one or two
// writes, so this only needs to cover scheduling jitter.
const drainWindow = 20 * time.Millisecond

// readReply collects whatever the terminal sends back. It waits up to
// wait for the first byte, then keeps draining while more data arrives
// within drainWindow of the previous chunk.
func readReply(tty TTY, wait time.Duration) (string, error) {
	var buf bytes.Buffer
	tmp := make([]byte, 256)
	window := wait
	for {
		ready, err := waitReadable(tty.Fd(), window)
		if err != nil {
			return buf.String(), err
		}
		if !ready {
			break
		}
		n, err := tty.Read(tmp)
		if n > 0 {
			buf.Write(tmp[:n])
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return buf.String(), err
		}
		window = drainWindow
	}
	if buf.Len() == 0 {
		return "", ErrNoReply
	}
	return buf.String(), nil
}

func waitReadable(fd uintptr, timeout time.Duration) (bool, error) {
	pfd := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
	for {
		n, err := unix.Poll(pfd, int(timeout.Milliseconds()))
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return false, err
		}
		return n > 0, nil
	}
}
