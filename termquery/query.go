// Package termquery interrogates the terminal attached to a tty
// descriptor: cursor and window geometry, titles, and graphics
// capability via primary device attributes. Every exchange briefly
// puts the terminal in raw mode and restores the prior mode on all
// exit paths.
//
// The raw mode toggle and the reply stream are global per descriptor.
// Callers must serialize all exchanges on one TTY through a single
// Querier; overlapping queries would corrupt each other's mode state
// and interleave reads.
package termquery

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"
)

// ProtocolError reports a terminal reply that did not match the
// expected pattern. The raw reply is carried for diagnostics.
type ProtocolError struct {
	Request string
	Reply   string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("termquery: reply %q to request %q did not match the expected pattern", e.Reply, e.Request)
}

// DefaultTimeout is how long a Querier waits for the first byte of a
// reply before giving up. Unanswered queries would otherwise block
// forever on emulators that ignore them.
const DefaultTimeout = 200 * time.Millisecond

// Querier performs request/response exchanges with one terminal.
type Querier struct {
	tty     TTY
	timeout time.Duration
}

type Option func(*Querier)

// WithTimeout sets the wait for the first reply byte.
func WithTimeout(d time.Duration) Option {
	return func(q *Querier) {
		q.timeout = d
	}
}

func NewQuerier(tty TTY, opts ...Option) *Querier {
	q := &Querier{
		tty:     tty,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Query sends req and matches the reply against req.Pattern, returning
// the capture groups in pattern order. A reply that does not match
// yields a *ProtocolError carrying the raw text.
func (q *Querier) Query(req Request) ([]string, error) {
	groups, _, err := q.queryGroups(req)
	return groups, err
}

// queryGroups also hands back the raw decoded reply so callers that
// parse further can report it on their own failures.
func (q *Querier) queryGroups(req Request) (groups []string, raw string, err error) {
	if req.Pattern == nil {
		return nil, "", errors.New("termquery: request expects no reply, use Command")
	}
	raw, err = q.exchange(req)
	if err != nil {
		return nil, "", err
	}
	m := req.Pattern.FindStringSubmatch(raw)
	if m == nil {
		return nil, raw, &ProtocolError{Request: req.Seq, Reply: raw}
	}
	return m[1:], raw, nil
}

// QueryNumbers is Query with every capture group parsed as an integer.
func (q *Querier) QueryNumbers(req Request) ([]int, error) {
	nums, _, err := q.numbers(req)
	return nums, err
}

func (q *Querier) numbers(req Request) (nums []int, raw string, err error) {
	groups, raw, err := q.queryGroups(req)
	if err != nil {
		return nil, raw, err
	}
	nums = make([]int, len(groups))
	for i, g := range groups {
		n, err := strconv.Atoi(g)
		if err != nil {
			return nil, raw, &ProtocolError{Request: req.Seq, Reply: raw}
		}
		nums[i] = n
	}
	return nums, raw, nil
}

// Command writes a fire-and-forget sequence. No reply is read, but the
// terminal still passes through raw mode for the write.
func (q *Querier) Command(req Request) error {
	sess, err := enterRaw(int(q.tty.Fd()))
	if err != nil {
		return err
	}
	defer sess.restore()
	if _, err := io.WriteString(q.tty, req.Seq); err != nil {
		return fmt.Errorf("write request: %w", err)
	}
	return nil
}

// exchange runs one write + read cycle under a raw mode session. The
// prior terminal mode is restored whether the read succeeds, times
// out, or fails.
func (q *Querier) exchange(req Request) (string, error) {
	sess, err := enterRaw(int(q.tty.Fd()))
	if err != nil {
		return "", err
	}
	defer sess.restore()

	if _, err := io.WriteString(q.tty, req.Seq); err != nil {
		return "", fmt.Errorf("write request: %w", err)
	}
	return readReply(q.tty, q.timeout)
}

// CursorPosition reports the cursor position in characters, 1-based.
func (q *Querier) CursorPosition() (row, col int, err error) {
	return q.pair(CursorPosition)
}

// TextAreaSize reports the text area size in characters.
func (q *Querier) TextAreaSize() (rows, cols int, err error) {
	return q.pair(TextAreaSize)
}

// ScreenSize reports the screen size in characters.
func (q *Querier) ScreenSize() (rows, cols int, err error) {
	return q.pair(ScreenSize)
}

// WindowSizePixels reports the window size in pixels. The terminal
// replies height first; this is swapped to the conventional order.
func (q *Querier) WindowSizePixels() (width, height int, err error) {
	h, w, err := q.pair(WindowSizePixels)
	return w, h, err
}

// WindowPosition reports the window position in pixels.
func (q *Querier) WindowPosition() (x, y int, err error) {
	return q.pair(WindowPosition)
}

// WindowTitle reports the window title.
func (q *Querier) WindowTitle() (string, error) {
	return q.text(WindowTitle)
}

// IconTitle reports the window icon label.
func (q *Querier) IconTitle() (string, error) {
	return q.text(IconTitle)
}

// ReverseVideo switches reverse video on or off.
func (q *Querier) ReverseVideo(on bool) error {
	if on {
		return q.Command(ReverseVideoOn)
	}
	return q.Command(ReverseVideoOff)
}

func (q *Querier) pair(req Request) (int, int, error) {
	nums, raw, err := q.numbers(req)
	if err != nil {
		return 0, 0, err
	}
	if len(nums) != 2 {
		return 0, 0, &ProtocolError{Request: req.Seq, Reply: raw}
	}
	return nums[0], nums[1], nil
}

func (q *Querier) text(req Request) (string, error) {
	groups, err := q.Query(req)
	if err != nil {
		return "", err
	}
	return groups[0], nil
}
