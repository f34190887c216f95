package termquery

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/term"
)

// fakeTTY records writes and serves replies from a pipe, so the poll
// driven read path runs against a real descriptor.
type fakeTTY struct {
	r   *os.File
	out []byte
}

func (f *fakeTTY) Read(p []byte) (int, error)  { return f.r.Read(p) }
func (f *fakeTTY) Write(p []byte) (int, error) { f.out = append(f.out, p...); return len(p), nil }
func (f *fakeTTY) Fd() uintptr                 { return f.r.Fd() }

// newFakeTTY returns a fake terminal and the writer its replies are
// scripted through.
func newFakeTTY(t *testing.T) (*fakeTTY, *os.File) {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() {
		r.Close()
		w.Close()
	})
	return &fakeTTY{r: r}, w
}

// stubRawMode replaces the raw mode seams with counters. Pipes are not
// terminals, so the real toggles would fail; the counters also assert
// the restore guarantee.
func stubRawMode(t *testing.T) (entered, restored *int) {
	t.Helper()
	var made, reverted int
	origMake, origRestore := makeRaw, restoreMode
	makeRaw = func(fd int) (*term.State, error) {
		made++
		return &term.State{}, nil
	}
	restoreMode = func(fd int, state *term.State) error {
		reverted++
		return nil
	}
	t.Cleanup(func() {
		makeRaw = origMake
		restoreMode = origRestore
	})
	return &made, &reverted
}

func TestCursorPosition(t *testing.T) {
	_, restored := stubRawMode(t)
	tty, reply := newFakeTTY(t)
	_, err := reply.WriteString("\x1b[12;34R")
	require.NoError(t, err)

	q := NewQuerier(tty, WithTimeout(100*time.Millisecond))
	row, col, err := q.CursorPosition()

	require.NoError(t, err)
	assert.Equal(t, 12, row)
	assert.Equal(t, 34, col)
	assert.Equal(t, "\x1b[6n", string(tty.out))
	assert.Equal(t, 1, *restored)
}

func TestQueryCatalogue(t *testing.T) {
	tests := []struct {
		name  string
		req   Request
		reply string
		want  []string
	}{
		{
			name:  "window size pixels",
			req:   WindowSizePixels,
			reply: "\x1b[4;600;800t",
			want:  []string{"600", "800"},
		},
		{
			name:  "window position",
			req:   WindowPosition,
			reply: "\x1b[3;120;80t",
			want:  []string{"120", "80"},
		},
		{
			name:  "text area size",
			req:   TextAreaSize,
			reply: "\x1b[8;24;80t",
			want:  []string{"24", "80"},
		},
		{
			name:  "screen size",
			req:   ScreenSize,
			reply: "\x1b[9;50;160t",
			want:  []string{"50", "160"},
		},
		{
			name:  "window title",
			req:   WindowTitle,
			reply: "\x1b]lmy terminal\x1b\\",
			want:  []string{"my terminal"},
		},
		{
			name:  "icon title",
			req:   IconTitle,
			reply: "\x1b]Licon\x1b\\",
			want:  []string{"icon"},
		},
		{
			name:  "device attributes",
			req:   DeviceAttributes,
			reply: "\x1b[?62;1;4c",
			want:  []string{"62;1;4"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			stubRawMode(t)
			tty, reply := newFakeTTY(t)
			_, err := reply.WriteString(test.reply)
			require.NoError(t, err)

			q := NewQuerier(tty, WithTimeout(100*time.Millisecond))
			got, err := q.Query(test.req)

			require.NoError(t, err)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("capture groups mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, test.req.Seq, string(tty.out))
		})
	}
}

func TestQueryMalformedReply(t *testing.T) {
	_, restored := stubRawMode(t)
	tty, reply := newFakeTTY(t)
	_, err := reply.WriteString("\x1b[?nonsense")
	require.NoError(t, err)

	q := NewQuerier(tty, WithTimeout(100*time.Millisecond))
	_, err = q.Query(CursorPosition)

	var perr *ProtocolError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "\x1b[?nonsense", perr.Reply)
	assert.Equal(t, CursorPosition.Seq, perr.Request)
	assert.Equal(t, 1, *restored, "prior mode must be restored exactly once on a parse failure")
}

func TestQueryNoReply(t *testing.T) {
	_, restored := stubRawMode(t)
	tty, _ := newFakeTTY(t)

	q := NewQuerier(tty, WithTimeout(10*time.Millisecond))
	_, err := q.Query(CursorPosition)

	require.ErrorIs(t, err, ErrNoReply)
	assert.Equal(t, 1, *restored)
}

func TestQueryRejectsCommandRequest(t *testing.T) {
	tty, _ := newFakeTTY(t)
	q := NewQuerier(tty)
	_, err := q.Query(ReverseVideoOn)
	require.Error(t, err)
	assert.Empty(t, tty.out, "nothing may be written for a misused request")
}

func TestQueryRawModeFailure(t *testing.T) {
	entered, restored := stubRawMode(t)
	tty, _ := newFakeTTY(t)

	origMake := makeRaw
	makeRaw = func(fd int) (*term.State, error) {
		return nil, errors.New("not a terminal")
	}
	t.Cleanup(func() { makeRaw = origMake })

	q := NewQuerier(tty)
	_, err := q.Query(CursorPosition)

	require.Error(t, err)
	assert.Equal(t, 0, *entered)
	assert.Equal(t, 0, *restored, "nothing to restore when raw mode was never entered")
	assert.Empty(t, tty.out)
}

func TestCommand(t *testing.T) {
	entered, restored := stubRawMode(t)
	tty, _ := newFakeTTY(t)

	q := NewQuerier(tty)
	require.NoError(t, q.Command(ReverseVideoOn))
	require.NoError(t, q.ReverseVideo(false))

	assert.Equal(t, "\x1b[?5h\x1b[?5l", string(tty.out))
	assert.Equal(t, 2, *entered)
	assert.Equal(t, 2, *restored)
}

func TestWindowSizePixelsSwapsToWidthHeight(t *testing.T) {
	stubRawMode(t)
	tty, reply := newFakeTTY(t)
	// xterm reports height before width
	_, err := reply.WriteString("\x1b[4;600;800t")
	require.NoError(t, err)

	q := NewQuerier(tty, WithTimeout(100*time.Millisecond))
	width, height, err := q.WindowSizePixels()

	require.NoError(t, err)
	assert.Equal(t, 800, width)
	assert.Equal(t, 600, height)
}

func TestQueryNumbersNonNumericCapture(t *testing.T) {
	stubRawMode(t)
	tty, reply := newFakeTTY(t)
	_, err := reply.WriteString("\x1b]ltitle\x1b\\")
	require.NoError(t, err)

	q := NewQuerier(tty, WithTimeout(100*time.Millisecond))
	_, err = q.QueryNumbers(WindowTitle)

	var perr *ProtocolError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "\x1b]ltitle\x1b\\", perr.Reply, "the raw decoded reply travels with the error")
	assert.Equal(t, WindowTitle.Seq, perr.Request)
}
