package termquery

import (
	"fmt"

	"golang.org/x/term"
)

// Seams for tests that exercise query flows on descriptors that are
// not real terminals.
var (
	makeRaw = func(fd int) (*term.State, error) {
		return term.MakeRaw(fd)
	}
	restoreMode = func(fd int, state *term.State) error {
		return term.Restore(fd, state)
	}
)

// rawSession holds a descriptor in raw mode until restored. The raw
// mode toggle is global per descriptor, so a second session on the
// same descriptor while one is outstanding is a caller error; the
// Querier serializes all exchanges through a single session at a time.
type rawSession struct {
	fd       int
	state    *term.State
	restored bool
}

func enterRaw(fd int) (*rawSession, error) {
	state, err := makeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enter raw mode: %w", err)
	}
	return &rawSession{fd: fd, state: state}, nil
}

// restore reverts the descriptor to its prior mode. Only the first
// call has effect, so it is safe to defer and also call explicitly.
func (s *rawSession) restore() error {
	if s.restored {
		return nil
	}
	s.restored = true
	return restoreMode(s.fd, s.state)
}
