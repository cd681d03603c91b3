// Package rawmode toggles a controlling terminal between canonical and
// byte-immediate input with a guaranteed way back. The terminal is a
// process-wide resource: a leaked non-canonical mode would corrupt the
// shell's own line editing, so every Acquire is paired with a deferred
// Restore.
package rawmode

import (
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// State is a snapshot of a terminal's attributes.
type State struct {
	termios unix.Termios
}

// IsTerminal reports whether fd is an interactive terminal.
func IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// Get snapshots the current attributes of the terminal on fd.
func Get(fd int) (*State, error) {
	t, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return nil, err
	}
	return &State{termios: *t}, nil
}

// Set applies a previously captured snapshot to the terminal on fd.
func Set(fd int, st *State) error {
	t := st.termios
	return unix.IoctlSetTermios(fd, ioctlWriteTermios, &t)
}

// noncanonical returns a copy of t with canonical line buffering
// disabled so each read returns as soon as a single byte arrives.
// Echo and signal handling are left alone.
func noncanonical(t unix.Termios) unix.Termios {
	t.Lflag &^= unix.ICANON
	t.Cc[unix.VMIN] = 1
	t.Cc[unix.VTIME] = 0
	return t
}

// Guard holds a saved terminal snapshot while the terminal is in
// non-canonical mode.
type Guard struct {
	fd    int
	saved State
}

// Acquire saves the terminal state of fd and switches it to
// non-canonical input. Callers must call Restore when done, usually
// via defer, so the saved state is reinstated on every exit path.
func Acquire(fd int) (*Guard, error) {
	saved, err := Get(fd)
	if err != nil {
		return nil, err
	}

	raw := State{termios: noncanonical(saved.termios)}
	if err := Set(fd, &raw); err != nil {
		return nil, err
	}

	return &Guard{fd: fd, saved: *saved}, nil
}

// Restore puts the terminal back exactly as Acquire found it.
func (g *Guard) Restore() error {
	return Set(g.fd, &g.saved)
}
