// Package shelltest runs builtins against a deterministic shell for
// testing, the way exec.Cmd runs processes.
package shelltest

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/afero"

	"github.com/clamsh/clamsh/core/config"
	"github.com/clamsh/clamsh/shell"
)

// Cmd is one builtin invocation against a fresh shell.
type Cmd struct {
	// Argv holds the arguments including the builtin name as Argv[0].
	Argv []string

	// Stdin feeds the builtin; nil reads as an empty stream.
	Stdin io.Reader

	Stdout io.Writer
	Stderr io.Writer

	// Shell is the deterministic session the builtin runs in. Tests
	// may seed variables, directories, or files before calling Run.
	Shell *shell.Shell

	// ExitStatus of the builtin after Run.
	ExitStatus int
}

// Command creates a Cmd for the named builtin. The shell starts in
// /home/user on an in-memory filesystem with a fixed environment.
func Command(name string, arg ...string) *Cmd {
	fsys := afero.NewMemMapFs()
	for _, dir := range []string{"/home/user", "/root", "/tmp", "/etc"} {
		_ = fsys.MkdirAll(dir, 0755)
	}

	c := &Cmd{
		Argv:  append([]string{name}, arg...),
		Shell: shell.New(config.Default(), fsys, nil),
	}
	c.Shell.Vars.SetString("HOME", "/home/user")
	c.Shell.Vars.SetString("USER", "user")
	c.Shell.Vars.SetString("HOSTNAME", "clamsh-test")
	_ = c.Shell.Chdir("/home/user")
	c.Shell.Vars.SetString("PWD", "/home/user")
	return c
}

// Run executes the builtin and records its exit status.
func (c *Cmd) Run() error {
	builtin, ok := shell.AllBuiltins[c.Argv[0]]
	if !ok {
		return fmt.Errorf("no builtin %q", c.Argv[0])
	}

	stdin := c.Stdin
	if stdin == nil {
		stdin = bytes.NewReader(nil)
	}
	c.Shell.IO = shell.NewIO(stdin, c.Stdout, c.Stderr)

	c.ExitStatus = builtin.Main(c.Shell, c.Argv)
	return nil
}

// CombinedOutput runs the builtin and returns its combined stdout and
// stderr.
func (c *Cmd) CombinedOutput() ([]byte, error) {
	buf := &bytes.Buffer{}
	c.Stdout = buf
	c.Stderr = buf

	if err := c.Run(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Output runs the builtin and returns its stdout.
func (c *Cmd) Output() ([]byte, error) {
	buf := &bytes.Buffer{}
	c.Stdout = buf
	if c.Stderr == nil {
		c.Stderr = io.Discard
	}

	if err := c.Run(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
