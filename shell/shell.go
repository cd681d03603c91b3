// Package shell implements an interactive command interpreter whose
// commands are all builtins: read, cd, pushd/popd/dirs, pwd, help,
// history, times, unset and exit. There is no pipeline or word
// expansion machinery; one line is one builtin invocation.
package shell

import (
	"fmt"
	"io"
	"log"
	"path"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/anmitsu/go-shlex"
	"github.com/spf13/afero"

	"github.com/clamsh/clamsh/core/config"
	"github.com/clamsh/clamsh/core/split"
	"github.com/clamsh/clamsh/core/state"
)

const (
	EnvHome     = "HOME"
	EnvPWD      = "PWD"
	EnvOldPWD   = "OLDPWD"
	EnvPrompt   = "PS1"
	EnvHostname = "HOSTNAME"
	EnvUser     = "USER"
	EnvIFS      = "IFS"

	DefaultColorPrompt = `\033[01;32m\u@\h\033[00m:\033[01;34m\w\033[00m\$ `
	DefaultPrompt      = `\u@\h:\w\$ `
)

// Shell holds the state of one interpreter session.
type Shell struct {
	Config *config.Config
	Vars   *state.Vars
	Dirs   *state.DirStack
	FS     afero.Fs
	IO     *IO

	// IsPTY is true when the session is attached to a terminal.
	IsPTY bool

	Readline *readline.Instance

	history    []string
	cwd        string
	lastStatus int

	// Quit is set by the exit builtin to stop the interactive loop.
	Quit bool
}

// New creates a shell over the given filesystem and streams. The
// working directory starts at the filesystem root until Init or cd
// move it.
func New(cfg *config.Config, fsys afero.Fs, ios *IO) *Shell {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Shell{
		Config: cfg,
		Vars:   state.NewVars(),
		Dirs:   state.NewDirStack(),
		FS:     fsys,
		IO:     ios,
		cwd:    "/",
	}
}

// Init sets up the session environment similar to login.
func (s *Shell) Init(username, hostname string) {
	homedir := "/root"
	if username != "" && username != "root" {
		homedir = fmt.Sprintf("/home/%s", username)
	}

	s.Vars.SetString(EnvHome, homedir)
	// Use Chdir in case the directory doesn't exist.
	_ = s.Chdir(homedir)
	s.Vars.SetString(EnvPWD, s.cwd)
	s.Vars.SetString(EnvUser, username)
	s.Vars.SetString(EnvHostname, hostname)
	switch {
	case s.Config.Prompt != "":
		s.Vars.SetString(EnvPrompt, s.Config.Prompt)
	case s.IsPTY:
		s.Vars.SetString(EnvPrompt, DefaultColorPrompt)
	default:
		s.Vars.SetString(EnvPrompt, DefaultPrompt)
	}
	if s.Config.IFS != "" {
		s.Vars.SetString(EnvIFS, s.Config.IFS)
	}
}

// Getwd returns the logical working directory.
func (s *Shell) Getwd() string {
	return s.cwd
}

// Chdir changes the logical working directory, verifying the target
// exists and is a directory. It does not touch PWD or OLDPWD; the cd
// builtin owns those.
func (s *Shell) Chdir(dir string) error {
	if !path.IsAbs(dir) {
		dir = path.Clean(path.Join(s.cwd, dir))
	}

	stat, err := s.FS.Stat(dir)
	switch {
	case err != nil:
		return err
	case !stat.IsDir():
		return fmt.Errorf("%s: not a directory", dir)
	default:
		s.cwd = dir
		return nil
	}
}

// LastStatus returns the exit status of the last command run.
func (s *Shell) LastStatus() int {
	return s.lastStatus
}

// ifs returns the active field separator set: $IFS when set (even to
// the empty string), otherwise the POSIX default.
func (s *Shell) ifs() string {
	if ifs, ok := s.Vars.Lookup(EnvIFS); ok {
		return ifs
	}
	return split.DefaultIFS
}

func (s *Shell) prompt() string {
	prompt := s.Vars.Get(EnvPrompt)
	if prompt == "" {
		prompt = DefaultPrompt
	}
	prompt = strings.ReplaceAll(prompt, `\u`, s.Vars.Get(EnvUser))
	prompt = strings.ReplaceAll(prompt, `\h`, s.Vars.Get(EnvHostname))

	pwd := s.cwd
	home := s.Vars.Get(EnvHome)
	if home != "" && strings.HasPrefix(pwd, home) {
		pwd = "~" + strings.TrimPrefix(pwd, home)
	}
	prompt = strings.ReplaceAll(prompt, `\w`, pwd)

	dollar := "$"
	if s.Vars.Get(EnvUser) == "root" {
		dollar = "#"
	}
	prompt = strings.ReplaceAll(prompt, `\$`, dollar)

	return unescape(prompt)
}

// RunInteractive reads and runs commands until EOF or exit. The return
// value is the status of the last command.
func (s *Shell) RunInteractive() int {
	cfg := &readline.Config{
		Stdin:  readline.NewCancelableStdin(s.IO.In),
		Stdout: s.IO.Out,
		Stderr: s.IO.Err,
		FuncIsTerminal: func() bool {
			return s.IsPTY
		},
	}
	if err := cfg.Init(); err != nil {
		fmt.Fprintf(s.IO.Err, "clamsh: %v\n", err)
		return 1
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		fmt.Fprintf(s.IO.Err, "clamsh: %v\n", err)
		return 1
	}
	defer rl.Close()
	s.Readline = rl

	if s.Config.Motd != "" {
		fmt.Fprintln(s.IO.Out, s.Config.Motd)
	}

	for !s.Quit {
		rl.SetPrompt(s.prompt())
		line, err := rl.Readline()

		switch {
		case err == io.EOF:
			return s.lastStatus // input closed, quit

		case err == readline.ErrInterrupt:
			// Interrupt clears the line.
			continue

		case err != nil:
			log.Printf("readline: %v", err)
			continue

		case strings.TrimSpace(line) == "":
			continue
		}

		s.addHistory(line)
		s.lastStatus = s.RunCommand(line)
	}
	return s.lastStatus
}

// RunCommand tokenizes and runs a single command line.
func (s *Shell) RunCommand(line string) int {
	tokens, err := shlex.Split(line, true)
	if err != nil {
		fmt.Fprintf(s.IO.Err, "clamsh: syntax error: %v\n", err)
		return 2
	}

	// Leading NAME=VALUE words are variable assignments.
	i := 0
	for ; i < len(tokens); i++ {
		name, val, ok := splitAssign(tokens[i])
		if !ok {
			break
		}
		s.Vars.SetString(name, val)
	}
	tokens = tokens[i:]
	if len(tokens) == 0 {
		return 0
	}

	for j, tok := range tokens {
		tokens[j] = s.Vars.Expand(tok)
	}

	builtin, ok := AllBuiltins[tokens[0]]
	if !ok {
		fmt.Fprintf(s.IO.Err, "clamsh: %s: command not found\n", tokens[0])
		return 127
	}
	return builtin.Main(s, tokens)
}

// splitAssign splits a NAME=VALUE token, reporting false when the
// token isn't an assignment.
func splitAssign(tok string) (name, val string, ok bool) {
	eq := strings.IndexByte(tok, '=')
	if eq <= 0 {
		return "", "", false
	}
	name = tok[:eq]
	if !state.IsValidName(name) {
		return "", "", false
	}
	return name, tok[eq+1:], true
}

// addHistory records line, trimming to the configured cap.
func (s *Shell) addHistory(line string) {
	s.history = append(s.history, line)
	if max := s.Config.HistorySize; max > 0 && len(s.history) > max {
		s.history = s.history[len(s.history)-max:]
	}
}
