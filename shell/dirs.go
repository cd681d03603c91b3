package shell

import (
	"fmt"
	"strings"

	"github.com/clamsh/clamsh/core/fspath"
)

// Print styles for the dirs builtin, in bash flag priority order.
const (
	dirsSingleLine = iota
	dirsPerLine
	dirsNumbered
)

// prettyDir shortens dir with ~ when it lies under home, unless
// disabled.
func prettyDir(dir, home string) string {
	if home != "" && strings.HasPrefix(dir, home) {
		return "~" + strings.TrimPrefix(dir, home)
	}
	return dir
}

// stackDirs returns the printable stack: the working directory first,
// then pushed entries newest first.
func stackDirs(s *Shell) []string {
	return append([]string{s.Getwd()}, s.Dirs.Entries()...)
}

func printDirStack(s *Shell, style int, home string) {
	entries := stackDirs(s)

	switch style {
	case dirsNumbered:
		for i, entry := range entries {
			fmt.Fprintf(s.IO.Out, "%2d  %s\n", i, prettyDir(entry, home))
		}
	case dirsPerLine:
		for _, entry := range entries {
			fmt.Fprintln(s.IO.Out, prettyDir(entry, home))
		}
	default:
		pretty := make([]string, 0, len(entries))
		for _, entry := range entries {
			pretty = append(pretty, prettyDir(entry, home))
		}
		fmt.Fprintln(s.IO.Out, strings.Join(pretty, " "))
	}
}

// changeDir is the shared chdir used by pushd and popd; it keeps PWD
// and OLDPWD in sync like cd does.
func changeDir(s *Shell, name, dest string) bool {
	pwd := s.Getwd()
	if err := s.Chdir(fspath.Normalize(pwd, dest)); err != nil {
		fmt.Fprintf(s.IO.Err, "%s: %v\n", name, err)
		return false
	}
	s.Vars.SetString(EnvOldPWD, pwd)
	s.Vars.SetString(EnvPWD, s.Getwd())
	return true
}

func pushdMain(s *Shell, args []string) int {
	cmd := &simpleBuiltin{
		Use:   "pushd DIR",
		Short: "Add a directory to the stack and change to it.",
	}

	return cmd.Run(s, args, func() int {
		rest := cmd.Flags().Args()
		switch {
		case len(rest) == 0:
			fmt.Fprintln(s.IO.Err, "pushd: no other directory")
			return 1
		case len(rest) > 1:
			fmt.Fprintln(s.IO.Err, "pushd: too many arguments")
			return 2
		}

		previous := s.Getwd()
		if !changeDir(s, "pushd", rest[0]) {
			return 1
		}
		s.Dirs.Push(previous)
		printDirStack(s, dirsSingleLine, s.Vars.Get(EnvHome))
		return 0
	})
}

func popdMain(s *Shell, args []string) int {
	cmd := &simpleBuiltin{
		Use:   "popd",
		Short: "Remove the top directory from the stack and change to it.",
	}

	return cmd.Run(s, args, func() int {
		if len(cmd.Flags().Args()) > 0 {
			fmt.Fprintln(s.IO.Err, "popd: too many arguments")
			return 2
		}

		dest, ok := s.Dirs.Pop()
		if !ok {
			fmt.Fprintln(s.IO.Err, "popd: directory stack empty")
			return 1
		}

		if !changeDir(s, "popd", dest) {
			return 1
		}
		printDirStack(s, dirsSingleLine, s.Vars.Get(EnvHome))
		return 0
	})
}

func dirsMain(s *Shell, args []string) int {
	cmd := &simpleBuiltin{
		Use:   "dirs [-clpv]",
		Short: "Display the directory stack.",
	}

	opts := cmd.Flags()
	clear := opts.Bool('c', "clear the directory stack by deleting all of the entries")
	long := opts.Bool('l', "do not print tilde-prefixed versions of directories")
	perLine := opts.Bool('p', "print the directory stack with one entry per line")
	numbered := opts.Bool('v', "print one entry per line prefixed with its position in the stack")

	return cmd.Run(s, args, func() int {
		home := s.Vars.Get(EnvHome)

		// Follow bash's order of flag priority.
		if *long {
			home = "" // disable ~ prettying
		}
		style := dirsSingleLine
		switch {
		case *clear:
			s.Dirs.Clear()
			return 0
		case *numbered:
			style = dirsNumbered
		case *perLine:
			style = dirsPerLine
		}

		printDirStack(s, style, home)
		return 0
	})
}

func init() {
	mustRegister(&Builtin{
		Name:  "pushd",
		Use:   "pushd DIR",
		Short: "Add a directory to the stack and change to it.",
		Main:  pushdMain,
	})
	mustRegister(&Builtin{
		Name:  "popd",
		Use:   "popd",
		Short: "Remove the top directory from the stack and change to it.",
		Main:  popdMain,
	})
	mustRegister(&Builtin{
		Name:  "dirs",
		Use:   "dirs [-clpv]",
		Short: "Display the directory stack.",
		Main:  dirsMain,
	})
}
