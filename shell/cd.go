package shell

import (
	"fmt"

	"github.com/clamsh/clamsh/core/fspath"
)

func cdMain(s *Shell, args []string) int {
	cmd := &simpleBuiltin{
		Use:   "cd [-L|-P] [DIR]",
		Short: "Change the shell working directory.",
	}

	opts := cmd.Flags()
	logical := opts.Bool('L', "handle '..' lexically, without resolving symbolic links")
	physical := opts.Bool('P', "resolve symbolic links before processing '..'")

	return cmd.Run(s, args, func() int {
		var dest string
		switch rest := opts.Args(); len(rest) {
		case 0:
			dest = s.Vars.Get(EnvHome)
			if dest == "" {
				fmt.Fprintln(s.IO.Err, "cd: HOME not set")
				return 1
			}
		case 1:
			dest = rest[0]
		default:
			fmt.Fprintln(s.IO.Err, "cd: too many arguments")
			return 1
		}

		if dest == "-" {
			old, ok := s.Vars.Lookup(EnvOldPWD)
			if !ok {
				fmt.Fprintln(s.IO.Err, "cd: OLDPWD not set")
				return 1
			}
			dest = old
			// Shells print the directory when swapping back.
			fmt.Fprintln(s.IO.Out, dest)
		}

		pwd := s.Getwd()

		// -L is the default; -P resolves symlinks first.
		target := fspath.Normalize(pwd, dest)
		if *physical && !*logical {
			var err error
			target, err = fspath.Realpath(s.FS, pwd, dest)
			if err != nil {
				fmt.Fprintf(s.IO.Err, "cd: %s: %v\n", dest, err)
				return 1
			}
		}

		if err := s.Chdir(target); err != nil {
			fmt.Fprintf(s.IO.Err, "cd: %v\n", err)
			return 1
		}

		s.Vars.SetString(EnvOldPWD, pwd)
		s.Vars.SetString(EnvPWD, s.Getwd())
		return 0
	})
}

func init() {
	mustRegister(&Builtin{
		Name:  "cd",
		Use:   "cd [-L|-P] [DIR]",
		Short: "Change the shell working directory.",
		Main:  cdMain,
	})
}
