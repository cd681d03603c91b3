package shell

import (
	"fmt"

	"github.com/clamsh/clamsh/core/fspath"
)

func pwdMain(s *Shell, args []string) int {
	cmd := &simpleBuiltin{
		Use:   "pwd [-L|-P]",
		Short: "Print the name of the current working directory.",
	}

	opts := cmd.Flags()
	logical := opts.Bool('L', "print the logical working directory")
	physical := opts.Bool('P', "print the physical directory, with symbolic links resolved")

	return cmd.Run(s, args, func() int {
		// pwd succeeds even if the directory has since disappeared;
		// the logical path is what the shell remembers.
		pwd := s.Getwd()

		if *physical && !*logical {
			resolved, err := fspath.Realpath(s.FS, pwd, pwd)
			if err != nil {
				fmt.Fprintf(s.IO.Err, "pwd: %v\n", err)
				return 1
			}
			pwd = resolved
		}

		fmt.Fprintln(s.IO.Out, pwd)
		return 0
	})
}

func init() {
	mustRegister(&Builtin{
		Name:  "pwd",
		Use:   "pwd [-L|-P]",
		Short: "Print the name of the current working directory.",
		Main:  pwdMain,
	})
}
