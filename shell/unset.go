package shell

import (
	"fmt"
	"strconv"

	"github.com/clamsh/clamsh/core/state"
)

func unsetMain(s *Shell, args []string) int {
	cmd := &simpleBuiltin{
		Use:   "unset [NAME...]",
		Short: "Unset shell variables.",
	}

	return cmd.Run(s, args, func() int {
		status := 0
		for _, name := range cmd.Flags().Args() {
			if !state.IsValidName(name) {
				fmt.Fprintf(s.IO.Err, "unset: %q: not a valid identifier\n", name)
				status = 1
				continue
			}
			s.Vars.Unset(name)
		}
		return status
	})
}

func exitMain(s *Shell, args []string) int {
	cmd := &simpleBuiltin{
		Use:   "exit [N]",
		Short: "Exit the shell with a status of N.",
	}

	return cmd.Run(s, args, func() int {
		status := s.lastStatus
		if rest := cmd.Flags().Args(); len(rest) > 0 {
			n, err := strconv.Atoi(rest[0])
			if err != nil {
				fmt.Fprintf(s.IO.Err, "exit: %s: numeric argument required\n", rest[0])
				n = 2
			}
			status = n
		}
		s.Quit = true
		return status
	})
}

func init() {
	mustRegister(&Builtin{
		Name:  "unset",
		Use:   "unset [NAME...]",
		Short: "Unset shell variables.",
		Main:  unsetMain,
	})
	mustRegister(&Builtin{
		Name:  "exit",
		Use:   "exit [N]",
		Short: "Exit the shell with a status of N.",
		Main:  exitMain,
	})
}
