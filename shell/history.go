package shell

import (
	"fmt"
	"strconv"
)

func historyMain(s *Shell, args []string) int {
	cmd := &simpleBuiltin{
		Use:   "history [-c] [-d OFFSET] [N]",
		Short: "Display or manipulate the history list.",
	}

	opts := cmd.Flags()
	clear := opts.Bool('c', "clear the history list by deleting all of the entries")
	del := opts.Int('d', 0, "delete the history entry at position OFFSET", "OFFSET")

	return cmd.Run(s, args, func() int {
		if *clear {
			s.history = nil
			if s.Readline != nil {
				s.Readline.Operation.ResetHistory()
			}
			return 0
		}

		if opts.Lookup('d').Seen() {
			idx := *del - 1 // positions are 1-based
			if idx < 0 || idx >= len(s.history) {
				fmt.Fprintf(s.IO.Err, "history: %d: history position out of range\n", *del)
				return 1
			}
			s.history = append(s.history[:idx], s.history[idx+1:]...)
			return 0
		}

		start := 0
		switch rest := opts.Args(); len(rest) {
		case 0:
		case 1:
			n, err := strconv.Atoi(rest[0])
			if err != nil {
				fmt.Fprintf(s.IO.Err, "history: %s: numeric argument required\n", rest[0])
				return 2
			}
			if n < len(s.history) {
				start = len(s.history) - n
			}
		default:
			fmt.Fprintln(s.IO.Err, "history: too many arguments")
			return 2
		}

		for i := start; i < len(s.history); i++ {
			fmt.Fprintf(s.IO.Out, "%5d  %s\n", i+1, s.history[i])
		}
		return 0
	})
}

func init() {
	mustRegister(&Builtin{
		Name:  "history",
		Use:   "history [-c] [-d OFFSET] [N]",
		Short: "Display or manipulate the history list.",
		Main:  historyMain,
	})
}
