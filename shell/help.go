package shell

import (
	"fmt"
	"sort"
	"text/tabwriter"
)

func helpMain(s *Shell, args []string) int {
	cmd := &simpleBuiltin{
		Use:   "help [TOPIC]",
		Short: "Display information about builtin commands.",
	}

	printer := &colorPrinter{}
	printer.Init(cmd.Flags(), s)

	return cmd.Run(s, args, func() int {
		w := s.IO.Out

		if rest := cmd.Flags().Args(); len(rest) > 0 {
			topic, ok := AllBuiltins[rest[0]]
			if !ok {
				fmt.Fprintf(s.IO.Err, "help: no help topics match %q\n", rest[0])
				return 1
			}
			fmt.Fprintln(w, printer.Sprintf(colorBoldBlue, "%s", topic.Use))
			fmt.Fprintln(w, "    "+topic.Short)
			return 0
		}

		fmt.Fprintln(w, "These shell commands are defined internally. Type `help' to see this list.")
		fmt.Fprintln(w, "Type `help name' to find out more about the command `name'.")
		fmt.Fprintln(w)

		var names []string
		for name := range AllBuiltins {
			names = append(names, name)
		}
		sort.Strings(names)

		tw := tabwriter.NewWriter(w, 8, 8, 2, ' ', 0)
		for _, name := range names {
			fmt.Fprintf(tw, "%s\t%s\n",
				printer.Sprintf(colorBoldGreen, "%s", name),
				AllBuiltins[name].Short)
		}
		tw.Flush()
		return 0
	})
}

func init() {
	mustRegister(&Builtin{
		Name:  "help",
		Use:   "help [TOPIC]",
		Short: "Display information about builtin commands.",
		Main:  helpMain,
	})
}
