//go:build unix

package shell

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// fmtCPUTime renders a CPU time in the NmN.NNNs form shells use.
func fmtCPUTime(tv unix.Timeval) string {
	secs := float64(tv.Sec) + float64(tv.Usec)/1e6
	return fmt.Sprintf("%dm%.3fs", int64(secs)/60, secs-float64(int64(secs)/60*60))
}

func timesMain(s *Shell, args []string) int {
	cmd := &simpleBuiltin{
		Use:   "times",
		Short: "Display process times for the shell and its children.",
	}

	return cmd.Run(s, args, func() int {
		var self, children unix.Rusage
		if err := unix.Getrusage(unix.RUSAGE_SELF, &self); err != nil {
			fmt.Fprintf(s.IO.Err, "times: %v\n", err)
			return 1
		}
		if err := unix.Getrusage(unix.RUSAGE_CHILDREN, &children); err != nil {
			fmt.Fprintf(s.IO.Err, "times: %v\n", err)
			return 1
		}

		fmt.Fprintf(s.IO.Out, "%s %s\n", fmtCPUTime(self.Utime), fmtCPUTime(self.Stime))
		fmt.Fprintf(s.IO.Out, "%s %s\n", fmtCPUTime(children.Utime), fmtCPUTime(children.Stime))
		return 0
	})
}

func init() {
	mustRegister(&Builtin{
		Name:  "times",
		Use:   "times",
		Short: "Display process times for the shell and its children.",
		Main:  timesMain,
	})
}
