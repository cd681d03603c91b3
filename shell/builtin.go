package shell

import (
	"fmt"
	"io"

	getopt "github.com/pborman/getopt/v2"
)

// Builtin is one shell builtin command.
type Builtin struct {
	// Name the builtin is invoked by.
	Name string
	// Use holds a one line usage string.
	Use string
	// Short holds a one line description of the builtin.
	Short string
	// Main runs the builtin and returns its exit status.
	Main func(s *Shell, args []string) int
}

// AllBuiltins holds every registered builtin keyed by name.
var AllBuiltins = make(map[string]*Builtin)

func mustRegister(b *Builtin) {
	if _, ok := AllBuiltins[b.Name]; ok {
		panic(fmt.Sprintf("duplicate builtin %q", b.Name))
	}
	AllBuiltins[b.Name] = b
}

// simpleBuiltin handles flag parsing and help for a builtin. A fresh
// one is built on every invocation so no argument state outlives a
// single call.
type simpleBuiltin struct {
	// Use holds a one line usage string.
	Use string
	// Short holds a one line description of the builtin.
	Short string

	flags *getopt.Set
}

// Flags gets the builtin's flag set.
func (b *simpleBuiltin) Flags() *getopt.Set {
	if b.flags == nil {
		b.flags = getopt.New()
	}
	return b.flags
}

// PrintHelp writes help for the builtin to the given writer.
func (b *simpleBuiltin) PrintHelp(w io.Writer) {
	fmt.Fprint(w, "usage: ")
	fmt.Fprintln(w, b.Use)
	fmt.Fprintln(w, b.Short)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	b.Flags().PrintOptions(w)
}

// Run parses args and, on success, calls the callback. Usage errors
// are reported before any other work happens and exit with status 2.
func (b *simpleBuiltin) Run(s *Shell, args []string, callback func() int) int {
	opts := b.Flags()
	showHelp := opts.BoolLong("help", 'h', "show this help and exit")

	if err := opts.Getopt(args, nil); err != nil {
		fmt.Fprintf(s.IO.Err, "%s: %s\n", args[0], err)
		b.PrintHelp(s.IO.Err)
		return 2
	}

	if *showHelp {
		b.PrintHelp(s.IO.Out)
		return 0
	}

	return callback()
}
