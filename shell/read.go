package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/clamsh/clamsh/core/rawmode"
	"github.com/clamsh/clamsh/core/split"
	"github.com/clamsh/clamsh/core/state"
)

// ReadLine reads one line from r a single byte at a time, stopping
// after a newline, after the delim byte, or at end of stream. The
// terminating byte is included in the result so callers can tell a
// complete line from one cut short by the stream ending.
//
// Byte-at-a-time reads matter: read must never consume input past the
// boundary it is allowed to, because whatever follows belongs to the
// next consumer of the stream.
func ReadLine(r io.Reader, delim byte) (string, error) {
	var line []byte
	var b [1]byte
	for {
		n, err := r.Read(b[:])
		if n > 0 {
			line = append(line, b[0])
			if b[0] == delim || b[0] == '\n' {
				return string(line), nil
			}
		}
		if err == io.EOF || (err == nil && n == 0) {
			return string(line), nil
		}
		if err != nil {
			return string(line), err
		}
	}
}

// readArgs is the interpreted argument set of one read invocation.
type readArgs struct {
	raw       bool   // -r: no backslash escapes
	numBytes  int    // -n: fixed byte count mode
	hasNum    bool
	arrayName string // -a: bind all fields to this array
	delim     byte   // -d: line terminator instead of newline
	hasDelim  bool
	names     []string
}

func readMain(s *Shell, args []string) int {
	cmd := &simpleBuiltin{
		Use:   "read [-r] [-n N] [-a ARRAY] [-d DELIM] [NAME...]",
		Short: "Read a line from standard input and split it into fields.",
	}

	opts := cmd.Flags()
	raw := opts.Bool('r', "do not allow backslashes to escape any characters")
	numBytes := opts.Int('n', 0, "read at most N bytes", "N")
	arrayName := opts.String('a', "", "assign the words read to sequential indices of ARRAY", "ARRAY")
	delim := opts.String('d', "", "continue until the first character of DELIM is read, rather than newline", "DELIM")

	return cmd.Run(s, args, func() int {
		parsed := readArgs{
			raw:       *raw,
			numBytes:  *numBytes,
			hasNum:    opts.Lookup('n').Seen(),
			arrayName: *arrayName,
			hasDelim:  opts.Lookup('d').Seen(),
			names:     opts.Args(),
		}

		// -d '' delimits on the NUL byte; absent -d means newline.
		parsed.delim = '\n'
		if parsed.hasDelim {
			if *delim == "" {
				parsed.delim = 0
			} else {
				parsed.delim = (*delim)[0]
			}
		}

		// Argument problems abort before any input is consumed.
		for _, name := range parsed.names {
			if !state.IsValidName(name) {
				fmt.Fprintf(s.IO.Err, "read: %q: not a valid identifier\n", name)
				return 2
			}
		}
		if parsed.arrayName != "" && !state.IsValidName(parsed.arrayName) {
			fmt.Fprintf(s.IO.Err, "read: %q: not a valid identifier\n", parsed.arrayName)
			return 2
		}
		if parsed.hasNum && parsed.numBytes < 0 {
			fmt.Fprintf(s.IO.Err, "read: %d: invalid number of bytes\n", parsed.numBytes)
			return 2
		}

		if parsed.hasNum {
			return readFixed(s, parsed)
		}
		return readDelimited(s, parsed)
	})
}

// readFixed reads exactly numBytes bytes (fewer at end of stream) and
// binds them, unsplit, to the sole destination name. A shortfall is
// not an error.
func readFixed(s *Shell, args readArgs) int {
	name := "REPLY"
	if len(args.names) > 0 {
		name = args.names[0]
	}

	var buf strings.Builder

	type fdReader interface{ Fd() uintptr }
	if f, ok := s.IO.In.(fdReader); ok && rawmode.IsTerminal(int(f.Fd())) {
		// Interactive terminal: drop canonical buffering so every byte
		// arrives immediately, and restore the prior settings on every
		// exit path.
		guard, err := rawmode.Acquire(int(f.Fd()))
		if err != nil {
			fmt.Fprintf(s.IO.Err, "read: %v\n", err)
			return 1
		}
		defer guard.Restore()

		var b [1]byte
		for i := 0; i < args.numBytes; i++ {
			n, err := s.IO.In.Read(b[:])
			if n > 0 {
				buf.WriteByte(b[0])
			}
			if err != nil || n == 0 {
				break
			}
		}
	} else {
		chunk := make([]byte, args.numBytes)
		total := 0
		for total < args.numBytes {
			n, err := s.IO.In.Read(chunk[total:])
			total += n
			if err == io.EOF || n == 0 {
				break
			}
			if err != nil {
				fmt.Fprintf(s.IO.Err, "read: %v\n", err)
				return 1
			}
		}
		buf.Write(chunk[:total])
	}

	s.Vars.SetString(name, buf.String())
	return 0
}

// readDelimited reads one logical line, splitting it into fields and
// binding them. A logical line spans several physical lines when a
// line ends in an unresolved escape.
func readDelimited(s *Shell, args readArgs) int {
	names := args.names
	if len(names) == 0 {
		names = []string{"REPLY"}
	}

	// With an array destination there is no cap; otherwise words past
	// the name count fold into the last name.
	maxResults := len(names)
	if args.arrayName != "" {
		maxResults = 0
	}

	splitter := split.NewSplitter(s.ifs())

	var parts []string
	joinNext := false
	status := 1
	for {
		line, err := ReadLine(s.IO.In, args.delim)
		if err != nil {
			fmt.Fprintf(s.IO.Err, "read: %v\n", err)
			return 1
		}
		if line == "" { // end of stream with nothing read
			status = 1
			break
		}

		last := line[len(line)-1]
		if last == '\n' || (args.hasDelim && last == args.delim) {
			line = line[:len(line)-1]
			status = 0
		} else {
			// The stream ended mid-line. The partial text still gets
			// processed and bound, but the invocation reports failure.
			status = 1
		}

		spans := splitter.Split(line, !args.raw)
		var done bool
		done, joinNext = split.Assemble(line, spans, maxResults, joinNext, &parts)
		if done {
			break
		}
	}

	if args.arrayName != "" {
		s.Vars.SetArray(args.arrayName, parts)
	} else {
		for i, name := range names {
			val := ""
			if i < len(parts) {
				val = parts[i]
			}
			s.Vars.SetString(name, val)
		}
	}

	return status
}

func init() {
	mustRegister(&Builtin{
		Name:  "read",
		Use:   "read [-r] [-n N] [-a ARRAY] [-d DELIM] [NAME...]",
		Short: "Read a line from standard input and split it into fields.",
		Main:  readMain,
	})
}
