package shell

import (
	"fmt"

	"github.com/fatih/color"
	getopt "github.com/pborman/getopt/v2"
)

const (
	colorAlways = "always"
	colorAuto   = "auto"
	colorNever  = "never"
)

var (
	colorBoldBlue  = color.New(color.FgBlue, color.Bold)
	colorBoldGreen = color.New(color.FgGreen, color.Bold)
)

func init() {
	// shouldColor is the only gate; the package-global tty sniffing in
	// fatih/color must not second-guess it.
	colorBoldBlue.EnableColor()
	colorBoldGreen.EnableColor()
}

// colorPrinter colorizes output based on a --color flag and whether
// the session has a terminal.
type colorPrinter struct {
	value *string
	shell *Shell
}

// Init sets up the flag used to determine the color output.
func (c *colorPrinter) Init(flags *getopt.Set, s *Shell) {
	c.shell = s
	c.value = flags.EnumLong(
		"color",
		rune(0), // No short flag.
		[]string{colorAlways, colorAuto, colorNever},
		colorAuto,
		"colorize the output (always|auto|never)")
}

func (c *colorPrinter) shouldColor() bool {
	switch *c.value {
	case colorNever:
		return false
	case colorAlways:
		return true
	default:
		return c.shell.IsPTY
	}
}

func (c *colorPrinter) Sprintf(col *color.Color, format string, a ...interface{}) string {
	if c.shouldColor() {
		return col.Sprintf(format, a...)
	}
	return fmt.Sprintf(format, a...)
}
