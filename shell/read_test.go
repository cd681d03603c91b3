package shell_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clamsh/clamsh/shell"
	"github.com/clamsh/clamsh/shell/shelltest"
)

func TestReadLine(t *testing.T) {
	cases := []struct {
		name      string
		input     string
		delim     byte
		want      string
		remaining string
	}{
		{
			name:      "newline terminated",
			input:     "hello\nworld\n",
			delim:     '\n',
			want:      "hello\n",
			remaining: "world\n",
		},
		{
			name:      "eof without terminator",
			input:     "partial",
			delim:     '\n',
			want:      "partial",
			remaining: "",
		},
		{
			name:      "empty stream",
			input:     "",
			delim:     '\n',
			want:      "",
			remaining: "",
		},
		{
			name:      "custom delimiter included",
			input:     "x:y",
			delim:     ':',
			want:      "x:",
			remaining: "y",
		},
		{
			name:      "newline still terminates with custom delimiter",
			input:     "a\nb:c",
			delim:     ':',
			want:      "a\n",
			remaining: "b:c",
		},
		{
			name:      "nul delimiter",
			input:     "a\x00rest",
			delim:     0,
			want:      "a\x00",
			remaining: "rest",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := strings.NewReader(tc.input)
			got, err := shell.ReadLine(r, tc.delim)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			rest := make([]byte, len(tc.input))
			n, _ := r.Read(rest)
			assert.Equal(t, tc.remaining, string(rest[:n]), "unconsumed input")
		})
	}
}

func TestRead_defaultReply(t *testing.T) {
	cmd := shelltest.Command("read")
	cmd.Stdin = strings.NewReader("hello world\n")

	require.NoError(t, cmd.Run())

	assert.Equal(t, 0, cmd.ExitStatus)
	assert.Equal(t, "hello world", cmd.Shell.Vars.Get("REPLY"))
}

func TestRead_splitsIntoNames(t *testing.T) {
	cmd := shelltest.Command("read", "a", "b", "c")
	cmd.Stdin = strings.NewReader("one two three\n")

	require.NoError(t, cmd.Run())

	assert.Equal(t, 0, cmd.ExitStatus)
	assert.Equal(t, "one", cmd.Shell.Vars.Get("a"))
	assert.Equal(t, "two", cmd.Shell.Vars.Get("b"))
	assert.Equal(t, "three", cmd.Shell.Vars.Get("c"))
}

func TestRead_overflowFoldsIntoLastName(t *testing.T) {
	cmd := shelltest.Command("read", "x", "y")
	cmd.Stdin = strings.NewReader("a b c d\n")

	require.NoError(t, cmd.Run())

	assert.Equal(t, 0, cmd.ExitStatus)
	assert.Equal(t, "a", cmd.Shell.Vars.Get("x"))
	assert.Equal(t, "b c d", cmd.Shell.Vars.Get("y"))
}

func TestRead_fewerWordsThanNames(t *testing.T) {
	cmd := shelltest.Command("read", "a", "b", "c")
	cmd.Shell.Vars.SetString("c", "stale")
	cmd.Stdin = strings.NewReader("only two\n")

	require.NoError(t, cmd.Run())

	assert.Equal(t, 0, cmd.ExitStatus)
	assert.Equal(t, "only", cmd.Shell.Vars.Get("a"))
	assert.Equal(t, "two", cmd.Shell.Vars.Get("b"))
	got, ok := cmd.Shell.Vars.Lookup("c")
	assert.True(t, ok, "remaining names are assigned empty values")
	assert.Equal(t, "", got)
}

func TestRead_emptyStream(t *testing.T) {
	cmd := shelltest.Command("read", "a", "b")
	cmd.Stdin = strings.NewReader("")

	require.NoError(t, cmd.Run())

	assert.Equal(t, 1, cmd.ExitStatus)
	got, ok := cmd.Shell.Vars.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, "", got)
	got, ok = cmd.Shell.Vars.Lookup("b")
	assert.True(t, ok)
	assert.Equal(t, "", got)
}

func TestRead_eofMidLineStillBinds(t *testing.T) {
	cmd := shelltest.Command("read", "a")
	cmd.Stdin = strings.NewReader("partial")

	require.NoError(t, cmd.Run())

	// Odd but real shell behavior: fail even though variables are set.
	assert.Equal(t, 1, cmd.ExitStatus)
	assert.Equal(t, "partial", cmd.Shell.Vars.Get("a"))
}

func TestRead_customIFS(t *testing.T) {
	cmd := shelltest.Command("read", "a", "b")
	cmd.Shell.Vars.SetString("IFS", ":")
	cmd.Stdin = strings.NewReader("x:y:z\n")

	require.NoError(t, cmd.Run())

	assert.Equal(t, 0, cmd.ExitStatus)
	assert.Equal(t, "x", cmd.Shell.Vars.Get("a"))
	assert.Equal(t, "y:z", cmd.Shell.Vars.Get("b"))
}

func TestRead_emptyIFSKeepsWholeLine(t *testing.T) {
	cmd := shelltest.Command("read", "a", "b")
	cmd.Shell.Vars.SetString("IFS", "")
	cmd.Stdin = strings.NewReader("one two\n")

	require.NoError(t, cmd.Run())

	assert.Equal(t, "one two", cmd.Shell.Vars.Get("a"))
	assert.Equal(t, "", cmd.Shell.Vars.Get("b"))
}

func TestRead_escapedSeparatorJoins(t *testing.T) {
	cmd := shelltest.Command("read", "x", "y")
	cmd.Stdin = strings.NewReader("a\\ b c\n")

	require.NoError(t, cmd.Run())

	assert.Equal(t, "a b", cmd.Shell.Vars.Get("x"))
	assert.Equal(t, "c", cmd.Shell.Vars.Get("y"))
}

func TestRead_rawModeKeepsBackslashes(t *testing.T) {
	cmd := shelltest.Command("read", "-r", "x", "y")
	cmd.Stdin = strings.NewReader("a\\ b\n")

	require.NoError(t, cmd.Run())

	assert.Equal(t, `a\`, cmd.Shell.Vars.Get("x"))
	assert.Equal(t, "b", cmd.Shell.Vars.Get("y"))
}

func TestRead_lineContinuation(t *testing.T) {
	cmd := shelltest.Command("read", "a", "b")
	cmd.Stdin = strings.NewReader("one tw\\\no three\n")

	require.NoError(t, cmd.Run())

	// The escaped newline splices the lines together.
	assert.Equal(t, 0, cmd.ExitStatus)
	assert.Equal(t, "one", cmd.Shell.Vars.Get("a"))
	assert.Equal(t, "two three", cmd.Shell.Vars.Get("b"))
}

func TestRead_continuationStatusIsLastLines(t *testing.T) {
	// The first physical line terminates fine; the continuation line
	// hits EOF. The reported status is the last line's.
	cmd := shelltest.Command("read", "a")
	cmd.Stdin = strings.NewReader("one\\\ntwo")

	require.NoError(t, cmd.Run())

	assert.Equal(t, 1, cmd.ExitStatus)
	assert.Equal(t, "onetwo", cmd.Shell.Vars.Get("a"))
}

func TestRead_continuationInRawMode(t *testing.T) {
	// With -r a trailing backslash is plain content: no continuation.
	cmd := shelltest.Command("read", "-r", "a")
	stdin := strings.NewReader("one\\\ntwo\n")
	cmd.Stdin = stdin

	require.NoError(t, cmd.Run())

	assert.Equal(t, 0, cmd.ExitStatus)
	assert.Equal(t, `one\`, cmd.Shell.Vars.Get("a"))
	assert.Equal(t, 4, stdin.Len(), "second line stays in the stream")
}

func TestRead_array(t *testing.T) {
	cmd := shelltest.Command("read", "-a", "arr")
	cmd.Shell.Vars.SetArray("arr", []string{"stale", "values", "gone", "now"})
	cmd.Stdin = strings.NewReader("one two three\n")

	require.NoError(t, cmd.Run())

	assert.Equal(t, 0, cmd.ExitStatus)
	got, ok := cmd.Shell.Vars.GetArray("arr")
	require.True(t, ok)
	assert.Equal(t, []string{"one", "two", "three"}, got)
}

func TestRead_customDelimiter(t *testing.T) {
	cmd := shelltest.Command("read", "-d", ":", "a")
	stdin := strings.NewReader("x:y")
	cmd.Stdin = stdin

	require.NoError(t, cmd.Run())

	assert.Equal(t, 0, cmd.ExitStatus, "delimiter found counts as success")
	assert.Equal(t, "x", cmd.Shell.Vars.Get("a"))
	assert.Equal(t, 1, stdin.Len(), "bytes past the delimiter stay in the stream")
}

func TestRead_nulDelimiter(t *testing.T) {
	// -d '' delimits on the NUL byte, not "no delimiter".
	cmd := shelltest.Command("read", "-d", "", "a")
	cmd.Stdin = strings.NewReader("one\x00two\x00")

	require.NoError(t, cmd.Run())

	assert.Equal(t, 0, cmd.ExitStatus)
	assert.Equal(t, "one", cmd.Shell.Vars.Get("a"))
}

func TestRead_fixedByteCount(t *testing.T) {
	cmd := shelltest.Command("read", "-n", "3", "a")
	stdin := strings.NewReader("abcdef")
	cmd.Stdin = stdin

	require.NoError(t, cmd.Run())

	assert.Equal(t, 0, cmd.ExitStatus)
	assert.Equal(t, "abc", cmd.Shell.Vars.Get("a"))
	assert.Equal(t, 3, stdin.Len(), "remaining bytes stay in the stream")
}

func TestRead_fixedByteCountShortfall(t *testing.T) {
	cmd := shelltest.Command("read", "-n", "10", "a")
	cmd.Stdin = strings.NewReader("abc")

	require.NoError(t, cmd.Run())

	// A short read is not an error in fixed byte count mode.
	assert.Equal(t, 0, cmd.ExitStatus)
	assert.Equal(t, "abc", cmd.Shell.Vars.Get("a"))
}

func TestRead_fixedByteCountDefaultsToReply(t *testing.T) {
	cmd := shelltest.Command("read", "-n", "2")
	cmd.Stdin = strings.NewReader("xyz")

	require.NoError(t, cmd.Run())

	assert.Equal(t, 0, cmd.ExitStatus)
	assert.Equal(t, "xy", cmd.Shell.Vars.Get("REPLY"))
}

func TestRead_fixedByteCountIgnoresSplitting(t *testing.T) {
	cmd := shelltest.Command("read", "-n", "5", "a")
	cmd.Stdin = strings.NewReader("a b c")

	require.NoError(t, cmd.Run())

	assert.Equal(t, "a b c", cmd.Shell.Vars.Get("a"))
}

func TestRead_invalidIdentifier(t *testing.T) {
	cmd := shelltest.Command("read", "1bad")
	stdin := strings.NewReader("data\n")
	cmd.Stdin = stdin

	out, err := cmd.CombinedOutput()
	require.NoError(t, err)

	assert.Equal(t, 2, cmd.ExitStatus)
	assert.Contains(t, string(out), "not a valid identifier")
	assert.Equal(t, 5, stdin.Len(), "usage errors abort before any input is consumed")
}

func TestRead_invalidArrayIdentifier(t *testing.T) {
	cmd := shelltest.Command("read", "-a", "bad-name")
	cmd.Stdin = strings.NewReader("data\n")

	out, err := cmd.CombinedOutput()
	require.NoError(t, err)

	assert.Equal(t, 2, cmd.ExitStatus)
	assert.Contains(t, string(out), "not a valid identifier")
}

func TestRead_emptyLineBindsEmpty(t *testing.T) {
	cmd := shelltest.Command("read", "a")
	cmd.Shell.Vars.SetString("a", "stale")
	cmd.Stdin = strings.NewReader("\n")

	require.NoError(t, cmd.Run())

	assert.Equal(t, 0, cmd.ExitStatus)
	assert.Equal(t, "", cmd.Shell.Vars.Get("a"))
}

func TestRead_whitespaceCollapses(t *testing.T) {
	cmd := shelltest.Command("read", "x", "y")
	cmd.Stdin = strings.NewReader("  a \t  b  \n")

	require.NoError(t, cmd.Run())

	assert.Equal(t, "a", cmd.Shell.Vars.Get("x"))
	assert.Equal(t, "b", cmd.Shell.Vars.Get("y"))
}

func TestRead_emptyFieldsWithColonIFS(t *testing.T) {
	cmd := shelltest.Command("read", "a", "b", "c")
	cmd.Shell.Vars.SetString("IFS", ":")
	cmd.Stdin = strings.NewReader("x::z\n")

	require.NoError(t, cmd.Run())

	assert.Equal(t, "x", cmd.Shell.Vars.Get("a"))
	assert.Equal(t, "", cmd.Shell.Vars.Get("b"))
	assert.Equal(t, "z", cmd.Shell.Vars.Get("c"))
}

func TestRead_secondLineStaysInStream(t *testing.T) {
	cmd := shelltest.Command("read", "a")
	stdin := strings.NewReader("first\nsecond\n")
	cmd.Stdin = stdin

	require.NoError(t, cmd.Run())

	assert.Equal(t, "first", cmd.Shell.Vars.Get("a"))
	assert.Equal(t, len("second\n"), stdin.Len())
}
