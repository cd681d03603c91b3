package shell

import (
	"io"
	"os"
)

// IO bundles the shell's input and output streams.
type IO struct {
	In  io.ReadCloser
	Out io.WriteCloser
	Err io.WriteCloser
}

// NewIO adapts plain readers and writers into an IO. Nil streams act
// like /dev/null: reads fail closed and writes are discarded.
func NewIO(in io.Reader, out, errOut io.Writer) *IO {
	return &IO{
		In:  toReadCloser(in),
		Out: toWriteCloser(out),
		Err: toWriteCloser(errOut),
	}
}

func toReadCloser(r io.Reader) io.ReadCloser {
	if r == nil {
		return &closedReader{}
	}
	if rc, ok := r.(io.ReadCloser); ok {
		return rc
	}
	return io.NopCloser(r)
}

func toWriteCloser(w io.Writer) io.WriteCloser {
	if w == nil {
		return &nopWriteCloser{io.Discard}
	}
	if wc, ok := w.(io.WriteCloser); ok {
		return wc
	}
	return &nopWriteCloser{w}
}

// closedReader implements io.ReadCloser and always fails reads.
type closedReader struct{}

var _ io.ReadCloser = (*closedReader)(nil)

func (*closedReader) Read([]byte) (int, error) { return 0, os.ErrClosed }
func (*closedReader) Close() error             { return nil }

type nopWriteCloser struct {
	io.Writer
}

func (*nopWriteCloser) Close() error { return nil }
