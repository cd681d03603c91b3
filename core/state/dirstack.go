package state

// DirStack is the pushd/popd directory stack. The current working
// directory is not stored here; the shell prepends it when printing.
type DirStack struct {
	stack []string
}

// NewDirStack creates an empty directory stack.
func NewDirStack() *DirStack {
	return &DirStack{}
}

// Push adds dir to the top of the stack.
func (d *DirStack) Push(dir string) {
	d.stack = append(d.stack, dir)
}

// Pop removes and returns the top of the stack. The boolean is false
// when the stack is empty.
func (d *DirStack) Pop() (string, bool) {
	if len(d.stack) == 0 {
		return "", false
	}
	top := d.stack[len(d.stack)-1]
	d.stack = d.stack[:len(d.stack)-1]
	return top, true
}

// Clear empties the stack.
func (d *DirStack) Clear() {
	d.stack = nil
}

// Entries returns the stack entries, most recently pushed first.
func (d *DirStack) Entries() []string {
	out := make([]string, 0, len(d.stack))
	for i := len(d.stack) - 1; i >= 0; i-- {
		out = append(out, d.stack[i])
	}
	return out
}

// Len returns the number of stacked directories.
func (d *DirStack) Len() int {
	return len(d.stack)
}
