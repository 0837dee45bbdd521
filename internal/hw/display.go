package hw

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// WriterDisplay renders the task-manager overlay as plain text onto an
// io.Writer. It stands in for a framebuffer text-glyph renderer: same job,
// turning a row of cells into visible text, with no physical pixels
// underneath.
type WriterDisplay struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterDisplay wraps w as a Display.
func NewWriterDisplay(w io.Writer) *WriterDisplay {
	return &WriterDisplay{w: w}
}

func (d *WriterDisplay) Render(lines []string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintln(d.w, strings.Repeat("-", 40))
	for _, line := range lines {
		fmt.Fprintln(d.w, line)
	}
	fmt.Fprintln(d.w, strings.Repeat("-", 40))
}
