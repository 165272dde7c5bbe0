package output

import (
	"fmt"
	"io"
	"os"
)

// Splog provides plain message output for the CLI.
type Splog struct {
	writer io.Writer
}

// NewSplog creates a new splog instance
func NewSplog() *Splog {
	return &Splog{writer: os.Stdout}
}

// Info writes an info message
func (s *Splog) Info(format string, args ...interface{}) {
	fmt.Fprintf(s.writer, format+"\n", args...)
}

// Warn writes a warning message
func (s *Splog) Warn(format string, args ...interface{}) {
	fmt.Fprintf(s.writer, "⚠️  "+format+"\n", args...)
}

// Page writes pre-rendered output verbatim
func (s *Splog) Page(content string) {
	fmt.Fprint(s.writer, content)
}
