package extstat

import (
	"fmt"
	"io"
)

// Logger provides conditional debug output.
type Logger struct {
	enabled bool
	w       io.Writer
}

// NewLogger returns a Logger writing to w when enabled is set.
func NewLogger(enabled bool, w io.Writer) Logger {
	return Logger{enabled: enabled, w: w}
}

// Printf prints debug output if logging is enabled.
func (l Logger) Printf(format string, args ...any) {
	if l.enabled && l.w != nil {
		fmt.Fprintf(l.w, format, args...)
	}
}
