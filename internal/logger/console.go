// Package logger provides the diagnostic console logger for ziplookup.
//
// Everything that is not a match goes through a ConsoleLogger: I/O failures,
// archive parse failures, depth-limit notices and trace lines. Output is
// line-oriented and safe for concurrent use, although the lookup itself is
// single-threaded.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ConsoleLogger writes diagnostics to a writer, one message per line.
// Warnings and errors are coloured when the writer is a terminal.
// Trace lines are never coloured.
type ConsoleLogger struct {
	writer      io.Writer
	mutex       sync.Mutex
	colorOutput bool
	warn        *color.Color
	fail        *color.Color
}

// NewConsoleLogger creates a ConsoleLogger that writes to the provided io.Writer.
// If writer is nil, messages are silently discarded.
func NewConsoleLogger(writer io.Writer) *ConsoleLogger {
	cl := &ConsoleLogger{
		writer:      writer,
		colorOutput: isTerminal(writer),
		warn:        color.New(color.FgYellow),
		fail:        color.New(color.FgRed),
	}
	if cl.colorOutput {
		// color.NoColor is derived from stdout; stderr may be a TTY on its own.
		cl.warn.EnableColor()
		cl.fail.EnableColor()
	}
	return cl
}

// isTerminal reports whether w is an *os.File attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Trace logs a progress line verbatim.
func (cl *ConsoleLogger) Trace(format string, args ...any) {
	cl.write(nil, format, args...)
}

// Warn logs a non-error notice, such as a skipped over-deep archive.
func (cl *ConsoleLogger) Warn(format string, args ...any) {
	cl.write(cl.warn, format, args...)
}

// Error logs a failure that caused a path, entry or archive to be skipped.
func (cl *ConsoleLogger) Error(format string, args ...any) {
	cl.write(cl.fail, format, args...)
}

func (cl *ConsoleLogger) write(c *color.Color, format string, args ...any) {
	if cl.writer == nil {
		return
	}
	msg := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	if c != nil && cl.colorOutput {
		msg = c.Sprint(msg)
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()
	fmt.Fprintln(cl.writer, msg)
}
