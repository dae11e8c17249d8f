package lookup

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/spf13/afero"
)

// MaxDepth is the default number of nested archive levels opened below an
// archive found on disk.
const MaxDepth = 8

// Options configures a lookup.
type Options struct {
	// MaxDepth bounds archive nesting. Zero scans archives on disk but opens
	// nothing nested inside them.
	MaxDepth int
	// TraceStride is the number of visits between progress lines.
	// TraceOff disables them.
	TraceStride int
}

// DefaultOptions returns MaxDepth nesting with tracing disabled.
func DefaultOptions() Options {
	return Options{MaxDepth: MaxDepth, TraceStride: TraceOff}
}

// Find searches the tree rooted at start on fsys for files and archive
// entries named name, ignoring case. Matches are written to out one per line
// and diagnostics go to log. It returns the number of matches written.
//
// Only invalid arguments produce an error; I/O and archive failures are
// logged and skipped.
func Find(fsys afero.Fs, start, name string, opts Options, out io.Writer, log Logger) (int, error) {
	if !utf8.ValidString(name) {
		return 0, fmt.Errorf("search name %q: %w", name, ErrNotUTF8)
	}
	if opts.MaxDepth < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeDepth, opts.MaxDepth)
	}

	reporter := NewReporter(out)
	scanner := NewScanner(name, NewSampler(opts.TraceStride), reporter, log)
	NewWalker(fsys, scanner, opts.MaxDepth).Walk(start)
	return reporter.Count(), nil
}
