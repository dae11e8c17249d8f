package lookup

import "io"

// Reporter writes matched logical paths, one per line, as soon as they are
// found. Paths are not deduplicated.
type Reporter struct {
	w     io.Writer
	count int
}

func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Report writes path followed by a newline.
func (r *Reporter) Report(path string) error {
	if _, err := io.WriteString(r.w, path+"\n"); err != nil {
		return err
	}
	r.count++
	return nil
}

// Count returns the number of paths written so far.
func (r *Reporter) Count() int {
	return r.count
}
