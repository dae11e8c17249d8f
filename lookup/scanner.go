package lookup

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/klauspost/compress/zip"
)

// Logger receives diagnostics. Trace is used for sampled progress lines,
// Warn for skipped-but-expected conditions and Error for failures.
type Logger interface {
	Trace(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// Scanner searches archive contents for entries whose base name matches a
// key, descending into nested archives while a depth budget remains.
type Scanner struct {
	key      string
	sampler  *Sampler
	reporter *Reporter
	log      Logger
}

// NewScanner creates a Scanner for name. The name is lower-cased here, once.
func NewScanner(name string, sampler *Sampler, reporter *Reporter, log Logger) *Scanner {
	return &Scanner{
		key:      strings.ToLower(name),
		sampler:  sampler,
		reporter: reporter,
		log:      log,
	}
}

// Scan searches the archive held in data, reporting matches under
// logicalPath. remaining is the number of further nesting levels that may be
// opened below this archive. Failures are logged and never abort the caller.
func (s *Scanner) Scan(logicalPath string, data []byte, remaining int) {
	zr, err := openContainer(data)
	if err != nil {
		s.log.Error("failed to open %q as a ZIP archive: %v", logicalPath, err)
		return
	}

	// The entry list is fixed before any entry is opened.
	entries := slices.Clone(zr.File)
	for _, f := range entries {
		s.scanEntry(logicalPath, f, remaining)
	}
}

func (s *Scanner) scanEntry(archivePath string, f *zip.File, remaining int) {
	name := f.Name
	entryPath := archivePath + "[" + name + "]"
	if s.sampler.ShouldTrace() {
		s.log.Trace("A> %s", entryPath)
	}

	rc, err := f.Open()
	if err != nil {
		s.log.Error("failed to obtain %q from %q: %v", name, archivePath, err)
		return
	}
	defer rc.Close()

	if f.FileInfo().IsDir() {
		return
	}

	if IsContainerName(name) {
		err := s.descend(archivePath, entryPath, name, rc, remaining)
		switch {
		case errors.Is(err, ErrDepthExceeded):
			s.log.Warn("skipping %v", err)
		case err != nil:
			s.log.Error("%v", err)
		}
		return
	}

	if strings.ToLower(baseName(name)) == s.key {
		s.report(entryPath)
	}
}

// descend reads a nested archive into memory and scans it with one less
// level of budget. The nested archive's own name is not matched.
func (s *Scanner) descend(archivePath, entryPath, name string, r io.Reader, remaining int) error {
	if remaining <= 0 {
		return fmt.Errorf("%q in %q: %w", name, archivePath, ErrDepthExceeded)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read %q from %q: %w", name, archivePath, err)
	}
	s.Scan(entryPath, data, remaining-1)
	return nil
}

func (s *Scanner) report(path string) {
	if err := s.reporter.Report(path); err != nil {
		s.log.Error("failed to write match %q: %v", path, err)
	}
}
