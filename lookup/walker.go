package lookup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"
)

// Walker traverses a directory tree with an explicit stack, matching plain
// files by name and handing archives to a Scanner.
type Walker struct {
	fs       afero.Fs
	scanner  *Scanner
	maxDepth int
}

// NewWalker creates a Walker over fsys. Archives found on disk are scanned
// with a budget of maxDepth nested levels.
func NewWalker(fsys afero.Fs, scanner *Scanner, maxDepth int) *Walker {
	return &Walker{
		fs:       fsys,
		scanner:  scanner,
		maxDepth: maxDepth,
	}
}

// Walk searches the tree rooted at start. Directories are visited depth
// first in no particular sibling order. Errors are logged and the offending
// directory, file or archive is skipped.
func (w *Walker) Walk(start string) {
	log := w.scanner.log
	stack := []string{start}

	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if w.scanner.sampler.ShouldTrace() {
			log.Trace("F> %s", dir)
		}

		names, err := w.readDirNames(dir)
		if err != nil {
			log.Error("failed to read entries of %q: %v", dir, err)
			if len(names) == 0 {
				continue
			}
		}

		for _, name := range names {
			path := joinPath(dir, name)
			info, err := w.lstat(path)
			if err != nil {
				log.Error("failed to read metadata of %q: %v", path, err)
				continue
			}
			if info.IsDir() {
				stack = append(stack, path)
				continue
			}
			w.visitFile(path, name)
		}
	}
}

func (w *Walker) visitFile(path, name string) {
	if err := checkName(path); err != nil {
		w.scanner.log.Error("%v", err)
		return
	}

	if IsContainerName(name) {
		data, err := w.readFile(path)
		if err != nil {
			w.scanner.log.Error("%v", err)
			return
		}
		w.scanner.Scan(path, data, w.maxDepth)
		return
	}

	if strings.ToLower(name) == w.scanner.key {
		w.scanner.report(path)
	}
}

func (w *Walker) readDirNames(dir string) ([]string, error) {
	f, err := w.fs.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.Readdirnames(-1)
}

// lstat does not follow symlinks when the filesystem supports it, so linked
// directories are treated as files and never descended into.
func (w *Walker) lstat(path string) (os.FileInfo, error) {
	if l, ok := w.fs.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(path)
		return info, err
	}
	return w.fs.Stat(path)
}

func (w *Walker) readFile(path string) ([]byte, error) {
	f, err := w.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	return data, nil
}

// checkName rejects paths that cannot be printed as text.
func checkName(path string) error {
	if !utf8.ValidString(path) {
		return fmt.Errorf("path %q: %w", path, ErrNotUTF8)
	}
	return nil
}

// joinPath appends name to dir without cleaning dir, so reported paths keep
// the start directory exactly as given.
func joinPath(dir, name string) string {
	if dir != "" && os.IsPathSeparator(dir[len(dir)-1]) {
		return dir + name
	}
	return dir + string(filepath.Separator) + name
}
