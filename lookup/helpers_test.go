package lookup

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

type zipEntry struct {
	name string
	data []byte
}

// buildZip returns an archive holding entries in order. Names ending in '/'
// become directory markers.
func buildZip(t *testing.T, entries ...zipEntry) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, e := range entries {
		fw, err := w.Create(e.name)
		require.NoError(t, err)
		if strings.HasSuffix(e.name, "/") {
			continue
		}
		_, err = fw.Write(e.data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

// buildStored is like buildZip but stores entries uncompressed, so the
// payload bytes appear verbatim in the result.
func buildStored(t *testing.T, entries ...zipEntry) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, e := range entries {
		fw, err := w.CreateHeader(&zip.FileHeader{Name: e.name, Method: zip.Store})
		require.NoError(t, err)
		_, err = fw.Write(e.data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

// nestedChain returns an archive with levels archives nested below it, the
// innermost holding leaf. Level names count down to l1.zip.
func nestedChain(t *testing.T, levels int, leaf string) []byte {
	t.Helper()
	data := buildZip(t, zipEntry{leaf, []byte("leaf")})
	for i := 1; i <= levels; i++ {
		data = buildZip(t, zipEntry{fmt.Sprintf("l%d.zip", i), data})
	}
	return data
}

func chainPath(root string, levels int, leaf string) string {
	var b strings.Builder
	b.WriteString(root)
	for i := levels; i >= 1; i-- {
		fmt.Fprintf(&b, "[l%d.zip]", i)
	}
	b.WriteString("[" + leaf + "]")
	return b.String()
}

// sep joins path parts the way the walker does.
func sep(parts ...string) string {
	return strings.Join(parts, string(filepath.Separator))
}

type recordLogger struct {
	traces []string
	warns  []string
	errors []string
}

func (l *recordLogger) Trace(format string, args ...any) {
	l.traces = append(l.traces, fmt.Sprintf(format, args...))
}

func (l *recordLogger) Warn(format string, args ...any) {
	l.warns = append(l.warns, fmt.Sprintf(format, args...))
}

func (l *recordLogger) Error(format string, args ...any) {
	l.errors = append(l.errors, fmt.Sprintf(format, args...))
}

func matches(out *bytes.Buffer) []string {
	s := strings.TrimSuffix(out.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// failingFs fails Open or Stat for selected paths. It deliberately hides
// LstatIfPossible so the walker falls back to Stat.
type failingFs struct {
	afero.Fs
	openErr map[string]error
	statErr map[string]error
}

func (f failingFs) Open(name string) (afero.File, error) {
	if err, ok := f.openErr[name]; ok {
		return nil, err
	}
	return f.Fs.Open(name)
}

func (f failingFs) Stat(name string) (os.FileInfo, error) {
	if err, ok := f.statErr[name]; ok {
		return nil, err
	}
	return f.Fs.Stat(name)
}

func writeFile(t *testing.T, fsys afero.Fs, path string, data []byte) {
	t.Helper()
	require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, afero.WriteFile(fsys, path, data, 0o644))
}
