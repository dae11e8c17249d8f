package lookup

import (
	"bytes"
	"strings"

	"github.com/klauspost/compress/zip"
	"github.com/klauspost/compress/zstd"
)

// containerExtensions lists the lower-cased suffixes of ZIP-family archives.
var containerExtensions = []string{".zip", ".jar", ".ear", ".war"}

// zstdDecompressor is shared by every opened archive so decoders are pooled
// across the whole run.
var zstdDecompressor = zstd.ZipDecompressor()

// IsContainerName reports whether name has a ZIP-family extension,
// ignoring case.
func IsContainerName(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range containerExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// openContainer opens data as a ZIP archive. Entries compressed with
// Zstandard (WinZip method 93) are readable in addition to store and deflate.
func openContainer(data []byte) (*zip.Reader, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if zr == nil {
		return nil, err
	}
	// A reader returned alongside an error (insecure entry names) is fully
	// parsed; entry names are only printed, never used as paths.
	zr.RegisterDecompressor(zstd.ZipMethodWinZip, zstdDecompressor)
	return zr, nil
}

// baseName returns the part of an entry name after the last '/' or '\'.
func baseName(name string) string {
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		return name[i+1:]
	}
	return name
}
