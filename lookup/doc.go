// Package lookup finds files by case-insensitive base name under a directory
// tree, including files nested inside ZIP-family archives.
//
// The search has two layers:
//
// Directory Walk:
//   - Iterative, stack-based traversal of a filesystem (afero.Fs)
//   - Symlinked directories are not descended into
//   - Unreadable directories, files and metadata are logged and skipped
//
// Archive Scan:
//   - Archives are recognised by extension: .zip, .jar, .ear and .war
//   - Nested archives are read into memory and scanned recursively
//   - Recursion is bounded by a depth budget (MaxDepth by default)
//   - A malformed archive only aborts its own subtree
//
// Matches are reported as logical paths. A file on disk is reported by its
// path; an archive entry is reported as the path of its archive followed by
// the entry name in brackets, so an entry two archives deep looks like
// "dir/outer.ear[lib/mid.jar][com/example/Target.class]".
//
// A single Sampler is shared by both layers and emits "F> " (directory) and
// "A> " (archive entry) progress lines every Nth visit.
//
// Nothing in this package runs concurrently; output order follows discovery
// order and sibling order follows the underlying directory listing.
package lookup
