// Package main provides the ziplookup command-line interface.
//
// ziplookup finds every file with a given name, ignoring case, under a
// directory tree. ZIP-family archives (.zip, .jar, .ear, .war) are searched as
// well, including archives nested inside other archives, which makes it
// useful for hunting a single artifact such as a vulnerable class file across
// deployment trees.
//
// Usage:
//
//	ziplookup [--trace|--trace-some] STARTDIR SEARCHFILENAME
//
// Matches are printed to stdout, one per line; everything else goes to
// stderr. The exit status is 1 for usage errors and 0 otherwise, whether or
// not anything matched.
package main
