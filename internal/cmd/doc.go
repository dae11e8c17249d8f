// Package cmd provides the command-line interface implementation for ziplookup.
//
// The CLI is a single cobra command, rendered through Fang by the main
// package. It takes exactly two positional arguments, STARTDIR and
// SEARCHFILENAME, and has no subcommands so that any directory name can be
// passed as STARTDIR.
//
// Flags:
//   - --trace: print a progress line for every visit
//   - --trace-some: print a progress line every 16384 visits
//   - --max-depth: nested archive budget (default 8)
//   - --summary: print the match count to stderr
//
// The search itself lives in the lookup package; this package only maps
// flags onto lookup.Options and wires stdout, stderr and the OS filesystem.
package cmd
