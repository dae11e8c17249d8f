package cmd

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/dendrascience/ziplookup/internal/logger"
	"github.com/dendrascience/ziplookup/lookup"
	"github.com/dendrascience/ziplookup/version"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// ErrUsage is returned for malformed invocations. The message doubles as the
// usage line.
var ErrUsage = errors.New("usage: ziplookup [--trace|--trace-some] STARTDIR SEARCHFILENAME")

// NewRootCmd creates and returns the root cobra command for the ziplookup CLI.
func NewRootCmd() *cobra.Command {
	var (
		trace     bool
		traceSome bool
		summary   bool
		maxDepth  int
	)

	rootCmd := &cobra.Command{
		Use:   "ziplookup [--trace|--trace-some] STARTDIR SEARCHFILENAME",
		Short: "Find files by name in a directory tree and inside nested ZIP, JAR, EAR and WAR archives",
		Long: `ziplookup searches STARTDIR for files whose name equals SEARCHFILENAME,
ignoring case. Archives ending in .zip, .jar, .ear or .war are opened and
searched too, including archives nested inside other archives up to
--max-depth levels deep.

Each match is printed on its own line. Entries inside archives are printed as
the archive path followed by the entry name in brackets, for example:

  /opt/app/server.ear[lib/core.jar][org/example/Target.class]

Diagnostics and trace lines are written to stderr.`,
		Version:      version.GetFullVersion(),
		Args:         validateArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := lookup.DefaultOptions()
			opts.MaxDepth = maxDepth
			switch {
			case trace:
				opts.TraceStride = lookup.TraceEvery
			case traceSome:
				opts.TraceStride = lookup.SomeStride
			}
			return runLookup(cmd, args[0], args[1], opts, summary)
		},
	}

	rootCmd.Flags().BoolVar(&trace, "trace", false, "Trace every directory and archive entry visited")
	rootCmd.Flags().BoolVar(&traceSome, "trace-some", false, fmt.Sprintf("Trace every %dth visit", lookup.SomeStride))
	rootCmd.Flags().IntVar(&maxDepth, "max-depth", lookup.MaxDepth, "Maximum number of nested archive levels to open")
	rootCmd.Flags().BoolVar(&summary, "summary", false, "Print the number of matches to stderr when done")
	rootCmd.MarkFlagsMutuallyExclusive("trace", "trace-some")

	return rootCmd
}

func validateArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w (got %d arguments)", ErrUsage, len(args))
	}
	if !utf8.ValidString(args[1]) {
		return fmt.Errorf("%w: SEARCHFILENAME is not valid UTF-8", ErrUsage)
	}
	return nil
}

func runLookup(cmd *cobra.Command, startDir, name string, opts lookup.Options, summary bool) error {
	log := logger.NewConsoleLogger(cmd.ErrOrStderr())

	count, err := lookup.Find(afero.NewOsFs(), startDir, name, opts, cmd.OutOrStdout(), log)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	if summary {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d match(es)\n", count)
	}
	return nil
}
