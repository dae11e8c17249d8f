package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/dendrascience/ziplookup/internal/cmd"
	"github.com/dendrascience/ziplookup/version"
)

func main() {
	// No man or completion subcommands: STARTDIR must never be read as one.
	err := fang.Execute(context.Background(), cmd.NewRootCmd(),
		fang.WithVersion(version.GetFullVersion()),
		fang.WithoutManpage(),
		fang.WithoutCompletions(),
	)
	if err != nil {
		os.Exit(1)
	}
}
