package main

import (
	"bufio"
	"os"

	"github.com/spf13/cobra"
	"github.com/tusharlock10/memfence/internal/guard"
	"github.com/tusharlock10/memfence/internal/logging"
)

// version is set at build time via -ldflags "-X main.version=<version>"
var version string

func main() {
	rootCmd := &cobra.Command{
		Use:     "memfence",
		Short:   "memfence — caps the current process's memory budget to shut out debuggers",
		Version: version,
		RunE:    run,
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	sink := logging.NewLogrusSink()

	if guard.New(sink).Enable() {
		sink.Log(logging.Info, "Protection active!")
	} else {
		sink.Log(logging.Error, "Failed to set protection!")
	}

	sink.Log(logging.Info, "Press ENTER to close program.")
	bufio.NewReader(os.Stdin).ReadString('\n') //nolint:errcheck
	return nil
}
