// Package command implements the rdtsc command tree.
package command

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// GlobalParams holds flags shared by every subcommand.
type GlobalParams struct {
	Verbose bool
}

// RootCommand returns the root command.
func RootCommand() *cobra.Command {
	var globalParams GlobalParams

	root := &cobra.Command{
		Use:          "rdtsc [command]",
		Short:        "Read the CPU cycle counter.",
		Long:         `rdtsc reads the processor's hardware cycle counter and checks that successive reads behave.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVarP(&globalParams.Verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		readCommand(),
		sampleCommand(&globalParams),
		concurrentCommand(&globalParams),
		infoCommand(&globalParams),
		benchCommand(&globalParams),
	)

	return root
}

// newLogger builds the zap logger for a run. Logs go to stderr so that
// command output on stdout stays parseable.
func newLogger(params *GlobalParams) (*zap.Logger, error) {
	if params.Verbose {
		return zap.NewDevelopment()
	}

	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true

	return cfg.Build()
}
