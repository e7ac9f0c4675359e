package command

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/rdtsc"
	"github.com/cwbudde/rdtsc/internal/affinity"
	"github.com/cwbudde/rdtsc/internal/cpu"
)

const overheadRounds = 10000

func infoCommand(globalParams *GlobalParams) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Describe the counter and the processor it runs on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := newLogger(globalParams)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			return runInfo(cmd.OutOrStdout(), log)
		},
	}
}

func runInfo(out io.Writer, log *zap.Logger) error {
	unpin, _, err := pinTo(log, -1)
	if err != nil {
		return err
	}
	defer unpin()

	overhead, err := rdtsc.Overhead(overheadRounds)
	if err != nil {
		return err
	}

	cpus, err := affinity.Allowed()
	if err != nil {
		return err
	}

	features := cpu.DetectFeatures()

	fmt.Fprintf(out, "%-10s %s\n", "mechanism", rdtsc.Mechanism())
	fmt.Fprintf(out, "%-10s %s/%s\n", "platform", runtime.GOOS, features.Architecture)
	fmt.Fprintf(out, "%-10s %d of %d\n", "cpus", len(cpus), runtime.NumCPU())
	fmt.Fprintf(out, "%-10s %d\n", "overhead", overhead)
	fmt.Fprintf(out, "%-10s %s\n", "features", strings.Join(features.Flags, " "))

	return nil
}
