package command

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/rdtsc"
	"github.com/cwbudde/rdtsc/internal/affinity"
)

// ErrNotMonotonic is returned when a sequence of reads pinned to one CPU
// drops more than once, which a single wraparound cannot explain. Unpinned
// sequences are only reported: a migration explains any drop.
var ErrNotMonotonic = errors.New("rdtsc: counter went backwards more than once")

// maxDecreases is the number of drops a sequence may show: one, for the 2^64
// wraparound.
const maxDecreases = 1

type sampleParams struct {
	count int
	cpu   int
}

type sampleStats struct {
	pinned             bool
	first, last        rdtsc.CycleCount
	minDelta, maxDelta rdtsc.CycleCount
	decreases          int
}

func sampleCommand(globalParams *GlobalParams) *cobra.Command {
	var params sampleParams

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Take back-to-back reads on one CPU and check they never go backwards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := newLogger(globalParams)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			return runSample(cmd.OutOrStdout(), log, params)
		},
	}
	cmd.Flags().IntVarP(&params.count, "count", "n", 1000, "number of reads")
	cmd.Flags().IntVar(&params.cpu, "cpu", -1, "logical CPU to pin to (-1: first allowed)")

	return cmd
}

func runSample(out io.Writer, log *zap.Logger, params sampleParams) error {
	if params.count < 2 {
		return errors.Errorf("rdtsc: --count must be at least 2, got %d", params.count)
	}

	unpin, pinned, err := pinTo(log, params.cpu)
	if err != nil {
		return err
	}
	defer unpin()

	seq := make([]rdtsc.CycleCount, params.count)
	rdtsc.Sample(seq)

	stats := summarize(seq)
	stats.pinned = pinned
	log.Debug("sampled",
		zap.Int("count", params.count),
		zap.Uint64("first", uint64(stats.first)),
		zap.Uint64("last", uint64(stats.last)))

	fmt.Fprintf(out, "%8s  %6s  %20s  %20s  %10s  %10s  %9s\n",
		"reads", "pinned", "first", "last", "min-delta", "max-delta", "decreases")
	fmt.Fprintf(out, "%8d  %6t  %20d  %20d  %10d  %10d  %9d\n",
		params.count, stats.pinned, stats.first, stats.last, stats.minDelta, stats.maxDelta, stats.decreases)

	return checkMonotonic(stats.pinned, stats.decreases)
}

// checkMonotonic applies the same rule to every command: only a pinned
// sequence can prove the counter went backwards.
func checkMonotonic(pinned bool, decreases int) error {
	if pinned && decreases > maxDecreases {
		return errors.Wrapf(ErrNotMonotonic, "%d drops", decreases)
	}

	return nil
}

// pinTo binds the goroutine to cpu, or to the first allowed CPU when cpu is
// negative, and reports whether the binding took. Platforms without pinning
// only get a warning.
func pinTo(log *zap.Logger, cpu int) (unpin func(), pinned bool, err error) {
	if cpu < 0 {
		cpus, err := affinity.Allowed()
		if err != nil {
			return nil, false, err
		}

		cpu = cpus[0]
	}

	release, err := affinity.Pin(cpu)
	switch {
	case err == nil:
		log.Debug("pinned", zap.Int("cpu", cpu))
	case affinity.IsSoft(err):
		log.Warn("reads may migrate between cpus", zap.Error(err))
	default:
		return nil, false, err
	}

	return func() {
		if err := release(); err != nil {
			log.Error("unpin", zap.Int("cpu", cpu), zap.Error(err))
		}
	}, err == nil, nil
}

func summarize(seq []rdtsc.CycleCount) sampleStats {
	stats := sampleStats{
		first:     seq[0],
		last:      seq[len(seq)-1],
		minDelta:  ^rdtsc.CycleCount(0),
		decreases: rdtsc.Decreases(seq),
	}

	for i := 1; i < len(seq); i++ {
		d := rdtsc.Elapsed(seq[i-1], seq[i])
		if seq[i] < seq[i-1] {
			// A drop may be a migration, whose modular delta means nothing.
			continue
		}

		stats.minDelta = min(stats.minDelta, d)
		stats.maxDelta = max(stats.maxDelta, d)
	}

	if stats.minDelta > stats.maxDelta {
		stats.minDelta = 0
	}

	return stats
}
