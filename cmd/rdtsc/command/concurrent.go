package command

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/rdtsc"
	"github.com/cwbudde/rdtsc/internal/affinity"
)

type concurrentParams struct {
	goroutines int
	reads      int
}

type workerResult struct {
	cpu       int
	pinned    bool
	elapsed   rdtsc.CycleCount
	decreases int
}

func concurrentCommand(globalParams *GlobalParams) *cobra.Command {
	var params concurrentParams

	cmd := &cobra.Command{
		Use:   "concurrent",
		Short: "Read the counter from several goroutines at once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := newLogger(globalParams)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			return runConcurrent(cmd.Context(), cmd.OutOrStdout(), log, params)
		},
	}
	cmd.Flags().IntVarP(&params.goroutines, "goroutines", "g", 8, "number of concurrent readers")
	cmd.Flags().IntVarP(&params.reads, "reads", "n", 1000, "reads per goroutine")

	return cmd
}

func runConcurrent(ctx context.Context, out io.Writer, log *zap.Logger, params concurrentParams) error {
	if params.goroutines < 1 || params.reads < 2 {
		return errors.Errorf("rdtsc: need at least 1 goroutine and 2 reads, got %d and %d",
			params.goroutines, params.reads)
	}

	cpus, err := affinity.Allowed()
	if err != nil {
		return err
	}

	results := make([]workerResult, params.goroutines)

	g, ctx := errgroup.WithContext(ctx)
	for i := range params.goroutines {
		g.Go(func() error {
			cpu := cpus[i%len(cpus)]

			unpin, err := affinity.Pin(cpu)
			if err != nil && !affinity.IsSoft(err) {
				return errors.Wrapf(err, "goroutine %d", i)
			}

			pinned := err == nil

			if err := ctx.Err(); err != nil {
				_ = unpin()
				return err
			}

			seq := make([]rdtsc.CycleCount, params.reads)
			rdtsc.Sample(seq)

			results[i] = workerResult{
				cpu:       cpu,
				pinned:    pinned,
				elapsed:   rdtsc.Elapsed(seq[0], seq[len(seq)-1]),
				decreases: rdtsc.Decreases(seq),
			}

			return errors.Wrapf(unpin(), "goroutine %d", i)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Fprintf(out, "%9s  %4s  %6s  %12s  %9s\n", "goroutine", "cpu", "pinned", "elapsed", "decreases")

	var failed []int

	for i, res := range results {
		fmt.Fprintf(out, "%9d  %4d  %6t  %12d  %9d\n", i, res.cpu, res.pinned, res.elapsed, res.decreases)

		if checkMonotonic(res.pinned, res.decreases) != nil {
			failed = append(failed, i)
		}
	}

	log.Debug("concurrent reads done", zap.Int("goroutines", params.goroutines), zap.Ints("failed", failed))

	if len(failed) > 0 {
		return errors.Wrapf(ErrNotMonotonic, "goroutines %v", failed)
	}

	return nil
}
