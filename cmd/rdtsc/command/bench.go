package command

import (
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/rdtsc"
)

type benchParams struct {
	file       string
	out        string
	iterations int
	cpu        int
}

type phase struct {
	name   string
	cycles rdtsc.CycleCount
}

func benchCommand(globalParams *GlobalParams) *cobra.Command {
	var params benchParams

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Count the cycles spent loading, digesting and writing a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := newLogger(globalParams)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			return runBench(afero.NewOsFs(), cmd.OutOrStdout(), log, params)
		},
	}
	cmd.Flags().StringVarP(&params.file, "file", "f", "", "input file to load")
	cmd.Flags().StringVarP(&params.out, "out", "o", "", "write the input back to this path and count it (skipped if empty)")
	cmd.Flags().IntVarP(&params.iterations, "iterations", "n", 10, "runs averaged for the digest phase")
	cmd.Flags().IntVar(&params.cpu, "cpu", -1, "logical CPU to pin to (-1: first allowed)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runBench(fs afero.Fs, out io.Writer, log *zap.Logger, params benchParams) error {
	unpin, _, err := pinTo(log, params.cpu)
	if err != nil {
		return err
	}
	defer unpin()

	var (
		data    []byte
		loadErr error
	)

	start := rdtsc.Read()
	data, loadErr = afero.ReadFile(fs, params.file)
	load := rdtsc.Elapsed(start, rdtsc.Read())

	if loadErr != nil {
		return errors.Wrap(loadErr, "rdtsc: load input")
	}

	phases := []phase{{"load", load}}

	var sum uint64

	digest, err := rdtsc.Measure(func() { sum = xxhash.Sum64(data) }, params.iterations)
	if err != nil {
		return err
	}

	phases = append(phases, phase{"digest", digest})
	log.Debug("digest", zap.Uint64("xxhash", sum), zap.Int("bytes", len(data)))

	if params.out != "" {
		start := rdtsc.Read()
		err := afero.WriteFile(fs, params.out, data, 0o644)
		write := rdtsc.Elapsed(start, rdtsc.Read())

		if err != nil {
			return errors.Wrap(err, "rdtsc: write output")
		}

		phases = append(phases, phase{"write", write})
	}

	fmt.Fprintf(out, "%d bytes, digest averaged over %d runs\n", len(data), params.iterations)
	writeBenchReport(out, phases, len(data))

	return nil
}

// writeBenchReport prints each phase's count, its share of the total and
// its cost per byte, followed by the total.
func writeBenchReport(out io.Writer, phases []phase, size int) {
	var total rdtsc.CycleCount
	for _, p := range phases {
		total += p.cycles
	}

	fmt.Fprintf(out, "%-8s  %16s  %8s  %12s\n", "phase", "cycles", "share", "cycles/byte")

	for _, p := range phases {
		share := 0.0
		if total > 0 {
			share = 100 * float64(p.cycles) / float64(total)
		}

		fmt.Fprintf(out, "%-8s  %16d  %7.3f%%  %12.2f\n", p.name, p.cycles, share, rdtsc.PerByte(p.cycles, size))
	}

	fmt.Fprintf(out, "%-8s  %16d  %7.3f%%  %12.2f\n", "total", total, 100.0, rdtsc.PerByte(total, size))
}
