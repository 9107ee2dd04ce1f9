// Package app runs the huffcodes pipeline: read a file, count its bytes,
// build the Huffman tree, and print the code table.
package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/chronos-tachyon/hufftree"
	"github.com/chronos-tachyon/hufftree/internal/cliconfig"
	"github.com/chronos-tachyon/hufftree/internal/compare"
	"github.com/chronos-tachyon/hufftree/internal/frequency"
	"github.com/chronos-tachyon/hufftree/internal/report"
	"github.com/chronos-tachyon/hufftree/internal/watch"
)

// App prints Huffman code tables for the configured input.
type App struct {
	cfg    cliconfig.Config
	out    io.Writer
	log    zerolog.Logger
	format report.Format
	order  report.Order

	mu sync.Mutex
}

// New validates cfg and returns an App writing reports to out.
func New(cfg cliconfig.Config, out io.Writer, log zerolog.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	order, err := report.ParseOrder(cfg.Order)
	if err != nil {
		return nil, err
	}
	return &App{cfg: cfg, out: out, log: log, format: format, order: order}, nil
}

// Run prints the report once and, in watch mode, again after every change
// to the input until ctx is done.
func (a *App) Run(ctx context.Context) error {
	if err := a.Generate(); err != nil {
		return err
	}
	if !a.cfg.Watch {
		return nil
	}

	w := watch.New(a.cfg.Input, a.cfg.Debounce, a.log, func() {
		if err := a.Generate(); err != nil {
			a.log.Error().Err(err).Str("input", a.cfg.Input).Msg("regenerate")
		}
	})
	a.log.Info().Str("input", a.cfg.Input).Dur("debounce", a.cfg.Debounce).Msg("watching for changes")
	return w.Run(ctx)
}

// Generate reads the input and writes one report.
func (a *App) Generate() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	f, err := os.Open(a.cfg.Input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	defer f.Close()

	// keep a copy of the input only when it has to be packed again
	var data bytes.Buffer
	var in io.Reader = f
	if a.cfg.Compare {
		in = io.TeeReader(f, &data)
	}

	counts, err := frequency.Count(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	freqs := counts.Frequencies()
	a.log.Debug().Str("input", a.cfg.Input).Int64("bytes", counts.Total()).Int("symbols", len(freqs)).Msg("counted")

	if len(freqs) == 0 {
		a.log.Warn().Str("input", a.cfg.Input).Msg("input is empty")
		return a.write(report.Empty(a.cfg.Input))
	}

	root, err := hufftree.BuildTree(freqs)
	if err != nil {
		return fmt.Errorf("build tree for %s: %w", a.cfg.Input, err)
	}
	table := hufftree.ExtractCodes(root)

	r, err := report.Build(a.cfg.Input, freqs, root, table, a.order)
	if err != nil {
		return fmt.Errorf("build report: %w", err)
	}

	if a.cfg.Compare {
		res, err := compare.Measure(data.Bytes(), table)
		if err != nil {
			return fmt.Errorf("compare: %w", err)
		}
		r.Huff0Bytes = res.Huff0Bytes
		a.log.Info().
			Int("input_bytes", res.InputBytes).
			Int64("packed_bytes", res.EncodedBytes).
			Int("huff0_bytes", res.Huff0Bytes).
			Msg("compared")
	}

	return a.write(r)
}

func (a *App) write(r report.Report) error {
	if err := report.Write(a.out, r, a.format); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
