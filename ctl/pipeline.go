// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package ctl

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/molecula/analyzer"
	"github.com/molecula/analyzer/dci"
	"github.com/molecula/analyzer/errors"
	"github.com/molecula/analyzer/logger"
)

// ParseMinSupport parses a minimum support ratio given on the command line.
func ParseMinSupport(s string) (float64, error) {
	ratio, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Newf(errors.ErrConfiguration, "invalid minimum support: %q", s)
	}
	if err := analyzer.ValidateMinSupportRatio(ratio); err != nil {
		return 0, err
	}
	return ratio, nil
}

// pipeline is the state shared by the steps of one command run.
type pipeline struct {
	*analyzer.CmdIO
	config *Config
	stats  *analyzer.Stats
}

// newPipeline validates config and configures logging. It must be called
// before touching the command's input.
func newPipeline(cio *analyzer.CmdIO, config *Config) (*pipeline, error) {
	if config == nil {
		config = NewConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	cio.SetLogger(logger.NewLogger(cio.Stderr, config.Verbose))
	return &pipeline{
		CmdIO:  cio,
		config: config,
		stats:  analyzer.NewStats(),
	}, nil
}

// ingest reads and filters the records of stdin.
func (p *pipeline) ingest() (*analyzer.Ingestion, error) {
	filter, err := p.config.Filter()
	if err != nil {
		return nil, err
	}
	return analyzer.Ingest(p.Stdin, analyzer.IngestOptions{
		Recidivists: p.config.Recidivists,
		Filter:      filter,
		SizeHint:    p.config.SizeHint,
		Logger:      p.Logger(),
		Stats:       p.stats,
	})
}

// encode transposes the accepted records into a matrix.
func (p *pipeline) encode(ing *analyzer.Ingestion, enc *analyzer.Encoder) *analyzer.Matrix {
	p.Logger().Infof("%v", ing.Distribution)

	start := time.Now()
	m := analyzer.Assemble(ing.Records, enc)
	elapsed := time.Since(start)
	p.stats.ObservePhase(analyzer.PhaseEncode, elapsed)
	p.Logger().Infof("Encoding dataset took %v", elapsed)
	return m
}

// mine runs the closed itemset search and writes the report to stdout.
func (p *pipeline) mine(ctx context.Context, m *analyzer.Matrix, enc *analyzer.Encoder, ratio float64) error {
	miner := dci.New(p.config.Workers)
	miner.Logger = p.Logger()

	start := time.Now()
	minSup, results, err := analyzer.Mine(ctx, miner, m, ratio)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	p.stats.ObservePhase(analyzer.PhaseMine, elapsed)
	p.stats.ClosedItemsets.Set(float64(len(results)))
	p.Logger().Infof("Mining took %v", elapsed)

	return errors.Wrap(analyzer.WriteReport(p.Stdout, m, enc, ratio, minSup, results), "writing report")
}

// finish writes the metrics file, if one is configured.
func (p *pipeline) finish() error {
	if p.config.MetricsPath == "" {
		return nil
	}
	f, err := os.Create(p.config.MetricsPath)
	if err != nil {
		return errors.Wrap(err, "creating metrics file")
	}
	defer f.Close()
	if err := p.stats.WriteMetrics(f); err != nil {
		return errors.Wrap(err, "writing metrics")
	}
	return errors.Wrap(f.Close(), "closing metrics file")
}
