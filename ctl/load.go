// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package ctl

import (
	"context"
	"io"
	"time"

	"github.com/molecula/analyzer"
	"github.com/molecula/analyzer/encoding/proto"
)

// LoadCommand reads a matrix written by SaveCommand from stdin, mines its
// closed itemsets and prints the report.
type LoadCommand struct {
	*analyzer.CmdIO
	Config *Config

	// MinSupport is the minimum support ratio, in [0, 1].
	MinSupport float64
}

// NewLoadCommand returns a new instance of LoadCommand.
func NewLoadCommand(stdin io.Reader, stdout, stderr io.Writer) *LoadCommand {
	return &LoadCommand{
		CmdIO:  analyzer.NewCmdIO(stdin, stdout, stderr),
		Config: NewConfig(),
	}
}

// Run executes the load and the mining.
func (cmd *LoadCommand) Run(ctx context.Context) error {
	if err := analyzer.ValidateMinSupportRatio(cmd.MinSupport); err != nil {
		return err
	}
	p, err := newPipeline(cmd.CmdIO, cmd.Config)
	if err != nil {
		return err
	}
	logger := cmd.Logger()

	start := time.Now()
	m, err := proto.Load(cmd.Stdin)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	p.stats.ObservePhase(analyzer.PhaseRestore, elapsed)
	logger.Infof("Restoring dataset took %v", elapsed)
	logger.Infof("Restored %dx%d matrix.", m.Height(), m.Width())

	if err := p.mine(ctx, m, analyzer.NewEncoder(), cmd.MinSupport); err != nil {
		return err
	}
	return p.finish()
}
