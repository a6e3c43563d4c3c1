// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package ctl

import (
	"context"
	"io"

	"github.com/molecula/analyzer"
)

// RunCommand reads term records from stdin, mines their closed itemsets and
// prints the report.
type RunCommand struct {
	*analyzer.CmdIO
	Config *Config

	// MinSupport is the minimum support ratio, in [0, 1].
	MinSupport float64
}

// NewRunCommand returns a new instance of RunCommand.
func NewRunCommand(stdin io.Reader, stdout, stderr io.Writer) *RunCommand {
	return &RunCommand{
		CmdIO:  analyzer.NewCmdIO(stdin, stdout, stderr),
		Config: NewConfig(),
	}
}

// Run executes the whole pipeline.
func (cmd *RunCommand) Run(ctx context.Context) error {
	if err := analyzer.ValidateMinSupportRatio(cmd.MinSupport); err != nil {
		return err
	}
	p, err := newPipeline(cmd.CmdIO, cmd.Config)
	if err != nil {
		return err
	}
	ing, err := p.ingest()
	if err != nil {
		return err
	}
	enc := analyzer.NewEncoder()
	m := p.encode(ing, enc)
	if err := p.mine(ctx, m, enc, cmd.MinSupport); err != nil {
		return err
	}
	return p.finish()
}
