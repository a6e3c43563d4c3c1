// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package ctl

import (
	"context"
	"io"

	"github.com/molecula/analyzer"
	"github.com/molecula/analyzer/errors"
)

// DistributionCommand reads term records from stdin and prints the value
// distribution of the accepted records.
type DistributionCommand struct {
	*analyzer.CmdIO
	Config *Config
}

// NewDistributionCommand returns a new instance of DistributionCommand.
func NewDistributionCommand(stdin io.Reader, stdout, stderr io.Writer) *DistributionCommand {
	return &DistributionCommand{
		CmdIO:  analyzer.NewCmdIO(stdin, stdout, stderr),
		Config: NewConfig(),
	}
}

// Run executes the distribution report.
func (cmd *DistributionCommand) Run(_ context.Context) error {
	p, err := newPipeline(cmd.CmdIO, cmd.Config)
	if err != nil {
		return err
	}
	ing, err := p.ingest()
	if err != nil {
		return err
	}
	if _, err := ing.Distribution.WriteTo(cmd.Stdout); err != nil {
		return errors.Wrap(err, "writing distribution")
	}
	return p.finish()
}
