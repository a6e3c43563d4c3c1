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

// SaveCommand reads term records from stdin and writes the encoded matrix to
// stdout, to be mined later by LoadCommand.
type SaveCommand struct {
	*analyzer.CmdIO
	Config *Config
}

// NewSaveCommand returns a new instance of SaveCommand.
func NewSaveCommand(stdin io.Reader, stdout, stderr io.Writer) *SaveCommand {
	return &SaveCommand{
		CmdIO:  analyzer.NewCmdIO(stdin, stdout, stderr),
		Config: NewConfig(),
	}
}

// Run executes the save.
func (cmd *SaveCommand) Run(_ context.Context) error {
	p, err := newPipeline(cmd.CmdIO, cmd.Config)
	if err != nil {
		return err
	}
	ing, err := p.ingest()
	if err != nil {
		return err
	}
	m := p.encode(ing, analyzer.NewEncoder())

	start := time.Now()
	if err := proto.Save(cmd.Stdout, m); err != nil {
		return err
	}
	elapsed := time.Since(start)
	p.stats.ObservePhase(analyzer.PhaseSave, elapsed)
	cmd.Logger().Infof("Saving dataset took %v", elapsed)
	return p.finish()
}
