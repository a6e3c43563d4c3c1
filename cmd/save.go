// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"context"
	"io"

	"github.com/molecula/analyzer/ctl"
	"github.com/spf13/cobra"
)

func newSaveCommand(stdin io.Reader, stdout, stderr io.Writer, conf *ctl.Config) *cobra.Command {
	saver := ctl.NewSaveCommand(stdin, stdout, stderr)
	saver.Config = conf
	return &cobra.Command{
		Use:   "save",
		Short: "Encode term records read from stdin and write the dataset to stdout.",
		Long: `
Reads term records from stdin, encodes the accepted records and writes the
resulting item matrix to stdout. The output is read back by "load".
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return saver.Run(context.Background())
		},
	}
}
