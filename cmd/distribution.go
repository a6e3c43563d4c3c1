// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"context"
	"io"

	"github.com/molecula/analyzer/ctl"
	"github.com/spf13/cobra"
)

func newDistributionCommand(stdin io.Reader, stdout, stderr io.Writer, conf *ctl.Config) *cobra.Command {
	distribution := ctl.NewDistributionCommand(stdin, stdout, stderr)
	distribution.Config = conf
	return &cobra.Command{
		Use:   "distribution",
		Short: "Print the value distribution of the accepted records.",
		Long: `
Reads term records from stdin and prints, for every field, the number and
share of accepted records holding each value.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return distribution.Run(context.Background())
		},
	}
}
