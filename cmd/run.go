// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"context"
	"io"

	"github.com/molecula/analyzer/ctl"
	"github.com/spf13/cobra"
)

func newRunCommand(stdin io.Reader, stdout, stderr io.Writer, conf *ctl.Config) *cobra.Command {
	runner := ctl.NewRunCommand(stdin, stdout, stderr)
	runner.Config = conf
	return &cobra.Command{
		Use:   "run <min-sup>",
		Short: "Mine the closed itemsets of term records read from stdin.",
		Long: `
Reads term records from stdin, encodes the accepted records and prints every
closed itemset whose support is at least min-sup, a ratio in [0, 1] of the
accepted records, by descending support.

Arguments starting with "-" are read as flags, so a negative min-sup reaches
the ratio check only after "--", as in "analyzer run -- -0.5".
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if runner.MinSupport, err = ctl.ParseMinSupport(args[0]); err != nil {
				return err
			}
			return runner.Run(context.Background())
		},
	}
}
