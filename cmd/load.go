// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"context"
	"io"

	"github.com/molecula/analyzer/ctl"
	"github.com/spf13/cobra"
)

func newLoadCommand(stdin io.Reader, stdout, stderr io.Writer, conf *ctl.Config) *cobra.Command {
	loader := ctl.NewLoadCommand(stdin, stdout, stderr)
	loader.Config = conf
	return &cobra.Command{
		Use:   "load <min-sup>",
		Short: "Mine the closed itemsets of a dataset written by save.",
		Long: `
Reads a dataset written by "save" from stdin and prints every closed itemset
whose support is at least min-sup, a ratio in [0, 1] of the records, by
descending support. Filtering options have no effect: they were applied when
the dataset was saved.

Arguments starting with "-" are read as flags, so a negative min-sup reaches
the ratio check only after "--", as in "analyzer load -- -0.5".
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if loader.MinSupport, err = ctl.ParseMinSupport(args[0]); err != nil {
				return err
			}
			return loader.Run(context.Background())
		},
	}
}
