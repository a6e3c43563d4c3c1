// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"context"
	"io"

	"github.com/molecula/analyzer/ctl"
	"github.com/spf13/cobra"
)

func newConfigCommand(stdin io.Reader, stdout, stderr io.Writer, conf *ctl.Config) *cobra.Command {
	config := ctl.NewConfigCommand(stdin, stdout, stderr)
	config.Config = conf
	return &cobra.Command{
		Use:   "config",
		Short: "Print the current configuration.",
		Long: `config prints the configuration resulting from the flags, the
environment and the configuration file to stdout
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Run(context.Background())
		},
	}
}
