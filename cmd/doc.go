// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0

/*
Package cmd contains all the analyzer subcommand definitions (1 per file).

Each command file has a new*Command function which returns a cobra.Command
wrapping the matching ctl command. The pipeline options are persistent flags
of the root command and are shared by every subcommand through a single
ctl.Config, so that a configuration file may set any of them.
*/
package cmd
