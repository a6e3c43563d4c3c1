// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/molecula/analyzer"
	"github.com/molecula/analyzer/ctl"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "ANALYZER"

func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	conf := ctl.NewConfig()
	rc := &cobra.Command{
		Use:   "analyzer",
		Short: "Analyzer mines closed itemsets of prison term records.",
		Long: `Analyzer mines closed itemsets of prison term records.

It reads tab separated term records on stdin, filters them, encodes every
accepted record as a set of (field, value) items and reports the closed
itemsets reaching a minimum support. The encoded dataset can be saved and
mined later by a separate run.

` + analyzer.VersionInfo() + "\n",
		Version:       analyzer.VersionInfo(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			return setAllConfig(v, cmd.Flags())
		},
	}
	rc.SetVersionTemplate("{{.Version}}\n")

	flags := rc.PersistentFlags()
	flags.StringP("config", "c", "", "Configuration file to read from.")
	flags.BoolVarP(&conf.Verbose, "verbose", "v", conf.Verbose, "Enable debug logging.")
	flags.IntVar(&conf.Workers, "workers", conf.Workers, "Maximum number of concurrent mining branches (0 means GOMAXPROCS).")
	flags.StringVar(&conf.MetricsPath, "metrics-path", conf.MetricsPath, "Write pipeline metrics in the Prometheus text format to this file.")
	flags.IntVar(&conf.SizeHint, "size-hint", conf.SizeHint, "Expected number of accepted records.")
	flags.BoolVar(&conf.Recidivists, "recidivists", conf.Recidivists, "Keep only re-admissions, withholding the earliest admission of each subject.")
	flags.StringVar(&conf.Sex, "sex", conf.Sex, choices("Keep only records of this sex", analyzer.SexChoices()))
	flags.StringVar(&conf.AdmissionType, "admission-type", conf.AdmissionType, choices("Keep only records of this admission type", analyzer.AdmissionTypeChoices()))
	flags.StringVar(&conf.OffenseType, "offense-type", conf.OffenseType, choices("Keep only records of this offense type", analyzer.OffenseTypeChoices()))
	flags.StringVar(&conf.Race, "race", conf.Race, choices("Keep only records of this race", analyzer.RaceChoices()))

	rc.AddCommand(newDistributionCommand(stdin, stdout, stderr, conf))
	rc.AddCommand(newRunCommand(stdin, stdout, stderr, conf))
	rc.AddCommand(newSaveCommand(stdin, stdout, stderr, conf))
	rc.AddCommand(newLoadCommand(stdin, stdout, stderr, conf))
	rc.AddCommand(newConfigCommand(stdin, stdout, stderr, conf))
	rc.AddCommand(newGenerateConfigCommand(stdin, stdout, stderr))
	rc.AddCommand(newVersionCommand(stdout))

	rc.SetOutput(stderr)
	return rc
}

func choices(usage string, labels []string) string {
	return fmt.Sprintf("%s (%s).", usage, strings.Join(labels, ", "))
}

// setAllConfig takes a FlagSet to be the definition of all configuration
// options, as well as their defaults. It then reads from the command line, the
// environment, and a config file (if specified), and applies the configuration
// in that priority order. Since each flag in the set contains a pointer to
// where its value should be stored, setAllConfig can directly modify the value
// of each config variable.
//
// setAllConfig looks for environment variables which are capitalized versions
// of the flag names with dashes replaced by underscores, and prefixed with
// envPrefix plus an underscore.
func setAllConfig(v *viper.Viper, flags *pflag.FlagSet) error {
	// add cmd line flag def to viper
	err := v.BindPFlags(flags)
	if err != nil {
		return err
	}

	// add env to viper
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	c := v.GetString("config")
	var flagErr error
	validTags := make(map[string]bool)
	flags.VisitAll(func(f *pflag.Flag) {
		validTags[f.Name] = true
	})

	// add config file to viper
	if c != "" {
		v.SetConfigFile(c)
		v.SetConfigType("toml")
		err := v.ReadInConfig()
		if err != nil {
			return fmt.Errorf("error reading configuration file '%s': %v", c, err)
		}

		for _, key := range v.AllKeys() {
			if _, ok := validTags[key]; !ok {
				return fmt.Errorf("invalid option in configuration file: %v", key)
			}
		}
	}

	// set all values from viper
	flags.VisitAll(func(f *pflag.Flag) {
		if flagErr != nil {
			return
		}
		if f.Changed {
			// The flag was given on the command line, which has the highest
			// priority.
			return
		}
		flagErr = f.Value.Set(v.GetString(f.Name))
	})
	return flagErr
}
