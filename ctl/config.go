// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package ctl

import (
	"context"
	"fmt"
	"io"

	"github.com/molecula/analyzer"
	"github.com/molecula/analyzer/errors"
	toml "github.com/pelletier/go-toml"
)

// Config holds the options shared by every pipeline command. The toml keys
// match the command line flags, so a config file can set any flag.
type Config struct {
	// Verbose enables debug logging.
	Verbose bool `toml:"verbose"`

	// Workers bounds the number of concurrent mining branches. Zero means
	// GOMAXPROCS.
	Workers int `toml:"workers"`

	// MetricsPath, when set, receives the pipeline metrics in the Prometheus
	// text format once the command completes.
	MetricsPath string `toml:"metrics-path"`

	// SizeHint is the expected number of accepted records.
	SizeHint int `toml:"size-hint"`

	// Recidivists keeps only re-admissions.
	Recidivists bool `toml:"recidivists"`

	// Attribute filters, by label. Empty means no filter.
	Sex           string `toml:"sex"`
	AdmissionType string `toml:"admission-type"`
	OffenseType   string `toml:"offense-type"`
	Race          string `toml:"race"`
}

// NewConfig returns an instance of Config with default options.
func NewConfig() *Config {
	return &Config{
		SizeHint: 1 << 16,
	}
}

// Filter resolves the attribute filters. An unknown label is an
// errors.ErrConfiguration error.
func (c *Config) Filter() (analyzer.Filter, error) {
	var f analyzer.Filter
	if c.Sex != "" {
		v, err := analyzer.LookupSex(c.Sex)
		if err != nil {
			return f, errors.WithCode(err, errors.ErrConfiguration)
		}
		f.Sex = &v
	}
	if c.AdmissionType != "" {
		v, err := analyzer.LookupAdmissionType(c.AdmissionType)
		if err != nil {
			return f, errors.WithCode(err, errors.ErrConfiguration)
		}
		f.AdmissionType = &v
	}
	if c.OffenseType != "" {
		v, err := analyzer.LookupOffenseType(c.OffenseType)
		if err != nil {
			return f, errors.WithCode(err, errors.ErrConfiguration)
		}
		f.OffenseType = &v
	}
	if c.Race != "" {
		v, err := analyzer.LookupRace(c.Race)
		if err != nil {
			return f, errors.WithCode(err, errors.ErrConfiguration)
		}
		f.Race = &v
	}
	return f, nil
}

// Validate checks every option that can be checked before reading input.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return errors.Newf(errors.ErrConfiguration, "invalid worker count: %d", c.Workers)
	}
	if c.SizeHint < 0 || c.SizeHint > analyzer.MaxSizeHint {
		return errors.Newf(errors.ErrConfiguration, "invalid size hint: %d", c.SizeHint)
	}
	_, err := c.Filter()
	return err
}

// ConfigCommand represents a command for printing the effective config.
type ConfigCommand struct {
	*analyzer.CmdIO
	Config *Config
}

// NewConfigCommand returns a new instance of ConfigCommand.
func NewConfigCommand(stdin io.Reader, stdout, stderr io.Writer) *ConfigCommand {
	return &ConfigCommand{
		CmdIO:  analyzer.NewCmdIO(stdin, stdout, stderr),
		Config: NewConfig(),
	}
}

// Run prints out the config.
func (cmd *ConfigCommand) Run(_ context.Context) error {
	buf, err := toml.Marshal(*cmd.Config)
	if err != nil {
		return errors.Wrap(err, "marshalling config")
	}
	fmt.Fprintln(cmd.Stdout, string(buf))
	return nil
}
