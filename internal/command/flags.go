// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

// NewFlags returns the root command flags. When cfgFile is not empty, it is
// consulted for defaults after the environment.
func NewFlags(cfgFile string) []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "case-sensitive",
			Aliases: []string{"c"},
			Usage:   "enable case-sensitive comparison (default: case-insensitive)",
			Sources: valueSourceChain(cfgFile, "case-sensitive", "LINECMP_CASE_SENSITIVE"),
			Value:   false,
		},
		&cli.BoolFlag{
			Name:    "color",
			Usage:   "enable colored text output",
			Sources: valueSourceChain(cfgFile, "color", "LINECMP_COLOR"),
			Value:   false,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format (text, json, yaml)",
			Sources: valueSourceChain(cfgFile, "output", "LINECMP_OUTPUT"),
			Value:   "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.BoolFlag{
			Name:        "version",
			Aliases:     []string{"v"},
			Usage:       "linecmp version info",
			HideDefault: true,
		},
	}
}

// valueSourceChain builds the env then config file source chain for a flag.
// The config file keys match the long flag names.
func valueSourceChain(cfgFile string, key string, env string) cli.ValueSourceChain {
	chain := cli.NewValueSourceChain(cli.EnvVar(env))
	if cfgFile != "" {
		chain.Chain = append(chain.Chain, yaml.YAML(key, altsrc.StringSourcer(cfgFile)))
	}
	return chain
}
