// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/linecmp/linecmp/internal/lineset"
	"github.com/linecmp/linecmp/internal/log"
	"github.com/linecmp/linecmp/internal/meta"
	"github.com/linecmp/linecmp/internal/report"
)

// compareAction is the root action. Without both positional files it shows
// help and succeeds. Both files are loaded before anything is rendered so a
// missing file never produces a partial report.
func compareAction(ctx context.Context, cmd *cli.Command) error {
	meta := cmd.Metadata["meta"].(meta.Meta)
	log.Debugf("executing compare: args=%v", meta.Args[1:])

	if cmd.NArg() < 2 {
		return cli.ShowRootCommandHelp(cmd)
	}
	if cmd.NArg() > 2 {
		return fmt.Errorf("unrecognized arguments: %v", cmd.Args().Slice()[2:])
	}

	result, err := Compare(cmd.Args().Get(0), cmd.Args().Get(1), cmd.Bool("case-sensitive"))
	if err != nil {
		return err
	}

	opts := report.Options{Color: cmd.Bool("color")}
	return report.Render(cmd.Root().Writer, result, cmd.String("output"), opts)
}

// Compare loads source and reference with the same case sensitivity and
// returns the lines of source absent from reference.
func Compare(source, reference string, caseSensitive bool) (report.Result, error) {
	a, err := lineset.Load(source, caseSensitive)
	if err != nil {
		return report.Result{}, err
	}

	b, err := lineset.Load(reference, caseSensitive)
	if err != nil {
		return report.Result{}, err
	}

	missing, err := lineset.Missing(a, b)
	if err != nil {
		return report.Result{}, err
	}

	return report.Result{
		Source:        source,
		Reference:     reference,
		CaseSensitive: caseSensitive,
		Missing:       missing,
	}, nil
}
