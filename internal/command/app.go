// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/linecmp/linecmp/internal/config"
	"github.com/linecmp/linecmp/internal/log"
	"github.com/linecmp/linecmp/internal/meta"
)

// InitApp builds the root command. stdout receives help and the report,
// stderr receives usage errors.
func InitApp(ctx context.Context, args []string, stdout, stderr io.Writer) (*cli.Command, error) {

	// The config file is optional. Only an explicit LINECMP_CFG_FILE that
	// cannot be loaded is an error; a broken file in the default location is
	// ignored so that help and comparisons still work.
	cfg, err := config.Load()
	if err != nil && !errors.Is(err, config.ErrNoConfig) {
		if config.Explicit() {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		log.Warnf("ignoring config: %v", err)
		cfg = config.Type{}
	}
	log.Debugf("config: source=%q", cfg.Source)

	meta := meta.Meta{
		Args:       args,
		Config:     cfg,
		ConfigFile: cfg.Source,
		Context:    ctx,
	}

	app := &cli.Command{
		Name:      "linecmp",
		Usage:     "report lines from file_1 that are not present in file_2",
		UsageText: "linecmp [options] file_1 file_2",
		ArgsUsage: "file_1 file_2",
		Description: "Both files are read as UTF-8 text. Each line is trimmed, blank lines are\n" +
			"skipped and duplicates collapse. Lines are compared case-insensitively\n" +
			"unless --case-sensitive is given.\n\n" +
			"Example: linecmp --case-sensitive file1.txt file2.txt",
		Metadata:  map[string]any{"meta": meta},
		Flags:     NewFlags(meta.ConfigFile),
		Action:    compareAction,
		Writer:    stdout,
		ErrWriter: stderr,
	}

	// Make sure flags are sorted for the --help text.
	sort.Slice(app.Flags, func(i, j int) bool {
		return app.Flags[i].Names()[0] < app.Flags[j].Names()[0]
	})

	return app, nil
}
