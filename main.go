// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/linecmp/linecmp/internal/command"
	"github.com/linecmp/linecmp/internal/config"
	"github.com/linecmp/linecmp/internal/lineset"
	"github.com/linecmp/linecmp/internal/log"
	"github.com/linecmp/linecmp/internal/version"
)

// Exit statuses.
const (
	exitOK    = 0
	exitFile  = 1
	exitUsage = 2
)

var ctx = context.Background()

func main() {
	log.InitLogger()
	os.Exit(realMain(os.Args, os.Stdout, os.Stderr))
}

// handleVersion checks for --version/-v before any "--" terminator and
// returns whether it was handled.
func handleVersion(args []string, stdout io.Writer) bool {
	for _, a := range args[1:] {
		if a == "--" {
			return false
		}
		if a == "--version" || a == "-v" {
			fmt.Fprintln(stdout, version.String())
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no arguments are provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// injectDefaults inserts the config file's "defaults" entries right after the
// program name so that explicit arguments, which follow, take precedence.
// Multi-word entries such as "--output json" are split on whitespace.
func injectDefaults(args []string, entries []string) []string {
	if len(entries) == 0 || len(args) == 0 {
		return args
	}

	var expanded []string
	for _, entry := range entries {
		expanded = append(expanded, strings.Fields(entry)...)
	}

	out := make([]string, 0, len(args)+len(expanded))
	out = append(out, args[0])
	out = append(out, expanded...)
	return append(out, args[1:]...)
}

// exitCode maps an error returned by the app to the process exit status.
func exitCode(err error) int {
	var fe *lineset.FileError
	if errors.As(err, &fe) {
		return exitFile
	}
	return exitUsage
}

// errorMessage renders err for the user.
func errorMessage(err error) string {
	var fe *lineset.FileError
	if errors.As(err, &fe) && fe.NotFound() {
		return fmt.Sprintf("Error: File '%s' does not exist.", fe.Path)
	}
	return fmt.Sprintf("Error: %v", err)
}

// realMain runs linecmp with args and returns the exit status. It is the only
// place where errors are printed.
func realMain(args []string, stdout, stderr io.Writer) int {
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args, stdout) {
		return exitOK
	}

	args = handleNakedCommand(args)

	defaults, err := config.GetStringSlice("defaults", nil)
	if err != nil {
		log.Warnf("ignoring config defaults: %v", err)
	}
	args = injectDefaults(args, defaults)
	log.Debugf("args after defaults: args=%v", args)

	app, err := command.InitApp(ctx, args, stdout, stderr)
	if err != nil {
		fmt.Fprintln(stderr, errorMessage(err))
		return exitUsage
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(stderr, errorMessage(err))
		log.WithError(err).Debug("app run failed")
		return exitCode(err)
	}

	return exitOK
}
