// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command wires the linecmp command line: flags and their config and
// environment sources, positional file arguments, and the action that loads
// both files, computes the missing lines and renders the report.
package command
