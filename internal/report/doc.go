// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package report renders the outcome of a line set comparison as a human
// readable text block or as JSON or YAML documents.
package report
