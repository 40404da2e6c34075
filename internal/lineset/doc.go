// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package lineset loads line-delimited text files into normalized,
// deduplicated sets and computes the lines of one set that are absent from
// another. Normalization trims surrounding whitespace, drops blank lines and,
// unless the set is case sensitive, folds each line to lower case.
package lineset
