// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for linecmp's optional
// user configuration. The configuration is a YAML document named linecmp.yaml
// in the user's configuration directory, or the file named by
// LINECMP_CFG_FILE. It only supplies defaults and is never written.
package config
