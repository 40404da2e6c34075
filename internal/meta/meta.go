// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"

	"github.com/linecmp/linecmp/internal/config"
)

// Meta contains runtime metadata shared with the command action. It carries
// the CLI arguments, the loaded configuration, the context and the resolved
// config file path (empty when no config file exists).
type Meta struct {
	Args       []string
	Config     config.Type
	ConfigFile string
	Context    context.Context
}
