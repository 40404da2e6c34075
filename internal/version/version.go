// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Do not import any other linecmp packages to avoid import cycles.

package version

import "runtime/debug"

// version may be set at link time with
// -ldflags "-X github.com/linecmp/linecmp/internal/version.version=v1.2.3".
var version string

// String returns the link-time version, the module version recorded in the
// build info, or "dev".
func String() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}
