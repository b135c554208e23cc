// Copyright (c) 2021-2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"

	"github.com/rusq/sheetrelay/cmd/sheetrelay/internal/cfg"
	"github.com/rusq/sheetrelay/cmd/sheetrelay/internal/golang/base"
)

// set by the linker.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var CmdVersion = &base.Command{
	UsageLine: base.CmdName + " version",
	Short:     "print version and exit",
	Long: `
# Version Command

Prints version and exits, not much else to say.
`,
	FlagMask: cfg.OmitAll,
	Run:      versionRun,
}

func versionRun(ctx context.Context, cmd *base.Command, args []string) error {
	fmt.Printf("%s (commit: %s) built on: %s\n", version, commit, date)
	return nil
}
