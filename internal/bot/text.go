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

package bot

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/rusq/sheetrelay/internal/alias"
)

// maxLinkDisplay is the maximum number of link characters shown by vars.
const maxLinkDisplay = 50

//go:embed assets/help.md
var helpMD string

func helpText() string {
	return strings.ReplaceAll(helpMD, "{{.Prefix}}", Prefix)
}

// VarsText renders the alias records.
func VarsText(recs []alias.Record) string {
	var links, sheets, rows []string
	for _, r := range recs {
		if r.HasLink() {
			links = append(links, fmt.Sprintf("`%s` = `%s`", r.Name, shorten(r.Link, maxLinkDisplay)))
		}
		if r.HasSheet() {
			sheets = append(sheets, fmt.Sprintf("`%s` = `%s`", r.Name, r.SheetLabel))
		}
		if r.HasRows() {
			rows = append(rows, fmt.Sprintf("`%s` = `%d`", r.Name, r.RowLimit))
		}
	}
	if len(links)+len(sheets)+len(rows) == 0 {
		return "📋 No variables set yet."
	}
	var sb strings.Builder
	sb.WriteString("📋 *Stored Variables*")
	section := func(title string, lines []string) {
		if len(lines) == 0 {
			return
		}
		sb.WriteString("\n\n")
		sb.WriteString(title)
		for _, l := range lines {
			sb.WriteString("\n")
			sb.WriteString(l)
		}
	}
	section("🔗 *Links*", links)
	section("📝 *Sheet Names*", sheets)
	section("📊 *Row Max*", rows)
	return sb.String()
}

// shorten cuts s to n characters, adding "...", if it is longer.
func shorten(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
