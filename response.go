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

package sheetrelay

import (
	"fmt"

	"github.com/rusq/sheetrelay/internal/alias"
	"github.com/rusq/sheetrelay/internal/fence"
	"github.com/rusq/sheetrelay/internal/pacer"
	"github.com/rusq/sheetrelay/internal/window"
)

// Response is the prepared response to the request.
type Response struct {
	Request alias.Request
	// Title is the spreadsheet title.
	Title string
	// Window is the extraction result.
	Window window.Result
	// Blocks is the number of fenced segments in the data.
	Blocks int
	// Data are the data units, in order.
	Data []pacer.Unit
	// Record is the updated alias record, if the request was an assignment.
	Record alias.Record

	framing bool
}

// Units returns all units of the response in the order they should be sent.
// With framing enabled, the data is preceded by the clamp warning (if any)
// and the header, and followed by the summary.
func (r *Response) Units() []pacer.Unit {
	if r.Request.Shape == alias.ShapeAssign {
		return []pacer.Unit{plain(AssignedText(r.Request.Assignment))}
	}
	if !r.framing {
		return r.Data
	}
	units := make([]pacer.Unit, 0, len(r.Data)+3)
	if r.Window.Clamped() {
		units = append(units, plain(ClampText(r.Window)))
	}
	units = append(units, plain(HeaderText(r.Request.SheetLabel, r.Window.Used)))
	units = append(units, r.Data...)
	units = append(units, plain(r.summary()))
	return units
}

func (r *Response) summary() string {
	if r.Blocks > 0 {
		return fmt.Sprintf("✅ *Extraction complete!* Found %d code block(s) from %d data rows.", r.Blocks, len(r.Window.Rows))
	}
	return fmt.Sprintf("✅ *Extraction complete!* Found %d data rows in %d message(s). No code blocks detected.", len(r.Window.Rows), len(r.Data))
}

func plain(s string) pacer.Unit {
	return pacer.Unit{Kind: fence.KPlain, Text: s}
}

// ClampText returns the row limit clamp warning.
func ClampText(res window.Result) string {
	return fmt.Sprintf("⚠️ Requested %d rows but sheet only has %d data rows. Using %d rows.", res.Requested, res.Available, res.Used)
}

// HeaderText returns the response header.
func HeaderText(sheetLabel string, rows int) string {
	return fmt.Sprintf("📊 *Data from '%s' (Rows 1-%d)*", sheetLabel, rows)
}

// AssignedText returns the confirmation of the alias assignment.
func AssignedText(a alias.Assignment) string {
	switch a.Field {
	case alias.FLink:
		return fmt.Sprintf("✅ Link set: `%s` = `%s`", a.Name, a.Value)
	case alias.FSheet:
		return fmt.Sprintf("✅ Sheet name set: `%s` sheet name = `%s`", a.Name, a.Value)
	case alias.FRows:
		return fmt.Sprintf("✅ Row max set: `%s` row max = `%s`", a.Name, a.Value)
	default:
		return fmt.Sprintf("✅ %s set: `%s` = `%s`", a.Field, a.Name, a.Value)
	}
}
