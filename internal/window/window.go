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

// Package window extracts a fixed-width window of cells from the worksheet
// values, starting at the column located by its header.
package window

import (
	"fmt"
	"strings"

	"github.com/rusq/sheetrelay/internal/sheet"
)

// Width is the number of columns in the window: the located column and the
// two columns that follow it.
const Width = 3

// Row is one row of the window.
type Row [Width]string

// IsBlank reports whether all cells of the row are empty or whitespace.
func (r Row) IsBlank() bool {
	for _, c := range r {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// Join joins the row cells with the separator.  Trailing empty cells are
// dropped, so that the line does not end with dangling separators.
func (r Row) Join(sep string) string {
	n := Width
	for n > 0 && r[n-1] == "" {
		n--
	}
	return strings.Join(r[:n], sep)
}

// ColumnNotFoundError is returned when no header cell matches the target.
type ColumnNotFoundError struct {
	Target  string
	Headers []string // non-empty header labels that are present
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("%q not found in header row, available headers: %s", e.Target, strings.Join(e.Headers, ", "))
}

// Locate returns the index of the first header cell that equals the target.
// Both the cell and the target are trimmed before comparison.
func Locate(header []string, target string) (int, error) {
	t := strings.TrimSpace(target)
	for i, cell := range header {
		if strings.TrimSpace(cell) == t {
			return i, nil
		}
	}
	var present []string
	for _, cell := range header {
		if strings.TrimSpace(cell) != "" {
			present = append(present, cell)
		}
	}
	return -1, &ColumnNotFoundError{Target: target, Headers: present}
}

// Params are the window extraction parameters.
type Params struct {
	// HeaderRow is the index of the header row.  Data rows are all rows that
	// follow it.
	HeaderRow int
	// Column is the index of the first window column.
	Column int
	// Limit is the number of data rows to scan.
	Limit int
}

// Result is the extraction result.
type Result struct {
	// Rows are the non-blank rows of the window, in the worksheet order.
	Rows []Row
	// Requested is the row limit as requested by the caller.
	Requested int
	// Used is the row limit after clamping, it is the number of data rows
	// scanned.
	Used int
	// Available is the number of data rows in the worksheet.
	Available int
}

// Clamped reports whether the requested row limit exceeded the number of
// available data rows.
func (r Result) Clamped() bool {
	return r.Requested > r.Available
}

// Lines joins each row with the separator.
func (r Result) Lines(sep string) []string {
	lines := make([]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		lines = append(lines, row.Join(sep))
	}
	return lines
}

// Extract scans up to p.Limit data rows of values and returns the window
// rows.  If the limit exceeds the number of data rows, it is clamped, which
// is reported by Result.Clamped.  Cells beyond the row length are empty.
func Extract(values [][]string, p Params) (Result, error) {
	if p.HeaderRow < 0 || p.Column < 0 {
		return Result{}, fmt.Errorf("invalid window: header row %d, column %d", p.HeaderRow, p.Column)
	}
	if p.Limit < 1 {
		return Result{}, sheet.ErrInvalidRowLimit
	}
	available := max(len(values)-p.HeaderRow-1, 0)
	res := Result{
		Requested: p.Limit,
		Used:      min(p.Limit, available),
		Available: available,
	}
	if res.Used < 1 {
		return res, fmt.Errorf("%w: worksheet has no data rows", sheet.ErrInvalidRowLimit)
	}
	start := p.HeaderRow + 1
	for _, cells := range values[start : start+res.Used] {
		var row Row
		for i := range Width {
			if c := p.Column + i; c < len(cells) {
				row[i] = cells[c]
			}
		}
		if row.IsBlank() {
			continue
		}
		res.Rows = append(res.Rows, row)
	}
	return res, nil
}
