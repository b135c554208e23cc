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

package sheet

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidReference is returned when the reference string does not
	// contain a spreadsheet identifier.
	ErrInvalidReference = errors.New("invalid spreadsheet reference")
	// ErrSpreadsheetNotFound is returned by the Opener when the spreadsheet
	// does not exist or is not shared with the service account.
	ErrSpreadsheetNotFound = errors.New("spreadsheet not found")
	// ErrEmptyWorksheet is returned when the worksheet has no header row.
	ErrEmptyWorksheet = errors.New("worksheet is empty")
	// ErrInvalidRowLimit is returned when the row limit is not a positive
	// integer, or the worksheet has no data rows to read.
	ErrInvalidRowLimit = errors.New("row limit must be at least 1")
)

// WorksheetNotFoundError is returned when the spreadsheet has no worksheet
// with the requested label.
type WorksheetNotFoundError struct {
	Label     string
	Available []string // labels of worksheets that do exist
}

func (e *WorksheetNotFoundError) Error() string {
	return fmt.Sprintf("worksheet %q not found, available: %s", e.Label, strings.Join(e.Available, ", "))
}
