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

// Package sheet defines the tabular data source contract: spreadsheets that
// are located by an ID, contain labelled worksheets, and return their cells
// as strings.
package sheet

import "context"

//go:generate mockgen -destination mock_sheet/mock_sheet.go . Opener,Spreadsheet,Worksheet

// Opener opens spreadsheets by their ID.
type Opener interface {
	// Open returns the spreadsheet with the given ID, or
	// ErrSpreadsheetNotFound.
	Open(ctx context.Context, id ID) (Spreadsheet, error)
}

// Spreadsheet is a collection of worksheets.
type Spreadsheet interface {
	// Title is the spreadsheet title.
	Title() string
	// Worksheet returns the worksheet with the given label, or
	// *WorksheetNotFoundError.
	Worksheet(ctx context.Context, label string) (Worksheet, error)
}

// Worksheet is a single tab of a spreadsheet.
type Worksheet interface {
	Label() string
	// Values returns all values of the worksheet, row by row.  Rows may have
	// different length, trailing empty cells are usually omitted.
	Values(ctx context.Context) ([][]string, error)
}
