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

// In this file: errors returned by the relay.

import (
	"github.com/rusq/sheetrelay/internal/alias"
	"github.com/rusq/sheetrelay/internal/pacer"
	"github.com/rusq/sheetrelay/internal/sheet"
	"github.com/rusq/sheetrelay/internal/window"
)

var (
	ErrInvalidReference    = sheet.ErrInvalidReference
	ErrSpreadsheetNotFound = sheet.ErrSpreadsheetNotFound
	ErrEmptyWorksheet      = sheet.ErrEmptyWorksheet
	ErrInvalidRowLimit     = sheet.ErrInvalidRowLimit
	ErrAmbiguousRequest    = alias.ErrAmbiguousRequest
)

type (
	WorksheetNotFoundError = sheet.WorksheetNotFoundError
	ColumnNotFoundError    = window.ColumnNotFoundError
	UsageError             = alias.UsageError
	RowLimitError          = alias.RowLimitError
	TransportError         = pacer.TransportError
	RejectedError          = pacer.RejectedError
)
