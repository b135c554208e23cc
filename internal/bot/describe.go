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
	"errors"
	"fmt"
	"strings"

	"github.com/rusq/sheetrelay"
	"github.com/rusq/sheetrelay/internal/alias"
)

// Describe returns the user facing text for the error.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	var (
		ue  *sheetrelay.UsageError
		wnf *sheetrelay.WorksheetNotFoundError
		cnf *sheetrelay.ColumnNotFoundError
		rle *sheetrelay.RowLimitError
		rej *sheetrelay.RejectedError
		te  *sheetrelay.TransportError
	)
	switch {
	case errors.As(err, &ue):
		return usageText(ue)
	case errors.Is(err, ErrUnterminatedQuote):
		return "❌ Unterminated quote in the command."
	case errors.Is(err, sheetrelay.ErrInvalidReference):
		return "❌ Invalid Google Sheets URL format."
	case errors.Is(err, sheetrelay.ErrSpreadsheetNotFound):
		return "❌ Spreadsheet not found. Make sure the bot has access to the sheet."
	case errors.As(err, &wnf):
		return fmt.Sprintf("❌ Sheet '%s' not found. Available sheets: %s", wnf.Label, strings.Join(wnf.Available, ", "))
	case errors.Is(err, sheetrelay.ErrEmptyWorksheet):
		return "❌ The worksheet is empty."
	case errors.As(err, &cnf):
		return fmt.Sprintf("❌ Date '%s' not found in header row. Available headers: %s", cnf.Target, strings.Join(cnf.Headers, ", "))
	case errors.As(err, &rle):
		return "❌ Row max must be a valid number, at least 1."
	case errors.Is(err, sheetrelay.ErrInvalidRowLimit):
		return "❌ Row max must be at least 1."
	case errors.Is(err, alias.ErrEmptyValue):
		return "❌ Value must not be empty."
	case errors.As(err, &te):
		return fmt.Sprintf("❌ Delivery failed: %v", te.Err)
	case errors.As(err, &rej):
		return fmt.Sprintf("⚠️ Some messages were rejected: %s", rej.Reason)
	default:
		return fmt.Sprintf("❌ Unexpected error: %v", err)
	}
}

func usageText(ue *sheetrelay.UsageError) string {
	var sb strings.Builder
	sb.WriteString("❌ Invalid format: ")
	sb.WriteString(ue.Hint)
	sb.WriteString(".")
	if len(ue.Shapes) > 0 {
		sb.WriteString(" Use one of these:")
		for _, s := range ue.Shapes {
			fmt.Fprintf(&sb, "\n• `%s%s %s`", Prefix, commandFor(s), s)
		}
	}
	return sb.String()
}

// commandFor returns the command that accepts the request form.
func commandFor(form string) string {
	if strings.Contains(form, " to ") {
		return cmdSet
	}
	return cmdSend
}
