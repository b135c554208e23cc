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

package alias

import (
	"fmt"
	"strings"
)

const kwTo = "to"

var (
	sheetKeywords = []string{"sheet", "sheetname", "sheet_name"}
	rowKeywords   = []string{"row", "rows", "rowmax", "row_max", "max_row"}
)

// Assignment is the parsed setting statement.
type Assignment struct {
	Name  string
	Field Field
	Value string
}

// ParseAssignment parses the setting statement split into the first token
// and the rest.  Accepted forms:
//
//	<link> to <name>
//	<name> sheet to <label>
//	<name> rows to <n>
//
// Keywords are case insensitive, and both forms have synonyms, see
// [FieldByKeyword].  Values are not validated, [Store.Apply] does that.
func ParseAssignment(first string, rest []string) (Assignment, error) {
	switch {
	case len(rest) == 2 && strings.EqualFold(rest[0], kwTo):
		return Assignment{Name: rest[1], Field: FLink, Value: first}, nil
	case len(rest) == 3 && strings.EqualFold(rest[1], kwTo):
		f, ok := FieldByKeyword(rest[0])
		if !ok || f == FLink {
			return Assignment{}, &UsageError{
				Hint:   fmt.Sprintf("unknown property %q", rest[0]),
				Shapes: Usage[3:],
			}
		}
		return Assignment{Name: first, Field: f, Value: rest[2]}, nil
	}
	return Assignment{}, &UsageError{
		Hint:   "invalid setting syntax",
		Shapes: Usage[2:],
	}
}

// FieldByKeyword returns the field for the property keyword.
func FieldByKeyword(kw string) (Field, bool) {
	kw = strings.ToLower(kw)
	for _, k := range sheetKeywords {
		if k == kw {
			return FSheet, true
		}
	}
	for _, k := range rowKeywords {
		if k == kw {
			return FRows, true
		}
	}
	if kw == "link" || kw == "url" {
		return FLink, true
	}
	return 0, false
}

// Apply validates and stores the assignment.  It returns the updated record.
func (s *Store) Apply(a Assignment) (Record, error) {
	var err error
	switch a.Field {
	case FLink:
		err = s.SetLink(a.Name, a.Value)
	case FSheet:
		err = s.SetSheetLabel(a.Name, a.Value)
	case FRows:
		var n int
		if n, err = ParseRowLimit(a.Value); err == nil {
			err = s.SetRowLimit(a.Name, n)
		}
	default:
		err = fmt.Errorf("unsupported field: %s", a.Field)
	}
	if err != nil {
		return Record{}, err
	}
	rec, _ := s.Get(a.Name)
	return rec, nil
}
