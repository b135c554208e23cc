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
	"errors"
	"fmt"
	"strings"

	"github.com/rusq/sheetrelay/internal/sheet"
)

// ErrAmbiguousRequest is returned when the request tokens match none of the
// accepted request shapes.
var ErrAmbiguousRequest = errors.New("request does not match any accepted form")

// Shape is the request shape.
type Shape uint8

const (
	ShapeUnknown Shape = iota
	// ShapeAlias is "<alias> <date>", the alias supplies everything else.
	ShapeAlias
	// ShapeFull is "<alias|link> <sheet> <date> <rows>".
	ShapeFull
	// ShapeAssign is the setting syntax, see [ParseAssignment].
	ShapeAssign
)

func (s Shape) String() string {
	switch s {
	case ShapeAlias:
		return "alias"
	case ShapeFull:
		return "full"
	case ShapeAssign:
		return "assign"
	default:
		return "unknown"
	}
}

// Usage lists the accepted request forms, in the order they are tried.
var Usage = []string{
	"<alias> <date>",
	"<alias|link> <sheet> <date> <rows>",
	"<link> to <alias>",
	"<alias> sheet to <sheet>",
	"<alias> rows to <rows>",
}

// UsageError is returned when the request can not be resolved.  Hint
// describes what was wrong, Shapes lists the forms that would be accepted.
type UsageError struct {
	Hint   string
	Shapes []string
}

func (e *UsageError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Hint)
	if len(e.Shapes) > 0 {
		sb.WriteString("; expected: ")
		sb.WriteString(strings.Join(e.Shapes, " | "))
	}
	return sb.String()
}

func (e *UsageError) Unwrap() error {
	return ErrAmbiguousRequest
}

// Request is the fully resolved extraction request.  For ShapeAssign only
// the Assignment is populated.
type Request struct {
	Shape      Shape
	Alias      string // empty, if the raw link was given
	Link       string
	SheetLabel string
	Date       string
	RowLimit   int

	Assignment Assignment
}

// Resolve resolves the first token name and the remaining tokens args to a
// request. The forms are tried in the order of [Usage]:
//
//  1. one argument: the name must be an alias that has the link, sheet and
//     rows set;
//  2. three arguments: the name is an alias with a link, or the raw
//     spreadsheet link;
//  3. the setting syntax.
func (s *Store) Resolve(name string, args []string) (Request, error) {
	rec, found := s.Get(name)
	switch len(args) {
	case 1:
		if !found {
			return Request{}, &UsageError{
				Hint:   fmt.Sprintf("unknown alias %q", name),
				Shapes: Usage[:2],
			}
		}
		if !rec.HasLink() || !rec.HasSheet() || !rec.HasRows() {
			return Request{}, &UsageError{
				Hint:   fmt.Sprintf("alias %q is missing %s", name, missing(rec)),
				Shapes: Usage[1:2],
			}
		}
		return Request{
			Shape:      ShapeAlias,
			Alias:      name,
			Link:       rec.Link,
			SheetLabel: rec.SheetLabel,
			Date:       args[0],
			RowLimit:   rec.RowLimit,
		}, nil
	case 3:
		req := Request{
			Shape:      ShapeFull,
			SheetLabel: args[0],
			Date:       args[1],
		}
		switch {
		case found && rec.HasLink():
			req.Alias = name
			req.Link = rec.Link
		case sheet.IsReference(name):
			req.Link = name
		case found:
			return Request{}, &UsageError{
				Hint:   fmt.Sprintf("alias %q has no link", name),
				Shapes: Usage[2:3],
			}
		default:
			// neither an alias, nor a link.
			return Request{}, fmt.Errorf("%q: %w", name, sheet.ErrInvalidReference)
		}
		n, err := ParseRowLimit(args[2])
		if err != nil {
			return Request{}, err
		}
		req.RowLimit = n
		return req, nil
	}
	if a, err := ParseAssignment(name, args); err == nil {
		return Request{Shape: ShapeAssign, Assignment: a}, nil
	}
	return Request{}, &UsageError{
		Hint:   fmt.Sprintf("unexpected number of arguments: %d", len(args)+1),
		Shapes: Usage,
	}
}

func missing(r Record) string {
	var m []string
	if !r.HasLink() {
		m = append(m, FLink.String())
	}
	if !r.HasSheet() {
		m = append(m, FSheet.String())
	}
	if !r.HasRows() {
		m = append(m, FRows.String())
	}
	return strings.Join(m, " and ")
}
