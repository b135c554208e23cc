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

// Package alias implements the in-memory alias store.  An alias is a short
// name bound to a partially populated extraction configuration: spreadsheet
// link, worksheet label and row limit.
package alias

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/rusq/sheetrelay/internal/sheet"
)

// Field is the record field.
type Field uint8

const (
	FLink Field = 1 << iota
	FSheet
	FRows

	FAll = FLink | FSheet | FRows
)

func (f Field) String() string {
	switch f {
	case FLink:
		return "link"
	case FSheet:
		return "sheet name"
	case FRows:
		return "row max"
	default:
		return "field(" + strconv.Itoa(int(f)) + ")"
	}
}

// ErrEmptyValue is returned when the value being set is empty.
var ErrEmptyValue = errors.New("value must not be empty")

// RowLimitError is returned when the row limit value is not a positive
// integer.
type RowLimitError struct {
	Value string
}

func (e *RowLimitError) Error() string {
	return fmt.Sprintf("%s: got %q", sheet.ErrInvalidRowLimit, e.Value)
}

func (e *RowLimitError) Unwrap() error {
	return sheet.ErrInvalidRowLimit
}

// ParseRowLimit parses the row limit token.
func ParseRowLimit(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, &RowLimitError{Value: s}
	}
	return n, nil
}

// Record is the alias record.  An empty field is not set.
type Record struct {
	Name       string
	Link       string
	SheetLabel string
	RowLimit   int
}

func (r Record) HasLink() bool  { return r.Link != "" }
func (r Record) HasSheet() bool { return r.SheetLabel != "" }
func (r Record) HasRows() bool  { return r.RowLimit > 0 }

// Fields returns the set fields.
func (r Record) Fields() []Field {
	var ff []Field
	if r.HasLink() {
		ff = append(ff, FLink)
	}
	if r.HasSheet() {
		ff = append(ff, FSheet)
	}
	if r.HasRows() {
		ff = append(ff, FRows)
	}
	return ff
}

// IsEmpty reports whether no fields are set.
func (r Record) IsEmpty() bool {
	return !r.HasLink() && !r.HasSheet() && !r.HasRows()
}

// Store is the alias store.  It is safe for concurrent use.  All values are
// validated when set, so that the consumers can trust the stored values.
type Store struct {
	mu sync.RWMutex
	m  map[string]*Record
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{m: make(map[string]*Record)}
}

// update runs fn on the record name, creating it if necessary.
func (s *Store) update(name string, fn func(r *Record)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.m[name]
	if !ok {
		r = &Record{Name: name}
		s.m[name] = r
	}
	fn(r)
}

func validName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("alias name: %w", ErrEmptyValue)
	}
	return nil
}

// SetLink sets the spreadsheet link of the alias.  It returns
// sheet.ErrInvalidReference if the link has no spreadsheet identifier.
func (s *Store) SetLink(name, ref string) error {
	if err := validName(name); err != nil {
		return err
	}
	if _, err := sheet.ParseReference(ref); err != nil {
		return err
	}
	s.update(name, func(r *Record) { r.Link = ref })
	return nil
}

// SetSheetLabel sets the worksheet label of the alias.
func (s *Store) SetSheetLabel(name, label string) error {
	if err := validName(name); err != nil {
		return err
	}
	if strings.TrimSpace(label) == "" {
		return fmt.Errorf("sheet name: %w", ErrEmptyValue)
	}
	s.update(name, func(r *Record) { r.SheetLabel = label })
	return nil
}

// SetRowLimit sets the row limit of the alias.  The limit must be at least 1.
func (s *Store) SetRowLimit(name string, n int) error {
	if err := validName(name); err != nil {
		return err
	}
	if n < 1 {
		return &RowLimitError{Value: strconv.Itoa(n)}
	}
	s.update(name, func(r *Record) { r.RowLimit = n })
	return nil
}

// Get returns the record for the name.
func (s *Store) Get(name string) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.m[name]
	if !ok {
		return Record{}, false
	}
	return *r, true
}

// Clear removes the record and returns the fields that were set.  If there
// was no such record, it returns false.
func (s *Store) Clear(name string) ([]Field, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.m[name]
	if !ok {
		return nil, false
	}
	delete(s.m, name)
	return r.Fields(), true
}

// ClearField unsets the fields f of the record.  The record is removed when
// it has no fields left.  It returns false, if the record or none of the
// fields were set.
func (s *Store) ClearField(name string, f Field) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.m[name]
	if !ok {
		return false
	}
	var cleared bool
	if f&FLink != 0 && r.HasLink() {
		r.Link = ""
		cleared = true
	}
	if f&FSheet != 0 && r.HasSheet() {
		r.SheetLabel = ""
		cleared = true
	}
	if f&FRows != 0 && r.HasRows() {
		r.RowLimit = 0
		cleared = true
	}
	if r.IsEmpty() {
		delete(s.m, name)
	}
	return cleared
}

// ClearAll removes all records.
func (s *Store) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.m)
}

// List returns the snapshot of all records, sorted by name.
func (s *Store) List() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Record, 0, len(s.m))
	for _, r := range s.m {
		out = append(out, *r)
	}
	slices.SortFunc(out, func(a, b Record) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// Len returns the number of records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}
