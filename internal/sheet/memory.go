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
	"context"
	"slices"
	"sync"
)

// Memory is an in-memory Opener.  It is used in tests and demos.
type Memory struct {
	mu     sync.RWMutex
	sheets map[ID]*MemorySpreadsheet
}

// MemorySpreadsheet is a spreadsheet held in memory.
type MemorySpreadsheet struct {
	Name string
	Tabs []MemoryWorksheet
}

// MemoryWorksheet is a worksheet held in memory.
type MemoryWorksheet struct {
	Name string
	Rows [][]string
}

var (
	_ Opener      = (*Memory)(nil)
	_ Spreadsheet = (*MemorySpreadsheet)(nil)
	_ Worksheet   = (*MemoryWorksheet)(nil)
)

// NewMemory creates an empty in-memory source.
func NewMemory() *Memory {
	return &Memory{sheets: make(map[ID]*MemorySpreadsheet)}
}

// Add adds or replaces the spreadsheet with the given id.
func (m *Memory) Add(id ID, ss *MemorySpreadsheet) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sheets[id] = ss
}

func (m *Memory) Open(ctx context.Context, id ID) (Spreadsheet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	ss, ok := m.sheets[id]
	if !ok {
		return nil, ErrSpreadsheetNotFound
	}
	return ss, nil
}

func (s *MemorySpreadsheet) Title() string {
	return s.Name
}

func (s *MemorySpreadsheet) Worksheet(ctx context.Context, label string) (Worksheet, error) {
	for i := range s.Tabs {
		if s.Tabs[i].Name == label {
			return &s.Tabs[i], nil
		}
	}
	labels := make([]string, 0, len(s.Tabs))
	for _, t := range s.Tabs {
		labels = append(labels, t.Name)
	}
	return nil, &WorksheetNotFoundError{Label: label, Available: labels}
}

func (w *MemoryWorksheet) Label() string {
	return w.Name
}

// Values returns a copy of the worksheet rows.
func (w *MemoryWorksheet) Values(ctx context.Context) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([][]string, len(w.Rows))
	for i, r := range w.Rows {
		out[i] = slices.Clone(r)
	}
	return out, nil
}
