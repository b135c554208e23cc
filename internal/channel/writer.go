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

package channel

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"

	"github.com/rusq/sheetrelay/internal/pacer"
)

// Writer prints messages to the terminal, or any other writer.  Each message
// is preceded by a dimmed separator with the message number.
type Writer struct {
	mu  sync.Mutex
	w   io.Writer
	n   int
	sep *color.Color
}

var _ pacer.Channel = (*Writer)(nil)

// NewWriter creates a new Writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, sep: color.New(color.Faint)}
}

func (w *Writer) Post(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.n++
	if _, err := w.sep.Fprintf(w.w, "── #%d ──\n", w.n); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w.w, text)
	return err
}
