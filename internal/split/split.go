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

// Package split splits text into size-bounded units on line boundaries.
package split

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// DefBudget is the default unit budget.  It leaves headroom under the
	// 2000 character message limit for the fence markup.
	DefBudget = 1900
	// DefOverhead is the default formatting overhead reserved in each unit.
	DefOverhead = 10
)

// Options are the splitter options.
type Options struct {
	// Budget is the maximum length of the unit, including Overhead.
	Budget int
	// Overhead is reserved for the formatting that is added to each unit
	// when it is sent.
	Overhead int
	// HardSplit allows splitting a single line that does not fit into the
	// budget.  If false, such line is emitted as a unit of its own, even
	// though it exceeds the budget.
	HardSplit bool
}

// DefOptions are the default options.
var DefOptions = Options{
	Budget:   DefBudget,
	Overhead: DefOverhead,
}

// width is the maximum payload length of the unit.
func (o Options) width() int {
	return max(o.Budget-o.Overhead, 1)
}

// Fits reports whether s and the overhead fit into the budget.
func (o Options) Fits(s string) bool {
	return Len(s)+o.Overhead <= o.Budget
}

// Len returns the length of s as counted against the budget, i.e. the number
// of characters.
func Len(s string) int {
	return utf8.RuneCountInString(s)
}

// Lines splits text into units.  Lines are accumulated into a unit while the
// unit length together with the overhead fits into the budget.  Each unit is
// trimmed of the trailing whitespace, whitespace-only units are dropped.  The
// units are returned in the input order.
func Lines(text string, o Options) []string {
	var (
		out    []string
		buf    strings.Builder
		bufLen int
	)
	flush := func() {
		if s := strings.TrimRightFunc(buf.String(), unicode.IsSpace); strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
		buf.Reset()
		bufLen = 0
	}
	for _, line := range strings.Split(text, "\n") {
		n := Len(line)
		if bufLen+n+o.Overhead > o.Budget {
			flush()
			if o.HardSplit && n > o.width() {
				pieces := hardSplit(line, o.width())
				out = append(out, pieces[:len(pieces)-1]...)
				line = pieces[len(pieces)-1]
				n = Len(line)
			}
		}
		buf.WriteString(line)
		buf.WriteByte('\n')
		bufLen += n + 1
	}
	flush()
	return out
}

// hardSplit splits s into pieces of at most w characters.  It never returns
// an empty slice.
func hardSplit(s string, w int) []string {
	var pieces []string
	for Len(s) > w {
		i := 0
		for range w {
			_, sz := utf8.DecodeRuneInString(s[i:])
			i += sz
		}
		pieces = append(pieces, s[:i])
		s = s[i:]
	}
	return append(pieces, s)
}
