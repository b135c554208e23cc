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

// Package fence splits text into fenced (preformatted) and plain segments.
//
// It is not a markdown parser: the text is split on the fence delimiter and
// every odd part is considered fenced.  An unbalanced delimiter makes the
// rest of the text fenced.  Nested or escaped fences are not recognised.
package fence

import "strings"

// Delimiter is the code fence delimiter.
const Delimiter = "```"

// Kind is the segment kind.
type Kind uint8

const (
	KPlain Kind = iota
	KFenced
)

func (k Kind) String() string {
	switch k {
	case KPlain:
		return "Plain"
	case KFenced:
		return "Fenced"
	default:
		return "Kind(?)"
	}
}

// Segment is a piece of text of a certain kind.
type Segment struct {
	Kind    Kind
	Content string
}

// Split splits the text into segments.  Surrounding line breaks are
// removed from each segment, empty and whitespace-only segments are dropped.
func Split(text string) []Segment {
	parts := strings.Split(text, Delimiter)
	var out []Segment
	for i, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		k := KPlain
		if i%2 == 1 {
			k = KFenced
		}
		out = append(out, Segment{Kind: k, Content: strings.Trim(p, "\r\n")})
	}
	return out
}

// HasFenced reports whether any of the segments is fenced.
func HasFenced(segs []Segment) bool {
	for _, s := range segs {
		if s.Kind == KFenced {
			return true
		}
	}
	return false
}

// Wrap wraps s into the fence delimiters.
func Wrap(s string) string {
	return Delimiter + s + Delimiter
}
