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
	"strings"
	"unicode"
)

// Prefix is the optional command prefix.
const Prefix = "r!"

var (
	ErrEmptyCommand      = errors.New("empty command")
	ErrUnterminatedQuote = errors.New("unterminated quote")
)

// Command is the parsed command line.
type Command struct {
	Name string // lower case
	Args []string
}

// Parse parses the command line.  The prefix is optional.
func Parse(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if len(line) >= len(Prefix) && strings.EqualFold(line[:len(Prefix)], Prefix) {
		line = line[len(Prefix):]
	}
	tok, err := Tokenize(line)
	if err != nil {
		return Command{}, err
	}
	if len(tok) == 0 {
		return Command{}, ErrEmptyCommand
	}
	return Command{Name: strings.ToLower(tok[0]), Args: tok[1:]}, nil
}

// closing returns the closing quote for the opening quote r.
func closing(r rune) (rune, bool) {
	switch r {
	case '"':
		return '"', true
	case '“':
		return '”', true
	}
	return 0, false
}

// Tokenize splits s into whitespace separated tokens.  Double quotes group
// words into one token; typographic quotes are accepted too, as chat clients
// tend to replace the plain ones.  There are no escapes.
func Tokenize(s string) ([]string, error) {
	var (
		out     []string
		cur     strings.Builder
		inToken bool
		quote   rune
	)
	for _, r := range s {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
				continue
			}
			cur.WriteRune(r)
		case unicode.IsSpace(r):
			if inToken {
				out = append(out, cur.String())
				cur.Reset()
				inToken = false
			}
		default:
			if q, ok := closing(r); ok {
				quote = q
				inToken = true
				continue
			}
			cur.WriteRune(r)
			inToken = true
		}
	}
	if quote != 0 {
		return nil, ErrUnterminatedQuote
	}
	if inToken {
		out = append(out, cur.String())
	}
	return out, nil
}
