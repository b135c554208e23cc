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
	"regexp"
)

// ID is the canonical spreadsheet identifier, as it appears in the
// spreadsheet URL.
type ID string

func (id ID) String() string {
	return string(id)
}

// reIdentifier matches the spreadsheet identifier embedded in a spreadsheet
// reference, i.e.:
//
//	https://docs.google.com/spreadsheets/d/1AbC-d_E/edit#gid=0
var reIdentifier = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9_-]+)`)

// ParseReference extracts the spreadsheet ID from the reference string.  It
// does not access the network, it only looks at the string.  If the reference
// does not contain an identifier, it returns ErrInvalidReference.
func ParseReference(ref string) (ID, error) {
	m := reIdentifier.FindStringSubmatch(ref)
	if m == nil {
		return "", ErrInvalidReference
	}
	return ID(m[1]), nil
}

// IsReference reports whether the ref is a valid spreadsheet reference.
func IsReference(ref string) bool {
	return reIdentifier.MatchString(ref)
}
