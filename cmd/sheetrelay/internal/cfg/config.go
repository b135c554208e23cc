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

package cfg

// In this file: configuration file.

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/rusq/sheetrelay"
	"github.com/rusq/sheetrelay/internal/alias"
)

// ErrConfigInvalid is returned when the configuration file fails validation.
var ErrConfigInvalid = errors.New("config validation failed")

// File is the configuration file.
//
//	[relay]
//	header_row = 0
//	separator = "\t"
//	delay = "500ms"
//
//	[aliases.CA]
//	link = "https://docs.google.com/spreadsheets/d/.../edit"
//	sheet = "Daily"
//	rows = 10
type File struct {
	Relay   sheetrelay.Options    `toml:"relay"`
	Aliases map[string]AliasEntry `toml:"aliases"`
}

// AliasEntry is the alias record in the configuration file.  Empty fields are
// not set.
type AliasEntry struct {
	Link  string `toml:"link"`
	Sheet string `toml:"sheet"`
	Rows  int    `toml:"rows"`
}

// ReadConfig reads and validates the configuration.  The relay options that
// are absent in the configuration retain the values of base.
func ReadConfig(r io.Reader, base sheetrelay.Options) (*File, error) {
	f := File{Relay: base}
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, err
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		keys := make([]string, len(undec))
		for i, k := range undec {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys: %s", ErrConfigInvalid, strings.Join(keys, ", "))
	}
	if err := f.Relay.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrConfigInvalid, sheetrelay.ValidationMessage(err))
	}
	for name, a := range f.Aliases {
		if a.Rows < 0 {
			return nil, fmt.Errorf("%w: alias %q: rows must be positive", ErrConfigInvalid, name)
		}
	}
	return &f, nil
}

// Seed adds the aliases to the store.
func (f *File) Seed(st *alias.Store) error {
	names := make([]string, 0, len(f.Aliases))
	for name := range f.Aliases {
		names = append(names, name)
	}
	slices.Sort(names)
	var errs error
	for _, name := range names {
		a := f.Aliases[name]
		if a.Link != "" {
			errs = errors.Join(errs, wrapAlias(name, st.SetLink(name, a.Link)))
		}
		if a.Sheet != "" {
			errs = errors.Join(errs, wrapAlias(name, st.SetSheetLabel(name, a.Sheet)))
		}
		if a.Rows != 0 {
			errs = errors.Join(errs, wrapAlias(name, st.SetRowLimit(name, a.Rows)))
		}
	}
	return errs
}

func wrapAlias(name string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("alias %q: %w", name, err)
}

// LoadConfig loads the configuration file into RelayOptions and seeds the
// store with the aliases.  The flags that were set explicitly on fs take
// precedence over the file values.  Empty filename is a no-op.
func LoadConfig(fs *flag.FlagSet, filename string, st *alias.Store) error {
	if filename == "" {
		return nil
	}
	explicit := make(map[string]string)
	fs.Visit(func(f *flag.Flag) {
		explicit[f.Name] = f.Value.String()
	})

	fh, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer fh.Close()
	f, err := ReadConfig(fh, RelayOptions)
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	RelayOptions = f.Relay
	for name, val := range explicit {
		if err := fs.Set(name, val); err != nil {
			return err
		}
	}
	return f.Seed(st)
}
