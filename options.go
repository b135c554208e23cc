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

package sheetrelay

// In this file: relay options.

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/rusq/sheetrelay/internal/pacer"
	"github.com/rusq/sheetrelay/internal/split"
)

const (
	SepTab  = "\t"
	SepPipe = " | "
)

// Options is the option set for the Relay.
type Options struct {
	// HeaderRow is the index of the worksheet row that holds the column
	// headers.  Data rows follow it.
	HeaderRow int `toml:"header_row" validate:"gte=0"`
	// Separator joins the cells of one row.
	Separator string `toml:"separator" validate:"required"`
	// Budget is the maximum length of one message, including Overhead.
	Budget int `toml:"budget" validate:"gte=1,lte=2000"`
	// Overhead is reserved in each message for the fence markup.
	Overhead int `toml:"overhead" validate:"gte=0,ltfield=Budget"`
	// HardSplit allows splitting the lines that do not fit into the budget.
	HardSplit bool `toml:"hard_split"`
	// Delay is the minimum delay between two messages.
	Delay time.Duration `toml:"delay" validate:"gte=0"`
	// Framing enables the header, warning and summary messages around the
	// data.
	Framing bool `toml:"framing"`
}

// DefOptions is the default options used when initialising the Relay.
var DefOptions = Options{
	HeaderRow: 0,
	Separator: SepTab,
	Budget:    split.DefBudget,
	Overhead:  split.DefOverhead,
	Delay:     pacer.DefDelay,
	Framing:   true,
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate validates the options.
func (o Options) Validate() error {
	return validate.Struct(o)
}

// splitOptions returns the splitter options.
func (o Options) splitOptions() split.Options {
	return split.Options{
		Budget:    o.Budget,
		Overhead:  o.Overhead,
		HardSplit: o.HardSplit,
	}
}

// ErrInvalidOptions is returned when the options fail validation.
var ErrInvalidOptions = errors.New("invalid options")

// ValidationMessage converts the validation error into the human readable
// message that lists all failed fields.
func ValidationMessage(err error) string {
	var vErr validator.ValidationErrors
	if !errors.As(err, &vErr) {
		return err.Error()
	}
	var sb strings.Builder
	for i, fe := range vErr {
		if i > 0 {
			sb.WriteString("; ")
		}
		if fe.Param() != "" {
			fmt.Fprintf(&sb, "%s must satisfy %s=%s, got %v", fe.Field(), fe.Tag(), fe.Param(), fe.Value())
		} else {
			fmt.Fprintf(&sb, "%s is %s", fe.Field(), fe.Tag())
		}
	}
	return sb.String()
}
