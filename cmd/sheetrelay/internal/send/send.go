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

package send

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/rusq/sheetrelay"
	"github.com/rusq/sheetrelay/cmd/sheetrelay/internal/bootstrap"
	"github.com/rusq/sheetrelay/cmd/sheetrelay/internal/golang/base"
	"github.com/rusq/sheetrelay/internal/alias"
	"github.com/rusq/sheetrelay/internal/channel"
	"github.com/rusq/sheetrelay/internal/pacer"
)

//go:embed assets/send.md
var sendMD string

var CmdSend = &base.Command{
	UsageLine:  base.CmdName + " send [flags] <alias|link> [<sheet>] <date> [<rows>]",
	Short:      "relays the spreadsheet window once",
	Long:       sendMD,
	Run:        runSend,
	PrintFlags: true,
}

var flags struct {
	channelID string
	threadTS  string
}

func init() {
	CmdSend.Flag.StringVar(&flags.channelID, "channel", "", "Slack channel `ID` to post to, if empty, messages are printed to STDOUT")
	CmdSend.Flag.StringVar(&flags.threadTS, "thread", "", "reply to the thread with the given `timestamp`, requires -channel")
}

var errNoRequest = errors.New("alias or link is required")

func runSend(ctx context.Context, cmd *base.Command, args []string) error {
	if len(args) == 0 {
		base.SetExitStatus(base.SInvalidParameters)
		return errNoRequest
	}
	if flags.threadTS != "" && flags.channelID == "" {
		base.SetExitStatus(base.SInvalidParameters)
		return errors.New("-thread requires -channel")
	}
	ch, err := output(os.Stdout)
	if err != nil {
		base.SetExitStatus(base.SAuthError)
		return err
	}
	src, err := bootstrap.Source(ctx)
	if err != nil {
		base.SetExitStatus(base.SInitializationError)
		return err
	}
	r, err := bootstrap.Relay(src)
	if err != nil {
		base.SetExitStatus(base.SInvalidParameters)
		return err
	}
	return run(ctx, os.Stderr, r, ch, args)
}

// output returns the channel the messages are delivered to.
func output(w io.Writer) (pacer.Channel, error) {
	if flags.channelID == "" {
		return channel.NewWriter(w), nil
	}
	client, err := bootstrap.SlackClient()
	if err != nil {
		return nil, err
	}
	var opts []channel.SlackOption
	if flags.threadTS != "" {
		opts = append(opts, channel.WithThread(flags.threadTS))
	}
	opts = append(opts, channel.WithSlackLogger(slog.Default()))
	return channel.NewSlack(client, flags.channelID, opts...), nil
}

// run handles the request and prints the delivery summary to w.
func run(ctx context.Context, w io.Writer, r *sheetrelay.Relay, ch pacer.Channel, args []string) error {
	resp, rep, err := r.Handle(ctx, ch, args[0], args[1:])
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled):
			base.SetExitStatus(base.SCancelled)
		case isUserError(err):
			base.SetExitStatus(base.SUserError)
		default:
			base.SetExitStatus(base.SApplicationError)
		}
		if rep.Sent == 0 && rep.Rejected == 0 {
			return err
		}
	}
	if resp != nil && resp.Request.Shape != alias.ShapeAssign {
		fmt.Fprintf(w, "%s %s message(s) sent, %s data row(s) from %q\n",
			color.GreenString("done:"),
			humanize.Comma(int64(rep.Sent)),
			humanize.Comma(int64(resp.Window.Used)),
			resp.Title,
		)
	}
	if rep.Rejected > 0 {
		fmt.Fprintf(w, "%s %d message(s) rejected\n", color.YellowString("warning:"), rep.Rejected)
	}
	return err
}

func isUserError(err error) bool {
	var (
		ue  *sheetrelay.UsageError
		wnf *sheetrelay.WorksheetNotFoundError
		cnf *sheetrelay.ColumnNotFoundError
	)
	return errors.As(err, &ue) ||
		errors.As(err, &wnf) ||
		errors.As(err, &cnf) ||
		errors.Is(err, sheetrelay.ErrInvalidReference) ||
		errors.Is(err, sheetrelay.ErrInvalidRowLimit) ||
		errors.Is(err, sheetrelay.ErrSpreadsheetNotFound) ||
		errors.Is(err, sheetrelay.ErrEmptyWorksheet)
}
