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

package serve

import (
	"context"
	_ "embed"
	"errors"
	"log/slog"

	"github.com/rusq/osenv/v2"

	"github.com/rusq/sheetrelay/cmd/sheetrelay/internal/bootstrap"
	"github.com/rusq/sheetrelay/cmd/sheetrelay/internal/cfg"
	"github.com/rusq/sheetrelay/cmd/sheetrelay/internal/golang/base"
	"github.com/rusq/sheetrelay/internal/pacer"
	"github.com/rusq/sheetrelay/internal/server"
)

//go:embed assets/serve.md
var serveMD string

var CmdServe = &base.Command{
	UsageLine:  base.CmdName + " serve [flags]",
	Short:      "runs the Slack slash command server",
	Long:       serveMD,
	Run:        runServe,
	PrintFlags: true,
}

var flags struct {
	listen string
}

func init() {
	CmdServe.Flag.StringVar(&flags.listen, "listen", ":"+osenv.Value("PORT", "8080"), "listen on `address` (environment: PORT)")
}

var errNoSecret = errors.New("signing secret is required, use -signing-secret flag or SLACK_SIGNING_SECRET environment variable")

func runServe(ctx context.Context, cmd *base.Command, args []string) error {
	if cfg.SigningSecret == "" {
		base.SetExitStatus(base.SInvalidParameters)
		return errNoSecret
	}
	client, err := bootstrap.SlackClient()
	if err != nil {
		base.SetExitStatus(base.SAuthError)
		return err
	}
	resp, err := client.AuthTestContext(ctx)
	if err != nil {
		base.SetExitStatus(base.SAuthError)
		return err
	}
	slog.InfoContext(ctx, "authenticated", "team", resp.Team, "user", resp.User, "bot_id", resp.BotID)

	b, err := bootstrap.Bot(ctx)
	if err != nil {
		base.SetExitStatus(base.SInitializationError)
		return err
	}
	newCh := bootstrap.SlackChannel(client)
	srv := server.New(
		b,
		func(channelID string) pacer.Channel { return newCh(channelID) },
		cfg.SigningSecret,
		server.WithLogger(slog.Default()),
	)
	if err := srv.ListenAndServe(ctx, flags.listen); err != nil {
		base.SetExitStatus(base.SApplicationError)
		return err
	}
	slog.InfoContext(ctx, "server stopped")
	return nil
}
