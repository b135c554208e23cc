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

// Package bootstrap contains the initialisation functions that are shared
// between the top level commands.
package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/rusq/slack"
	"google.golang.org/api/option"

	"github.com/rusq/sheetrelay"
	"github.com/rusq/sheetrelay/cmd/sheetrelay/internal/cfg"
	"github.com/rusq/sheetrelay/internal/bot"
	"github.com/rusq/sheetrelay/internal/channel"
	"github.com/rusq/sheetrelay/internal/sheet"
	"github.com/rusq/sheetrelay/internal/sheet/gsheets"
)

var (
	ErrNoToken       = errors.New("slack bot token is not set, use -token flag or SLACK_BOT_TOKEN environment variable")
	ErrNoGoogleCreds = errors.New("google credentials are not set, use -google-creds flag or GOOGLE_CREDENTIALS_JSON environment variable")
)

// Source returns the Google Sheets source initialised with the configured
// credentials.  Additional client options are passed to the sheets service,
// i.e. option.WithEndpoint in tests.
func Source(ctx context.Context, copts ...option.ClientOption) (*gsheets.Client, error) {
	if strings.TrimSpace(cfg.GoogleCreds) == "" {
		return nil, ErrNoGoogleCreds
	}
	creds, err := gsheets.Credentials(cfg.GoogleCreds)
	if err != nil {
		return nil, err
	}
	return gsheets.New(ctx, append([]option.ClientOption{creds, gsheets.ReadOnly()}, copts...), gsheets.WithLogger(slog.Default()))
}

// Relay returns the relay over src, configured with the global options and
// the alias store.
func Relay(src sheet.Opener) (*sheetrelay.Relay, error) {
	return sheetrelay.New(
		src,
		cfg.Aliases,
		sheetrelay.WithOptions(cfg.RelayOptions),
		sheetrelay.WithLogger(slog.Default()),
	)
}

// Bot returns the chat bot over the Google Sheets source.
func Bot(ctx context.Context) (*bot.Bot, error) {
	src, err := Source(ctx)
	if err != nil {
		return nil, err
	}
	r, err := Relay(src)
	if err != nil {
		return nil, err
	}
	return bot.New(r, bot.WithLogger(slog.Default())), nil
}

// SlackClient returns the Slack API client authenticated with the bot token.
func SlackClient(opts ...slack.Option) (*slack.Client, error) {
	if cfg.SlackToken == "" {
		return nil, ErrNoToken
	}
	return slack.New(cfg.SlackToken, opts...), nil
}

// SlackChannel returns the function that creates the Slack channel for the
// conversation ID.
func SlackChannel(client channel.Poster) func(channelID string) *channel.Slack {
	return func(channelID string) *channel.Slack {
		return channel.NewSlack(client, channelID, channel.WithSlackLogger(slog.Default()))
	}
}
