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

// Package channel contains the message channel implementations.
package channel

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	"github.com/rusq/slack"
	"golang.org/x/time/rate"

	"github.com/rusq/sheetrelay/internal/network"
	"github.com/rusq/sheetrelay/internal/pacer"
)

// Poster is the subset of the Slack client that posts messages.
type Poster interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ Poster = (*slack.Client)(nil)

// rejections are the Slack API errors that refuse one particular message,
// the channel itself remains usable.
var rejections = []string{
	"msg_too_long",
	"no_text",
	"invalid_blocks",
	"invalid_attachments",
	"too_many_attachments",
}

const defRetries = 3

// Slack posts messages to a Slack conversation.
type Slack struct {
	api       Poster
	channelID string
	threadTS  string
	lim       *rate.Limiter
	retries   int
	lg        *slog.Logger
}

var _ pacer.Channel = (*Slack)(nil)

// SlackOption is the Slack channel option.
type SlackOption func(*Slack)

// WithThread makes the channel reply in the thread with the given timestamp.
func WithThread(ts string) SlackOption {
	return func(s *Slack) {
		s.threadTS = ts
	}
}

// WithLimiter sets the rate limiter.
func WithLimiter(l *rate.Limiter) SlackOption {
	return func(s *Slack) {
		if l != nil {
			s.lim = l
		}
	}
}

// WithRetries sets the number of attempts for a message.
func WithRetries(n int) SlackOption {
	return func(s *Slack) {
		if n > 0 {
			s.retries = n
		}
	}
}

// WithSlackLogger sets the logger.
func WithSlackLogger(lg *slog.Logger) SlackOption {
	return func(s *Slack) {
		if lg != nil {
			s.lg = lg
		}
	}
}

// NewSlack creates a Slack channel that posts to the conversation channelID.
func NewSlack(api Poster, channelID string, opts ...SlackOption) *Slack {
	s := &Slack{
		api:       api,
		channelID: channelID,
		lim:       network.NewLimiter(network.TierPost, 1, 0),
		retries:   defRetries,
		lg:        slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ChannelID returns the conversation ID.
func (s *Slack) ChannelID() string {
	return s.channelID
}

func (s *Slack) Post(ctx context.Context, text string) error {
	opts := []slack.MsgOption{
		slack.MsgOptionText(text, false),
		slack.MsgOptionDisableLinkUnfurl(),
	}
	if s.threadTS != "" {
		opts = append(opts, slack.MsgOptionTS(s.threadTS))
	}
	var ts string
	err := network.WithRetry(ctx, s.lim, s.retries, func() error {
		var err error
		_, ts, err = s.api.PostMessageContext(ctx, s.channelID, opts...)
		return err
	})
	if err != nil {
		var ser slack.SlackErrorResponse
		if errors.As(err, &ser) && slices.Contains(rejections, ser.Err) {
			return &pacer.RejectedError{Reason: ser.Err, Err: err}
		}
		return err
	}
	s.lg.DebugContext(ctx, "posted message", "channel", s.channelID, "ts", ts, "len", len(text))
	return nil
}
