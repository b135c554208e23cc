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

// Package bot binds the chat commands to the relay.  It parses the command
// line, runs the command and replies to the channel.  It is the only place
// where errors are turned into user facing text.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rusq/sheetrelay"
	"github.com/rusq/sheetrelay/internal/alias"
	"github.com/rusq/sheetrelay/internal/pacer"
	"github.com/rusq/sheetrelay/internal/split"
)

const (
	cmdSet   = "set"
	cmdSend  = "send"
	cmdVars  = "vars"
	cmdClear = "clear"
	cmdHelp  = "help"
)

// aliases of the command names.
var synonyms = map[string]string{
	"clear_vars": cmdClear,
	"help_send":  cmdHelp,
	"variables":  cmdVars,
}

// Bot runs the commands.
type Bot struct {
	relay *sheetrelay.Relay
	lg    *slog.Logger
}

// Option is the bot option.
type Option func(*Bot)

// WithLogger sets the logger.
func WithLogger(lg *slog.Logger) Option {
	return func(b *Bot) {
		if lg != nil {
			b.lg = lg
		}
	}
}

// New creates the bot for the relay.
func New(relay *sheetrelay.Relay, opts ...Option) *Bot {
	b := &Bot{
		relay: relay,
		lg:    slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Run parses and runs the command line, replying to ch.  Command failures
// are reported to the channel, the returned error is the failure of the
// command itself, or the reply delivery failure.
func (b *Bot) Run(ctx context.Context, ch pacer.Channel, line string) error {
	cmd, err := Parse(line)
	if err != nil {
		if errors.Is(err, ErrEmptyCommand) {
			return b.reply(ctx, ch, helpText())
		}
		return b.fail(ctx, ch, err)
	}
	if name, ok := synonyms[cmd.Name]; ok {
		cmd.Name = name
	}
	lg := b.lg.With("command", cmd.Name)
	lg.DebugContext(ctx, "running command", "args", cmd.Args)

	switch cmd.Name {
	case cmdSet:
		return b.set(ctx, ch, cmd.Args)
	case cmdSend:
		return b.send(ctx, ch, cmd.Args)
	case cmdVars:
		return b.reply(ctx, ch, VarsText(b.relay.Store().List()))
	case cmdClear:
		return b.reply(ctx, ch, b.clear(cmd.Args))
	case cmdHelp:
		return b.reply(ctx, ch, helpText())
	default:
		return b.reply(ctx, ch, fmt.Sprintf("❌ Unknown command `%s`. Use `%shelp` for usage instructions.", cmd.Name, Prefix))
	}
}

func (b *Bot) set(ctx context.Context, ch pacer.Channel, args []string) error {
	if len(args) == 0 {
		return b.fail(ctx, ch, &alias.UsageError{Hint: "nothing to set", Shapes: alias.Usage[2:]})
	}
	a, err := alias.ParseAssignment(args[0], args[1:])
	if err != nil {
		return b.fail(ctx, ch, err)
	}
	resp, err := b.relay.Assign(a)
	if err != nil {
		return b.fail(ctx, ch, err)
	}
	_, err = b.relay.Deliver(ctx, ch, resp)
	return err
}

func (b *Bot) send(ctx context.Context, ch pacer.Channel, args []string) error {
	if len(args) == 0 {
		return b.fail(ctx, ch, &alias.UsageError{Hint: "missing alias or link", Shapes: alias.Usage[:2]})
	}
	resp, rep, err := b.relay.Handle(ctx, ch, args[0], args[1:])
	if err != nil {
		if resp != nil {
			b.lg.WarnContext(ctx, "response delivered partially", "sent", rep.Sent, "rejected", rep.Rejected, "error", err)
		}
		return b.fail(ctx, ch, err)
	}
	b.lg.InfoContext(ctx, "response delivered", "sent", rep.Sent, "rows", len(resp.Window.Rows))
	return nil
}

// clear runs the clear command and returns the reply.
func (b *Bot) clear(args []string) string {
	st := b.relay.Store()
	switch {
	case len(args) == 0:
		return "❌ Specify a variable name or 'all' to clear everything."
	case len(args) == 1 && strings.EqualFold(args[0], "all"):
		st.ClearAll()
		return "✅ All variables cleared."
	case len(args) == 1:
		fields, ok := st.Clear(args[0])
		if !ok {
			return fmt.Sprintf("❌ Variable '%s' not found.", args[0])
		}
		return fmt.Sprintf("✅ Cleared %s: %s", args[0], joinFields(fields))
	case len(args) == 2:
		f, ok := alias.FieldByKeyword(args[1])
		if !ok {
			return fmt.Sprintf("❌ Unknown property '%s'.", args[1])
		}
		if !st.ClearField(args[0], f) {
			return fmt.Sprintf("❌ Variable '%s' has no %s.", args[0], f)
		}
		return fmt.Sprintf("✅ Cleared %s: %s", args[0], f)
	default:
		return fmt.Sprintf("❌ Invalid format. Use `%sclear <name> [property]` or `%sclear all`.", Prefix, Prefix)
	}
}

func joinFields(ff []alias.Field) string {
	s := make([]string, len(ff))
	for i, f := range ff {
		s[i] = f.String()
	}
	return strings.Join(s, ", ")
}

// fail reports the error to the channel and returns it.
func (b *Bot) fail(ctx context.Context, ch pacer.Channel, err error) error {
	b.lg.InfoContext(ctx, "command failed", "error", err)
	var te *sheetrelay.TransportError
	if errors.As(err, &te) {
		// the channel is broken, there is no point in replying.
		return err
	}
	if rerr := b.reply(ctx, ch, Describe(err)); rerr != nil {
		return errors.Join(err, rerr)
	}
	return err
}

// reply sends the text to the channel, splitting it if necessary.
func (b *Bot) reply(ctx context.Context, ch pacer.Channel, text string) error {
	opts := b.relay.Options()
	var units []pacer.Unit
	for _, s := range split.Lines(text, split.Options{Budget: opts.Budget}) {
		units = append(units, pacer.Unit{Text: s})
	}
	s := pacer.New(ch, pacer.WithDelay(opts.Delay), pacer.WithFormatter(pacer.Verbatim), pacer.WithLogger(b.lg))
	_, err := s.Send(ctx, units)
	return err
}
