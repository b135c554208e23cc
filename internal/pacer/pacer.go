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

// Package pacer delivers the transmission units to the message channel, one
// by one, in order, with a minimum delay between the sends.
package pacer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/trace"
	"time"

	"github.com/rusq/sheetrelay/internal/fence"
)

//go:generate mockgen -destination mock_pacer/mock_pacer.go . Channel

// Channel is the message channel.
type Channel interface {
	// Post sends one message.  If the channel refuses this particular message,
	// i.e. it is too long, it should return *RejectedError, any other error
	// is considered a transport failure.
	Post(ctx context.Context, text string) error
}

// DefDelay is the default delay between the sends.
const DefDelay = 500 * time.Millisecond

// Unit is a single transmission unit.
type Unit struct {
	Kind fence.Kind
	Text string
}

// Formatter formats the unit for display.
type Formatter func(Unit) string

// FenceFenced wraps fenced units in fence delimiters and leaves plain units as
// they are.
func FenceFenced(u Unit) string {
	if u.Kind == fence.KFenced {
		return fence.Wrap(u.Text)
	}
	return u.Text
}

// FenceAll wraps all units in fence delimiters.
func FenceAll(u Unit) string {
	return fence.Wrap(u.Text)
}

// Verbatim returns the unit text as is.
func Verbatim(u Unit) string {
	return u.Text
}

// RejectedError is returned by the Channel when it refuses to deliver a
// message.  Delivery of the following messages continues.
type RejectedError struct {
	Reason string
	Err    error
}

func (e *RejectedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("message rejected: %s: %v", e.Reason, e.Err)
	}
	return "message rejected: " + e.Reason
}

func (e *RejectedError) Unwrap() error {
	return e.Err
}

// TransportError is a transport failure.  It aborts the delivery of the
// remaining units.
type TransportError struct {
	Unit int // index of the unit that failed
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure on message %d: %v", e.Unit+1, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Sender is the paced sender.
type Sender struct {
	ch     Channel
	delay  time.Duration
	format Formatter
	lg     *slog.Logger
}

// Option is the Sender option.
type Option func(*Sender)

// WithDelay sets the minimum delay between the sends.
func WithDelay(d time.Duration) Option {
	return func(s *Sender) {
		if d >= 0 {
			s.delay = d
		}
	}
}

// WithFormatter sets the unit formatter.
func WithFormatter(f Formatter) Option {
	return func(s *Sender) {
		if f != nil {
			s.format = f
		}
	}
}

// WithLogger sets the logger.
func WithLogger(lg *slog.Logger) Option {
	return func(s *Sender) {
		if lg != nil {
			s.lg = lg
		}
	}
}

// New creates a new Sender.
func New(ch Channel, opts ...Option) *Sender {
	s := &Sender{
		ch:     ch,
		delay:  DefDelay,
		format: FenceFenced,
		lg:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Report is the delivery report.
type Report struct {
	Sent     int // number of delivered units
	Rejected int // number of units refused by the channel
}

// Send delivers the units in order.  The next unit is dispatched only after
// the previous Post returned and the delay has passed.  A rejected unit is
// reported in the returned error, and the delivery continues.  On a
// transport failure, or context cancellation, the remaining units are
// dropped and *TransportError is returned.
func (s *Sender) Send(ctx context.Context, units []Unit) (Report, error) {
	ctx, task := trace.NewTask(ctx, "pacer.Send")
	defer task.End()

	var (
		rep  Report
		errs []error
	)
	for i, u := range units {
		if i > 0 {
			if err := wait(ctx, s.delay); err != nil {
				errs = append(errs, &TransportError{Unit: i, Err: err})
				return rep, errors.Join(errs...)
			}
		}
		err := s.ch.Post(ctx, s.format(u))
		if err == nil {
			rep.Sent++
			continue
		}
		var rej *RejectedError
		if errors.As(err, &rej) {
			s.lg.WarnContext(ctx, "message rejected", "unit", i+1, "of", len(units), "error", err)
			rep.Rejected++
			errs = append(errs, fmt.Errorf("message %d: %w", i+1, err))
			continue
		}
		s.lg.ErrorContext(ctx, "transport failure, dropping remaining messages", "unit", i+1, "remaining", len(units)-i-1, "error", err)
		errs = append(errs, &TransportError{Unit: i, Err: err})
		return rep, errors.Join(errs...)
	}
	return rep, errors.Join(errs...)
}

// wait waits for d or until the context is cancelled.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
