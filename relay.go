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

// Package sheetrelay reads a three column window of a spreadsheet, located by
// the column header, and relays it to a message channel in size-bounded
// messages, keeping the fenced code regions intact.
package sheetrelay

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/trace"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/rusq/sheetrelay/internal/alias"
	"github.com/rusq/sheetrelay/internal/fence"
	"github.com/rusq/sheetrelay/internal/pacer"
	"github.com/rusq/sheetrelay/internal/sheet"
	"github.com/rusq/sheetrelay/internal/split"
	"github.com/rusq/sheetrelay/internal/window"
)

// Relay runs the extraction requests.  Zero value is not usable, must be
// initialised with New.  It is safe for concurrent use, requests share only
// the alias store.
type Relay struct {
	src   sheet.Opener
	store *alias.Store
	opts  Options
	lg    *slog.Logger
}

// Option is the signature of the option-setting function.
type Option func(*Relay)

// WithOptions sets the relay options.
func WithOptions(o Options) Option {
	return func(r *Relay) {
		r.opts = o
	}
}

// WithLogger sets the logger.
func WithLogger(lg *slog.Logger) Option {
	return func(r *Relay) {
		if lg != nil {
			r.lg = lg
		}
	}
}

// New creates a new Relay that reads spreadsheets from src and resolves the
// aliases in store.
func New(src sheet.Opener, store *alias.Store, opts ...Option) (*Relay, error) {
	if src == nil || store == nil {
		return nil, fmt.Errorf("%w: source and alias store are required", ErrInvalidOptions)
	}
	r := &Relay{
		src:   src,
		store: store,
		opts:  DefOptions,
		lg:    slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if err := r.opts.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidOptions, ValidationMessage(err))
	}
	return r, nil
}

// Options returns the relay options.
func (r *Relay) Options() Options {
	return r.opts
}

// Store returns the alias store.
func (r *Relay) Store() *alias.Store {
	return r.store
}

// Handle prepares the response for the request and delivers it to the
// channel.  The name is the alias or the spreadsheet link, args are the
// remaining request tokens.  Partially delivered response is reported in
// pacer.Report.
func (r *Relay) Handle(ctx context.Context, ch pacer.Channel, name string, args []string) (*Response, pacer.Report, error) {
	ctx, task := trace.NewTask(ctx, "Handle")
	defer task.End()

	resp, err := r.Prepare(ctx, name, args)
	if err != nil {
		return nil, pacer.Report{}, err
	}
	rep, err := r.Deliver(ctx, ch, resp)
	return resp, rep, err
}

// Deliver sends the response units to the channel.
func (r *Relay) Deliver(ctx context.Context, ch pacer.Channel, resp *Response) (pacer.Report, error) {
	s := pacer.New(ch, pacer.WithDelay(r.opts.Delay), pacer.WithLogger(r.lg))
	return s.Send(ctx, resp.Units())
}

// Prepare resolves the request, reads the worksheet and splits the data into
// the transmission units.  It does not send anything.  If the request is the
// setting statement, the alias store is updated.
func (r *Relay) Prepare(ctx context.Context, name string, args []string) (*Response, error) {
	req, err := r.store.Resolve(name, args)
	if err != nil {
		return nil, err
	}
	lg := r.lg.With("shape", req.Shape.String())
	lg.DebugContext(ctx, "resolved request", "alias", req.Alias, "sheet", req.SheetLabel, "date", req.Date, "rows", req.RowLimit)
	if req.Shape == alias.ShapeAssign {
		return r.Assign(req.Assignment)
	}
	return r.extract(ctx, lg, req)
}

// Assign applies the alias assignment.
func (r *Relay) Assign(a alias.Assignment) (*Response, error) {
	rec, err := r.store.Apply(a)
	if err != nil {
		return nil, err
	}
	return &Response{
		Request: alias.Request{Shape: alias.ShapeAssign, Assignment: a},
		Record:  rec,
	}, nil
}

func (r *Relay) extract(ctx context.Context, lg *slog.Logger, req alias.Request) (*Response, error) {
	id, err := sheet.ParseReference(req.Link)
	if err != nil {
		return nil, err
	}
	values, title, err := r.fetch(ctx, id, req.SheetLabel)
	if err != nil {
		return nil, err
	}
	lg.DebugContext(ctx, "fetched worksheet", "id", id, "title", title, "rows", len(values))

	if len(values) <= r.opts.HeaderRow {
		return nil, fmt.Errorf("%w: %q", ErrEmptyWorksheet, req.SheetLabel)
	}
	col, err := window.Locate(values[r.opts.HeaderRow], req.Date)
	if err != nil {
		return nil, err
	}
	res, err := window.Extract(values, window.Params{
		HeaderRow: r.opts.HeaderRow,
		Column:    col,
		Limit:     req.RowLimit,
	})
	if err != nil {
		return nil, err
	}
	if res.Clamped() {
		lg.WarnContext(ctx, "row limit clamped", "requested", res.Requested, "available", res.Available)
	}

	resp := &Response{
		Request: req,
		Title:   title,
		Window:  res,
		framing: r.opts.Framing,
	}
	segs := fence.Split(strings.Join(res.Lines(r.opts.Separator), "\n"))
	tabular := !fence.HasFenced(segs)
	so := r.opts.splitOptions()
	for _, seg := range segs {
		kind := seg.Kind
		if tabular {
			// the whole table is displayed preformatted.
			kind = fence.KFenced
		} else if seg.Kind == fence.KFenced {
			resp.Blocks++
		}
		for _, text := range split.Lines(seg.Content, so) {
			if !so.Fits(text) {
				lg.WarnContext(ctx, "message exceeds the budget", "length", humanize.Comma(int64(split.Len(text))), "budget", humanize.Comma(int64(so.Budget)))
			}
			resp.Data = append(resp.Data, pacer.Unit{Kind: kind, Text: text})
		}
	}
	lg.DebugContext(ctx, "prepared response", "segments", len(segs), "blocks", resp.Blocks, "units", len(resp.Data))
	return resp, nil
}

// fetch reads the worksheet values.
func (r *Relay) fetch(ctx context.Context, id sheet.ID, label string) ([][]string, string, error) {
	ctx, task := trace.NewTask(ctx, "fetch")
	defer task.End()

	ss, err := r.src.Open(ctx, id)
	if err != nil {
		return nil, "", err
	}
	ws, err := ss.Worksheet(ctx, label)
	if err != nil {
		return nil, "", err
	}
	values, err := ws.Values(ctx)
	if err != nil {
		return nil, "", err
	}
	return values, ss.Title(), nil
}
