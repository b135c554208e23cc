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

// Package gsheets implements the tabular data source on top of the Google
// Sheets API v4.
package gsheets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"runtime/trace"
	"strings"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/rusq/sheetrelay/internal/sheet"
)

// Client opens Google spreadsheets.  The spreadsheet metadata and values are
// fetched on every request, nothing is cached.
type Client struct {
	svc *sheets.Service
	lg  *slog.Logger
}

var _ sheet.Opener = (*Client)(nil)

type options struct {
	lg *slog.Logger
}

// Option is the Client option.
type Option func(*options)

// WithLogger sets the logger.
func WithLogger(lg *slog.Logger) Option {
	return func(o *options) {
		if lg != nil {
			o.lg = lg
		}
	}
}

// New creates a new Client.  The copts are passed to the sheets service as
// is, i.e. option.WithCredentialsJSON.
func New(ctx context.Context, copts []option.ClientOption, opts ...Option) (*Client, error) {
	o := options{lg: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	svc, err := sheets.NewService(ctx, copts...)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	return &Client{svc: svc, lg: o.lg}, nil
}

// Credentials returns the client option for the service account
// credentials.  The creds value is either the JSON document itself, or a
// path to the file that contains it.
func Credentials(creds string) (option.ClientOption, error) {
	creds = strings.TrimSpace(creds)
	if creds == "" {
		return nil, errors.New("no google credentials provided")
	}
	if strings.HasPrefix(creds, "{") {
		return option.WithCredentialsJSON([]byte(creds)), nil
	}
	if _, err := os.Stat(creds); err != nil {
		return nil, fmt.Errorf("credentials file: %w", err)
	}
	return option.WithCredentialsFile(creds), nil
}

// ReadOnly is the scope option that is sufficient for reading values.
func ReadOnly() option.ClientOption {
	return option.WithScopes(sheets.SpreadsheetsReadonlyScope)
}

func (c *Client) Open(ctx context.Context, id sheet.ID) (sheet.Spreadsheet, error) {
	ctx, task := trace.NewTask(ctx, "gsheets.Open")
	defer task.End()

	ss, err := c.svc.Spreadsheets.Get(id.String()).
		Fields("properties/title", "sheets/properties/title").
		Context(ctx).
		Do()
	if err != nil {
		return nil, mapErr(id, err)
	}
	s := &spreadsheet{svc: c.svc, id: id, lg: c.lg}
	if ss.Properties != nil {
		s.title = ss.Properties.Title
	}
	for _, sh := range ss.Sheets {
		if sh.Properties == nil {
			continue
		}
		s.labels = append(s.labels, sh.Properties.Title)
	}
	c.lg.DebugContext(ctx, "opened spreadsheet", "id", id, "title", s.title, "worksheets", len(s.labels))
	return s, nil
}

type spreadsheet struct {
	svc    *sheets.Service
	id     sheet.ID
	title  string
	labels []string
	lg     *slog.Logger
}

func (s *spreadsheet) Title() string {
	return s.title
}

func (s *spreadsheet) Worksheet(ctx context.Context, label string) (sheet.Worksheet, error) {
	for _, l := range s.labels {
		if l == label {
			return &worksheet{s: s, label: l}, nil
		}
	}
	return nil, &sheet.WorksheetNotFoundError{Label: label, Available: append([]string(nil), s.labels...)}
}

type worksheet struct {
	s     *spreadsheet
	label string
}

func (w *worksheet) Label() string {
	return w.label
}

func (w *worksheet) Values(ctx context.Context) ([][]string, error) {
	ctx, task := trace.NewTask(ctx, "gsheets.Values")
	defer task.End()

	vr, err := w.s.svc.Spreadsheets.Values.Get(w.s.id.String(), a1Range(w.label)).
		ValueRenderOption("FORMATTED_VALUE").
		MajorDimension("ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return nil, mapErr(w.s.id, err)
	}
	return toStrings(vr.Values), nil
}

// a1Range returns the A1 notation that covers the whole worksheet.
func a1Range(label string) string {
	return "'" + strings.ReplaceAll(label, "'", "''") + "'"
}

func toStrings(values [][]any) [][]string {
	out := make([][]string, len(values))
	for i, row := range values {
		r := make([]string, len(row))
		for j, cell := range row {
			switch v := cell.(type) {
			case nil:
			case string:
				r[j] = v
			default:
				r[j] = fmt.Sprint(v)
			}
		}
		out[i] = r
	}
	return out
}

func mapErr(id sheet.ID, err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Code == http.StatusNotFound {
		return fmt.Errorf("%w: %s", sheet.ErrSpreadsheetNotFound, id)
	}
	return fmt.Errorf("google sheets api: %w", err)
}
