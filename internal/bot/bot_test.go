package bot

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rusq/sheetrelay"
	"github.com/rusq/sheetrelay/internal/alias"
	"github.com/rusq/sheetrelay/internal/pacer"
	"github.com/rusq/sheetrelay/internal/sheet"
)

const (
	testID   = "1AbC-xyz_9"
	testLink = "https://docs.google.com/spreadsheets/d/" + testID + "/edit#gid=0"
)

// recorder is the channel that records the messages.
type recorder struct {
	mu   sync.Mutex
	msgs []string
	err  error
}

func (r *recorder) Post(_ context.Context, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.msgs = append(r.msgs, text)
	return nil
}

func (r *recorder) last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.msgs) == 0 {
		return ""
	}
	return r.msgs[len(r.msgs)-1]
}

func newTestBot(t *testing.T) (*Bot, *alias.Store) {
	t.Helper()
	src := sheet.NewMemory()
	src.Add(testID, &sheet.MemorySpreadsheet{
		Name: "Audit",
		Tabs: []sheet.MemoryWorksheet{{
			Name: "Daily",
			Rows: [][]string{
				{"Name", "June 5", "x", "y"},
				{"A", "1", "2", "3"},
			},
		}},
	})
	opts := sheetrelay.DefOptions
	opts.Delay = 0
	store := alias.NewStore()
	r, err := sheetrelay.New(src, store, sheetrelay.WithOptions(opts))
	require.NoError(t, err)
	return New(r), store
}

func TestBot_Run_setAndSend(t *testing.T) {
	b, store := newTestBot(t)
	ch := &recorder{}
	ctx := t.Context()

	require.NoError(t, b.Run(ctx, ch, "r!set "+testLink+" to CA"))
	assert.Equal(t, "✅ Link set: `CA` = `"+testLink+"`", ch.last())
	require.NoError(t, b.Run(ctx, ch, "R!set CA sheet_name to Daily"))
	assert.Equal(t, "✅ Sheet name set: `CA` sheet name = `Daily`", ch.last())
	require.NoError(t, b.Run(ctx, ch, "set CA row_max to 10"))
	assert.Equal(t, "✅ Row max set: `CA` row max = `10`", ch.last())

	rec, ok := store.Get("CA")
	require.True(t, ok)
	assert.Equal(t, alias.Record{Name: "CA", Link: testLink, SheetLabel: "Daily", RowLimit: 10}, rec)

	ch.msgs = nil
	require.NoError(t, b.Run(ctx, ch, `r!send CA "June 5"`))
	assert.Equal(t, []string{
		"⚠️ Requested 10 rows but sheet only has 1 data rows. Using 1 rows.",
		"📊 *Data from 'Daily' (Rows 1-1)*",
		"```1\t2\t3```",
		"✅ *Extraction complete!* Found 1 data rows in 1 message(s). No code blocks detected.",
	}, ch.msgs)
}

func TestBot_Run_errors(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"invalid link", "set https://example.com to CA", "❌ Invalid Google Sheets URL format."},
		{"bad row max", "set CA rows to many", "❌ Row max must be a valid number, at least 1."},
		{"unknown property", "set CA colour to red", "❌ Invalid format: unknown property \"colour\"."},
		{"sheet not found", "send " + testLink + " Weekly \"June 5\" 3", "❌ Sheet 'Weekly' not found. Available sheets: Daily"},
		{"date not found", "send " + testLink + " Daily \"June 6\" 3", "❌ Date 'June 6' not found in header row. Available headers: Name, June 5, x, y"},
		{"unterminated quote", `send CA "June 5`, "❌ Unterminated quote in the command."},
		{"send without args", "send", "❌ Invalid format: missing alias or link."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _ := newTestBot(t)
			ch := &recorder{}
			err := b.Run(t.Context(), ch, tt.line)
			assert.Error(t, err)
			require.NotEmpty(t, ch.msgs)
			assert.True(t, strings.HasPrefix(ch.msgs[0], tt.want), "got: %q", ch.msgs[0])
		})
	}
}

func TestBot_Run_usage(t *testing.T) {
	b, _ := newTestBot(t)
	ch := &recorder{}
	err := b.Run(t.Context(), ch, "send CA a b")
	assert.ErrorIs(t, err, alias.ErrAmbiguousRequest)
	msg := ch.last()
	assert.Contains(t, msg, "• `r!send <alias> <date>`")
	assert.Contains(t, msg, "• `r!set <link> to <alias>`")
}

func TestBot_Run_varsAndClear(t *testing.T) {
	b, store := newTestBot(t)
	ch := &recorder{}
	ctx := t.Context()

	require.NoError(t, b.Run(ctx, ch, "vars"))
	assert.Equal(t, "📋 No variables set yet.", ch.last())

	require.NoError(t, store.SetLink("CA", testLink))
	require.NoError(t, store.SetRowLimit("CA", 5))
	require.NoError(t, store.SetSheetLabel("NY", "Weekly"))

	require.NoError(t, b.Run(ctx, ch, "vars"))
	assert.Equal(t, "📋 *Stored Variables*\n\n"+
		"🔗 *Links*\n`CA` = `"+testLink[:50]+"...`\n\n"+
		"📝 *Sheet Names*\n`NY` = `Weekly`\n\n"+
		"📊 *Row Max*\n`CA` = `5`", ch.last())

	require.NoError(t, b.Run(ctx, ch, "clear_vars CA rows"))
	assert.Equal(t, "✅ Cleared CA: row max", ch.last())
	require.NoError(t, b.Run(ctx, ch, "clear CA"))
	assert.Equal(t, "✅ Cleared CA: link", ch.last())
	require.NoError(t, b.Run(ctx, ch, "clear CA"))
	assert.Equal(t, "❌ Variable 'CA' not found.", ch.last())
	require.NoError(t, b.Run(ctx, ch, "clear"))
	assert.Equal(t, "❌ Specify a variable name or 'all' to clear everything.", ch.last())
	require.NoError(t, b.Run(ctx, ch, "clear ALL"))
	assert.Equal(t, "✅ All variables cleared.", ch.last())
	assert.Zero(t, store.Len())
}

func TestBot_Run_help(t *testing.T) {
	b, _ := newTestBot(t)
	ch := &recorder{}
	require.NoError(t, b.Run(t.Context(), ch, "help_send"))
	require.Len(t, ch.msgs, 1)
	assert.Contains(t, ch.msgs[0], "r!send CA \"June 5, 2025\"")
	assert.NotContains(t, ch.msgs[0], "{{.Prefix}}")

	require.NoError(t, b.Run(t.Context(), ch, "frobnicate"))
	assert.Contains(t, ch.last(), "Unknown command `frobnicate`")
}

func TestBot_Run_brokenChannel(t *testing.T) {
	b, store := newTestBot(t)
	require.NoError(t, store.SetLink("CA", testLink))
	errDown := errors.New("connection refused")
	ch := &recorder{err: errDown}
	err := b.Run(t.Context(), ch, `send CA Daily "June 5" 1`)
	var te *pacer.TransportError
	require.True(t, errors.As(err, &te))
	assert.ErrorIs(t, err, errDown)
}
