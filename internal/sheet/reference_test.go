package sheet

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReference(t *testing.T) {
	tests := []struct {
		name    string
		ref     string
		want    ID
		wantErr error
	}{
		{
			"full url",
			"https://docs.google.com/spreadsheets/d/1AbC-d_E9/edit#gid=0",
			"1AbC-d_E9",
			nil,
		},
		{
			"no trailing path",
			"https://docs.google.com/spreadsheets/d/xyz",
			"xyz",
			nil,
		},
		{
			"path only",
			"/spreadsheets/d/abc123/",
			"abc123",
			nil,
		},
		{
			"first match wins",
			"/spreadsheets/d/first/x/spreadsheets/d/second",
			"first",
			nil,
		},
		{
			"alias name",
			"CA",
			"",
			ErrInvalidReference,
		},
		{
			"empty identifier",
			"https://docs.google.com/spreadsheets/d/",
			"",
			ErrInvalidReference,
		},
		{
			"empty",
			"",
			"",
			ErrInvalidReference,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseReference(tt.ref)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, IsReference(tt.ref))
		})
	}
}

func TestMemory(t *testing.T) {
	m := NewMemory()
	m.Add("x", &MemorySpreadsheet{
		Name: "Audit",
		Tabs: []MemoryWorksheet{
			{Name: "Daily", Rows: [][]string{{"a", "b"}, {"1"}}},
			{Name: "Weekly"},
		},
	})
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		_, err := m.Open(ctx, "y")
		assert.ErrorIs(t, err, ErrSpreadsheetNotFound)
	})
	t.Run("worksheet not found carries labels", func(t *testing.T) {
		ss, err := m.Open(ctx, "x")
		require.NoError(t, err)
		_, err = ss.Worksheet(ctx, "Monthly")
		var wnf *WorksheetNotFoundError
		require.True(t, errors.As(err, &wnf))
		assert.Equal(t, []string{"Daily", "Weekly"}, wnf.Available)
		assert.Equal(t, "Monthly", wnf.Label)
	})
	t.Run("values are copied", func(t *testing.T) {
		ss, err := m.Open(ctx, "x")
		require.NoError(t, err)
		ws, err := ss.Worksheet(ctx, "Daily")
		require.NoError(t, err)
		v, err := ws.Values(ctx)
		require.NoError(t, err)
		v[0][0] = "changed"
		v2, err := ws.Values(ctx)
		require.NoError(t, err)
		assert.Equal(t, "a", v2[0][0])
	})
}
