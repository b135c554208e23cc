package window

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rusq/sheetrelay/internal/sheet"
)

var testHeader = []string{"Name", "June 1", "June 2", "June 3"}

func TestLocate(t *testing.T) {
	tests := []struct {
		name        string
		header      []string
		target      string
		want        int
		wantHeaders []string
	}{
		{"exact", testHeader, "June 1", 1, nil},
		{"trimmed target", testHeader, "  June 2 ", 2, nil},
		{"trimmed cell", []string{"", " June 5, 2025 "}, "June 5, 2025", 1, nil},
		{"first match wins", []string{"x", "dup", "dup"}, "dup", 1, nil},
		{"case sensitive", testHeader, "june 1", -1, testHeader},
		{"not found lists non-empty headers", []string{"", "a", " ", "b"}, "c", -1, []string{"a", "b"}},
		{"empty header", nil, "a", -1, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Locate(tt.header, tt.target)
			assert.Equal(t, tt.want, got)
			if tt.want >= 0 {
				require.NoError(t, err)
				return
			}
			var cnf *ColumnNotFoundError
			require.True(t, errors.As(err, &cnf))
			assert.Equal(t, tt.target, cnf.Target)
			assert.Equal(t, tt.wantHeaders, cnf.Headers)
		})
	}
}

func TestLocate_Idempotent(t *testing.T) {
	for _, target := range testHeader {
		first, err := Locate(testHeader, target)
		require.NoError(t, err)
		for range 3 {
			again, err := Locate(testHeader, target)
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}
		assert.Equal(t, target, testHeader[first])
	}
}

func TestExtract(t *testing.T) {
	values := [][]string{
		testHeader,
		{"A", "1", "2", "3"},
		{"B", "4", "5", "6"},
	}
	tests := []struct {
		name        string
		values      [][]string
		p           Params
		want        []Row
		wantUsed    int
		wantClamped bool
		wantErr     error
	}{
		{
			name:     "end to end",
			values:   values,
			p:        Params{Column: 1, Limit: 2},
			want:     []Row{{"1", "2", "3"}, {"4", "5", "6"}},
			wantUsed: 2,
		},
		{
			name:     "limit bounds scanned rows",
			values:   values,
			p:        Params{Column: 1, Limit: 1},
			want:     []Row{{"1", "2", "3"}},
			wantUsed: 1,
		},
		{
			name:        "clamped",
			values:      values,
			p:           Params{Column: 0, Limit: 10},
			want:        []Row{{"A", "1", "2"}, {"B", "4", "5"}},
			wantUsed:    2,
			wantClamped: true,
		},
		{
			name:     "short rows",
			values:   [][]string{testHeader, {"A"}, {"B", "4", "5"}, {}},
			p:        Params{Column: 2, Limit: 3},
			want:     []Row{{"5", "", ""}},
			wantUsed: 3,
		},
		{
			name:     "blank rows are dropped but counted",
			values:   [][]string{testHeader, {"", " ", "\t"}, {"x"}},
			p:        Params{Column: 0, Limit: 2},
			want:     []Row{{"x", "", ""}},
			wantUsed: 2,
		},
		{
			name:        "header row override",
			values:      [][]string{{"title"}, {}, testHeader, {"A", "7", "8", "9"}},
			p:           Params{HeaderRow: 2, Column: 1, Limit: 5},
			want:        []Row{{"7", "8", "9"}},
			wantUsed:    1,
			wantClamped: true,
		},
		{
			name:        "no data rows",
			values:      [][]string{testHeader},
			p:           Params{Column: 1, Limit: 1},
			wantClamped: true,
			wantErr:     sheet.ErrInvalidRowLimit,
		},
		{
			name:    "zero limit",
			values:  values,
			p:       Params{Column: 1, Limit: 0},
			wantErr: sheet.ErrInvalidRowLimit,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(tt.values, tt.p)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got.Rows); diff != "" {
				t.Errorf("Extract() rows mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tt.wantUsed, got.Used)
			assert.Equal(t, tt.wantClamped, got.Clamped())
		})
	}
}

func TestExtract_ClampInvariant(t *testing.T) {
	for available := 0; available <= 5; available++ {
		values := [][]string{{"h"}}
		for i := range available {
			values = append(values, []string{fmt.Sprint(i)})
		}
		for requested := 1; requested <= 7; requested++ {
			got, err := Extract(values, Params{Limit: requested})
			if available == 0 {
				assert.ErrorIs(t, err, sheet.ErrInvalidRowLimit)
				continue
			}
			require.NoError(t, err)
			assert.LessOrEqual(t, len(got.Rows), available)
			assert.LessOrEqual(t, got.Used, available)
			assert.Equal(t, requested > available, got.Clamped(), "requested=%d available=%d", requested, available)
		}
	}
}

func TestResult_Lines(t *testing.T) {
	r := Result{Rows: []Row{{"1", "2", "3"}, {"4", "", ""}, {"", "5", ""}}}
	assert.Equal(t, []string{"1 | 2 | 3", "4", " | 5"}, r.Lines(" | "))
	assert.Equal(t, []string{"1\t2\t3", "4", "\t5"}, r.Lines("\t"))
}
