package alias

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rusq/sheetrelay/internal/sheet"
)

const testLink = "https://docs.google.com/spreadsheets/d/1AbC-xyz_9/edit#gid=0"

func TestStore_Set(t *testing.T) {
	t.Run("partial records", func(t *testing.T) {
		s := NewStore()
		require.NoError(t, s.SetLink("CA", testLink))
		rec, ok := s.Get("CA")
		require.True(t, ok)
		assert.True(t, rec.HasLink())
		assert.False(t, rec.HasSheet())
		assert.False(t, rec.HasRows())

		require.NoError(t, s.SetSheetLabel("CA", "Daily"))
		require.NoError(t, s.SetRowLimit("CA", 10))
		rec, _ = s.Get("CA")
		assert.Equal(t, Record{Name: "CA", Link: testLink, SheetLabel: "Daily", RowLimit: 10}, rec)
	})
	t.Run("invalid link is not stored", func(t *testing.T) {
		s := NewStore()
		err := s.SetLink("CA", "https://example.com/nothing")
		assert.ErrorIs(t, err, sheet.ErrInvalidReference)
		_, ok := s.Get("CA")
		assert.False(t, ok)
	})
	t.Run("invalid row limit", func(t *testing.T) {
		s := NewStore()
		for _, n := range []int{0, -1} {
			err := s.SetRowLimit("CA", n)
			assert.ErrorIs(t, err, sheet.ErrInvalidRowLimit)
			var rle *RowLimitError
			assert.True(t, errors.As(err, &rle))
		}
		assert.Zero(t, s.Len())
	})
	t.Run("empty values", func(t *testing.T) {
		s := NewStore()
		assert.ErrorIs(t, s.SetSheetLabel("CA", " "), ErrEmptyValue)
		assert.ErrorIs(t, s.SetLink("", testLink), ErrEmptyValue)
	})
}

func TestStore_Clear(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.SetLink("CA", testLink))
	require.NoError(t, s.SetRowLimit("CA", 5))
	require.NoError(t, s.SetSheetLabel("NY", "Weekly"))

	fields, ok := s.Clear("CA")
	assert.True(t, ok)
	assert.Equal(t, []Field{FLink, FRows}, fields)
	_, ok = s.Clear("CA")
	assert.False(t, ok)

	assert.True(t, s.ClearField("NY", FSheet))
	_, ok = s.Get("NY")
	assert.False(t, ok, "empty record must be removed")
	assert.False(t, s.ClearField("NY", FSheet))

	require.NoError(t, s.SetSheetLabel("A", "x"))
	require.NoError(t, s.SetSheetLabel("B", "y"))
	s.ClearAll()
	assert.Zero(t, s.Len())
}

func TestStore_List(t *testing.T) {
	s := NewStore()
	for _, name := range []string{"zz", "aa", "mm"} {
		require.NoError(t, s.SetSheetLabel(name, "S"))
	}
	var names []string
	for _, r := range s.List() {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"aa", "mm", "zz"}, names)
}

func TestStore_concurrent(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Go(func() {
			name := fmt.Sprintf("a%d", i%4)
			_ = s.SetRowLimit(name, i+1)
			_ = s.SetLink(name, testLink)
			_, _ = s.Get(name)
			_ = s.List()
		})
	}
	wg.Wait()
	assert.Equal(t, 4, s.Len())
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	require.NoError(t, s.SetLink("CA", testLink))
	require.NoError(t, s.SetSheetLabel("CA", "Daily"))
	require.NoError(t, s.SetRowLimit("CA", 10))
	require.NoError(t, s.SetSheetLabel("half", "Daily"))
	require.NoError(t, s.SetLink("linkonly", testLink))
	return s
}

func TestStore_Resolve(t *testing.T) {
	tests := []struct {
		name      string
		first     string
		args      []string
		want      Request
		wantUsage bool
		wantErr   error
	}{
		{
			name:  "alias and date",
			first: "CA",
			args:  []string{"June 5"},
			want:  Request{Shape: ShapeAlias, Alias: "CA", Link: testLink, SheetLabel: "Daily", Date: "June 5", RowLimit: 10},
		},
		{
			name:      "alias and date with incomplete alias",
			first:     "linkonly",
			args:      []string{"June 5"},
			wantUsage: true,
		},
		{
			name:      "unknown alias with date",
			first:     "XX",
			args:      []string{"June 5"},
			wantUsage: true,
		},
		{
			name:  "full form with alias link",
			first: "linkonly",
			args:  []string{"Weekly", "June 5", "3"},
			want:  Request{Shape: ShapeFull, Alias: "linkonly", Link: testLink, SheetLabel: "Weekly", Date: "June 5", RowLimit: 3},
		},
		{
			name:  "full form overrides alias values",
			first: "CA",
			args:  []string{"Weekly", "June 6", "2"},
			want:  Request{Shape: ShapeFull, Alias: "CA", Link: testLink, SheetLabel: "Weekly", Date: "June 6", RowLimit: 2},
		},
		{
			name:  "full form with raw link",
			first: testLink,
			args:  []string{"Daily", "June 5", "10"},
			want:  Request{Shape: ShapeFull, Link: testLink, SheetLabel: "Daily", Date: "June 5", RowLimit: 10},
		},
		{
			name:      "full form with alias without link",
			first:     "half",
			args:      []string{"Daily", "June 5", "10"},
			wantUsage: true,
		},
		{
			name:    "full form with garbage",
			first:   "nope",
			args:    []string{"Daily", "June 5", "10"},
			wantErr: sheet.ErrInvalidReference,
		},
		{
			name:    "full form with bad row limit",
			first:   testLink,
			args:    []string{"Daily", "June 5", "ten"},
			wantErr: sheet.ErrInvalidRowLimit,
		},
		{
			name:  "setting syntax",
			first: testLink,
			args:  []string{"to", "NY"},
			want:  Request{Shape: ShapeAssign, Assignment: Assignment{Name: "NY", Field: FLink, Value: testLink}},
		},
		{
			name:      "wrong arity",
			first:     "CA",
			args:      []string{"a", "b"},
			wantUsage: true,
		},
		{
			name:      "no arguments",
			first:     "CA",
			wantUsage: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)
			got, err := s.Resolve(tt.first, tt.args)
			switch {
			case tt.wantUsage:
				var ue *UsageError
				require.True(t, errors.As(err, &ue), "got error: %v", err)
				assert.ErrorIs(t, err, ErrAmbiguousRequest)
				assert.NotEmpty(t, ue.Shapes)
				return
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseAssignment(t *testing.T) {
	tests := []struct {
		name    string
		first   string
		rest    []string
		want    Assignment
		wantErr bool
	}{
		{"link", testLink, []string{"to", "CA"}, Assignment{Name: "CA", Field: FLink, Value: testLink}, false},
		{"link, upper case keyword", testLink, []string{"TO", "CA"}, Assignment{Name: "CA", Field: FLink, Value: testLink}, false},
		{"sheet", "CA", []string{"sheet", "to", "Daily"}, Assignment{Name: "CA", Field: FSheet, Value: "Daily"}, false},
		{"sheet synonym", "CA", []string{"Sheet_Name", "to", "Daily"}, Assignment{Name: "CA", Field: FSheet, Value: "Daily"}, false},
		{"rows", "CA", []string{"rowmax", "to", "10"}, Assignment{Name: "CA", Field: FRows, Value: "10"}, false},
		{"rows synonym", "CA", []string{"max_row", "to", "10"}, Assignment{Name: "CA", Field: FRows, Value: "10"}, false},
		{"unknown property", "CA", []string{"colour", "to", "red"}, Assignment{}, true},
		{"link via property form", "CA", []string{"link", "to", testLink}, Assignment{}, true},
		{"missing to", "CA", []string{"sheet", "Daily"}, Assignment{}, true},
		{"too many", "CA", []string{"sheet", "to", "Daily", "x"}, Assignment{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAssignment(tt.first, tt.rest)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrAmbiguousRequest)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStore_Apply(t *testing.T) {
	s := NewStore()
	steps := []string{
		testLink + " to CA",
		"CA sheet to Daily",
		"CA rows to 10",
	}
	for _, st := range steps {
		tok := strings.Fields(st)
		a, err := ParseAssignment(tok[0], tok[1:])
		require.NoError(t, err, st)
		_, err = s.Apply(a)
		require.NoError(t, err, st)
	}
	req, err := s.Resolve("CA", []string{"June 5"})
	require.NoError(t, err)
	assert.Equal(t, Request{Shape: ShapeAlias, Alias: "CA", Link: testLink, SheetLabel: "Daily", Date: "June 5", RowLimit: 10}, req)

	_, err = s.Apply(Assignment{Name: "CA", Field: FRows, Value: "0"})
	assert.ErrorIs(t, err, sheet.ErrInvalidRowLimit)
	rec, _ := s.Get("CA")
	assert.Equal(t, 10, rec.RowLimit, "failed assignment must not change the record")
}

func TestUsageError(t *testing.T) {
	err := &UsageError{Hint: "bad", Shapes: []string{"a", "b"}}
	assert.Equal(t, "bad; expected: a | b", err.Error())
	assert.Equal(t, "bad", (&UsageError{Hint: "bad"}).Error())
}

func TestParseRowLimit(t *testing.T) {
	n, err := ParseRowLimit(" 7 ")
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	for _, s := range []string{"", "0", "-3", "1.5", "x"} {
		_, err := ParseRowLimit(s)
		assert.ErrorIs(t, err, sheet.ErrInvalidRowLimit, s)
	}
}
