package fence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Segment
	}{
		{
			"plain fenced plain",
			"a```b```c",
			[]Segment{{KPlain, "a"}, {KFenced, "b"}, {KPlain, "c"}},
		},
		{
			"fenced only",
			"```x```",
			[]Segment{{KFenced, "x"}},
		},
		{
			"no fences",
			"no fences here",
			[]Segment{{KPlain, "no fences here"}},
		},
		{
			"unbalanced fence makes the tail fenced",
			"head```tail",
			[]Segment{{KPlain, "head"}, {KFenced, "tail"}},
		},
		{
			"whitespace segments are dropped",
			"```a```\n\n```b```",
			[]Segment{{KFenced, "a"}, {KFenced, "b"}},
		},
		{
			"line breaks around content are trimmed",
			"row1\n```\n  code\n```\nrow2",
			[]Segment{{KPlain, "row1"}, {KFenced, "  code"}, {KPlain, "row2"}},
		},
		{
			"empty",
			"",
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Split(tt.text))
		})
	}
}

func TestHasFenced(t *testing.T) {
	assert.False(t, HasFenced(Split("a\nb")))
	assert.True(t, HasFenced(Split("a```b")))
	assert.False(t, HasFenced(nil))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "Plain", KPlain.String())
	assert.Equal(t, "Fenced", KFenced.String())
}
