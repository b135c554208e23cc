package split

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		o    Options
		want []string
	}{
		{
			"fits into one unit",
			"1 | 2 | 3\n4 | 5 | 6",
			DefOptions,
			[]string{"1 | 2 | 3\n4 | 5 | 6"},
		},
		{
			"flushes before the line that does not fit",
			"aaaaa\naaaaa\naaaaa\naaaaa",
			Options{Budget: 20},
			[]string{"aaaaa\naaaaa\naaaaa", "aaaaa"},
		},
		{
			"overhead is accounted",
			"aaaaa\naaaaa\naaaaa\naaaaa",
			Options{Budget: 20, Overhead: 4},
			[]string{"aaaaa\naaaaa", "aaaaa\naaaaa"},
		},
		{
			"oversized line passes through",
			"ab\n0123456789abcdef\ncd",
			Options{Budget: 8},
			[]string{"ab", "0123456789abcdef", "cd"},
		},
		{
			"oversized line is hard split",
			"ab\n0123456789abcdef\ncd",
			Options{Budget: 8, Overhead: 2, HardSplit: true},
			[]string{"ab", "012345", "6789ab", "cdef", "cd"},
		},
		{
			"multibyte characters are counted once",
			"ééééé\nééééé",
			Options{Budget: 11},
			[]string{"ééééé\nééééé"},
		},
		{
			"trailing whitespace is trimmed",
			"a  \n\n",
			DefOptions,
			[]string{"a"},
		},
		{
			"whitespace only",
			" \n\t\n",
			DefOptions,
			nil,
		},
		{
			"empty",
			"",
			DefOptions,
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Lines(tt.text, tt.o))
		})
	}
}

func testText(rnd *rand.Rand, lines, maxLen int) string {
	const alphabet = "abcdefghij |0123456789"
	var sb strings.Builder
	for i := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		n := 1 + rnd.Intn(maxLen)
		for range n {
			sb.WriteByte(alphabet[rnd.Intn(len(alphabet))])
		}
		sb.WriteByte('x') // no trailing whitespace
	}
	return sb.String()
}

func TestLines_Budget(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	o := Options{Budget: 120, Overhead: 10}
	for range 50 {
		text := testText(rnd, 1+rnd.Intn(100), 60)
		for _, u := range Lines(text, o) {
			assert.LessOrEqual(t, Len(u)+o.Overhead, o.Budget)
			assert.True(t, o.Fits(u))
		}
	}
}

func TestLines_Lossless(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	o := Options{Budget: 100, Overhead: 10}
	for range 50 {
		text := testText(rnd, 1+rnd.Intn(100), 120) // some lines exceed the budget
		got := strings.Join(Lines(text, o), "\n")
		assert.Equal(t, text, got)
	}
}

func TestLines_HardSplitBudget(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	o := Options{Budget: 50, Overhead: 6, HardSplit: true}
	for range 50 {
		text := testText(rnd, 1+rnd.Intn(30), 200)
		units := Lines(text, o)
		for _, u := range units {
			assert.True(t, o.Fits(u), "unit %q does not fit", u)
		}
		assert.Equal(t, strings.ReplaceAll(text, "\n", ""), strings.ReplaceAll(strings.Join(units, ""), "\n", ""))
	}
}

func Test_hardSplit(t *testing.T) {
	assert.Equal(t, []string{"abc", "def", "g"}, hardSplit("abcdefg", 3))
	assert.Equal(t, []string{"ab"}, hardSplit("ab", 3))
	assert.Equal(t, []string{"éé", "é"}, hardSplit("ééé", 2))
	assert.Equal(t, []string{""}, hardSplit("", 2))
}
