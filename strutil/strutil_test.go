package strutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"gotest.tools/v3/assert"
)

func TestSplit(t *testing.T) {
	assert.Assert(t, cmp.Diff([]string{"foo", "bar"}, Split("foo,,bar", ",")) == "")
	assert.Assert(t, cmp.Diff([]string{"a", "b", "c"}, Split("  a b\tc ", " \t")) == "")
	assert.Equal(t, len(Split("", ",")), 0)
	assert.Equal(t, len(Split(",,,", ",")), 0)
}

func TestSplitJoinRoundTrip(t *testing.T) {
	parts := Split("alpha beta gamma", " ")
	assert.Equal(t, Join(parts, " "), "alpha beta gamma")
}

func TestToLowerASCII(t *testing.T) {
	assert.Equal(t, ToLowerASCII("MiXeD"), "mixed")
	assert.Equal(t, ToLowerASCII("already lower"), "already lower")

	// Non-ASCII letters must pass through untouched
	assert.Equal(t, ToLowerASCII("ÄBC"), "Äbc")
	assert.Equal(t, ToLowerASCII("漢字ABC"), "漢字abc")
}

func TestParseInt(t *testing.T) {
	value, err := ParseInt("-42")
	assert.NilError(t, err)
	assert.Equal(t, value, -42)

	_, err = ParseInt("42x")
	assert.Assert(t, err != nil)

	_, err = ParseInt("")
	assert.Assert(t, err != nil)
}

func TestParseFloat(t *testing.T) {
	value, err := ParseFloat("2.5")
	assert.NilError(t, err)
	assert.Equal(t, value, 2.5)

	// Trailing garbage is an error, not ignored
	_, err = ParseFloat("2.5 apples")
	assert.Assert(t, err != nil)
}

func TestFoldedComparison(t *testing.T) {
	assert.Assert(t, EqualFold("HELLO", "hello"))
	assert.Assert(t, !EqualFold("hello", "goodbye"))

	assert.Equal(t, CompareFold("ABC", "abc"), 0)
	assert.Assert(t, CompareFold("abc", "abd") < 0)
}

func TestDisplayWidth(t *testing.T) {
	assert.Equal(t, DisplayWidth("abc"), 3)

	// CJK runes are two cells each
	assert.Equal(t, DisplayWidth("世界"), 4)
}
