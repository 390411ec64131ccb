package tokenize

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"gotest.tools/v3/assert"
)

func tokensAsStrings(tokens [][]byte) []string {
	strings := []string{}
	for _, token := range tokens {
		strings = append(strings, string(token))
	}
	return strings
}

func TestNoEmptyTokensFromConsecutiveDelimiters(t *testing.T) {
	tokenizer := New(",", 4)

	tokens := tokenizer.Load([]byte("foo,,bar"))
	assert.Assert(t, cmp.Diff([]string{"foo", "bar"}, tokensAsStrings(tokens)) == "")
}

func TestDelimitersOverwrittenInPlace(t *testing.T) {
	buf := []byte("a b\tc")
	tokens := New(" \t", 4).Load(buf)

	assert.Assert(t, cmp.Diff([]string{"a", "b", "c"}, tokensAsStrings(tokens)) == "")
	assert.DeepEqual(t, buf, []byte{'a', 0, 'b', 0, 'c'})

	// Tokens are views into buf, not copies
	buf[0] = 'X'
	assert.Equal(t, string(tokens[0]), "X")
}

func TestLeadingAndTrailingDelimiters(t *testing.T) {
	tokens := New(",", 4).Load([]byte(",,lead,trail,,"))
	assert.Assert(t, cmp.Diff([]string{"lead", "trail"}, tokensAsStrings(tokens)) == "")
}

func TestEmptyInput(t *testing.T) {
	tokenizer := New(", ", 4)

	assert.Equal(t, len(tokenizer.Load([]byte{})), 0)
	assert.Equal(t, len(tokenizer.Load(nil)), 0)
}

func TestAllDelimiters(t *testing.T) {
	assert.Equal(t, len(New(",", 4).Load([]byte(",,,"))), 0)
}

func TestReloadReplacesTokens(t *testing.T) {
	tokenizer := New(" ", 4)

	first := tokenizer.Load([]byte("one two"))
	assert.Equal(t, len(first), 2)

	second := tokenizer.Load([]byte("three"))
	assert.Assert(t, cmp.Diff([]string{"three"}, tokensAsStrings(second)) == "")
	assert.Equal(t, len(tokenizer.Tokens()), 1)
}

// The capacity hint is a hint, not a limit
func TestMoreTokensThanHinted(t *testing.T) {
	tokens := New(" ", 1).Load([]byte("a b c d e f g h"))
	assert.Equal(t, len(tokens), 8)
}

func TestMultipleDelimiterBytes(t *testing.T) {
	tokens := New(" \t\n", 8).Load([]byte("mixed\tdelimiter \nsoup"))
	assert.Assert(t, cmp.Diff([]string{"mixed", "delimiter", "soup"}, tokensAsStrings(tokens)) == "")
}
