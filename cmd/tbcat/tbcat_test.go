package main

import (
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/strayfield/textbase/tokenize"
)

func TestRenderLinePlain(t *testing.T) {
	rendered, err := renderLine(nil, "hello", 1, false)
	assert.NilError(t, err)
	assert.Equal(t, rendered, "hello")
}

func TestRenderLineNumbered(t *testing.T) {
	rendered, err := renderLine(nil, "hello", 42, true)
	assert.NilError(t, err)
	assert.Equal(t, rendered, "    42  hello")
}

func TestRenderLineTokenized(t *testing.T) {
	tokenizer := tokenize.New(",", 4)

	rendered, err := renderLine(tokenizer, "a,,b,c", 1, false)
	assert.NilError(t, err)
	assert.Equal(t, rendered, "a\tb\tc")
}

func TestCatMissingFile(t *testing.T) {
	err := catFile(filepath.Join(t.TempDir(), "nope"), "", false)
	assert.Assert(t, err != nil)
}

func TestCatFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lines.txt")
	assert.NilError(t, os.WriteFile(path, []byte("one\r\ntwo\n"), 0o600))

	assert.NilError(t, catFile(path, "", true))
}
