package textbase

import (
	"errors"
	"os"
	"testing"

	"gotest.tools/v3/assert"
)

func TestConversionErrorMessages(t *testing.T) {
	withCause := &ConversionError{Backend: "exact", Direction: "widen", Err: errors.New("bad unit")}
	assert.Equal(t, withCause.Error(), "exact backend: widen conversion failed: bad unit")
	assert.Assert(t, errors.Is(withCause, withCause.Err))

	noOutput := &ConversionError{Backend: "locale", Direction: "narrow"}
	assert.Equal(t, noOutput.Error(), "locale backend: narrow conversion produced no output")
}

func TestResourceErrorUnwraps(t *testing.T) {
	err := &ResourceError{Path: "/no/such/file", Err: os.ErrNotExist}
	assert.Assert(t, errors.Is(err, os.ErrNotExist))
}

func TestLogicAndFormatErrorMessages(t *testing.T) {
	logicError := &LogicError{Op: "NextLine", Detail: "attempted to read past end of stream"}
	assert.Equal(t, logicError.Error(), "NextLine: attempted to read past end of stream")

	formatError := &FormatError{Format: "%d", Detail: "verb %d cannot format string"}
	assert.Equal(t, formatError.Error(), `format "%d": verb %d cannot format string`)
}
