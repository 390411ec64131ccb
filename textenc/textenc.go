// Package textenc converts text between byte-encoded and wide-character
// representations.
//
// Narrow text is a Go string. Byte strings crossing this module's APIs are
// UTF-8, except strings explicitly used as OS paths, which follow the host's
// native path encoding. Prefer wide strings for path work to sidestep that
// ambiguity. Wide text is a slice of UTF-16 code units.
//
// Two interchangeable backends exist: Exact transcodes through a real
// UTF-8/UTF-16 codec and handles all of Unicode; Locale approximates through
// the process locale's character table and is only trustworthy for content
// that table covers (7-bit ASCII always is). Which one the package-level
// functions use is startup configuration via the TEXTBASE_ENCODING
// environment variable, decided once and fixed for the process lifetime, so
// conversion behavior is deterministic per run.
package textenc

import (
	"os"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/strayfield/textbase"
)

// WideString is text as UTF-16 code units.
type WideString = []uint16

// Backend converts between the two text representations. Implementations
// may assume non-empty input; empty input never reaches a backend.
type Backend interface {
	// Widen converts UTF-8 (or, for the locale backend, locale-encoded)
	// bytes to UTF-16 code units.
	Widen(s string) (WideString, error)

	// Narrow converts UTF-16 code units back to bytes.
	Narrow(w WideString) (string, error)

	// Name identifies the backend in logs and errors.
	Name() string
}

// Which environment variable selects the conversion backend, and the value
// that picks the locale fallback.
const (
	backendEnvVarName  = "TEXTBASE_ENCODING"
	localeBackendValue = "locale"
)

var (
	defaultBackendOnce sync.Once
	defaultBackend     Backend
)

// Default returns the backend selected at startup. First caller wins the
// env var read; everybody after that gets the same answer.
func Default() Backend {
	defaultBackendOnce.Do(func() {
		configured := strings.TrimSpace(os.Getenv(backendEnvVarName))
		switch configured {
		case "", "exact":
			defaultBackend = Exact
		case localeBackendValue:
			defaultBackend = Locale()
		default:
			log.Warnf("Unknown %s value %q, using the exact backend", backendEnvVarName, configured)
			defaultBackend = Exact
		}
		log.Debugf("Encoding conversions will use the %s backend", defaultBackend.Name())
	})
	return defaultBackend
}

// ToWide converts UTF-8 bytes to UTF-16 code units using the startup-selected
// backend.
func ToWide(s string) (WideString, error) {
	return Widen(Default(), s)
}

// ToNarrow converts UTF-16 code units to UTF-8 bytes using the
// startup-selected backend.
func ToNarrow(w WideString) (string, error) {
	return Narrow(Default(), w)
}

// Widen converts s through an explicit backend. Empty input short-circuits
// to an empty result without touching the backend; some backends treat empty
// input as an error and that must not leak out of here.
func Widen(b Backend, s string) (WideString, error) {
	if len(s) == 0 {
		return nil, nil
	}

	wide, err := b.Widen(s)
	if err != nil {
		return nil, &textbase.ConversionError{Backend: b.Name(), Direction: "widen", Err: err}
	}
	if len(wide) == 0 {
		return nil, &textbase.ConversionError{Backend: b.Name(), Direction: "widen"}
	}
	return wide, nil
}

// Narrow converts w through an explicit backend. Empty input short-circuits
// just like Widen's.
func Narrow(b Backend, w WideString) (string, error) {
	if len(w) == 0 {
		return "", nil
	}

	narrow, err := b.Narrow(w)
	if err != nil {
		return "", &textbase.ConversionError{Backend: b.Name(), Direction: "narrow", Err: err}
	}
	if len(narrow) == 0 {
		return "", &textbase.ConversionError{Backend: b.Name(), Direction: "narrow"}
	}
	return narrow, nil
}
