package textenc

import (
	"golang.org/x/text/encoding/unicode"
)

// Exact is the backend that transcodes through a real UTF-8/UTF-16 codec.
// It handles all of Unicode, surrogate pairs included.
var Exact Backend = exactBackend{}

// The codec both backends pack and unpack code units with. No BOM: wide
// strings are code units in memory, not a serialized byte stream.
var utf16Codec = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

type exactBackend struct{}

func (exactBackend) Name() string {
	return "exact"
}

func (exactBackend) Widen(s string) (WideString, error) {
	return encodeUnits(s)
}

func (exactBackend) Narrow(w WideString) (string, error) {
	return decodeUnits(w)
}

// encodeUnits converts UTF-8 bytes to UTF-16 code units. A string of n bytes
// never needs more than n+1 units, so one allocation suffices.
func encodeUnits(s string) (WideString, error) {
	encoded, err := utf16Codec.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, err
	}

	units := make(WideString, 0, len(s)+1)
	for i := 0; i+1 < len(encoded); i += 2 {
		units = append(units, uint16(encoded[i])|uint16(encoded[i+1])<<8)
	}
	return units, nil
}

// decodeUnits converts UTF-16 code units to UTF-8 bytes. Each unit expands
// to at most 3 UTF-8 bytes; surrogate pairs spend two units on a 4-byte rune
// so the bound holds throughout.
func decodeUnits(w WideString) (string, error) {
	packed := make([]byte, 0, 2*len(w))
	for _, unit := range w {
		packed = append(packed, byte(unit), byte(unit>>8))
	}

	decoded, err := utf16Codec.NewDecoder().Bytes(packed)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
