// Package strutil collects small string helpers used around the module:
// non-destructive tokenizing, ASCII-only lowering, strict number parsing,
// case-insensitive comparison and terminal display width.
package strutil

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charlievieth/strcase"
	"github.com/rivo/uniseg"
)

// Split tokenizes s on the bytes of delims, classic strtok style: runs of
// delimiters separate tokens and never produce empty ones. Unlike
// tokenize.Tokenizer this copies nothing over and returns independent
// strings.
func Split(s, delims string) []string {
	var tokens []string

	start := -1
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(delims, s[i]) < 0 {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, s[start:i])
			start = -1
		}
	}
	if start >= 0 {
		tokens = append(tokens, s[start:])
	}

	return tokens
}

// Join concatenates parts with delim between them, the inverse of Split.
func Join(parts []string, delim string) string {
	return strings.Join(parts, delim)
}

// ToLowerASCII lowercases the 7-bit ASCII letters in s and leaves every
// other byte alone, multi-byte sequences included.
func ToLowerASCII(s string) string {
	var lowered []byte // nil until the first letter actually changes
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'A' || c > 'Z' {
			continue
		}
		if lowered == nil {
			lowered = []byte(s)
		}
		lowered[i] = c + ('a' - 'A')
	}

	if lowered == nil {
		return s
	}
	return string(lowered)
}

// ParseInt parses a decimal integer. Strict: anything but an optionally
// signed digit run is an error.
func ParseInt(s string) (int, error) {
	value, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("not a valid integer: %q", s)
	}
	return value, nil
}

// ParseFloat parses a floating point number. Strict: trailing garbage is an
// error, not ignored.
func ParseFloat(s string) (float64, error) {
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not a valid number: %q", s)
	}
	return value, nil
}

// EqualFold reports whether a and b are equal under Unicode case folding.
func EqualFold(a, b string) bool {
	return strcase.Compare(a, b) == 0
}

// CompareFold compares a and b under Unicode case folding, strings.Compare
// style: -1, 0 or +1.
func CompareFold(a, b string) int {
	return strcase.Compare(a, b)
}

// DisplayWidth returns how many terminal cells s occupies. Wide CJK runes
// count as two cells, combining marks as zero.
func DisplayWidth(s string) int {
	return uniseg.StringWidth(s)
}
