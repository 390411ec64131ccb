// Package strfmt builds formatted strings that are never truncated and never
// silently wrong.
//
// Go's fmt engine already renders into a growing buffer, so the classic
// measure-then-render dance is unnecessary: one render pass produces the
// exact-length result. What fmt does not do is fail on template/argument
// mismatches; it embeds "%!" markers in the output instead. This package
// checks the template against the arguments up front and refuses to render
// a mismatch, so broken output never reaches a caller and argument values
// are never second-guessed, whatever bytes they contain.
package strfmt

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/strayfield/textbase"
	"github.com/strayfield/textbase/textenc"
)

// Outputs up to this many bytes render without growing the scratch buffer.
const scratchSize = 128

var scratchPool = sync.Pool{
	New: func() any {
		buf := new(bytes.Buffer)
		buf.Grow(scratchSize)
		return buf
	},
}

// Sprintf renders format with args. The result is exactly as long as the
// rendering engine produced, no matter the size; there is no truncation
// threshold. A template/argument mismatch (unknown verb, missing or surplus
// argument, argument of a type its verb cannot format) fails with a
// *textbase.FormatError before anything is rendered.
func Sprintf(format string, args ...any) (string, error) {
	if detail := verify(format, args); detail != "" {
		return "", &textbase.FormatError{Format: format, Detail: detail}
	}

	buf := scratchPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset() // keep the capacity, drop the content
		scratchPool.Put(buf)
	}()

	fmt.Fprintf(buf, format, args...)
	return buf.String(), nil
}

// WideSprintf is Sprintf followed by widening the result to UTF-16 code
// units. The error is a *textbase.FormatError or, if the rendered text
// cannot be widened, a *textbase.ConversionError.
func WideSprintf(format string, args ...any) (textenc.WideString, error) {
	rendered, err := Sprintf(format, args...)
	if err != nil {
		return nil, err
	}
	return textenc.ToWide(rendered)
}

// verify walks format's verb grammar against args and reports why they
// disagree, or "" when they line up. Only the template is inspected;
// argument values are never scanned, so no byte sequence in a value can
// fail verification. When a verb/type pairing is unclear we let it through:
// a missed mismatch renders fmt's own marker, a false rejection would break
// valid calls.
func verify(format string, args []any) string {
	argIndex := 0
	high := 0 // one past the highest argument consumed

	i := 0
	for i < len(format) {
		if format[i] != '%' {
			i++
			continue
		}
		i++
		if i < len(format) && format[i] == '%' {
			i++ // literal percent
			continue
		}

		// Flags, width, precision and explicit argument indexes, in any
		// order; fmt allows forms like %[3]*.[2]*[1]f so we don't insist on
		// one.
	spec:
		for i < len(format) {
			c := format[i]
			switch {
			case strings.IndexByte("+-# 0.", c) >= 0 || ('0' <= c && c <= '9'):
				i++
			case c == '*':
				// A * width or precision eats an integer argument
				if argIndex >= len(args) {
					return fmt.Sprintf("not enough arguments: * at format byte %d has none", i)
				}
				if !isIntegerKind(args[argIndex]) {
					return fmt.Sprintf("* wants an integer width, not %T", args[argIndex])
				}
				argIndex++
				if argIndex > high {
					high = argIndex
				}
				i++
			case c == '[':
				end := strings.IndexByte(format[i:], ']')
				if end < 0 {
					return fmt.Sprintf("unclosed argument index at format byte %d", i)
				}
				n, ok := parseArgIndex(format[i+1 : i+end])
				if !ok {
					return fmt.Sprintf("bad argument index at format byte %d", i)
				}
				argIndex = n - 1
				i += end + 1
			default:
				break spec
			}
		}

		if i >= len(format) {
			return "format ends without a verb"
		}

		verb, size := utf8.DecodeRuneInString(format[i:])
		i += size

		if argIndex >= len(args) {
			return fmt.Sprintf("not enough arguments: verb %%%c has none", verb)
		}
		if !verbAccepts(verb, args[argIndex]) {
			return fmt.Sprintf("verb %%%c cannot format %T", verb, args[argIndex])
		}
		argIndex++
		if argIndex > high {
			high = argIndex
		}
	}

	// Same rule as fmt's EXTRA marker: arguments beyond the last one
	// consumed are surplus
	if high < len(args) {
		return fmt.Sprintf("%d surplus argument(s)", len(args)-high)
	}
	return ""
}

func parseArgIndex(digits string) (int, bool) {
	if digits == "" {
		return 0, false
	}
	n := 0
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, false
		}
		n = n*10 + int(digits[i]-'0')
	}
	return n, n > 0
}

// verbAccepts reports whether verb can format arg without fmt emitting a
// mismatch marker. Permissive by design: composites, pointers and types
// with custom formatting are waved through.
func verbAccepts(verb rune, arg any) bool {
	switch verb {
	case 'v', 'T':
		return true
	}
	if !knownVerb(verb) {
		return false // fmt would render %!<verb>
	}

	if arg == nil {
		// Everything but %v and %T renders a mismatch marker for nil
		return false
	}
	if _, ok := arg.(fmt.Formatter); ok {
		// Custom Format methods accept whatever verbs they like
		return true
	}

	value := reflect.ValueOf(arg)
	kind := value.Kind()
	switch kind {
	case reflect.Ptr, reflect.Interface, reflect.Struct, reflect.Array,
		reflect.Slice, reflect.Map, reflect.Chan, reflect.Func,
		reflect.UnsafePointer:
		// fmt applies verbs elementwise to composites and formats pointers
		// per verb; sorting out every combination here would risk rejecting
		// valid calls, so let fmt have them.
		return true
	}

	switch verb {
	case 't':
		return kind == reflect.Bool
	case 'c', 'o', 'O', 'U', 'd':
		return isIntegerValueKind(kind)
	case 'b':
		return isIntegerValueKind(kind) || isFloatValueKind(kind)
	case 'e', 'E', 'f', 'F', 'g', 'G':
		return isFloatValueKind(kind)
	case 'x', 'X':
		return isIntegerValueKind(kind) || isFloatValueKind(kind) || kind == reflect.String
	case 's', 'q':
		if kind == reflect.String {
			return true
		}
		if _, ok := arg.(fmt.Stringer); ok {
			return true
		}
		if _, ok := arg.(error); ok {
			return true
		}
		// %q also quotes integers as character literals
		return verb == 'q' && isIntegerValueKind(kind)
	case 'p':
		return false // pointer-ish kinds were already accepted above
	}

	return false
}

func knownVerb(verb rune) bool {
	return strings.ContainsRune("vTtbcdoOqxXUeEfFgGsp", verb)
}

func isIntegerKind(arg any) bool {
	if arg == nil {
		return false
	}
	return isIntegerValueKind(reflect.ValueOf(arg).Kind())
}

func isIntegerValueKind(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isFloatValueKind(kind reflect.Kind) bool {
	switch kind {
	case reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}
