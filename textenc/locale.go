package textenc

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
)

// Locale builds the approximate fallback backend from the process locale
// (LC_ALL, then LC_CTYPE, then LANG). Only content covered by the locale's
// character table converts correctly; 7-bit ASCII always does. Content
// outside the table fails the conversion rather than silently mangling it.
func Locale() Backend {
	charset := localeCharset()

	table, err := ianaindex.IANA.Encoding(charset)
	if err != nil || table == nil {
		// IANA knows names it has no table for, hence the nil check
		log.Debugf("No character table for locale charset %q, using Latin-1", charset)
		charset = "ISO-8859-1"
		table = charmap.ISO8859_1
	}

	return &localeBackend{name: "locale(" + charset + ")", table: table}
}

type localeBackend struct {
	name  string
	table encoding.Encoding
}

func (b *localeBackend) Name() string {
	return b.name
}

// Widen decodes locale bytes to UTF-8 through the character table, then
// packs that into code units. At least len+1 units always suffice.
func (b *localeBackend) Widen(s string) (WideString, error) {
	decoded, err := b.table.NewDecoder().Bytes([]byte(s))
	if err != nil {
		return nil, err
	}
	return encodeUnits(string(decoded))
}

// Narrow unpacks the code units to UTF-8, then encodes through the character
// table. Single-byte tables keep this within 2 bytes per wide unit.
func (b *localeBackend) Narrow(w WideString) (string, error) {
	decoded, err := decodeUnits(w)
	if err != nil {
		return "", err
	}

	encoded, err := b.table.NewEncoder().Bytes([]byte(decoded))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// localeCharset extracts the charset from the usual locale environment
// variables, e.g. "UTF-8" out of "en_US.UTF-8". First variable set wins,
// matching how the C locale machinery resolves them.
func localeCharset() string {
	for _, varName := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		value := os.Getenv(varName)
		if value == "" {
			continue
		}

		dot := strings.IndexByte(value, '.')
		if dot < 0 {
			// Locale without a charset suffix, e.g. "C" or "POSIX"
			return "US-ASCII"
		}

		charset := value[dot+1:]
		if at := strings.IndexByte(charset, '@'); at >= 0 {
			charset = charset[:at]
		}
		return charset
	}

	return "US-ASCII"
}
