package legacydb

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Charset selects how string fields of a record are decoded.
type Charset int

const (
	// CharsetAuto keeps valid UTF-8 and decodes anything else as ISO-8859-1.
	CharsetAuto Charset = iota
	// CharsetLatin1 always decodes as ISO-8859-1, the encoding of the
	// GeoLite city databases.
	CharsetLatin1
	// CharsetUTF8 keeps bytes as they are.
	CharsetUTF8
)

// ParseCharset maps a configuration value to a Charset.
func ParseCharset(value string) (Charset, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "auto":
		return CharsetAuto, nil
	case "latin1", "iso-8859-1", "iso8859-1":
		return CharsetLatin1, nil
	case "utf8", "utf-8":
		return CharsetUTF8, nil
	default:
		return CharsetAuto, fmt.Errorf("unsupported charset %q", value)
	}
}

// String implements fmt.Stringer for Charset.
func (c Charset) String() string {
	switch c {
	case CharsetLatin1:
		return "latin1"
	case CharsetUTF8:
		return "utf8"
	default:
		return "auto"
	}
}

// decode converts raw record bytes into a string.
func (c Charset) decode(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	switch c {
	case CharsetUTF8:
		return string(raw)
	case CharsetAuto:
		if utf8.Valid(raw) {
			return string(raw)
		}
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return string(raw)
	}
	return string(decoded)
}
