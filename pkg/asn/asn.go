// Package asn parses autonomous system tokens as stored in the legacy GeoIP
// ASNum database, e.g. "AS15169 Google Inc.".
package asn

import (
	"strconv"
	"strings"
)

// Organization is an autonomous system number paired with its holder's name.
type Organization struct {
	Number uint32
	Name   string
}

// ParseNumber normalizes the textual AS formats "AS123", "as 123" and "123"
// into the numeric value. It reports whether parsing succeeded.
func ParseNumber(token string) (uint32, bool) {
	token = strings.TrimSpace(token)
	if len(token) >= 2 && (token[0] == 'A' || token[0] == 'a') && (token[1] == 'S' || token[1] == 's') {
		token = strings.TrimSpace(token[2:])
	}
	if token == "" {
		return 0, false
	}
	number, err := strconv.ParseUint(token, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(number), true
}

// ParseOrganization splits a "AS<digits> <name>" string on its first space.
// When the leading token is not an AS number the whole string becomes the name
// and ok is false.
func ParseOrganization(raw string) (org Organization, ok bool) {
	raw = strings.TrimSpace(raw)
	token, name, _ := strings.Cut(raw, " ")
	if !isASToken(token) {
		return Organization{Name: raw}, false
	}
	number, ok := ParseNumber(token)
	if !ok {
		return Organization{Name: raw}, false
	}
	return Organization{Number: number, Name: strings.TrimSpace(name)}, true
}

// Format renders the number in the "AS<digits>" form.
func Format(number uint32) string {
	return "AS" + strconv.FormatUint(uint64(number), 10)
}

// isASToken reports whether token starts with the literal "AS" prefix used by
// the database.
func isASToken(token string) bool {
	return len(token) > 2 && strings.EqualFold(token[:2], "AS")
}
