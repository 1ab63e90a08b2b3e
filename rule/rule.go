// Package rule classifies bytes against the HTTP wire grammar.
//
// Reference:
//
// - https://datatracker.ietf.org/doc/html/rfc9110#section-5.6.2
//
// - https://datatracker.ietf.org/doc/html/rfc9112#section-2.2
package rule

const (
	CR   byte = '\r'
	LF   byte = '\n'
	SP   byte = ' '
	HTAB byte = '\t'
)

var CRLF = []byte{CR, LF}

type class uint8

const (
	// tchar as per RFC 9110 token grammar.
	classToken class = 1 << iota
	// VCHAR / SP / HTAB, legal inside a field value.
	classField
	// obs-text (0x80-0xFF), legal in field values only by opt-in.
	classObs
)

var classes [256]class

func init() {
	for c := 0x21; c <= 0x7E; c++ {
		classes[c] = classField
	}
	classes[SP] |= classField
	classes[HTAB] |= classField

	for c := 0x80; c <= 0xFF; c++ {
		classes[c] = classObs
	}

	for c := 'a'; c <= 'z'; c++ {
		classes[c] |= classToken
	}
	for c := 'A'; c <= 'Z'; c++ {
		classes[c] |= classToken
	}
	for c := '0'; c <= '9'; c++ {
		classes[c] |= classToken
	}
	for _, c := range []byte{
		'!', '#', '$', '%', '&', '\'', '*', '+',
		'-', '.', '^', '_', '`', '|', '~',
	} {
		classes[c] |= classToken
	}
}

func IsTokenChar(c byte) bool { return classes[c]&classToken != 0 }

func IsFieldChar(c byte) bool { return classes[c]&classField != 0 }

func IsObsText(c byte) bool { return classes[c]&classObs != 0 }

// IsToken reports whether s is a valid non-empty token.
func IsToken(s string) bool { return CheckToken(s) == nil }
