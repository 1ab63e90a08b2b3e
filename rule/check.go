package rule

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrEmptyToken  = errors.New("token is empty")
	ErrEmptyTarget = errors.New("request target is empty")
)

// Violation reports the first byte of a candidate that broke a grammar.
type Violation struct {
	Grammar string
	Pos     uint
	Byte    byte
}

func (v *Violation) Error() string {
	return fmt.Sprintf(
		"%s grammar violated at offset %d: byte 0x%02x", v.Grammar, v.Pos, v.Byte,
	)
}

// CheckToken validates s against the token grammar.
// Every byte is checked; the first offending one is reported.
func CheckToken(s string) error {
	if len(s) == 0 {
		return ErrEmptyToken
	}

	for i := 0; i < len(s); i++ {
		if !IsTokenChar(s[i]) {
			return &Violation{Grammar: "token", Pos: uint(i), Byte: s[i]}
		}
	}

	return nil
}

// CheckFieldValue validates b against the field-value grammar
// (VCHAR / SP / HTAB). CR and LF are always rejected so a value can
// never split the message into extra lines. obsText additionally
// permits bytes in 0x80-0xFF.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc9110#section-5.5
func CheckFieldValue(b []byte, obsText bool) error {
	for i := 0; i < len(b); i++ {
		c := b[i]
		if IsFieldChar(c) || (obsText && IsObsText(c)) {
			continue
		}
		return &Violation{Grammar: "field-value", Pos: uint(i), Byte: c}
	}

	return nil
}

// CheckTarget validates a request target. The encoder writes the target
// verbatim, so the only bytes forbidden are those that would break the
// request-line framing: SP, CR, and LF.
func CheckTarget(b []byte) error {
	if len(b) == 0 {
		return ErrEmptyTarget
	}

	for i := 0; i < len(b); i++ {
		switch b[i] {
		case SP, CR, LF:
			return &Violation{Grammar: "target", Pos: uint(i), Byte: b[i]}
		}
	}

	return nil
}

// CheckReason validates a status-line reason phrase
// (HTAB / SP / VCHAR / obs-text).
//
// Reference: https://datatracker.ietf.org/doc/html/rfc9112#section-4
func CheckReason(s string) error {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if IsFieldChar(c) || IsObsText(c) {
			continue
		}
		return &Violation{Grammar: "reason-phrase", Pos: uint(i), Byte: c}
	}

	return nil
}
