package wire

import (
	"httpwire/rule"
	"httpwire/sink"

	"github.com/pkg/errors"
)

// Name is a validated header field name. Field names are
// case-insensitive on the wire but the encoder preserves the caller's
// casing verbatim.
type Name struct {
	s string
}

func NewName(s string) (Name, error) {
	if err := rule.CheckToken(s); err != nil {
		return Name{}, errors.Wrap(err, "header name")
	}

	return Name{s: s}, nil
}

func (n Name) String() string { return n.s }

// Value is a validated header field value. Construction fails on any
// byte outside the field-value grammar (notably raw CR and LF, which
// would allow request/response splitting) rather than normalizing, so
// the caller never observes a silently mangled header.
type Value struct {
	b []byte
}

// NewValue validates b against the strict field-value grammar
// (VCHAR / SP / HTAB). The value keeps b without copying; the caller
// must not mutate b while the Value is in use, or the validation
// guarantee is void.
func NewValue(b []byte) (Value, error) {
	if err := rule.CheckFieldValue(b, false); err != nil {
		return Value{}, errors.Wrap(err, "header value")
	}

	return Value{b: b}, nil
}

// NewValueObsText is NewValue with permissive 8-bit passthrough:
// bytes in 0x80-0xFF are accepted as obs-text. CR and LF stay
// rejected. The same no-mutation constraint as NewValue applies.
func NewValueObsText(b []byte) (Value, error) {
	if err := rule.CheckFieldValue(b, true); err != nil {
		return Value{}, errors.Wrap(err, "header value")
	}

	return Value{b: b}, nil
}

func NewValueString(s string) (Value, error) {
	return NewValue([]byte(s))
}

func (v Value) Bytes() []byte { return v.b }

// Field is a name/value pair making up one header line.
type Field struct {
	name  Name
	value Value
}

// NewField validates both parts before either can reach a sink.
func NewField(name, value string) (Field, error) {
	n, err := NewName(name)
	if err != nil {
		return Field{}, err
	}

	v, err := NewValueString(value)
	if err != nil {
		return Field{}, err
	}

	return Field{name: n, value: v}, nil
}

// FieldOf pairs an already-validated name and value.
func FieldOf(n Name, v Value) Field {
	return Field{name: n, value: v}
}

func (f Field) Name() Name { return f.name }

func (f Field) Value() Value { return f.value }

func (f Field) writeTo(s sink.Sink) error {
	if err := s.Append([]byte(f.name.s)); err != nil {
		return err
	}
	if err := s.Append(nameValueSep); err != nil {
		return err
	}
	if err := s.Append(f.value.b); err != nil {
		return err
	}
	return s.Append(rule.CRLF)
}
