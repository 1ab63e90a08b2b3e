package wire

import (
	"httpwire/rule"

	"github.com/pkg/errors"
)

// Target is the request target, written verbatim into the request line.
// The encoder does not interpret URI structure; construction only
// forbids the bytes that would break line framing (SP, CR, LF) and
// requires the target to be non-empty.
type Target struct {
	raw []byte
}

// NewTarget keeps b without copying; the caller must not mutate b
// while the Target is in use, or the validation guarantee is void.
func NewTarget(b []byte) (Target, error) {
	if err := rule.CheckTarget(b); err != nil {
		return Target{}, errors.Wrap(err, "target")
	}

	return Target{raw: b}, nil
}

func NewTargetString(s string) (Target, error) {
	return NewTarget([]byte(s))
}

func (t Target) Bytes() []byte { return t.raw }

func (t Target) String() string { return string(t.raw) }
