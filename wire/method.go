package wire

import (
	"httpwire/rule"

	"github.com/pkg/errors"
)

// Method is an HTTP request method. The zero value is invalid; use the
// package vars or NewMethod, which validates the token grammar so an
// invalid method cannot exist as a value.
type Method struct {
	name string
}

var (
	MethodGet     = Method{"GET"}
	MethodHead    = Method{"HEAD"}
	MethodPost    = Method{"POST"}
	MethodPut     = Method{"PUT"}
	MethodDelete  = Method{"DELETE"}
	MethodConnect = Method{"CONNECT"}
	MethodOptions = Method{"OPTIONS"}
	MethodTrace   = Method{"TRACE"}
	MethodPatch   = Method{"PATCH"}
)

// NewMethod creates an extension method from an arbitrary token.
func NewMethod(name string) (Method, error) {
	if err := rule.CheckToken(name); err != nil {
		return Method{}, errors.Wrap(err, "method")
	}

	return Method{name: name}, nil
}

func (m Method) String() string { return m.name }
