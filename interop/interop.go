// Package interop feeds encoder output to an independent third-party
// HTTP parser (fasthttp) and hands the recovered parts back in plain
// structs. It exists for differential round-trip testing only; the
// encoder never depends on it.
package interop

import (
	"bufio"
	"bytes"

	"github.com/pkg/errors"
	"github.com/valyala/fasthttp"
)

// ParsedRequest is what an independent parser recovered from an
// encoded request header section.
type ParsedRequest struct {
	Method  string
	Target  string
	Proto   string
	Headers map[string]string
}

// ParseRequest parses the header section of raw. Header-name
// normalization is disabled so casing comes back verbatim.
func ParseRequest(raw []byte) (*ParsedRequest, error) {
	var h fasthttp.RequestHeader
	h.DisableNormalizing()

	br := bufio.NewReader(bytes.NewReader(raw))
	if err := h.Read(br); err != nil {
		return nil, errors.Wrap(err, "parsing request header")
	}

	parsed := &ParsedRequest{
		Method:  string(h.Method()),
		Target:  string(h.RequestURI()),
		Proto:   string(h.Protocol()),
		Headers: make(map[string]string),
	}
	h.VisitAll(func(key, value []byte) {
		parsed.Headers[string(key)] = string(value)
	})

	return parsed, nil
}

// ParsedResponse is what an independent parser recovered from an
// encoded response header section.
type ParsedResponse struct {
	Proto   string
	Code    int
	Reason  string
	Headers map[string]string
}

func ParseResponse(raw []byte) (*ParsedResponse, error) {
	var h fasthttp.ResponseHeader
	h.DisableNormalizing()

	br := bufio.NewReader(bytes.NewReader(raw))
	if err := h.Read(br); err != nil {
		return nil, errors.Wrap(err, "parsing response header")
	}

	parsed := &ParsedResponse{
		Proto:   string(h.Protocol()),
		Code:    h.StatusCode(),
		Reason:  string(h.StatusMessage()),
		Headers: make(map[string]string),
	}
	h.VisitAll(func(key, value []byte) {
		parsed.Headers[string(key)] = string(value)
	})

	return parsed, nil
}
