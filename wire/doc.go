// Package wire encodes HTTP/1.0 and HTTP/1.1 message headers directly
// into a caller-supplied sink.
//
// The encoder only guarantees syntactic validity: every method, target,
// header name, and value is validated against the wire grammar before a
// single byte is committed, and a failed operation leaves the sink
// byte-for-byte unchanged. Semantic checks (e.g. that Content-Length
// matches the body the caller writes afterwards) are out of scope.
//
// Message-part ordering is enforced structurally: a start line exists
// only as a constructor (Request, Response, Resume), so a message
// cannot carry two of them, and header writes after Finish fail with
// ErrHeadersDone.
//
// Reference:
//
// - https://datatracker.ietf.org/doc/html/rfc9110
//
// - https://datatracker.ietf.org/doc/html/rfc9112
package wire
