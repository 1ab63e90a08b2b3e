// Package status models HTTP status codes and their reason phrases.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc9110#section-15
package status

import (
	"httpwire/rule"

	"github.com/pkg/errors"
)

// ErrCodeOutOfRange reports a status code outside [100, 999].
var ErrCodeOutOfRange = errors.New("status code outside [100, 999]")

// Status pairs a numeric code with the reason phrase written on the
// status line. The zero value is not a valid status; use New or
// WithReason.
type Status struct {
	code   uint
	reason string
}

// New creates a status with the standard reason phrase for code, or an
// empty phrase if the code is unknown or the noreasonphrase build tag
// is set. Codes outside [100, 999] are rejected, never clamped.
func New(code uint) (Status, error) {
	if code < 100 || code > 999 {
		return Status{}, errors.Wrapf(ErrCodeOutOfRange, "code %d", code)
	}

	return Status{code: code, reason: reasonPhrase(code)}, nil
}

// WithReason creates a status carrying a custom reason phrase. The
// phrase is validated against the reason-phrase grammar, so a status
// can never smuggle CR or LF onto the status line.
func WithReason(code uint, reason string) (Status, error) {
	if code < 100 || code > 999 {
		return Status{}, errors.Wrapf(ErrCodeOutOfRange, "code %d", code)
	}
	if err := rule.CheckReason(reason); err != nil {
		return Status{}, errors.Wrap(err, "reason phrase")
	}

	return Status{code: code, reason: reason}, nil
}

func (s Status) Code() uint { return s.code }

func (s Status) Reason() string { return s.reason }

func mustNew(code uint) Status {
	s, err := New(code)
	if err != nil {
		panic(err)
	}
	return s
}

// Informational 1XX
var (
	Continue           = mustNew(100)
	SwitchingProtocols = mustNew(101)
	Processing         = mustNew(102)
	EarlyHints         = mustNew(103)
)

// Successful 2XX
var (
	OK                   = mustNew(200)
	Created              = mustNew(201)
	Accepted             = mustNew(202)
	NonAuthoritativeInfo = mustNew(203)
	NoContent            = mustNew(204)
	ResetContent         = mustNew(205)
	PartialContent       = mustNew(206)
	MultiStatus          = mustNew(207)
	AlreadyReported      = mustNew(208)
	IMUsed               = mustNew(226)
)

// Redirection 3XX
var (
	MultipleChoices   = mustNew(300)
	MovedPermanently  = mustNew(301)
	Found             = mustNew(302)
	SeeOther          = mustNew(303)
	NotModified       = mustNew(304)
	UseProxy          = mustNew(305)
	TemporaryRedirect = mustNew(307)
	PermanentRedirect = mustNew(308)
)

// Client Error 4XX
var (
	BadRequest                  = mustNew(400)
	Unauthorized                = mustNew(401)
	PaymentRequired             = mustNew(402)
	Forbidden                   = mustNew(403)
	NotFound                    = mustNew(404)
	MethodNotAllowed            = mustNew(405)
	NotAcceptable               = mustNew(406)
	ProxyAuthRequired           = mustNew(407)
	RequestTimeout              = mustNew(408)
	Conflict                    = mustNew(409)
	Gone                        = mustNew(410)
	LengthRequired              = mustNew(411)
	PreconditionFailed          = mustNew(412)
	PayloadTooLarge             = mustNew(413)
	URITooLong                  = mustNew(414)
	UnsupportedMediaType        = mustNew(415)
	RangeNotSatisfiable         = mustNew(416)
	ExpectationFailed           = mustNew(417)
	ImATeapot                   = mustNew(418)
	MisdirectedRequest          = mustNew(421)
	UnprocessableEntity         = mustNew(422)
	Locked                      = mustNew(423)
	FailedDependency            = mustNew(424)
	TooEarly                    = mustNew(425)
	UpgradeRequired             = mustNew(426)
	PreconditionRequired        = mustNew(428)
	TooManyRequests             = mustNew(429)
	RequestHeaderFieldsTooLarge = mustNew(431)
	UnavailableForLegalReasons  = mustNew(451)
)

// Server Error 5XX
var (
	InternalServerError           = mustNew(500)
	NotImplemented                = mustNew(501)
	BadGateway                    = mustNew(502)
	ServiceUnavailable            = mustNew(503)
	GatewayTimeout                = mustNew(504)
	HTTPVersionNotSupported       = mustNew(505)
	VariantAlsoNegotiates         = mustNew(506)
	InsufficientStorage           = mustNew(507)
	LoopDetected                  = mustNew(508)
	NotExtended                   = mustNew(510)
	NetworkAuthenticationRequired = mustNew(511)
)
