package wire

import (
	"httpwire/rule"
	"httpwire/sink"
	"httpwire/status"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
)

// Field separator between a header name and its value: colon, single
// space. No folding, no extra whitespace.
var nameValueSep = []byte(": ")

// ErrHeadersDone reports a header write after the terminating empty
// line. Ordering is otherwise structural (start lines exist only as
// constructors); this is the one edge a Go type cannot close.
var ErrHeadersDone = errors.New("header section already terminated")

type Options struct {
	// Clock supplies the timestamp for Date fields. A nil Clock falls
	// back to the wall clock; tests inject a mock.
	Clock clock.Clock
}

var DefaultOptions = Options{
	Clock: clock.New(),
}

func (o Options) withDefaults() Options {
	if o.Clock == nil {
		o.Clock = clock.New()
	}
	return o
}

// HeaderWriter emits the header section of a single message. It is
// created by Request, Response, or Resume with the start line already
// committed, accepts zero or more header lines, and is finished off
// with the bare CRLF that separates headers from body.
//
// Every operation either commits completely or rolls the sink's cursor
// back to where it was, so a validation or capacity failure never
// leaves a partial line behind.
//
// A HeaderWriter is not safe for concurrent use; it exclusively borrows
// its sink until the caller is done with the message.
type HeaderWriter struct {
	s    sink.Sink
	opts Options
	done bool
}

// Request starts a request message by writing
// "<METHOD> <TARGET> <VERSION>\r\n".
func Request(s sink.Sink, m Method, t Target, v Version) (*HeaderWriter, error) {
	return RequestWith(s, m, t, v, DefaultOptions)
}

func RequestWith(s sink.Sink, m Method, t Target, v Version, opts Options) (*HeaderWriter, error) {
	if m.name == "" {
		return nil, errors.Wrap(rule.ErrEmptyToken, "method")
	}
	if len(t.raw) == 0 {
		return nil, errors.Wrap(rule.ErrEmptyTarget, "target")
	}

	w := &HeaderWriter{s: s, opts: opts.withDefaults()}

	err := w.atomically(func() error {
		if err := s.Append([]byte(m.name)); err != nil {
			return err
		}
		if err := s.AppendByte(rule.SP); err != nil {
			return err
		}
		if err := s.Append(t.raw); err != nil {
			return err
		}
		if err := s.AppendByte(rule.SP); err != nil {
			return err
		}
		if err := v.writeTo(s); err != nil {
			return err
		}
		return s.Append(rule.CRLF)
	})
	if err != nil {
		return nil, errors.Wrap(err, "writing request line")
	}

	return w, nil
}

// Response starts a response message by writing
// "<VERSION> <STATUS-3-DIGITS> <REASON>\r\n". The space before the
// reason phrase is grammar-required and is written even when the
// phrase is empty.
func Response(s sink.Sink, v Version, st status.Status) (*HeaderWriter, error) {
	return ResponseWith(s, v, st, DefaultOptions)
}

func ResponseWith(s sink.Sink, v Version, st status.Status, opts Options) (*HeaderWriter, error) {
	if st.Code() == 0 {
		return nil, errors.Wrap(status.ErrCodeOutOfRange, "zero status")
	}

	w := &HeaderWriter{s: s, opts: opts.withDefaults()}

	err := w.atomically(func() error {
		if err := v.writeTo(s); err != nil {
			return err
		}
		if err := s.AppendByte(rule.SP); err != nil {
			return err
		}
		if err := appendStatusCode(s, st.Code()); err != nil {
			return err
		}
		if err := s.AppendByte(rule.SP); err != nil {
			return err
		}
		if err := s.Append([]byte(st.Reason())); err != nil {
			return err
		}
		return s.Append(rule.CRLF)
	})
	if err != nil {
		return nil, errors.Wrap(err, "writing status line")
	}

	return w, nil
}

// Resume adopts a sink that already holds a start line, e.g. one with a
// custom protocol identifier the caller wrote itself.
func Resume(s sink.Sink) *HeaderWriter {
	return ResumeWith(s, DefaultOptions)
}

func ResumeWith(s sink.Sink, opts Options) *HeaderWriter {
	return &HeaderWriter{s: s, opts: opts.withDefaults()}
}

// Header writes one "<NAME>: <VALUE>\r\n" line.
func (w *HeaderWriter) Header(f Field) error {
	if w.done {
		return ErrHeadersDone
	}
	if f.name.s == "" {
		return errors.Wrap(rule.ErrEmptyToken, "header name")
	}

	if err := w.atomically(func() error { return f.writeTo(w.s) }); err != nil {
		return errors.Wrapf(err, "writing header %q", f.name.s)
	}

	return nil
}

// Add validates name and value and writes the header line. Validation
// runs before any byte is committed.
func (w *HeaderWriter) Add(name, value string) error {
	f, err := NewField(name, value)
	if err != nil {
		return err
	}

	return w.Header(f)
}

// ContentLength writes a "Content-Length: <n>\r\n" line. Whether n
// matches the body the caller writes afterwards is the caller's
// responsibility.
func (w *HeaderWriter) ContentLength(n uint64) error {
	if w.done {
		return ErrHeadersDone
	}

	err := w.atomically(func() error {
		if err := w.s.Append([]byte("Content-Length")); err != nil {
			return err
		}
		if err := w.s.Append(nameValueSep); err != nil {
			return err
		}
		if err := appendUint(w.s, n); err != nil {
			return err
		}
		return w.s.Append(rule.CRLF)
	})
	if err != nil {
		return errors.Wrap(err, "writing Content-Length")
	}

	return nil
}

// Date writes a "Date: <IMF-fixdate>\r\n" line using the configured
// clock, always rendered in GMT.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc9110#section-5.6.7
func (w *HeaderWriter) Date() error {
	if w.done {
		return ErrHeadersDone
	}

	err := w.atomically(func() error {
		if err := w.s.Append([]byte("Date")); err != nil {
			return err
		}
		if err := w.s.Append(nameValueSep); err != nil {
			return err
		}
		if err := appendDate(w.s, w.opts.Clock.Now()); err != nil {
			return err
		}
		return w.s.Append(rule.CRLF)
	})
	if err != nil {
		return errors.Wrap(err, "writing Date")
	}

	return nil
}

// Finish terminates the header section with a bare CRLF. Body bytes,
// if any, are appended by the caller directly to the sink afterwards;
// the encoder does not frame them.
func (w *HeaderWriter) Finish() error {
	if w.done {
		return ErrHeadersDone
	}

	if err := w.s.Append(rule.CRLF); err != nil {
		return errors.Wrap(err, "terminating header section")
	}
	w.done = true

	return nil
}

// Bytes is the message written so far, straight from the sink.
func (w *HeaderWriter) Bytes() []byte { return w.s.Bytes() }

func (w *HeaderWriter) Len() uint { return w.s.Len() }

// atomically runs op and rolls the cursor back if any of its appends
// failed, keeping partial lines off the sink.
func (w *HeaderWriter) atomically(op func() error) error {
	mark := w.s.Len()
	if err := op(); err != nil {
		w.s.Truncate(mark)
		return err
	}
	return nil
}
