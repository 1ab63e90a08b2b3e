package wire

import (
	"strconv"
	"time"

	"httpwire/sink"
)

const imfFixdate = "Mon, 02 Jan 2006 15:04:05 GMT"

// appendUint renders n as decimal ASCII through a stack buffer, so the
// sink stays the only allocation site.
func appendUint(s sink.Sink, n uint64) error {
	var buf [20]byte // enough for MaxUint64
	return s.Append(strconv.AppendUint(buf[:0], n, 10))
}

// appendStatusCode writes exactly three digits. Status construction
// guarantees code is within [100, 999].
func appendStatusCode(s sink.Sink, code uint) error {
	digits := [3]byte{
		'0' + byte(code/100),
		'0' + byte(code/10%10),
		'0' + byte(code%10),
	}
	return s.Append(digits[:])
}

func appendDate(s sink.Sink, t time.Time) error {
	var buf [len(imfFixdate)]byte
	return s.Append(t.UTC().AppendFormat(buf[:0], imfFixdate))
}
