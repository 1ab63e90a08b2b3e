package wire

import (
	"strconv"

	"httpwire/sink"
)

// Version is the HTTP version written into the start line,
// as [major, minor].
type Version [2]uint8

var (
	Version10 = Version{1, 0}
	Version11 = Version{1, 1}
)

func (v Version) Major() uint8 { return v[0] }
func (v Version) Minor() uint8 { return v[1] }

func (v Version) String() string {
	return "HTTP/" + strconv.Itoa(int(v[0])) + "." + strconv.Itoa(int(v[1]))
}

func (v Version) writeTo(s sink.Sink) error {
	if err := s.Append([]byte("HTTP/")); err != nil {
		return err
	}
	if err := appendUint(s, uint64(v[0])); err != nil {
		return err
	}
	if err := s.AppendByte('.'); err != nil {
		return err
	}
	return appendUint(s, uint64(v[1]))
}
