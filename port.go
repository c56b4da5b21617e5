package domains

import (
	"strconv"
)

// Port is a validated network port in [0, 65535].
type Port uint16

// ParsePort validates s as a decimal port string and wraps it.
// Signs, whitespace, and hex forms are all rejected.
func ParsePort(s string) (Port, error) {
	p, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, NewErr(
			MALFORMEDPORT, s, err,
			"port must be a decimal number in [0, 65535]",
		)
	}

	return Port(p), nil
}

// ValidPort reports whether s parses as a port.
func ValidPort(s string) bool {
	_, err := ParsePort(s)
	return err == nil
}

func (p Port) String() string {
	return strconv.Itoa(int(p))
}
