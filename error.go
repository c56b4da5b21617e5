package domains

import (
	"fmt"
)

// Kind classifies a parse or construction failure.
type Kind string

const (
	MALFORMEDPORT      Kind = "malformed-port"
	MALFORMEDLABEL     Kind = "malformed-label"
	UNKNOWNTLD         Kind = "unknown-tld"
	INVALIDCOMPOSITION Kind = "invalid-composition"
	NOTFOUND           Kind = "not-found"
)

func (k Kind) String() string {
	return string(k)
}

func NewErr(kind Kind, raw string, inner error, msg string) *Error {
	return &Error{
		Kind:  kind,
		Raw:   raw,
		Msg:   msg,
		Inner: inner,
	}
}

// Error carries the failure kind along with the original input
// that triggered it. A failed parse never produces a partial
// Domain, only one of these.
type Error struct {
	Kind  Kind   `json:"kind"`
	Msg   string `json:"msg"`
	Raw   string `json:"raw,omitempty"`
	Inner error  `json:"inner,omitempty"`
}

func (e Error) String() string {
	msg := e.Msg
	if e.Inner != nil {
		msg = fmt.Sprintf("%s: %s", e.Msg, e.Inner)
	}

	if e.Raw != "" {
		msg = fmt.Sprintf("%q | %s", e.Raw, msg)
	}

	if e.Kind != "" {
		msg = fmt.Sprintf("%s | %s", e.Kind, msg)
	}

	return msg
}

func (e Error) Error() string {
	return e.String()
}

func (e Error) Unwrap() error {
	//nolint:errorlint // this is correctly implemented
	wrapped, ok := e.Inner.(wrappedErr)
	if !ok {
		return e.Inner
	}

	return wrapped.Unwrap()
}

// Is matches on the failure kind so callers can compare against
// a bare kinded error without the raw input.
func (e Error) Is(target error) bool {
	//nolint:errorlint // intentional direct comparison
	t, ok := target.(Error)
	if !ok {
		p, ok := target.(*Error)
		if !ok {
			return false
		}
		t = *p
	}

	return e.Kind == t.Kind
}

type wrappedErr interface {
	Unwrap() error
}
