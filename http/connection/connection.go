package connection

import "github.com/indigo-web/utils/strcomp"

// Directive tells whether the connection must be closed after the response is written.
type Directive uint8

const (
	// Unset means the directive is derived from the protocol version.
	Unset Directive = iota
	Close
	KeepAlive
)

func (d Directive) String() string {
	switch d {
	case Close:
		return "close"
	case KeepAlive:
		return "keep-alive"
	default:
		return ""
	}
}

// Parse matches the Connection header value case-insensitively. Unrecognized values
// are Unset.
func Parse(value string) Directive {
	switch {
	case strcomp.EqualFold(value, "keep-alive"):
		return KeepAlive
	case strcomp.EqualFold(value, "close"):
		return Close
	default:
		return Unset
	}
}
