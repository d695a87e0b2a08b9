package proto

import (
	"github.com/indigo-web/utils/strcomp"
	"github.com/indigo-web/utils/uf"
)

type Protocol uint8

const (
	Unknown Protocol = iota
	HTTP10
	HTTP11
)

func (p Protocol) String() string {
	switch p {
	case HTTP10:
		return "HTTP/1.0"
	case HTTP11:
		return "HTTP/1.1"
	default:
		return ""
	}
}

// FromBytes matches the version token case-insensitively. Versions other than
// HTTP/1.0 and HTTP/1.1 are Unknown.
func FromBytes(raw []byte) Protocol {
	const protoTokenLength = len("HTTP/x.x")

	if len(raw) != protoTokenLength {
		return Unknown
	}

	switch token := uf.B2S(raw); {
	case strcomp.EqualFold(token, "HTTP/1.1"):
		return HTTP11
	case strcomp.EqualFold(token, "HTTP/1.0"):
		return HTTP10
	}

	return Unknown
}

// KeepAliveByDefault tells whether connections of the protocol are persistent unless
// the peer asks otherwise.
func (p Protocol) KeepAliveByDefault() bool {
	return p == HTTP11
}
