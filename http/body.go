package http

import (
	"bytes"

	"github.com/indigo-web/utils/uf"
)

type BodyKind uint8

const (
	// BodyAbsent is for requests which don't declare a body.
	BodyAbsent BodyKind = iota
	// BodyBorrowed is a slice of the connection's receive buffer. It's valid only until the
	// handler returns.
	BodyBorrowed
	// BodyOwned is a standalone buffer, which may outlive the request.
	BodyOwned
)

func (b BodyKind) String() string {
	switch b {
	case BodyBorrowed:
		return "borrowed"
	case BodyOwned:
		return "owned"
	default:
		return "absent"
	}
}

// Body holds request body bytes together with the information of who owns them.
type Body struct {
	data []byte
	kind BodyKind
}

func BorrowedBody(data []byte) Body {
	return Body{data: data, kind: BodyBorrowed}
}

func OwnedBody(data []byte) Body {
	return Body{data: data, kind: BodyOwned}
}

func (b Body) Kind() BodyKind {
	return b.kind
}

// Bytes returns the body as is. If the body is borrowed, the slice must not be retained after
// the handler returns. Use Clone instead.
func (b Body) Bytes() []byte {
	return b.data
}

// String returns the body as a string. Same retention rules as for Bytes apply.
func (b Body) String() string {
	return uf.B2S(b.data)
}

func (b Body) Len() int {
	return len(b.data)
}

// Clone returns a copy of the body, which is safe to retain.
func (b Body) Clone() []byte {
	return bytes.Clone(b.data)
}
