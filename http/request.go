package http

import (
	"net"
	"strings"

	"github.com/indigo-web/akasabi/http/connection"
	"github.com/indigo-web/akasabi/http/method"
	"github.com/indigo-web/akasabi/http/proto"
	"github.com/indigo-web/akasabi/http/status"
	"github.com/indigo-web/utils/strcomp"
	"github.com/indigo-web/utils/uf"
	json "github.com/json-iterator/go"
)

// Handler processes a request and returns a response to it. Returning nil is equal to
// returning an empty 200 OK response.
type Handler func(*Request) *Response

// Request is a read-only view over a parsed request. It's valid only during the handler
// call, as both the header and the body may reference connection-owned memory.
type Request struct {
	header *Header
	body   Body
	remote net.Addr
}

func NewRequest(header *Header, body Body, remote net.Addr) *Request {
	return &Request{
		header: header,
		body:   body,
		remote: remote,
	}
}

// Header provides access to the raw header lines and typed lookups over them.
func (r *Request) Header() *Header {
	return r.header
}

func (r *Request) Method() method.Method {
	return r.header.Method()
}

func (r *Request) Protocol() proto.Protocol {
	return r.header.Protocol()
}

// Path returns the request target exactly as it was received, including the query. Empty
// string is returned if the request line has no path.
func (r *Request) Path() string {
	path, _ := r.header.Path()
	return path
}

// Body returns the request body. Only POST requests may have one.
func (r *Request) Body() Body {
	return r.body
}

// Remote holds the remote address. Please note that this is generally not a good parameter to
// identify a user, because there might be proxies in the middle.
func (r *Request) Remote() net.Addr {
	return r.remote
}

// Connection returns the effective connection directive: the Connection header if present
// and recognized, otherwise derived from the protocol version.
func (r *Request) Connection() connection.Directive {
	if directive := r.header.Connection(); directive != connection.Unset {
		return directive
	}

	if r.Protocol().KeepAliveByDefault() {
		return connection.KeepAlive
	}

	return connection.Close
}

// KeepAlive tells whether the connection may be reused after the response.
func (r *Request) KeepAlive() bool {
	return r.Connection() == connection.KeepAlive
}

// Query returns parameters from the part of the path after '?'.
func (r *Request) Query() *Params {
	_, query, _ := strings.Cut(r.Path(), "?")
	return NewParams(uf.S2B(query))
}

// Form returns urlencoded parameters from the body.
func (r *Request) Form() *Params {
	return NewParams(r.body.Bytes())
}

// JSON convoys the request's body to a json unmarshaller. If the request declares a
// Content-Type other than application/json, status.ErrUnsupportedMediaType is returned.
func (r *Request) JSON(model any) error {
	if contentType, found := r.header.Lookup("Content-Type"); found {
		mime, _, _ := strings.Cut(contentType, ";")
		if !strcomp.EqualFold(strings.TrimSpace(mime), "application/json") {
			return status.ErrUnsupportedMediaType
		}
	}

	iterator := json.ConfigDefault.BorrowIterator(r.body.Bytes())
	iterator.ReadVal(model)
	err := iterator.Error
	json.ConfigDefault.ReturnIterator(iterator)

	return err
}

// Respond returns a new response, which carries the request's connection directive.
func (r *Request) Respond() *Response {
	return NewResponse().Connection(r.Connection())
}
