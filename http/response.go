package http

import (
	"errors"

	"github.com/indigo-web/akasabi/http/connection"
	"github.com/indigo-web/akasabi/http/status"
	"github.com/indigo-web/akasabi/internal/response"
	"github.com/indigo-web/utils/uf"
	json "github.com/json-iterator/go"
)

type Response struct {
	fields response.Fields
}

// NewResponse returns a new instance of the Response object with status code set to 200 OK and
// no body. The connection directive is left unset, so it's derived from the request protocol.
// NOTE: it's recommended to use Request.Respond() method inside of handlers, as it carries the
// request's keep-alive policy.
func NewResponse() *Response {
	return &Response{
		fields: response.Fields{}.Clear(),
	}
}

// Code sets the response code. Everything except status.OK is served as
// 500 Internal Server Error.
func (r *Response) Code(code status.Code) *Response {
	r.fields.Code = code
	return r
}

// Connection overrides the connection directive.
func (r *Response) Connection(directive connection.Directive) *Response {
	r.fields.Connection = directive
	return r
}

// KeepAlive is a shorthand for Connection(connection.KeepAlive).
func (r *Response) KeepAlive() *Response {
	return r.Connection(connection.KeepAlive)
}

// Close is a shorthand for Connection(connection.Close).
func (r *Response) Close() *Response {
	return r.Connection(connection.Close)
}

// String sets the response body. The body must not be modified until the response is written.
func (r *Response) String(body string) *Response {
	return r.Bytes(uf.S2B(body))
}

// Bytes sets the response body. Empty, but non-nil body still counts as present.
func (r *Response) Bytes(body []byte) *Response {
	r.fields.Body = body
	r.fields.HasBody = true
	return r
}

// Write implements io.Writer, appending the data to the response body.
func (r *Response) Write(b []byte) (n int, err error) {
	r.fields.Body = append(r.fields.Body, b...)
	r.fields.HasBody = true
	return len(b), nil
}

// TryJSON receives a model (must be a pointer to the structure) and serializes it into the
// response body.
func (r *Response) TryJSON(model any) (*Response, error) {
	r.fields.Body = nil
	r.fields.HasBody = true
	stream := json.ConfigDefault.BorrowStream(r)
	stream.WriteVal(model)
	err := stream.Flush()
	json.ConfigDefault.ReturnStream(stream)

	return r, err
}

// JSON does the same as TryJSON does, except returned error is being implicitly wrapped
// by Error
func (r *Response) JSON(model any) *Response {
	resp, err := r.TryJSON(model)
	if err != nil {
		return r.Error(err)
	}

	return resp
}

// Error sets the error as the response. If passed err is nil, nothing will happen. The code is
// taken from status.HTTPError (also a wrapped one), otherwise status.InternalServerError is used.
func (r *Response) Error(err error) *Response {
	if err == nil {
		return r
	}

	code := status.InternalServerError
	var httpErr status.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
	}

	return r.
		Code(code).
		String(err.Error())
}

// Reveal returns the fields filled by the builder. Used mostly for internal purposes.
func (r *Response) Reveal() *response.Fields {
	return &r.fields
}

// Clear discards everything done with the Response object before.
func (r *Response) Clear() *Response {
	r.fields = r.fields.Clear()
	return r
}

// Respond is a predicate to request.Respond(). May be used as a dummy handler
func Respond(request *Request) *Response {
	return request.Respond()
}

// Code is a predicate to request.Respond().Code(...)
func Code(request *Request, code status.Code) *Response {
	return request.Respond().Code(code)
}

// String is a predicate to request.Respond().String(...)
func String(request *Request, str string) *Response {
	return request.Respond().String(str)
}

// Bytes is a predicate to request.Respond().Bytes(...)
func Bytes(request *Request, b []byte) *Response {
	return request.Respond().Bytes(b)
}

// JSON is a predicate to request.Respond().JSON(...)
func JSON(request *Request, model any) *Response {
	return request.Respond().JSON(model)
}

// Error is a predicate to request.Respond().Error(...)
func Error(request *Request, err error) *Response {
	return request.Respond().Error(err)
}
