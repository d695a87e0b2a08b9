package status

type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

// Protocol errors. Every one of them is fatal for the connection it occurred on.
var (
	ErrEmptyRequest            = NewError(BadRequest, "empty request")
	ErrBadContentLength        = NewError(BadRequest, "malformed Content-Length value")
	ErrLengthRequired          = NewError(LengthRequired, "request body length is not declared")
	ErrBodyTooLarge            = NewError(RequestEntityTooLarge, "request body is too large")
	ErrHeaderLineTooLong       = NewError(HeaderFieldsTooLarge, "header line exceeds the receive buffer")
	ErrMethodNotImplemented    = NewError(NotImplemented, "request method is not supported")
	ErrHTTPVersionNotSupported = NewError(HTTPVersionNotSupported, "HTTP version not supported")
	ErrUnsupportedMediaType    = NewError(UnsupportedMediaType, "unsupported media type")
)
