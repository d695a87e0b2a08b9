package response

import (
	"github.com/indigo-web/akasabi/http/connection"
	"github.com/indigo-web/akasabi/http/status"
)

// ContentType is the only media type responses are served with.
const ContentType = "text/html; charset=UTF-8"

type Fields struct {
	Body []byte
	// HasBody distinguishes an empty body from a missing one. Only responses with a body
	// carry Content-Type and Content-Length.
	HasBody    bool
	Code       status.Code
	Connection connection.Directive
}

func (f Fields) Clear() Fields {
	f.Body = nil
	f.HasBody = false
	f.Code = status.OK
	f.Connection = connection.Unset

	return f
}
