package method

import "github.com/indigo-web/utils/strcomp"

type Method uint8

const (
	Unknown Method = iota
	GET
	POST
)

// List contains all the supported HTTP methods.
var List = []Method{GET, POST}

func (m Method) String() string {
	switch m {
	case GET:
		return "GET"
	case POST:
		return "POST"
	default:
		return "Unknown"
	}
}

// HasBody tells whether requests of the method declare a body, which must be read before
// the request can be dispatched.
func (m Method) HasBody() bool {
	return m == POST
}

// Parse matches the token case-insensitively.
func Parse(str string) Method {
	switch len(str) {
	case 3:
		if strcomp.EqualFold(str, "GET") {
			return GET
		}
	case 4:
		if strcomp.EqualFold(str, "POST") {
			return POST
		}
	}

	return Unknown
}
