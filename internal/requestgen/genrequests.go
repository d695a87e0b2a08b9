package requestgen

import (
	"strconv"
	"strings"
)

// Headers returns n header lines, the last one being Host.
func Headers(n int) []string {
	hdrs := make([]string, 0, n)

	for i := range n - 1 {
		hdrs = append(hdrs, "some-random-header-name-nobody-cares-about"+strconv.Itoa(i)+": "+strings.Repeat("b", 100))
	}

	return append(hdrs, "Host: localhost")
}

func HeadersBlock(hdrs []string) (buff []byte) {
	for _, line := range hdrs {
		buff = append(buff, line+"\r\n"...)
	}

	return buff
}

// Generate returns a complete GET request.
func Generate(uri string, hdrs []string) (request []byte) {
	request = append(request, "GET /"+uri+" HTTP/1.1\r\n"...)
	request = append(request, HeadersBlock(hdrs)...)

	return append(request, '\r', '\n')
}

// Post returns a complete POST request with the Content-Length header set.
func Post(uri string, body []byte, hdrs ...string) (request []byte) {
	request = append(request, "POST /"+uri+" HTTP/1.1\r\n"...)
	request = append(request, HeadersBlock(hdrs)...)
	request = append(request, "Content-Length: "+strconv.Itoa(len(body))+"\r\n\r\n"...)

	return append(request, body...)
}
