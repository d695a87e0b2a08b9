package http1

import (
	"bytes"
	"errors"
	"io"

	"github.com/indigo-web/akasabi/http"
	"github.com/indigo-web/akasabi/http/method"
	"github.com/indigo-web/akasabi/http/proto"
	"github.com/indigo-web/akasabi/http/status"
)

type parser struct {
	reader *LineReader
	header *http.Header
}

func newParser(reader *LineReader, header *http.Header) parser {
	return parser{
		reader: reader,
		header: header,
	}
}

// Parse collects lines until the blank one. Stream ending after at least one line also ends
// the header section. If it ends before the request line, io.EOF is returned.
func (p parser) Parse() error {
	p.header.Reset()

	for {
		line, err := p.reader.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) && p.header.Len() > 0 {
				return nil
			}

			return err
		}

		if len(line) == 0 {
			if p.header.Len() == 0 {
				return status.ErrEmptyRequest
			}

			return nil
		}

		p.header.Add(bytes.Clone(bytes.Trim(line, " \t")))
	}
}

// RequestLine validates tokens of the request line.
func (p parser) RequestLine() (method.Method, proto.Protocol, error) {
	m, protocol := p.header.Method(), p.header.Protocol()
	if m == method.Unknown {
		return m, protocol, status.ErrMethodNotImplemented
	}

	if protocol == proto.Unknown {
		return m, protocol, status.ErrHTTPVersionNotSupported
	}

	return m, protocol, nil
}
