package http1

import (
	"io"
	"strconv"
	"time"

	"github.com/indigo-web/akasabi/config"
	"github.com/indigo-web/akasabi/http/connection"
	"github.com/indigo-web/akasabi/http/proto"
	"github.com/indigo-web/akasabi/http/status"
	"github.com/indigo-web/akasabi/internal/response"
	"github.com/indigo-web/akasabi/internal/timer"
)

// notImplemented is the reply to every request failing to be parsed.
const notImplemented = "HTTP/1.1 501 Not Implemented\r\n\r\n"

var zoneGMT = time.FixedZone("GMT", 0)

type serializer struct {
	cfg  *config.Config
	conn io.Writer
	buff []byte
	now  func() time.Time
}

func newSerializer(cfg *config.Config, conn io.Writer, buff []byte) *serializer {
	return &serializer{
		cfg:  cfg,
		conn: conn,
		buff: buff,
		now:  timer.Now,
	}
}

// Write serializes the response. The directive must already be resolved into either
// connection.Close or connection.KeepAlive.
func (s *serializer) Write(
	protocol proto.Protocol, directive connection.Directive, fields *response.Fields,
) error {
	s.appendProtocol(protocol)
	s.buff = append(s.buff, status.Line(fields.Code)...)
	s.crlf()

	s.buff = append(s.buff, "Date: "...)
	s.buff = s.now().In(zoneGMT).AppendFormat(s.buff, time.RFC1123)
	s.crlf()
	s.appendKnownHeader("Server: ", s.cfg.HTTP.ServerName)

	if fields.HasBody {
		s.appendKnownHeader("Content-Type: ", response.ContentType)
		s.appendContentLength(len(fields.Body))
	}

	if directive != connection.KeepAlive {
		directive = connection.Close
	}

	s.appendKnownHeader("Connection: ", directive.String())
	s.crlf()

	if len(fields.Body) <= cap(s.buff)-len(s.buff) {
		s.buff = append(s.buff, fields.Body...)
		return s.flush()
	}

	if err := s.flush(); err != nil {
		return err
	}

	_, err := s.conn.Write(fields.Body)
	return err
}

// Reject writes the fixed reply for unserviceable requests.
func (s *serializer) Reject() error {
	s.buff = append(s.buff[:0], notImplemented...)
	return s.flush()
}

func (s *serializer) flush() (err error) {
	if len(s.buff) > 0 {
		_, err = s.conn.Write(s.buff)
		s.buff = s.buff[:0]
	}

	return err
}

// appendKnownHeader writes the complete header line. The key is expected to already include
// a colon and a space.
func (s *serializer) appendKnownHeader(key, value string) {
	s.buff = append(s.buff, key...)
	s.buff = append(s.buff, value...)
	s.crlf()
}

func (s *serializer) appendContentLength(value int) {
	s.buff = append(s.buff, "Content-Length: "...)
	s.buff = strconv.AppendUint(s.buff, uint64(value), 10)
	s.crlf()
}

func (s *serializer) appendProtocol(protocol proto.Protocol) {
	if protocol == proto.Unknown {
		protocol = proto.HTTP11
	}

	s.buff = append(s.buff, protocol.String()...)
	s.sp()
}

func (s *serializer) sp() {
	s.buff = append(s.buff, ' ')
}

const crlf = "\r\n"

func (s *serializer) crlf() {
	s.buff = append(s.buff, crlf...)
}
