package http1

import (
	"errors"
	"io"
	"net"

	"github.com/indigo-web/akasabi/config"
	"github.com/indigo-web/akasabi/http"
	"github.com/indigo-web/akasabi/http/connection"
	"github.com/indigo-web/akasabi/http/status"
	"github.com/indigo-web/akasabi/internal/timer"
)

// Logger is the minimal logging interface. Both *log.Logger and *zerolog.Logger satisfy it.
type Logger interface {
	Printf(format string, v ...any)
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...any) {}

// Suit serves a single connection, one request at a time.
type Suit struct {
	parser
	*serializer
	cfg     *config.Config
	conn    net.Conn
	body    bodyAcquirer
	handler http.Handler
	logger  Logger
}

func New(cfg *config.Config, handler http.Handler, conn net.Conn, logger Logger) *Suit {
	if logger == nil {
		logger = nopLogger{}
	}

	reader := NewLineReader(conn, cfg.NET.ReadBufferSize)

	return &Suit{
		parser:     newParser(reader, http.NewHeader()),
		serializer: newSerializer(cfg, conn, make([]byte, 0, cfg.NET.WriteBufferSize)),
		cfg:        cfg,
		conn:       conn,
		body:       newBodyAcquirer(conn, reader.Buffer(), cfg.Body.MaxSize),
		handler:    handler,
		logger:     logger,
	}
}

// Serve processes requests until the connection must be closed. Closing the connection
// itself is left to the caller.
func (s *Suit) Serve() {
	for s.ServeOnce() {
	}
}

// ServeOnce processes exactly one request and reports whether the connection may be reused.
func (s *Suit) ServeOnce() bool {
	if timeout := s.cfg.NET.ReadTimeout; timeout > 0 {
		if err := s.conn.SetReadDeadline(timer.Deadline(timeout)); err != nil {
			s.transportError(err)
			return false
		}
	}

	if err := s.Parse(); err != nil {
		return s.fail(err)
	}

	m, protocol, err := s.RequestLine()
	if err != nil {
		return s.fail(err)
	}

	length, found, err := s.header.ContentLength()
	if err != nil {
		return s.fail(err)
	}

	var body http.Body
	switch {
	case m.HasBody() && !found:
		return s.fail(status.ErrLengthRequired)
	case m.HasBody():
		if body, err = s.body.Acquire(length); err != nil {
			return s.fail(err)
		}
	case found:
		if err = s.body.Discard(length); err != nil {
			return s.fail(err)
		}
	}

	request := http.NewRequest(s.header, body, s.conn.RemoteAddr())
	response := s.handler(request)
	if response == nil {
		response = request.Respond()
	}

	fields := response.Reveal()
	directive := fields.Connection
	if directive == connection.Unset {
		directive = request.Connection()
	}

	if err = s.Write(protocol, directive, fields); err != nil {
		s.transportError(err)
		return false
	}

	return directive == connection.KeepAlive
}

// fail handles an error, which happened before the request could be dispatched. Protocol errors
// are replied to, transport ones just end the connection. Either way, it can't be reused.
func (s *Suit) fail(err error) bool {
	var httpErr status.HTTPError
	if !errors.As(err, &httpErr) {
		s.transportError(err)
		return false
	}

	s.logger.Printf(
		"%s: rejecting request: %s (%d %s)",
		s.conn.RemoteAddr(), err, httpErr.Code, status.Text(httpErr.Code),
	)

	if err = s.Reject(); err != nil {
		s.transportError(err)
	}

	return false
}

func (s *Suit) transportError(err error) {
	if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) {
		return
	}

	s.logger.Printf("%s: closing connection: %s", s.conn.RemoteAddr(), err)
}
