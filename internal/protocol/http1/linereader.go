package http1

import (
	"bytes"
	"errors"
	"io"

	"github.com/indigo-web/akasabi/http/status"
	"github.com/indigo-web/akasabi/internal/buffer"
)

// LineReader splits the incoming stream into LF-terminated lines. Reads are issued only
// when the unconsumed part of the buffer holds no complete line.
type LineReader struct {
	conn io.Reader
	buff buffer.Buffer
}

func NewLineReader(conn io.Reader, size int) *LineReader {
	return &LineReader{
		conn: conn,
		buff: buffer.New(size),
	}
}

// ReadLine returns the next line without the LF and an optional preceding CR. The returned slice
// references the receive buffer and is valid only until the next call. If the peer closed the
// stream, io.EOF is returned. A line that doesn't fit into the buffer results in
// status.ErrHeaderLineTooLong.
func (l *LineReader) ReadLine() ([]byte, error) {
	for {
		data := l.buff.Unconsumed()
		if lf := bytes.IndexByte(data, '\n'); lf != -1 {
			l.buff.Consume(lf + 1)

			line := data[:lf]
			if len(line) > 0 && line[len(line)-1] == '\r' {
				line = line[:len(line)-1]
			}

			return line, nil
		}

		if l.buff.Full() {
			return nil, status.ErrHeaderLineTooLong
		}

		if err := l.fill(); err != nil {
			return nil, err
		}
	}
}

// Buffer exposes the receive buffer, so bytes received past the header section aren't lost.
func (l *LineReader) Buffer() *buffer.Buffer {
	return &l.buff
}

// Reader returns the underlying stream.
func (l *LineReader) Reader() io.Reader {
	return l.conn
}

// fill performs a single read. Received bytes are always kept, even when the read failed:
// the error will repeat itself on the next call anyway.
func (l *LineReader) fill() error {
	n, err := l.buff.Fill(l.conn)
	switch {
	case n > 0:
		return nil
	case errors.Is(err, buffer.ErrFull):
		return status.ErrHeaderLineTooLong
	case err == nil:
		// zero-byte read without an error. Treat it as the peer closing the stream.
		return io.EOF
	default:
		return err
	}
}
