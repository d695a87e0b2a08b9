package http1

import (
	"errors"
	"io"

	"github.com/indigo-web/akasabi/http"
	"github.com/indigo-web/akasabi/http/status"
	"github.com/indigo-web/akasabi/internal/buffer"
)

// bodyAcquirer reads exactly the declared number of body bytes. Bodies fitting into the receive
// buffer are borrowed from it, longer ones are read into a standalone slice.
type bodyAcquirer struct {
	conn    io.Reader
	buff    *buffer.Buffer
	maxSize int
}

func newBodyAcquirer(conn io.Reader, buff *buffer.Buffer, maxSize int) bodyAcquirer {
	return bodyAcquirer{
		conn:    conn,
		buff:    buff,
		maxSize: maxSize,
	}
}

// Acquire returns a body of exactly length bytes. Bytes past it are left in the buffer
// untouched. If the stream ends earlier, io.ErrUnexpectedEOF is returned.
func (b bodyAcquirer) Acquire(length int) (http.Body, error) {
	if length > b.maxSize {
		return http.Body{}, status.ErrBodyTooLarge
	}

	if length <= b.buff.Cap() {
		return b.borrow(length)
	}

	return b.own(length)
}

func (b bodyAcquirer) borrow(length int) (http.Body, error) {
	for b.buff.Len() < length {
		n, err := b.buff.Fill(b.conn)
		if n > 0 {
			continue
		}

		return http.Body{}, unexpectedEOF(err)
	}

	body := b.buff.Unconsumed()[:length]
	b.buff.Consume(length)

	return http.BorrowedBody(body), nil
}

func (b bodyAcquirer) own(length int) (http.Body, error) {
	body := make([]byte, length)
	n := copy(body, b.buff.Unconsumed())
	b.buff.Consume(n)

	if _, err := io.ReadFull(b.conn, body[n:]); err != nil {
		return http.Body{}, unexpectedEOF(err)
	}

	return http.OwnedBody(body), nil
}

// Discard skips exactly length body bytes. Used for methods, which don't carry a body, so
// that the declared bytes aren't taken for the next request.
func (b bodyAcquirer) Discard(length int) error {
	if length > b.maxSize {
		return status.ErrBodyTooLarge
	}

	n := min(length, b.buff.Len())
	b.buff.Consume(n)

	if _, err := io.CopyN(io.Discard, b.conn, int64(length-n)); err != nil {
		return unexpectedEOF(err)
	}

	return nil
}

func unexpectedEOF(err error) error {
	if err == nil || errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}

	return err
}
