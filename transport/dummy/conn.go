package dummy

import (
	"io"
	"net"
	"time"
)

var _ net.Conn = new(Conn)

// Conn returns the data it was initialised with, one piece per read, unless looped. A piece
// longer than the reading buffer is returned over multiple reads. It also tracks all the written
// data, making it thereby a universal mock suitable for most of the tests.
type Conn struct {
	data       [][]byte
	pending    []byte
	pointer    int
	loop       bool
	journaling bool
	closed     bool
	written    []byte
	remote     net.Addr
}

func NewConn(data ...[]byte) *Conn {
	return &Conn{
		data:       data,
		journaling: true,
		remote:     &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 31337},
	}
}

// LoopReads makes the data be returned over and over again. Used mainly for benchmarking.
func (c *Conn) LoopReads() *Conn {
	c.loop = true
	return c
}

// Nop disables tracking of written data.
func (c *Conn) Nop() *Conn {
	c.journaling = false
	return c
}

func (c *Conn) Read(b []byte) (n int, err error) {
	if c.closed {
		return 0, net.ErrClosed
	}

	if len(c.pending) == 0 {
		if c.pointer >= len(c.data) {
			if !c.loop || len(c.data) == 0 {
				return 0, io.EOF
			}

			c.pointer = 0
		}

		c.pending = c.data[c.pointer]
		c.pointer++
	}

	n = copy(b, c.pending)
	c.pending = c.pending[n:]

	return n, nil
}

func (c *Conn) Write(b []byte) (n int, err error) {
	if c.closed {
		return 0, net.ErrClosed
	}

	if c.journaling {
		c.written = append(c.written, b...)
	}

	return len(b), nil
}

// Written returns everything written so far.
func (c *Conn) Written() []byte {
	return c.written
}

// Closed tells whether Close was called.
func (c *Conn) Closed() bool {
	return c.closed
}

func (c *Conn) Close() error {
	c.closed = true
	return nil
}

func (c *Conn) LocalAddr() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 8080}
}

func (c *Conn) RemoteAddr() net.Addr {
	return c.remote
}

func (c *Conn) SetDeadline(time.Time) error {
	return nil
}

func (c *Conn) SetReadDeadline(time.Time) error {
	return nil
}

func (c *Conn) SetWriteDeadline(time.Time) error {
	return nil
}
