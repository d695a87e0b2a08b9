package buffer

import (
	"errors"
	"io"
)

var ErrFull = errors.New("buffer is full")

// Buffer is a fixed-capacity receive buffer. Bytes in range [begin, end) were received, but
// weren't consumed yet. Consumed bytes are never examined again: they are either dropped
// when the buffer drains or slid out by Compact.
type Buffer struct {
	memory     []byte
	begin, end int
}

func New(size int) Buffer {
	return Buffer{
		memory: make([]byte, size),
	}
}

// Unconsumed returns the received but not yet consumed bytes. The slice is valid until
// the next call to Fill, Compact or Reset.
func (b *Buffer) Unconsumed() []byte {
	return b.memory[b.begin:b.end]
}

// Len returns the number of unconsumed bytes.
func (b *Buffer) Len() int {
	return b.end - b.begin
}

// Cap returns the fixed capacity of the buffer.
func (b *Buffer) Cap() int {
	return len(b.memory)
}

// Full tells whether no more bytes can be received without consuming some first.
func (b *Buffer) Full() bool {
	return b.begin == 0 && b.end == len(b.memory)
}

// Consume marks n bytes as consumed. Consuming more than is available consumes everything.
func (b *Buffer) Consume(n int) {
	if n > b.Len() {
		n = b.Len()
	}

	b.begin += n
	if b.begin == b.end {
		b.begin, b.end = 0, 0
	}
}

// Compact slides unconsumed bytes to the beginning of the buffer, freeing the space taken by
// consumed ones.
func (b *Buffer) Compact() {
	if b.begin == 0 {
		return
	}

	n := copy(b.memory, b.memory[b.begin:b.end])
	b.begin, b.end = 0, n
}

// Fill performs a single read from the reader into the free space. If there is no free space
// even after compaction, ErrFull is returned.
func (b *Buffer) Fill(r io.Reader) (n int, err error) {
	if b.end == len(b.memory) {
		b.Compact()

		if b.end == len(b.memory) {
			return 0, ErrFull
		}
	}

	n, err = r.Read(b.memory[b.end:])
	b.end += n

	return n, err
}

// Reset drops all the data, including unconsumed bytes.
func (b *Buffer) Reset() {
	b.begin, b.end = 0, 0
}
