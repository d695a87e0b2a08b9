package http

import (
	"bytes"
	"math"

	"github.com/indigo-web/akasabi/http/connection"
	"github.com/indigo-web/akasabi/http/method"
	"github.com/indigo-web/akasabi/http/proto"
	"github.com/indigo-web/akasabi/http/status"
	"github.com/indigo-web/utils/strcomp"
	"github.com/indigo-web/utils/uf"
)

// Header is an ordered set of raw header lines, where the first one is the request line.
// Lines are stored with surrounding whitespace and line terminators stripped. Every typed
// accessor is computed from the raw lines on demand.
type Header struct {
	lines [][]byte
}

func NewHeader(lines ...[]byte) *Header {
	return &Header{
		lines: lines,
	}
}

// Add appends a line. The line must not be modified afterward.
func (h *Header) Add(line []byte) {
	h.lines = append(h.lines, line)
}

// Reset drops all the lines, leaving the underlying storage for reuse.
func (h *Header) Reset() {
	h.lines = h.lines[:0]
}

// Len returns the number of lines, including the request line.
func (h *Header) Len() int {
	return len(h.lines)
}

// Lines returns raw lines, including the request line.
func (h *Header) Lines() [][]byte {
	return h.lines
}

func (h *Header) requestLine() []byte {
	if len(h.lines) == 0 {
		return nil
	}

	return h.lines[0]
}

// Method returns the request method, or method.Unknown if the token isn't recognized.
func (h *Header) Method() method.Method {
	line := h.requestLine()
	if sp := bytes.IndexByte(line, ' '); sp != -1 {
		line = line[:sp]
	}

	return method.Parse(uf.B2S(line))
}

// Protocol returns the protocol version from the last token of the request line.
func (h *Header) Protocol() proto.Protocol {
	line := h.requestLine()
	sp := bytes.LastIndexByte(line, ' ')
	if sp == -1 {
		return proto.Unknown
	}

	return proto.FromBytes(line[sp+1:])
}

// Path returns everything between the first and the last space of the request line. The path
// is absent if there are no two distinct spaces with something in between.
func (h *Header) Path() (path string, found bool) {
	line := h.requestLine()
	first, last := bytes.IndexByte(line, ' '), bytes.LastIndexByte(line, ' ')
	if first == -1 || first+1 >= last {
		return "", false
	}

	return uf.B2S(line[first+1 : last]), true
}

// Lookup returns the value of the first header with the matching name. Names are compared
// case-insensitively and must be immediately followed by a colon.
func (h *Header) Lookup(name string) (value string, found bool) {
	if len(h.lines) < 2 {
		return "", false
	}

	for _, line := range h.lines[1:] {
		colon := bytes.IndexByte(line, ':')
		if colon == -1 || !strcomp.EqualFold(uf.B2S(line[:colon]), name) {
			continue
		}

		return uf.B2S(trim(line[colon+1:])), true
	}

	return "", false
}

// Value is Lookup without the presence flag.
func (h *Header) Value(name string) string {
	value, _ := h.Lookup(name)
	return value
}

func (h *Header) Has(name string) bool {
	_, found := h.Lookup(name)
	return found
}

// Connection returns the directive from the Connection header, or connection.Unset if the header
// is missing or holds an unrecognized value.
func (h *Header) Connection() connection.Directive {
	return connection.Parse(h.Value("Connection"))
}

// ContentLength returns the declared body length. The value must consist of ASCII digits only,
// otherwise status.ErrBadContentLength is returned.
func (h *Header) ContentLength() (length int, found bool, err error) {
	value, found := h.Lookup("Content-Length")
	if !found {
		return 0, false, nil
	}

	if len(value) == 0 {
		return 0, true, status.ErrBadContentLength
	}

	for i := 0; i < len(value); i++ {
		c := value[i]
		if c < '0' || c > '9' {
			return 0, true, status.ErrBadContentLength
		}

		digit := int(c - '0')
		if length > (math.MaxInt-digit)/10 {
			return 0, true, status.ErrBadContentLength
		}

		length = length*10 + digit
	}

	return length, true, nil
}

// Clone returns a deep copy of the header.
func (h *Header) Clone() *Header {
	lines := make([][]byte, len(h.lines))
	for i, line := range h.lines {
		lines[i] = bytes.Clone(line)
	}

	return NewHeader(lines...)
}

func trim(b []byte) []byte {
	return bytes.Trim(b, " \t")
}
