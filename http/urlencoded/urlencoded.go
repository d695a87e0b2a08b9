package urlencoded

import (
	"bytes"

	"github.com/indigo-web/akasabi/internal/hexconv"
	"github.com/indigo-web/utils/uf"
)

// Decode decodes percent-encoded data into a newly allocated slice, mapping `+` into
// spaces. Malformed escapes (a percent not followed by two hex digits) are kept as they
// are, therefore decoding never fails.
func Decode(src []byte) []byte {
	return AppendDecode(make([]byte, 0, len(src)), src)
}

// AppendDecode is the same as Decode, but appends the result to dst.
func AppendDecode(dst, src []byte) []byte {
	for len(src) > 0 {
		i := bytes.IndexAny(src, "%+")
		if i == -1 {
			break
		}

		dst = append(dst, src[:i]...)
		src = src[i:]

		if src[0] == '+' {
			dst = append(dst, ' ')
			src = src[1:]
			continue
		}

		if len(src) < 3 {
			break
		}

		a, b := hexconv.Halfbyte[src[1]], hexconv.Halfbyte[src[2]]
		if a|b > 0x0F {
			dst = append(dst, '%')
			src = src[1:]
			continue
		}

		dst = append(dst, (a<<4)|b)
		src = src[3:]
	}

	return append(dst, src...)
}

// DecodeString decodes the string, returning it as is if there's nothing to decode.
func DecodeString(str string) string {
	if !needsDecoding(str) {
		return str
	}

	return uf.B2S(Decode(uf.S2B(str)))
}

func needsDecoding(str string) bool {
	for i := 0; i < len(str); i++ {
		if str[i] == '%' || str[i] == '+' {
			return true
		}
	}

	return false
}

// Encode percent-encodes every byte outside [0-9A-Za-z], using uppercase hex digits.
func Encode(src []byte) []byte {
	return AppendEncode(make([]byte, 0, len(src)), src)
}

// AppendEncode is the same as Encode, but appends the result to dst.
func AppendEncode(dst, src []byte) []byte {
	for _, c := range src {
		if isUnreserved(c) {
			dst = append(dst, c)
			continue
		}

		dst = append(dst, '%', hexconv.Upper[c>>4], hexconv.Upper[c&0x0F])
	}

	return dst
}

// EncodeString is a string alias for Encode.
func EncodeString(str string) string {
	return uf.B2S(Encode(uf.S2B(str)))
}

func isUnreserved(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
