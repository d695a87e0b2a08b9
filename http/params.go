package http

import (
	"bytes"
	"iter"

	"github.com/indigo-web/akasabi/http/urlencoded"
)

// Param is a single segment of a query string or an urlencoded form. Name and value are kept
// encoded and decoded on every call.
type Param struct {
	name, value []byte
}

// Name returns the decoded name. Segments without '=' have no name.
func (p Param) Name() string {
	return string(urlencoded.Decode(p.name))
}

// Value returns the decoded value. For segments without '=', the whole segment is the value.
func (p Param) Value() string {
	return string(urlencoded.Decode(p.value))
}

// Params is a single-pass cursor over &-separated segments. Once a segment is yielded, it
// cannot be revisited; construct new Params to start over.
type Params struct {
	data []byte
}

func NewParams(data []byte) *Params {
	return &Params{
		data: data,
	}
}

// Next returns the next non-empty segment.
func (p *Params) Next() (param Param, ok bool) {
	for len(p.data) > 0 {
		var segment []byte
		if amp := bytes.IndexByte(p.data, '&'); amp != -1 {
			segment, p.data = p.data[:amp], p.data[amp+1:]
		} else {
			segment, p.data = p.data, nil
		}

		if len(segment) == 0 {
			continue
		}

		if eq := bytes.IndexByte(segment, '='); eq != -1 {
			return Param{name: segment[:eq], value: segment[eq+1:]}, true
		}

		return Param{value: segment}, true
	}

	return Param{}, false
}

// All iterates over the remaining segments.
func (p *Params) All() iter.Seq[Param] {
	return func(yield func(Param) bool) {
		for {
			param, ok := p.Next()
			if !ok || !yield(param) {
				return
			}
		}
	}
}

// Find advances the cursor up to the first segment with the matching decoded name and returns
// its decoded value.
func (p *Params) Find(name string) (value string, found bool) {
	for param := range p.All() {
		if param.Name() == name {
			return param.Value(), true
		}
	}

	return "", false
}
