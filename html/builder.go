package html

import "strings"

type node struct {
	text string
	tag  *Tag
}

type attr struct {
	Name, Value string
}

// voidElements never have content and are rendered self-closing.
var voidElements = map[string]struct{}{
	"area": {}, "base": {}, "br": {}, "col": {}, "embed": {}, "hr": {}, "img": {},
	"input": {}, "link": {}, "meta": {}, "source": {}, "track": {}, "wbr": {},
}

// Tag is an element of the markup tree. Void elements (br, input, ...) are rendered
// self-closing, any other tag always gets a closing tag.
type Tag struct {
	name     string
	attrs    []attr
	children []node
}

func NewTag(name string) *Tag {
	return &Tag{name: name}
}

// Attr adds an attribute. The value is escaped.
func (t *Tag) Attr(name, value string) *Tag {
	t.attrs = append(t.attrs, attr{name, value})
	return t
}

// Text appends an escaped text node.
func (t *Tag) Text(s string) *Tag {
	return t.Raw(Escape(s))
}

// Raw appends a text node without escaping it.
func (t *Tag) Raw(s string) *Tag {
	t.children = append(t.children, node{text: s})
	return t
}

// Append adds a child tag.
func (t *Tag) Append(tags ...*Tag) *Tag {
	for _, tag := range tags {
		t.children = append(t.children, node{tag: tag})
	}

	return t
}

func (t *Tag) String() string {
	var sb strings.Builder
	t.render(&sb)
	return sb.String()
}

func (t *Tag) render(sb *strings.Builder) {
	sb.WriteByte('<')
	sb.WriteString(t.name)

	for _, a := range t.attrs {
		sb.WriteByte(' ')
		sb.WriteString(a.Name)
		sb.WriteString(`="`)
		sb.WriteString(Escape(a.Value))
		sb.WriteByte('"')
	}

	if _, void := voidElements[strings.ToLower(t.name)]; void {
		sb.WriteString(" />")
		return
	}

	sb.WriteByte('>')

	for _, child := range t.children {
		if child.tag != nil {
			child.tag.render(sb)
		} else {
			sb.WriteString(child.text)
		}
	}

	sb.WriteString("</")
	sb.WriteString(t.name)
	sb.WriteByte('>')
}

// Document is a complete HTML5 page.
type Document struct {
	Lang string
	Head *Tag
	Body *Tag
}

// NewDocument returns a document with the title already placed in its head.
func NewDocument(title, lang string) *Document {
	return &Document{
		Lang: lang,
		Head: NewTag("head").Append(NewTag("title").Text(title)),
		Body: NewTag("body"),
	}
}

func (d *Document) String() string {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n")
	sb.WriteString(`<html lang="`)
	sb.WriteString(Escape(d.Lang))
	sb.WriteString("\">\n")
	d.Head.render(&sb)
	d.Body.render(&sb)
	sb.WriteString("</html>\n")

	return sb.String()
}

// Bytes is the same as String, but returns a byte slice, ready to be used as a
// response body.
func (d *Document) Bytes() []byte {
	return []byte(d.String())
}
