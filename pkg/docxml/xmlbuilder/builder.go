package xmlbuilder

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

// State is the position of a Builder in its open/close lifecycle
type State int

const (
	Unopened State = iota
	Opened
	Closed
	SelfClosed
)

func (s State) String() string {
	switch s {
	case Unopened:
		return "unopened"
	case Opened:
		return "opened"
	case Closed:
		return "closed"
	case SelfClosed:
		return "self-closed"
	default:
		return "unknown"
	}
}

// Serializer is anything that can render itself as markup
type Serializer interface {
	BuildXML() []byte
}

// MisuseError is the panic value raised when a Builder is driven out of order
type MisuseError struct {
	Op    string
	State State
	Tag   string
}

func (e *MisuseError) Error() string {
	if e.Tag != "" {
		return fmt.Sprintf("xmlbuilder: %s on <%s> in %s state", e.Op, e.Tag, e.State)
	}
	return fmt.Sprintf("xmlbuilder: %s in %s state", e.Op, e.State)
}

type attr struct {
	name  string
	value string
}

// Builder accumulates the markup of a single element.
//
// A Builder is used once: open a tag, add attributes, add children or text,
// close it and take the bytes with Build.
type Builder struct {
	state State
	tag   string
	attrs []attr
	body  bytes.Buffer
	out   []byte
}

// New returns a Builder in the Unopened state
func New() *Builder {
	return &Builder{}
}

// State reports the current lifecycle state
func (b *Builder) State() State {
	return b.state
}

func (b *Builder) misuse(op string) {
	panic(&MisuseError{Op: op, State: b.state, Tag: b.tag})
}

// Open begins an element with the given qualified tag name
func (b *Builder) Open(tag string) *Builder {
	if b.state != Unopened {
		b.misuse("open")
	}
	b.tag = tag
	b.state = Opened
	return b
}

// Attr appends an attribute. Attributes must precede any content.
func (b *Builder) Attr(name, value string) *Builder {
	if b.state != Opened || b.body.Len() > 0 {
		b.misuse("attr " + name)
	}
	b.attrs = append(b.attrs, attr{name: name, value: value})
	return b
}

// AddChild appends the serialized form of c
func (b *Builder) AddChild(c Serializer) *Builder {
	return b.AddChildBytes(c.BuildXML())
}

// AddChildBytes appends already serialized markup verbatim
func (b *Builder) AddChildBytes(p []byte) *Builder {
	if b.state != Opened {
		b.misuse("add child")
	}
	b.body.Write(p)
	return b
}

// AddText appends escaped character data
func (b *Builder) AddText(s string) *Builder {
	if b.state != Opened {
		b.misuse("add text")
	}
	escape(&b.body, s, false)
	return b
}

// Close finishes the element. An element with no content is written as a
// single self-closing tag.
func (b *Builder) Close() *Builder {
	if b.state != Opened {
		b.misuse("close")
	}
	if b.body.Len() == 0 {
		return b.SelfClose()
	}
	var out bytes.Buffer
	b.writeStart(&out)
	out.WriteByte('>')
	out.Write(b.body.Bytes())
	out.WriteString("</")
	out.WriteString(b.tag)
	out.WriteByte('>')
	b.out = out.Bytes()
	b.state = Closed
	return b
}

// SelfClose writes the element as <tag attrs />. It panics if content was added.
func (b *Builder) SelfClose() *Builder {
	if b.state != Opened || b.body.Len() > 0 {
		b.misuse("self-close")
	}
	var out bytes.Buffer
	b.writeStart(&out)
	out.WriteString(" />")
	b.out = out.Bytes()
	b.state = SelfClosed
	return b
}

// Build returns the finished markup. It panics unless the element was closed.
func (b *Builder) Build() []byte {
	if b.state != Closed && b.state != SelfClosed {
		b.misuse("build")
	}
	out := make([]byte, len(b.out))
	copy(out, b.out)
	return out
}

func (b *Builder) writeStart(out *bytes.Buffer) {
	out.WriteByte('<')
	out.WriteString(b.tag)
	for _, a := range b.attrs {
		out.WriteByte(' ')
		out.WriteString(a.name)
		out.WriteString(`="`)
		escape(out, a.value, true)
		out.WriteByte('"')
	}
}

// escape writes s as character data or an attribute value. Invalid UTF-8 and
// runes outside the XML 1.0 Char production become U+FFFD. CR is written as a
// character reference so parsers do not fold it into LF; in attributes TAB and
// LF are referenced too, since attribute normalization turns them into spaces.
func escape(out *bytes.Buffer, s string, attr bool) {
	for i := 0; i < len(s); {
		r, width := utf8.DecodeRuneInString(s[i:])
		i += width
		if r == utf8.RuneError && width == 1 {
			out.WriteRune(utf8.RuneError)
			continue
		}
		switch {
		case r == '&':
			out.WriteString("&amp;")
		case r == '<':
			out.WriteString("&lt;")
		case r == '>':
			out.WriteString("&gt;")
		case r == '"' && attr:
			out.WriteString("&quot;")
		case r == '\r':
			out.WriteString("&#xD;")
		case r == '\n' && attr:
			out.WriteString("&#xA;")
		case r == '\t' && attr:
			out.WriteString("&#x9;")
		case !isXMLChar(r):
			out.WriteRune(utf8.RuneError)
		default:
			out.WriteRune(r)
		}
	}
}

// isXMLChar reports whether r is in the XML 1.0 Char production
func isXMLChar(r rune) bool {
	return r == '\t' || r == '\n' || r == '\r' ||
		(r >= 0x20 && r <= 0xD7FF) ||
		(r >= 0xE000 && r <= 0xFFFD) ||
		(r >= 0x10000 && r <= 0x10FFFF)
}
