package xml

import (
	"fmt"
	"strings"

	"github.com/benjaminschreck/go-docxml/pkg/docxml/xmlbuilder"
)

// Run represents a run of content sharing one set of character properties.
//
// Run is a value type. Every builder method returns an updated copy and leaves
// the receiver untouched, so two runs branched from the same base never share
// children.
type Run struct {
	property RunProperty
	children []RunChild
}

// NewRun returns a run with empty properties and no children
func NewRun() Run {
	return Run{property: NewRunProperty()}
}

func (r Run) AddText(text string) Run {
	return r.add(NewText(text))
}

// AddDeleteText appends revision-deleted text (w:delText)
func (r Run) AddDeleteText(text string) Run {
	return r.add(NewDeleteText(text))
}

func (r Run) AddTab() Run {
	return r.add(NewTab())
}

func (r Run) AddBreak(t BreakType) Run {
	return r.add(NewBreak(t))
}

// add appends c. The full slice expression forces a fresh backing array so
// the receiver's children are never overwritten by a later append.
func (r Run) add(c RunChild) Run {
	r.children = append(r.children[:len(r.children):len(r.children)], c)
	return r
}

func (r Run) Size(size uint) Run {
	r.property = r.property.Size(size)
	return r
}

func (r Run) Color(color string) Run {
	r.property = r.property.Color(color)
	return r
}

func (r Run) Highlight(color string) Run {
	r.property = r.property.Highlight(color)
	return r
}

func (r Run) Bold() Run {
	r.property = r.property.Bold()
	return r
}

func (r Run) Italic() Run {
	r.property = r.property.Italic()
	return r
}

func (r Run) Underline(u UnderlineType) Run {
	r.property = r.property.Underline(u)
	return r
}

func (r Run) Strike() Run {
	r.property = r.property.Strike()
	return r
}

func (r Run) VertAlign(v VertAlignType) Run {
	r.property = r.property.VertAlign(v)
	return r
}

// Property returns the run's formatting
func (r Run) Property() RunProperty {
	return r.property
}

// Children returns a copy of the run content in insertion order
func (r Run) Children() []RunChild {
	out := make([]RunChild, len(r.children))
	copy(out, r.children)
	return out
}

// Text returns the concatenated visible text of the run
func (r Run) Text() string {
	var sb strings.Builder
	for _, c := range r.children {
		if t, ok := c.(Text); ok {
			sb.WriteString(t.text)
		}
	}
	return sb.String()
}

func (r Run) BuildXML() []byte {
	b := xmlbuilder.New().OpenRun().AddChild(r.property)
	for _, c := range r.children {
		switch c := c.(type) {
		case Text:
			b.AddChild(c)
		case DeleteText:
			b.AddChild(c)
		case Tab:
			b.AddChild(c)
		case Break:
			b.AddChild(c)
		default:
			panic(fmt.Sprintf("xml: unknown run child %T", c))
		}
	}
	return b.Close().Build()
}
