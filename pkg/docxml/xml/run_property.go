package xml

import "github.com/benjaminschreck/go-docxml/pkg/docxml/xmlbuilder"

// RunProperty holds the character formatting of a run (w:rPr).
//
// Setters take the property by value and return the updated copy. Children
// are written in CT_RPr sequence order: b, bCs, i, iCs, strike, color, sz,
// szCs, highlight, u, vertAlign.
type RunProperty struct {
	bold      *Bold
	boldCs    *BoldCs
	italic    *Italic
	italicCs  *ItalicCs
	strike    *Strike
	color     *Color
	sz        *Sz
	szCs      *SzCs
	highlight *Highlight
	underline *Underline
	vertAlign *VertAlign
}

func NewRunProperty() RunProperty {
	return RunProperty{}
}

// Size sets the font size in half-points for both regular and complex script text
func (p RunProperty) Size(size uint) RunProperty {
	p.sz = &Sz{val: size}
	p.szCs = &SzCs{val: size}
	return p
}

func (p RunProperty) Color(color string) RunProperty {
	p.color = &Color{val: color}
	return p
}

func (p RunProperty) Highlight(color string) RunProperty {
	p.highlight = &Highlight{val: color}
	return p
}

func (p RunProperty) Bold() RunProperty {
	p.bold = &Bold{}
	p.boldCs = &BoldCs{}
	return p
}

func (p RunProperty) Italic() RunProperty {
	p.italic = &Italic{}
	p.italicCs = &ItalicCs{}
	return p
}

func (p RunProperty) Underline(u UnderlineType) RunProperty {
	p.underline = &Underline{val: u}
	return p
}

func (p RunProperty) Strike() RunProperty {
	p.strike = &Strike{}
	return p
}

func (p RunProperty) VertAlign(v VertAlignType) RunProperty {
	p.vertAlign = &VertAlign{val: v}
	return p
}

// IsEmpty reports whether no formatting has been set
func (p RunProperty) IsEmpty() bool {
	return p == RunProperty{}
}

func (p RunProperty) BuildXML() []byte {
	b := xmlbuilder.New().OpenRunProperty()
	addOptional(b, p.bold)
	addOptional(b, p.boldCs)
	addOptional(b, p.italic)
	addOptional(b, p.italicCs)
	addOptional(b, p.strike)
	addOptional(b, p.color)
	addOptional(b, p.sz)
	addOptional(b, p.szCs)
	addOptional(b, p.highlight)
	addOptional(b, p.underline)
	addOptional(b, p.vertAlign)
	return b.Close().Build()
}

// addOptional appends child when the pointer is set
func addOptional[T any, P interface {
	*T
	BuildXML
}](b *xmlbuilder.Builder, child P) {
	if child != nil {
		b.AddChild(child)
	}
}

type Bold struct{}

func (*Bold) BuildXML() []byte { return xmlbuilder.New().Bold().Build() }

type BoldCs struct{}

func (*BoldCs) BuildXML() []byte { return xmlbuilder.New().BoldCs().Build() }

type Italic struct{}

func (*Italic) BuildXML() []byte { return xmlbuilder.New().Italic().Build() }

type ItalicCs struct{}

func (*ItalicCs) BuildXML() []byte { return xmlbuilder.New().ItalicCs().Build() }

// Color is a hex RGB value such as "FF0000", or "auto"
type Color struct {
	val string
}

func (c *Color) BuildXML() []byte { return xmlbuilder.New().Color(c.val).Build() }

// Sz is a font size in half-points
type Sz struct {
	val uint
}

func (s *Sz) BuildXML() []byte { return xmlbuilder.New().Sz(s.val).Build() }

type SzCs struct {
	val uint
}

func (s *SzCs) BuildXML() []byte { return xmlbuilder.New().SzCs(s.val).Build() }

// Highlight is an ST_HighlightColor name such as "yellow"
type Highlight struct {
	val string
}

func (h *Highlight) BuildXML() []byte { return xmlbuilder.New().Highlight(h.val).Build() }

type Underline struct {
	val UnderlineType
}

func (u *Underline) BuildXML() []byte { return xmlbuilder.New().Underline(string(u.val)).Build() }

type Strike struct{}

func (*Strike) BuildXML() []byte { return xmlbuilder.New().Strike().Build() }

type VertAlign struct {
	val VertAlignType
}

func (v *VertAlign) BuildXML() []byte { return xmlbuilder.New().VertAlign(string(v.val)).Build() }
