package xmlbuilder

import "strconv"

// Qualified names used by WordprocessingML run and numbering content
const (
	TagRun          = "w:r"
	TagRunProperty  = "w:rPr"
	TagText         = "w:t"
	TagDeleteText   = "w:delText"
	TagTab          = "w:tab"
	TagBreak        = "w:br"
	TagBold         = "w:b"
	TagBoldCs       = "w:bCs"
	TagItalic       = "w:i"
	TagItalicCs     = "w:iCs"
	TagStrike       = "w:strike"
	TagColor        = "w:color"
	TagSize         = "w:sz"
	TagSizeCs       = "w:szCs"
	TagHighlight    = "w:highlight"
	TagUnderline    = "w:u"
	TagVertAlign    = "w:vertAlign"
	TagLevel        = "w:lvl"
	TagStart        = "w:start"
	TagNumberFormat = "w:numFmt"
	TagLevelText    = "w:lvlText"
	TagLevelJc      = "w:lvlJc"

	AttrVal       = "w:val"
	AttrType      = "w:type"
	AttrLevel     = "w:ilvl"
	AttrSpace     = "xml:space"
	SpacePreserve = "preserve"
)

// OpenRun begins a w:r element
func (b *Builder) OpenRun() *Builder {
	return b.Open(TagRun)
}

// OpenRunProperty begins a w:rPr element
func (b *Builder) OpenRunProperty() *Builder {
	return b.Open(TagRunProperty)
}

// OpenText begins a w:t element. Text always preserves whitespace.
func (b *Builder) OpenText() *Builder {
	return b.Open(TagText).Attr(AttrSpace, SpacePreserve)
}

// OpenDeleteText begins a w:delText element
func (b *Builder) OpenDeleteText() *Builder {
	return b.Open(TagDeleteText).Attr(AttrSpace, SpacePreserve)
}

// OpenLevel begins a w:lvl element for the given level index
func (b *Builder) OpenLevel(ilvl uint) *Builder {
	return b.Open(TagLevel).Attr(AttrLevel, formatUint(ilvl))
}

func (b *Builder) Tab() *Builder {
	return b.Open(TagTab).SelfClose()
}

// Br writes a w:br with the given break type
func (b *Builder) Br(kind string) *Builder {
	return b.Open(TagBreak).Attr(AttrType, kind).SelfClose()
}

func (b *Builder) Bold() *Builder {
	return b.Open(TagBold).SelfClose()
}

func (b *Builder) BoldCs() *Builder {
	return b.Open(TagBoldCs).SelfClose()
}

func (b *Builder) Italic() *Builder {
	return b.Open(TagItalic).SelfClose()
}

func (b *Builder) ItalicCs() *Builder {
	return b.Open(TagItalicCs).SelfClose()
}

func (b *Builder) Strike() *Builder {
	return b.Open(TagStrike).SelfClose()
}

func (b *Builder) Color(val string) *Builder {
	return b.valElement(TagColor, val)
}

// Sz writes a font size in half-points
func (b *Builder) Sz(val uint) *Builder {
	return b.valElement(TagSize, formatUint(val))
}

// SzCs writes the complex script font size in half-points
func (b *Builder) SzCs(val uint) *Builder {
	return b.valElement(TagSizeCs, formatUint(val))
}

func (b *Builder) Highlight(val string) *Builder {
	return b.valElement(TagHighlight, val)
}

func (b *Builder) Underline(val string) *Builder {
	return b.valElement(TagUnderline, val)
}

// VertAlign writes a baseline, superscript or subscript alignment
func (b *Builder) VertAlign(val string) *Builder {
	return b.valElement(TagVertAlign, val)
}

// Start writes a numbering start value
func (b *Builder) Start(val uint) *Builder {
	return b.valElement(TagStart, formatUint(val))
}

func (b *Builder) NumberFormat(val string) *Builder {
	return b.valElement(TagNumberFormat, val)
}

func (b *Builder) LevelText(val string) *Builder {
	return b.valElement(TagLevelText, val)
}

func (b *Builder) LevelJc(val string) *Builder {
	return b.valElement(TagLevelJc, val)
}

func (b *Builder) valElement(tag, val string) *Builder {
	return b.Open(tag).Attr(AttrVal, val).SelfClose()
}

func formatUint(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
