package xml

import "github.com/benjaminschreck/go-docxml/pkg/docxml/xmlbuilder"

// Start is the starting value of a numbering level (w:start)
type Start struct {
	val uint
}

func NewStart(val uint) Start {
	return Start{val: val}
}

// Value returns the start number
func (s Start) Value() uint {
	return s.val
}

func (s Start) BuildXML() []byte {
	return xmlbuilder.New().Start(s.val).Build()
}

// NumberFormat is an ST_NumberFormat value such as "decimal" or "lowerRoman"
type NumberFormat struct {
	val string
}

func NewNumberFormat(format string) NumberFormat {
	return NumberFormat{val: format}
}

func (f NumberFormat) Value() string {
	return f.val
}

func (f NumberFormat) BuildXML() []byte {
	return xmlbuilder.New().NumberFormat(f.val).Build()
}

// LevelText is the label template of a level, e.g. "%1."
type LevelText struct {
	val string
}

func NewLevelText(text string) LevelText {
	return LevelText{val: text}
}

func (t LevelText) Value() string {
	return t.val
}

func (t LevelText) BuildXML() []byte {
	return xmlbuilder.New().LevelText(t.val).Build()
}

// LevelJc is the justification of a level label: left, center, right
type LevelJc struct {
	val string
}

func NewLevelJc(jc string) LevelJc {
	return LevelJc{val: jc}
}

func (j LevelJc) Value() string {
	return j.val
}

func (j LevelJc) BuildXML() []byte {
	return xmlbuilder.New().LevelJc(j.val).Build()
}

// Level is one level of an abstract numbering definition (w:lvl)
type Level struct {
	level  uint
	start  Start
	format NumberFormat
	text   LevelText
	jc     LevelJc
}

func NewLevel(level uint, start Start, format NumberFormat, text LevelText, jc LevelJc) Level {
	return Level{level: level, start: start, format: format, text: text, jc: jc}
}

// Index returns the zero-based level index (w:ilvl)
func (l Level) Index() uint {
	return l.level
}

func (l Level) BuildXML() []byte {
	return xmlbuilder.New().
		OpenLevel(l.level).
		AddChild(l.start).
		AddChild(l.format).
		AddChild(l.text).
		AddChild(l.jc).
		Close().
		Build()
}
