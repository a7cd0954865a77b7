package xml

// BuildXML is implemented by every element that can be written as markup.
// Implementations are pure: the same element always yields the same bytes.
type BuildXML interface {
	BuildXML() []byte
}

// BreakType selects the kind of break written by a w:br element
type BreakType int

const (
	BreakTypePage BreakType = iota
	BreakTypeColumn
	// BreakTypeTextWrapping is the plain line break
	BreakTypeTextWrapping
)

// String returns the ST_BrType value for the break kind
func (t BreakType) String() string {
	switch t {
	case BreakTypePage:
		return "page"
	case BreakTypeColumn:
		return "column"
	case BreakTypeTextWrapping:
		return "textWrapping"
	default:
		return "unknown"
	}
}

// ParseBreakType maps an ST_BrType value (or the alias "line") to a BreakType
func ParseBreakType(s string) (BreakType, bool) {
	switch s {
	case "page":
		return BreakTypePage, true
	case "column":
		return BreakTypeColumn, true
	case "textWrapping", "line":
		return BreakTypeTextWrapping, true
	default:
		return 0, false
	}
}

// UnderlineType is an ST_Underline value
type UnderlineType string

const (
	UnderlineSingle UnderlineType = "single"
	UnderlineDouble UnderlineType = "double"
	UnderlineThick  UnderlineType = "thick"
	UnderlineDotted UnderlineType = "dotted"
	UnderlineDash   UnderlineType = "dash"
	UnderlineWave   UnderlineType = "wave"
	UnderlineWords  UnderlineType = "words"
	UnderlineNone   UnderlineType = "none"
)

// VertAlignType is an ST_VerticalAlignRun value
type VertAlignType string

const (
	VertAlignBaseline    VertAlignType = "baseline"
	VertAlignSuperscript VertAlignType = "superscript"
	VertAlignSubscript   VertAlignType = "subscript"
)
