// Package xml provides the WordprocessingML element model used by go-docxml.
//
// Every element implements BuildXML and serializes itself, and its subtree,
// into the exact markup Word expects. Output is deterministic: building the
// same element twice yields byte-identical results.
//
// # Structure Organization
//
//   - types.go: the BuildXML interface, BreakType and UnderlineType
//   - run.go: Run, the composite run element
//   - run_property.go: RunProperty (w:rPr) and its leaf elements
//   - text.go: the closed set of run children (Text, DeleteText, Tab, Break)
//   - numbering.go: numbering level elements (Start, NumberFormat, LevelText, LevelJc, Level)
//
// # Key Concepts
//
// Run: a contiguous sequence of content with one set of formatting. The
// properties element is always written, as <w:rPr /> when nothing is set.
//
// RunChild: the content of a run. Only the four types in text.go implement
// it, and Run.BuildXML switches over them exhaustively.
//
// # Usage
//
// Elements are values built through chained calls:
//
//	run := xml.NewRun().Bold().Size(24).AddText("Hello").AddBreak(xml.BreakTypePage)
//	out := run.BuildXML()
//	// <w:r><w:rPr><w:b /><w:bCs /><w:sz w:val="24" /><w:szCs w:val="24" /></w:rPr>
//	// <w:t xml:space="preserve">Hello</w:t><w:br w:type="page" /></w:r>
//
// # XML Namespaces
//
// Tags are written with the conventional w: prefix. Declaring the namespace
// is left to the document part that embeds the fragment.
package xml
