// Package xmlbuilder emits the markup of one WordprocessingML element at a time.
//
// A Builder walks a small state machine:
//
//	Unopened -> Opened -> Closed
//	Unopened -> Opened -> SelfClosed
//
// Attributes are written in the order they are added and must come before any
// child or text content. Close writes a self-closing tag (<w:rPr />) when
// nothing was added. Calling an operation from the wrong state panics with a
// *MisuseError; a Builder never emits half-finished markup.
//
//	out := xmlbuilder.New().OpenRun().AddChild(props).AddChild(text).Close().Build()
package xmlbuilder
