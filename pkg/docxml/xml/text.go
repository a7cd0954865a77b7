package xml

import "github.com/benjaminschreck/go-docxml/pkg/docxml/xmlbuilder"

// RunChild is one piece of run content. The set of implementations is closed:
// Text, DeleteText, Tab and Break.
type RunChild interface {
	BuildXML
	isRunChild()
}

// Text represents visible run text
type Text struct {
	text string
}

func NewText(text string) Text {
	return Text{text: text}
}

// Value returns the text payload
func (t Text) Value() string {
	return t.text
}

func (t Text) isRunChild() {}

func (t Text) BuildXML() []byte {
	return xmlbuilder.New().OpenText().AddText(t.text).Close().Build()
}

// DeleteText represents text removed under revision tracking
type DeleteText struct {
	text string
}

func NewDeleteText(text string) DeleteText {
	return DeleteText{text: text}
}

// Value returns the deleted text payload
func (t DeleteText) Value() string {
	return t.text
}

func (t DeleteText) isRunChild() {}

func (t DeleteText) BuildXML() []byte {
	return xmlbuilder.New().OpenDeleteText().AddText(t.text).Close().Build()
}

// Tab represents a tab character
type Tab struct{}

func NewTab() Tab {
	return Tab{}
}

func (Tab) isRunChild() {}

func (Tab) BuildXML() []byte {
	return xmlbuilder.New().Tab().Build()
}

// Break represents a page, column or line break
type Break struct {
	breakType BreakType
}

func NewBreak(t BreakType) Break {
	return Break{breakType: t}
}

// Type returns the break kind
func (b Break) Type() BreakType {
	return b.breakType
}

func (b Break) isRunChild() {}

func (b Break) BuildXML() []byte {
	return xmlbuilder.New().Br(b.breakType.String()).Build()
}
