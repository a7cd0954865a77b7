package docxml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/benjaminschreck/go-docxml/pkg/docxml/xml"
)

// RunDocument is a declarative description of a sequence of runs, usually
// loaded from YAML:
//
//	runs:
//	  - bold: true
//	    size: 24
//	    children:
//	      - text: "Hello"
//	      - break: page
type RunDocument struct {
	Items []RunEntry `yaml:"runs" validate:"required,min=1,dive"`

	path string
}

// RunEntry describes one run
type RunEntry struct {
	Bold      bool         `yaml:"bold"`
	Italic    bool         `yaml:"italic"`
	Size      uint         `yaml:"size" validate:"lte=3276"`
	Color     string       `yaml:"color" validate:"omitempty,wmlcolor"`
	Highlight string       `yaml:"highlight" validate:"omitempty,oneof=black blue cyan green magenta red yellow white darkBlue darkCyan darkGreen darkMagenta darkRed darkYellow darkGray lightGray none"`
	Underline string       `yaml:"underline" validate:"omitempty,oneof=single double thick dotted dash wave words none"`
	Strike    bool         `yaml:"strike"`
	VertAlign string       `yaml:"vertAlign" validate:"omitempty,oneof=baseline superscript subscript"`
	Children  []ChildEntry `yaml:"children" validate:"dive"`
}

// ChildEntry describes one piece of run content. Exactly one field must be set.
type ChildEntry struct {
	Text       *string `yaml:"text"`
	DeleteText *string `yaml:"deleteText"`
	Tab        bool    `yaml:"tab"`
	Break      string  `yaml:"break" validate:"omitempty,oneof=page column textWrapping line"`
}

// ParseRuns decodes a YAML run description. Unknown keys are rejected.
func ParseRuns(data []byte) (*RunDocument, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc RunDocument
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &InputError{Message: "document is empty"}
		}
		return nil, &InputError{Message: "invalid YAML", Cause: err}
	}

	if GetGlobalConfig().ValidateInput {
		if err := validateStruct(&doc); err != nil {
			return nil, &InputError{Message: "invalid run description", Cause: err}
		}
	}

	Debug("Parsed run description with %d runs", len(doc.Items))
	return &doc, nil
}

// LoadRuns reads a YAML run description from path
func LoadRuns(path string) (*RunDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &InputError{Path: path, Message: "cannot read file", Cause: err}
	}
	doc, err := ParseRuns(data)
	if err != nil {
		var inputErr *InputError
		if errors.As(err, &inputErr) {
			inputErr.Path = path
		}
		return nil, err
	}
	doc.path = path
	return doc, nil
}

// Runs converts the description into elements, in document order
func (d *RunDocument) Runs() ([]xml.Run, error) {
	defaultSize := GetGlobalConfig().DefaultFontSize

	runs := make([]xml.Run, 0, len(d.Items))
	for i, entry := range d.Items {
		run, err := entry.build(defaultSize)
		if err != nil {
			var inputErr *InputError
			if errors.As(err, &inputErr) {
				inputErr.Path = d.path
				inputErr.Field = fmt.Sprintf("runs[%d].%s", i, inputErr.Field)
			}
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, nil
}

func (s RunEntry) build(defaultSize uint) (xml.Run, error) {
	run := xml.NewRun()
	if s.Bold {
		run = run.Bold()
	}
	if s.Italic {
		run = run.Italic()
	}
	switch {
	case s.Size > 0:
		run = run.Size(s.Size)
	case defaultSize > 0:
		run = run.Size(defaultSize)
	}
	if s.Color != "" {
		run = run.Color(s.Color)
	}
	if s.Highlight != "" {
		run = run.Highlight(s.Highlight)
	}
	if s.Underline != "" {
		run = run.Underline(xml.UnderlineType(s.Underline))
	}
	if s.Strike {
		run = run.Strike()
	}
	if s.VertAlign != "" {
		run = run.VertAlign(xml.VertAlignType(s.VertAlign))
	}

	for j, child := range s.Children {
		field := fmt.Sprintf("children[%d]", j)
		if n := child.count(); n != 1 {
			return xml.Run{}, &InputError{Field: field, Message: fmt.Sprintf("exactly one of text, deleteText, tab, break must be set, found %d", n)}
		}
		switch {
		case child.Text != nil:
			run = run.AddText(*child.Text)
		case child.DeleteText != nil:
			run = run.AddDeleteText(*child.DeleteText)
		case child.Tab:
			run = run.AddTab()
		default:
			bt, ok := xml.ParseBreakType(child.Break)
			if !ok {
				return xml.Run{}, &InputError{Field: field + ".break", Message: fmt.Sprintf("unknown break type %q", child.Break)}
			}
			run = run.AddBreak(bt)
		}
	}
	return run, nil
}

func (c ChildEntry) count() int {
	n := 0
	if c.Text != nil {
		n++
	}
	if c.DeleteText != nil {
		n++
	}
	if c.Tab {
		n++
	}
	if c.Break != "" {
		n++
	}
	return n
}
