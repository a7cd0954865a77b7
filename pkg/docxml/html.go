package docxml

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/benjaminschreck/go-docxml/pkg/docxml/xml"
)

// htmlStyle is the formatting inherited from enclosing HTML tags
type htmlStyle struct {
	bold      bool
	italic    bool
	underline bool
	strike    bool
	vertAlign xml.VertAlignType
}

func (s htmlStyle) newRun() xml.Run {
	run := xml.NewRun()
	if s.bold {
		run = run.Bold()
	}
	if s.italic {
		run = run.Italic()
	}
	if s.underline {
		run = run.Underline(xml.UnderlineSingle)
	}
	if s.strike {
		run = run.Strike()
	}
	if s.vertAlign != "" {
		run = run.VertAlign(s.vertAlign)
	}
	return run
}

type htmlConverter struct {
	runs       []xml.Run
	lineBreaks bool
}

// RunsFromHTML converts a small inline HTML subset into runs.
//
// Supported tags: b, strong, i, em, u, s, strike, sup, sub, span and br.
// Every text node becomes one run carrying the formatting of its ancestors;
// br adds a line break to the preceding run.
func RunsFromHTML(content string) ([]xml.Run, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(content), body)
	if err != nil {
		return nil, &HTMLError{Message: "cannot parse fragment", Cause: err}
	}

	c := &htmlConverter{lineBreaks: GetGlobalConfig().HTMLLineBreaks}
	for _, n := range nodes {
		if err := c.walk(n, htmlStyle{}); err != nil {
			return nil, err
		}
	}

	WithField("runs", len(c.runs)).Debug("Converted HTML fragment")
	return c.runs, nil
}

func (c *htmlConverter) walk(n *html.Node, style htmlStyle) error {
	switch n.Type {
	case html.TextNode:
		c.text(n.Data, style)
		return nil
	case html.ElementNode:
	default:
		// Comments and doctype nodes carry no run content
		return nil
	}

	switch n.DataAtom {
	case atom.B, atom.Strong:
		style.bold = true
	case atom.I, atom.Em:
		style.italic = true
	case atom.U:
		style.underline = true
	case atom.S, atom.Strike:
		style.strike = true
	case atom.Sup:
		style.vertAlign = xml.VertAlignSuperscript
	case atom.Sub:
		style.vertAlign = xml.VertAlignSubscript
	case atom.Span:
	case atom.Br:
		c.lineBreak(style)
		return nil
	default:
		return &HTMLError{Tag: n.Data, Message: "unsupported tag"}
	}

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if err := c.walk(child, style); err != nil {
			return err
		}
	}
	return nil
}

func (c *htmlConverter) text(s string, style htmlStyle) {
	if s == "" {
		return
	}
	run := style.newRun()
	if !c.lineBreaks {
		c.runs = append(c.runs, run.AddText(s))
		return
	}
	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			run = run.AddBreak(xml.BreakTypeTextWrapping)
		}
		if line != "" {
			run = run.AddText(line)
		}
	}
	c.runs = append(c.runs, run)
}

func (c *htmlConverter) lineBreak(style htmlStyle) {
	if len(c.runs) == 0 {
		c.runs = append(c.runs, style.newRun().AddBreak(xml.BreakTypeTextWrapping))
		return
	}
	last := len(c.runs) - 1
	c.runs[last] = c.runs[last].AddBreak(xml.BreakTypeTextWrapping)
}
