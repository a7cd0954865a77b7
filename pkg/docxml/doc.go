// Package docxml turns WordprocessingML elements into markup.
//
// The element model lives in the xml subpackage and the tag emitter in
// xmlbuilder. This package adds the pieces a caller usually needs around
// them: rendering with logging, YAML run descriptions, inline HTML input and
// configuration.
//
// # Quick Start
//
//	run := xml.NewRun().Bold().Size(24).AddText("Hello")
//	out, err := docxml.Render(run)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// <w:r><w:rPr><w:b /><w:bCs /><w:sz w:val="24" /><w:szCs w:val="24" /></w:rPr><w:t xml:space="preserve">Hello</w:t></w:r>
//
// # Run Descriptions
//
// Runs can be described in YAML and rendered in one call:
//
//	runs:
//	  - bold: true
//	    color: "FF0000"
//	    children:
//	      - text: "Total: "
//	      - tab: true
//	      - break: page
//
//	out, err := docxml.RenderFile("runs.yaml")
//
// Each child sets exactly one of text, deleteText, tab or break. Break
// kinds are page, column, textWrapping and its alias line.
//
// # HTML
//
// RunsFromHTML accepts b, strong, i, em, u, s, strike, sup, sub, span and br:
//
//	runs, err := docxml.RunsFromHTML("<b>Hello</b> <i>world</i><br>")
//
// # Configuration
//
// Configuration is read from the environment at start-up:
//
//	DOCXML_LOG_LEVEL           debug, info, warn, error or off
//	DOCXML_DEFAULT_FONT_SIZE   half-points applied to runs without a size
//	DOCXML_VALIDATE_INPUT      validate run descriptions (default true)
//	DOCXML_HTML_LINE_BREAKS    turn newlines in HTML text into breaks
//
// or from a YAML file with LoadConfigFile and SetGlobalConfig.
//
// # Error Handling
//
// Bad input is reported with typed errors: *InputError for run descriptions,
// *HTMLError for HTML, *ValidationError for failed field checks. Use
// IsInputError, IsHTMLError and IsValidationError to classify them.
package docxml
