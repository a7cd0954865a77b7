package docxml

import (
	"bytes"
	"fmt"
	"reflect"

	"github.com/benjaminschreck/go-docxml/pkg/docxml/xml"
)

// Render serializes a single element.
//
// Serialization itself cannot fail. A builder misuse inside an element's
// BuildXML is reported as a *RenderError instead of crashing the caller.
// A nil element is an *InputError.
func Render(e xml.BuildXML) (out []byte, err error) {
	if isNilElement(e) {
		return nil, &InputError{Message: "nil element"}
	}
	name := fmt.Sprintf("%T", e)
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, recoverMisuse(name, r)
		}
	}()

	out = e.BuildXML()
	GetLogger().DebugMarkup(name, out)
	return out, nil
}

func isNilElement(e xml.BuildXML) bool {
	if e == nil {
		return true
	}
	v := reflect.ValueOf(e)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// RenderRuns serializes runs back to back, in order
func RenderRuns(runs []xml.Run) ([]byte, error) {
	var buf bytes.Buffer
	for i, run := range runs {
		out, err := Render(run)
		if err != nil {
			return nil, fmt.Errorf("run %d: %w", i, err)
		}
		buf.Write(out)
	}
	return buf.Bytes(), nil
}

// RenderFile loads a YAML run description and serializes all of its runs
func RenderFile(path string) ([]byte, error) {
	doc, err := LoadRuns(path)
	if err != nil {
		return nil, err
	}
	runs, err := doc.Runs()
	if err != nil {
		return nil, err
	}
	WithFields(Fields{"path": path, "runs": len(runs)}).Debug("Rendering run description")
	return RenderRuns(runs)
}

// RenderHTML converts an inline HTML fragment to runs and serializes them
func RenderHTML(content string) ([]byte, error) {
	runs, err := RunsFromHTML(content)
	if err != nil {
		return nil, err
	}
	return RenderRuns(runs)
}
