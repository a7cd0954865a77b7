package docxml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benjaminschreck/go-docxml/pkg/docxml/xml"
	"github.com/benjaminschreck/go-docxml/pkg/docxml/xmlbuilder"
)

// brokenElement forgets to close its builder
type brokenElement struct{}

func (brokenElement) BuildXML() []byte {
	return xmlbuilder.New().OpenRun().Build()
}

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		elem     xml.BuildXML
		expected string
	}{
		{
			name:     "hello run",
			elem:     xml.NewRun().AddText("Hello"),
			expected: `<w:r><w:rPr /><w:t xml:space="preserve">Hello</w:t></w:r>`,
		},
		{
			name:     "start",
			elem:     xml.NewStart(3),
			expected: `<w:start w:val="3" />`,
		},
		{
			name: "bold sized page break",
			elem: xml.NewRun().Bold().Size(24).AddBreak(xml.BreakTypePage),
			expected: `<w:r><w:rPr><w:b /><w:bCs /><w:sz w:val="24" /><w:szCs w:val="24" /></w:rPr>` +
				`<w:br w:type="page" /></w:r>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Render(tt.elem)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(out))
		})
	}
}

func TestRenderLogsAtDebug(t *testing.T) {
	buf := captureLogs(t, LogDebug)
	_, err := Render(xml.NewTab())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "element=xml.Tab")
}

func TestRenderRecoversBuilderMisuse(t *testing.T) {
	out, err := Render(brokenElement{})
	assert.Nil(t, out)

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, "docxml.brokenElement", renderErr.Element)

	var misuse *xmlbuilder.MisuseError
	require.ErrorAs(t, err, &misuse)
	assert.Equal(t, "build", misuse.Op)
	assert.Equal(t, xmlbuilder.Opened, misuse.State)
}

func TestRenderNilElement(t *testing.T) {
	tests := []struct {
		name    string
		element xml.BuildXML
	}{
		{name: "nil interface", element: nil},
		{name: "nil pointer", element: (*xml.Run)(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out []byte
			var err error
			require.NotPanics(t, func() { out, err = Render(tt.element) })
			assert.Nil(t, out)
			assert.True(t, IsInputError(err))
			assert.Contains(t, err.Error(), "nil element")
		})
	}
}

func TestRenderRuns(t *testing.T) {
	out, err := RenderRuns([]xml.Run{xml.NewRun().AddText("a"), xml.NewRun().AddTab()})
	require.NoError(t, err)
	assert.Equal(t, `<w:r><w:rPr /><w:t xml:space="preserve">a</w:t></w:r><w:r><w:rPr /><w:tab /></w:r>`, string(out))

	out, err = RenderRuns(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRenderFile(t *testing.T) {
	withConfig(t, nil)
	path := writeTempFile(t, "runs.yaml", "runs:\n  - bold: true\n    children:\n      - text: Hi\n")

	out, err := RenderFile(path)
	require.NoError(t, err)
	assert.Equal(t, `<w:r><w:rPr><w:b /><w:bCs /></w:rPr><w:t xml:space="preserve">Hi</w:t></w:r>`, string(out))

	_, err = RenderFile(path + ".missing")
	assert.True(t, IsInputError(err))
}

func TestRenderHTML(t *testing.T) {
	withConfig(t, nil)

	out, err := RenderHTML("<i>x</i>")
	require.NoError(t, err)
	assert.Equal(t, `<w:r><w:rPr><w:i /><w:iCs /></w:rPr><w:t xml:space="preserve">x</w:t></w:r>`, string(out))

	_, err = RenderHTML("<table></table>")
	assert.True(t, IsHTMLError(err))
}
