package docxml

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benjaminschreck/go-docxml/pkg/docxml/xml"
)

func TestParseRunsMatchesBuilder(t *testing.T) {
	withConfig(t, nil)

	doc, err := ParseRuns([]byte(`
runs:
  - bold: true
    size: 24
    children:
      - break: page
  - italic: true
    color: "FF0000"
    highlight: yellow
    underline: single
    strike: true
    vertAlign: subscript
    children:
      - text: "Hello"
      - tab: true
      - deleteText: "old"
      - text: ""
      - break: line
`))
	require.NoError(t, err)

	runs, err := doc.Runs()
	require.NoError(t, err)
	require.Len(t, runs, 2)

	want := []xml.Run{
		xml.NewRun().Bold().Size(24).AddBreak(xml.BreakTypePage),
		xml.NewRun().Italic().Color("FF0000").Highlight("yellow").Underline(xml.UnderlineSingle).
			Strike().VertAlign(xml.VertAlignSubscript).AddText("Hello").AddTab().AddDeleteText("old").AddText("").AddBreak(xml.BreakTypeTextWrapping),
	}
	for i := range want {
		assert.Equal(t, string(want[i].BuildXML()), string(runs[i].BuildXML()), "run %d", i)
	}
}

func TestParseRunsErrors(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		wantInMsg string
	}{
		{name: "empty document", yaml: "", wantInMsg: "document is empty"},
		{name: "not yaml", yaml: "runs: [", wantInMsg: "invalid YAML"},
		{name: "unknown key", yaml: "runs:\n  - bolt: true\n", wantInMsg: "invalid YAML"},
		{name: "no runs", yaml: "runs: []\n", wantInMsg: "runs"},
		{name: "bad break", yaml: "runs:\n  - children:\n      - break: section\n", wantInMsg: "runs[0].children[0].break"},
		{name: "bad color", yaml: "runs:\n  - color: red\n", wantInMsg: "runs[0].color"},
		{name: "bad vertical alignment", yaml: "runs:\n  - vertAlign: raised\n", wantInMsg: "runs[0].vertAlign"},
		{name: "bad underline", yaml: "runs:\n  - underline: squiggle\n", wantInMsg: "runs[0].underline"},
		{name: "size too large", yaml: "runs:\n  - size: 9000\n", wantInMsg: "runs[0].size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withConfig(t, nil)
			_, err := ParseRuns([]byte(tt.yaml))
			require.Error(t, err)
			assert.True(t, IsInputError(err), "expected InputError, got %T", err)
			assert.Contains(t, err.Error(), tt.wantInMsg)
		})
	}
}

func TestRunsChildErrors(t *testing.T) {
	withConfig(t, func(c *Config) { c.ValidateInput = false })

	tests := []struct {
		name      string
		yaml      string
		wantField string
	}{
		{
			name:      "two fields set",
			yaml:      "runs:\n  - children:\n      - text: a\n        tab: true\n",
			wantField: "runs[0].children[0]",
		},
		{
			name:      "nothing set",
			yaml:      "runs:\n  - children:\n      - {}\n",
			wantField: "runs[0].children[0]",
		},
		{
			name:      "unknown break without validation",
			yaml:      "runs:\n  - children:\n      - text: ok\n  - children:\n      - tab: true\n      - break: section\n",
			wantField: "runs[1].children[1].break",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ParseRuns([]byte(tt.yaml))
			require.NoError(t, err)

			_, err = doc.Runs()
			var inputErr *InputError
			require.True(t, errors.As(err, &inputErr), "expected InputError, got %v", err)
			assert.Equal(t, tt.wantField, inputErr.Field)
		})
	}
}

func TestRunsDefaultFontSize(t *testing.T) {
	withConfig(t, func(c *Config) { c.DefaultFontSize = 22 })

	doc, err := ParseRuns([]byte("runs:\n  - children:\n      - text: a\n  - size: 30\n"))
	require.NoError(t, err)
	runs, err := doc.Runs()
	require.NoError(t, err)

	assert.Equal(t, string(xml.NewRun().Size(22).AddText("a").BuildXML()), string(runs[0].BuildXML()))
	assert.Equal(t, string(xml.NewRun().Size(30).BuildXML()), string(runs[1].BuildXML()))
}

func TestLoadRuns(t *testing.T) {
	withConfig(t, nil)

	path := writeTempFile(t, "runs.yaml", "runs:\n  - children:\n      - text: from file\n")
	doc, err := LoadRuns(path)
	require.NoError(t, err)
	runs, err := doc.Runs()
	require.NoError(t, err)
	assert.Equal(t, "from file", runs[0].Text())

	bad := writeTempFile(t, "bad.yaml", "runs:\n  - children:\n      - break: nope\n")
	_, err = LoadRuns(bad)
	var inputErr *InputError
	require.True(t, errors.As(err, &inputErr))
	assert.Equal(t, bad, inputErr.Path)

	_, err = LoadRuns(path + ".missing")
	assert.True(t, IsInputError(err))
	assert.True(t, strings.Contains(err.Error(), "cannot read file"))
}
