package statement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_BasicStream(t *testing.T) {
	data := []byte(`
view: app.Main
statements:
  - kind: require
    name: ui.Button
    line: 1
  - kind: text
    line: 2
    text: "<div>"
  - kind: expr
    line: 3
    text: '"user.name"'
`)

	doc, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, "app.Main", doc.View)
	require.Len(t, doc.Statements, 3)

	assert.Equal(t, KindRequire, doc.Statements[0].Kind)
	assert.Equal(t, "ui.Button", doc.Statements[0].Name)
	assert.Equal(t, 1, doc.Statements[0].Line)

	assert.Equal(t, "<div>", doc.Statements[1].Text)
	assert.Equal(t, `"user.name"`, doc.Statements[2].Text)
}

func TestParse_Defaults(t *testing.T) {
	data := []byte(`
statements:
  - line: 1
    text: plain
  - kind: macro
    name: header
    line: 2
    children:
      - line: 3
        text: nested
`)

	doc, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, "app.View", doc.View)
	assert.Equal(t, KindText, doc.Statements[0].Kind)
	require.Len(t, doc.Statements[1].Children, 1)
	assert.Equal(t, KindText, doc.Statements[1].Children[0].Kind)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("statements: {not a list"))
	assert.Error(t, err)
}

func TestMarshal_RoundTrip(t *testing.T) {
	doc := &Document{
		View: "app.Main",
		Statements: []Statement{
			{Kind: KindText, Line: 1, Text: "<div>"},
			{Kind: KindMacro, Name: "header", Line: 2, Params: []string{"title"}},
		},
	}

	data, err := Marshal(doc)
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, doc, back)
}
