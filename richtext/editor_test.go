package richtext

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrisuehlinger/vibetext/text"
)

func TestEditor_RestoresSelection(t *testing.T) {
	e := NewEditor(text.NewDocumentFromString("Hello World"))
	require.NoError(t, e.Select(2, 7))
	assert.Equal(t, "llo Wor", e.SelectedText())

	require.NoError(t, e.ApplyStyleToSelection(Mutation{Kind: ToggleBold}))

	sel, ok := e.Selection()
	require.True(t, ok)
	assert.Equal(t, text.Selection{Start: 2, End: 9}, sel)
	assert.Equal(t, "llo Wor", e.SelectedText())
	assert.Equal(t, "Hello World", e.Text())
}

func TestEditor_NoSelectionIsNoop(t *testing.T) {
	e := NewEditor(text.NewDocumentFromString("Hello World"))
	before := text.DumpString(e.Document().AsNode())

	require.NoError(t, e.ApplyStyleToSelection(Mutation{Kind: ToggleBold}))
	require.NoError(t, e.ApplyAlignment(text.AlignRight))
	assert.Equal(t, before, text.DumpString(e.Document().AsNode()))

	_, ok := e.Selection()
	assert.False(t, ok)
}

func TestEditor_SelectBounds(t *testing.T) {
	e := NewEditor(text.NewDocumentFromString("Hello"))
	assert.Error(t, e.Select(3, 3))
	assert.Error(t, e.Select(-1, 1))
	require.NoError(t, e.Select(5, 0))

	e.SelectAll()
	sel, _ := e.Selection()
	assert.Equal(t, 5, sel.Length())

	e.ClearSelection()
	assert.Equal(t, "", e.SelectedText())
}

func TestEditor_ApplyAlignment(t *testing.T) {
	e := NewEditor(text.NewDocumentFromString("one\ntwo\nthree"))
	ps := e.Document().Paragraphs()

	// Caret inside "two".
	require.NoError(t, e.Select(4, 0))
	require.NoError(t, e.ApplyAlignment(text.AlignCenter))
	assert.Equal(t, text.AlignLeft, ps[0].Alignment())
	assert.Equal(t, text.AlignCenter, ps[1].Alignment())
	assert.Equal(t, text.AlignLeft, ps[2].Alignment())

	// Range from "ne" to "th".
	require.NoError(t, e.Select(1, 7))
	require.NoError(t, e.ApplyAlignment(text.AlignRight))
	assert.Equal(t, text.AlignRight, ps[0].Alignment())
	assert.Equal(t, text.AlignRight, ps[1].Alignment())
	assert.Equal(t, text.AlignRight, ps[2].Alignment())

	// Caret at the end of the document.
	require.NoError(t, e.Select(11, 0))
	require.NoError(t, e.ApplyAlignment(text.AlignJustify))
	assert.Equal(t, text.AlignJustify, ps[2].Alignment())
}

func TestEditor_Dump(t *testing.T) {
	e := NewEditor(text.NewDocumentFromString("Hi"))
	var buf bytes.Buffer
	require.NoError(t, e.Dump(&buf))
	assert.Equal(t, "Document\n  Paragraph\n    Text \"Hi\"\n", buf.String())
}
