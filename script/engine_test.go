package script

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrisuehlinger/vibetext/richtext"
	"github.com/chrisuehlinger/vibetext/text"
)

// Compile-time check that scripts can be used as style applicators.
var _ richtext.StyleApplicator = (*Mutation)(nil)

func newEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	e, err := NewEngine(opts...)
	require.NoError(t, err)
	return e
}

func TestMutation_SetsAttributes(t *testing.T) {
	e := newEngine(t)
	m, err := e.Compile(`
		span.bold = !span.bold;
		span.underline = true;
		span.foreground = "red";
		span.fontSize = 20;
	`)
	require.NoError(t, err)

	s := text.NewStyledSpan("abc")
	m.Apply(s)
	require.NoError(t, m.Err())

	require.NotNil(t, s.Font())
	assert.Equal(t, text.Font{Family: "Arial", Size: 20, Bold: true}, *s.Font())
	assert.True(t, s.Underline())
	fg, ok := s.Foreground()
	require.True(t, ok)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, fg)
}

func TestMutation_SeesSpanState(t *testing.T) {
	e := newEngine(t)
	m, err := e.Compile(`
		if (span.text === "keep" && span.background === "#00ff00") {
			span.background = null;
			span.strikethrough = true;
		}
	`)
	require.NoError(t, err)

	s := text.NewStyledSpan("keep")
	s.SetBackground(color.RGBA{G: 255, A: 255})
	m.Apply(s)
	require.NoError(t, m.Err())

	_, ok := s.Background()
	assert.False(t, ok)
	assert.True(t, s.Strikethrough())
	assert.Nil(t, s.Font(), "untouched font should stay unset")
}

func TestMutation_WithApplyStyle(t *testing.T) {
	e := newEngine(t)
	m, err := e.Compile(`span.italic = true`)
	require.NoError(t, err)

	doc := text.NewDocumentFromString("Hello World")
	require.NoError(t, richtext.ApplyStyle(doc, text.Selection{Start: 6, End: 11}, m))
	require.NoError(t, m.Err())

	s := doc.Paragraphs()[0].AsNode().Child(1).AsSpan()
	require.NotNil(t, s)
	assert.Equal(t, "World", s.AsNode().Text())
	assert.True(t, s.Font().Italic)
}

func TestCompile_SyntaxError(t *testing.T) {
	e := newEngine(t)
	_, err := e.Compile(`span.bold = ;`)
	assert.Error(t, err)
}

func TestCompile_Cached(t *testing.T) {
	e := newEngine(t, WithCacheSize(2))
	a, err := e.Compile(`span.bold = true`)
	require.NoError(t, err)
	b, err := e.Compile(`span.bold = true`)
	require.NoError(t, err)
	assert.Same(t, a.prog, b.prog)
	assert.Equal(t, 1, e.cache.Len())
}

func TestMutation_RuntimeErrorLeavesSpan(t *testing.T) {
	e := newEngine(t)
	m, err := e.Compile(`span.underline = true; throw new Error("boom");`)
	require.NoError(t, err)

	s := text.NewStyledSpan("x")
	m.Apply(s)
	assert.Error(t, m.Err())
	assert.False(t, s.Underline())
}

func TestMutation_Timeout(t *testing.T) {
	e := newEngine(t, WithTimeout(50*time.Millisecond))
	m, err := e.Compile(`span.bold = true; for (;;) {}`)
	require.NoError(t, err)

	s := text.NewStyledSpan("x")
	m.Apply(s)
	assert.ErrorIs(t, m.Err(), ErrTimeout)
	assert.Nil(t, s.Font())

	// The runtime is usable again after an interrupt.
	ok, err := e.Compile(`span.italic = true`)
	require.NoError(t, err)
	ok.Apply(s)
	require.NoError(t, ok.Err())
	assert.True(t, s.Font().Italic)
}
