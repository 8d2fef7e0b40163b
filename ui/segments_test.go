package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrisuehlinger/vibetext/text"
)

func TestSegments_PlainParagraphs(t *testing.T) {
	doc := text.NewDocumentFromString("one\ntwo")
	segs := Segments(doc)
	require.Len(t, segs, 2)

	for i, want := range []string{"one", "two"} {
		seg, ok := segs[i].(*widget.TextSegment)
		require.True(t, ok)
		assert.Equal(t, want, seg.Text)
		assert.False(t, seg.Style.Inline, "last segment of a paragraph ends the line")
		assert.Equal(t, fyne.TextAlignLeading, seg.Style.Alignment)
	}
}

func TestSegments_StyledSpans(t *testing.T) {
	bold := text.NewStyledSpan("bold")
	bold.SetFont(&text.Font{Family: "Courier New", Size: 24, Bold: true})
	red := text.NewStyledSpan("red")
	red.SetForeground(color.RGBA{R: 0xff, A: 0xff})

	p, err := text.NewParagraph(text.NewText("plain ").AsNode(), bold.AsNode(), red.AsNode())
	require.NoError(t, err)
	p.SetAlignment(text.AlignRight)
	doc := text.NewDocument()
	require.NoError(t, doc.Add(p))

	segs := Segments(doc)
	require.Len(t, segs, 3)

	plain := segs[0].(*widget.TextSegment)
	assert.Equal(t, "plain ", plain.Text)
	assert.True(t, plain.Style.Inline)
	assert.Equal(t, fyne.TextAlignTrailing, plain.Style.Alignment)

	b := segs[1].(*widget.TextSegment)
	assert.Equal(t, "bold", b.Text)
	assert.True(t, b.Style.TextStyle.Bold)
	assert.True(t, b.Style.TextStyle.Monospace)
	assert.False(t, b.Style.TextStyle.Italic)
	assert.Equal(t, theme.SizeNameHeadingText, b.Style.SizeName)
	assert.True(t, b.Style.Inline)

	r := segs[2].(*widget.TextSegment)
	assert.Equal(t, "red", r.Text)
	assert.Equal(t, theme.ColorNamePrimary, r.Style.ColorName)
	assert.False(t, r.Style.Inline)
}

func TestSegments_EmptyParagraph(t *testing.T) {
	doc := text.NewDocument()
	p, err := text.NewParagraph()
	require.NoError(t, err)
	p.SetAlignment(text.AlignCenter)
	require.NoError(t, doc.Add(p))

	segs := Segments(doc)
	require.Len(t, segs, 1)
	seg := segs[0].(*widget.TextSegment)
	assert.Equal(t, "", seg.Text)
	assert.Equal(t, fyne.TextAlignCenter, seg.Style.Alignment)
	assert.False(t, seg.Style.Inline)
}

func TestSizeName(t *testing.T) {
	tests := []struct {
		points int
		want   fyne.ThemeSizeName
	}{
		{8, theme.SizeNameCaptionText},
		{10, theme.SizeNameCaptionText},
		{12, theme.SizeNameText},
		{16, theme.SizeNameSubHeadingText},
		{20, theme.SizeNameHeadingText},
		{36, theme.SizeNameHeadingText},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sizeName(tt.points), "points=%d", tt.points)
	}
}

func TestParseSelection(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		wantStart  int
		wantLength int
		wantErr    bool
	}{
		{"blank selects all", "", "", 0, 11, false},
		{"range", "2", "9", 2, 7, false},
		{"caret", "4", "4", 4, 0, false},
		{"open end", " 6 ", "", 6, 5, false},
		{"not a number", "x", "3", 0, 0, true},
		{"past end", "0", "12", 0, 0, true},
		{"reversed", "5", "2", 0, 0, true},
		{"negative", "-1", "2", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, length, err := parseSelection(tt.start, tt.end, 11)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantLength, length)
		})
	}
}
