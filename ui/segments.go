package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/chrisuehlinger/vibetext/text"
)

// Segments converts doc into rich text segments for the preview. Each
// paragraph ends with a non-inline segment carrying its alignment.
//
// widget.RichText only renders theme colors and sizes, so span colors map
// to the primary color and font sizes to the nearest theme size.
func Segments(doc *text.Document) []widget.RichTextSegment {
	var segs []widget.RichTextSegment
	for _, p := range doc.Paragraphs() {
		align := textAlign(p.Alignment())
		children := p.AsNode().Children()
		if len(children) == 0 {
			style := widget.RichTextStyleParagraph
			style.Alignment = align
			segs = append(segs, &widget.TextSegment{Style: style})
			continue
		}
		for i, c := range children {
			style := widget.RichTextStyleInline
			if s := c.AsSpan(); s != nil {
				style = spanStyle(s)
			}
			style.Alignment = align
			style.Inline = i < len(children)-1
			segs = append(segs, &widget.TextSegment{Text: c.Text(), Style: style})
		}
	}
	return segs
}

func spanStyle(s *text.Span) widget.RichTextStyle {
	style := widget.RichTextStyleInline
	if f := s.Font(); f != nil {
		style.TextStyle = fyne.TextStyle{
			Bold:      f.Bold,
			Italic:    f.Italic,
			Monospace: isMonospace(f.Family),
		}
		style.SizeName = sizeName(f.Size)
	}
	if _, ok := s.Foreground(); ok {
		style.ColorName = theme.ColorNamePrimary
	}
	return style
}

func isMonospace(family string) bool {
	f := strings.ToLower(family)
	return strings.Contains(f, "mono") || strings.Contains(f, "courier") || strings.Contains(f, "consol")
}

func sizeName(points int) fyne.ThemeSizeName {
	switch {
	case points >= 20:
		return theme.SizeNameHeadingText
	case points >= 16:
		return theme.SizeNameSubHeadingText
	case points <= 10:
		return theme.SizeNameCaptionText
	default:
		return theme.SizeNameText
	}
}

func textAlign(a text.Alignment) fyne.TextAlign {
	switch a {
	case text.AlignCenter:
		return fyne.TextAlignCenter
	case text.AlignRight:
		return fyne.TextAlignTrailing
	default:
		return fyne.TextAlignLeading
	}
}
