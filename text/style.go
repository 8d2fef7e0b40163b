package text

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Font describes the typeface of a span.
type Font struct {
	Family string
	Size   int
	Bold   bool
	Italic bool
}

// DefaultFont is applied to spans that have no font when a font flag is
// toggled on.
var DefaultFont = Font{Family: "Arial", Size: 12}

// String returns the font in the "Family STYLE size" form accepted by
// ParseFont, e.g. "Arial BOLDITALIC 12".
func (f Font) String() string {
	style := "PLAIN"
	switch {
	case f.Bold && f.Italic:
		style = "BOLDITALIC"
	case f.Bold:
		style = "BOLD"
	case f.Italic:
		style = "ITALIC"
	}
	return fmt.Sprintf("%s %s %d", f.Family, style, f.Size)
}

// ParseFont parses a font description of the form "Family [STYLE] [size]".
// Family names may contain spaces; STYLE is one of PLAIN, BOLD, ITALIC or
// BOLDITALIC (case-insensitive). Fields that are omitted take their value
// from DefaultFont. Dashes are accepted as separators ("Arial-BOLD-14").
func ParseFont(s string) (Font, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Font{}, fmt.Errorf("empty font description")
	}
	fields := strings.Fields(s)
	if len(fields) == 1 && strings.Contains(s, "-") {
		fields = strings.Split(s, "-")
	}

	f := Font{Size: DefaultFont.Size}
	if n, err := strconv.Atoi(fields[len(fields)-1]); err == nil {
		if n <= 0 {
			return Font{}, fmt.Errorf("invalid font size %d", n)
		}
		f.Size = n
		fields = fields[:len(fields)-1]
	}
	if len(fields) > 0 {
		switch strings.ToUpper(fields[len(fields)-1]) {
		case "PLAIN":
			fields = fields[:len(fields)-1]
		case "BOLD":
			f.Bold = true
			fields = fields[:len(fields)-1]
		case "ITALIC":
			f.Italic = true
			fields = fields[:len(fields)-1]
		case "BOLDITALIC":
			f.Bold, f.Italic = true, true
			fields = fields[:len(fields)-1]
		}
	}
	f.Family = strings.Join(fields, " ")
	if f.Family == "" {
		f.Family = DefaultFont.Family
	}
	return f, nil
}

// Alignment is the horizontal alignment of a paragraph.
type Alignment uint8

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
	AlignJustify
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustify:
		return "justify"
	default:
		return "left"
	}
}

// ParseAlignment parses "left", "center" (or "centre"), "right" or "justify".
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "start", "":
		return AlignLeft, nil
	case "center", "centre", "middle":
		return AlignCenter, nil
	case "right", "end":
		return AlignRight, nil
	case "justify":
		return AlignJustify, nil
	}
	return AlignLeft, fmt.Errorf("unknown alignment %q", s)
}

// spanStyle holds the attributes carried by a Span.
type spanStyle struct {
	font          *Font
	foreground    *color.RGBA
	background    *color.RGBA
	underline     bool
	strikethrough bool
}

func (s *spanStyle) clone() *spanStyle {
	c := &spanStyle{underline: s.underline, strikethrough: s.strikethrough}
	if s.font != nil {
		f := *s.font
		c.font = &f
	}
	if s.foreground != nil {
		fg := *s.foreground
		c.foreground = &fg
	}
	if s.background != nil {
		bg := *s.background
		c.background = &bg
	}
	return c
}

func (s *spanStyle) String() string {
	var parts []string
	if s.font != nil {
		parts = append(parts, "font="+s.font.String())
	}
	if s.underline {
		parts = append(parts, "underline")
	}
	if s.strikethrough {
		parts = append(parts, "strikethrough")
	}
	if s.foreground != nil {
		parts = append(parts, "fg="+hexColor(*s.foreground))
	}
	if s.background != nil {
		parts = append(parts, "bg="+hexColor(*s.background))
	}
	return strings.Join(parts, " ")
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
