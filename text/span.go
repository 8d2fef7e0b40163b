package text

import "image/color"

// Span represents a run of styled text. Its children are Text nodes.
type Span Node

// NewSpan creates a new detached span holding the given text runs.
func NewSpan(runs ...*Text) *Span {
	s := (*Span)(newNode(SpanNode))
	for _, r := range runs {
		// Span accepts any detached Text.
		_ = s.Add(r)
	}
	return s
}

// NewStyledSpan creates a span holding a single run of data.
func NewStyledSpan(data string) *Span {
	return NewSpan(NewText(data))
}

// AsNode returns the underlying Node.
func (s *Span) AsNode() *Node {
	return (*Node)(s)
}

// Add appends a text run to the span.
func (s *Span) Add(t *Text) error {
	_, err := s.AsNode().Append(t.AsNode())
	return err
}

// Font returns the span's font, or nil if none is set.
func (s *Span) Font() *Font {
	if s.style.font == nil {
		return nil
	}
	f := *s.style.font
	return &f
}

// SetFont sets the span's font. A nil font clears it.
func (s *Span) SetFont(f *Font) {
	if f == nil {
		s.style.font = nil
		return
	}
	c := *f
	s.style.font = &c
}

// Foreground returns the foreground color and whether one is set.
func (s *Span) Foreground() (color.RGBA, bool) {
	if s.style.foreground == nil {
		return color.RGBA{}, false
	}
	return *s.style.foreground, true
}

// SetForeground sets the foreground color.
func (s *Span) SetForeground(c color.RGBA) {
	s.style.foreground = &c
}

// ClearForeground removes the foreground color.
func (s *Span) ClearForeground() {
	s.style.foreground = nil
}

// Background returns the background color and whether one is set.
func (s *Span) Background() (color.RGBA, bool) {
	if s.style.background == nil {
		return color.RGBA{}, false
	}
	return *s.style.background, true
}

// SetBackground sets the background color.
func (s *Span) SetBackground(c color.RGBA) {
	s.style.background = &c
}

// ClearBackground removes the background color.
func (s *Span) ClearBackground() {
	s.style.background = nil
}

func (s *Span) Underline() bool {
	return s.style.underline
}

func (s *Span) SetUnderline(underline bool) {
	s.style.underline = underline
}

func (s *Span) Strikethrough() bool {
	return s.style.strikethrough
}

func (s *Span) SetStrikethrough(strikethrough bool) {
	s.style.strikethrough = strikethrough
}

// Styled reports whether the span carries any attribute.
func (s *Span) Styled() bool {
	st := s.style
	return st.font != nil || st.foreground != nil || st.background != nil || st.underline || st.strikethrough
}

// StyleString describes the span's attributes, e.g.
// "font=Arial BOLD 12 underline fg=#ff0000".
func (s *Span) StyleString() string {
	return s.style.String()
}

// SameStyle reports whether two spans carry identical attributes.
func (s *Span) SameStyle(other *Span) bool {
	return s.style.String() == other.style.String()
}
