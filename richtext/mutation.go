package richtext

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/chrisuehlinger/vibetext/css"
	"github.com/chrisuehlinger/vibetext/text"
)

// StyleApplicator changes the attributes of a span in place.
type StyleApplicator interface {
	Apply(span *text.Span)
}

// ApplicatorFunc adapts a function to StyleApplicator.
type ApplicatorFunc func(span *text.Span)

// Apply calls f(span).
func (f ApplicatorFunc) Apply(span *text.Span) {
	f(span)
}

// Chain returns an applicator running each of as in order.
func Chain(as ...StyleApplicator) StyleApplicator {
	return ApplicatorFunc(func(span *text.Span) {
		for _, a := range as {
			a.Apply(span)
		}
	})
}

// MutationKind identifies a single attribute change.
type MutationKind uint8

const (
	ToggleBold MutationKind = iota + 1
	ToggleItalic
	ToggleUnderline
	ToggleStrikethrough
	SetBold
	SetItalic
	SetUnderline
	SetStrikethrough
	SetForeground
	SetBackground
	SetFont
	SetFontFamily
	SetFontSize
)

var kindNames = map[MutationKind]string{
	ToggleBold:          "bold",
	ToggleItalic:        "italic",
	ToggleUnderline:     "underline",
	ToggleStrikethrough: "strikethrough",
	SetBold:             "bold",
	SetItalic:           "italic",
	SetUnderline:        "underline",
	SetStrikethrough:    "strikethrough",
	SetForeground:       "color",
	SetBackground:       "background",
	SetFont:             "font",
	SetFontFamily:       "family",
	SetFontSize:         "size",
}

// Mutation is a tagged style change. Only the fields relevant to Kind are
// used.
type Mutation struct {
	Kind  MutationKind
	On    bool
	Color color.RGBA
	Font  text.Font
	Name  string
	Size  int
}

// Apply implements StyleApplicator.
func (m Mutation) Apply(span *text.Span) {
	switch m.Kind {
	case ToggleBold:
		updateFont(span, func(f *text.Font, isNew bool) {
			f.Bold = isNew || !f.Bold
		})
	case ToggleItalic:
		updateFont(span, func(f *text.Font, isNew bool) {
			f.Italic = isNew || !f.Italic
		})
	case ToggleUnderline:
		span.SetUnderline(!span.Underline())
	case ToggleStrikethrough:
		span.SetStrikethrough(!span.Strikethrough())
	case SetBold:
		updateFont(span, func(f *text.Font, _ bool) { f.Bold = m.On })
	case SetItalic:
		updateFont(span, func(f *text.Font, _ bool) { f.Italic = m.On })
	case SetUnderline:
		span.SetUnderline(m.On)
	case SetStrikethrough:
		span.SetStrikethrough(m.On)
	case SetForeground:
		span.SetForeground(m.Color)
	case SetBackground:
		span.SetBackground(m.Color)
	case SetFont:
		f := m.Font
		span.SetFont(&f)
	case SetFontFamily:
		updateFont(span, func(f *text.Font, _ bool) { f.Family = m.Name })
	case SetFontSize:
		updateFont(span, func(f *text.Font, _ bool) { f.Size = m.Size })
	}
}

// updateFont edits the span's font, starting from text.DefaultFont when the
// span has none.
func updateFont(span *text.Span, edit func(f *text.Font, isNew bool)) {
	f := span.Font()
	isNew := f == nil
	if isNew {
		d := text.DefaultFont
		f = &d
	}
	edit(f, isNew)
	span.SetFont(f)
}

// String returns the mutation in the form accepted by ParseMutation.
func (m Mutation) String() string {
	name := kindNames[m.Kind]
	switch m.Kind {
	case ToggleBold, ToggleItalic, ToggleUnderline, ToggleStrikethrough:
		return name
	case SetBold, SetItalic, SetUnderline, SetStrikethrough:
		if m.On {
			return name + "=on"
		}
		return name + "=off"
	case SetForeground, SetBackground:
		return name + "=" + css.ColorToString(m.Color)
	case SetFont:
		return name + "=" + m.Font.String()
	case SetFontFamily:
		return name + "=" + m.Name
	case SetFontSize:
		return name + "=" + strconv.Itoa(m.Size)
	}
	return fmt.Sprintf("mutation(%d)", m.Kind)
}

// ParseMutation parses a mutation description. A bare attribute name
// ("bold", "italic", "underline", "strikethrough") toggles it; "name=on" or
// "name=off" sets it. Valued forms are "color=<css color>",
// "background=<css color>", "font=<font>", "family=<name>" and
// "size=<points>".
func ParseMutation(s string) (Mutation, error) {
	name, value, hasValue := strings.Cut(strings.TrimSpace(s), "=")
	name = strings.ToLower(strings.TrimSpace(name))
	value = strings.TrimSpace(value)

	flag := func(toggle, set MutationKind) (Mutation, error) {
		if !hasValue {
			return Mutation{Kind: toggle}, nil
		}
		on, err := parseSwitch(value)
		if err != nil {
			return Mutation{}, fmt.Errorf("%s: %w", name, err)
		}
		return Mutation{Kind: set, On: on}, nil
	}

	switch name {
	case "bold", "b":
		return flag(ToggleBold, SetBold)
	case "italic", "i":
		return flag(ToggleItalic, SetItalic)
	case "underline", "u":
		return flag(ToggleUnderline, SetUnderline)
	case "strikethrough", "strike", "s":
		return flag(ToggleStrikethrough, SetStrikethrough)
	}

	if !hasValue || value == "" {
		return Mutation{}, fmt.Errorf("mutation %q needs a value", s)
	}
	switch name {
	case "color", "colour", "foreground", "fg":
		c, ok := css.ParseColor(value)
		if !ok {
			return Mutation{}, fmt.Errorf("invalid color %q", value)
		}
		return Mutation{Kind: SetForeground, Color: c}, nil
	case "background", "bg":
		c, ok := css.ParseColor(value)
		if !ok {
			return Mutation{}, fmt.Errorf("invalid color %q", value)
		}
		return Mutation{Kind: SetBackground, Color: c}, nil
	case "font":
		f, err := text.ParseFont(value)
		if err != nil {
			return Mutation{}, err
		}
		return Mutation{Kind: SetFont, Font: f}, nil
	case "family":
		return Mutation{Kind: SetFontFamily, Name: value}, nil
	case "size":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return Mutation{}, fmt.Errorf("invalid font size %q", value)
		}
		return Mutation{Kind: SetFontSize, Size: n}, nil
	}
	return Mutation{}, fmt.Errorf("unknown mutation %q", name)
}

// ParseMutations parses each description and chains the results.
func ParseMutations(descs []string) (StyleApplicator, error) {
	as := make([]StyleApplicator, 0, len(descs))
	for _, d := range descs {
		m, err := ParseMutation(d)
		if err != nil {
			return nil, err
		}
		as = append(as, m)
	}
	return Chain(as...), nil
}

func parseSwitch(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", s)
}
