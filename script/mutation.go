package script

import (
	"sync"

	"github.com/dop251/goja"

	"github.com/chrisuehlinger/vibetext/css"
	"github.com/chrisuehlinger/vibetext/text"
)

// Mutation is a compiled style script. It implements
// richtext.StyleApplicator.
type Mutation struct {
	engine *Engine
	src    string
	prog   *goja.Program

	mu  sync.Mutex
	err error
}

// Source returns the script text.
func (m *Mutation) Source() string {
	return m.src
}

// Err returns the first error raised by an application of the script.
func (m *Mutation) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

// Apply runs the script against span. If the script fails the span is left
// unchanged and the error is recorded.
func (m *Mutation) Apply(span *text.Span) {
	e := m.engine
	e.mu.Lock()
	defer e.mu.Unlock()

	obj := e.vm.NewObject()
	exportSpan(obj, span)
	if err := e.run(m.prog, obj); err != nil {
		e.log.Warn("style script failed", "err", err)
		m.mu.Lock()
		if m.err == nil {
			m.err = err
		}
		m.mu.Unlock()
		return
	}
	importSpan(obj, span)
}

func exportSpan(obj *goja.Object, span *text.Span) {
	_ = obj.Set("text", span.AsNode().Text())
	_ = obj.Set("underline", span.Underline())
	_ = obj.Set("strikethrough", span.Strikethrough())

	if f := span.Font(); f != nil {
		_ = obj.Set("bold", f.Bold)
		_ = obj.Set("italic", f.Italic)
		_ = obj.Set("fontFamily", f.Family)
		_ = obj.Set("fontSize", f.Size)
	} else {
		_ = obj.Set("bold", false)
		_ = obj.Set("italic", false)
		_ = obj.Set("fontFamily", nil)
		_ = obj.Set("fontSize", nil)
	}

	if fg, ok := span.Foreground(); ok {
		_ = obj.Set("foreground", css.ColorToString(fg))
	} else {
		_ = obj.Set("foreground", nil)
	}
	if bg, ok := span.Background(); ok {
		_ = obj.Set("background", css.ColorToString(bg))
	} else {
		_ = obj.Set("background", nil)
	}
}

func importSpan(obj *goja.Object, span *text.Span) {
	span.SetUnderline(boolProp(obj, "underline"))
	span.SetStrikethrough(boolProp(obj, "strikethrough"))

	bold, italic := boolProp(obj, "bold"), boolProp(obj, "italic")
	family, hasFamily := stringProp(obj, "fontFamily")
	size, hasSize := intProp(obj, "fontSize")
	if f := span.Font(); f != nil || bold || italic || hasFamily || hasSize {
		font := text.DefaultFont
		if f != nil {
			font = *f
		}
		font.Bold, font.Italic = bold, italic
		if hasFamily && family != "" {
			font.Family = family
		}
		if hasSize && size > 0 {
			font.Size = size
		}
		span.SetFont(&font)
	}

	if s, ok := stringProp(obj, "foreground"); !ok {
		span.ClearForeground()
	} else if c, ok := css.ParseColor(s); ok {
		span.SetForeground(c)
	}
	if s, ok := stringProp(obj, "background"); !ok {
		span.ClearBackground()
	} else if c, ok := css.ParseColor(s); ok {
		span.SetBackground(c)
	}
}

func present(v goja.Value) bool {
	return v != nil && !goja.IsUndefined(v) && !goja.IsNull(v)
}

func boolProp(obj *goja.Object, name string) bool {
	v := obj.Get(name)
	return present(v) && v.ToBoolean()
}

func stringProp(obj *goja.Object, name string) (string, bool) {
	v := obj.Get(name)
	if !present(v) {
		return "", false
	}
	return v.String(), true
}

func intProp(obj *goja.Object, name string) (int, bool) {
	v := obj.Get(name)
	if !present(v) {
		return 0, false
	}
	return int(v.ToInteger()), true
}
