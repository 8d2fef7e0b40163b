package richtext

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/chrisuehlinger/vibetext/text"
)

// Editor pairs a document with the user's current selection.
type Editor struct {
	doc       *text.Document
	selection *text.Selection
	log       *slog.Logger
}

// EditorOption configures an Editor.
type EditorOption func(*Editor)

// WithLogger sets the logger used by the editor.
func WithLogger(log *slog.Logger) EditorOption {
	return func(e *Editor) {
		e.log = log
	}
}

// NewEditor creates an editor over doc with nothing selected.
func NewEditor(doc *text.Document, opts ...EditorOption) *Editor {
	e := &Editor{
		doc: doc,
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log = e.log.With("component", "editor")
	return e
}

// Document returns the edited document.
func (e *Editor) Document() *text.Document {
	return e.doc
}

// SetDocument replaces the edited document and clears the selection.
func (e *Editor) SetDocument(doc *text.Document) {
	e.doc = doc
	e.selection = nil
}

// Select selects length characters starting at start. A zero length places
// the caret at start.
func (e *Editor) Select(start, length int) error {
	if start < 0 || length < 0 || start+length > e.doc.CharacterCount() {
		return text.ErrIndexSize(fmt.Sprintf("selection (%d, %d) outside document of %d characters",
			start, length, e.doc.CharacterCount()))
	}
	sel := text.NewSelection(start, length)
	e.selection = &sel
	return nil
}

// SelectAll selects the whole document.
func (e *Editor) SelectAll() {
	sel := text.Selection{Start: 0, End: e.doc.CharacterCount()}
	e.selection = &sel
}

// ClearSelection removes the selection.
func (e *Editor) ClearSelection() {
	e.selection = nil
}

// Selection returns the current selection and whether there is one.
func (e *Editor) Selection() (text.Selection, bool) {
	if e.selection == nil {
		return text.Selection{}, false
	}
	return *e.selection, true
}

// SelectedText returns the characters in the selection.
func (e *Editor) SelectedText() string {
	if e.selection == nil || e.selection.IsEmpty() {
		return ""
	}
	return text.NewText(e.doc.Text()).Substring(e.selection.Start, e.selection.End)
}

// ApplyStyleToSelection applies a to the selected characters and restores
// the selection afterwards. With nothing selected it does nothing.
func (e *Editor) ApplyStyleToSelection(a StyleApplicator) error {
	if e.selection == nil {
		return nil
	}
	start, length := e.selection.Start, e.selection.Length()
	if err := ApplyStyle(e.doc, *e.selection, a); err != nil {
		return err
	}
	e.log.Debug("applied style", "start", start, "length", length)

	// Offsets are stable: restyling never changes the character count.
	return e.Select(start, length)
}

// ApplyAlignment sets the alignment of every paragraph intersecting the
// selection. With a caret it aligns the paragraph holding the caret.
func (e *Editor) ApplyAlignment(a text.Alignment) error {
	if e.selection == nil {
		return nil
	}
	sel := *e.selection
	aligned := 0
	if sel.IsEmpty() {
		p := text.ParagraphOf(e.doc.AsNode().DescendantAt(sel.Start))
		if ps := e.doc.Paragraphs(); p == nil && len(ps) > 0 {
			p = ps[len(ps)-1]
		}
		if p != nil {
			p.SetAlignment(a)
			aligned++
		}
	} else {
		for _, p := range e.doc.Paragraphs() {
			if sel.Intersects(text.SpanOf(p.AsNode())) {
				p.SetAlignment(a)
				aligned++
			}
		}
	}
	e.log.Debug("applied alignment", "alignment", a.String(), "paragraphs", aligned)
	return nil
}

// Text returns the document's characters.
func (e *Editor) Text() string {
	return e.doc.Text()
}

// Dump writes the document tree to w.
func (e *Editor) Dump(w io.Writer) error {
	return text.Dump(w, e.doc.AsNode())
}
