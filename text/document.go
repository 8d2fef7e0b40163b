package text

import "strings"

// Document is the root of a rich-text tree. Its children are paragraphs.
type Document Node

// NewDocument creates an empty document.
func NewDocument() *Document {
	return (*Document)(newNode(DocumentNode))
}

// NewDocumentFromString creates a document with one unstyled paragraph per
// line of s.
func NewDocumentFromString(s string) *Document {
	doc := NewDocument()
	for _, line := range strings.Split(s, "\n") {
		p := (*Paragraph)(newNode(ParagraphNode))
		// Paragraphs always accept text, and documents paragraphs.
		_ = p.Add(NewText(line).AsNode())
		_ = doc.Add(p)
	}
	return doc
}

// AsNode returns the underlying Node.
func (d *Document) AsNode() *Node {
	return (*Node)(d)
}

// Add appends a paragraph to the document.
func (d *Document) Add(p *Paragraph) error {
	_, err := d.AsNode().Append(p.AsNode())
	return err
}

// Paragraphs returns the document's paragraphs in order.
func (d *Document) Paragraphs() []*Paragraph {
	ps := make([]*Paragraph, 0, len(d.children))
	for _, c := range d.children {
		ps = append(ps, (*Paragraph)(c))
	}
	return ps
}

// CharacterCount returns the number of characters in the document.
func (d *Document) CharacterCount() int {
	return d.characterCount
}

// Text returns the characters of the document. Paragraphs are not
// separated, so offsets into the result are document offsets.
func (d *Document) Text() string {
	return d.AsNode().Text()
}

// Lines returns the text of each paragraph.
func (d *Document) Lines() []string {
	lines := make([]string, 0, len(d.children))
	for _, c := range d.children {
		lines = append(lines, c.Text())
	}
	return lines
}

// Validate checks the invariants of the whole tree.
func (d *Document) Validate() error {
	return d.AsNode().Validate()
}
