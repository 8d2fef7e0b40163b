package text

// Paragraph is a block of text runs and spans.
type Paragraph Node

// NewParagraph creates a new detached paragraph holding the given nodes.
// It returns an error if a node is not a Text or Span.
func NewParagraph(children ...*Node) (*Paragraph, error) {
	p := (*Paragraph)(newNode(ParagraphNode))
	for _, c := range children {
		if err := p.Add(c); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// AsNode returns the underlying Node.
func (p *Paragraph) AsNode() *Node {
	return (*Node)(p)
}

// Add appends a Text or Span to the paragraph.
func (p *Paragraph) Add(child *Node) error {
	_, err := p.AsNode().Append(child)
	return err
}

// Alignment returns the paragraph's horizontal alignment.
func (p *Paragraph) Alignment() Alignment {
	return p.alignment
}

// SetAlignment sets the paragraph's horizontal alignment.
func (p *Paragraph) SetAlignment(a Alignment) {
	p.alignment = a
}

// ParagraphOf returns the paragraph containing n, or nil.
func ParagraphOf(n *Node) *Paragraph {
	for node := n; node != nil; node = node.parent {
		if node.nodeType == ParagraphNode {
			return (*Paragraph)(node)
		}
	}
	return nil
}
