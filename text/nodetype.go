// Package text provides the rich-text document tree: a document of
// paragraphs holding plain text runs and style spans, with character
// offsets kept consistent across structural edits.
package text

// NodeType represents the kind of a Node.
type NodeType uint8

const (
	// DocumentNode is the root of a tree.
	DocumentNode NodeType = iota + 1
	// ParagraphNode is a block container of text runs and spans.
	ParagraphNode
	// SpanNode carries style attributes over its text runs.
	SpanNode
	// TextNode is a leaf holding plain text.
	TextNode
)

// String returns the string representation of the NodeType.
func (nt NodeType) String() string {
	switch nt {
	case DocumentNode:
		return "Document"
	case ParagraphNode:
		return "Paragraph"
	case SpanNode:
		return "Span"
	case TextNode:
		return "Text"
	default:
		return "Unknown"
	}
}

// IsElement reports whether nodes of this type can hold children.
func (nt NodeType) IsElement() bool {
	return nt == DocumentNode || nt == ParagraphNode || nt == SpanNode
}

// allowsChild reports whether a node of type child may be inserted
// under a node of type nt.
func (nt NodeType) allowsChild(child NodeType) bool {
	switch nt {
	case DocumentNode:
		return child == ParagraphNode
	case ParagraphNode:
		return child == TextNode || child == SpanNode
	case SpanNode:
		return child == TextNode
	default:
		return false
	}
}
