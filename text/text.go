package text

import "unicode/utf8"

// Text represents a plain text run.
type Text Node

// NewText creates a new detached text node.
func NewText(data string) *Text {
	n := newNode(TextNode)
	n.text = data
	n.characterCount = utf8.RuneCountInString(data)
	return (*Text)(n)
}

// AsNode returns the underlying Node.
func (t *Text) AsNode() *Node {
	return (*Node)(t)
}

// Data returns the text content.
func (t *Text) Data() string {
	return t.text
}

// SetData replaces the text content, updating the counts of every ancestor.
func (t *Text) SetData(data string) {
	delta := utf8.RuneCountInString(data) - t.characterCount
	t.text = data
	t.AsNode().adjustCount(delta)
}

// Length returns the number of characters in the run.
func (t *Text) Length() int {
	return t.characterCount
}

// Substring returns the characters [start, end) of the run. Bounds are
// clamped to the run.
func (t *Text) Substring(start, end int) string {
	start = max(0, min(start, t.characterCount))
	end = max(start, min(end, t.characterCount))
	return substring(t.text, start, end)
}

// SplitText splits this text node at offset and returns a new text node
// holding the characters after it. When the node has a parent, the new
// node is inserted right after it.
func (t *Text) SplitText(offset int) (*Text, error) {
	if offset < 0 || offset > t.characterCount {
		return nil, ErrIndexSize("split offset outside the text")
	}
	data := t.text
	newText := NewText(substring(data, offset, t.characterCount))
	t.SetData(substring(data, 0, offset))

	if parent := t.parent; parent != nil {
		if err := parent.Insert(newText.AsNode(), parent.IndexOf(t.AsNode())+1); err != nil {
			return nil, err
		}
	}
	return newText, nil
}
