package text

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// Node represents a node in the document tree. Document, Paragraph, Span
// and Text are typed views over Node.
type Node struct {
	nodeType NodeType
	parent   *Node

	// offset is the position of the node's first character within its
	// parent; characterCount covers the node and its whole subtree.
	offset         int
	characterCount int
	children       []*Node

	// Type-specific data (only one is meaningful based on nodeType)
	text      string
	style     *spanStyle
	alignment Alignment
}

// newNode creates a new detached node of the given type.
func newNode(nodeType NodeType) *Node {
	n := &Node{nodeType: nodeType}
	if nodeType == SpanNode {
		n.style = &spanStyle{}
	}
	return n
}

// NodeType returns the type of the node.
func (n *Node) NodeType() NodeType {
	return n.nodeType
}

// Parent returns the containing element, or nil for a root or detached node.
func (n *Node) Parent() *Node {
	return n.parent
}

// Offset returns the offset of the node's first character within its parent.
func (n *Node) Offset() int {
	return n.offset
}

// DocumentOffset returns the offset of the node's first character within
// the whole tree.
func (n *Node) DocumentOffset() int {
	offset := 0
	for node := n; node.parent != nil; node = node.parent {
		offset += node.offset
	}
	return offset
}

// CharacterCount returns the number of characters spanned by the node and
// its subtree.
func (n *Node) CharacterCount() int {
	return n.characterCount
}

// ChildCount returns the number of children.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// Child returns the child at index, or nil if the index is out of range.
func (n *Node) Child(index int) *Node {
	if index < 0 || index >= len(n.children) {
		return nil
	}
	return n.children[index]
}

// Children returns a copy of the node's child list.
func (n *Node) Children() []*Node {
	children := make([]*Node, len(n.children))
	copy(children, n.children)
	return children
}

// IndexOf returns the index of child within this node, or -1.
func (n *Node) IndexOf(child *Node) int {
	if child == nil || child.parent != n {
		return -1
	}
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

// Root returns the topmost ancestor of the node.
func (n *Node) Root() *Node {
	root := n
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// Insert inserts child at index. The child must be detached and of a kind
// this node accepts.
func (n *Node) Insert(child *Node, index int) error {
	if child == nil {
		return ErrHierarchyRequest("cannot insert a nil node")
	}
	if !n.nodeType.allowsChild(child.nodeType) {
		return ErrHierarchyRequest(fmt.Sprintf("%s cannot contain %s", n.nodeType, child.nodeType))
	}
	if child.parent != nil {
		return ErrHierarchyRequest("node already has a parent")
	}
	if index < 0 || index > len(n.children) {
		return ErrIndexSize(fmt.Sprintf("index %d out of range [0, %d]", index, len(n.children)))
	}

	offset := n.characterCount
	if index < len(n.children) {
		offset = n.children[index].offset
	}

	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child

	child.parent = n
	child.offset = offset
	for _, sibling := range n.children[index+1:] {
		sibling.offset += child.characterCount
	}
	n.adjustCount(child.characterCount)
	return nil
}

// Append adds child as the last child and returns its index.
func (n *Node) Append(child *Node) (int, error) {
	index := len(n.children)
	if err := n.Insert(child, index); err != nil {
		return -1, err
	}
	return index, nil
}

// Remove detaches child and returns the index it occupied.
func (n *Node) Remove(child *Node) (int, error) {
	index := n.IndexOf(child)
	if index < 0 {
		return -1, ErrNotFound("the node is not a child of this node")
	}
	_, err := n.RemoveAt(index)
	return index, err
}

// RemoveAt detaches and returns the child at index.
func (n *Node) RemoveAt(index int) (*Node, error) {
	if index < 0 || index >= len(n.children) {
		return nil, ErrIndexSize(fmt.Sprintf("index %d out of range [0, %d)", index, len(n.children)))
	}
	child := n.children[index]
	copy(n.children[index:], n.children[index+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]

	for _, sibling := range n.children[index:] {
		sibling.offset -= child.characterCount
	}
	child.parent = nil
	child.offset = 0
	n.adjustCount(-child.characterCount)
	return child, nil
}

// adjustCount adds delta to the character count of n and its ancestors and
// shifts the offsets of every following sibling along the way.
func (n *Node) adjustCount(delta int) {
	if delta == 0 {
		return
	}
	for node := n; node != nil; node = node.parent {
		node.characterCount += delta
		p := node.parent
		if p == nil {
			continue
		}
		for i := p.IndexOf(node) + 1; i < len(p.children); i++ {
			p.children[i].offset += delta
		}
	}
}

// Text returns the characters of the node and its subtree.
func (n *Node) Text() string {
	if n.nodeType == TextNode {
		return n.text
	}
	var sb strings.Builder
	n.collectText(&sb)
	return sb.String()
}

func (n *Node) collectText(sb *strings.Builder) {
	for _, child := range n.children {
		if child.nodeType == TextNode {
			sb.WriteString(child.text)
		} else {
			child.collectText(sb)
		}
	}
}

// NodeAt returns the index of the child containing the character at offset,
// or -1 if offset is outside the node.
func (n *Node) NodeAt(offset int) int {
	if offset < 0 || offset >= n.characterCount {
		return -1
	}
	i := sort.Search(len(n.children), func(i int) bool {
		c := n.children[i]
		return c.offset+c.characterCount > offset
	})
	if i == len(n.children) {
		return -1
	}
	return i
}

// DescendantAt returns the deepest node containing the character at offset,
// or nil if offset is outside the node.
func (n *Node) DescendantAt(offset int) *Node {
	if offset < 0 || offset >= n.characterCount {
		return nil
	}
	node := n
	for node.nodeType.IsElement() {
		i := node.NodeAt(offset)
		if i < 0 {
			break
		}
		child := node.children[i]
		offset -= child.offset
		node = child
	}
	return node
}

// Range returns a detached copy of count characters starting at offset.
// For elements the copy is a duplicate of the element, carrying the same
// attributes, whose children are the copied segments.
func (n *Node) Range(offset, count int) (*Node, error) {
	if offset < 0 || count < 0 || offset+count > n.characterCount {
		return nil, ErrIndexSize(fmt.Sprintf("range [%d, %d) outside [0, %d)", offset, offset+count, n.characterCount))
	}
	if n.nodeType == TextNode {
		return NewText(substring(n.text, offset, offset+count)).AsNode(), nil
	}

	rng := n.Duplicate(false)
	end := offset + count
	for _, child := range n.children {
		childStart, childEnd := child.offset, child.offset+child.characterCount
		if childEnd <= offset || childStart >= end || child.characterCount == 0 {
			continue
		}
		from := max(offset, childStart) - childStart
		to := min(end, childEnd) - childStart
		segment, err := child.Range(from, to-from)
		if err != nil {
			return nil, err
		}
		if _, err := rng.Append(segment); err != nil {
			return nil, err
		}
	}
	return rng, nil
}

// Duplicate returns a detached copy of the node. Children are copied only
// when recursive is true.
func (n *Node) Duplicate(recursive bool) *Node {
	d := newNode(n.nodeType)
	d.alignment = n.alignment
	if n.style != nil {
		d.style = n.style.clone()
	}
	if n.nodeType == TextNode {
		d.text = n.text
		d.characterCount = n.characterCount
		return d
	}
	if recursive {
		for _, child := range n.children {
			// A duplicate of an allowed child is always allowed.
			_, _ = d.Append(child.Duplicate(true))
		}
	}
	return d
}

// Validate checks the structural invariants of the subtree rooted at n:
// allowed child kinds, parent links, child offsets and character counts.
func (n *Node) Validate() error {
	if n.nodeType == TextNode {
		if got := utf8.RuneCountInString(n.text); got != n.characterCount {
			return ErrInvalidState(fmt.Sprintf("text node holds %d characters but reports %d", got, n.characterCount))
		}
		return nil
	}
	sum := 0
	for i, child := range n.children {
		if child.parent != n {
			return ErrInvalidState(fmt.Sprintf("%s child %d has a wrong parent link", n.nodeType, i))
		}
		if !n.nodeType.allowsChild(child.nodeType) {
			return ErrInvalidState(fmt.Sprintf("%s cannot contain %s", n.nodeType, child.nodeType))
		}
		if child.offset != sum {
			return ErrInvalidState(fmt.Sprintf("%s child %d at offset %d, expected %d", n.nodeType, i, child.offset, sum))
		}
		if err := child.Validate(); err != nil {
			return err
		}
		sum += child.characterCount
	}
	if sum != n.characterCount {
		return ErrInvalidState(fmt.Sprintf("%s reports %d characters but its children hold %d", n.nodeType, n.characterCount, sum))
	}
	return nil
}

// AsText returns the node as a Text, or nil if it is not a text node.
func (n *Node) AsText() *Text {
	if n == nil || n.nodeType != TextNode {
		return nil
	}
	return (*Text)(n)
}

// AsSpan returns the node as a Span, or nil if it is not a span.
func (n *Node) AsSpan() *Span {
	if n == nil || n.nodeType != SpanNode {
		return nil
	}
	return (*Span)(n)
}

// AsParagraph returns the node as a Paragraph, or nil if it is not one.
func (n *Node) AsParagraph() *Paragraph {
	if n == nil || n.nodeType != ParagraphNode {
		return nil
	}
	return (*Paragraph)(n)
}

// AsDocument returns the node as a Document, or nil if it is not one.
func (n *Node) AsDocument() *Document {
	if n == nil || n.nodeType != DocumentNode {
		return nil
	}
	return (*Document)(n)
}

// substring returns the characters [start, end) of s, counted in runes.
func substring(s string, start, end int) string {
	from, to := len(s), len(s)
	i := 0
	for byteIndex := range s {
		if i == start {
			from = byteIndex
		}
		if i == end {
			to = byteIndex
			break
		}
		i++
	}
	return s[from:to]
}
