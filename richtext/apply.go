// Package richtext applies style mutations to character ranges of a
// text.Document, splitting text runs and spans so that exactly the selected
// characters are restyled.
package richtext

import (
	"errors"
	"fmt"

	"github.com/chrisuehlinger/vibetext/text"
)

// collected is a node snapshot taken before any mutation. Offsets stay
// valid for the whole pass because restyling never changes the character
// count.
type collected struct {
	node *text.Node
	span text.Selection
}

// ApplyStyle restructures doc so that every character in sel is covered by
// a span to which a was applied, and no other character is. Text runs that
// intersect sel are wrapped in new spans; existing spans are split and the
// selected fragment restyled. Content and the total character count are
// unchanged.
//
// An empty selection is a no-op. The tree is validated before the first
// mutation; a corrupted tree or an out-of-range selection leaves it
// untouched.
func ApplyStyle(doc *text.Document, sel text.Selection, a StyleApplicator) error {
	if doc == nil {
		return errors.New("richtext: nil document")
	}
	if a == nil {
		return errors.New("richtext: nil style applicator")
	}
	if sel.IsEmpty() {
		return nil
	}
	if sel.Start < 0 || sel.End > doc.CharacterCount() {
		return text.ErrIndexSize(fmt.Sprintf("selection %s outside document of %d characters", sel, doc.CharacterCount()))
	}
	if err := doc.Validate(); err != nil {
		return fmt.Errorf("richtext: refusing to restyle corrupted document: %w", err)
	}

	// The tree cannot be changed while it is walked, so snapshot first.
	var nodes []collected
	collectNodes(doc.AsNode(), &nodes)

	for _, c := range nodes {
		if !sel.Intersects(c.span) {
			continue
		}
		var err error
		switch c.node.NodeType() {
		case text.TextNode:
			err = applyToText(sel, a, c.node.AsText(), c.span)
		case text.SpanNode:
			err = applyToSpan(sel, a, c.node.AsSpan(), c.span)
		}
		if err != nil {
			return fmt.Errorf("richtext: restyling %s at %s: %w", c.node.NodeType(), c.span, err)
		}
	}
	return nil
}

// collectNodes appends every text run and span below n in document order.
// Span children are not visited: a span is restyled as a unit.
func collectNodes(n *text.Node, nodes *[]collected) {
	if n.NodeType() == text.SpanNode {
		return
	}
	for _, child := range n.Children() {
		switch child.NodeType() {
		case text.TextNode, text.SpanNode:
			*nodes = append(*nodes, collected{node: child, span: text.SpanOf(child)})
		}
		collectNodes(child, nodes)
	}
}

// applyToText restyles the part of a text run covered by sel. The styled
// part is moved into a new span.
func applyToText(sel text.Selection, a StyleApplicator, run *text.Text, span text.Selection) error {
	count := span.Length()
	wrap := func(data string) *text.Node {
		s := text.NewStyledSpan(data)
		a.Apply(s)
		return s.AsNode()
	}
	plain := func(data string) *text.Node {
		return text.NewText(data).AsNode()
	}

	switch {
	case sel.Contains(span):
		return replace(run.AsNode(), wrap(run.Data()))
	case sel.Start <= span.Start:
		n := sel.End - span.Start
		return replace(run.AsNode(), wrap(run.Substring(0, n)), plain(run.Substring(n, count)))
	case sel.End >= span.End:
		n := sel.Start - span.Start
		return replace(run.AsNode(), plain(run.Substring(0, n)), wrap(run.Substring(n, count)))
	default:
		from, to := sel.Start-span.Start, sel.End-span.Start
		return replace(run.AsNode(),
			plain(run.Substring(0, from)),
			wrap(run.Substring(from, to)),
			plain(run.Substring(to, count)))
	}
}

// applyToSpan restyles the part of a span covered by sel. Fragments outside
// the selection keep the span's prior attributes.
func applyToSpan(sel text.Selection, a StyleApplicator, s *text.Span, span text.Selection) error {
	if sel.Contains(span) {
		a.Apply(s)
		return nil
	}

	count := span.Length()
	var cuts []int
	styled := 0
	switch {
	case sel.Start <= span.Start:
		cuts = []int{0, sel.End - span.Start, count}
	case sel.End >= span.End:
		cuts = []int{0, sel.Start - span.Start, count}
		styled = 1
	default:
		cuts = []int{0, sel.Start - span.Start, sel.End - span.Start, count}
		styled = 1
	}

	fragments := make([]*text.Node, 0, len(cuts)-1)
	for i := 0; i+1 < len(cuts); i++ {
		fragment, err := s.AsNode().Range(cuts[i], cuts[i+1]-cuts[i])
		if err != nil {
			return err
		}
		if i == styled {
			a.Apply(fragment.AsSpan())
		}
		fragments = append(fragments, fragment)
	}
	return replace(s.AsNode(), fragments...)
}

// replace swaps old for the given nodes at old's index in its parent.
func replace(old *text.Node, nodes ...*text.Node) error {
	parent := old.Parent()
	if parent == nil {
		return text.ErrInvalidState("node has no parent")
	}
	index, err := parent.Remove(old)
	if err != nil {
		return err
	}
	for i, n := range nodes {
		if err := parent.Insert(n, index+i); err != nil {
			return err
		}
	}
	return nil
}
