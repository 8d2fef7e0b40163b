package text

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes an indented description of the tree rooted at n to w, one
// node per line.
func Dump(w io.Writer, n *Node) error {
	return dumpNode(w, n, 0)
}

// DumpString returns the output of Dump as a string.
func DumpString(n *Node) string {
	var sb strings.Builder
	_ = Dump(&sb, n)
	return sb.String()
}

// Describe returns the one-line description of n used by Dump.
func Describe(n *Node) string {
	switch n.nodeType {
	case TextNode:
		return fmt.Sprintf("Text %q", n.text)
	case SpanNode:
		if st := n.style.String(); st != "" {
			return "Span [" + st + "]"
		}
		return "Span"
	case ParagraphNode:
		if n.alignment != AlignLeft {
			return "Paragraph [align=" + n.alignment.String() + "]"
		}
		return "Paragraph"
	default:
		return n.nodeType.String()
	}
}

func dumpNode(w io.Writer, n *Node, indent int) error {
	if _, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", indent), Describe(n)); err != nil {
		return err
	}
	for _, child := range n.children {
		if err := dumpNode(w, child, indent+1); err != nil {
			return err
		}
	}
	return nil
}
