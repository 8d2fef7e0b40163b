package text

import "fmt"

// Selection is a half-open character range [Start, End) over a document.
type Selection struct {
	Start int
	End   int
}

// NewSelection returns the selection of length characters starting at start.
func NewSelection(start, length int) Selection {
	return Selection{Start: start, End: start + length}
}

// Length returns the number of selected characters.
func (s Selection) Length() int {
	return s.End - s.Start
}

// IsEmpty reports whether no character is selected.
func (s Selection) IsEmpty() bool {
	return s.End <= s.Start
}

// Intersects reports whether s and other share at least one character.
func (s Selection) Intersects(other Selection) bool {
	return s.Start < other.End && other.Start < s.End
}

// Contains reports whether every character of other is inside s.
func (s Selection) Contains(other Selection) bool {
	return s.Start <= other.Start && other.End <= s.End
}

func (s Selection) String() string {
	return fmt.Sprintf("[%d, %d)", s.Start, s.End)
}

// SpanOf returns the character range covered by n within its tree.
func SpanOf(n *Node) Selection {
	offset := n.DocumentOffset()
	return Selection{Start: offset, End: offset + n.characterCount}
}
