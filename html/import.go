// Package html converts between HTML markup and text.Document trees using
// golang.org/x/net/html as the underlying parser implementation.
package html

import (
	"image/color"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/chrisuehlinger/vibetext/css"
	"github.com/chrisuehlinger/vibetext/text"
)

// inlineStyle accumulates formatting from the inline elements enclosing a
// text node.
type inlineStyle struct {
	hasFont       bool
	family        string
	size          int
	bold          bool
	italic        bool
	underline     bool
	strikethrough bool
	foreground    *color.RGBA
	background    *color.RGBA
}

func (s inlineStyle) empty() bool {
	return !s.hasFont && !s.underline && !s.strikethrough && s.foreground == nil && s.background == nil
}

func (s inlineStyle) applyTo(span *text.Span) {
	if s.hasFont {
		f := text.DefaultFont
		if s.family != "" {
			f.Family = s.family
		}
		if s.size > 0 {
			f.Size = s.size
		}
		f.Bold, f.Italic = s.bold, s.italic
		span.SetFont(&f)
	}
	span.SetUnderline(s.underline)
	span.SetStrikethrough(s.strikethrough)
	if s.foreground != nil {
		span.SetForeground(*s.foreground)
	}
	if s.background != nil {
		span.SetBackground(*s.background)
	}
}

// headingSizes maps heading elements to font sizes in points.
var headingSizes = map[atom.Atom]int{
	atom.H1: 24, atom.H2: 20, atom.H3: 16, atom.H4: 14, atom.H5: 12, atom.H6: 10,
}

// fontTagSizes maps the legacy <font size> scale to points.
var fontTagSizes = [...]int{0, 8, 10, 12, 14, 18, 24, 36}

type importer struct {
	doc   *text.Document
	para  *text.Paragraph
	align text.Alignment
}

// Import parses an HTML document into a text.Document.
//
// Block elements (p, div, h1-h6, li, blockquote, pre) become paragraphs and
// br ends the current paragraph. Inline formatting is flattened: each text
// node becomes one span carrying the combined style of its enclosing
// elements, or a plain text run when it has none. Text is kept verbatim;
// whitespace-only text between blocks is dropped.
func Import(r io.Reader) (*text.Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	im := &importer{doc: text.NewDocument()}
	if err := im.walk(root, inlineStyle{}); err != nil {
		return nil, err
	}
	if len(im.doc.Paragraphs()) == 0 {
		if err := im.emptyParagraph(); err != nil {
			return nil, err
		}
	}
	return im.doc, nil
}

// ImportString parses HTML from a string.
func ImportString(markup string) (*text.Document, error) {
	return Import(strings.NewReader(markup))
}

func (im *importer) walk(n *html.Node, st inlineStyle) error {
	switch n.Type {
	case html.TextNode:
		return im.addText(n.Data, st)
	case html.ElementNode:
		return im.walkElement(n, st)
	case html.DocumentNode:
		return im.walkChildren(n, st)
	}
	return nil
}

func (im *importer) walkChildren(n *html.Node, st inlineStyle) error {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := im.walk(c, st); err != nil {
			return err
		}
	}
	return nil
}

func (im *importer) walkElement(n *html.Node, st inlineStyle) error {
	switch n.DataAtom {
	case atom.Head, atom.Script, atom.Style, atom.Title, atom.Template:
		return nil
	case atom.Br:
		im.para = nil
		return nil
	case atom.B, atom.Strong:
		st.hasFont, st.bold = true, true
	case atom.I, atom.Em, atom.Cite, atom.Var:
		st.hasFont, st.italic = true, true
	case atom.U, atom.Ins:
		st.underline = true
	case atom.S, atom.Strike, atom.Del:
		st.strikethrough = true
	case atom.Font:
		if face := getAttr(n, "face"); face != "" {
			st.hasFont, st.family = true, firstFamily(face)
		}
		if size, err := strconv.Atoi(getAttr(n, "size")); err == nil && size >= 1 && size < len(fontTagSizes) {
			st.hasFont, st.size = true, fontTagSizes[size]
		}
		if c, ok := css.ParseColor(getAttr(n, "color")); ok {
			st.foreground = &c
		}
	}
	if size, ok := headingSizes[n.DataAtom]; ok {
		st.hasFont, st.bold, st.size = true, true, size
	}

	decls := css.ParseDeclarations(getAttr(n, "style"))
	st = applyDeclarations(st, decls)

	if !isBlock(n.DataAtom) {
		return im.walkChildren(n, st)
	}

	// Blocks start and end paragraphs.
	im.para = nil
	outer := im.align
	im.align = blockAlignment(n, decls, outer)
	before := len(im.doc.Paragraphs())

	if err := im.walkChildren(n, st); err != nil {
		return err
	}
	if len(im.doc.Paragraphs()) == before && n.DataAtom != atom.Div {
		if err := im.emptyParagraph(); err != nil {
			return err
		}
	}
	im.para = nil
	im.align = outer
	return nil
}

func (im *importer) addText(data string, st inlineStyle) error {
	if data == "" {
		return nil
	}
	if im.para == nil {
		if strings.TrimSpace(data) == "" {
			return nil
		}
		if err := im.openParagraph(); err != nil {
			return err
		}
	}
	if st.empty() {
		return im.para.Add(text.NewText(data).AsNode())
	}
	span := text.NewStyledSpan(data)
	st.applyTo(span)
	return im.para.Add(span.AsNode())
}

func (im *importer) openParagraph() error {
	p, err := text.NewParagraph()
	if err != nil {
		return err
	}
	p.SetAlignment(im.align)
	im.para = p
	return im.doc.Add(p)
}

func (im *importer) emptyParagraph() error {
	if err := im.openParagraph(); err != nil {
		return err
	}
	err := im.para.Add(text.NewText("").AsNode())
	im.para = nil
	return err
}

func isBlock(a atom.Atom) bool {
	switch a {
	case atom.P, atom.Div, atom.Li, atom.Blockquote, atom.Pre,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		return true
	}
	return false
}

func blockAlignment(n *html.Node, decls css.Declarations, inherited text.Alignment) text.Alignment {
	value, ok := decls.Get("text-align")
	if !ok {
		value, ok = getAttr(n, "align"), hasAttr(n, "align")
	}
	if !ok {
		return inherited
	}
	a, err := text.ParseAlignment(value)
	if err != nil {
		return inherited
	}
	return a
}

// applyDeclarations folds the inline style declarations that map onto span
// attributes into st.
func applyDeclarations(st inlineStyle, decls css.Declarations) inlineStyle {
	for _, d := range decls {
		v := strings.ToLower(d.Value)
		switch d.Property {
		case "font-weight":
			st.hasFont = true
			st.bold = v == "bold" || v == "bolder" || numericWeight(v) >= 600
		case "font-style":
			st.hasFont = true
			st.italic = v == "italic" || v == "oblique"
		case "font-family":
			st.hasFont, st.family = true, firstFamily(d.Value)
		case "font-size":
			if size, ok := parseFontSize(v); ok {
				st.hasFont, st.size = true, size
			}
		case "text-decoration", "text-decoration-line":
			if v == "none" {
				st.underline, st.strikethrough = false, false
				continue
			}
			st.underline = st.underline || strings.Contains(v, "underline")
			st.strikethrough = st.strikethrough || strings.Contains(v, "line-through")
		case "color":
			if c, ok := css.ParseColor(v); ok {
				st.foreground = &c
			}
		case "background-color", "background":
			if c, ok := css.ParseColor(v); ok {
				st.background = &c
			}
		}
	}
	return st
}

func numericWeight(v string) int {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

// parseFontSize accepts "12pt", "16px" and bare numbers (points).
func parseFontSize(v string) (int, bool) {
	px := strings.HasSuffix(v, "px")
	v = strings.TrimSuffix(strings.TrimSuffix(v, "px"), "pt")
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || f <= 0 {
		return 0, false
	}
	if px {
		f = f * 3 / 4
	}
	return int(f + 0.5), true
}

// firstFamily returns the first family of a font-family list, unquoted.
func firstFamily(v string) string {
	first, _, _ := strings.Cut(v, ",")
	return strings.Trim(strings.TrimSpace(first), `"'`)
}

func getAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}
