package html

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/chrisuehlinger/vibetext/css"
	"github.com/chrisuehlinger/vibetext/text"
)

// Export writes doc as an HTML document: one <p> per paragraph and one
// <span style="..."> per span. The output imports back into an equivalent
// document.
func Export(w io.Writer, doc *text.Document) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\"></head><body>\n")
	for _, p := range doc.Paragraphs() {
		if err := html.Render(bw, paragraphNode(p)); err != nil {
			return err
		}
		bw.WriteString("\n")
	}
	bw.WriteString("</body></html>\n")
	return bw.Flush()
}

// ExportString returns the output of Export as a string.
func ExportString(doc *text.Document) (string, error) {
	var sb strings.Builder
	if err := Export(&sb, doc); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func paragraphNode(p *text.Paragraph) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: "p", DataAtom: atom.P}
	if a := p.Alignment(); a != text.AlignLeft {
		n.Attr = append(n.Attr, html.Attribute{Key: "style", Val: "text-align: " + a.String()})
	}
	for _, c := range p.AsNode().Children() {
		if s := c.AsSpan(); s != nil {
			n.AppendChild(spanNode(s))
			continue
		}
		if c.CharacterCount() > 0 {
			n.AppendChild(&html.Node{Type: html.TextNode, Data: c.Text()})
		}
	}
	return n
}

func spanNode(s *text.Span) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: "span", DataAtom: atom.Span}
	if style := spanDeclarations(s).String(); style != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "style", Val: style})
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: s.AsNode().Text()})
	return n
}

func spanDeclarations(s *text.Span) css.Declarations {
	var decls css.Declarations
	add := func(property, value string) {
		decls = append(decls, css.Declaration{Property: property, Value: value})
	}

	if f := s.Font(); f != nil {
		family := f.Family
		if strings.ContainsAny(family, " ,") {
			family = "'" + family + "'"
		}
		add("font-family", family)
		add("font-size", strconv.Itoa(f.Size)+"pt")
		if f.Bold {
			add("font-weight", "bold")
		} else {
			add("font-weight", "normal")
		}
		if f.Italic {
			add("font-style", "italic")
		} else {
			add("font-style", "normal")
		}
	}

	var deco []string
	if s.Underline() {
		deco = append(deco, "underline")
	}
	if s.Strikethrough() {
		deco = append(deco, "line-through")
	}
	if len(deco) > 0 {
		add("text-decoration", strings.Join(deco, " "))
	}
	if fg, ok := s.Foreground(); ok {
		add("color", css.ColorToString(fg))
	}
	if bg, ok := s.Background(); ok {
		add("background-color", css.ColorToString(bg))
	}
	return decls
}
