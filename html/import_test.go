package html

import (
	"image/color"
	"testing"

	"github.com/chrisuehlinger/vibetext/text"
)

func TestImport_ParagraphsAndRuns(t *testing.T) {
	doc, err := ImportString(`<!DOCTYPE html>
<html>
<head><title>Ignored</title><style>p { color: red }</style></head>
<body>
<p>Hello <b>bold <i>both</i></b> plain</p>
<p style="text-align: center">Second</p>
</body>
</html>`)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	want := "Document\n" +
		"  Paragraph\n" +
		"    Text \"Hello \"\n" +
		"    Span [font=Arial BOLD 12]\n" +
		"      Text \"bold \"\n" +
		"    Span [font=Arial BOLDITALIC 12]\n" +
		"      Text \"both\"\n" +
		"    Text \" plain\"\n" +
		"  Paragraph [align=center]\n" +
		"    Text \"Second\"\n"
	if got := text.DumpString(doc.AsNode()); got != want {
		t.Errorf("unexpected tree:\n%s\nwant:\n%s", got, want)
	}
	if err := doc.Validate(); err != nil {
		t.Errorf("invalid tree: %v", err)
	}
}

func TestImport_InlineStyles(t *testing.T) {
	doc, err := ImportString(`<p><span style="font-family: 'Times New Roman', serif; font-size: 16px; ` +
		`text-decoration: underline line-through; color: #00f; background-color: yellow">x</span></p>`)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	s := doc.Paragraphs()[0].AsNode().Child(0).AsSpan()
	if s == nil {
		t.Fatal("expected a span")
	}
	if f := s.Font(); f == nil || *f != (text.Font{Family: "Times New Roman", Size: 12}) {
		t.Errorf("unexpected font %v", f)
	}
	if !s.Underline() || !s.Strikethrough() {
		t.Error("expected underline and strikethrough")
	}
	if fg, ok := s.Foreground(); !ok || fg != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("unexpected foreground %v", fg)
	}
	if bg, ok := s.Background(); !ok || bg != (color.RGBA{R: 255, G: 255, A: 255}) {
		t.Errorf("unexpected background %v", bg)
	}
}

func TestImport_BlocksBreaksAndHeadings(t *testing.T) {
	doc, err := ImportString(`<h1 align="right">Title</h1>loose text<br>after break<div><p></p></div><font face="Courier" size="5" color="red">f</font>`)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	lines := doc.Lines()
	want := []string{"Title", "loose text", "after break", "", "f"}
	if len(lines) != len(want) {
		t.Fatalf("got paragraphs %q, want %q", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("paragraph %d = %q, want %q", i, lines[i], want[i])
		}
	}

	ps := doc.Paragraphs()
	if ps[0].Alignment() != text.AlignRight {
		t.Errorf("heading alignment = %v", ps[0].Alignment())
	}
	title := ps[0].AsNode().Child(0).AsSpan()
	if title == nil || title.Font() == nil || !title.Font().Bold || title.Font().Size != 24 {
		t.Errorf("heading should be bold 24pt")
	}
	f := ps[4].AsNode().Child(0).AsSpan()
	if f == nil || f.Font().Family != "Courier" || f.Font().Size != 18 {
		t.Errorf("unexpected font tag conversion")
	}
}

func TestImport_EmptyInput(t *testing.T) {
	doc, err := ImportString("")
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if len(doc.Paragraphs()) != 1 || doc.CharacterCount() != 0 {
		t.Errorf("expected one empty paragraph, got %q", doc.Lines())
	}
}

func TestImport_WeightOverride(t *testing.T) {
	doc, err := ImportString(`<p><b>a<span style="font-weight: normal">b</span><span style="font-weight: 700">c</span></b></p>`)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	p := doc.Paragraphs()[0].AsNode()
	bolds := []bool{true, false, true}
	for i, want := range bolds {
		s := p.Child(i).AsSpan()
		if s == nil || s.Font().Bold != want {
			t.Errorf("child %d bold mismatch, want %v", i, want)
		}
	}
}
