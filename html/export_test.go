package html

import (
	"image/color"
	"strings"
	"testing"

	"github.com/chrisuehlinger/vibetext/text"
)

func TestExport(t *testing.T) {
	span := text.NewStyledSpan("World")
	span.SetFont(&text.Font{Family: "Arial", Size: 12, Bold: true})
	span.SetUnderline(true)
	span.SetForeground(color.RGBA{R: 255, A: 255})
	p, err := text.NewParagraph(text.NewText("Hello <").AsNode(), span.AsNode())
	if err != nil {
		t.Fatal(err)
	}
	p.SetAlignment(text.AlignCenter)
	doc := text.NewDocument()
	if err := doc.Add(p); err != nil {
		t.Fatal(err)
	}

	out, err := ExportString(doc)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	want := `<p style="text-align: center">Hello &lt;<span style="font-family: Arial; font-size: 12pt; ` +
		`font-weight: bold; font-style: normal; text-decoration: underline; color: #ff0000">World</span></p>`
	if !strings.Contains(out, want) {
		t.Errorf("export missing paragraph\n got: %s\nwant: %s", out, want)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	original, err := ImportString(`<p>plain <span style="font-family: 'Times New Roman'; font-style: italic">it</span></p>` +
		`<p style="text-align: right"><s>gone</s> <span style="background-color: #123456">bg</span></p><p></p>`)
	if err != nil {
		t.Fatal(err)
	}
	out, err := ExportString(original)
	if err != nil {
		t.Fatal(err)
	}
	back, err := ImportString(out)
	if err != nil {
		t.Fatal(err)
	}
	if a, b := text.DumpString(original.AsNode()), text.DumpString(back.AsNode()); a != b {
		t.Errorf("round trip changed the tree:\n%s\nvs\n%s", a, b)
	}
}
