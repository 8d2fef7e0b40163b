package css

import "testing"

func TestParseDeclarations(t *testing.T) {
	decls := ParseDeclarations("font-weight: bold; fontStyle:italic ;; color : red !important; broken; text-decoration:")

	if len(decls) != 3 {
		t.Fatalf("expected 3 declarations, got %d: %v", len(decls), decls)
	}
	if decls[1].Property != "font-style" || decls[1].Value != "italic" {
		t.Errorf("unexpected second declaration %+v", decls[1])
	}
	if !decls[2].Important || decls[2].Value != "red" {
		t.Errorf("expected important red, got %+v", decls[2])
	}
}

func TestDeclarationsGetLastWins(t *testing.T) {
	decls := ParseDeclarations("color: red; COLOR: blue")
	v, ok := decls.Get("color")
	if !ok || v != "blue" {
		t.Errorf("Get(color) = %q, %v", v, ok)
	}
	if _, ok := decls.Get("backgroundColor"); ok {
		t.Error("unexpected background-color")
	}
}

func TestDeclarationsString(t *testing.T) {
	decls := Declarations{
		{Property: "font-weight", Value: "bold"},
		{Property: "color", Value: "#ff0000", Important: true},
	}
	want := "font-weight: bold; color: #ff0000 !important"
	if got := decls.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if back := ParseDeclarations(decls.String()); len(back) != 2 || back[1] != decls[1] {
		t.Errorf("reparse mismatch: %v", back)
	}
}
