package theme

import "testing"

func TestUseDark(t *testing.T) {
	t.Cleanup(func() { Use(Light) })

	UseDark(true)
	if !IsDark() {
		t.Error("expected dark palette after UseDark(true)")
	}
	if Text != Dark.Text {
		t.Error("Text color not switched to dark palette")
	}

	UseDark(false)
	if IsDark() {
		t.Error("expected light palette after UseDark(false)")
	}
	if Bg != Light.Bg {
		t.Error("Bg color not switched to light palette")
	}
}

func TestDefaultIsLight(t *testing.T) {
	if Active().Name != "light" {
		t.Errorf("default palette = %q, want light", Active().Name)
	}
}
