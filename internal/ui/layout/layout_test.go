package layout

import (
	"strings"
	"testing"

	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"
)

func TestIsTooSmall(t *testing.T) {
	if !IsTooSmall(MinWidth-1, MinHeight) {
		t.Error("expected too small below MinWidth")
	}
	if !IsTooSmall(MinWidth, MinHeight-1) {
		t.Error("expected too small below MinHeight")
	}
	if IsTooSmall(MinWidth, MinHeight) {
		t.Error("minimum size should fit")
	}
}

func TestRenderHeader_ThemeGlyph(t *testing.T) {
	if h := RenderHeader("Questions", true, 80); !strings.Contains(h, "dark") {
		t.Error("dark header should name the dark theme")
	}
	if h := RenderHeader("Questions", false, 80); !strings.Contains(h, "light") {
		t.Error("light header should name the light theme")
	}
}

func TestRenderFrame_Height(t *testing.T) {
	header := RenderHeader("t", false, 80)
	footer := RenderFooter([]KeyHint{{Key: "q", Description: "Quit"}}, 80)
	frame := RenderFrame(header, "body", footer, 80, 24)
	if got := lipgloss.Height(frame); got != 24 {
		t.Errorf("frame height = %d, want 24", got)
	}
}

func TestHintsFromBindings(t *testing.T) {
	on := key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "Submit"))
	off := key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "Hidden"), key.WithDisabled())
	noHelp := key.NewBinding(key.WithKeys("y"))

	hints := HintsFromBindings([]key.Binding{on, off, noHelp})
	if len(hints) != 1 {
		t.Fatalf("hints = %v, want one", hints)
	}
	if hints[0].Key != "s" || hints[0].Description != "Submit" {
		t.Errorf("hint = %+v", hints[0])
	}
}
