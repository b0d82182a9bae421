package theme

import (
	"testing"

	"github.com/abhisek/rivalgoals/internal/state"
)

func TestApply(t *testing.T) {
	t.Cleanup(func() { Apply(state.ThemeDark) })

	Apply(state.ThemeLight)
	if Current() != state.ThemeLight {
		t.Fatalf("Current() = %q, want light", Current())
	}
	if Text != Light.Text || Bg != Light.Bg {
		t.Error("light palette not applied")
	}

	Apply(state.ThemeDark)
	if Text != Dark.Text || Primary != Dark.Primary {
		t.Error("dark palette not applied")
	}
}
