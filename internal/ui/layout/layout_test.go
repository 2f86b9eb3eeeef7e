package layout

import (
	"strings"
	"testing"
)

func TestProgressLabel(t *testing.T) {
	if got := ProgressLabel(2, 4); got != "Pregunta 2/4" {
		t.Errorf("ProgressLabel(2, 4) = %q", got)
	}
	if got := ProgressLabel(1, 0); got != "" {
		t.Errorf("ProgressLabel with no total = %q, want empty", got)
	}
}

func TestRenderHeaderShowsProgress(t *testing.T) {
	h := RenderHeader("Cuestionario", "Pregunta 3/4", 80)
	for _, want := range []string{"Antojo", "Cuestionario", "Pregunta 3/4"} {
		if !strings.Contains(h, want) {
			t.Errorf("header missing %q", want)
		}
	}
}

func TestIsTooSmall(t *testing.T) {
	if !IsTooSmall(MinWidth-1, MinHeight) {
		t.Error("expected too small below min width")
	}
	if IsTooSmall(MinWidth, MinHeight) {
		t.Error("expected min size to fit")
	}
}
