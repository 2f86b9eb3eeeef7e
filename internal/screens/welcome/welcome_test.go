package welcome

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/michoacana/antojo/internal/quiz"
)

func TestEnterStartsQuiz(t *testing.T) {
	w := New()

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on enter")
	}
	ev, ok := cmd().(quiz.Event)
	if !ok || ev.Kind != quiz.EventStart {
		t.Fatalf("expected start event, got %#v", ev)
	}
}

func TestStartEmittedOnce(t *testing.T) {
	w := New()
	w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("expected no second start from the same screen")
	}
}

func TestOtherKeysIgnored(t *testing.T) {
	w := New()
	_, cmd := w.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if cmd != nil {
		t.Error("expected no command for unrelated key")
	}
}

func TestViewShowsBannerAndButton(t *testing.T) {
	view := New().View(80, 24)
	if !strings.Contains(view, "█████╗") {
		t.Error("expected full banner at 80 columns")
	}
	if !strings.Contains(view, "Comenzar") {
		t.Error("expected start button")
	}

	if compact := New().View(40, 24); !strings.Contains(compact, "A N T O J O") {
		t.Error("expected compact banner at 40 columns")
	}
}
