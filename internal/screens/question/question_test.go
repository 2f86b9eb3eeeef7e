package question

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/michoacana/antojo/internal/quiz"
)

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestSelectEmitsAnswer(t *testing.T) {
	q := quiz.DefaultQuestions()[2]
	s := New(q, 2, 4)

	_, cmd := s.Update(key('2'))
	if cmd == nil {
		t.Fatal("expected command")
	}
	ev, ok := cmd().(quiz.Event)
	if !ok {
		t.Fatalf("expected quiz.Event, got %T", cmd())
	}
	if ev.Kind != quiz.EventAnswer || ev.Key != quiz.KeyBase || ev.Value != "leche" {
		t.Errorf("unexpected event %+v", ev)
	}
}

func TestSecondPressIgnored(t *testing.T) {
	s := New(quiz.DefaultQuestions()[0], 0, 4)

	_, first := s.Update(key('1'))
	if first == nil {
		t.Fatal("expected command for first press")
	}
	if !s.Answered() {
		t.Error("expected panel to be answered")
	}

	for _, msg := range []tea.Msg{key('2'), tea.KeyPressMsg{Code: tea.KeyEnter}} {
		if _, cmd := s.Update(msg); cmd != nil {
			t.Errorf("expected no command after answering, got one for %v", msg)
		}
	}
}

func TestArrowThenEnter(t *testing.T) {
	s := New(quiz.DefaultQuestions()[0], 0, 4)
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	ev := cmd().(quiz.Event)
	if ev.Key != quiz.KeyProductType || ev.Value != "helado" {
		t.Errorf("unexpected event %+v", ev)
	}
}

func TestProgressAndView(t *testing.T) {
	q := quiz.DefaultQuestions()[1]
	s := New(q, 1, 4)

	cur, total := s.Progress()
	if cur != 2 || total != 4 {
		t.Errorf("Progress() = %d/%d, want 2/4", cur, total)
	}

	view := s.View(80, 24)
	if !strings.Contains(view, q.Prompt) {
		t.Error("expected prompt in view")
	}
	for _, opt := range q.Options {
		if !strings.Contains(view, opt.Label) {
			t.Errorf("expected option %q in view", opt.Label)
		}
	}
}

func TestKeylessQuestionEmitsEmptyKey(t *testing.T) {
	q := quiz.Question{Prompt: "decorativa", Options: []quiz.Option{{Label: "ok", Value: "x"}}}
	s := New(q, 0, 1)

	_, cmd := s.Update(key('1'))
	ev := cmd().(quiz.Event)
	if ev.Key != "" {
		t.Errorf("expected empty key, got %q", ev.Key)
	}
}
