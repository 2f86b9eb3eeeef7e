package loading

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestKeysIgnoredWhileLoading(t *testing.T) {
	l := New()
	for _, msg := range []tea.Msg{
		tea.KeyPressMsg{Code: tea.KeyEnter},
		tea.KeyPressMsg{Code: '1', Text: "1"},
		tea.KeyPressMsg{Code: 'r', Text: "r"},
	} {
		if _, cmd := l.Update(msg); cmd != nil {
			t.Errorf("expected no command for %v", msg)
		}
	}
}

func TestInitStartsSpinner(t *testing.T) {
	if New().Init() == nil {
		t.Fatal("expected spinner tick command")
	}
}

func TestView(t *testing.T) {
	if !strings.Contains(New().View(80, 24), "Buscando tu antojo ideal") {
		t.Error("expected loading text")
	}
}
