package quiz

import (
	"errors"
	"testing"
)

func answerAll(t *testing.T, s *Session, values ...string) Effect {
	t.Helper()
	var eff Effect
	for i, v := range values {
		q, idx, ok := s.Current()
		if !ok {
			t.Fatalf("no current question at answer %d", i)
		}
		if idx != i {
			t.Fatalf("current index = %d, want %d", idx, i)
		}
		var err error
		eff, err = s.HandleEvent(Answer(q.Key, v))
		if err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
	}
	return eff
}

func TestSession_HappyPath(t *testing.T) {
	s := NewSession(DefaultQuestions())
	if s.Phase() != PhaseWelcome {
		t.Fatalf("initial phase = %s", s.Phase())
	}

	eff, err := s.HandleEvent(Start())
	if err != nil || eff != EffectShowQuiz {
		t.Fatalf("start: eff=%v err=%v", eff, err)
	}
	if s.ID() == "" {
		t.Error("expected session id after start")
	}

	eff = answerAll(t, s, "helado", "dulce", "leche", "fruta")
	if eff != EffectSubmit {
		t.Errorf("last answer effect = %v, want submit", eff)
	}
	if s.Phase() != PhaseLoading {
		t.Errorf("phase = %s, want loading", s.Phase())
	}
	if s.Submissions() != 1 {
		t.Errorf("Submissions() = %d, want 1", s.Submissions())
	}
	rec := s.Record()
	if rec != (Record{ProductType: "helado", Craving: "dulce", Base: "leche", Flavor: "fruta"}) {
		t.Errorf("record = %+v", rec)
	}

	eff, err = s.HandleEvent(Settled())
	if err != nil || eff != EffectShowResult {
		t.Fatalf("settled: eff=%v err=%v", eff, err)
	}

	eff, err = s.HandleEvent(Restart())
	if err != nil || eff != EffectShowWelcome {
		t.Fatalf("restart: eff=%v err=%v", eff, err)
	}
	if s.Phase() != PhaseWelcome {
		t.Errorf("phase = %s, want welcome", s.Phase())
	}
}

func TestSession_AnswersIgnoredOutsideQuiz(t *testing.T) {
	s := NewSession(DefaultQuestions())
	_, err := s.HandleEvent(Answer(KeyBase, "leche"))

	var invalid *ErrInvalidTransition
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if s.Answers().Len() != 0 {
		t.Error("answer must not be stored in welcome phase")
	}

	s.HandleEvent(Start())
	answerAll(t, s, "helado", "dulce", "leche", "fruta")
	if _, err := s.HandleEvent(Answer(KeyFlavor, "chocolate")); err == nil {
		t.Error("expected error answering while loading")
	}
	if s.Submissions() != 1 {
		t.Errorf("Submissions() = %d, want exactly 1", s.Submissions())
	}
	if v, _ := s.Answers().Get(KeyFlavor); v != "fruta" {
		t.Errorf("flavor changed to %q during loading", v)
	}
}

func TestSession_KeylessAnswerInert(t *testing.T) {
	s := NewSession([]Question{{Prompt: "decorativo"}, {Key: KeyBase}})
	s.HandleEvent(Start())

	eff, err := s.HandleEvent(Answer("", "x"))
	if err != nil || eff != EffectNone {
		t.Fatalf("eff=%v err=%v, want none", eff, err)
	}
	if s.Sequencer().Cursor() != 0 {
		t.Error("cursor must not move on keyless answer")
	}
	if s.Answers().Len() != 0 {
		t.Error("keyless answer must not be stored")
	}
}

func TestSession_RestartClearsPreviousAnswers(t *testing.T) {
	s := NewSession(DefaultQuestions())
	s.HandleEvent(Start())
	firstID := s.ID()
	s.Answers().Set("leftover", "x")
	answerAll(t, s, "paleta", "acido", "agua", "fruta")
	s.HandleEvent(Settled())
	s.HandleEvent(Restart())

	s.HandleEvent(Start())
	if s.Answers().Len() != 0 {
		t.Errorf("expected empty answers after second start, got %v", s.Answers().Keys())
	}
	if s.ID() == firstID {
		t.Error("expected a new session id per attempt")
	}
	if s.Sequencer().Cursor() != 0 {
		t.Error("expected cursor reset")
	}

	answerAll(t, s, "helado", "dulce", "leche", "chocolate")
	if got := s.Record(); got.ProductType != "helado" || got.Flavor != "chocolate" {
		t.Errorf("second record = %+v", got)
	}
}

func TestSession_RestartIdempotentOnWelcome(t *testing.T) {
	s := NewSession(DefaultQuestions())
	for i := 0; i < 2; i++ {
		eff, err := s.HandleEvent(Restart())
		if err != nil || eff != EffectShowWelcome {
			t.Fatalf("restart %d: eff=%v err=%v", i, eff, err)
		}
	}
}

func TestSession_StartOnlyFromWelcome(t *testing.T) {
	s := NewSession(DefaultQuestions())
	s.HandleEvent(Start())
	s.HandleEvent(Answer(KeyProductType, "agua"))

	if _, err := s.HandleEvent(Start()); err == nil {
		t.Fatal("expected error on start during quiz")
	}
	if s.Sequencer().Cursor() != 1 {
		t.Errorf("cursor = %d, want 1", s.Sequencer().Cursor())
	}
}

func TestSession_SettledOnlyWhileLoading(t *testing.T) {
	s := NewSession(DefaultQuestions())
	if _, err := s.HandleEvent(Settled()); err == nil {
		t.Error("expected error on settled in welcome")
	}
	if s.Phase() != PhaseWelcome {
		t.Errorf("phase = %s", s.Phase())
	}
}

func TestSession_AnswerMustMatchCurrentQuestion(t *testing.T) {
	s := NewSession(DefaultQuestions())
	if _, err := s.HandleEvent(Start()); err != nil {
		t.Fatalf("start: %v", err)
	}

	eff, err := s.HandleEvent(Answer(KeyProductType, "helado"))
	if err != nil || eff != EffectNextPanel {
		t.Fatalf("first answer: eff=%v err=%v", eff, err)
	}

	// A second answer for the first panel must not advance the cursor.
	eff, err = s.HandleEvent(Answer(KeyProductType, "paleta"))
	var inv *ErrInvalidTransition
	if !errors.As(err, &inv) {
		t.Fatalf("repeat answer err = %v, want ErrInvalidTransition", err)
	}
	if eff != EffectNone {
		t.Errorf("repeat answer effect = %v, want none", eff)
	}

	// Neither may an answer for a panel further ahead.
	if _, err := s.HandleEvent(Answer(KeyFlavor, "chile")); !errors.As(err, &inv) {
		t.Fatalf("future answer err = %v, want ErrInvalidTransition", err)
	}

	if got := s.Sequencer().Cursor(); got != 1 {
		t.Errorf("cursor = %d, want 1", got)
	}
	if got, _ := s.Answers().Get(KeyProductType); got != "helado" {
		t.Errorf("product type = %q, want helado", got)
	}
	if s.Answers().Len() != 1 {
		t.Errorf("answers = %d, want 1", s.Answers().Len())
	}
	q, idx, ok := s.Current()
	if !ok || idx != 1 || q.Key != KeyCraving {
		t.Errorf("current = %q/%d/%v, want %q/1", q.Key, idx, ok, KeyCraving)
	}
}
