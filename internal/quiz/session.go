package quiz

import (
	"fmt"

	"github.com/google/uuid"
)

// Phase is the top-level panel a session is in.
type Phase int

const (
	PhaseWelcome Phase = iota
	PhaseQuiz
	PhaseLoading
	PhaseResult
)

func (p Phase) String() string {
	switch p {
	case PhaseWelcome:
		return "welcome"
	case PhaseQuiz:
		return "quiz"
	case PhaseLoading:
		return "loading"
	case PhaseResult:
		return "result"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// EventKind identifies a user or transport event.
type EventKind int

const (
	EventStart EventKind = iota
	EventAnswer
	EventSettled
	EventRestart
)

func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventAnswer:
		return "answer"
	case EventSettled:
		return "settled"
	case EventRestart:
		return "restart"
	}
	return fmt.Sprintf("event(%d)", int(k))
}

// Event is delivered to Session.HandleEvent. Key and Value are only set
// for EventAnswer. Events double as tea.Msg values so screens can emit
// them directly.
type Event struct {
	Kind  EventKind
	Key   string
	Value string
}

// Start, Answer and Restart build the corresponding events.
func Start() Event                   { return Event{Kind: EventStart} }
func Answer(key, value string) Event { return Event{Kind: EventAnswer, Key: key, Value: value} }
func Restart() Event                 { return Event{Kind: EventRestart} }
func Settled() Event                 { return Event{Kind: EventSettled} }

// Effect tells the caller what to present after an event was applied.
type Effect int

const (
	EffectNone Effect = iota
	EffectShowWelcome
	EffectShowQuiz
	EffectNextPanel
	EffectSubmit
	EffectShowResult
)

// ErrInvalidTransition is returned when an event does not apply to the
// session's current phase. The session is left unchanged.
type ErrInvalidTransition struct {
	From  Phase
	Event EventKind
}

func (e *ErrInvalidTransition) Error() string {
	return fmt.Sprintf("quiz: %s event not valid in %s phase", e.Event, e.From)
}

// Session owns the answers and the sequencer for one quiz flow and moves
// between phases as Welcome -> Quiz -> Loading -> Result -> Welcome.
type Session struct {
	id        string
	phase     Phase
	questions []Question
	answers   *Answers
	seq       *Sequencer
	attempts  int
	submitted int
}

// NewSession creates a session in the welcome phase.
func NewSession(questions []Question) *Session {
	return &Session{
		phase:     PhaseWelcome,
		questions: questions,
		answers:   NewAnswers(),
		seq:       NewSequencer(len(questions)),
	}
}

// ID returns the identifier of the current attempt. It changes on every Start.
func (s *Session) ID() string { return s.id }

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Questions returns the question catalog.
func (s *Session) Questions() []Question { return s.questions }

// Answers returns the response store.
func (s *Session) Answers() *Answers { return s.answers }

// Sequencer returns the panel sequencer.
func (s *Session) Sequencer() *Sequencer { return s.seq }

// Attempts returns how many times the quiz was started.
func (s *Session) Attempts() int { return s.attempts }

// Submissions returns how many times the quiz reached the submit step.
func (s *Session) Submissions() int { return s.submitted }

// Record builds the submission body from the current answers.
func (s *Session) Record() Record { return s.answers.Record() }

// Current returns the visible question and its index. ok is false when
// no question panel is shown.
func (s *Session) Current() (q Question, index int, ok bool) {
	if s.phase != PhaseQuiz || s.seq.Complete() {
		return Question{}, 0, false
	}
	i := s.seq.Cursor()
	return s.questions[i], i, true
}

// HandleEvent applies ev and returns the presentation effect to perform.
func (s *Session) HandleEvent(ev Event) (Effect, error) {
	switch ev.Kind {
	case EventStart:
		if s.phase != PhaseWelcome {
			return EffectNone, s.invalid(ev)
		}
		s.answers.Clear()
		s.seq.Reset()
		s.id = uuid.NewString()
		s.attempts++
		s.phase = PhaseQuiz
		if s.seq.Complete() {
			return s.submit(), nil
		}
		return EffectShowQuiz, nil

	case EventAnswer:
		if s.phase != PhaseQuiz {
			return EffectNone, s.invalid(ev)
		}
		if ev.Key == "" {
			return EffectNone, nil
		}
		// Only the visible panel may be answered.
		if q, _, ok := s.Current(); !ok || q.Key != ev.Key {
			return EffectNone, s.invalid(ev)
		}
		s.answers.Set(ev.Key, ev.Value)
		if s.seq.Advance() {
			return s.submit(), nil
		}
		return EffectNextPanel, nil

	case EventSettled:
		if s.phase != PhaseLoading {
			return EffectNone, s.invalid(ev)
		}
		s.phase = PhaseResult
		return EffectShowResult, nil

	case EventRestart:
		switch s.phase {
		case PhaseResult, PhaseWelcome:
			s.phase = PhaseWelcome
			return EffectShowWelcome, nil
		}
		return EffectNone, s.invalid(ev)
	}
	return EffectNone, s.invalid(ev)
}

func (s *Session) submit() Effect {
	s.phase = PhaseLoading
	s.submitted++
	return EffectSubmit
}

func (s *Session) invalid(ev Event) error {
	return &ErrInvalidTransition{From: s.phase, Event: ev.Kind}
}
