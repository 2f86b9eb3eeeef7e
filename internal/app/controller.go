package app

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/michoacana/antojo/internal/quiz"
	"github.com/michoacana/antojo/internal/recommend"
	"github.com/michoacana/antojo/internal/router"
	"github.com/michoacana/antojo/internal/screens/loading"
	"github.com/michoacana/antojo/internal/screens/question"
	"github.com/michoacana/antojo/internal/screens/result"
	"github.com/michoacana/antojo/internal/screens/welcome"
)

// Logger is the subset of a logger the controller reports ignored events to.
type Logger interface {
	Printf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...any) {}

// Options configures a Controller.
type Options struct {
	Questions []quiz.Question
	Submitter recommend.Submitter
	ImageBase string
	Logger    Logger
	Context   context.Context
}

// Controller owns the quiz session and decides which panel is visible.
// Exactly one panel is shown at any time.
type Controller struct {
	ctx       context.Context
	session   *quiz.Session
	submitter recommend.Submitter
	router    *router.Router
	imageBase string
	logger    Logger

	visible quiz.Phase
	outcome *recommend.Outcome
}

// NewController creates a controller showing the welcome panel.
func NewController(opts Options) *Controller {
	questions := opts.Questions
	if questions == nil {
		questions = quiz.DefaultQuestions()
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = nopLogger{}
	}
	return &Controller{
		ctx:       ctx,
		session:   quiz.NewSession(questions),
		submitter: opts.Submitter,
		router:    router.New(welcome.New()),
		imageBase: opts.ImageBase,
		logger:    logger,
		visible:   quiz.PhaseWelcome,
	}
}

// Session returns the underlying session.
func (c *Controller) Session() *quiz.Session { return c.session }

// Router returns the panel router.
func (c *Controller) Router() *router.Router { return c.router }

// Visible returns the panel currently shown.
func (c *Controller) Visible() quiz.Phase { return c.visible }

// Outcome returns the settled outcome being shown, if any.
func (c *Controller) Outcome() *recommend.Outcome { return c.outcome }

// ShowWelcome makes the welcome panel the only visible one.
func (c *Controller) ShowWelcome() tea.Cmd {
	c.visible = quiz.PhaseWelcome
	return c.router.Replace(welcome.New())
}

// ShowQuiz shows the current question panel.
func (c *Controller) ShowQuiz() tea.Cmd {
	q, i, ok := c.session.Current()
	if !ok {
		return nil
	}
	c.visible = quiz.PhaseQuiz
	return c.router.Replace(question.New(q, i, len(c.session.Questions())))
}

// ShowLoading shows the loading panel.
func (c *Controller) ShowLoading() tea.Cmd {
	c.visible = quiz.PhaseLoading
	return c.router.Replace(loading.New())
}

// ShowResult shows the result panel for outcome.
func (c *Controller) ShowResult(outcome recommend.Outcome) tea.Cmd {
	c.visible = quiz.PhaseResult
	return c.router.Replace(result.New(outcome, c.imageBase))
}

// HandleEvent applies ev to the session and performs the resulting
// effect. Events that do not apply to the current phase are ignored.
func (c *Controller) HandleEvent(ev quiz.Event) tea.Cmd {
	effect, err := c.session.HandleEvent(ev)
	if err != nil {
		c.logger.Printf("ignoring event: %v", err)
		return nil
	}

	switch effect {
	case quiz.EffectShowWelcome:
		c.outcome = nil
		return c.ShowWelcome()
	case quiz.EffectShowQuiz, quiz.EffectNextPanel:
		return c.ShowQuiz()
	case quiz.EffectSubmit:
		return tea.Batch(c.ShowLoading(), c.submit())
	case quiz.EffectShowResult:
		if c.outcome == nil {
			return nil
		}
		return c.ShowResult(*c.outcome)
	}
	return nil
}

// settle records the outcome of the current attempt and shows it.
// Outcomes from an earlier attempt are dropped.
func (c *Controller) settle(msg submissionSettledMsg) tea.Cmd {
	if msg.sessionID != c.session.ID() || c.session.Phase() != quiz.PhaseLoading {
		c.logger.Printf("dropping stale outcome for session %s", msg.sessionID)
		return nil
	}
	out := msg.outcome
	c.outcome = &out
	return c.HandleEvent(quiz.Settled())
}

func (c *Controller) submit() tea.Cmd {
	req := recommend.Request{SessionID: c.session.ID(), Record: c.session.Record()}
	sub := c.submitter
	ctx := c.ctx
	return func() tea.Msg {
		var out recommend.Outcome
		if sub == nil {
			out = recommend.Outcome{Kind: recommend.KindNetworkError, Message: recommend.ConnectionErrorMessage}
		} else {
			out = sub.Submit(ctx, req)
		}
		return submissionSettledMsg{sessionID: req.SessionID, outcome: out}
	}
}

// Update routes quiz events and settlements to the session and
// everything else to the visible panel.
func (c *Controller) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case quiz.Event:
		return c.HandleEvent(msg)
	case submissionSettledMsg:
		return c.settle(msg)
	}
	return c.router.Update(msg)
}
