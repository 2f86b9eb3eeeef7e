package quiz

// Sequencer tracks which question panel is visible. The cursor only moves
// forward, one panel per recorded answer, and 0 <= cursor <= panels holds
// at all times.
type Sequencer struct {
	panels int
	cursor int
}

// NewSequencer creates a sequencer over the given number of panels.
func NewSequencer(panels int) *Sequencer {
	if panels < 0 {
		panels = 0
	}
	return &Sequencer{panels: panels}
}

// Reset moves the cursor back to the first panel.
func (s *Sequencer) Reset() {
	s.cursor = 0
}

// Cursor returns the index of the current panel.
func (s *Sequencer) Cursor() int {
	return s.cursor
}

// Len returns the number of panels.
func (s *Sequencer) Len() int {
	return s.panels
}

// Advance hides the current panel and moves to the next one. It returns
// true once the cursor has passed the last panel.
func (s *Sequencer) Advance() bool {
	if s.cursor < s.panels {
		s.cursor++
	}
	return s.Complete()
}

// Complete reports whether every panel has been answered.
func (s *Sequencer) Complete() bool {
	return s.cursor >= s.panels
}

// Visible reports whether panel i is the one currently shown.
func (s *Sequencer) Visible(i int) bool {
	return i == s.cursor && s.cursor < s.panels
}

// VisiblePanels returns the indexes of every shown panel: one while the
// quiz is running, none once it is complete.
func (s *Sequencer) VisiblePanels() []int {
	var out []int
	for i := 0; i < s.panels; i++ {
		if s.Visible(i) {
			out = append(out, i)
		}
	}
	return out
}
