// Package quiz drives one module's question sequence and computes
// pass/fail. A Session is ephemeral: created when the learner starts a
// quiz, discarded when the quiz is abandoned or completed.
package quiz

import "github.com/secpath/secpath/internal/catalog"

// PassThreshold is the minimum score needed to pass a quiz of n
// questions: 60% rounded up. A zero-question quiz has threshold 0 and
// is trivially passed.
func PassThreshold(n int) int {
	return (n*3 + 4) / 5 // ceil(n * 0.6)
}

// Result is the terminal outcome of a completed session.
type Result struct {
	ModuleID int
	Score    int
	Total    int
	Passed   bool
}

// Session tracks progress through one module's quiz.
type Session struct {
	module   *catalog.Module
	index    int
	score    int
	selected int
	revealed bool
}

// NewSession starts a session at question 0 with no score, no
// selection, and nothing revealed.
func NewSession(m *catalog.Module) *Session {
	return &Session{module: m, selected: -1}
}

// Module returns the module this session belongs to.
func (s *Session) Module() *catalog.Module { return s.module }

// Index returns the current question position (0-based).
func (s *Session) Index() int { return s.index }

// Total returns the number of questions in the quiz.
func (s *Session) Total() int { return len(s.module.Questions) }

// Score returns the number of correctly answered questions so far.
func (s *Session) Score() int { return s.score }

// Selected returns the chosen option index for the current question,
// or -1 when nothing has been selected.
func (s *Session) Selected() int { return s.selected }

// Revealed reports whether the current question's answer has been
// revealed.
func (s *Session) Revealed() bool { return s.revealed }

// Question returns the current question, or nil for an empty quiz.
func (s *Session) Question() *catalog.Question {
	if s.index < 0 || s.index >= len(s.module.Questions) {
		return nil
	}
	return &s.module.Questions[s.index]
}

// SelectOption records the learner's answer for the current question
// and reveals the outcome. It is the only scoring mutation point: once
// revealed, further calls are ignored, so a question can never be
// scored twice. Reports whether the selection was accepted.
func (s *Session) SelectOption(i int) bool {
	q := s.Question()
	if q == nil || s.revealed {
		return false
	}
	if i < 0 || i >= len(q.Options) {
		return false
	}
	s.selected = i
	s.revealed = true
	if i == q.CorrectIndex {
		s.score++
	}
	return true
}

// Advance moves past a revealed question. While earlier questions
// remain it clears the selection and reveal state and reports done ==
// false. On the last question it computes the terminal Result and
// reports done == true; the session should then be discarded. Calling
// Advance before the current answer is revealed is a no-op.
func (s *Session) Advance() (Result, bool) {
	if s.Total() == 0 {
		return s.result(), true
	}
	if !s.revealed {
		return Result{}, false
	}
	if s.index < s.Total()-1 {
		s.index++
		s.selected = -1
		s.revealed = false
		return Result{}, false
	}
	return s.result(), true
}

func (s *Session) result() Result {
	return Result{
		ModuleID: s.module.ID,
		Score:    s.score,
		Total:    s.Total(),
		Passed:   s.score >= PassThreshold(s.Total()),
	}
}
