// Package module implements the instructional module screen: the
// learner reads the content, takes the quiz question by question, and
// sees the result. Navigation after a result follows the tracker's
// outcome: auto-advance on pass, stay for retry on fail.
package module

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/secpath/secpath/internal/catalog"
	"github.com/secpath/secpath/internal/progress"
	"github.com/secpath/secpath/internal/quiz"
	"github.com/secpath/secpath/internal/router"
	"github.com/secpath/secpath/internal/screen"
	"github.com/secpath/secpath/internal/screens/certificate"
	"github.com/secpath/secpath/internal/store"
	"github.com/secpath/secpath/internal/ui/components"
	"github.com/secpath/secpath/internal/ui/layout"
)

type phase int

const (
	phaseContent phase = iota
	phaseQuiz
	phaseResult
)

// ModuleScreen drives one module visit.
type ModuleScreen struct {
	cat     *catalog.Catalog
	tracker *progress.Tracker
	st      *store.Store
	mod     *catalog.Module

	phase   phase
	scroll  int
	sess    *quiz.Session
	mc      components.MultiChoice
	result  quiz.Result
	outcome progress.Outcome
}

var _ screen.Screen = (*ModuleScreen)(nil)
var _ screen.KeyHintProvider = (*ModuleScreen)(nil)

// New creates a module screen for the given module id. An unknown id
// yields a screen that immediately pops back to the module list.
func New(cat *catalog.Catalog, tracker *progress.Tracker, st *store.Store, id int) *ModuleScreen {
	mod, _ := cat.ByID(id)
	return &ModuleScreen{
		cat:     cat,
		tracker: tracker,
		st:      st,
		mod:     mod,
	}
}

func (s *ModuleScreen) Init() tea.Cmd {
	if s.mod == nil {
		// Defensive: an id that is not in the catalog renders nothing
		// and falls back to the module list.
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	return nil
}

func (s *ModuleScreen) Title() string {
	if s.mod == nil {
		return ""
	}
	return s.mod.Title
}

func (s *ModuleScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseQuiz:
		if s.sess != nil && s.sess.Revealed() {
			return []layout.KeyHint{
				{Key: "Enter", Description: s.advanceLabel()},
			}
		}
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Abandon quiz"},
		}
	case phaseResult:
		if s.result.Passed {
			return []layout.KeyHint{
				{Key: "Enter", Description: "Continue"},
			}
		}
		return []layout.KeyHint{
			{Key: "Enter", Description: "Retry quiz"},
			{Key: "R", Description: "Review material"},
			{Key: "Esc", Description: "Back to modules"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start quiz"},
			{Key: "←→", Description: "Prev/Next module"},
			{Key: "↑↓", Description: "Scroll"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *ModuleScreen) advanceLabel() string {
	if s.sess != nil && s.sess.Index() < s.sess.Total()-1 {
		return "Next question"
	}
	return "Finish quiz"
}

func (s *ModuleScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.mod == nil {
		return s, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch s.phase {
	case phaseContent:
		return s.updateContent(kmsg)
	case phaseQuiz:
		return s.updateQuiz(kmsg)
	default:
		return s.updateResult(kmsg)
	}
}

func (s *ModuleScreen) updateContent(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if s.scroll > 0 {
			s.scroll--
		}
	case "down", "j":
		s.scroll++
	case "enter", "s":
		return s.startQuiz()
	case "right", "n":
		if next := s.cat.Next(s.mod.ID); next != nil {
			return s.goTo(next.ID)
		}
		return s, popCmd()
	case "left", "p":
		if prev := s.cat.Prev(s.mod.ID); prev != nil {
			return s.goTo(prev.ID)
		}
		return s, popCmd()
	case "h":
		return s, popCmd()
	}
	return s, nil
}

func (s *ModuleScreen) startQuiz() (screen.Screen, tea.Cmd) {
	s.sess = quiz.NewSession(s.mod)
	if s.sess.Total() == 0 {
		// Degenerate module without questions: the threshold is zero,
		// so completing it is a trivial pass.
		res, _ := s.sess.Advance()
		return s.finishQuiz(res)
	}
	s.phase = phaseQuiz
	s.mc = s.newChoice()
	return s, nil
}

func (s *ModuleScreen) newChoice() components.MultiChoice {
	q := s.sess.Question()
	return components.NewMultiChoice(q.Prompt, q.Options, q.CorrectIndex)
}

func (s *ModuleScreen) updateQuiz(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if !s.sess.Revealed() {
		wasSubmitted := s.mc.Submitted
		s.mc, _ = s.mc.Update(msg)
		if s.mc.Submitted && !wasSubmitted {
			// Mirror the component's submission into the session; the
			// session's reveal guard makes this the single scoring
			// point per question.
			s.sess.SelectOption(s.mc.ChosenIndex)
		}
		return s, nil
	}

	if msg.String() == "enter" {
		res, done := s.sess.Advance()
		if done {
			return s.finishQuiz(res)
		}
		s.mc = s.newChoice()
	}
	return s, nil
}

// finishQuiz records the attempt, reports the outcome to the tracker,
// and moves to the result phase.
func (s *ModuleScreen) finishQuiz(res quiz.Result) (screen.Screen, tea.Cmd) {
	ctx := context.Background()

	if err := s.st.AppendQuizEvent(ctx, store.QuizEvent{
		ModuleID: res.ModuleID,
		Score:    res.Score,
		Total:    res.Total,
		Passed:   res.Passed,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "warning: record quiz attempt: %v\n", err)
	}

	s.result = res
	s.outcome = s.tracker.Complete(ctx, res.ModuleID, res.Passed)
	s.sess = nil
	s.phase = phaseResult
	return s, nil
}

func (s *ModuleScreen) updateResult(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.result.Passed {
		if msg.String() != "enter" {
			return s, nil
		}
		switch s.outcome.Kind {
		case progress.OutcomeAdvance:
			return s.goTo(s.outcome.NextID)
		case progress.OutcomeFinished:
			return s, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: certificate.New(s.tracker)}
			}
		default:
			return s, popCmd()
		}
	}

	switch msg.String() {
	case "enter":
		return s.startQuiz()
	case "r":
		s.phase = phaseContent
		s.scroll = 0
	case "h":
		return s, popCmd()
	}
	return s, nil
}

// goTo replaces this screen with another module's screen, discarding
// any in-flight quiz session.
func (s *ModuleScreen) goTo(id int) (screen.Screen, tea.Cmd) {
	next := New(s.cat, s.tracker, s.st, id)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func popCmd() tea.Cmd {
	return func() tea.Msg { return router.PopScreenMsg{} }
}
