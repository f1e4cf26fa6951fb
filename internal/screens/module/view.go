package module

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/secpath/secpath/internal/quiz"
	"github.com/secpath/secpath/internal/ui/components"
	"github.com/secpath/secpath/internal/ui/theme"
)

func (s *ModuleScreen) View(width, height int) string {
	if s.mod == nil {
		return ""
	}
	switch s.phase {
	case phaseQuiz:
		return s.viewQuiz(width, height)
	case phaseResult:
		return s.viewResult(width, height)
	default:
		return s.viewContent(width, height)
	}
}

func (s *ModuleScreen) viewContent(width, height int) string {
	innerWidth := min(width-8, 76)

	pos := s.cat.IndexOf(s.mod.ID) + 1
	header := theme.Title.Width(innerWidth).Render(
		fmt.Sprintf("%s  %s", s.mod.Glyph(), s.mod.Title))
	sub := theme.Subtitle.Width(innerWidth).Render(
		fmt.Sprintf("Module %d of %d", pos, s.cat.Len()))

	body := theme.Body.Width(innerWidth).Render(s.mod.Content)
	lines := strings.Split(body, "\n")

	// Window the body under the header by the scroll offset.
	avail := height - 6
	if avail < 3 {
		avail = 3
	}
	maxScroll := len(lines) - avail
	if maxScroll < 0 {
		maxScroll = 0
	}
	if s.scroll > maxScroll {
		s.scroll = maxScroll
	}
	end := s.scroll + avail
	if end > len(lines) {
		end = len(lines)
	}
	windowed := strings.Join(lines[s.scroll:end], "\n")

	hint := theme.Hint.Width(innerWidth).Render(
		fmt.Sprintf("Quiz: %d questions, pass with %d or more correct.",
			len(s.mod.Questions), quiz.PassThreshold(len(s.mod.Questions))))

	content := strings.Join([]string{header, sub, "", windowed, "", hint}, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *ModuleScreen) viewQuiz(width, height int) string {
	innerWidth := min(width-8, 76)

	q := s.sess.Question()
	counter := theme.Subtitle.Width(innerWidth).Render(
		fmt.Sprintf("Question %d of %d", s.sess.Index()+1, s.sess.Total()))

	bar := components.NewProgressBar("", float64(s.sess.Index()+1)/float64(s.sess.Total()), false, innerWidth)

	sections := []string{counter, bar.View(), "", s.mc.View()}

	if s.sess.Revealed() {
		var verdict string
		if s.mc.IsCorrect() {
			verdict = theme.Correct.Render("Correct!")
		} else {
			verdict = theme.Incorrect.Render("Incorrect.")
		}
		expl := theme.Body.Width(innerWidth).Render(q.Explanation)
		sections = append(sections, "", verdict, expl)
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *ModuleScreen) viewResult(width, height int) string {
	innerWidth := min(width-8, 76)

	title := theme.Title.Width(innerWidth).Render("Quiz Completed!")
	score := theme.Body.Width(innerWidth).Render(
		fmt.Sprintf("Your score: %d out of %d", s.result.Score, s.result.Total))

	var banner string
	if s.result.Passed {
		banner = theme.Correct.Render(fmt.Sprintf(
			"Congratulations! You've passed this module with a score of %d/%d.",
			s.result.Score, s.result.Total))
	} else {
		banner = theme.Incorrect.Render(fmt.Sprintf(
			"A score of %d/%d or higher is needed to pass. Review the material and try again!",
			quiz.PassThreshold(s.result.Total), s.result.Total))
	}

	content := strings.Join([]string{title, "", score, "", banner}, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
