// Package passlab is an interactive password strength checker. Nothing
// typed here is stored or sent anywhere.
package passlab

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/secpath/secpath/internal/passcheck"
	"github.com/secpath/secpath/internal/screen"
	"github.com/secpath/secpath/internal/ui/components"
	"github.com/secpath/secpath/internal/ui/layout"
	"github.com/secpath/secpath/internal/ui/theme"
)

// PassLabScreen lets the learner test candidate passwords live.
type PassLabScreen struct {
	input components.TextInput
}

var _ screen.Screen = (*PassLabScreen)(nil)
var _ screen.KeyHintProvider = (*PassLabScreen)(nil)

// New creates the password lab screen.
func New() *PassLabScreen {
	return &PassLabScreen{
		input: components.NewTextInput("Type a password to test...", 64),
	}
}

func (p *PassLabScreen) Init() tea.Cmd {
	return p.input.Init()
}

func (p *PassLabScreen) Title() string {
	return "Password Lab"
}

func (p *PassLabScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Type", Description: "Check strength"},
		{Key: "Esc", Description: "Back"},
	}
}

func (p *PassLabScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p *PassLabScreen) View(width, height int) string {
	innerWidth := min(width-8, 64)

	title := theme.Title.Width(innerWidth).Render("Password Lab")
	sub := theme.Subtitle.Width(innerWidth).Render(
		"Try a password and watch the score. It never leaves this screen.")

	sections := []string{title, sub, "", p.input.View(), ""}

	value := p.input.Value()
	score := passcheck.Score(value)

	bar := components.NewProgressBar("Strength", passcheck.Fraction(score), false, innerWidth)
	sections = append(sections, bar.View())

	label := passcheck.Label(score)
	var labelStyle lipgloss.Style
	switch label {
	case "Strong":
		labelStyle = theme.Correct
	case "Moderate":
		labelStyle = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	default:
		labelStyle = theme.Incorrect
	}
	sections = append(sections,
		labelStyle.Render(label)+theme.Hint.Render(fmt.Sprintf("  (%d of %d checks)", score, passcheck.MaxScore)))

	sections = append(sections, "", p.renderChecklist(value))

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (p *PassLabScreen) renderChecklist(value string) string {
	var lines []string
	for _, c := range passcheck.Checks(value) {
		mark := theme.Incorrect.Render("✗")
		if c.Met {
			mark = theme.Correct.Render("✓")
		}
		lines = append(lines, mark+" "+theme.Body.Render(c.Name))
	}
	return strings.Join(lines, "\n")
}
