// Package certificate shows the completion certificate with export
// affordances. Dismissing the view never revokes the certificate.
package certificate

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/secpath/secpath/internal/cert"
	"github.com/secpath/secpath/internal/progress"
	"github.com/secpath/secpath/internal/router"
	"github.com/secpath/secpath/internal/screen"
	"github.com/secpath/secpath/internal/ui/components"
	"github.com/secpath/secpath/internal/ui/layout"
	"github.com/secpath/secpath/internal/ui/theme"
)

const copiedResetDelay = 2 * time.Second

// copyResetMsg clears the transient "Copied!" label.
type copyResetMsg struct{}

// CertificateScreen presents the earned certificate.
type CertificateScreen struct {
	tracker *progress.Tracker
	c       cert.Certificate

	selected int // 0 download, 1 copy, 2 review modules
	status   string
	errMsg   string
	copied   bool
}

var _ screen.Screen = (*CertificateScreen)(nil)
var _ screen.KeyHintProvider = (*CertificateScreen)(nil)

var buttonLabels = []string{"Download (.txt)", "Copy ID", "Review Modules"}

// New creates the certificate screen for the tracker's current
// certificate.
func New(tracker *progress.Tracker) *CertificateScreen {
	return &CertificateScreen{
		tracker: tracker,
		c:       cert.New(tracker.CertificateID()),
	}
}

func (s *CertificateScreen) Init() tea.Cmd {
	return nil
}

func (s *CertificateScreen) Title() string {
	return "Certificate"
}

func (s *CertificateScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Choose action"},
		{Key: "Enter", Description: "Run action"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *CertificateScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case copyResetMsg:
		s.copied = false
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			if s.selected > 0 {
				s.selected--
			}
		case "right", "l", "tab":
			if s.selected < len(buttonLabels)-1 {
				s.selected++
			}
		case "enter":
			return s.runAction()
		case "d":
			s.selected = 0
			return s.runAction()
		case "c":
			s.selected = 1
			return s.runAction()
		case "r":
			s.selected = 2
			return s.runAction()
		}
	}
	return s, nil
}

func (s *CertificateScreen) runAction() (screen.Screen, tea.Cmd) {
	s.status = ""
	s.errMsg = ""

	switch s.selected {
	case 0:
		path, err := s.c.WriteFile(".")
		if err != nil {
			// Export failures never touch training state.
			s.errMsg = fmt.Sprintf("Sorry, there was an error downloading your certificate: %v", err)
			return s, nil
		}
		s.status = "Saved " + path
		return s, nil

	case 1:
		if err := cert.CopyID(s.c.ID); err != nil {
			s.errMsg = "Failed to copy Certificate ID."
			return s, nil
		}
		s.copied = true
		return s, tea.Tick(copiedResetDelay, func(time.Time) tea.Msg {
			return copyResetMsg{}
		})

	default:
		s.tracker.DismissCertificate()
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
}

func (s *CertificateScreen) View(width, height int) string {
	innerWidth := min(width-8, 64)

	var sections []string

	sections = append(sections,
		theme.Correct.Render("  ✔  ")+theme.Title.Render("Congratulations!"))
	sections = append(sections, theme.Subtitle.Width(innerWidth).Render(
		"You've successfully completed the Cybersecurity Essentials Training."))
	sections = append(sections, "")

	idBlock := theme.Body.Render("Your Certificate ID:") + "\n" +
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(s.c.ID)
	sections = append(sections, theme.Card.Width(innerWidth).Render(idBlock))
	sections = append(sections, "")

	var buttons []string
	for i, label := range buttonLabels {
		if i == 1 && s.copied {
			label = "Copied!"
		}
		b := components.NewButton(label, i == s.selected, nil)
		buttons = append(buttons, b.View())
	}
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Center, buttons...))

	if s.status != "" {
		sections = append(sections, "", theme.Correct.Render(s.status))
	}
	if s.errMsg != "" {
		sections = append(sections, "", theme.Incorrect.Render(s.errMsg))
	}

	sections = append(sections, "", theme.Hint.Width(innerWidth).Render(
		"Please keep this Certificate ID safe. You can use it to verify your completion status."))

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
