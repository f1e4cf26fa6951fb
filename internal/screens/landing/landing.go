// Package landing implements the module list screen: the place the
// learner returns to between modules, and the gateway to the
// certificate once training is complete.
package landing

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/secpath/secpath/internal/catalog"
	"github.com/secpath/secpath/internal/progress"
	"github.com/secpath/secpath/internal/router"
	"github.com/secpath/secpath/internal/screen"
	"github.com/secpath/secpath/internal/screens/certificate"
	"github.com/secpath/secpath/internal/screens/history"
	modulescreen "github.com/secpath/secpath/internal/screens/module"
	"github.com/secpath/secpath/internal/screens/passlab"
	"github.com/secpath/secpath/internal/store"
	"github.com/secpath/secpath/internal/ui/components"
	"github.com/secpath/secpath/internal/ui/layout"
	"github.com/secpath/secpath/internal/ui/theme"
)

// resetRequestMsg asks the screen to enter the reset confirmation state.
type resetRequestMsg struct{}

// LandingScreen shows the training modules and utility entries.
type LandingScreen struct {
	cat     *catalog.Catalog
	tracker *progress.Tracker
	st      *store.Store

	menu         components.Menu
	certIndex    int // menu index of the VIEW CERTIFICATE entry
	confirmReset bool
}

var _ screen.Screen = (*LandingScreen)(nil)
var _ screen.KeyHintProvider = (*LandingScreen)(nil)

// New creates the landing screen.
func New(cat *catalog.Catalog, tracker *progress.Tracker, st *store.Store) *LandingScreen {
	l := &LandingScreen{cat: cat, tracker: tracker, st: st}

	var items []components.MenuItem
	for _, m := range cat.Modules() {
		mod := m
		items = append(items, components.MenuItem{
			Label: mod.Title,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: modulescreen.New(cat, tracker, st, mod.ID),
					}
				}
			},
		})
	}

	l.certIndex = len(items)
	items = append(items, components.MenuItem{
		Label:    "VIEW CERTIFICATE",
		Disabled: !tracker.CertificateAvailable(),
		Action: func() tea.Cmd {
			tracker.RequestCertificate()
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: certificate.New(tracker),
				}
			}
		},
	})
	items = append(items, components.MenuItem{
		Label: "PASSWORD LAB",
		Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: passlab.New()}
			}
		},
	})
	items = append(items, components.MenuItem{
		Label: "HISTORY",
		Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(cat, st)}
			}
		},
	})
	items = append(items, components.MenuItem{
		Label: "RESET PROGRESS",
		Action: func() tea.Cmd {
			return func() tea.Msg { return resetRequestMsg{} }
		},
	})
	items = append(items, components.MenuItem{
		Label: "EXIT",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})

	l.menu = components.NewMenu(items)
	return l
}

func (l *LandingScreen) Title() string {
	return "Modules"
}

// Init auto-opens the certificate view when training is already
// complete and the learner has not dismissed it this session.
func (l *LandingScreen) Init() tea.Cmd {
	if l.tracker.ShowCertificate() {
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: certificate.New(l.tracker)}
		}
	}
	return nil
}

func (l *LandingScreen) KeyHints() []layout.KeyHint {
	if l.confirmReset {
		return []layout.KeyHint{
			{Key: "Y", Description: "Reset everything"},
			{Key: "N", Description: "Keep progress"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+T", Description: "Theme"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (l *LandingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resetRequestMsg:
		l.confirmReset = true
		return l, nil

	case tea.KeyMsg:
		if l.confirmReset {
			switch msg.String() {
			case "y", "Y":
				l.doReset()
			case "n", "N", "esc":
			default:
				return l, nil
			}
			l.confirmReset = false
			return l, nil
		}
	}

	// Certificate availability may have changed since the menu was
	// built (for example after finishing the last module and coming
	// back here).
	l.menu.Items[l.certIndex].Disabled = !l.tracker.CertificateAvailable()

	var cmd tea.Cmd
	l.menu, cmd = l.menu.Update(msg)
	return l, cmd
}

func (l *LandingScreen) doReset() {
	ctx := context.Background()
	l.tracker.Reset(ctx)
	if err := l.st.ClearQuizEvents(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "warning: clear quiz history: %v\n", err)
	}
}

func (l *LandingScreen) View(width, height int) string {
	if l.confirmReset {
		return l.renderResetConfirm(width, height)
	}

	var sections []string

	sections = append(sections, theme.Title.Width(width).Render("Cybersecurity Essentials Training"))
	sections = append(sections, theme.Subtitle.Width(width).Render(
		"Work through each module and pass its quiz to earn your certificate."))
	sections = append(sections, "")

	barWidth := min(width-8, 60)
	bar := components.NewProgressBar("Progress", l.tracker.Percent(), true, barWidth)
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	sections = append(sections, "")

	for i, item := range l.menu.Items {
		sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center,
			l.renderItem(i, item)))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderItem draws one menu row. Module rows get their icon glyph and a
// live completion mark; utility rows are plain labels.
func (l *LandingScreen) renderItem(i int, item components.MenuItem) string {
	const rowWidth = 44

	label := item.Label
	if i < l.cat.Len() {
		m := l.cat.At(i)
		mark := " "
		if l.tracker.IsCompleted(m.ID) {
			mark = "✓"
		}
		label = fmt.Sprintf("%s  %-34s %s", m.Glyph(), m.Title, mark)
	}

	prefix := "    "
	if i == l.menu.Selected {
		prefix = "  ▸ "
	}
	row := prefix + label
	if pad := rowWidth - lipgloss.Width(row); pad > 0 {
		row += strings.Repeat(" ", pad)
	}

	switch {
	case item.Disabled:
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render(row)
	case i == l.menu.Selected:
		return theme.Selected.Render(row)
	default:
		return theme.Unselected.Render(row)
	}
}

func (l *LandingScreen) renderResetConfirm(width, height int) string {
	msg := theme.Body.Render("Reset all progress?") + "\n\n" +
		theme.Hint.Render("This clears completed modules, the certificate, and quiz history.") + "\n\n" +
		theme.Incorrect.Render("Y") + theme.Body.Render("es  /  ") +
		theme.Correct.Render("N") + theme.Body.Render("o")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}
