// Package history lists recent quiz attempts, newest first.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/secpath/secpath/internal/catalog"
	"github.com/secpath/secpath/internal/screen"
	"github.com/secpath/secpath/internal/store"
	"github.com/secpath/secpath/internal/ui/layout"
	"github.com/secpath/secpath/internal/ui/theme"
)

// attemptLimit caps how many rows the screen loads.
const attemptLimit = 50

type historyLoadedMsg struct {
	events []store.QuizEvent
	err    error
}

// HistoryScreen shows the recorded quiz attempt log.
type HistoryScreen struct {
	cat *catalog.Catalog
	st  *store.Store

	loaded bool
	events []store.QuizEvent
	err    error
	scroll int
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates the history screen.
func New(cat *catalog.Catalog, st *store.Store) *HistoryScreen {
	return &HistoryScreen{cat: cat, st: st}
}

func (h *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		events, err := h.st.QueryQuizEvents(context.Background(), attemptLimit)
		return historyLoadedMsg{events: events, err: err}
	}
}

func (h *HistoryScreen) Title() string {
	return "History"
}

func (h *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (h *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		h.loaded = true
		h.events = msg.events
		h.err = msg.err
		return h, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if h.scroll > 0 {
				h.scroll--
			}
		case "down", "j":
			h.scroll++
		}
	}
	return h, nil
}

func (h *HistoryScreen) View(width, height int) string {
	innerWidth := min(width-8, 72)

	title := theme.Title.Width(innerWidth).Render("Quiz History")

	var body string
	switch {
	case !h.loaded:
		body = theme.Hint.Render("Loading...")
	case h.err != nil:
		body = theme.Incorrect.Render(fmt.Sprintf("Could not load history: %v", h.err))
	case len(h.events) == 0:
		body = theme.Hint.Render("No quiz attempts yet. Finish a quiz and it will show up here.")
	default:
		body = h.renderRows(innerWidth, height-6)
	}

	content := strings.Join([]string{title, "", body}, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HistoryScreen) renderRows(width, avail int) string {
	if avail < 3 {
		avail = 3
	}
	maxScroll := len(h.events) - avail
	if maxScroll < 0 {
		maxScroll = 0
	}
	if h.scroll > maxScroll {
		h.scroll = maxScroll
	}
	end := h.scroll + avail
	if end > len(h.events) {
		end = len(h.events)
	}

	var rows []string
	for _, ev := range h.events[h.scroll:end] {
		rows = append(rows, h.renderRow(ev, width))
	}
	return strings.Join(rows, "\n")
}

func (h *HistoryScreen) renderRow(ev store.QuizEvent, width int) string {
	title := fmt.Sprintf("module %d", ev.ModuleID)
	if m, ok := h.cat.ByID(ev.ModuleID); ok {
		title = m.Title
	}

	verdict := theme.Correct.Render("PASS")
	if !ev.Passed {
		verdict = theme.Incorrect.Render("FAIL")
	}

	when := ev.Timestamp.Local().Format("2006-01-02 15:04")
	row := fmt.Sprintf("%s  %-34s %2d/%-2d  %s",
		theme.Hint.Render(when), title, ev.Score, ev.Total, verdict)
	return theme.Body.MaxWidth(width).Render(row)
}
