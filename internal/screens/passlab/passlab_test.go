package passlab

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func typeString(p *PassLabScreen, s string) {
	for _, r := range s {
		p.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func TestEmptyInputRatesWeak(t *testing.T) {
	p := New()
	view := p.View(80, 24)
	if !strings.Contains(view, "Weak") {
		t.Error("empty input should rate Weak")
	}
}

func TestStrongPasswordRatesStrong(t *testing.T) {
	p := New()
	typeString(p, "Tr0ub4dor&Three!")

	view := p.View(80, 24)
	if !strings.Contains(view, "Strong") {
		t.Errorf("expected Strong rating, value = %q", p.input.Value())
	}
}

func TestChecklistTracksInput(t *testing.T) {
	p := New()
	typeString(p, "abc")

	view := p.View(80, 24)
	if !strings.Contains(view, "A lower-case letter") {
		t.Error("checklist should list the lower-case criterion")
	}
	if !strings.Contains(view, "At least 8 characters") {
		t.Error("checklist should list the length criterion")
	}
}

func TestTitle(t *testing.T) {
	p := New()
	if p.Title() != "Password Lab" {
		t.Errorf("Title = %q", p.Title())
	}
}
