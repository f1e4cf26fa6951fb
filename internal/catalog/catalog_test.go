package catalog

import (
	"testing"
)

func TestLoadEmbeddedCatalog(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Len() == 0 {
		t.Fatal("expected non-empty catalog")
	}

	for _, m := range c.Modules() {
		if m.Title == "" {
			t.Errorf("module %d has empty title", m.ID)
		}
		if len(m.Questions) == 0 {
			t.Errorf("module %d has no questions", m.ID)
		}
		for qi, q := range m.Questions {
			if len(q.Options) < 2 {
				t.Errorf("module %d question %d: %d options", m.ID, qi, len(q.Options))
			}
			if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
				t.Errorf("module %d question %d: correct index %d out of range", m.ID, qi, q.CorrectIndex)
			}
		}
	}
}

func TestByID(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	first := c.At(0)
	m, ok := c.ByID(first.ID)
	if !ok {
		t.Fatalf("expected module %d to be found", first.ID)
	}
	if m.Title != first.Title {
		t.Errorf("title = %q, want %q", m.Title, first.Title)
	}

	if _, ok := c.ByID(9999); ok {
		t.Error("expected lookup of unknown id to fail")
	}
}

func TestAdjacencyByPosition(t *testing.T) {
	// Ids deliberately out of numeric order: adjacency must follow
	// catalog position, not id value.
	c, err := New([]Module{
		{ID: 30, Title: "a", Content: "x"},
		{ID: 10, Title: "b", Content: "x"},
		{ID: 20, Title: "c", Content: "x"},
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if next := c.Next(30); next == nil || next.ID != 10 {
		t.Errorf("Next(30) = %v, want module 10", next)
	}
	if next := c.Next(20); next != nil {
		t.Errorf("Next(last) = %v, want nil", next)
	}
	if prev := c.Prev(10); prev == nil || prev.ID != 30 {
		t.Errorf("Prev(10) = %v, want module 30", prev)
	}
	if prev := c.Prev(30); prev != nil {
		t.Errorf("Prev(first) = %v, want nil", prev)
	}
	if next := c.Next(999); next != nil {
		t.Errorf("Next(unknown) = %v, want nil", next)
	}
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	_, err := New([]Module{
		{ID: 1, Title: "a", Content: "x"},
		{ID: 1, Title: "b", Content: "x"},
	})
	if err == nil {
		t.Fatal("expected error for duplicate ids")
	}
}

func TestNewRejectsBadQuestions(t *testing.T) {
	tests := []struct {
		name string
		q    Question
	}{
		{"one option", Question{Prompt: "p", Options: []string{"only"}, CorrectIndex: 0}},
		{"correct index out of range", Question{Prompt: "p", Options: []string{"a", "b"}, CorrectIndex: 2}},
		{"negative correct index", Question{Prompt: "p", Options: []string{"a", "b"}, CorrectIndex: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New([]Module{{ID: 1, Title: "a", Content: "x", Questions: []Question{tt.q}}})
			if err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestValidateCatalogRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "{"},
		{"not an array", `{"id": 1}`},
		{"missing fields", `[{"id": 1}]`},
		{"extra fields", `[{"id":1,"title":"t","icon":"i","summary":"s","content":"c","questions":[],"bogus":true}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := validateCatalog([]byte(tt.raw)); err == nil {
				t.Error("expected validation to fail")
			}
		})
	}
}

func TestGlyphFallback(t *testing.T) {
	m := &Module{Icon: "no-such-icon"}
	if m.Glyph() == "" {
		t.Error("expected non-empty fallback glyph")
	}
	known := &Module{Icon: "key"}
	if known.Glyph() == m.Glyph() {
		t.Error("expected known icon key to resolve to its own glyph")
	}
}
