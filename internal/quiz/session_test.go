package quiz

import (
	"testing"

	"github.com/secpath/secpath/internal/catalog"
)

// testModule builds a module with n questions whose correct answer is
// always option 0.
func testModule(n int) *catalog.Module {
	m := &catalog.Module{ID: 7, Title: "Test Module", Content: "body"}
	for i := 0; i < n; i++ {
		m.Questions = append(m.Questions, catalog.Question{
			Prompt:       "q",
			Options:      []string{"right", "wrong", "also wrong"},
			CorrectIndex: 0,
			Explanation:  "because",
		})
	}
	return m
}

func TestPassThreshold(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 0},
		{1, 1},
		{2, 2},  // ceil(1.2)
		{3, 2},  // ceil(1.8)
		{5, 3},  // exact 60%
		{10, 6}, // exact 60%
	}
	for _, tt := range tests {
		if got := PassThreshold(tt.n); got != tt.want {
			t.Errorf("PassThreshold(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestNewSessionState(t *testing.T) {
	s := NewSession(testModule(3))
	if s.Index() != 0 || s.Score() != 0 || s.Revealed() || s.Selected() != -1 {
		t.Errorf("fresh session: index=%d score=%d revealed=%v selected=%d",
			s.Index(), s.Score(), s.Revealed(), s.Selected())
	}
}

func TestSelectOptionScoresOnce(t *testing.T) {
	s := NewSession(testModule(1))

	if !s.SelectOption(0) {
		t.Fatal("expected first selection to be accepted")
	}
	if s.Score() != 1 {
		t.Errorf("score = %d, want 1", s.Score())
	}

	// Second call after reveal must be ignored and must not re-score.
	if s.SelectOption(0) {
		t.Error("expected selection after reveal to be rejected")
	}
	if s.Score() != 1 {
		t.Errorf("score after double select = %d, want 1", s.Score())
	}
}

func TestSelectOptionWrongAnswer(t *testing.T) {
	s := NewSession(testModule(1))
	s.SelectOption(1)
	if s.Score() != 0 {
		t.Errorf("score = %d, want 0", s.Score())
	}
	if !s.Revealed() {
		t.Error("expected answer to be revealed even when wrong")
	}
}

func TestSelectOptionOutOfRange(t *testing.T) {
	s := NewSession(testModule(1))
	if s.SelectOption(5) {
		t.Error("expected out-of-range selection to be rejected")
	}
	if s.SelectOption(-1) {
		t.Error("expected negative selection to be rejected")
	}
	if s.Revealed() {
		t.Error("rejected selection must not reveal")
	}
}

func TestAdvanceRequiresReveal(t *testing.T) {
	s := NewSession(testModule(2))
	if _, done := s.Advance(); done {
		t.Error("advance before reveal must be a no-op")
	}
	if s.Index() != 0 {
		t.Errorf("index = %d, want 0 after no-op advance", s.Index())
	}
}

func TestAdvanceClearsPerQuestionState(t *testing.T) {
	s := NewSession(testModule(2))
	s.SelectOption(0)

	_, done := s.Advance()
	if done {
		t.Fatal("expected more questions")
	}
	if s.Index() != 1 {
		t.Errorf("index = %d, want 1", s.Index())
	}
	if s.Revealed() || s.Selected() != -1 {
		t.Errorf("expected cleared state, got revealed=%v selected=%d", s.Revealed(), s.Selected())
	}
}

func TestFullRunPassAndFailBoundary(t *testing.T) {
	// N=10: threshold 6. Score 5 fails, score 6 passes.
	run := func(correct int) Result {
		s := NewSession(testModule(10))
		for i := 0; i < 10; i++ {
			if i < correct {
				s.SelectOption(0)
			} else {
				s.SelectOption(1)
			}
			res, done := s.Advance()
			if done {
				return res
			}
		}
		t.Fatal("session never finished")
		return Result{}
	}

	if res := run(5); res.Passed {
		t.Errorf("score 5/10 passed, want fail (threshold 6); result %+v", res)
	}
	if res := run(6); !res.Passed {
		t.Errorf("score 6/10 failed, want pass; result %+v", res)
	}
}

func TestResultFields(t *testing.T) {
	s := NewSession(testModule(1))
	s.SelectOption(0)
	res, done := s.Advance()
	if !done {
		t.Fatal("expected session to finish")
	}
	if res.ModuleID != 7 || res.Score != 1 || res.Total != 1 || !res.Passed {
		t.Errorf("result = %+v", res)
	}
}

func TestZeroQuestionQuizTriviallyPasses(t *testing.T) {
	s := NewSession(testModule(0))
	res, done := s.Advance()
	if !done {
		t.Fatal("expected empty quiz to finish immediately")
	}
	if !res.Passed || res.Score != 0 || res.Total != 0 {
		t.Errorf("result = %+v, want trivially passed", res)
	}
}
