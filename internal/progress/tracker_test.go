package progress

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secpath/secpath/internal/catalog"
	"github.com/secpath/secpath/internal/quiz"
	"github.com/secpath/secpath/internal/store"
)

func testCatalog(t *testing.T, questionCounts ...int) *catalog.Catalog {
	t.Helper()
	var mods []catalog.Module
	for i, n := range questionCounts {
		m := catalog.Module{ID: i + 1, Title: "m", Content: "c"}
		for q := 0; q < n; q++ {
			m.Questions = append(m.Questions, catalog.Question{
				Prompt:      "q",
				Options:     []string{"right", "wrong"},
				Explanation: "e",
			})
		}
		mods = append(mods, m)
	}
	c, err := catalog.New(mods)
	require.NoError(t, err)
	return c
}

func testStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestCompleteIdempotentMembership(t *testing.T) {
	ctx := context.Background()
	tr := NewTracker(testCatalog(t, 1, 1), testStore(t))

	tr.Complete(ctx, 1, true)
	assert.Equal(t, []int{1}, tr.Completed())

	// Same module again: no-op on the set.
	tr.Complete(ctx, 1, true)
	assert.Equal(t, []int{1}, tr.Completed())
}

func TestCompleteFailedKeepsLearnerOnModule(t *testing.T) {
	ctx := context.Background()
	tr := NewTracker(testCatalog(t, 1, 1), testStore(t))

	out := tr.Complete(ctx, 1, false)
	assert.Equal(t, OutcomeRetry, out.Kind)
	assert.Empty(t, tr.Completed())
}

func TestCompleteAdvancesInCatalogOrder(t *testing.T) {
	ctx := context.Background()
	tr := NewTracker(testCatalog(t, 1, 1, 1), testStore(t))

	out := tr.Complete(ctx, 1, true)
	require.Equal(t, OutcomeAdvance, out.Kind)
	assert.Equal(t, 2, out.NextID)

	out = tr.Complete(ctx, 2, true)
	require.Equal(t, OutcomeAdvance, out.Kind)
	assert.Equal(t, 3, out.NextID)

	out = tr.Complete(ctx, 3, true)
	assert.Equal(t, OutcomeFinished, out.Kind)
	assert.NotEmpty(t, out.CertificateID)
}

func TestCompleteUnknownModule(t *testing.T) {
	ctx := context.Background()
	tr := NewTracker(testCatalog(t, 1), testStore(t))

	out := tr.Complete(ctx, 42, true)
	assert.Equal(t, OutcomeLanding, out.Kind)
	assert.Empty(t, tr.Completed())
}

func TestLastCatalogModuleWithEarlierGaps(t *testing.T) {
	ctx := context.Background()
	tr := NewTracker(testCatalog(t, 1, 1, 1), testStore(t))

	// Jump straight to the last module: passed, but the set is not
	// full, so back to the module list without a certificate.
	out := tr.Complete(ctx, 3, true)
	assert.Equal(t, OutcomeLanding, out.Kind)
	assert.Empty(t, tr.CertificateID())
}

func TestCertificateIssuedExactlyOnce(t *testing.T) {
	ctx := context.Background()
	tr := NewTracker(testCatalog(t, 1, 1), testStore(t))

	assert.Empty(t, tr.CertificateID(), "no certificate while incomplete")
	tr.Complete(ctx, 1, true)
	assert.Empty(t, tr.CertificateID())

	out := tr.Complete(ctx, 2, true)
	require.Equal(t, OutcomeFinished, out.Kind)
	first := tr.CertificateID()
	require.NotEmpty(t, first)

	// Re-passing a module of an already-complete set must not
	// regenerate the id.
	out = tr.Complete(ctx, 1, true)
	assert.Equal(t, OutcomeFinished, out.Kind)
	assert.Equal(t, first, tr.CertificateID())
}

func TestDismissDoesNotRevokeCertificate(t *testing.T) {
	ctx := context.Background()
	tr := NewTracker(testCatalog(t, 1), testStore(t))

	tr.Complete(ctx, 1, true)
	id := tr.CertificateID()
	require.True(t, tr.ShowCertificate())

	tr.DismissCertificate()
	assert.False(t, tr.ShowCertificate())
	assert.Equal(t, id, tr.CertificateID(), "dismissing the view must not revoke the certificate")

	tr.RequestCertificate()
	assert.True(t, tr.ShowCertificate())
	assert.Equal(t, id, tr.CertificateID())
}

func TestPersistAndReload(t *testing.T) {
	ctx := context.Background()
	cat := testCatalog(t, 1, 1)
	st := testStore(t)

	tr := NewTracker(cat, st)
	tr.Complete(ctx, 1, true)
	tr.Complete(ctx, 2, true)
	tr.SetDark(ctx, true)
	id := tr.CertificateID()
	require.NotEmpty(t, id)

	// Simulate a restart.
	tr2 := NewTracker(cat, st)
	tr2.Load(ctx)
	assert.Equal(t, []int{1, 2}, tr2.Completed())
	assert.Equal(t, id, tr2.CertificateID())
	assert.True(t, tr2.Dark())
	assert.True(t, tr2.ShowCertificate())
}

func TestResetThenReload(t *testing.T) {
	ctx := context.Background()
	cat := testCatalog(t, 1, 1)
	st := testStore(t)

	tr := NewTracker(cat, st)
	tr.Complete(ctx, 1, true)
	tr.Complete(ctx, 2, true)
	require.NotEmpty(t, tr.CertificateID())

	tr.Reset(ctx)
	assert.Empty(t, tr.Completed())
	assert.Empty(t, tr.CertificateID())

	tr2 := NewTracker(cat, st)
	tr2.Load(ctx)
	assert.Empty(t, tr2.Completed())
	assert.Empty(t, tr2.CertificateID())
	assert.False(t, tr2.ShowCertificate())
}

func TestLoadIgnoresStaleIDs(t *testing.T) {
	ctx := context.Background()
	cat := testCatalog(t, 1, 1)
	st := testStore(t)
	require.NoError(t, st.Set(ctx, store.KeyCompletedModules, "[1, 99, 1]"))

	tr := NewTracker(cat, st)
	tr.Load(ctx)
	assert.Equal(t, []int{1}, tr.Completed(), "stale and duplicate ids are dropped")
}

func TestLoadFailsSoftOnCorruptState(t *testing.T) {
	ctx := context.Background()
	cat := testCatalog(t, 1)
	st := testStore(t)
	require.NoError(t, st.Set(ctx, store.KeyCompletedModules, "not json"))
	require.NoError(t, st.Set(ctx, store.KeyDarkMode, "also not json"))

	tr := NewTracker(cat, st)
	tr.Load(ctx)
	assert.Empty(t, tr.Completed())
	assert.False(t, tr.Dark())
}

// brokenStore fails every operation, simulating quota or availability
// failures.
type brokenStore struct{}

func (brokenStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("storage unavailable")
}
func (brokenStore) Set(context.Context, string, string) error {
	return errors.New("storage unavailable")
}
func (brokenStore) Remove(context.Context, string) error {
	return errors.New("storage unavailable")
}

func TestStorageFailuresNeverPropagate(t *testing.T) {
	ctx := context.Background()
	tr := NewTracker(testCatalog(t, 1, 1), brokenStore{})

	tr.Load(ctx) // must not panic or error
	out := tr.Complete(ctx, 1, true)
	assert.Equal(t, OutcomeAdvance, out.Kind)
	assert.Equal(t, []int{1}, tr.Completed(), "in-memory state stays authoritative")

	out = tr.Complete(ctx, 2, true)
	assert.Equal(t, OutcomeFinished, out.Kind)
	assert.NotEmpty(t, tr.CertificateID())

	tr.ToggleDark(ctx)
	assert.True(t, tr.Dark())
	tr.Reset(ctx)
	assert.Empty(t, tr.Completed())
}

// TestTrainingScenario walks the full two-module story: pass the first
// quiz at the threshold, fail the second, retry and finish.
func TestTrainingScenario(t *testing.T) {
	ctx := context.Background()
	cat := testCatalog(t, 3, 2) // M1 has 3 questions, M2 has 2
	tr := NewTracker(cat, testStore(t))

	answer := func(s *quiz.Session, correct int) quiz.Result {
		t.Helper()
		for i := 0; i < s.Total(); i++ {
			if i < correct {
				s.SelectOption(0)
			} else {
				s.SelectOption(1)
			}
			if res, done := s.Advance(); done {
				return res
			}
		}
		t.Fatal("quiz never finished")
		return quiz.Result{}
	}

	// M1: 2/3 correct, threshold ceil(1.8)=2 -> pass, advance to M2.
	m1, _ := cat.ByID(1)
	res := answer(quiz.NewSession(m1), 2)
	require.True(t, res.Passed)
	out := tr.Complete(ctx, res.ModuleID, res.Passed)
	require.Equal(t, OutcomeAdvance, out.Kind)
	require.Equal(t, 2, out.NextID)

	// M2: 0/2, threshold 2 -> fail, stay for retry.
	m2, _ := cat.ByID(2)
	res = answer(quiz.NewSession(m2), 0)
	require.False(t, res.Passed)
	out = tr.Complete(ctx, res.ModuleID, res.Passed)
	require.Equal(t, OutcomeRetry, out.Kind)
	assert.Equal(t, []int{1}, tr.Completed())

	// Retry M2: 2/2 -> pass, certificate issued, certificate view on.
	res = answer(quiz.NewSession(m2), 2)
	require.True(t, res.Passed)
	out = tr.Complete(ctx, res.ModuleID, res.Passed)
	require.Equal(t, OutcomeFinished, out.Kind)
	assert.ElementsMatch(t, []int{1, 2}, tr.Completed())
	assert.NotEmpty(t, out.CertificateID)
	assert.True(t, tr.ShowCertificate())
}

// TestCatalogOrderWalk passes every quiz starting from the first module
// and checks the navigation visits each module exactly once in catalog
// order before landing.
func TestCatalogOrderWalk(t *testing.T) {
	ctx := context.Background()
	cat := testCatalog(t, 1, 1, 1, 1)
	tr := NewTracker(cat, testStore(t))

	var visited []int
	id := cat.At(0).ID
	for {
		visited = append(visited, id)
		out := tr.Complete(ctx, id, true)
		if out.Kind != OutcomeAdvance {
			require.Equal(t, OutcomeFinished, out.Kind)
			break
		}
		id = out.NextID
	}
	assert.Equal(t, []int{1, 2, 3, 4}, visited)
}
