// Package progress owns the learner's completion state: which modules
// have been passed, whether a completion certificate has been issued,
// and the persisted theme preference. The Tracker is the single writer
// of this state; screens read it and feed quiz outcomes back in.
package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/secpath/secpath/internal/catalog"
	"github.com/secpath/secpath/internal/store"
)

// StateStore is the durable key-value contract the tracker persists
// through. Failures never propagate past the tracker: they are logged
// and in-memory state stays authoritative for the session.
type StateStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// OutcomeKind classifies what happens after a quiz completes.
type OutcomeKind int

const (
	// OutcomeRetry: the quiz was failed; stay on the module.
	OutcomeRetry OutcomeKind = iota
	// OutcomeAdvance: passed, and a later module exists in catalog order.
	OutcomeAdvance
	// OutcomeLanding: passed the last catalog module, but earlier
	// modules are still open; return to the module list.
	OutcomeLanding
	// OutcomeFinished: every module is now complete; the certificate
	// is issued (or already was).
	OutcomeFinished
)

// Outcome tells the caller where navigation goes after Complete.
type Outcome struct {
	Kind          OutcomeKind
	NextID        int    // valid for OutcomeAdvance
	CertificateID string // valid for OutcomeFinished
}

// Tracker holds completion state for one learner.
type Tracker struct {
	catalog *catalog.Catalog
	store   StateStore

	completed    []int // insertion order == completion order
	completedSet map[int]bool
	certID       string
	showCert     bool
	dark         bool
}

// NewTracker creates an empty tracker over the given catalog and store.
func NewTracker(c *catalog.Catalog, st StateStore) *Tracker {
	return &Tracker{
		catalog:      c,
		store:        st,
		completedSet: make(map[int]bool),
	}
}

// Load reads persisted state. It fails soft: any read or parse error is
// logged and treated as "no prior state", so startup never blocks on a
// broken store. Certificate eligibility is re-evaluated once loading
// completes.
func (t *Tracker) Load(ctx context.Context) {
	if raw, ok, err := t.store.Get(ctx, store.KeyCompletedModules); err != nil {
		warnf("load completed modules: %v", err)
	} else if ok {
		var ids []int
		if err := json.Unmarshal([]byte(raw), &ids); err != nil {
			warnf("parse completed modules: %v", err)
		} else {
			for _, id := range ids {
				if _, known := t.catalog.ByID(id); !known {
					continue // stale id from an older catalog
				}
				if !t.completedSet[id] {
					t.completed = append(t.completed, id)
					t.completedSet[id] = true
				}
			}
		}
	}

	if id, ok, err := t.store.Get(ctx, store.KeyCertificateID); err != nil {
		warnf("load certificate id: %v", err)
	} else if ok {
		t.certID = id
	}

	if raw, ok, err := t.store.Get(ctx, store.KeyDarkMode); err != nil {
		warnf("load theme: %v", err)
	} else if ok {
		var dark bool
		if err := json.Unmarshal([]byte(raw), &dark); err != nil {
			warnf("parse theme: %v", err)
		} else {
			t.dark = dark
		}
	}

	t.ensureCertificate(ctx)
	t.showCert = t.certID != "" && t.allComplete()
}

// Complete records a quiz outcome for module id and decides where
// navigation goes next. Passing an already-completed module does not
// change the set (idempotent membership). Unknown ids are ignored and
// send the learner back to the module list.
func (t *Tracker) Complete(ctx context.Context, id int, passed bool) Outcome {
	if _, known := t.catalog.ByID(id); !known {
		return Outcome{Kind: OutcomeLanding}
	}
	if !passed {
		return Outcome{Kind: OutcomeRetry}
	}

	if !t.completedSet[id] {
		t.completed = append(t.completed, id)
		t.completedSet[id] = true
		t.persistCompleted(ctx)
	}

	if t.allComplete() {
		t.ensureCertificate(ctx)
		t.showCert = true
		return Outcome{Kind: OutcomeFinished, CertificateID: t.certID}
	}

	if next := t.catalog.Next(id); next != nil {
		return Outcome{Kind: OutcomeAdvance, NextID: next.ID}
	}
	return Outcome{Kind: OutcomeLanding}
}

// Completed returns completed module ids in completion order.
func (t *Tracker) Completed() []int {
	out := make([]int, len(t.completed))
	copy(out, t.completed)
	return out
}

// IsCompleted reports whether the module has been passed.
func (t *Tracker) IsCompleted(id int) bool {
	return t.completedSet[id]
}

// CompletedCount returns the number of passed modules.
func (t *Tracker) CompletedCount() int {
	return len(t.completed)
}

// Percent returns overall completion as a 0..1 fraction.
func (t *Tracker) Percent() float64 {
	if t.catalog.Len() == 0 {
		return 0
	}
	return float64(len(t.completed)) / float64(t.catalog.Len())
}

// CertificateID returns the issued certificate id, or "" if none.
func (t *Tracker) CertificateID() string {
	return t.certID
}

// ShowCertificate reports whether the certificate view should be shown:
// a certificate exists, the completion set is still full, and the
// learner has not dismissed the view this session.
func (t *Tracker) ShowCertificate() bool {
	return t.showCert && t.certID != "" && t.allComplete()
}

// CertificateAvailable reports whether a certificate exists and the
// completion set is still full, independent of view dismissal.
func (t *Tracker) CertificateAvailable() bool {
	return t.certID != "" && t.allComplete()
}

// DismissCertificate hides the certificate view for this session.
// Issuance is monotonic: the stored certificate id is untouched, so
// dismissing never triggers a regeneration later.
func (t *Tracker) DismissCertificate() {
	t.showCert = false
}

// RequestCertificate re-enables the certificate view, if one exists.
func (t *Tracker) RequestCertificate() {
	t.showCert = t.certID != "" && t.allComplete()
}

// Reset clears the completion set and certificate, in memory and in the
// store. The caller is responsible for confirming with the learner
// first. Theme preference is untouched.
func (t *Tracker) Reset(ctx context.Context) {
	t.completed = nil
	t.completedSet = make(map[int]bool)
	t.certID = ""
	t.showCert = false

	if err := t.store.Remove(ctx, store.KeyCompletedModules); err != nil {
		warnf("reset completed modules: %v", err)
	}
	if err := t.store.Remove(ctx, store.KeyCertificateID); err != nil {
		warnf("reset certificate id: %v", err)
	}
}

// Dark returns the persisted theme preference.
func (t *Tracker) Dark() bool {
	return t.dark
}

// SetDark updates and persists the theme preference.
func (t *Tracker) SetDark(ctx context.Context, dark bool) {
	t.dark = dark
	raw, _ := json.Marshal(dark)
	if err := t.store.Set(ctx, store.KeyDarkMode, string(raw)); err != nil {
		warnf("save theme: %v", err)
	}
}

// ToggleDark flips and persists the theme preference, returning the new
// value.
func (t *Tracker) ToggleDark(ctx context.Context) bool {
	t.SetDark(ctx, !t.dark)
	return t.dark
}

func (t *Tracker) allComplete() bool {
	return len(t.completed) == t.catalog.Len() && t.catalog.Len() > 0
}

// ensureCertificate issues a certificate id the first time the
// completion set covers the whole catalog. An existing id is never
// replaced.
func (t *Tracker) ensureCertificate(ctx context.Context) {
	if !t.allComplete() || t.certID != "" {
		return
	}
	t.certID = uuid.New().String()
	if err := t.store.Set(ctx, store.KeyCertificateID, t.certID); err != nil {
		warnf("save certificate id: %v", err)
	}
}

func (t *Tracker) persistCompleted(ctx context.Context) {
	raw, err := json.Marshal(t.completed)
	if err != nil {
		warnf("encode completed modules: %v", err)
		return
	}
	if err := t.store.Set(ctx, store.KeyCompletedModules, string(raw)); err != nil {
		warnf("save completed modules: %v", err)
	}
}

// warnf logs a non-fatal persistence problem. The worst case for the
// learner is "progress not saved this session", never corrupted state.
func warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
}
