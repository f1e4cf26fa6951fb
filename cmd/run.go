package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/secpath/secpath/internal/app"
	"github.com/secpath/secpath/internal/catalog"
	"github.com/secpath/secpath/internal/progress"
	"github.com/secpath/secpath/internal/store"
	"github.com/secpath/secpath/internal/ui/theme"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cat, st, tracker, err := buildDeps(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	theme.Apply(tracker.Dark())

	return app.Run(app.Options{
		Catalog: cat,
		Tracker: tracker,
		Store:   st,
	})
}

// buildDeps loads the catalog, opens the store, and restores the
// tracker. The caller owns closing the store.
func buildDeps(cmd *cobra.Command) (*catalog.Catalog, *store.Store, *progress.Tracker, error) {
	cat, err := catalog.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load module catalog: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open store: %w", err)
	}

	tracker := progress.NewTracker(cat, st)
	tracker.Load(context.Background())

	return cat, st, tracker, nil
}
