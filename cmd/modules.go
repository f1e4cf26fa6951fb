package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/secpath/secpath/internal/quiz"
)

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "List training modules and completion status",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, st, tracker, err := buildDeps(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		for i, m := range cat.Modules() {
			mark := " "
			if tracker.IsCompleted(m.ID) {
				mark = "✓"
			}
			fmt.Printf("%s %d. %s  (%d questions, pass at %d)\n",
				mark, i+1, m.Title,
				len(m.Questions), quiz.PassThreshold(len(m.Questions)))
		}
		fmt.Printf("\n%d of %d modules completed\n", tracker.CompletedCount(), cat.Len())
		return nil
	},
}
