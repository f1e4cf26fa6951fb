package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent quiz attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, st, _, err := buildDeps(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		events, err := st.QueryQuizEvents(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("load quiz history: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No quiz attempts recorded.")
			return nil
		}

		for _, ev := range events {
			title := fmt.Sprintf("module %d", ev.ModuleID)
			if m, ok := cat.ByID(ev.ModuleID); ok {
				title = m.Title
			}
			verdict := "PASS"
			if !ev.Passed {
				verdict = "FAIL"
			}
			fmt.Printf("%s  %-34s %2d/%-2d  %s\n",
				ev.Timestamp.Local().Format("2006-01-02 15:04"),
				title, ev.Score, ev.Total, verdict)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum attempts to show (0 for all)")
}
