package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all progress, the certificate, and quiz history",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, st, tracker, err := buildDeps(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Print("Reset all progress? This cannot be undone. [y/N] ")
			line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			if strings.ToLower(strings.TrimSpace(line)) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		ctx := cmd.Context()
		tracker.Reset(ctx)
		if err := st.ClearQuizEvents(ctx); err != nil {
			return fmt.Errorf("clear quiz history: %w", err)
		}
		fmt.Println("Progress reset.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}
