package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/secpath/secpath/internal/cert"
)

var certCmd = &cobra.Command{
	Use:   "cert",
	Short: "Show or export the completion certificate",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, st, tracker, err := buildDeps(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if !tracker.CertificateAvailable() {
			return fmt.Errorf("no certificate yet: complete all modules first")
		}

		c := cert.New(tracker.CertificateID())

		outDir, _ := cmd.Flags().GetString("out")
		if outDir != "" {
			path, err := c.WriteFile(outDir)
			if err != nil {
				return err
			}
			fmt.Println("Saved", path)
			return nil
		}

		fmt.Print(c.Render())
		return nil
	},
}

func init() {
	certCmd.Flags().String("out", "", "Directory to write the certificate file into")
}
