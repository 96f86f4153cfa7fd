package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"oscesim/internal/cases"
)

var casesCmd = &cobra.Command{
	Use:   "cases",
	Short: "List available clinical cases",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var provider *cases.PackProvider
		var err error
		if packPath, _ := cmd.Flags().GetString("pack"); packPath != "" {
			provider, err = cases.LoadFile(packPath)
		} else {
			provider, err = cases.LoadSeed()
		}
		if err != nil {
			return fmt.Errorf("load cases: %w", err)
		}

		ids, err := provider.ListCases(ctx)
		if err != nil {
			return fmt.Errorf("list cases: %w", err)
		}

		fmt.Printf("%-14s  %-10s  %-28s  %s\n", "ID", "Urgency", "Title", "Presenting Complaint")
		fmt.Println(strings.Repeat("─", 90))
		for _, id := range ids {
			c, err := provider.GetCase(ctx, id)
			if err != nil {
				continue
			}
			complaint := c.PresentingComplaint
			if len(complaint) > 34 {
				complaint = complaint[:34] + "…"
			}
			fmt.Printf("%-14s  %-10s  %-28s  %s\n",
				c.ID, cases.ClassifyUrgency(c), c.Title, complaint)
		}
		return nil
	},
}

func init() {
	casesCmd.Flags().String("pack", "", "Path to a case pack JSON file (defaults to the built-in pack)")
}
