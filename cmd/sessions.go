package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"oscesim/internal/store"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List stored evaluation results",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		caseID, _ := cmd.Flags().GetString("case")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		recs, err := st.EventRepo().QueryEvaluations(ctx, store.QueryOpts{
			Limit:  limit,
			CaseID: caseID,
		})
		if err != nil {
			return fmt.Errorf("query evaluations: %w", err)
		}

		if len(recs) == 0 {
			fmt.Println("No evaluations recorded yet.")
			return nil
		}

		fmt.Printf("%-19s  %-14s  %-24s  %-8s  %s\n",
			"Timestamp", "Case", "Diagnosis", "Correct", "Clinical")
		fmt.Println(strings.Repeat("─", 84))
		for _, r := range recs {
			verdict := "no"
			if r.Correct {
				verdict = "yes"
			}
			diagnosis := r.StudentDiagnosis
			if len(diagnosis) > 24 {
				diagnosis = diagnosis[:24]
			}
			fmt.Printf("%-19s  %-14s  %-24s  %-8s  %v\n",
				r.Timestamp.Local().Format("2006-01-02 15:04:05"),
				r.CaseID,
				diagnosis,
				verdict,
				r.CategoryScores["clinical_decision"],
			)
		}
		return nil
	},
}

func init() {
	sessionsCmd.Flags().IntP("limit", "n", 20, "Number of evaluations to show")
	sessionsCmd.Flags().String("case", "", "Filter by case id")
}
