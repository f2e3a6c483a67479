package cli

import (
	"fmt"

	"dsa-quiz-service/internal/app"
	"github.com/spf13/cobra"
)

// NewAdviseCmd suggests a difficulty for a past result.
func NewAdviseCmd() *cobra.Command {
	var correct, total int
	cmd := &cobra.Command{
		Use:   "advise",
		Short: "Suggest the next difficulty from a correct/total result",
		RunE: func(cmd *cobra.Command, args []string) error {
			if correct < 0 || total < 0 || correct > total {
				return fmt.Errorf("need 0 <= correct <= total, got %d/%d", correct, total)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "accuracy %.0f%% -> %s\n", app.Accuracy(correct, total), app.SuggestDifficulty(correct, total))
			return nil
		},
	}
	cmd.Flags().IntVar(&correct, "correct", 0, "correctly answered questions")
	cmd.Flags().IntVar(&total, "total", 0, "questions attempted")
	return cmd
}
