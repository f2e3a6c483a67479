package cli

import (
	"encoding/json"
	"fmt"

	"dsa-quiz-service/internal/config"
	"dsa-quiz-service/internal/tui"
	"github.com/spf13/cobra"
)

// NewLeaderboardCmd prints the persisted top scores.
func NewLeaderboardCmd(configPath *string) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the top scores",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			rt, err := buildRuntime(cmd.Context(), cfg, runtimeOptions{quiet: true})
			if err != nil {
				return err
			}
			defer rt.Close()

			entries := rt.service.Leaderboard()
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderLeaderboard(entries, true))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print entries as JSON")
	return cmd
}
