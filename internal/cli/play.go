package cli

import (
	"os"
	"time"

	"dsa-quiz-service/internal/config"
	"dsa-quiz-service/internal/domain"
	"dsa-quiz-service/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// NewPlayCmd runs a quiz in the terminal against the configured catalog and leaderboard.
func NewPlayCmd(configPath *string) *cobra.Command {
	var (
		difficulty string
		count      int
		name       string
		noColor    bool
	)
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a timed quiz in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := domain.ParseDifficulty(difficulty)
			if err != nil {
				return err
			}
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			rt, err := buildRuntime(cmd.Context(), cfg, runtimeOptions{quiet: true})
			if err != nil {
				return err
			}
			defer rt.Close()

			model := tui.NewModel(cmd.Context(), rt.service, tui.Options{
				Difficulty:   d,
				Count:        count,
				Player:       name,
				TickInterval: config.TTLDuration(cfg.Quiz.TickInterval, time.Second),
				NoColor:      noColor || os.Getenv("NO_COLOR") != "",
			})
			program := tea.NewProgram(model, tea.WithOutput(cmd.OutOrStdout()), tea.WithAltScreen())
			_, err = program.Run()
			return err
		},
	}
	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", string(domain.Easy), "easy, medium or hard")
	cmd.Flags().IntVarP(&count, "count", "n", 0, "number of questions (0 uses quiz.default_count)")
	cmd.Flags().StringVar(&name, "name", os.Getenv("USER"), "name recorded on the leaderboard")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colors")
	return cmd
}
