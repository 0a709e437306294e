package cmd

import (
	"fmt"
	"strings"

	"github.com/rmehra/retain/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show watch progress and quiz accuracy",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		rows, err := st.ProgressRepo().All(ctx, defaultUserID)
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}
		if len(rows) == 0 {
			fmt.Println("No lessons watched yet.")
			return nil
		}

		sessions, err := st.EventRepo().QuerySessionSummaries(ctx, store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("load sessions: %w", err)
		}

		fmt.Printf("%-20s  %10s  %-9s  %12s\n", "Video", "Position", "Status", "Quiz")
		fmt.Println(strings.Repeat("─", 60))

		var completed int
		for _, p := range rows {
			status := "partial"
			if p.Completed {
				status = "completed"
				completed++
			}
			quizCol := "—"
			if acc, n, err := st.EventRepo().QuizAccuracy(ctx, p.VideoID); err == nil && n > 0 {
				quizCol = fmt.Sprintf("%3.0f%% (%d)", acc*100, n)
			}
			fmt.Printf("%-20s  %9.0fs  %-9s  %12s\n",
				p.VideoID, p.PositionSecs, status, quizCol)
		}

		fmt.Printf("\n%d lessons watched, %d completed, %d sessions recorded\n",
			len(rows), completed, len(sessions))
		return nil
	},
}
