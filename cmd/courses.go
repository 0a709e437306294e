package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/rmehra/retain/internal/course"
	"github.com/rmehra/retain/internal/store"
	"github.com/spf13/cobra"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List installed courses and their lessons",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveCourseDir(cmd)
		if err != nil {
			return fmt.Errorf("resolve course dir: %w", err)
		}
		courses, err := course.LoadDir(dir)
		if err != nil {
			return fmt.Errorf("load courses: %w", err)
		}
		if len(courses) == 0 {
			fmt.Printf("No courses found in %s\n", dir)
			return nil
		}

		// Completion markers are best-effort; a missing database just
		// means no column.
		completed := loadCompleted(cmd)

		for _, c := range courses {
			fmt.Printf("%s (%s)\n", c.Title, c.ID)
			fmt.Printf("%-20s  %-40s  %9s  %11s\n", "ID", "Title", "Duration", "Checkpoints")
			fmt.Println(strings.Repeat("─", 88))
			for _, v := range c.Videos {
				title := v.Title
				if len(title) > 40 {
					title = title[:37] + "..."
				}
				mark := ""
				if completed[v.ID] {
					mark = "  ✔"
				}
				fmt.Printf("%-20s  %-40s  %8.0fs  %11d%s\n",
					v.ID, title, v.Duration, len(v.Checkpoints), mark)
			}
			fmt.Println()
		}
		return nil
	},
}

// loadCompleted returns the set of completed video IDs, or nil when the
// database is unavailable.
func loadCompleted(cmd *cobra.Command) map[string]bool {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil
	}
	defer st.Close()

	rows, err := st.ProgressRepo().All(context.Background(), defaultUserID)
	if err != nil {
		return nil
	}
	completed := make(map[string]bool, len(rows))
	for _, p := range rows {
		if p.Completed {
			completed[p.VideoID] = true
		}
	}
	return completed
}
