package cmd

import (
	"github.com/rmehra/retain/internal/course"
	"github.com/rmehra/retain/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "retain",
	Short: "Interactive video learning in the terminal",
	Long: "Retain — a terminal client for video lessons with checkpoint questions,\n" +
		"resume-where-you-left-off progress, and an AI tutor.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides RETAIN_DB env var)")
	rootCmd.PersistentFlags().String("courses", "", "Path to course manifest directory (overrides RETAIN_COURSES env var)")
	rootCmd.PersistentFlags().String("mpv-socket", "", "Attach to a running mpv via this IPC socket instead of launching one")
	rootCmd.PersistentFlags().Bool("no-player", false, "Simulate playback in-process instead of driving mpv")

	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(coursesCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then RETAIN_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveCourseDir returns the manifest directory using --courses (highest
// priority), then RETAIN_COURSES, then the default XDG path.
func resolveCourseDir(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("courses"); p != "" {
		return p, nil
	}
	return course.DefaultDir()
}
