package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rmehra/retain/internal/app"
	"github.com/rmehra/retain/internal/course"
	"github.com/rmehra/retain/internal/llm"
	"github.com/rmehra/retain/internal/playback"
	"github.com/rmehra/retain/internal/player"
	"github.com/rmehra/retain/internal/progress"
	"github.com/rmehra/retain/internal/quiz"
	"github.com/rmehra/retain/internal/store"
	"github.com/rmehra/retain/internal/tutor"
	"github.com/spf13/cobra"
)

// defaultUserID identifies the single local learner. Multi-profile support
// would thread a real ID through here.
const defaultUserID = "local"

// runApp opens the store, loads the course catalog, builds dependencies,
// and launches the TUI. A non-empty videoID skips the library and opens
// that lesson directly.
func runApp(cmd *cobra.Command, videoID string) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	courseDir, err := resolveCourseDir(cmd)
	if err != nil {
		return fmt.Errorf("resolve course dir: %w", err)
	}
	courses, err := course.LoadDir(courseDir)
	if err != nil {
		return fmt.Errorf("load courses: %w", err)
	}

	eventRepo := st.EventRepo()
	progressSvc := progress.NewService(st.ProgressRepo(), defaultUserID)
	defer progressSvc.Close()

	socketPath, _ := cmd.Flags().GetString("mpv-socket")
	noPlayer, _ := cmd.Flags().GetBool("no-player")
	opts := app.Options{
		UserID:         defaultUserID,
		Courses:        courses,
		EventRepo:      eventRepo,
		Progress:       progressSvc,
		Config:         playback.DefaultConfig(),
		NewPlayer:      playerFactory(socketPath, noPlayer),
		InitialVideoID: videoID,
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Tutor chat and end-of-video quizzes will be unavailable.")
	} else {
		opts.Tutor = tutor.NewService(provider, tutor.DefaultConfig())
		opts.Quiz = quiz.NewService(provider, quiz.DefaultConfig())
	}

	return app.Run(opts)
}

// playerFactory returns the player constructor for the session. With a
// socket path it attaches to an already-running mpv; with no-player it
// simulates playback in-process; otherwise each lesson launches its own
// mpv process.
func playerFactory(socketPath string, noPlayer bool) func(v course.Video) (player.Player, error) {
	switch {
	case noPlayer:
		return func(v course.Video) (player.Player, error) {
			return startScripted(v.Duration), nil
		}
	case socketPath != "":
		return func(course.Video) (player.Player, error) {
			return player.DialMPV(socketPath)
		}
	default:
		return func(v course.Video) (player.Player, error) {
			return player.LaunchMPV(v.Media)
		}
	}
}

// startScripted runs a scripted player at real-time speed until it is
// closed.
func startScripted(duration float64) *player.Scripted {
	sp := player.NewScripted(duration)
	sp.Start()
	go func() {
		tick := time.NewTicker(time.Second)
		defer tick.Stop()
		for range tick.C {
			if _, err := sp.CurrentTime(); err != nil {
				return
			}
			sp.Advance(1)
		}
	}()
	return sp
}
