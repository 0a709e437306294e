// Package watch is the playback screen: it drives the engine from the UI
// tick, renders the timeline, and hosts the checkpoint modal and the
// tutor chat.
package watch

import (
	"context"
	"sync"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/rmehra/retain/internal/course"
	"github.com/rmehra/retain/internal/playback"
	"github.com/rmehra/retain/internal/player"
	"github.com/rmehra/retain/internal/progress"
	"github.com/rmehra/retain/internal/quiz"
	"github.com/rmehra/retain/internal/router"
	"github.com/rmehra/retain/internal/screen"
	quizscreen "github.com/rmehra/retain/internal/screens/quiz"
	"github.com/rmehra/retain/internal/screens/summary"
	"github.com/rmehra/retain/internal/store"
	"github.com/rmehra/retain/internal/tutor"
	"github.com/rmehra/retain/internal/ui/components"
	"github.com/rmehra/retain/internal/ui/layout"
)

// Deps bundles the services a watch session needs. Tutor and Quiz are nil
// when no LLM provider is configured; the screen degrades to plain
// checkpointed playback.
type Deps struct {
	UserID   string
	Progress *progress.Service
	Events   store.EventRepo
	Tutor    *tutor.Service
	Quiz     *quiz.Service
	Config   playback.Config
}

// WatchScreen runs one watch session for a single video.
type WatchScreen struct {
	deps   Deps
	course course.Course
	video  course.Video

	pl      player.Player
	sampler *player.Sampler
	coord   *playback.Coordinator

	sessionID string
	startTime time.Time

	// Checkpoint modal.
	activeCheckpoint playback.Checkpoint
	modalOpen        bool
	mcSelected       int
	input            components.TextInput
	attempts         int
	answerWrong      bool

	// Tutor chat overlay.
	chatOpen        bool
	chatInput       components.TextInput
	exchanges       []tutor.Exchange
	pendingQuestion string
	tutorWaiting    bool
	tutorErr        string

	// End-of-video panel.
	ended       bool
	quizWaiting bool
	quizErr     string

	confirmQuit bool
	finished    bool
	paused      bool
	errMsg      string

	// lastSavedSecs is written by the progress writer goroutine and read
	// on the render path, hence the mutex. Negative means nothing saved
	// yet this session.
	savedMu       sync.Mutex
	lastSavedSecs float64
}

var _ screen.Screen = (*WatchScreen)(nil)
var _ screen.KeyHintProvider = (*WatchScreen)(nil)

// New creates a watch session for the given video. The player is already
// dialed; the screen owns it from here and closes it on teardown.
func New(c course.Course, v course.Video, pl player.Player, deps Deps) *WatchScreen {
	s := &WatchScreen{
		deps:          deps,
		course:        c,
		video:         v,
		pl:            pl,
		sessionID:     uuid.New().String(),
		startTime:     time.Now(),
		chatInput:     components.NewTextInput("Ask the tutor...", 120),
		lastSavedSecs: -1,
	}

	deps.Progress.OnPersisted(func(videoID string, secs float64) {
		if videoID != v.ID {
			return
		}
		s.savedMu.Lock()
		s.lastSavedSecs = secs
		s.savedMu.Unlock()
	})

	hooks := playback.Hooks{
		PausePlayer:     func() { _ = s.pl.Pause() },
		ResumePlayer:    func() { _ = s.pl.Play() },
		CheckpointDue:   s.onCheckpointDue,
		PersistProgress: func(secs float64) { s.deps.Progress.SaveAsync(s.video.ID, secs) },
		ApplyResumeSeek: func(secs float64) { _ = s.pl.SeekTo(secs) },
		VideoEnded:      s.onVideoEnded,
		VideoResumedPlaying: func() {
			// Backward seek after the end panel: playback is live again.
			s.ended = false
		},
	}

	s.coord = playback.NewCoordinator(deps.UserID, v.ID, v.EngineCheckpoints(), v.Duration, hooks, deps.Config)
	s.sampler = player.NewSampler(pl,
		func(t float64, now time.Time) { s.coord.OnTimeSample(t, now) },
		func(now time.Time) { s.coord.OnPlayerReady(now) },
	)
	return s
}

func (s *WatchScreen) Init() tea.Cmd {
	return tea.Batch(s.startSession(), s.tickCmd())
}

func (s *WatchScreen) Title() string {
	return s.video.Title
}

// lastPersisted returns the position of the most recent successful
// progress write this session, if any.
func (s *WatchScreen) lastPersisted() (float64, bool) {
	s.savedMu.Lock()
	defer s.savedMu.Unlock()
	return s.lastSavedSecs, s.lastSavedSecs >= 0
}

func (s *WatchScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.confirmQuit:
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave"},
			{Key: "N", Description: "Keep watching"},
		}
	case s.ended:
		hints := []layout.KeyHint{}
		if s.deps.Quiz != nil {
			hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Take quiz"})
		}
		return append(hints, layout.KeyHint{Key: "S", Description: "Summary"})
	case s.chatOpen:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Ask"},
			{Key: "Esc", Description: "Close chat"},
		}
	case s.modalOpen:
		hints := []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Skip"},
		}
		if s.deps.Tutor != nil {
			hints = append(hints, layout.KeyHint{Key: "Ctrl+T", Description: "Ask tutor"})
		}
		return hints
	default:
		hints := []layout.KeyHint{
			{Key: "Space", Description: "Pause"},
		}
		if s.deps.Tutor != nil {
			hints = append(hints, layout.KeyHint{Key: "T", Description: "Tutor"})
		}
		return append(hints, layout.KeyHint{Key: "Esc", Description: "Leave"})
	}
}

// startSession appends the session-start event and fetches the resume
// position, both off the UI goroutine.
func (s *WatchScreen) startSession() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		_ = s.deps.Events.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID: s.sessionID,
			VideoID:   s.video.ID,
			Action:    "start",
		})
		pos, found := s.deps.Progress.LoadResume(ctx, s.video.ID)
		return resumeLoadedMsg{Position: pos, Found: found}
	}
}

func (s *WatchScreen) tickCmd() tea.Cmd {
	interval := s.deps.Config.SampleInterval
	if interval <= 0 {
		interval = time.Second
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return sampleTickMsg(t)
	})
}

func (s *WatchScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resumeLoadedMsg:
		if msg.Found {
			s.coord.SetSavedPosition(msg.Position)
		}
		return s, nil

	case sampleTickMsg:
		return s.handleTick(time.Time(msg))

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Forward everything else to whichever input is focused.
	if s.chatOpen {
		var cmd tea.Cmd
		s.chatInput, cmd = s.chatInput.Update(msg)
		return s, cmd
	}
	if s.modalOpen && s.activeCheckpoint.Kind == playback.KindFreeText {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// handleTick is the engine heartbeat: one sampler step plus polling of
// the async tutor and quiz slots.
func (s *WatchScreen) handleTick(now time.Time) (screen.Screen, tea.Cmd) {
	if s.coord.Closed() {
		return s, nil
	}

	// The player may learn the real duration after loading; prefer it over
	// the manifest value.
	if d, err := s.pl.Duration(); err == nil {
		s.coord.SetDuration(d)
	}

	s.sampler.Tick(now)

	if s.tutorWaiting && s.deps.Tutor != nil {
		if ex, err := s.deps.Tutor.ConsumeReply(); ex != nil || err != nil {
			s.tutorWaiting = false
			s.pendingQuestion = ""
			if err != nil {
				s.tutorErr = "The tutor is unavailable right now."
			} else {
				s.exchanges = append(s.exchanges, *ex)
				s.appendTutorEvent(*ex)
			}
		}
	}

	if s.quizWaiting && s.deps.Quiz != nil {
		if q, err := s.deps.Quiz.Consume(); q != nil || err != nil {
			s.quizWaiting = false
			if err != nil {
				s.quizErr = "Quiz generation failed."
				return s, s.tickCmd()
			}
			return s, s.pushQuiz(q)
		}
	}

	return s, s.tickCmd()
}

func (s *WatchScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			s.confirmQuit = false
			return s.endSession(false)
		case "n", "N", "esc":
			s.confirmQuit = false
			if !s.modalOpen && !s.ended {
				_ = s.pl.Play()
				s.paused = false
			}
		}
		return s, nil
	}

	if s.chatOpen {
		return s.handleChatKey(msg)
	}

	if s.ended {
		switch key {
		case "enter":
			if s.deps.Quiz != nil && !s.quizWaiting {
				return s, s.requestQuiz()
			}
			return s, nil
		case "s", "S", "esc":
			return s.endSession(true)
		}
		return s, nil
	}

	if s.modalOpen {
		return s.handleModalKey(msg)
	}

	// Plain playback.
	switch key {
	case " ", "space":
		if s.paused {
			_ = s.pl.Play()
		} else {
			_ = s.pl.Pause()
		}
		s.paused = !s.paused
	case "t", "T":
		if s.deps.Tutor != nil {
			s.openChat()
		}
	case "esc", "q":
		s.confirmQuit = true
		_ = s.pl.Pause()
	}
	return s, nil
}

func (s *WatchScreen) handleModalKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()
	cp := s.activeCheckpoint

	switch key {
	case "esc":
		if s.coord.SkipCheckpoint(cp.ID) {
			s.appendCheckpointEvent(cp, "skipped", "")
			s.closeModal()
		}
		return s, nil
	case "ctrl+t":
		if s.deps.Tutor != nil {
			s.openChat()
		}
		return s, nil
	case "enter":
		return s.submitCheckpointAnswer()
	}

	if cp.Kind == playback.KindMultipleChoice {
		switch key {
		case "up", "k":
			if s.mcSelected > 0 {
				s.mcSelected--
			}
		case "down", "j":
			if s.mcSelected < len(cp.Choices)-1 {
				s.mcSelected++
			}
		case "1", "2", "3", "4":
			idx := int(key[0] - '1')
			if idx < len(cp.Choices) {
				s.mcSelected = idx
				return s.submitCheckpointAnswer()
			}
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *WatchScreen) handleChatKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.chatOpen = false
		if !s.modalOpen && !s.ended && !s.paused {
			_ = s.pl.Play()
		}
		return s, nil
	case "enter":
		question := s.chatInput.Value()
		if question == "" || s.tutorWaiting {
			return s, nil
		}
		s.askTutor(question)
		s.chatInput = components.NewTextInput("Ask the tutor...", 120)
		return s, s.chatInput.Init()
	}

	var cmd tea.Cmd
	s.chatInput, cmd = s.chatInput.Update(msg)
	return s, cmd
}

func (s *WatchScreen) submitCheckpointAnswer() (screen.Screen, tea.Cmd) {
	cp := s.activeCheckpoint

	var answer string
	if cp.Kind == playback.KindMultipleChoice {
		if s.mcSelected >= 0 && s.mcSelected < len(cp.Choices) {
			answer = cp.Choices[s.mcSelected]
		}
	} else {
		answer = s.input.Value()
	}
	if answer == "" {
		return s, nil
	}

	s.attempts++
	if s.coord.SubmitAnswer(cp.ID, answer) {
		s.appendCheckpointEvent(cp, "completed", answer)
		s.closeModal()
	} else {
		s.answerWrong = true
		if cp.Kind == playback.KindFreeText {
			s.input = components.NewTextInput("Try again...", 80)
			return s, s.input.Init()
		}
	}
	return s, nil
}

// onCheckpointDue runs inside the coordinator's sample step.
func (s *WatchScreen) onCheckpointDue(cp playback.Checkpoint) {
	s.activeCheckpoint = cp
	s.modalOpen = true
	s.mcSelected = 0
	s.attempts = 0
	s.answerWrong = false
	s.input = components.NewTextInput("Type your answer...", 80)
	s.appendCheckpointEvent(cp, "fired", "")
}

func (s *WatchScreen) closeModal() {
	s.modalOpen = false
	s.answerWrong = false
	s.chatOpen = false
}

// onVideoEnded runs inside the coordinator's sample step.
func (s *WatchScreen) onVideoEnded() {
	s.ended = true
	_ = s.pl.Pause()
	st := s.coord.State()

	ctx := context.Background()
	_ = s.deps.Progress.MarkCompleted(ctx, s.video.ID)
	_ = s.deps.Events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:            s.sessionID,
		VideoID:              s.video.ID,
		Action:               "end",
		DurationSecs:         int(time.Since(s.startTime).Seconds()),
		FinalPositionSecs:    st.LastKnownTime,
		CheckpointsCompleted: len(st.Completed),
		CheckpointsSkipped:   len(st.Skipped),
		ReachedEnd:           true,
	})
	s.finished = true
}

func (s *WatchScreen) openChat() {
	s.chatOpen = true
	s.tutorErr = ""
	_ = s.pl.Pause()
	s.chatInput = components.NewTextInput("Ask the tutor...", 120)
}

func (s *WatchScreen) askTutor(question string) {
	st := s.coord.State()
	input := tutor.Input{
		CourseTitle:  s.course.Title,
		VideoTitle:   s.video.Title,
		PositionSecs: st.LastKnownTime,
		History:      s.exchanges,
		Question:     question,
	}
	if s.modalOpen {
		input.CheckpointQuestion = s.activeCheckpoint.Question
	}
	s.deps.Tutor.Ask(context.Background(), input)
	s.tutorWaiting = true
	s.pendingQuestion = question
}

func (s *WatchScreen) requestQuiz() tea.Cmd {
	var questions []string
	for _, def := range s.video.Checkpoints {
		questions = append(questions, def.Question)
	}
	s.deps.Quiz.Request(context.Background(), quiz.Input{
		CourseTitle:         s.course.Title,
		VideoTitle:          s.video.Title,
		VideoID:             s.video.ID,
		CheckpointQuestions: questions,
	})
	s.quizWaiting = true
	s.quizErr = ""
	return nil
}

// pushQuiz hands off to the quiz screen. The quiz screen pushes the
// summary when it finishes, carrying its results along.
func (s *WatchScreen) pushQuiz(q *quiz.Quiz) tea.Cmd {
	s.teardown()
	data := s.summaryData()
	qs := quizscreen.New(q, s.deps.Events, s.sessionID, data)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: qs}
	}
}

// endSession tears the session down and navigates to the summary (after
// the end panel) or back to the library (on early exit).
func (s *WatchScreen) endSession(toSummary bool) (screen.Screen, tea.Cmd) {
	st := s.coord.State()

	if !s.finished {
		ctx := context.Background()
		_ = s.deps.Events.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:            s.sessionID,
			VideoID:              s.video.ID,
			Action:               "end",
			DurationSecs:         int(time.Since(s.startTime).Seconds()),
			FinalPositionSecs:    st.LastKnownTime,
			CheckpointsCompleted: len(st.Completed),
			CheckpointsSkipped:   len(st.Skipped),
			ReachedEnd:           st.VideoEnded,
		})
		// Early exits still deserve an up-to-date resume position.
		if st.LastKnownTime > 0 {
			s.deps.Progress.SaveAsync(s.video.ID, st.LastKnownTime)
		}
		s.finished = true
	}

	s.teardown()

	if toSummary {
		data := s.summaryData()
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: summary.New(data)}
		}
	}
	return s, func() tea.Msg { return router.PopScreenMsg{} }
}

func (s *WatchScreen) teardown() {
	if s.coord.Closed() {
		return
	}
	s.coord.Close()
	_ = s.pl.Close()
}

func (s *WatchScreen) summaryData() summary.Data {
	st := s.coord.State()
	return summary.Data{
		VideoTitle:           s.video.Title,
		SessionDuration:      time.Since(s.startTime),
		FinalPosition:        st.LastKnownTime,
		VideoDuration:        s.video.Duration,
		CheckpointsCompleted: len(st.Completed),
		CheckpointsSkipped:   len(st.Skipped),
		CheckpointsTotal:     len(s.video.Checkpoints),
		ReachedEnd:           st.VideoEnded,
		TutorExchanges:       len(s.exchanges),
	}
}

func (s *WatchScreen) appendCheckpointEvent(cp playback.Checkpoint, action, answer string) {
	st := s.coord.State()
	_ = s.deps.Events.AppendCheckpointEvent(context.Background(), store.CheckpointEventData{
		SessionID:     s.sessionID,
		VideoID:       s.video.ID,
		CheckpointID:  cp.ID,
		Action:        action,
		PositionSecs:  st.LastKnownTime,
		LearnerAnswer: answer,
		Attempts:      s.attempts,
	})
}

func (s *WatchScreen) appendTutorEvent(ex tutor.Exchange) {
	_ = s.deps.Events.AppendTutorEvent(context.Background(), store.TutorEventData{
		SessionID:    s.sessionID,
		VideoID:      s.video.ID,
		PositionSecs: ex.PositionSecs,
		Question:     ex.Question,
		Reply:        ex.Reply,
	})
}
