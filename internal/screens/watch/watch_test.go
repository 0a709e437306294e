package watch

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/rmehra/retain/internal/course"
	"github.com/rmehra/retain/internal/playback"
	"github.com/rmehra/retain/internal/player"
	"github.com/rmehra/retain/internal/progress"
	"github.com/rmehra/retain/internal/router"
	"github.com/rmehra/retain/internal/screen"
	"github.com/rmehra/retain/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	mu               sync.Mutex
	sessionEvents    []store.SessionEventData
	checkpointEvents []store.CheckpointEventData
	quizEvents       []store.QuizEventData
	tutorEvents      []store.TutorEventData
}

func (m *mockEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessionEvents = append(m.sessionEvents, data)
	return nil
}

func (m *mockEventRepo) AppendCheckpointEvent(_ context.Context, data store.CheckpointEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checkpointEvents = append(m.checkpointEvents, data)
	return nil
}

func (m *mockEventRepo) AppendQuizEvent(_ context.Context, data store.QuizEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.quizEvents = append(m.quizEvents, data)
	return nil
}

func (m *mockEventRepo) AppendTutorEvent(_ context.Context, data store.TutorEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tutorEvents = append(m.tutorEvents, data)
	return nil
}

func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) GetLLMEvent(_ context.Context, _ int) (*store.LLMEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMUsageStat, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByModel(_ context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}
func (m *mockEventRepo) QuerySessionSummaries(_ context.Context, _ store.QueryOpts) ([]store.SessionSummaryRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) QuizAccuracy(_ context.Context, _ string) (float64, int, error) {
	return 0, 0, nil
}

func (m *mockEventRepo) checkpointActions() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.checkpointEvents))
	for _, e := range m.checkpointEvents {
		out = append(out, e.Action)
	}
	return out
}

// fakeProgressRepo implements store.ProgressRepo in memory.
type fakeProgressRepo struct {
	mu   sync.Mutex
	rows map[string]*store.Progress
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{rows: make(map[string]*store.Progress)}
}

func (f *fakeProgressRepo) Get(_ context.Context, u, v string) (*store.Progress, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.rows[u+"/"+v]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProgressRepo) Upsert(_ context.Context, u, v string, pos float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[u+"/"+v] = &store.Progress{UserID: u, VideoID: v, PositionSecs: pos}
	return nil
}

func (f *fakeProgressRepo) MarkCompleted(_ context.Context, u, v string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.rows[u+"/"+v]
	if !ok {
		p = &store.Progress{UserID: u, VideoID: v}
		f.rows[u+"/"+v] = p
	}
	p.Completed = true
	return nil
}

func (f *fakeProgressRepo) All(_ context.Context, u string) ([]store.Progress, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []store.Progress
	for _, p := range f.rows {
		if p.UserID == u {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProgressRepo) DeleteAll(_ context.Context, u string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int
	for k, p := range f.rows {
		if p.UserID == u {
			delete(f.rows, k)
			n++
		}
	}
	return n, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testVideo() course.Video {
	return course.Video{
		ID:       "vid-1",
		Title:    "Signals and Slots",
		Media:    "lesson.mp4",
		Duration: 60,
		Checkpoints: []course.CheckpointDef{
			{ID: "cp-1", At: 10, Kind: "multiple_choice",
				Question: "Which signal fires first?",
				Choices:  []string{"connect", "emit", "dispatch"},
				Answer:   "emit"},
			{ID: "cp-2", At: 30, Kind: "free_text",
				Question: "Name the dispatch phase.",
				Answer:   "bubbling"},
		},
	}
}

func testConfig() playback.Config {
	return playback.Config{
		TriggerWindow:     1.5,
		RearmSlack:        5,
		PersistInterval:   time.Hour,
		EndThreshold:      2,
		SampleInterval:    time.Millisecond,
		ResumeSettleDelay: 0,
	}
}

func testWatchScreen(t *testing.T) (*WatchScreen, *player.Scripted, *mockEventRepo, *progress.Service) {
	t.Helper()
	events := &mockEventRepo{}
	prog := progress.NewService(newFakeProgressRepo(), "local")
	t.Cleanup(prog.Close)

	v := testVideo()
	c := course.Course{ID: "course-1", Title: "Frontend Internals", Videos: []course.Video{v}}
	sp := player.NewScripted(v.Duration)
	sp.Start()

	s := New(c, v, sp, Deps{
		UserID:   "local",
		Progress: prog,
		Events:   events,
		Config:   testConfig(),
	})
	return s, sp, events, prog
}

// tickAt seeks the player and delivers one engine tick.
func tickAt(t *testing.T, s *WatchScreen, sp *player.Scripted, pos float64, now time.Time) screen.Screen {
	t.Helper()
	if err := sp.SeekTo(pos); err != nil {
		t.Fatalf("SeekTo(%v): %v", pos, err)
	}
	scr, _ := s.Update(sampleTickMsg(now))
	return scr
}

func TestWatchScreen_Title(t *testing.T) {
	s, _, _, _ := testWatchScreen(t)
	if s.Title() != "Signals and Slots" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestWatchScreen_CheckpointFiresAndPauses(t *testing.T) {
	s, sp, events, _ := testWatchScreen(t)
	now := time.Now()

	tickAt(t, s, sp, 5, now)
	if s.modalOpen {
		t.Fatal("checkpoint fired before its timestamp")
	}

	tickAt(t, s, sp, 10, now.Add(time.Second))
	if !s.modalOpen {
		t.Fatal("expected checkpoint modal at t=10")
	}
	if s.activeCheckpoint.ID != "cp-1" {
		t.Errorf("active checkpoint = %q, want cp-1", s.activeCheckpoint.ID)
	}
	if sp.Playing() {
		t.Error("expected player paused while checkpoint is active")
	}
	if got := events.checkpointActions(); len(got) != 1 || got[0] != "fired" {
		t.Errorf("checkpoint events = %v, want [fired]", got)
	}
}

func TestWatchScreen_CorrectAnswerResumes(t *testing.T) {
	s, sp, events, _ := testWatchScreen(t)
	now := time.Now()
	tickAt(t, s, sp, 10, now)

	// "emit" is choice 2.
	s.Update(keyPress('2'))

	if s.modalOpen {
		t.Error("expected modal closed after correct answer")
	}
	if !sp.Playing() {
		t.Error("expected playback resumed")
	}
	got := events.checkpointActions()
	if len(got) != 2 || got[1] != "completed" {
		t.Errorf("checkpoint events = %v, want [fired completed]", got)
	}
	if events.checkpointEvents[1].LearnerAnswer != "emit" {
		t.Errorf("learner answer = %q, want emit", events.checkpointEvents[1].LearnerAnswer)
	}
}

func TestWatchScreen_WrongAnswerKeepsModal(t *testing.T) {
	s, sp, _, _ := testWatchScreen(t)
	tickAt(t, s, sp, 10, time.Now())

	s.Update(keyPress('1')) // "connect" is wrong

	if !s.modalOpen {
		t.Error("expected modal to stay open after wrong answer")
	}
	if !s.answerWrong {
		t.Error("expected wrong-answer flag")
	}
	if sp.Playing() {
		t.Error("player must stay paused until resolved or skipped")
	}
}

func TestWatchScreen_SkipResumes(t *testing.T) {
	s, sp, events, _ := testWatchScreen(t)
	tickAt(t, s, sp, 10, time.Now())

	s.Update(specialKey(tea.KeyEscape))

	if s.modalOpen {
		t.Error("expected modal closed after skip")
	}
	if !sp.Playing() {
		t.Error("expected playback resumed after skip")
	}
	got := events.checkpointActions()
	if len(got) != 2 || got[1] != "skipped" {
		t.Errorf("checkpoint events = %v, want [fired skipped]", got)
	}
}

func TestWatchScreen_FreeTextAnswer(t *testing.T) {
	s, sp, events, _ := testWatchScreen(t)
	now := time.Now()

	tickAt(t, s, sp, 10, now)
	s.Update(specialKey(tea.KeyEscape)) // skip the MC checkpoint

	tickAt(t, s, sp, 30, now.Add(time.Second))
	if !s.modalOpen || s.activeCheckpoint.ID != "cp-2" {
		t.Fatal("expected free-text checkpoint at t=30")
	}

	s.input.Model.SetValue("bubbling")
	s.Update(specialKey(tea.KeyEnter))

	if s.modalOpen {
		t.Error("expected modal closed after correct free-text answer")
	}
	got := events.checkpointActions()
	if len(got) != 4 || got[3] != "completed" {
		t.Errorf("checkpoint events = %v", got)
	}
}

func TestWatchScreen_QuitConfirm(t *testing.T) {
	s, sp, _, _ := testWatchScreen(t)
	tickAt(t, s, sp, 5, time.Now())

	s.Update(specialKey(tea.KeyEscape))
	if !s.confirmQuit {
		t.Fatal("expected quit confirmation")
	}
	if sp.Playing() {
		t.Error("expected player paused under quit dialog")
	}

	s.Update(keyPress('n'))
	if s.confirmQuit {
		t.Error("expected quit confirmation dismissed")
	}
	if !sp.Playing() {
		t.Error("expected playback resumed after dismissing quit")
	}
}

func TestWatchScreen_EarlyExitJournalsSession(t *testing.T) {
	s, sp, events, _ := testWatchScreen(t)
	tickAt(t, s, sp, 5, time.Now())

	s.Update(specialKey(tea.KeyEscape))
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected navigation command after confirmed quit")
	}
	if msg := cmd(); msg != (router.PopScreenMsg{}) {
		t.Errorf("expected PopScreenMsg, got %T", msg)
	}

	events.mu.Lock()
	defer events.mu.Unlock()
	if len(events.sessionEvents) != 1 {
		t.Fatalf("session events = %d, want 1 (end)", len(events.sessionEvents))
	}
	end := events.sessionEvents[0]
	if end.Action != "end" || end.ReachedEnd {
		t.Errorf("end event = %+v", end)
	}
	if end.FinalPositionSecs != 5 {
		t.Errorf("final position = %v, want 5", end.FinalPositionSecs)
	}
	if !s.coord.Closed() {
		t.Error("expected engine torn down")
	}
}

func TestWatchScreen_EndOfVideo(t *testing.T) {
	s, sp, events, _ := testWatchScreen(t)
	now := time.Now()

	tickAt(t, s, sp, 10, now)
	s.Update(keyPress('2'))
	tickAt(t, s, sp, 30, now.Add(time.Second))
	s.Update(specialKey(tea.KeyEscape))

	tickAt(t, s, sp, 59, now.Add(2*time.Second))
	if !s.ended {
		t.Fatal("expected end panel within the end threshold")
	}
	if sp.Playing() {
		t.Error("expected player paused at end panel")
	}

	events.mu.Lock()
	defer events.mu.Unlock()
	if len(events.sessionEvents) != 1 {
		t.Fatalf("session events = %d, want 1", len(events.sessionEvents))
	}
	end := events.sessionEvents[0]
	if !end.ReachedEnd || end.CheckpointsCompleted != 1 || end.CheckpointsSkipped != 1 {
		t.Errorf("end event = %+v", end)
	}
}

func TestWatchScreen_ResumeSeekApplied(t *testing.T) {
	s, sp, _, _ := testWatchScreen(t)
	now := time.Now()

	s.Update(resumeLoadedMsg{Position: 42, Found: true})

	// First sample applies the resume seek instead of driving triggers.
	tickAt(t, s, sp, 0, now)
	if pos, _ := sp.CurrentTime(); pos != 42 {
		t.Errorf("position after resume = %v, want 42", pos)
	}
	if s.modalOpen {
		t.Error("resume sample must not fire checkpoints")
	}
}

func TestWatchScreen_SavedIndicator(t *testing.T) {
	s, _, _, prog := testWatchScreen(t)

	if _, ok := s.lastPersisted(); ok {
		t.Fatal("indicator set before any write")
	}

	prog.SaveAsync("vid-1", 205)
	prog.Wait()

	secs, ok := s.lastPersisted()
	if !ok || secs != 205 {
		t.Fatalf("lastPersisted = (%v, %v), want (205, true)", secs, ok)
	}
	if !strings.Contains(s.renderPlaybackStatus(80), "saved @ 3:25") {
		t.Errorf("status line missing saved marker: %q", s.renderPlaybackStatus(80))
	}

	// Writes for another video do not touch this session's indicator.
	prog.SaveAsync("vid-other", 7)
	prog.Wait()
	if secs, _ := s.lastPersisted(); secs != 205 {
		t.Errorf("indicator moved on a foreign video write: %v", secs)
	}
}

func TestWatchScreen_PauseToggle(t *testing.T) {
	s, sp, _, _ := testWatchScreen(t)
	tickAt(t, s, sp, 5, time.Now())

	s.Update(keyPress(' '))
	if sp.Playing() {
		t.Error("expected paused after space")
	}
	s.Update(keyPress(' '))
	if !sp.Playing() {
		t.Error("expected playing after second space")
	}
}

func TestWatchScreen_KeyHints(t *testing.T) {
	s, sp, _, _ := testWatchScreen(t)
	if len(s.KeyHints()) == 0 {
		t.Error("expected key hints during playback")
	}
	tickAt(t, s, sp, 10, time.Now())
	if len(s.KeyHints()) == 0 {
		t.Error("expected key hints for the checkpoint modal")
	}
}

func TestWatchScreen_View(t *testing.T) {
	s, sp, _, _ := testWatchScreen(t)
	tickAt(t, s, sp, 10, time.Now())
	if s.View(100, 30) == "" {
		t.Error("expected non-empty view")
	}
}
