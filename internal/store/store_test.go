package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestProgressUpsertRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	// Never watched.
	p, err := repo.Get(ctx, "local", "vid-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p != nil {
		t.Fatalf("expected nil progress for unwatched video, got %+v", p)
	}

	if err := repo.Upsert(ctx, "local", "vid-1", 42.5); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := repo.Upsert(ctx, "local", "vid-1", 61); err != nil {
		t.Fatalf("second Upsert: %v", err)
	}

	p, err = repo.Get(ctx, "local", "vid-1")
	if err != nil {
		t.Fatalf("Get after upsert: %v", err)
	}
	if p == nil || p.PositionSecs != 61 {
		t.Fatalf("progress = %+v, want position 61 (last write wins)", p)
	}
	if p.Completed {
		t.Error("progress marked completed without MarkCompleted")
	}
}

func TestProgressMarkCompleted(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	if err := repo.Upsert(ctx, "local", "vid-2", 100); err != nil {
		t.Fatal(err)
	}
	if err := repo.MarkCompleted(ctx, "local", "vid-2"); err != nil {
		t.Fatalf("MarkCompleted: %v", err)
	}

	p, err := repo.Get(ctx, "local", "vid-2")
	if err != nil {
		t.Fatal(err)
	}
	if p == nil || !p.Completed || p.PositionSecs != 100 {
		t.Errorf("progress = %+v, want completed at position 100", p)
	}

	// Completing a never-watched video still creates the row.
	if err := repo.MarkCompleted(ctx, "local", "vid-3"); err != nil {
		t.Fatalf("MarkCompleted on fresh video: %v", err)
	}
	p, _ = repo.Get(ctx, "local", "vid-3")
	if p == nil || !p.Completed {
		t.Errorf("fresh completion = %+v", p)
	}
}

func TestEventJournalOrdering(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", VideoID: "vid-1", Action: "start",
	})
	if err != nil {
		t.Fatalf("append session start: %v", err)
	}
	err = repo.AppendCheckpointEvent(ctx, CheckpointEventData{
		SessionID: "s1", VideoID: "vid-1", CheckpointID: "cp-1",
		Action: "fired", PositionSecs: 90.4,
	})
	if err != nil {
		t.Fatalf("append checkpoint event: %v", err)
	}
	err = repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", VideoID: "vid-1", Action: "end",
		DurationSecs: 300, FinalPositionSecs: 290, CheckpointsCompleted: 1,
	})
	if err != nil {
		t.Fatalf("append session end: %v", err)
	}

	summaries, err := repo.QuerySessionSummaries(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query summaries: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("summaries = %d, want 1 (only end events)", len(summaries))
	}
	got := summaries[0]
	if got.SessionID != "s1" || got.CheckpointsCompleted != 1 || got.FinalPositionSecs != 290 {
		t.Errorf("summary = %+v", got)
	}
}

func TestQuizAccuracy(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	acc, n, err := repo.QuizAccuracy(ctx, "vid-1")
	if err != nil || acc != 0 || n != 0 {
		t.Fatalf("empty accuracy = (%v, %d, %v), want (0, 0, nil)", acc, n, err)
	}

	for _, correct := range []bool{true, true, false, true} {
		err := repo.AppendQuizEvent(ctx, QuizEventData{
			SessionID: "s1", VideoID: "vid-1",
			QuestionText: "q", CorrectAnswer: "a", LearnerAnswer: "a",
			Correct: correct,
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	acc, n, err = repo.QuizAccuracy(ctx, "vid-1")
	if err != nil {
		t.Fatal(err)
	}
	if n != 4 || acc != 0.75 {
		t.Errorf("accuracy = (%v, %d), want (0.75, 4)", acc, n)
	}
}

func TestProgressDeleteAll(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	for _, vid := range []string{"vid-1", "vid-2"} {
		if err := repo.Upsert(ctx, "local", vid, 10); err != nil {
			t.Fatal(err)
		}
	}
	if err := repo.Upsert(ctx, "other", "vid-1", 10); err != nil {
		t.Fatal(err)
	}

	n, err := repo.DeleteAll(ctx, "local")
	if err != nil {
		t.Fatalf("DeleteAll: %v", err)
	}
	if n != 2 {
		t.Errorf("deleted = %d, want 2", n)
	}

	rows, err := repo.All(ctx, "local")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 0 {
		t.Errorf("rows after delete = %d, want 0", len(rows))
	}

	// Other users' rows survive.
	p, _ := repo.Get(ctx, "other", "vid-1")
	if p == nil {
		t.Error("expected other user's progress untouched")
	}
}

func TestLLMEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "anthropic", Model: "m-1", Purpose: "tutor",
		InputTokens: 100, OutputTokens: 40, LatencyMs: 900, Success: true,
		RequestBody: `{"q":"why"}`, ResponseBody: `{"a":"because"}`,
	})
	if err != nil {
		t.Fatalf("append LLM request: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query LLM events: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}
	e := events[0]
	if e.Purpose != "tutor" || e.InputTokens != 100 || !e.Success {
		t.Errorf("event = %+v", e)
	}

	got, err := repo.GetLLMEvent(ctx, e.ID)
	if err != nil {
		t.Fatalf("get LLM event: %v", err)
	}
	if got == nil || got.RequestBody != `{"q":"why"}` || got.ResponseBody != `{"a":"because"}` {
		t.Errorf("event bodies = %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, e.ID+999)
	if err != nil || missing != nil {
		t.Errorf("missing event = (%+v, %v), want (nil, nil)", missing, err)
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	calls := []LLMRequestEventData{
		{Provider: "anthropic", Model: "m-1", Purpose: "tutor", InputTokens: 100, OutputTokens: 50, LatencyMs: 800, Success: true},
		{Provider: "anthropic", Model: "m-1", Purpose: "tutor", InputTokens: 300, OutputTokens: 150, LatencyMs: 1200, Success: true},
		{Provider: "anthropic", Model: "m-2", Purpose: "quiz", InputTokens: 500, OutputTokens: 200, LatencyMs: 2000, Success: true},
	}
	for _, c := range calls {
		if err := repo.AppendLLMRequest(ctx, c); err != nil {
			t.Fatal(err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("purposes = %d, want 2", len(byPurpose))
	}
	var tutorStat *LLMUsageStat
	for i := range byPurpose {
		if byPurpose[i].Purpose == "tutor" {
			tutorStat = &byPurpose[i]
		}
	}
	if tutorStat == nil {
		t.Fatal("missing tutor purpose")
	}
	if tutorStat.Calls != 2 || tutorStat.InputTokens != 400 || tutorStat.AvgLatencyMs != 1000 {
		t.Errorf("tutor stat = %+v", tutorStat)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("models = %d, want 2", len(byModel))
	}
	for _, mu := range byModel {
		if mu.Model == "m-2" && (mu.Calls != 1 || mu.OutputTokens != 200) {
			t.Errorf("m-2 usage = %+v", mu)
		}
	}
}
