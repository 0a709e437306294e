package course

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func validCourse() *Course {
	return &Course{
		ID:    "networking-101",
		Title: "Networking Fundamentals",
		Videos: []Video{
			{
				ID:       "tcp-basics",
				Title:    "TCP Basics",
				Media:    "media/tcp-basics.mp4",
				Duration: 600,
				Checkpoints: []CheckpointDef{
					{ID: "cp-1", At: 90, Kind: "free_text", Question: "What layer is TCP?", Answer: "transport"},
					{ID: "cp-2", At: 300, Kind: "multiple_choice", Question: "Handshake steps?", Choices: []string{"2", "3", "4"}, Answer: "3"},
				},
			},
		},
	}
}

func TestValidate_AcceptsWellFormedCourse(t *testing.T) {
	if err := Validate(validCourse()); err != nil {
		t.Fatalf("Validate = %v, want nil", err)
	}
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Course)
		wantMsg string
	}{
		{
			"duplicate checkpoint ID",
			func(c *Course) { c.Videos[0].Checkpoints[1].ID = "cp-1" },
			"duplicate checkpoint ID",
		},
		{
			"out of order checkpoints",
			func(c *Course) { c.Videos[0].Checkpoints[1].At = 50 },
			"out of order",
		},
		{
			"checkpoint past the end",
			func(c *Course) { c.Videos[0].Checkpoints[1].At = 700 },
			"past the end",
		},
		{
			"missing media",
			func(c *Course) { c.Videos[0].Media = "" },
			"no media source",
		},
		{
			"multiple choice needs choices",
			func(c *Course) { c.Videos[0].Checkpoints[1].Choices = []string{"3"} },
			"at least 2 choices",
		},
		{
			"duplicate video ID",
			func(c *Course) { c.Videos = append(c.Videos, c.Videos[0]) },
			"duplicate video ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCourse()
			tt.mutate(c)
			err := Validate(c)
			if err == nil {
				t.Fatal("Validate = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestValidate_NegativeTimestampTolerated(t *testing.T) {
	// Malformed timestamps are unreachable rather than fatal: the engine
	// simply never fires them.
	c := validCourse()
	c.Videos[0].Checkpoints[0].At = -10
	if err := Validate(c); err != nil {
		t.Errorf("negative timestamp rejected: %v", err)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	manifest := `{
		"id": "go-course",
		"title": "Go",
		"videos": [{
			"id": "v1", "title": "Intro", "media": "v1.mp4", "duration_secs": 120,
			"checkpoints": [{"id": "c1", "at_secs": 30, "kind": "free_text", "question": "q", "answer": "a"}]
		}]
	}`
	if err := os.WriteFile(filepath.Join(dir, "go.json"), []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}
	// Non-JSON files are ignored.
	os.WriteFile(filepath.Join(dir, "README.md"), []byte("x"), 0o644)

	courses, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(courses) != 1 || courses[0].ID != "go-course" {
		t.Fatalf("courses = %v", courses)
	}

	v, ok := courses[0].FindVideo("v1")
	if !ok {
		t.Fatal("FindVideo(v1) not found")
	}
	cps := v.EngineCheckpoints()
	if len(cps) != 1 || cps[0].At != 30 {
		t.Errorf("engine checkpoints = %v", cps)
	}
}

func TestLoadDir_MissingDirIsEmpty(t *testing.T) {
	courses, err := LoadDir(filepath.Join(t.TempDir(), "nope"))
	if err != nil || courses != nil {
		t.Errorf("LoadDir(missing) = (%v, %v), want (nil, nil)", courses, err)
	}
}
