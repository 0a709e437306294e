package playback

import "testing"

func TestCheckAnswer_FreeText(t *testing.T) {
	tests := []struct {
		name     string
		learner  string
		expected string
		want     bool
	}{
		{"exact", "paris", "paris", true},
		{"surrounding whitespace", "  Paris ", "paris", true},
		{"case insensitive", "PARIS", "Paris", true},
		{"wrong answer", "Paris", "parys", false},
		{"empty input", "", "paris", false},
		{"whitespace only", "   ", "paris", false},
		{"expected has whitespace", "paris", " paris\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cp := Checkpoint{Kind: KindFreeText, Answer: tt.expected}
			if got := CheckAnswer(tt.learner, cp); got != tt.want {
				t.Errorf("CheckAnswer(%q, %q) = %v, want %v", tt.learner, tt.expected, got, tt.want)
			}
		})
	}
}

func TestCheckAnswer_MultipleChoice(t *testing.T) {
	cp := Checkpoint{
		Kind:    KindMultipleChoice,
		Choices: []string{"HTTP", "TCP", "UDP", "QUIC"},
		Answer:  "TCP",
	}

	tests := []struct {
		name    string
		learner string
		want    bool
	}{
		{"by correct index", "2", true},
		{"by wrong index", "3", false},
		{"by exact text", "TCP", true},
		{"by wrong text", "HTTP", false},
		{"text is not case-folded", "tcp", false},
		{"text is not trimmed", " TCP", false},
		{"index out of range falls back to text", "9", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckAnswer(tt.learner, cp); got != tt.want {
				t.Errorf("CheckAnswer(%q) = %v, want %v", tt.learner, got, tt.want)
			}
		})
	}
}
