package quiz

// Config holds quiz generation settings.
type Config struct {
	NumQuestions int
	MaxTokens    int
	Temperature  float64
}

// DefaultConfig returns sensible defaults for quiz generation.
func DefaultConfig() Config {
	return Config{
		NumQuestions: 4,
		MaxTokens:    1024,
		Temperature:  0.6,
	}
}
