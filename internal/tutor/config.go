package tutor

// MaxHistoryExchanges bounds how many prior exchanges are sent as context.
const MaxHistoryExchanges = 6

// Config holds tutor reply settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for tutor replies.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.4,
	}
}
