package i

import (
	"time"
)

// Tokenizer defines methods for generating and validating tokens.
type Tokenizer interface {
	// Generate creates a token for subject valid for expTime.
	Generate(subject string, expTime time.Duration) (string, error)

	// Subject validates a token and returns the subject it was issued for.
	Subject(token string) (string, error)
}
