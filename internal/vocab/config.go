package vocab

// Config controls the behavior of the LLMSupplier.
type Config struct {
	// Validators run in order on every decoded question; the first
	// failure rejects it.
	Validators []Validator

	// MaxTokens is the token budget for the LLM response. Zero leaves the
	// provider default.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with the standard validator chain.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&DistinctSentencesValidator{},
		},
		MaxTokens:   1024,
		Temperature: 0.9,
	}
}
