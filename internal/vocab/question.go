package vocab

// Placeholder is the blank marker each sentence carries where a word may go.
const Placeholder = "_____"

// SentenceCount is the number of candidate sentences in every question.
const SentenceCount = 3

// Question is a validated vocabulary question. Values returned by a
// Supplier have already passed the validator chain and are not mutated
// afterwards.
type Question struct {
	// Word is the vocabulary term being practiced.
	Word string

	// Sentences holds exactly SentenceCount sentences, each containing
	// Placeholder once.
	Sentences []string

	// CorrectIndex is the index into Sentences where Word fits.
	CorrectIndex int

	// Explanation describes the word's meaning. Shown when the answer is
	// revealed.
	Explanation string
}

// questionOutput is the raw LLM payload before validation. The index is
// decoded as a float so that 1.0 is accepted and 1.5 can be rejected.
type questionOutput struct {
	Word                 string   `json:"word"`
	Sentences            []string `json:"sentences"`
	CorrectSentenceIndex float64  `json:"correctSentenceIndex"`
	Explanation          string   `json:"explanation"`
}
