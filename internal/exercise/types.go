package exercise

// Puzzle is the ephemeral, shuffled representation of a sentence sent to a
// learner. It never carries the canonical word order; the sentence content
// is only disclosed by the validator after a submission.
type Puzzle struct {
	SentenceID string   `json:"sentence_id"`
	Words      []string `json:"words"`
	WordCount  int      `json:"word_count"`
	TimeLimit  int      `json:"time_limit"`
	Difficulty string   `json:"difficulty"`
	Prompt     string   `json:"prompt,omitempty"`
	Context    string   `json:"context,omitempty"`
}

// Session is the client-facing payload for a new or review session.
type Session struct {
	Level   int      `json:"level"`
	Puzzles []Puzzle `json:"puzzles"`
}

// ValidationResult is the verdict for a submitted arrangement. The canonical
// answer is always included, correct or not.
type ValidationResult struct {
	IsCorrect       bool   `json:"is_correct"`
	CanonicalAnswer string `json:"canonical_answer"`
}

// GeneratorConfig holds the configuration for puzzle generation behavior
type GeneratorConfig struct {
	// DistractorCounts maps a level to the number of decoy words injected
	// when sampling from the sibling-sentence pool.
	DistractorCounts map[int]int `json:"distractor_counts"`
	// WithReplacement controls pool sampling: with replacement duplicates
	// are possible, without replacement picks are distinct.
	WithReplacement bool `json:"with_replacement"`
}

// Default configuration based on requirements
func DefaultGeneratorConfig() *GeneratorConfig {
	return &GeneratorConfig{
		DistractorCounts: map[int]int{
			LevelHard:   3,
			LevelExpert: 5,
		},
		WithReplacement: true,
	}
}

// Levels select how aggressively a sentence is normalized and padded with
// decoys before shuffling.
const (
	LevelExact  = 1
	LevelNormal = 2
	LevelHard   = 3
	LevelExpert = 4
)
