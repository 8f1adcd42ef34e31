package exercise

import "strings"

// Validate checks a submitted word arrangement against the canonical
// content. Level 1 demands exact equality including case and punctuation;
// every other level compares the normalized forms. The canonical answer is
// always returned, this is the single point where the true order leaves
// the engine.
func Validate(content string, arrangement []string, level int) ValidationResult {
	submission := strings.Join(arrangement, " ")

	var correct bool
	if level == LevelExact {
		correct = submission == content
	} else {
		correct = NormalizeText(submission) == NormalizeText(content)
	}

	return ValidationResult{
		IsCorrect:       correct,
		CanonicalAnswer: content,
	}
}
