package exercise

import "math"

const (
	baseBuffer        = 5
	fallbackTimeLimit = 60
)

// TimeLimit computes the countdown budget in seconds for a puzzle. Higher
// levels get less time per word. An out-of-range level degrades to a flat
// 60 second budget instead of failing.
func TimeLimit(wordCount, level int) int {
	switch level {
	case LevelExact:
		return wordCount*4 + baseBuffer
	case LevelNormal:
		return int(math.Ceil(float64(wordCount)*2.5)) + baseBuffer
	case LevelHard:
		return int(math.Ceil(float64(wordCount)*1.5)) + baseBuffer
	case LevelExpert:
		return wordCount + baseBuffer
	default:
		return fallbackTimeLimit
	}
}
