package exercise

import (
	"math/rand"
	"time"

	"reorder-service/internal/models"
)

// Generator builds shuffled puzzles from sentences
type Generator struct {
	config *GeneratorConfig
	rand   *rand.Rand
}

// NewGenerator creates a new puzzle generator
func NewGenerator(config *GeneratorConfig) *Generator {
	if config == nil {
		config = DefaultGeneratorConfig()
	}
	return &Generator{
		config: config,
		rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Generate produces a puzzle for one sentence. siblings are the other
// sentences of the same lesson, used as the distractor pool on levels 3-4.
// A sentence with zero tokens yields an empty puzzle; degenerate input is
// the caller's problem.
func (g *Generator) Generate(sentence *models.Sentence, level int, siblings []models.Sentence) *Puzzle {
	var words, distractors []string

	if len(sentence.Distractors) > 0 {
		// Transformation mode: explicit decoys shuffled with the raw
		// content tokens, pool sampling skipped entirely.
		words = Tokenize(sentence.Content, LevelExact)
		distractors = append(distractors, sentence.Distractors...)
	} else {
		words = Tokenize(sentence.Content, level)
		distractors = g.sampleDistractors(sentence.ID, level, siblings)
	}

	shuffled := make([]string, 0, len(words)+len(distractors))
	shuffled = append(shuffled, words...)
	shuffled = append(shuffled, distractors...)
	g.rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return &Puzzle{
		SentenceID: sentence.ID,
		Words:      shuffled,
		WordCount:  len(words),
		TimeLimit:  TimeLimit(len(words), level),
		Difficulty: sentence.Difficulty,
		Prompt:     sentence.Prompt,
		Context:    sentence.Context,
	}
}

// sampleDistractors draws decoy words from the pooled normalized tokens of
// every sibling sentence. An empty pool means zero distractors at any level.
func (g *Generator) sampleDistractors(sentenceID string, level int, siblings []models.Sentence) []string {
	count := g.config.DistractorCounts[level]
	if count == 0 {
		return nil
	}

	var pool []string
	for _, sib := range siblings {
		if sib.ID == sentenceID {
			continue
		}
		pool = append(pool, Tokenize(sib.Content, LevelNormal)...)
	}
	if len(pool) == 0 {
		return nil
	}

	if g.config.WithReplacement {
		picked := make([]string, count)
		for i := range picked {
			picked[i] = pool[g.rand.Intn(len(pool))]
		}
		return picked
	}

	// Without replacement: partial shuffle, capped at the pool size.
	g.rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if count > len(pool) {
		count = len(pool)
	}
	return pool[:count]
}
