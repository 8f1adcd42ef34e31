package exercise

import (
	"sort"
	"strings"
	"testing"

	"reorder-service/internal/models"
)

func sentence(id, lessonID, content string) models.Sentence {
	s := models.Sentence{ID: id, LessonID: lessonID, Content: content}
	s.EnsureDerivedFields()
	return s
}

func sortedCopy(words []string) []string {
	out := append([]string(nil), words...)
	sort.Strings(out)
	return out
}

func TestGenerateLevelOnePreservesTokens(t *testing.T) {
	g := NewGenerator(nil)
	s := sentence("s1", "l1", "I like red apples")

	puzzle := g.Generate(&s, LevelExact, nil)

	if puzzle.WordCount != 4 {
		t.Errorf("Expected word count 4, got %d", puzzle.WordCount)
	}
	if puzzle.TimeLimit != 21 {
		t.Errorf("Expected time limit 21, got %d", puzzle.TimeLimit)
	}

	got := sortedCopy(puzzle.Words)
	want := sortedCopy([]string{"I", "like", "red", "apples"})
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected tokens %v in some order, got %v", want, puzzle.Words)
		}
	}
}

func TestGenerateLevelTwoNormalizes(t *testing.T) {
	g := NewGenerator(nil)
	s := sentence("s1", "l1", "Hello, World!")

	puzzle := g.Generate(&s, LevelNormal, nil)

	got := sortedCopy(puzzle.Words)
	want := sortedCopy([]string{"hello", "world"})
	if len(got) != len(want) {
		t.Fatalf("Expected %d tokens, got %v", len(want), puzzle.Words)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected tokens %v in some order, got %v", want, puzzle.Words)
		}
	}
	if puzzle.TimeLimit != 10 {
		t.Errorf("Expected time limit 10, got %d", puzzle.TimeLimit)
	}
}

func TestDistractorInjectionCounts(t *testing.T) {
	testCases := []struct {
		name     string
		level    int
		siblings []models.Sentence
		expected int
	}{
		{
			"level 3 with siblings", LevelHard,
			[]models.Sentence{sentence("s2", "l1", "The quick brown fox")},
			3,
		},
		{
			"level 4 with siblings", LevelExpert,
			[]models.Sentence{sentence("s2", "l1", "The quick brown fox")},
			5,
		},
		{"level 3 no siblings", LevelHard, nil, 0},
		{"level 4 no siblings", LevelExpert, nil, 0},
		{
			"level 2 never injects", LevelNormal,
			[]models.Sentence{sentence("s2", "l1", "The quick brown fox")},
			0,
		},
		{
			"pool excludes the puzzled sentence", LevelHard,
			[]models.Sentence{sentence("s1", "l1", "I like red apples")},
			0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGenerator(nil)
			s := sentence("s1", "l1", "I like red apples")

			puzzle := g.Generate(&s, tc.level, tc.siblings)

			extras := len(puzzle.Words) - puzzle.WordCount
			if extras != tc.expected {
				t.Errorf("Expected %d distractors, got %d (words %v)", tc.expected, extras, puzzle.Words)
			}
		})
	}
}

func TestDistractorsComeFromSiblingPool(t *testing.T) {
	g := NewGenerator(nil)
	s := sentence("s1", "l1", "alpha beta gamma")
	siblings := []models.Sentence{sentence("s2", "l1", "delta epsilon")}

	puzzle := g.Generate(&s, LevelHard, siblings)

	pool := map[string]bool{"delta": true, "epsilon": true}
	own := map[string]bool{"alpha": true, "beta": true, "gamma": true}
	for _, w := range puzzle.Words {
		if !pool[w] && !own[w] {
			t.Errorf("Word %q is neither a content token nor from the sibling pool", w)
		}
	}
}

func TestSamplingWithoutReplacement(t *testing.T) {
	config := DefaultGeneratorConfig()
	config.WithReplacement = false
	g := NewGenerator(config)

	s := sentence("s1", "l1", "alpha beta")
	siblings := []models.Sentence{
		sentence("s2", "l1", "one two three"),
		sentence("s3", "l1", "four five six"),
	}

	// Repeat to make a collision likely if replacement were used.
	for i := 0; i < 50; i++ {
		puzzle := g.Generate(&s, LevelExpert, siblings)

		seen := map[string]int{}
		for _, w := range puzzle.Words {
			if w != "alpha" && w != "beta" {
				seen[w]++
			}
		}
		for w, n := range seen {
			if n > 1 {
				t.Fatalf("Distractor %q drawn %d times without replacement", w, n)
			}
		}
	}
}

func TestSamplingWithoutReplacementCapsAtPoolSize(t *testing.T) {
	config := DefaultGeneratorConfig()
	config.WithReplacement = false
	g := NewGenerator(config)

	s := sentence("s1", "l1", "alpha beta")
	siblings := []models.Sentence{sentence("s2", "l1", "one two")}

	puzzle := g.Generate(&s, LevelExpert, siblings)

	extras := len(puzzle.Words) - puzzle.WordCount
	if extras != 2 {
		t.Errorf("Expected pool-capped 2 distractors, got %d", extras)
	}
}

func TestExplicitDistractorsOverridePoolSampling(t *testing.T) {
	g := NewGenerator(nil)
	s := sentence("s1", "l1", "She walks Home")
	s.Distractors = []string{"walked", "walking"}
	siblings := []models.Sentence{sentence("s2", "l1", "unrelated sibling words")}

	puzzle := g.Generate(&s, LevelExpert, siblings)

	if puzzle.WordCount != 3 {
		t.Errorf("Expected word count 3, got %d", puzzle.WordCount)
	}
	got := sortedCopy(puzzle.Words)
	want := sortedCopy([]string{"She", "walks", "Home", "walked", "walking"})
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("Expected tokens %v in some order, got %v", want, puzzle.Words)
	}
}

func TestGenerateEmptySentence(t *testing.T) {
	g := NewGenerator(nil)
	s := sentence("s1", "l1", "")

	puzzle := g.Generate(&s, LevelExact, nil)

	if len(puzzle.Words) != 0 {
		t.Errorf("Expected empty puzzle, got %v", puzzle.Words)
	}
	if puzzle.WordCount != 0 {
		t.Errorf("Expected word count 0, got %d", puzzle.WordCount)
	}
}
