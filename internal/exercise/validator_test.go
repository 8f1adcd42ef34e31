package exercise

import "testing"

func TestValidateLevelOneExactMatch(t *testing.T) {
	testCases := []struct {
		name        string
		content     string
		arrangement []string
		expected    bool
	}{
		{"correct order", "I like red apples", []string{"I", "like", "red", "apples"}, true},
		{"wrong order", "I like red apples", []string{"like", "I", "red", "apples"}, false},
		{"case matters", "I like red apples", []string{"i", "like", "red", "apples"}, false},
		{"punctuation matters", "I like red apples.", []string{"I", "like", "red", "apples"}, false},
		{"attached punctuation preserved", "Hello, world!", []string{"Hello,", "world!"}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := Validate(tc.content, tc.arrangement, LevelExact)
			if result.IsCorrect != tc.expected {
				t.Errorf("Expected IsCorrect=%v, got %v", tc.expected, result.IsCorrect)
			}
			if result.CanonicalAnswer != tc.content {
				t.Errorf("Expected canonical answer %q, got %q", tc.content, result.CanonicalAnswer)
			}
		})
	}
}

func TestValidateNormalizedLevels(t *testing.T) {
	testCases := []struct {
		name        string
		content     string
		arrangement []string
		level       int
		expected    bool
	}{
		{
			"mixed case and trailing punctuation",
			"I like red apples",
			[]string{"I", "Like", "red", "apples."},
			LevelNormal, true,
		},
		{
			"canonical punctuation ignored",
			"Hello, world!",
			[]string{"hello", "world"},
			LevelHard, true,
		},
		{
			"wrong order still wrong",
			"I like red apples",
			[]string{"apples", "red", "like", "I"},
			LevelNormal, false,
		},
		{
			"missing word",
			"I like red apples",
			[]string{"I", "like", "apples"},
			LevelExpert, false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := Validate(tc.content, tc.arrangement, tc.level)
			if result.IsCorrect != tc.expected {
				t.Errorf("Expected IsCorrect=%v, got %v", tc.expected, result.IsCorrect)
			}
			if result.CanonicalAnswer != tc.content {
				t.Errorf("Canonical answer must always be returned, got %q", result.CanonicalAnswer)
			}
		})
	}
}

func TestLevelOneRoundTrip(t *testing.T) {
	content := "The quick brown fox jumps over the lazy dog."
	tokens := Tokenize(content, LevelExact)

	result := Validate(content, tokens, LevelExact)
	if !result.IsCorrect {
		t.Errorf("Re-joining the original tokens must validate, got IsCorrect=false")
	}
}

func TestNormalizeText(t *testing.T) {
	testCases := []struct {
		in       string
		expected string
	}{
		{"Hello, World!", "hello world"},
		{"  spaced   out  ", "spaced out"},
		{"semi;colon: and.dots", "semicolon anddots"},
		{"", ""},
	}

	for _, tc := range testCases {
		got := NormalizeText(tc.in)
		if got != tc.expected {
			t.Errorf("NormalizeText(%q) = %q, want %q", tc.in, got, tc.expected)
		}
	}
}
