package testutil

import (
	"wordquiz/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestPair creates a test word pair
func NewTestPair(source, target string) domain.WordPair {
	return domain.WordPair{Source: source, Target: target}
}

// NewTestVocabulary creates n distinct word pairs
func NewTestVocabulary(n int) []domain.WordPair {
	words := make([]domain.WordPair, 0, n)
	for i := 0; i < n; i++ {
		words = append(words, domain.WordPair{
			Source: "слово" + string(rune('A'+i)),
			Target: "word" + string(rune('A'+i)),
		})
	}
	return words
}
