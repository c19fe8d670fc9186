package repository

import (
	"wordquiz/internal/domain"
)

// WordRepository persists the shared vocabulary.
// SaveWords replaces the stored list with words, preserving order.
type WordRepository interface {
	LoadWords() ([]domain.WordPair, error)
	SaveWords(words []domain.WordPair) error
}
