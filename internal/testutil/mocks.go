package testutil

import (
	"wordquiz/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockWordRepository is a mock for WordRepository
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) LoadWords() ([]domain.WordPair, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WordPair), args.Error(1)
}

func (m *MockWordRepository) SaveWords(words []domain.WordPair) error {
	args := m.Called(words)
	return args.Error(0)
}
