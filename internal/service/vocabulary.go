package service

import (
	"fmt"
	"sync"

	"wordquiz/internal/domain"
	"wordquiz/internal/repository"

	"go.uber.org/zap"
)

// AddResult is the outcome of a single /add request
type AddResult struct {
	Added  []domain.WordPair
	Errors []*domain.ValidationError
}

// VocabularyStore owns the shared word list and keeps it in sync with the repository
type VocabularyStore struct {
	repo   repository.WordRepository
	logger *zap.Logger

	mu    sync.RWMutex
	words []domain.WordPair
	index map[string]struct{}
}

// NewVocabularyStore creates an empty store; call Load before use
func NewVocabularyStore(repo repository.WordRepository, logger *zap.Logger) *VocabularyStore {
	return &VocabularyStore{
		repo:   repo,
		logger: logger,
		index:  make(map[string]struct{}),
	}
}

// Load reads persisted vocabulary and replaces the in-memory list
func (s *VocabularyStore) Load() ([]domain.WordPair, error) {
	words, err := s.repo.LoadWords()
	if err != nil {
		return nil, fmt.Errorf("load vocabulary: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.words = words
	s.index = make(map[string]struct{}, len(words))
	for _, w := range words {
		s.index[w.Source] = struct{}{}
	}

	s.logger.Info("Vocabulary loaded", zap.Int("words", len(words)))

	return s.snapshot(), nil
}

// Append adds already validated pairs and persists the whole list.
// The in-memory list changes only if the write succeeds.
func (s *VocabularyStore) Append(pairs []domain.WordPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.appendLocked(pairs)
}

// Add parses raw /add payload against the current vocabulary and appends the valid pairs.
// Parsing and persisting happen under one lock so concurrent requests cannot lose updates.
func (s *VocabularyStore) Add(raw string) (AddResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	added, errs := ParseWordPairs(raw, s.containsLocked)
	if err := s.appendLocked(added); err != nil {
		return AddResult{Errors: errs}, err
	}

	return AddResult{Added: added, Errors: errs}, nil
}

// Contains reports whether source is already present (exact match)
func (s *VocabularyStore) Contains(source string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.containsLocked(source)
}

// Words returns a copy of the vocabulary
func (s *VocabularyStore) Words() []domain.WordPair {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot()
}

// Size returns number of words
func (s *VocabularyStore) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.words)
}

func (s *VocabularyStore) appendLocked(pairs []domain.WordPair) error {
	if len(pairs) == 0 {
		return nil
	}

	next := make([]domain.WordPair, 0, len(s.words)+len(pairs))
	next = append(next, s.words...)
	next = append(next, pairs...)

	if err := s.repo.SaveWords(next); err != nil {
		s.logger.Error("Failed to persist vocabulary",
			zap.Error(err),
			zap.Int("pending", len(pairs)),
		)
		return fmt.Errorf("append words: %w", err)
	}

	s.words = next
	for _, p := range pairs {
		s.index[p.Source] = struct{}{}
	}

	s.logger.Info("Vocabulary updated",
		zap.Int("added", len(pairs)),
		zap.Int("total", len(next)),
	)

	return nil
}

func (s *VocabularyStore) containsLocked(source string) bool {
	_, ok := s.index[source]
	return ok
}

func (s *VocabularyStore) snapshot() []domain.WordPair {
	out := make([]domain.WordPair, len(s.words))
	copy(out, s.words)
	return out
}
