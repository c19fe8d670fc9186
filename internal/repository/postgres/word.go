package postgres

import (
	"wordquiz/internal/domain"

	"github.com/jmoiron/sqlx"
)

// WordRepo implements repository.WordRepository on the words table
type WordRepo struct {
	db *sqlx.DB
}

// NewWordRepo creates a new word repository
func NewWordRepo(db *sqlx.DB) *WordRepo {
	return &WordRepo{db: db}
}

// LoadWords returns the vocabulary in insertion order
func (r *WordRepo) LoadWords() ([]domain.WordPair, error) {
	query := `
		SELECT source, target
		FROM words
		ORDER BY position
	`
	words := []domain.WordPair{}
	if err := r.db.Select(&words, query); err != nil {
		return nil, &domain.StorageError{Op: "select", Path: "words", Err: err}
	}
	return words, nil
}

// SaveWords replaces the table contents inside a single transaction
func (r *WordRepo) SaveWords(words []domain.WordPair) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return &domain.StorageError{Op: "begin", Path: "words", Err: err}
	}
	// Rollback is a no-op after a successful commit
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM words`); err != nil {
		return &domain.StorageError{Op: "delete", Path: "words", Err: err}
	}

	query := `
		INSERT INTO words (position, source, target)
		VALUES ($1, $2, $3)
	`
	for i, w := range words {
		if _, err := tx.Exec(query, i, w.Source, w.Target); err != nil {
			return &domain.StorageError{Op: "insert", Path: "words", Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return &domain.StorageError{Op: "commit", Path: "words", Err: err}
	}
	return nil
}
