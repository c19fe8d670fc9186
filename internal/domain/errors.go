package domain

import (
	"errors"
	"fmt"
)

// Validation reasons for /add segments
var (
	ErrMissingSeparator   = errors.New("missing separator \"-\"")
	ErrMissingSource      = errors.New("missing source word")
	ErrMissingTranslation = errors.New("missing translation")
	ErrDuplicateWord      = errors.New("word already exists")
)

// ConfigError reports missing or invalid configuration
type ConfigError struct {
	Key string
	Err error
}

func (e *ConfigError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("config: %v", e.Err)
	}
	return fmt.Sprintf("config: %s: %v", e.Key, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// StorageError reports vocabulary persistence failure
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("storage: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// ValidationError describes a rejected segment of /add input.
// Position is 1-based.
type ValidationError struct {
	Position int
	Segment  string
	Source   string
	Err      error
}

func (e *ValidationError) Error() string {
	if errors.Is(e.Err, ErrDuplicateWord) {
		return fmt.Sprintf("#%d: %q: %v", e.Position, e.Source, e.Err)
	}
	return fmt.Sprintf("#%d: %v", e.Position, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }
