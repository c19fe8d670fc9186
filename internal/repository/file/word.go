package file

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"wordquiz/internal/domain"

	"gopkg.in/yaml.v3"
)

// WordRepo implements repository.WordRepository on a single JSON or YAML file.
// The whole file is rewritten on every save.
type WordRepo struct {
	path  string
	codec codec
}

type codec struct {
	marshal   func([]domain.WordPair) ([]byte, error)
	unmarshal func([]byte, *[]domain.WordPair) error
}

// NewWordRepo creates a file repository; .yaml and .yml paths are stored as YAML, anything else as JSON
func NewWordRepo(path string) *WordRepo {
	return &WordRepo{path: path, codec: codecFor(path)}
}

// Path returns the backing file path
func (r *WordRepo) Path() string {
	return r.path
}

// LoadWords reads the vocabulary, creating an empty file if it does not exist
func (r *WordRepo) LoadWords() ([]domain.WordPair, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := r.SaveWords(nil); err != nil {
			return nil, err
		}
		return []domain.WordPair{}, nil
	}
	if err != nil {
		return nil, &domain.StorageError{Op: "read", Path: r.path, Err: err}
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &domain.StorageError{Op: "decode", Path: r.path, Err: errors.New("file is empty")}
	}

	words := []domain.WordPair{}
	if err := r.codec.unmarshal(data, &words); err != nil {
		return nil, &domain.StorageError{Op: "decode", Path: r.path, Err: err}
	}
	if words == nil {
		words = []domain.WordPair{}
	}

	for i := range words {
		words[i].Source = strings.TrimSpace(words[i].Source)
		words[i].Target = strings.TrimSpace(words[i].Target)
		if words[i].Source == "" || words[i].Target == "" {
			return nil, &domain.StorageError{
				Op:   "decode",
				Path: r.path,
				Err:  fmt.Errorf("record %d: russian and english must not be empty", i+1),
			}
		}
	}

	return words, nil
}

// SaveWords writes the full vocabulary back to disk
func (r *WordRepo) SaveWords(words []domain.WordPair) error {
	if words == nil {
		words = []domain.WordPair{}
	}

	data, err := r.codec.marshal(words)
	if err != nil {
		return &domain.StorageError{Op: "encode", Path: r.path, Err: err}
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &domain.StorageError{Op: "mkdir", Path: dir, Err: err}
		}
	}

	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return &domain.StorageError{Op: "write", Path: r.path, Err: err}
	}

	return nil
}

func codecFor(path string) codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return codec{
			marshal: func(words []domain.WordPair) ([]byte, error) {
				var buf bytes.Buffer
				enc := yaml.NewEncoder(&buf)
				enc.SetIndent(2)
				if err := enc.Encode(words); err != nil {
					return nil, err
				}
				if err := enc.Close(); err != nil {
					return nil, err
				}
				return buf.Bytes(), nil
			},
			unmarshal: func(data []byte, words *[]domain.WordPair) error {
				dec := yaml.NewDecoder(bytes.NewReader(data))
				dec.KnownFields(true)
				return dec.Decode(words)
			},
		}
	default:
		return codec{
			marshal: func(words []domain.WordPair) ([]byte, error) {
				var buf bytes.Buffer
				enc := json.NewEncoder(&buf)
				// Keep Cyrillic and punctuation readable in the file
				enc.SetEscapeHTML(false)
				enc.SetIndent("", "  ")
				if err := enc.Encode(words); err != nil {
					return nil, fmt.Errorf("json encode: %w", err)
				}
				return buf.Bytes(), nil
			},
			unmarshal: func(data []byte, words *[]domain.WordPair) error {
				dec := json.NewDecoder(bytes.NewReader(data))
				dec.DisallowUnknownFields()
				return dec.Decode(words)
			},
		}
	}
}
