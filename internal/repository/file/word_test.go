package file

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"wordquiz/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordRepo_LoadWords_CreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "words.json")
	repo := NewWordRepo(path)

	words, err := repo.LoadWords()
	require.NoError(t, err)
	assert.Empty(t, words)
	assert.NotNil(t, words)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestWordRepo_RoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		filename string
	}{
		{name: "json", filename: "words.json"},
		{name: "yaml", filename: "words.yaml"},
		{name: "yml", filename: "words.yml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewWordRepo(filepath.Join(t.TempDir(), tt.filename))
			words := []domain.WordPair{
				{Source: "кошка", Target: "cat"},
				{Source: "собака", Target: "dog"},
			}

			require.NoError(t, repo.SaveWords(words))

			loaded, err := repo.LoadWords()
			require.NoError(t, err)
			assert.Equal(t, words, loaded)
		})
	}
}

func TestWordRepo_SaveWords_PrettyJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.json")
	repo := NewWordRepo(path)

	require.NoError(t, repo.SaveWords([]domain.WordPair{{Source: "кошка", Target: "cat & kitten"}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	expected := "[\n  {\n    \"russian\": \"кошка\",\n    \"english\": \"cat & kitten\"\n  }\n]\n"
	assert.Equal(t, expected, string(data))
}

func TestWordRepo_LoadWords_Existing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.json")
	content := `[{"russian": "дом", "english": "house"}]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	words, err := NewWordRepo(path).LoadWords()
	require.NoError(t, err)
	assert.Equal(t, []domain.WordPair{{Source: "дом", Target: "house"}}, words)
}

func TestWordRepo_LoadWords_Errors(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  string
		wantErr  bool
	}{
		{name: "malformed json", filename: "words.json", content: `[{"russian": `, wantErr: true},
		{name: "object instead of list", filename: "words.json", content: `{"russian": "дом"}`, wantErr: true},
		{name: "empty file", filename: "words.json", content: "", wantErr: true},
		{name: "whitespace only", filename: "words.json", content: " \n\t", wantErr: true},
		{name: "unknown field", filename: "words.json", content: `[{"foo": 1}]`, wantErr: true},
		{name: "blank values", filename: "words.json", content: `[{"russian": "", "english": ""}]`, wantErr: true},
		{name: "missing translation", filename: "words.json", content: `[{"russian": "дом"}]`, wantErr: true},
		{name: "whitespace source", filename: "words.json", content: `[{"russian": "  ", "english": "house"}]`, wantErr: true},
		{name: "yaml unknown field", filename: "words.yaml", content: "- foo: 1\n", wantErr: true},
		{name: "yaml blank translation", filename: "words.yaml", content: "- russian: дом\n  english: \"\"\n", wantErr: true},
		{name: "empty list", filename: "words.json", content: "[]", wantErr: false},
		{name: "null", filename: "words.json", content: "null", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.filename)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			words, err := NewWordRepo(path).LoadWords()
			if tt.wantErr {
				var storageErr *domain.StorageError
				require.True(t, errors.As(err, &storageErr))
				assert.Equal(t, "decode", storageErr.Op)
				assert.Nil(t, words)
				return
			}
			assert.NoError(t, err)
			assert.Empty(t, words)
		})
	}
}

func TestWordRepo_LoadWords_TrimsValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.json")
	content := `[{"russian": " дом ", "english": "house\n"}]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	words, err := NewWordRepo(path).LoadWords()
	require.NoError(t, err)
	assert.Equal(t, []domain.WordPair{{Source: "дом", Target: "house"}}, words)
}

func TestWordRepo_SaveWords_WriteError(t *testing.T) {
	dir := t.TempDir()
	// A directory where the file should be makes the write fail
	path := filepath.Join(dir, "words.json")
	require.NoError(t, os.Mkdir(path, 0o755))

	err := NewWordRepo(path).SaveWords([]domain.WordPair{{Source: "a", Target: "b"}})

	var storageErr *domain.StorageError
	require.True(t, errors.As(err, &storageErr))
	assert.Equal(t, "write", storageErr.Op)
}
