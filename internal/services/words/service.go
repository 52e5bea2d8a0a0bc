package words

import (
	"bufio"
	"context"
	"os"
	"sync"

	"github.com/ajmcleod/hangduel/internal/dependencies/random"
	"github.com/ajmcleod/hangduel/internal/model"
	"github.com/ajmcleod/hangduel/internal/storage"
)

// DefaultWords is the built-in fallback pool used when no word file is
// available.
var DefaultWords = []string{
	"python", "flask", "azure", "hangman", "database", "object",
}

// Service provides the candidate-word pool for game creation
type Service struct {
	storage storage.Storage

	mu    sync.RWMutex
	words []string
}

// New creates a new word pool service
func New(storage storage.Storage) *Service {
	return &Service{
		storage: storage,
	}
}

// LoadFromStorage loads the word pool from storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	words, err := s.storage.GetWordPool(ctx)
	if err != nil {
		return err
	}
	return s.loadWords(words)
}

// LoadFromFile loads the word pool from a file (one word per line), then
// saves it to storage for future use. Lines are normalized to lowercase
// alphabetic; blank or non-alphabetic lines are dropped.
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if word := model.NormalizeWord(scanner.Text()); word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if len(words) == 0 {
		return model.ErrWordPoolEmpty
	}

	if err := s.storage.SaveWordPool(ctx, words); err != nil {
		return err
	}

	return s.loadWords(words)
}

// LoadWords directly loads a slice of words (useful for testing)
func (s *Service) LoadWords(words []string) error {
	return s.loadWords(words)
}

func (s *Service) loadWords(words []string) error {
	normalized := make([]string, 0, len(words))
	for _, word := range words {
		if w := model.NormalizeWord(word); w != "" {
			normalized = append(normalized, w)
		}
	}
	if len(normalized) == 0 {
		return model.ErrWordPoolEmpty
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.words = normalized
	return nil
}

// RandomWord picks a word from the pool using the given random source
func (s *Service) RandomWord(rnd random.Random) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.words) == 0 {
		return "", model.ErrWordPoolEmpty
	}
	return s.words[rnd.Intn(len(s.words))], nil
}

// IsLoaded returns whether a pool has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words) > 0
}

// WordCount returns the number of words in the pool
func (s *Service) WordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}
