package factory

import (
	"time"

	"github.com/ajmcleod/hangduel/internal/dependencies/mocks"
	"github.com/ajmcleod/hangduel/internal/services/registry"
	"github.com/ajmcleod/hangduel/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, registry.DefaultTurnTimeout, nil)

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestWords loads a small word pool for testing
func (t *TestApp) LoadTestWords() error {
	return t.WordsService.LoadWords([]string{
		"python", "flask", "azure", "hangman", "database", "object",
		"socket", "server", "letter", "guess",
	})
}
