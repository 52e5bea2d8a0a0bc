package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// saveState stores a game snapshot locally for the next invocation
func saveState(name string, state json.RawMessage) error {
	path := cfg.StateFile(name)
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	return os.WriteFile(path, state, 0600)
}

// loadState reads a locally stored game snapshot
func loadState(name string) (json.RawMessage, error) {
	data, err := os.ReadFile(cfg.StateFile(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no %s game in progress (start one first)", name)
		}
		return nil, err
	}
	return data, nil
}

// clearState removes a locally stored game snapshot
func clearState(name string) {
	_ = os.Remove(cfg.StateFile(name))
}
