package cli

import (
	"os"
	"path/filepath"
)

// Config holds CLI configuration
type Config struct {
	ServerURL  string
	PlayerID   string
	PlayerFile string
	Output     string
	Verbose    bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL:  getEnvOrDefault("HANGDUEL_SERVER", "http://localhost:8080"),
		PlayerID:   os.Getenv("HANGDUEL_PLAYER"),
		PlayerFile: getEnvOrDefault("HANGDUEL_PLAYER_FILE", defaultPlayerFile()),
		Output:     "text",
		Verbose:    false,
	}
}

// LoadPlayerID loads the player ID from file if not already set
func (c *Config) LoadPlayerID() error {
	if c.PlayerID != "" {
		return nil
	}

	data, err := os.ReadFile(c.PlayerFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // No player file is fine
		}
		return err
	}

	c.PlayerID = string(data)
	return nil
}

// SavePlayerID saves the player ID to the player file
func (c *Config) SavePlayerID(id string) error {
	c.PlayerID = id

	dir := filepath.Dir(c.PlayerFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	return os.WriteFile(c.PlayerFile, []byte(id), 0600)
}

// StateFile returns the path for a locally stored game snapshot. Solo and
// duel games are stateless on the server, so the CLI keeps the snapshot
// between invocations.
func (c *Config) StateFile(name string) string {
	return filepath.Join(filepath.Dir(c.PlayerFile), name+".json")
}

func defaultPlayerFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".hangduel/player"
	}
	return filepath.Join(home, ".hangduel", "player")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
