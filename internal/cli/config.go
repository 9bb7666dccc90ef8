package cli

import (
	"os"
	"path/filepath"
	"strings"
)

// Config holds CLI configuration
type Config struct {
	ServerURL    string
	PlayerID     string
	PlayerIDFile string
	Output       string
	Verbose      bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL:    getEnvOrDefault("EIGHTDAYS_SERVER", "http://localhost:8080"),
		PlayerID:     os.Getenv("EIGHTDAYS_PLAYER"),
		PlayerIDFile: getEnvOrDefault("EIGHTDAYS_PLAYER_FILE", defaultPlayerIDFile()),
		Output:       "text",
		Verbose:      false,
	}
}

// LoadPlayerID loads the saved identity from file if not already set
func (c *Config) LoadPlayerID() error {
	if c.PlayerID != "" {
		return nil
	}

	data, err := os.ReadFile(c.PlayerIDFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // No identity file is fine
		}
		return err
	}

	c.PlayerID = strings.TrimSpace(string(data))
	return nil
}

// SavePlayerID saves the identity to the identity file
func (c *Config) SavePlayerID(playerID string) error {
	c.PlayerID = playerID

	dir := filepath.Dir(c.PlayerIDFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	return os.WriteFile(c.PlayerIDFile, []byte(playerID), 0600)
}

func defaultPlayerIDFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".eightdays/player"
	}
	return filepath.Join(home, ".eightdays", "player")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
