package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrInvalid is wrapped by every error Validate and Repair report.
var ErrInvalid = errors.New("invalid configuration")

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config holds the settings of the command line game.
type Config struct {
	// Backend selects where games are saved: "file" or "sqlite".
	Backend  string `json:"backend"`
	SavePath string `json:"save_path"`
	DBPath   string `json:"db_path"`
	Slot     string `json:"slot"`
	Debug    bool   `json:"debug"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Backend:  BackendFile,
		SavePath: "game_save.json",
		DBPath:   "card_war.db",
		Slot:     "default",
	}
}

// Load reads a JSON configuration file. Fields missing from the file keep
// their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the backend name and its required path.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendFile:
		if c.SavePath == "" {
			return fmt.Errorf("%w: file backend needs a save path", ErrInvalid)
		}
	case BackendSQLite:
		if c.DBPath == "" {
			return fmt.Errorf("%w: sqlite backend needs a database path", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalid, c.Backend)
	}
	return nil
}

// Repair puts back the default of every invalid field and leaves the valid
// ones alone. It returns one error per field it had to reset.
func (c Config) Repair() (Config, []error) {
	def := Default()
	var problems []error
	if c.Backend != BackendFile && c.Backend != BackendSQLite {
		problems = append(problems, fmt.Errorf("%w: unknown backend %q, using %q", ErrInvalid, c.Backend, def.Backend))
		c.Backend = def.Backend
	}
	if c.SavePath == "" {
		problems = append(problems, fmt.Errorf("%w: empty save path, using %q", ErrInvalid, def.SavePath))
		c.SavePath = def.SavePath
	}
	if c.DBPath == "" {
		problems = append(problems, fmt.Errorf("%w: empty database path, using %q", ErrInvalid, def.DBPath))
		c.DBPath = def.DBPath
	}
	if c.Slot == "" {
		c.Slot = def.Slot
	}
	return c, problems
}
