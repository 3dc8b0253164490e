// Package settings handles user configuration from
// ~/.minctasks/settings.json plus environment overrides.
// Merge order: built-in defaults < settings.json < env vars < CLI flags.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ai8future/chassis-go/v5/config"
	"github.com/go-playground/validator/v10"
)

const (
	ConfigDirName  = ".minctasks"
	ConfigFileName = "settings.json"
)

// Settings holds all configuration for the minctask CLI.
type Settings struct {
	// BinDir is searched for MINC binaries before PATH; empty means PATH
	// only. Supports ~ expansion.
	BinDir string `json:"bin_dir,omitempty" validate:"omitempty,dir"`

	// WorkDir is the working directory for spawned tools; empty means
	// the current directory.
	WorkDir string `json:"work_dir,omitempty" validate:"omitempty,dir"`

	LogLevel string `json:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`

	// Clobber, when true, sets the clobber flag by default on tasks that
	// support overwriting (convert, average); an explicit noclobber on
	// the command line still wins.
	Clobber bool `json:"clobber,omitempty"`
}

// EnvOverrides allows environment variables to override settings.json
// values. All fields are optional; only non-empty values apply.
type EnvOverrides struct {
	BinDir   string `env:"MINCTASKS_BIN_DIR" required:"false"`
	WorkDir  string `env:"MINCTASKS_WORK_DIR" required:"false"`
	LogLevel string `env:"MINCTASKS_LOG_LEVEL" required:"false"`
}

// Default returns the built-in settings.
func Default() *Settings {
	return &Settings{LogLevel: "info"}
}

// GetConfigPath returns the settings file location.
func GetConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ConfigFileName
	}
	return filepath.Join(home, ConfigDirName, ConfigFileName)
}

// Load reads the settings file if present, applies environment
// overrides, expands tildes and validates the result. A missing file is
// not an error; the defaults apply.
func Load() (*Settings, error) {
	s := Default()

	data, err := os.ReadFile(GetConfigPath())
	switch {
	case err == nil:
		if err := json.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", GetConfigPath(), err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("reading %s: %w", GetConfigPath(), err)
	}

	applyEnvOverrides(s)
	s.BinDir = expandTilde(s.BinDir)
	s.WorkDir = expandTilde(s.WorkDir)

	if err := validator.New().Struct(s); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}

// Save writes the settings with owner-only permissions.
func (s *Settings) Save() error {
	path := GetConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0600)
}

func applyEnvOverrides(s *Settings) {
	env := config.MustLoad[EnvOverrides]()

	if env.BinDir != "" {
		s.BinDir = env.BinDir
	}
	if env.WorkDir != "" {
		s.WorkDir = env.WorkDir
	}
	if env.LogLevel != "" {
		s.LogLevel = strings.ToLower(env.LogLevel)
	}
}

// expandTilde turns a leading ~ into the user's home directory.
func expandTilde(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
