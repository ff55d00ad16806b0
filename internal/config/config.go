package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

// DBFileName is the fixed name of the database file inside the resolved
// store directory.
const DBFileName = "blade.db"

// DefaultBusyTimeoutMS is how long SQLite waits on a contended lock before
// failing the operation.
const DefaultBusyTimeoutMS = 5000

// SynchronousMode is the SQLite synchronous pragma value, controlling how
// aggressively commits are fsynced.
type SynchronousMode string

const (
	SynchronousOff    SynchronousMode = "off"
	SynchronousNormal SynchronousMode = "normal"
	SynchronousFull   SynchronousMode = "full"
	SynchronousExtra  SynchronousMode = "extra"
)

// Valid reports whether the mode is one SQLite accepts.
func (m SynchronousMode) Valid() bool {
	switch m {
	case SynchronousOff, SynchronousNormal, SynchronousFull, SynchronousExtra:
		return true
	}
	return false
}

// Config holds the resolved process-wide settings. DBLocation is the full
// path of the database file, not the raw location signal.
type Config struct {
	DBLocation      string          `toml:"db_location"`
	SynchronousMode SynchronousMode `toml:"sqlite_synchronous_mode"`
	BusyTimeoutMS   int             `toml:"sqlite_busy_timeout_ms"`
}

// fileConfig is the on-disk shape of config.toml. Its db_location is the
// location signal (a directory), resolved to a file path by Resolve.
type fileConfig struct {
	DBLocation      string          `toml:"db_location"`
	SynchronousMode SynchronousMode `toml:"sqlite_synchronous_mode"`
	BusyTimeoutMS   int             `toml:"sqlite_busy_timeout_ms"`
}

// Resolve reads the environment and the config file and returns the
// effective configuration. The config file is created with defaults when
// missing.
func Resolve() (Config, error) {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	fc, err := loadOrCreateFile()
	if err != nil {
		return Config{}, err
	}

	v := viper.New()
	if err := v.BindEnv("db_location", "DB_LOCATION"); err != nil {
		return Config{}, fmt.Errorf("bind env: %w", err)
	}
	location := fc.DBLocation
	if env := v.GetString("db_location"); env != "" {
		location = env
	}
	if location == "" {
		return Config{}, errors.New("no store location: DB_LOCATION unset and config file has no db_location")
	}
	if !fc.SynchronousMode.Valid() {
		return Config{}, fmt.Errorf("invalid sqlite_synchronous_mode %q", fc.SynchronousMode)
	}
	if fc.BusyTimeoutMS < 0 {
		return Config{}, fmt.Errorf("invalid sqlite_busy_timeout_ms %d", fc.BusyTimeoutMS)
	}

	return Config{
		DBLocation:      filepath.Join(location, DBFileName),
		SynchronousMode: fc.SynchronousMode,
		BusyTimeoutMS:   fc.BusyTimeoutMS,
	}, nil
}

// Dump renders the resolved configuration as TOML key = value lines.
func (c Config) Dump() string {
	return renderTOML(c.DBLocation, c.SynchronousMode, c.BusyTimeoutMS)
}

// renderTOML writes the settings as TOML with basic (double-quoted)
// strings. toml.Marshal is parse-only here: it emits literal-quoted
// strings, and the file format uses double quotes.
func renderTOML(location string, mode SynchronousMode, timeoutMS int) string {
	return fmt.Sprintf("db_location = %q\nsqlite_synchronous_mode = %q\nsqlite_busy_timeout_ms = %d\n",
		location, mode, timeoutMS)
}

// defaultFileConfig returns the settings written to a fresh config file.
// The default store directory follows the XDG data-home convention.
func defaultFileConfig() (fileConfig, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return fileConfig{}, fmt.Errorf("resolve home directory: %w", err)
	}
	return fileConfig{
		DBLocation:      filepath.Join(home, ".local", "share", "blade"),
		SynchronousMode: SynchronousNormal,
		BusyTimeoutMS:   DefaultBusyTimeoutMS,
	}, nil
}

// configFilePath returns the location of config.toml.
func configFilePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config directory: %w", err)
	}
	return filepath.Join(dir, "blade", "config.toml"), nil
}

// loadOrCreateFile reads config.toml, writing one with defaults when it
// does not exist yet. Fields absent from the file keep their defaults.
func loadOrCreateFile() (fileConfig, error) {
	defaults, err := defaultFileConfig()
	if err != nil {
		return fileConfig{}, err
	}

	path, err := configFilePath()
	if err != nil {
		return fileConfig{}, err
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := writeFile(path, defaults); err != nil {
			return fileConfig{}, err
		}
		return defaults, nil
	}
	if err != nil {
		return fileConfig{}, fmt.Errorf("read config file: %w", err)
	}

	fc := defaults
	if err := toml.Unmarshal(raw, &fc); err != nil {
		return fileConfig{}, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return fc, nil
}

func writeFile(path string, fc fileConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	out := renderTOML(fc.DBLocation, fc.SynchronousMode, fc.BusyTimeoutMS)
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
