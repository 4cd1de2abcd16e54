package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "TABDB"

// Keys shared by flags, environment variables and .env entries.
const (
	KeyDataDir   = "data_dir"
	KeyTabDB     = "tabdb"
	KeyPlayDB    = "playdb"
	KeyRequestDB = "requestdb"
	KeyLogLevel  = "log_level"
)

// Config represents the resolved runtime settings.
type Config struct {
	DataDir   string
	TabDB     string
	PlayDB    string
	RequestDB string
	LogLevel  slog.Level
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyDataDir, ".")
	v.SetDefault(KeyTabDB, "tabdb.csv")
	v.SetDefault(KeyPlayDB, "playdb.csv")
	v.SetDefault(KeyRequestDB, "requestdb.csv")
	v.SetDefault(KeyLogLevel, "warn")
}

// Load reads .env (if present), merges TABDB_* environment variables into v
// and validates the result.
func Load(v *viper.Viper) (Config, error) {
	_ = godotenv.Load()

	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cfg := Config{
		DataDir:   strings.TrimSpace(v.GetString(KeyDataDir)),
		TabDB:     strings.TrimSpace(v.GetString(KeyTabDB)),
		PlayDB:    strings.TrimSpace(v.GetString(KeyPlayDB)),
		RequestDB: strings.TrimSpace(v.GetString(KeyRequestDB)),
		LogLevel:  ParseLogLevel(v.GetString(KeyLogLevel)),
	}

	if cfg.DataDir == "" {
		return cfg, fmt.Errorf("%s_DATA_DIR must not be empty", EnvPrefix)
	}
	info, err := os.Stat(cfg.DataDir)
	if err != nil {
		return cfg, fmt.Errorf("data directory %q is not accessible: %w", cfg.DataDir, err)
	}
	if !info.IsDir() {
		return cfg, fmt.Errorf("data directory %q is not a directory", cfg.DataDir)
	}

	for _, p := range []struct{ key, pattern string }{
		{KeyTabDB, cfg.TabDB},
		{KeyPlayDB, cfg.PlayDB},
		{KeyRequestDB, cfg.RequestDB},
	} {
		key, pattern := p.key, p.pattern
		if pattern == "" {
			return cfg, fmt.Errorf("%s must not be empty", key)
		}
		if !doublestar.ValidatePattern(filepath.ToSlash(pattern)) {
			return cfg, fmt.Errorf("%s: invalid file pattern %q", key, pattern)
		}
	}

	return cfg, nil
}

// ParseLogLevel maps a level name to a slog.Level, falling back to warn.
func ParseLogLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning", "":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		slog.Warn("Invalid log level, using WARN", "value", s)
		return slog.LevelWarn
	}
}
