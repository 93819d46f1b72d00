package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	dirName   = ".taskify"
	fileName  = "config.yaml"
	envPrefix = "TASKIFY"
)

// Load merges, in increasing precedence: defaults, the global config,
// the project config, the explicit file (if any) and TASKIFY_* env vars.
// Missing global and project files are skipped; a missing explicit file
// is an error.
func Load(explicit string) (*Config, error) {
	cfg := DefaultConfig()

	for _, p := range []string{GlobalConfigPath(), ProjectConfigPath()} {
		if p == "" {
			continue
		}
		if err := loadFile(p, cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", p, err)
		}
	}

	if explicit != "" {
		if err := loadFile(explicit, cfg); err != nil {
			return nil, fmt.Errorf("load %s: %w", explicit, err)
		}
	}

	if err := loadEnv(cfg); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return err
	}

	return v.Unmarshal(cfg)
}

// Env vars only override keys viper knows about, so every key is bound
// explicitly (TASKIFY_LOG_FILE -> log.file).
func loadEnv(cfg *Config) error {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range []string{
		"theme", "title", "placeholder", "char_limit", "alt_screen",
		"log.file", "log.level", "log.format",
	} {
		if err := v.BindEnv(key); err != nil {
			return err
		}
		if !v.IsSet(key) {
			continue
		}
		if err := set(cfg, key, v); err != nil {
			return err
		}
	}
	return nil
}

func set(cfg *Config, key string, v *viper.Viper) error {
	switch key {
	case "theme":
		cfg.Theme = v.GetString(key)
	case "title":
		cfg.Title = v.GetString(key)
	case "placeholder":
		cfg.Placeholder = v.GetString(key)
	case "char_limit":
		cfg.CharLimit = v.GetInt(key)
	case "alt_screen":
		cfg.AltScreen = v.GetBool(key)
	case "log.file":
		cfg.Log.File = v.GetString(key)
	case "log.level":
		cfg.Log.Level = v.GetString(key)
	case "log.format":
		cfg.Log.Format = v.GetString(key)
	default:
		return fmt.Errorf("unknown key %q", key)
	}
	return nil
}

// GlobalConfigPath returns the path to the global config file
func GlobalConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, dirName, fileName)
}

// ProjectConfigPath returns the path to the project config file
func ProjectConfigPath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return filepath.Join(cwd, dirName, fileName)
}
