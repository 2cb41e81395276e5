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
	configName = "config"
	configType = "yaml"
	envPrefix  = "TALLY"

	dataPathKey       = "data.path"
	defaultProjectKey = "defaults.project"
)

// Config holds the per-user settings read from ~/.tally/config.yaml and
// TALLY_* environment variables.
type Config struct {
	// DataPath is the location of the SQLite database file.
	DataPath string
	// DefaultProject is applied to new sessions started without a project.
	DefaultProject string
}

// Load reads the config file if one exists, falling back to defaults.
func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	tallyDir := filepath.Join(homeDir, ".tally")

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(tallyDir)
	v.SetDefault(dataPathKey, filepath.Join(tallyDir, "tally.db"))
	v.SetDefault(defaultProjectKey, "")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{
		DataPath:       v.GetString(dataPathKey),
		DefaultProject: v.GetString(defaultProjectKey),
	}
	if cfg.DataPath == "" {
		return nil, errors.New("data path is empty")
	}

	return cfg, nil
}
