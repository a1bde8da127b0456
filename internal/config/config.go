package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/salesdash/scaffolder/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"

	// KeyVerbose enables per-file progress output on stderr.
	KeyVerbose = "verbose"
)

// knownKeys maps each settable key to its value parser.
var knownKeys = map[string]func(string) (interface{}, error){
	KeyVerbose: func(s string) (interface{}, error) { return strconv.ParseBool(s) },
}

// Dir returns the path to the config directory (~/.scaffolder/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.scaffolder/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()
	viper.SetDefault(KeyVerbose, false)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Verbose reports whether per-file progress output is enabled.
func Verbose() bool {
	return viper.GetBool(KeyVerbose)
}

// Set validates and stores a config value, then saves the config file.
// Only keys listed in knownKeys are accepted.
func Set(key, value string) error {
	parse, ok := knownKeys[key]
	if !ok {
		return fmt.Errorf("unknown key %q", key)
	}
	v, err := parse(value)
	if err != nil {
		return fmt.Errorf("invalid value %q for %s: %w", value, key, err)
	}

	if err := EnsureDir(); err != nil {
		return err
	}
	viper.Set(key, v)

	if err := viper.WriteConfigAs(FilePath()); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
