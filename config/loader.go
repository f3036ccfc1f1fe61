package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// FileSystem interface for file operations (useful for testing).
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

func (rfs *RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (rfs *RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// LoaderConfig controls where Load looks for configuration.
type LoaderConfig struct {
	// ConfigFile is an explicit YAML config path; when empty, standard
	// locations are searched.
	ConfigFile string
	// EnvFile is an explicit .env path; when empty, standard locations
	// are searched.
	EnvFile string
	// EnvPrefix namespaces environment overrides (default "STREAMKIT").
	EnvPrefix string
	// FileSystem overrides file access, for tests. Defaults to the real
	// filesystem.
	FileSystem FileSystem
}

// Load reads configuration for the named service: a .env file first (so
// the environment is populated before viper reads it), then the YAML
// config file, then environment-variable overrides. The result has
// defaults applied and is validated.
func Load(serviceName string, opts LoaderConfig) (*Config, error) {
	fs := opts.FileSystem
	if fs == nil {
		fs = &RealFileSystem{}
	}

	if envFile := resolveEnvFile(fs, serviceName, opts.EnvFile); envFile != "" {
		if err := fs.LoadEnv(envFile); err != nil {
			return nil, fmt.Errorf("loading env file %s: %w", envFile, err)
		}
	}

	v := viper.New()
	prefix := opts.EnvPrefix
	if prefix == "" {
		prefix = "STREAMKIT"
	}
	v.SetEnvPrefix(prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only surfaces keys viper already knows about, so bind
	// the config surface explicitly for env-only setups.
	for _, key := range []string{
		"name", "environment", "debug",
		"logging.level", "logging.format", "logging.output",
		"stream.default_debounce",
		"metrics.enabled", "metrics.endpoint", "metrics.insecure", "metrics.interval",
	} {
		_ = v.BindEnv(key)
	}

	configFile := resolveConfigFile(fs, opts.ConfigFile)
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if cfg.Name == "" {
		cfg.Name = serviceName
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveConfigFile returns the explicit path if given, otherwise the
// first standard location that exists.
func resolveConfigFile(fs FileSystem, explicit string) string {
	if explicit != "" {
		return explicit
	}
	searchPaths := []string{
		"./config/config.yml",
		"./config.yml",
	}
	for _, path := range searchPaths {
		if fs.Exists(path) {
			return path
		}
	}
	return ""
}

// resolveEnvFile returns the explicit path if given, otherwise the first
// standard .env location that exists.
func resolveEnvFile(fs FileSystem, serviceName, explicit string) string {
	if explicit != "" {
		return explicit
	}
	envFiles := []string{
		fmt.Sprintf(".env.%s", serviceName),
		".env",
	}
	for _, path := range envFiles {
		if fs.Exists(path) {
			return path
		}
	}
	return ""
}
