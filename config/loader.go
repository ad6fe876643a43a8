package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format represents the configuration file format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Loader handles configuration loading from files, readers and the
// environment.
type Loader struct {
	// Configuration search paths
	searchPaths []string

	// Environment variable prefix
	envPrefix string

	// Default configuration
	defaultConfig *Config
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	return &Loader{
		searchPaths: []string{
			".",
			"./config",
		},
		envPrefix:     "ACTORKIT",
		defaultConfig: DefaultConfig(),
	}
}

// SetSearchPaths sets the configuration file search paths.
func (l *Loader) SetSearchPaths(paths []string) *Loader {
	l.searchPaths = paths
	return l
}

// SetEnvPrefix sets the environment variable prefix.
func (l *Loader) SetEnvPrefix(prefix string) *Loader {
	l.envPrefix = prefix
	return l
}

// SetDefaultConfig sets the default configuration.
func (l *Loader) SetDefaultConfig(config *Config) *Loader {
	l.defaultConfig = config
	return l
}

// LoadFromFile loads configuration from a specific file, merging it over the
// defaults and applying environment overrides.
func (l *Loader) LoadFromFile(filename string) (*Config, error) {
	format, err := formatFromExt(filename)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config, err := l.parse(data, format)
	if err != nil {
		return nil, err
	}

	return l.finish(config)
}

// LoadFromReader loads configuration from an io.Reader.
func (l *Loader) LoadFromReader(reader io.Reader, format Format) (*Config, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration data: %w", err)
	}

	config, err := l.parse(data, format)
	if err != nil {
		return nil, err
	}

	return l.finish(config)
}

// AutoLoad discovers a configuration file on the search paths, falling back
// to defaults plus environment overrides when none is found.
func (l *Loader) AutoLoad() (*Config, error) {
	configFile, err := l.findConfigFile()
	if err != nil {
		if err == ErrConfigFileNotFound {
			return l.finish(&Config{})
		}
		return nil, err
	}
	return l.LoadFromFile(configFile)
}

// finish merges the parsed config over defaults, applies environment
// overrides and validates the result.
func (l *Loader) finish(config *Config) (*Config, error) {
	defaults := l.defaultConfig
	if defaults == nil {
		defaults = DefaultConfig()
	}
	merged := l.merge(defaults, config)

	if err := l.applyEnv(merged); err != nil {
		return nil, fmt.Errorf("failed to load config from environment: %w", err)
	}

	if err := merged.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return merged, nil
}

// findConfigFile searches for configuration files in search paths.
func (l *Loader) findConfigFile() (string, error) {
	filenames := []string{
		"actorkit.yaml", "actorkit.yml",
		"config.yaml", "config.yml",
		"actorkit.json", "config.json",
	}

	for _, searchPath := range l.searchPaths {
		for _, filename := range filenames {
			fullPath := filepath.Join(searchPath, filename)
			if _, err := os.Stat(fullPath); err == nil {
				return fullPath, nil
			}
		}
	}

	return "", ErrConfigFileNotFound
}

// parse parses configuration data based on format.
func (l *Loader) parse(data []byte, format Format) (*Config, error) {
	config := &Config{}

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	return config, nil
}

// applyEnv applies configuration overrides from environment variables.
func (l *Loader) applyEnv(config *Config) error {
	if val := os.Getenv(l.envPrefix + "_SCHEDULER_DEFAULT_QUANTUM"); val != "" {
		n, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid %s_SCHEDULER_DEFAULT_QUANTUM: %w", l.envPrefix, err)
		}
		config.Scheduler.DefaultQuantum = n
	}
	if val := os.Getenv(l.envPrefix + "_SCHEDULER_QUEUE_WARN_DEPTH"); val != "" {
		n, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid %s_SCHEDULER_QUEUE_WARN_DEPTH: %w", l.envPrefix, err)
		}
		config.Scheduler.QueueWarnDepth = n
	}
	if val := os.Getenv(l.envPrefix + "_SCHEDULER_ACTOR_WARN_COUNT"); val != "" {
		n, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid %s_SCHEDULER_ACTOR_WARN_COUNT: %w", l.envPrefix, err)
		}
		config.Scheduler.ActorWarnCount = n
	}
	if val := os.Getenv(l.envPrefix + "_LOG_LEVEL"); val != "" {
		config.Log.Level = LogLevel(strings.ToLower(val))
	}
	if val := os.Getenv(l.envPrefix + "_LOG_FORMAT"); val != "" {
		config.Log.Format = strings.ToLower(val)
	}

	return nil
}

// merge merges user config over default config.
func (l *Loader) merge(defaults, user *Config) *Config {
	merged := *defaults

	if user.Scheduler.DefaultQuantum != 0 {
		merged.Scheduler.DefaultQuantum = user.Scheduler.DefaultQuantum
	}
	if user.Scheduler.QueueWarnDepth != 0 {
		merged.Scheduler.QueueWarnDepth = user.Scheduler.QueueWarnDepth
	}
	if user.Scheduler.ActorWarnCount != 0 {
		merged.Scheduler.ActorWarnCount = user.Scheduler.ActorWarnCount
	}
	if user.Log.Level != "" {
		merged.Log.Level = user.Log.Level
	}
	if user.Log.Format != "" {
		merged.Log.Format = user.Log.Format
	}
	merged.Log.AddSource = merged.Log.AddSource || user.Log.AddSource

	if user.Custom != nil {
		if merged.Custom == nil {
			merged.Custom = make(map[string]interface{})
		}
		for k, v := range user.Custom {
			merged.Custom[k] = v
		}
	}

	return &merged
}

// formatFromExt resolves the config format from a file extension.
func formatFromExt(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(filename))
	}
}
