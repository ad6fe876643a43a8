package config

// LogLevel represents the logging level.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// String returns the string representation of LogLevel.
func (l LogLevel) String() string {
	return string(l)
}

// IsValid checks if the log level is valid.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true
	default:
		return false
	}
}

// Config represents the complete actorkit host configuration.
type Config struct {
	// Scheduler tuning
	Scheduler SchedulerConfig `yaml:"scheduler" json:"scheduler"`

	// Logging configuration
	Log LogConfig `yaml:"log" json:"log"`

	// Custom configurations (for host-defined components)
	Custom map[string]interface{} `yaml:"custom,omitempty" json:"custom,omitempty"`
}

// SchedulerConfig contains scheduler tuning parameters.
type SchedulerConfig struct {
	// DefaultQuantum is the number of events one dispatch cycle may process
	// when the host does not choose its own bound.
	DefaultQuantum int `yaml:"default_quantum" json:"default_quantum"`

	// QueueWarnDepth logs a warning when the pending queue grows beyond this
	// many events. Zero disables the check.
	QueueWarnDepth int `yaml:"queue_warn_depth" json:"queue_warn_depth"`

	// ActorWarnCount logs a warning when the append-only registry grows
	// beyond this many actors. Zero disables the check.
	ActorWarnCount int `yaml:"actor_warn_count" json:"actor_warn_count"`
}

// LogConfig contains logging configuration.
type LogConfig struct {
	// Log level
	Level LogLevel `yaml:"level" json:"level"`

	// Log format (json, text)
	Format string `yaml:"format" json:"format"`

	// Include source positions in log output
	AddSource bool `yaml:"add_source" json:"add_source"`
}

// DefaultConfig returns a default configuration.
func DefaultConfig() *Config {
	return &Config{
		Scheduler: SchedulerConfig{
			DefaultQuantum: 64,
			QueueWarnDepth: 10000,
			ActorWarnCount: 100000,
		},
		Log: LogConfig{
			Level:  LogLevelInfo,
			Format: "text",
		},
		Custom: make(map[string]interface{}),
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Scheduler.DefaultQuantum <= 0 {
		return ErrInvalidQuantum
	}
	if c.Scheduler.QueueWarnDepth < 0 {
		return ErrInvalidQueueWarnDepth
	}
	if c.Scheduler.ActorWarnCount < 0 {
		return ErrInvalidActorWarnCount
	}
	if !c.Log.Level.IsValid() {
		return ErrInvalidLogLevel
	}
	if c.Log.Format != "json" && c.Log.Format != "text" {
		return ErrInvalidLogFormat
	}
	return nil
}

// IsDebugEnabled returns true if debug logging is configured.
func (c *Config) IsDebugEnabled() bool {
	return c.Log.Level == LogLevelDebug
}
