package testutil

// CaptureLogger records every emitted entry so tests can assert on the
// diagnostic channel. It implements logging.Logger.
type CaptureLogger struct {
	Entries []LogEntry
}

// LogEntry is one captured log call.
type LogEntry struct {
	Level string
	Msg   string
	Args  []any
}

func (c *CaptureLogger) append(level, msg string, args []any) {
	c.Entries = append(c.Entries, LogEntry{Level: level, Msg: msg, Args: args})
}

// Debug records a debug entry.
func (c *CaptureLogger) Debug(msg string, args ...any) { c.append("DEBUG", msg, args) }

// Info records an info entry.
func (c *CaptureLogger) Info(msg string, args ...any) { c.append("INFO", msg, args) }

// Warn records a warn entry.
func (c *CaptureLogger) Warn(msg string, args ...any) { c.append("WARN", msg, args) }

// Error records an error entry.
func (c *CaptureLogger) Error(msg string, args ...any) { c.append("ERROR", msg, args) }

// ByLevel returns the captured entries with the given level.
func (c *CaptureLogger) ByLevel(level string) []LogEntry {
	var out []LogEntry
	for _, e := range c.Entries {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}
