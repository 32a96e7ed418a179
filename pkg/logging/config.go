package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/moviemap/pkg/constants"
)

// Config describes how a logger is built.
type Config struct {
	Level      string // trace, debug, info, warn, error or disabled
	Format     string // json, console or auto
	Output     string // stderr, stdout, discard or a file path
	TimeFormat string // kitchen, rfc3339, unix or a Go layout; console only
	NoColor    bool
	AddCaller  bool
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{
		Level:      "info",
		Format:     "auto",
		Output:     "stderr",
		TimeFormat: "kitchen",
		NoColor:    os.Getenv("NO_COLOR") != "",
	}
}

// ConfigFromEnv returns DefaultConfig overridden by LOG_LEVEL, LOG_FORMAT,
// LOG_OUTPUT, LOG_TIME_FORMAT and LOG_CALLER. A non-empty DEBUG lowers the
// default level to debug.
func ConfigFromEnv() *Config {
	cfg := DefaultConfig()
	if os.Getenv("DEBUG") != "" {
		cfg.Level = "debug"
	}

	for key, field := range map[string]*string{
		"LOG_LEVEL":       &cfg.Level,
		"LOG_FORMAT":      &cfg.Format,
		"LOG_OUTPUT":      &cfg.Output,
		"LOG_TIME_FORMAT": &cfg.TimeFormat,
	} {
		if value := os.Getenv(key); value != "" {
			*field = value
		}
	}
	cfg.AddCaller = os.Getenv("LOG_CALLER") == "true"
	return cfg
}

// Build creates the logger and applies its level globally.
func (c *Config) Build() zerolog.Logger {
	level := parseLevel(c.Level)
	zerolog.SetGlobalLevel(level)

	logger := zerolog.New(c.writer()).
		Level(level).
		With().
		Timestamp().
		Logger()

	if c.AddCaller || level <= zerolog.DebugLevel {
		logger = logger.With().Caller().Logger()
	}
	return logger
}

// Configure replaces the default logger with one built from cfg.
func Configure(cfg *Config) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	SetDefault(cfg.Build())
}

// writer resolves Output and wraps it for console output when asked to, or
// when Format is auto and the output is a terminal.
func (c *Config) writer() io.Writer {
	out := openOutput(c.Output)

	console := false
	switch strings.ToLower(c.Format) {
	case "console", "pretty":
		console = true
	case "auto", "":
		f, ok := out.(*os.File)
		console = ok && isTerminal(f)
	}
	if !console {
		return out
	}

	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: parseTimeFormat(c.TimeFormat),
		NoColor:    c.NoColor,
	}
}

func openOutput(output string) io.Writer {
	switch strings.ToLower(output) {
	case "stderr", "":
		return os.Stderr
	case "stdout":
		return os.Stdout
	case "discard", "none":
		return io.Discard
	}

	// anything else is a file path; fall back to stderr if it cannot be opened
	file, err := os.OpenFile(output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return os.Stderr
	}
	return file
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "":
		return zerolog.InfoLevel
	case "warning":
		return zerolog.WarnLevel
	case "none", "off":
		return zerolog.Disabled
	}
	l, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.InfoLevel
	}
	return l
}

func parseTimeFormat(format string) string {
	switch strings.ToLower(format) {
	case "kitchen", "":
		return time.Kitchen
	case "rfc3339":
		return time.RFC3339
	case "unix", "epoch":
		return zerolog.TimeFormatUnix
	}
	if strings.Contains(format, "2006") || strings.Contains(format, "15:04") {
		return format
	}
	return time.Kitchen
}
