// Package logger configures zerolog structured logging for the command line
// tools. Library packages take a zerolog.Logger option and never log through
// the global logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Output targets.
const (
	OutputStdout  = "stdout"
	OutputStderr  = "stderr"
	OutputConsole = "console" // human readable, on stderr
)

// Config holds logging settings.
type Config struct {
	Level      string `json:"level" yaml:"level"`
	Debug      bool   `json:"debug" yaml:"debug"`
	Output     string `json:"output" yaml:"output"`
	TimeFormat string `json:"time_format" yaml:"time_format"`
}

var globalLogger zerolog.Logger

func init() {
	globalLogger = zerolog.New(os.Stderr).Level(zerolog.WarnLevel).With().Timestamp().Logger()
	zerolog.TimeFieldFormat = time.RFC3339
}

// DefaultConfig returns warning level JSON logs on stderr, so that command
// output on stdout stays machine readable.
func DefaultConfig() Config {
	return Config{Level: zerolog.WarnLevel.String(), Output: OutputStderr}
}

// ParseLevel returns the configured level. Debug overrides Level.
func (c Config) ParseLevel() (zerolog.Level, error) {
	if c.Debug {
		return zerolog.DebugLevel, nil
	}

	if c.Level == "" {
		return zerolog.WarnLevel, nil
	}

	level, err := zerolog.ParseLevel(c.Level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", c.Level, err)
	}

	return level, nil
}

func (c Config) writer() (io.Writer, error) {
	switch c.Output {
	case "", OutputStderr:
		return os.Stderr, nil
	case OutputStdout:
		return os.Stdout, nil
	case OutputConsole:
		return zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}, nil
	default:
		return nil, fmt.Errorf("invalid log output %q", c.Output)
	}
}

// New builds a logger from config writing to the configured output.
func New(config Config) (zerolog.Logger, error) {
	w, err := config.writer()
	if err != nil {
		return zerolog.Nop(), err
	}

	return NewWithWriter(config, w)
}

// NewWithWriter builds a logger from config writing to w.
func NewWithWriter(config Config, w io.Writer) (zerolog.Logger, error) {
	level, err := config.ParseLevel()
	if err != nil {
		return zerolog.Nop(), err
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

// Init replaces the global logger.
func Init(config Config) error {
	l, err := New(config)
	if err != nil {
		return err
	}

	if config.TimeFormat != "" {
		zerolog.TimeFieldFormat = config.TimeFormat
	}

	globalLogger = l
	log.Logger = globalLogger

	return nil
}

// GetLogger returns the global logger.
func GetLogger() zerolog.Logger {
	return globalLogger
}

// WithComponent returns the global logger tagged with a component name.
func WithComponent(component string) zerolog.Logger {
	return globalLogger.With().Str("component", component).Logger()
}
