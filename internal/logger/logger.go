package logger

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return &Logger{Logger: l}
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// NewFileLogger creates a logger that writes to a file
func NewFileLogger(path string) (*Logger, func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})

	cleanup := func() {
		f.Close()
	}

	return &Logger{Logger: l}, cleanup, nil
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// ConversionStarted logs the start of a conversion
func (l *Logger) ConversionStarted(direction, input string) {
	l.Debug("conversion started",
		"type", direction,
		"input", input)
}

// ConversionCompleted logs a successful conversion
func (l *Logger) ConversionCompleted(direction, input, output string, duration time.Duration) {
	l.Info("conversion completed",
		"type", direction,
		"input", input,
		"output", output,
		"duration", duration.Round(time.Millisecond))
}

// ConversionError logs a conversion failure
func (l *Logger) ConversionError(direction, input string, err error) {
	l.Error("conversion failed",
		"type", direction,
		"input", input,
		"error", err)
}

// QuerySelected logs which element an XPath query picked
func (l *Logger) QuerySelected(query, tag string) {
	l.Debug("query selected element",
		"query", query,
		"tag", tag)
}

// CheckCompleted logs the outcome of a round-trip check
func (l *Logger) CheckCompleted(input string, clean bool) {
	if clean {
		l.Info("round-trip check passed", "input", input)
		return
	}
	l.Warn("round-trip check found differences", "input", input)
}

// ConfigLoaded logs successful config loading
func (l *Logger) ConfigLoaded(defaultType string, indent int, strip bool) {
	l.Debug("config loaded",
		"default_type", defaultType,
		"indent", indent,
		"strip", strip)
}
