// Package output provides terminal output utilities.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// logger is the package logger. Replace it through SetupLogging or SetWriter.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      "15:04:05",
})

// LogConfig controls logger construction.
type LogConfig struct {
	// Verbose enables debug level, caller reporting and forces timestamps on.
	Verbose bool

	// Timestamps overrides the default of showing timestamps. Nil keeps the default.
	Timestamps *bool
}

// SetupLogging configures the logger based on verbosity and timestamp preference.
func SetupLogging(cfg LogConfig) {
	setup(os.Stderr, cfg)
}

// SetWriter redirects log output, keeping the current configuration.
func SetWriter(w io.Writer, cfg LogConfig) {
	setup(w, cfg)
}

func setup(w io.Writer, cfg LogConfig) {
	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}

	timestamps := true
	if cfg.Timestamps != nil {
		timestamps = *cfg.Timestamps
	}
	if cfg.Verbose {
		timestamps = true
	}

	logger = log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: timestamps,
		ReportCaller:    cfg.Verbose,
		TimeFormat:      "15:04:05",
	})
}

// Logger returns the package logger.
func Logger() *log.Logger {
	return logger
}

// StepLogger returns a child logger prefixed with a generation step name.
func StepLogger(step string) *log.Logger {
	return logger.WithPrefix(StyleDim.Render("step:") + step)
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...any) {
	logger.Debug(msg, keyvals...)
}

// Info logs an info message.
func Info(msg string, keyvals ...any) {
	logger.Info(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...any) {
	logger.Warn(msg, keyvals...)
}

// Error logs an error message.
func Error(msg string, keyvals ...any) {
	logger.Error(msg, keyvals...)
}

// Println prints a message to stdout with a newline.
func Println(msg string) {
	os.Stdout.WriteString(msg + "\n")
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}
