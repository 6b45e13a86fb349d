package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

var defaultLogger *slog.Logger

// logFilePath determines the path for the application log file based on XDG spec.
func logFilePath() (string, error) {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not get user home directory: %w", err)
		}
		stateDir = filepath.Join(homeDir, ".local", "state")
	}

	return filepath.Join(stateDir, "csvplot", "app.log"), nil
}

// Init configures the default logger to append JSON records to the state
// log file. verbose lowers the level to debug. It should be called once at
// startup; the level helpers fall back to defaults if it was skipped.
//
// The terminal is reserved for the plot run's own output, so a broken log
// destination must never abort a run: logging degrades to a discard handler
// after a single stderr warning.
func Init(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	writer, err := openLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: file logging disabled: %v\n", err)
		writer = io.Discard
	}
	defaultLogger = slog.New(slog.NewJSONHandler(writer, opts))
}

// openLogFile creates the state directory if needed and opens the log file
// for appending.
func openLogFile() (io.Writer, error) {
	path, err := logFilePath()
	if err != nil {
		return nil, err
	}

	// 0750 for the directory, 0640 for the file: no access for others.
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("could not create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
	if err != nil {
		return nil, fmt.Errorf("could not open log file %s: %w", path, err)
	}

	// The handle stays open for the process lifetime; the OS closes it on
	// exit, which is acceptable for a single-shot CLI.
	return file, nil
}

// checkLogger ensures the logger is initialized before use, preventing nil panics.
func checkLogger() {
	if defaultLogger == nil {
		Init(false)
	}
}

// Info logs an informational message.
func Info(msg string, args ...any) {
	checkLogger()
	defaultLogger.Info(msg, args...)
}

// Error logs an error message.
func Error(msg string, args ...any) {
	checkLogger()
	defaultLogger.Error(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	checkLogger()
	defaultLogger.Warn(msg, args...)
}

// Debug logs a debug message. Silent unless Init was called with verbose.
func Debug(msg string, args ...any) {
	checkLogger()
	defaultLogger.Debug(msg, args...)
}
