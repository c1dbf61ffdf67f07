// Package logging provides a small structured-logging wrapper around
// charmbracelet/log, grounded on gomdlint's internal/logging package and
// trimmed to the field set this reader actually emits.
package logging

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// Field name constants, kept as constants for the same reason gomdlint
// keeps them: typo-proofing and IDE autocomplete across call sites.
const (
	FieldPath   = "path"
	FieldTokens = "tokens"
	FieldError  = "error"
)

var (
	defaultLogger     *log.Logger
	defaultLoggerOnce sync.Once
)

func getDefault() *log.Logger {
	defaultLoggerOnce.Do(func() {
		defaultLogger = New("info")
	})
	return defaultLogger
}

// New creates a logger at the given level. Valid levels: "debug", "info",
// "warn", "error"; anything else is treated as "info".
func New(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
	setLevel(logger, level)
	return logger
}

func setLevel(logger *log.Logger, level string) {
	switch strings.ToLower(level) {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "warn", "warning":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
}

// Default returns the package-level default logger.
func Default() *log.Logger {
	return getDefault()
}

// SetLevel updates the default logger's level.
func SetLevel(level string) {
	setLevel(getDefault(), level)
}
