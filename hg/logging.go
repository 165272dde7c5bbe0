package hg

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	logger     *log.Logger
	loggerOnce sync.Once
	logEnabled bool
)

// init auto-initializes the debug logger from environment variables.
// Set HGLIB_LOG_FILE to enable logging to a rotating file.
// Set HGLIB_LOG_LEVEL to control verbosity (debug, info, warn, error).
func init() {
	logPath := os.Getenv("HGLIB_LOG_FILE")
	if logPath == "" {
		return // Logging disabled by default
	}

	level := log.DebugLevel
	switch strings.ToLower(os.Getenv("HGLIB_LOG_LEVEL")) {
	case "info":
		level = log.InfoLevel
	case "warn", "warning":
		level = log.WarnLevel
	case "error":
		level = log.ErrorLevel
	}

	InitLogger(logPath, level)
}

// InitLogger initializes the library logger to write to the specified
// file, rotated at 1MB. If logPath is empty, logging stays disabled.
func InitLogger(logPath string, level log.Level) {
	loggerOnce.Do(func() {
		if logPath == "" {
			return
		}

		writer := &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    1, // megabytes
			MaxBackups: 2,
			MaxAge:     30, // days
		}

		logger = log.NewWithOptions(writer, log.Options{
			Level:           level,
			ReportTimestamp: true,
			Prefix:          "hg",
		})
		logEnabled = true
	})
}

func logDebug(msg string, keyvals ...interface{}) {
	if logEnabled {
		logger.Debug(msg, keyvals...)
	}
}
