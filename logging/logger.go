package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/grovetools/masonry/config"
	"github.com/grovetools/masonry/pkg/paths"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var (
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex
)

// NewLogger creates and returns a pre-configured logger for a specific component.
// It uses a singleton pattern per component to avoid re-initializing.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}

	var logCfg Config
	if cfg, err := config.LoadDefault(); err == nil {
		if err := cfg.UnmarshalExtension("logging", &logCfg); err != nil {
			logrus.Warnf("Failed to parse 'logging' config: %v", err)
		}
	}

	entry := newLoggerWithConfig(component, logCfg, os.Stderr)
	loggers[component] = entry
	return entry
}

// newLoggerWithConfig builds a logger from an explicit configuration.
// stderr is the terminal sink used when structured output is enabled.
func newLoggerWithConfig(component string, logCfg Config, stderr *os.File) *logrus.Entry {
	logger := logrus.New()

	levelStr := "info"
	if env := os.Getenv("MASONRY_LOG_LEVEL"); env != "" {
		levelStr = env
	} else if logCfg.Level != "" {
		levelStr = logCfg.Level
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if os.Getenv("MASONRY_LOG_CALLER") == "true" || logCfg.ReportCaller {
		logger.SetReportCaller(true)
	}

	switch logCfg.Format.Preset {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "simple":
		logger.SetFormatter(&TextFormatter{Config: FormatConfig{
			DisableTimestamp: true,
			DisableComponent: true,
		}})
	default:
		logger.SetFormatter(&TextFormatter{Config: logCfg.Format})
	}

	var writers []io.Writer

	if logCfg.File.Enabled {
		logFilePath := expandPath(logCfg.File.Path)
		if logFilePath == "" {
			logFilePath = defaultLogFilePath(component)
		}
		if logFilePath != "" {
			if err := os.MkdirAll(filepath.Dir(logFilePath), 0755); err != nil {
				logger.Warnf("Failed to create log directory for %s: %v", logFilePath, err)
			} else if file, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
				logger.Warnf("Failed to open log file %s: %v", logFilePath, err)
			} else {
				writers = append(writers, file)
			}
		}
	}

	stderrMode := "auto"
	if logCfg.Format.StructuredToStderr != "" {
		stderrMode = logCfg.Format.StructuredToStderr
	}

	shouldLogToStderr := false
	switch stderrMode {
	case "always":
		shouldLogToStderr = true
	case "never":
		shouldLogToStderr = false
	default:
		// In an interactive terminal the dashboard owns the screen, so
		// structured logs only go to stderr when debugging or when piped.
		isDebug := os.Getenv("MASONRY_DEBUG") == "1" || logger.GetLevel() >= logrus.DebugLevel
		isInteractive := isatty.IsTerminal(stderr.Fd()) || isatty.IsCygwinTerminal(stderr.Fd())
		shouldLogToStderr = isDebug || !isInteractive
	}
	if shouldLogToStderr {
		writers = append(writers, stderr)
	}

	switch len(writers) {
	case 0:
		logger.SetOutput(io.Discard)
	case 1:
		logger.SetOutput(writers[0])
	default:
		logger.SetOutput(io.MultiWriter(writers...))
	}

	return logger.WithField("component", component)
}

func defaultLogFilePath(component string) string {
	dir := paths.StateDir()
	if dir == "" {
		return ""
	}
	dateStr := time.Now().Format("2006-01-02")
	return filepath.Join(dir, "logs", fmt.Sprintf("%s-%s.log", component, dateStr))
}

// expandPath expands tilde in file paths
func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
