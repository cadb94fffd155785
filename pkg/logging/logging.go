package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/smbsnap/pkg/paths"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options configures SetupLogger
type Options struct {
	// Verbosity: 0 info, 1 debug, 2+ trace
	Verbosity int
	// LogFile receives every event as JSON. Empty means the XDG state default.
	LogFile string
	// Stdout and Stderr default to the process streams
	Stdout io.Writer
	Stderr io.Writer
	// NoColor disables ANSI colors on the console writers
	NoColor bool
	// ConsoleOnly skips the log file entirely
	ConsoleOnly bool
}

// openFile is the log file of the current setup, closed on the next one
var openFile *os.File

// SetupLogger configures the global logger.
// Debug and info go to stdout, warnings and errors to stderr, and
// everything is appended to the log file unless ConsoleOnly is set.
func SetupLogger(opts Options) {
	switch {
	case opts.Verbosity <= 0:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case opts.Verbosity == 1:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	console := levelSplitWriter{
		out: zerolog.ConsoleWriter{Out: stdout, TimeFormat: time.DateTime, NoColor: opts.NoColor},
		err: zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.DateTime, NoColor: opts.NoColor},
	}

	writers := []io.Writer{console}

	Close()
	var logFile string
	var err error
	if !opts.ConsoleOnly {
		logFile = opts.LogFile
		if logFile == "" {
			logFile = paths.LogFilePath()
		}
		openFile, err = setupLogFile(logFile)
		if err == nil {
			writers = append(writers, openFile)
		}
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()

	// If we couldn't create the log file, log the error now with the new logger
	if err != nil {
		log.Warn().Err(err).Str("path", logFile).Msg("Failed to open log file, logging to console only")
	}

	if opts.Verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Debug().Int("verbosity", opts.Verbosity).Str("logFile", logFile).Msg("Logger initialized")
}

// Close closes the log file opened by SetupLogger, if any
func Close() {
	if openFile != nil {
		_ = openFile.Close()
		openFile = nil
	}
}

// levelSplitWriter routes warnings and above to err, the rest to out
type levelSplitWriter struct {
	out io.Writer
	err io.Writer
}

func (w levelSplitWriter) Write(p []byte) (int, error) {
	return w.out.Write(p)
}

func (w levelSplitWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level >= zerolog.WarnLevel && level != zerolog.NoLevel {
		return w.err.Write(p)
	}
	return w.out.Write(p)
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// setupLogFile creates the log file and its parent directories
func setupLogFile(logPath string) (*os.File, error) {
	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return file, nil
}

// LogCommand logs a command execution with its arguments
func LogCommand(logger zerolog.Logger, cmd string, args []string) {
	logger.Debug().
		Str("command", cmd).
		Strs("args", args).
		Msg("Executing command")
}

// LogOperationStart logs the start of an operation and returns a function to log its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
