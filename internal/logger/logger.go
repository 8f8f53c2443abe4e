package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger defines the common logging interface used throughout the application.
//
// Internal messages (Info, Warning, Error) are written to the debug log file when
// debug logging is enabled. User-facing messages (InfoToUser, WarningToUser,
// Success, StatusMessage) always reach stdout.
type Logger interface {
	// Info logs an informational message to the debug log only.
	Info(format string, args ...interface{})

	// Warning logs a warning; it is echoed to stdout when verbose is on.
	Warning(format string, args ...interface{})

	// Error logs an error and always echoes it to stderr.
	Error(format string, args ...interface{})

	// InfoToUser logs an informational message intended for users.
	InfoToUser(format string, args ...interface{})

	// WarningToUser logs a warning message intended for users.
	WarningToUser(format string, args ...interface{})

	// Success logs a success message to the user.
	Success(format string, args ...interface{})

	// StatusMessage prints a plain status line to stdout without logging it.
	// Preview rows, progress lines and the commit summary go through here.
	StatusMessage(format string, args ...interface{})

	// Close flushes the debug log and closes its file handle.
	Close() error
}

// DefaultLogger implements Logger on top of a zap core writing to the log file
type DefaultLogger struct {
	mu      sync.Mutex
	zl      *zap.Logger
	enabled bool
	logFile string
	verbose bool
	stdout  io.Writer
	stderr  io.Writer
	file    *os.File
}

// New creates a new Logger instance
func New(enabled bool, logFile string, verbose bool) Logger {
	return NewWithOutput(enabled, logFile, verbose, os.Stdout, os.Stderr)
}

// NewWithOutput creates a DefaultLogger with custom output writers
func NewWithOutput(enabled bool, logFile string, verbose bool, stdout, stderr io.Writer) *DefaultLogger {
	zl := zap.NewNop()
	var file *os.File

	if enabled {
		logDir := filepath.Dir(logFile)
		if logDir != "." {
			if err := os.MkdirAll(logDir, 0755); err != nil {
				_, _ = fmt.Fprintf(stderr, "⚠️ Failed to create log directory: %v\n", err)
			}
		}

		f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err == nil {
			file = f
			zl = newZap(zapcore.AddSync(f))
			_, _ = fmt.Fprintf(stdout, "🔍 Debug logging enabled. Logs will be written to: %s\n", logFile)

			zl.Info("gitpix debug logging started")
		} else {
			zl = newZap(zapcore.AddSync(stderr))
			_, _ = fmt.Fprintf(stderr, "⚠️ Failed to open log file: %v, using stderr instead\n", err)
		}
	}

	return &DefaultLogger{
		zl:      zl,
		enabled: enabled,
		logFile: logFile,
		verbose: verbose,
		stdout:  stdout,
		stderr:  stderr,
		file:    file,
	}
}

func newZap(ws zapcore.WriteSyncer) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), ws, zapcore.InfoLevel)
	return zap.New(core)
}

// Info logs an informational message (file only)
func (l *DefaultLogger) Info(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.enabled {
		return
	}

	l.zl.Info(fmt.Sprintf(format, args...))
}

// InfoToUser logs an informational message to both file and stdout
func (l *DefaultLogger) InfoToUser(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)

	if l.enabled {
		l.zl.Info(msg)
	}

	_, _ = fmt.Fprintf(l.stdout, "ℹ️  %s\n", msg)
}

// Success logs a success message to both file and stdout
func (l *DefaultLogger) Success(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)

	if l.enabled {
		l.zl.Info(msg)
	}

	_, _ = fmt.Fprintf(l.stdout, "✅ %s\n", msg)
}

// Warning logs a warning message
func (l *DefaultLogger) Warning(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)

	if l.enabled {
		l.zl.Warn(msg)
	}

	if l.verbose {
		_, _ = fmt.Fprintf(l.stdout, "⚠️  %s\n", msg)
	}
}

// WarningToUser logs a warning message to both file and stdout
func (l *DefaultLogger) WarningToUser(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)

	if l.enabled {
		l.zl.Warn(msg)
	}

	_, _ = fmt.Fprintf(l.stdout, "⚠️  %s\n", msg)
}

// Error logs an error message
func (l *DefaultLogger) Error(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)

	if l.enabled {
		l.zl.Error(msg)
	}

	_, _ = fmt.Fprintf(l.stderr, "❌ %s\n", msg)
}

// StatusMessage prints a status message to stdout only (no logging)
func (l *DefaultLogger) StatusMessage(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	_, _ = fmt.Fprintln(l.stdout, fmt.Sprintf(format, args...))
}

// Close flushes zap and closes the log file, if one was opened
func (l *DefaultLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}

	_ = l.zl.Sync()
	if err := l.file.Sync(); err != nil {
		return err
	}
	err := l.file.Close()
	l.file = nil
	l.zl = zap.NewNop()
	return err
}

// SetStdout sets a custom writer for user-facing stdout messages only.
func (l *DefaultLogger) SetStdout(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stdout = w
}

// SetStderr sets a custom writer for user-facing stderr messages only.
func (l *DefaultLogger) SetStderr(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stderr = w
}
