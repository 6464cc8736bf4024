// Package log implements the leveled logger used throughout xwin.
package log

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

type LogLevel int

// The level of visibility of the log output. ERROR is the lowest level and
// VERBOSE is the highest.
const (
	ERROR LogLevel = iota
	WARN
	INFO
	DEBUG
	VERBOSE
)

var levelNames = []string{"error", "warn", "info", "debug", "verbose"}

// String implements Stringer.
func (l LogLevel) String() string {
	if l < ERROR || l > VERBOSE {
		return fmt.Sprintf("LogLevel(%d)", int(l))
	}
	return levelNames[l]
}

// ParseLevel returns the level with the given name.
func ParseLevel(name string) (LogLevel, error) {
	for i, level := range levelNames {
		if strings.EqualFold(name, level) {
			return LogLevel(i), nil
		}
	}
	return 0, fmt.Errorf("unknown log level %q", name)
}

// Logger writes leveled, formatted messages to a set of Sinks. Errors from
// the sinks are reported on standard error and otherwise ignored, so callers
// never need to check them.
type Logger struct {
	level LogLevel
	sinks []Sink
	file  *File
	mu    sync.Mutex
}

// NewLogger creates a Logger which writes to the log file at filePath (if
// not empty) and to the console (unless disableConsole is set).
func NewLogger(level LogLevel, filePath string, disableConsole bool, formatter Formatter) (*Logger, error) {
	if err := formatter.Validate(); err != nil {
		return nil, err
	}
	l := &Logger{level: level}
	if filePath != "" {
		file, err := OpenFile(filePath, formatter)
		if err != nil {
			return nil, err
		}
		l.file = file
		l.sinks = append(l.sinks, file)
	}
	if !disableConsole {
		l.sinks = append(l.sinks, NewConsole(nil, formatter))
	}
	return l, nil
}

// NewWithSinks creates a Logger which writes to the given sinks.
func NewWithSinks(level LogLevel, sinks ...Sink) *Logger {
	return &Logger{level: level, sinks: sinks}
}

// Level returns the visibility level of the Logger.
func (l *Logger) Level() LogLevel {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// SetLevel sets the visibility level of the Logger.
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// Close closes the log file, if any.
func (l *Logger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return
	}
	if err := l.file.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close log file: %s\n", err)
	}
	l.file = nil
}

func (l *Logger) log(level LogLevel, message string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level > l.level {
		return
	}
	if len(args) > 0 {
		message = fmt.Sprintf(message, args...)
	}
	for _, sink := range l.sinks {
		if err := write(sink, level, message); err != nil {
			fmt.Fprintf(os.Stderr, "Failed log write: %s\n", err)
		}
	}
}

func (l *Logger) Error(message string, args ...any)   { l.log(ERROR, message, args...) }
func (l *Logger) Warn(message string, args ...any)    { l.log(WARN, message, args...) }
func (l *Logger) Info(message string, args ...any)    { l.log(INFO, message, args...) }
func (l *Logger) Debug(message string, args ...any)   { l.log(DEBUG, message, args...) }
func (l *Logger) Verbose(message string, args ...any) { l.log(VERBOSE, message, args...) }

var (
	std   = NewWithSinks(WARN, NewConsole(nil, DefaultFormatter()))
	stdMu sync.RWMutex
)

// SetDefault replaces the logger used by the package-level functions.
func SetDefault(l *Logger) {
	stdMu.Lock()
	defer stdMu.Unlock()
	std = l
}

// Default returns the logger used by the package-level functions.
func Default() *Logger {
	stdMu.RLock()
	defer stdMu.RUnlock()
	return std
}

func Error(message string, args ...any)   { Default().Error(message, args...) }
func Warn(message string, args ...any)    { Default().Warn(message, args...) }
func Info(message string, args ...any)    { Default().Info(message, args...) }
func Debug(message string, args ...any)   { Default().Debug(message, args...) }
func Verbose(message string, args ...any) { Default().Verbose(message, args...) }
