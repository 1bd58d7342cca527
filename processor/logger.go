package processor

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// LogLevel orders log messages by severity, lowest first.
type LogLevel int

// Log levels understood by SimpleLogger and ParseLogLevel.
const (
	LogLevelDebug LogLevel = iota // per-step tracing
	LogLevelInfo
	LogLevelWarn
	LogLevelError // failed steps
)

var levelNames = [...]string{
	LogLevelDebug: "DEBUG",
	LogLevelInfo:  "INFO",
	LogLevelWarn:  "WARN",
	LogLevelError: "ERROR",
}

// String returns the upper-case level name, or "UNKNOWN".
func (l LogLevel) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// ParseLogLevel converts a level name such as "debug" or "WARN" to a LogLevel.
// Blank input means LogLevelInfo, and "warning" is accepted for LogLevelWarn.
func ParseLogLevel(s string) (LogLevel, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	switch name {
	case "":
		return LogLevelInfo, nil
	case "WARNING":
		return LogLevelWarn, nil
	}
	for l, n := range levelNames {
		if n == name {
			return LogLevel(l), nil
		}
	}
	return LogLevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Logger receives printf-style messages from LoggingProcessor and from
// chains built with a log level. Adapt any logging library to it by
// implementing Log; the level helpers usually just forward to Log.
type Logger interface {
	Log(level LogLevel, format string, args ...interface{})
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// NoOpLogger discards everything.
type NoOpLogger struct{}

func (NoOpLogger) Log(LogLevel, string, ...interface{}) {}
func (NoOpLogger) Debug(string, ...interface{})         {}
func (NoOpLogger) Info(string, ...interface{})          {}
func (NoOpLogger) Warn(string, ...interface{})          {}
func (NoOpLogger) Error(string, ...interface{})         {}

// SimpleLogger writes "[LEVEL] message" lines through the standard log
// package, with its usual date and time prefix. Debug and Info go to the
// regular output; Warn and Error go to the error output.
type SimpleLogger struct {
	// MinLevel drops every message below it.
	MinLevel LogLevel

	out    *log.Logger
	errOut *log.Logger
}

// NewSimpleLogger returns a SimpleLogger on stdout and stderr.
func NewSimpleLogger(minLevel LogLevel) *SimpleLogger {
	return NewSimpleLoggerTo(os.Stdout, os.Stderr, minLevel)
}

// NewSimpleLoggerTo returns a SimpleLogger that writes to out, and to errOut
// for warnings and errors.
func NewSimpleLoggerTo(out, errOut io.Writer, minLevel LogLevel) *SimpleLogger {
	return &SimpleLogger{
		MinLevel: minLevel,
		out:      log.New(out, "", log.LstdFlags),
		errOut:   log.New(errOut, "", log.LstdFlags),
	}
}

func (s *SimpleLogger) target(level LogLevel) *log.Logger {
	if level >= LogLevelWarn {
		return s.errOut
	}
	return s.out
}

// Log implements Logger.
func (s *SimpleLogger) Log(level LogLevel, format string, args ...interface{}) {
	if level < s.MinLevel {
		return
	}
	s.target(level).Print("[" + level.String() + "] " + fmt.Sprintf(format, args...))
}

func (s *SimpleLogger) Debug(format string, args ...interface{}) {
	s.Log(LogLevelDebug, format, args...)
}

func (s *SimpleLogger) Info(format string, args ...interface{}) {
	s.Log(LogLevelInfo, format, args...)
}

func (s *SimpleLogger) Warn(format string, args ...interface{}) {
	s.Log(LogLevelWarn, format, args...)
}

func (s *SimpleLogger) Error(format string, args ...interface{}) {
	s.Log(LogLevelError, format, args...)
}
