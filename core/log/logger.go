// File: logger.go
// Title: Structured Logger Implementation
// Description: Implements the Logger type providing leveled, structured
//              logging with contextual fields and pluggable text/JSON
//              formatting. Used by the whenny CLI and server surfaces; the
//              domain core itself never logs.
// Version: v0.1.0
// Created: 2025-08-07
// Modified: 2025-08-07
//
// Change History:
// - 2025-08-07 v0.1.0: Initial implementation

package log

import (
	"io"
	"os"
	"sync"
	"time"
)

// Fields is a set of contextual key-value pairs attached to log entries
type Fields map[string]interface{}

// Entry is one formatted log record
type Entry struct {
	Timestamp time.Time
	Level     Level
	Logger    string
	Message   string
	Fields    Fields
}

// Logger is a leveled structured logger. Loggers are immutable: the With*
// methods return clones, so a logger may be shared across goroutines.
type Logger struct {
	level     Level
	formatter Formatter
	output    io.Writer
	name      string
	fields    Fields

	mu *sync.Mutex
}

// New creates a logger writing text entries at the default level to stderr
func New() *Logger {
	return &Logger{
		level:     DefaultLevel(),
		formatter: NewTextFormatter(),
		output:    os.Stderr,
		fields:    make(Fields),
		mu:        &sync.Mutex{},
	}
}

// clone copies the logger, sharing the output mutex
func (l *Logger) clone() *Logger {
	fields := make(Fields, len(l.fields))
	for k, v := range l.fields {
		fields[k] = v
	}

	return &Logger{
		level:     l.level,
		formatter: l.formatter,
		output:    l.output,
		name:      l.name,
		fields:    fields,
		mu:        l.mu,
	}
}

// WithLevel returns a clone with the given minimum level
func (l *Logger) WithLevel(level Level) *Logger {
	c := l.clone()
	c.level = level
	return c
}

// WithFormatter returns a clone using the given formatter
func (l *Logger) WithFormatter(formatter Formatter) *Logger {
	c := l.clone()
	c.formatter = formatter
	return c
}

// WithOutput returns a clone writing to the given destination
func (l *Logger) WithOutput(output io.Writer) *Logger {
	c := l.clone()
	c.output = output
	return c
}

// WithName returns a clone carrying a logger name
func (l *Logger) WithName(name string) *Logger {
	c := l.clone()
	c.name = name
	return c
}

// WithField returns a clone with an additional contextual field
func (l *Logger) WithField(key string, value interface{}) *Logger {
	c := l.clone()
	c.fields[key] = value
	return c
}

// WithFields returns a clone with additional contextual fields
func (l *Logger) WithFields(fields Fields) *Logger {
	c := l.clone()
	for k, v := range fields {
		c.fields[k] = v
	}
	return c
}

// Debug logs a message at debug level
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, fields...)
}

// Info logs a message at info level
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, fields...)
}

// Warn logs a message at warn level
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, fields...)
}

// Error logs a message at error level
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, fields...)
}

func (l *Logger) log(level Level, message string, extra ...Fields) {
	if !level.Enabled(l.level) {
		return
	}

	fields := make(Fields, len(l.fields))
	for k, v := range l.fields {
		fields[k] = v
	}
	for _, set := range extra {
		for k, v := range set {
			fields[k] = v
		}
	}

	entry := &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Logger:    l.name,
		Message:   message,
		Fields:    fields,
	}

	line, err := l.formatter.Format(entry)
	if err != nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.output.Write(line)
}
