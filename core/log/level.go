// File: level.go
// Title: Log Level Definitions
// Description: Defines log levels with parsing and comparison helpers for the
//              whenny structured logger.
// Version: v0.1.0
// Created: 2025-08-07
// Modified: 2025-08-07
//
// Change History:
// - 2025-08-07 v0.1.0: Initial implementation

package log

import (
	"fmt"
	"strings"
)

// Level represents a log severity level
type Level int

const (
	// LevelDebug is for detailed diagnostic output
	LevelDebug Level = iota

	// LevelInfo is for normal operational messages
	LevelInfo

	// LevelWarn is for conditions that deserve attention
	LevelWarn

	// LevelError is for failures
	LevelError
)

// String returns the lowercase name of the level
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// ShortString returns the fixed-width four-letter tag of the level
func (l Level) ShortString() string {
	switch l {
	case LevelDebug:
		return "DBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERRO"
	default:
		return "????"
	}
}

// Enabled reports whether a message at this level passes the minimum level
func (l Level) Enabled(min Level) bool {
	return l >= min
}

// ParseLevel parses a level name, accepting common aliases
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug", "dbug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error", "err":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level: %q", name)
	}
}

// DefaultLevel returns the production default level
func DefaultLevel() Level {
	return LevelInfo
}
