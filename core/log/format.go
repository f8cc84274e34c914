// File: format.go
// Title: Log Entry Formatters
// Description: Implements text and JSON formatting of log entries. Text is
//              the human-facing CLI format, JSON the machine-facing server
//              format.
// Version: v0.1.0
// Created: 2025-08-07
// Modified: 2025-08-07
//
// Change History:
// - 2025-08-07 v0.1.0: Initial implementation

package log

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Formatter renders a log entry into a writable line
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// TextFormatter renders entries as human-readable single lines
type TextFormatter struct {
	// TimestampFormat overrides the default timestamp layout
	TimestampFormat string
}

// NewTextFormatter creates a text formatter with default settings
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{TimestampFormat: "2006-01-02 15:04:05.000"}
}

// Format renders the entry as "timestamp [LEVL] [name] message key=value"
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	var b strings.Builder

	b.WriteString(entry.Timestamp.Format(f.TimestampFormat))
	b.WriteString(" [")
	b.WriteString(entry.Level.ShortString())
	b.WriteString("]")

	if entry.Logger != "" {
		b.WriteString(" [")
		b.WriteString(entry.Logger)
		b.WriteString("]")
	}

	b.WriteString(" ")
	b.WriteString(entry.Message)

	if len(entry.Fields) > 0 {
		keys := make([]string, 0, len(entry.Fields))
		for k := range entry.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			b.WriteString(" ")
			b.WriteString(k)
			b.WriteString("=")
			b.WriteString(formatValue(entry.Fields[k]))
		}
	}

	b.WriteString("\n")
	return []byte(b.String()), nil
}

// formatValue renders a field value, quoting strings that contain spaces
func formatValue(value interface{}) string {
	s := fmt.Sprintf("%v", value)
	if strings.ContainsAny(s, " \t") {
		return fmt.Sprintf("%q", s)
	}
	return s
}

// JSONFormatter renders entries as single-line JSON objects
type JSONFormatter struct{}

// NewJSONFormatter creates a JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format renders the entry as a JSON object with timestamp, level, message,
// optional logger name, and flattened fields
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	record := make(map[string]interface{}, len(entry.Fields)+4)

	record["timestamp"] = entry.Timestamp.Format(time.RFC3339Nano)
	record["level"] = entry.Level.String()
	record["message"] = entry.Message

	if entry.Logger != "" {
		record["logger"] = entry.Logger
	}

	for k, v := range entry.Fields {
		switch k {
		case "timestamp", "level", "message", "logger":
			record["fields."+k] = v
		default:
			record[k] = v
		}
	}

	line, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}

	return append(line, '\n'), nil
}
