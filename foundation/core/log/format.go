// File: format.go
// Title: Log Formatters
// Description: JSON, text and console formatters for log entries. Both
//              write the fixed keys first and the fields in sorted order.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with JSON, text, console and logfmt
// - 2026-10-14 v0.2.0: Deterministic key order, logfmt folded into text

package log

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Format selects a Formatter
type Format int

const (
	// FormatJSON outputs one JSON object per line
	FormatJSON Format = iota

	// FormatText outputs key=value lines
	FormatText

	// FormatConsole outputs text lines with a colored level tag
	FormatConsole
)

var formatNames = [...]string{
	FormatJSON:    "json",
	FormatText:    "text",
	FormatConsole: "console",
}

// String returns the string representation of the format
func (f Format) String() string {
	if f < FormatJSON || int(f) >= len(formatNames) {
		return "unknown"
	}
	return formatNames[f]
}

// ParseFormat parses a string into a log format
func ParseFormat(format string) (Format, error) {
	want := strings.ToLower(strings.TrimSpace(format))
	for f, name := range formatNames {
		if want == name {
			return Format(f), nil
		}
	}
	return FormatJSON, &ParseError{Input: format, Type: "format"}
}

// Formatter turns an entry into one line ready for output
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// NewFormatter returns a formatter for the specified format
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatText:
		return NewTextFormatter()
	case FormatConsole:
		return NewConsoleFormatter()
	default:
		return NewJSONFormatter()
	}
}

// JSONFormatter formats log entries as JSON objects
type JSONFormatter struct {
	TimestampFormat string
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{TimestampFormat: time.RFC3339}
}

// Format writes timestamp, level, logger, request_id and message, then
// the fields, then error and error_details
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	var buf bytes.Buffer
	first := true

	put := func(key string, value interface{}) error {
		raw, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("field %s: %w", key, err)
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		k, _ := json.Marshal(key)
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(raw)
		return nil
	}

	buf.WriteByte('{')
	fixed := []struct {
		key   string
		value string
	}{
		{"timestamp", entry.Timestamp.Format(f.TimestampFormat)},
		{"level", entry.Level.String()},
		{"logger", entry.Logger},
		{"request_id", entry.RequestID},
		{"message", entry.Message},
	}
	for _, kv := range fixed {
		if kv.value == "" && kv.key != "message" {
			continue
		}
		if err := put(kv.key, kv.value); err != nil {
			return nil, err
		}
	}

	for _, k := range entry.Fields.Keys() {
		v := entry.Fields[k]
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		if err := put(k, v); err != nil {
			return nil, err
		}
	}

	if entry.Error != nil {
		if err := put("error", entry.Error.Error()); err != nil {
			return nil, err
		}
		if marshaler, ok := entry.Error.(json.Marshaler); ok {
			if raw, err := marshaler.MarshalJSON(); err == nil {
				if err := put("error_details", json.RawMessage(raw)); err != nil {
					return nil, err
				}
			}
		}
	}

	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

// TextFormatter formats log entries as human-readable key=value lines
type TextFormatter struct {
	TimestampFormat  string
	DisableTimestamp bool
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{TimestampFormat: "15:04:05"}
}

// Format formats a log entry as text
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	return []byte(f.line(entry, entry.Level.ShortString()) + "\n"), nil
}

func (f *TextFormatter) line(entry *Entry, tag string) string {
	var b strings.Builder

	if !f.DisableTimestamp {
		b.WriteString(entry.Timestamp.Format(f.TimestampFormat))
		b.WriteByte(' ')
	}
	b.WriteString("[" + tag + "]")
	if entry.Logger != "" {
		b.WriteString(" {" + entry.Logger + "}")
	}
	if entry.RequestID != "" {
		b.WriteString(" (req=" + entry.RequestID + ")")
	}
	b.WriteByte(' ')
	b.WriteString(entry.Message)

	for _, k := range entry.Fields.Keys() {
		fmt.Fprintf(&b, " %s=%s", k, textValue(entry.Fields[k]))
	}
	if entry.Error != nil {
		fmt.Fprintf(&b, " error=%q", entry.Error.Error())
	}
	return b.String()
}

// textValue quotes values that would break a key=value reading
func textValue(v interface{}) string {
	if err, ok := v.(error); ok {
		v = err.Error()
	}
	s := fmt.Sprint(v)
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return fmt.Sprintf("%q", s)
	}
	return s
}

// ConsoleFormatter is a TextFormatter with a colored level tag
type ConsoleFormatter struct {
	DisableColors bool
	*TextFormatter
}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{TextFormatter: NewTextFormatter()}
}

// Format formats a log entry for console output
func (f *ConsoleFormatter) Format(entry *Entry) ([]byte, error) {
	tag := entry.Level.ShortString()
	if !f.DisableColors {
		tag = entry.Level.Color() + tag + "\033[0m"
	}
	return []byte(f.line(entry, tag) + "\n"), nil
}
