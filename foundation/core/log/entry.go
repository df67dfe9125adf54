// File: entry.go
// Title: Log Entry and Fields
// Description: A single log record and the Fields map attached to it.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14

package log

import (
	"maps"
	"slices"
	"time"
)

// Entry is a single log record
type Entry struct {
	Timestamp time.Time
	Level     Level
	Message   string
	Logger    string
	RequestID string
	Fields    Fields
	Error     error
}

// Fields carries structured key/value data
type Fields map[string]interface{}

// Field creates a Fields with a single pair
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Err creates a Fields holding an error
func Err(err error) Fields {
	return Fields{"error": err}
}

// Merge returns a new Fields containing both sets; other wins on conflicts
func (f Fields) Merge(other Fields) Fields {
	result := make(Fields, len(f)+len(other))
	maps.Copy(result, f)
	maps.Copy(result, other)
	return result
}

// Keys returns the field names in sorted order
func (f Fields) Keys() []string {
	return slices.Sorted(maps.Keys(f))
}

// NewEntry creates an entry stamped with the current time
func NewEntry(level Level, message string) *Entry {
	return &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    make(Fields),
	}
}
