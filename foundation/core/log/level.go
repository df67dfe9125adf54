// File: level.go
// Title: Log Level Definitions
// Description: Log severity levels with parsing and ordering. Names, short
//              forms and console colors live in one table.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-14 v0.2.0: Table driven, audit level removed

package log

import (
	"strings"
)

// Level represents the severity of a log entry
type Level int

const (
	// LevelTrace is the most verbose level; the lexer logs scanned tokens here
	LevelTrace Level = iota

	// LevelDebug provides detailed information for debugging purposes
	LevelDebug

	// LevelInfo represents general informational messages
	LevelInfo

	// LevelWarn indicates potentially harmful situations
	LevelWarn

	// LevelError represents error conditions that need attention
	LevelError

	// LevelFatal represents errors that terminate the program
	LevelFatal
)

type levelInfo struct {
	name    string
	short   string
	color   string
	aliases []string
}

var levelTable = [...]levelInfo{
	LevelTrace: {"trace", "TRC", "\033[90m", nil},
	LevelDebug: {"debug", "DBG", "\033[36m", nil},
	LevelInfo:  {"info", "INF", "\033[32m", []string{"information"}},
	LevelWarn:  {"warn", "WRN", "\033[33m", []string{"warning"}},
	LevelError: {"error", "ERR", "\033[31m", []string{"err"}},
	LevelFatal: {"fatal", "FTL", "\033[31m", nil},
}

func (l Level) info() (levelInfo, bool) {
	if l < LevelTrace || int(l) >= len(levelTable) {
		return levelInfo{name: "unknown", short: "???", color: "\033[0m"}, false
	}
	return levelTable[l], true
}

func (l Level) String() string {
	info, _ := l.info()
	return info.name
}

// ShortString returns the three letter form used by the text formatter
func (l Level) ShortString() string {
	info, _ := l.info()
	return info.short
}

// Color returns the ANSI color sequence for console output
func (l Level) Color() string {
	info, _ := l.info()
	return info.color
}

// Enabled reports whether an entry at this level passes min
func (l Level) Enabled(min Level) bool {
	return l >= min
}

// ParseLevel parses a level name, its short form or an alias
func ParseLevel(level string) (Level, error) {
	want := strings.ToLower(strings.TrimSpace(level))
	for l, info := range levelTable {
		if want == info.name || want == strings.ToLower(info.short) {
			return Level(l), nil
		}
		for _, alias := range info.aliases {
			if want == alias {
				return Level(l), nil
			}
		}
	}
	return LevelInfo, &ParseError{Input: level, Type: "level"}
}

// ParseError reports an unknown level or format name
type ParseError struct {
	Input string
	Type  string
}

func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// DefaultLevel returns the level used by New
func DefaultLevel() Level {
	return LevelInfo
}
