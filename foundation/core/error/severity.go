// File: severity.go
// Title: Error Severity Levels
// Description: Severity classification used to pick a log level for errors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14

package error

// Severity represents how serious an error is
type Severity int

const (
	// SeverityLow covers bad user input such as malformed source text
	SeverityLow Severity = iota

	// SeverityMedium is the default for unclassified errors
	SeverityMedium

	// SeverityHigh covers failures of the tool itself (I/O, configuration)
	SeverityHigh

	// SeverityCritical covers broken internal invariants
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode returns the default severity for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInvalidToken, CodeUnexpectedToken, CodeUnexpectedOperator, CodeInvalidInput:
		return SeverityLow
	case CodeIO, CodeConfigError, CodeInvalidConfig, CodeIncompatible, CodeNotFound:
		return SeverityHigh
	case CodeCursorUnderflow, CodeInternal:
		return SeverityCritical
	default:
		return SeverityMedium
	}
}
