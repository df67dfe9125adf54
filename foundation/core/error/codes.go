// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used to classify failures of the
//              minipy front end and its tooling.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-14 v0.2.0: Replaced platform codes with lexer/parser codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeIO           Code = "IO_ERROR"

	// Front end
	CodeInvalidToken       Code = "MINIPY_INVALID_TOKEN"
	CodeUnexpectedToken    Code = "MINIPY_UNEXPECTED_TOKEN"
	CodeUnexpectedOperator Code = "MINIPY_UNEXPECTED_OPERATOR"
	CodeCursorUnderflow    Code = "MINIPY_CURSOR_UNDERFLOW"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
	CodeIncompatible  Code = "INCOMPATIBLE_VERSION"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsSyntax reports whether the code classifies a malformed source text
func (c Code) IsSyntax() bool {
	switch c {
	case CodeInvalidToken, CodeUnexpectedToken, CodeUnexpectedOperator:
		return true
	default:
		return false
	}
}
