// File: error_test.go
// Title: Core Error Tests
// Description: Tests for error construction, wrapping and code lookup.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New("test error message")

	if err.Error() != "test error message" {
		t.Errorf("Error() = %q, want %q", err.Error(), "test error message")
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
}

func TestWrap(t *testing.T) {
	sentinel := errors.New("invalid token")

	tests := []struct {
		name    string
		err     error
		message string
		wantNil bool
		wantMsg string
	}{
		{name: "wrap nil error", err: nil, message: "ctx", wantNil: true},
		{name: "wrap standard error", err: errors.New("boom"), message: "reading", wantMsg: "reading: boom"},
		{name: "message already names cause", err: sentinel, message: "invalid token '$'", wantMsg: "invalid token '$'"},
		{name: "empty message", err: sentinel, message: "", wantMsg: "invalid token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if got != nil {
					t.Fatalf("Wrap() = %v, want nil", got)
				}
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
			if !errors.Is(got, tt.err) {
				t.Error("wrapped error should match its cause with errors.Is")
			}
		})
	}
}

func TestWrapInheritsCodeAndDetails(t *testing.T) {
	inner := New("unexpected token").WithCode(CodeUnexpectedToken).WithDetail("found", ")")
	outer := Wrap(inner, "parsing call")

	if outer.Code() != CodeUnexpectedToken {
		t.Errorf("Code() = %v, want %v", outer.Code(), CodeUnexpectedToken)
	}
	if v, ok := outer.Detail("found"); !ok || v != ")" {
		t.Errorf("Detail(found) = %v, %v", v, ok)
	}
	if outer.Severity() != SeverityLow {
		t.Errorf("Severity() = %v, want %v", outer.Severity(), SeverityLow)
	}
}

func TestWrapTruncatesDeepChains(t *testing.T) {
	var err error = New("root").WithCode(CodeInternal)
	for i := 0; i < MaxErrorChainDepth+2; i++ {
		err = Wrap(err, fmt.Sprintf("level %d", i))
	}

	mdwErr := err.(*Error)
	if truncated, _ := mdwErr.Detail("truncated"); truncated != true {
		t.Error("deep chain should be truncated")
	}
	if mdwErr.Code() != CodeInternal {
		t.Errorf("Code() = %v, want %v", mdwErr.Code(), CodeInternal)
	}
}

func TestHasCode(t *testing.T) {
	base := New("underflow").WithCode(CodeCursorUnderflow)
	wrapped := fmt.Errorf("rewinding: %w", Wrap(base, "drop").WithCode(CodeInternal))

	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"outer code", wrapped, CodeInternal, true},
		{"inner code", wrapped, CodeCursorUnderflow, true},
		{"missing code", wrapped, CodeIO, false},
		{"standard error", errors.New("x"), CodeUnknown, false},
		{"nil", nil, CodeUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasCode(tt.err, tt.code); got != tt.want {
				t.Errorf("HasCode() = %v, want %v", got, tt.want)
			}
		})
	}

	if GetCode(wrapped) != CodeInternal {
		t.Errorf("GetCode() = %v, want %v", GetCode(wrapped), CodeInternal)
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode() of a plain error should be CodeUnknown")
	}
}

func TestCodeIsSyntax(t *testing.T) {
	for _, code := range []Code{CodeInvalidToken, CodeUnexpectedToken, CodeUnexpectedOperator} {
		if !code.IsSyntax() {
			t.Errorf("%s should be a syntax code", code)
		}
	}
	if CodeCursorUnderflow.IsSyntax() {
		t.Error("cursor underflow is a usage error, not a syntax error")
	}
}

func TestStringAndJSON(t *testing.T) {
	err := Wrap(errors.New("eof"), "reading source").
		WithCode(CodeIO).
		WithOperation("cursor.Runes").
		WithDetail("offset", 3)

	s := err.String()
	for _, want := range []string{"Code: IO_ERROR", "Operation: cursor.Runes", "offset=3", "Cause: eof"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in %q", want, s)
		}
	}

	raw, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("MarshalJSON() error = %v", jerr)
	}
	var decoded map[string]interface{}
	if jerr := json.Unmarshal(raw, &decoded); jerr != nil {
		t.Fatalf("invalid JSON: %v", jerr)
	}
	if decoded["code"] != "IO_ERROR" || decoded["severity"] != "high" {
		t.Errorf("unexpected JSON payload %v", decoded)
	}
}
