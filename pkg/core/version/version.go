// ============================================================================
// minipy - Python Subset Front End
// ============================================================================
//
// Package:     version
// Description: Central version management and compatibility checks
// Author:      Mike Stoffels with Claude
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package version

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Version constants of the tool and the language it reads
const (
	// Tool version
	Tool = "0.1.0"

	// Grammar revision understood by the parser
	Grammar = "1.0.0"
)

// Parse parses a semantic version
func Parse(v string) (*semver.Version, error) {
	return semver.NewVersion(v)
}

// Satisfies reports whether version v satisfies the constraint
func Satisfies(v, constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("invalid constraint %q: %w", constraint, err)
	}
	version, err := semver.NewVersion(v)
	if err != nil {
		return false, fmt.Errorf("invalid version %q: %w", v, err)
	}
	return c.Check(version), nil
}

// String returns the version line printed by the CLI
func String() string {
	return fmt.Sprintf("minipy %s (grammar %s)", Tool, Grammar)
}
