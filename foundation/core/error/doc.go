// Package error provides structured error handling for minipy.
//
// Package: error
// Title: minipy Error Handling Framework
// Description: Structured errors carrying a classification code, a severity,
//              the failing operation and free-form details. Errors wrap their
//              cause so errors.Is and errors.As keep working across layers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-14 v0.2.0: Reduced to the codes used by the minipy front end
//
// Usage:
//
//	import mdwerror "github.com/msto63/minipy/foundation/core/error"
//
//	err := mdwerror.Wrap(ErrInvalidToken, "invalid token '$'").
//		WithCode(mdwerror.CodeInvalidToken).
//		WithOperation("lexer.scanSymbol").
//		WithDetail("offset", 12)
//
//	if mdwerror.HasCode(err, mdwerror.CodeInvalidToken) {
//		// handle
//	}
package error
