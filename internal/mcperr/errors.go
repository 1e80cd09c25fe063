// Package mcperr defines the closed set of error kinds every tool in
// this server can return, and renders them as the caller-facing text
// the MCP layer wraps in an error CallToolResult. No handler ever lets
// a bare Go error escape to the MCP SDK; every input-validation failure
// in internal/resistor, internal/capacitor, and internal/gpio returns an
// *Error, which internal/toolset converts to text. Failures to load the
// embedded knowledge base are passed through as plain errors.
package mcperr

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Kind is the closed enumeration of failure categories a tool can report.
type Kind string

const (
	InvalidColor     Kind = "InvalidColor"
	InvalidBandCount Kind = "InvalidBandCount"
	InvalidTolerance Kind = "InvalidTolerance"
	NonPositiveInput Kind = "NonPositiveInput"
	SnapOutOfRange   Kind = "SnapOutOfRange"
	UnknownBoard     Kind = "UnknownBoard"
	UnknownPin       Kind = "UnknownPin"
	FlashReserved    Kind = "FlashReserved"
)

// Error is a validation failure a tool reports to its caller. It is
// always constructed by this package's helpers, never bare-composed,
// so every error carries a Kind the caller can branch on.
type Error struct {
	Kind    Kind
	Message string
	Hint    string
	cause   error
}

// maxMessageLen is the longest caller-facing message, in characters.
const maxMessageLen = 200

// New builds an Error of the given kind. The cockroachdb/errors wrapper
// underneath preserves a stack trace for debug logging without
// exposing it to the MCP caller — Error() only ever returns Message
// and Hint.
func New(kind Kind, format string, args ...any) *Error {
	msg := fmt.Sprintf(format, args...)
	if r := []rune(msg); len(r) > maxMessageLen {
		msg = string(r[:maxMessageLen])
	}

	return &Error{
		Kind:    kind,
		Message: msg,
		cause:   errors.NewWithDepth(1, msg),
	}
}

// WithHint attaches a short remediation hint, e.g. "Gold is only valid
// as a multiplier or tolerance band, not as a digit band."
func (e *Error) WithHint(hint string) *Error {
	e.Hint = hint
	e.cause = errors.WithHint(e.cause, hint)

	return e
}

// Error implements the error interface. The message is capped at the
// caller-facing 200 characters spec.md §7 requires; hints are appended
// separated by " — " when present.
func (e *Error) Error() string {
	if e.Hint == "" {
		return e.Message
	}

	return e.Message + " — " + e.Hint
}

// Unwrap exposes the underlying cockroachdb/errors chain for callers
// that want errors.Is/errors.As against it (e.g. in tests).
func (e *Error) Unwrap() error {
	return e.cause
}

// Render formats the error the way every tool's text output begins a
// failure: a leading "✗ " marker followed by the message and hint.
func (e *Error) Render() string {
	if e.Hint == "" {
		return "✗ " + e.Message
	}

	return fmt.Sprintf("✗ %s\nHint: %s", e.Message, e.Hint)
}
