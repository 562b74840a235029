// Package wxerr carries coded errors across package boundaries so the CLI
// can map each failure class to a user-facing message and exit code.
package wxerr

import "errors"

// Error codes for the failure classes the tool reports.
const (
	CodeInput       = "input"        // empty or unusable user input
	CodeNotFound    = "not_found"    // geocoding returned no match
	CodeNetwork     = "network"      // request failed or timed out
	CodeBadResponse = "bad_response" // response missing expected fields
)

// Error encodes a failure class alongside its message.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New produces a coded error without a cause.
func New(code, message string) error {
	return &Error{Code: code, Message: message}
}

// Wrap produces a coded error around a cause.
func Wrap(code, message string, err error) error {
	if err == nil {
		return &Error{Code: code, Message: message}
	}
	return &Error{Code: code, Message: message, Err: err}
}

// IsCode reports whether err (or anything it wraps) carries the given code.
func IsCode(err error, code string) bool {
	var wErr *Error
	if errors.As(err, &wErr) {
		return wErr.Code == code
	}
	return false
}
