package domain

import (
	"errors"
	"strings"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidToken = errors.New("invalid token")
var ErrTokenExpired = errors.New("token expired")
var ErrUserNotFound = errors.New("user not found")

// FieldViolation is a single failed input rule.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every failed rule for a request payload,
// in field declaration order. An empty Violations slice never occurs:
// a payload that passes validation produces no error at all.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Field+": "+v.Message)
	}
	return strings.Join(msgs, "; ")
}

// StoreError wraps an underlying persistence failure with the
// client-facing message for the operation that hit it. The wrapped
// detail is passed through to the response for diagnostics.
type StoreError struct {
	Msg string
	Err error
}

func (e *StoreError) Error() string {
	return e.Msg + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
