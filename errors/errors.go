/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when the data source has no item for the key
	ErrNotFound = errors.New("item not found")

	// ErrForbidden is returned when the data source refuses the request
	ErrForbidden = errors.New("request forbidden")

	// ErrRequestFailed is returned for any other request the data source rejects
	ErrRequestFailed = errors.New("request failed")

	// ErrBadData is returned when a response cannot be decoded
	ErrBadData = errors.New("undecodable response data")
)

// RequestKind identifies the variant of a RequestError.
type RequestKind string

const (
	KindNotFound  RequestKind = "not_found"
	KindForbidden RequestKind = "forbidden"
	KindFailed    RequestKind = "failed"
)

// RequestError represents a request the data source rejected or failed to serve.
type RequestError struct {
	Kind RequestKind
	Op   string
	Key  string
	Err  error
}

func (e *RequestError) Error() string {
	msg := fmt.Sprintf("%s request", e.Op)
	if e.Key != "" {
		msg += fmt.Sprintf(" for key %q", e.Key)
	}
	switch e.Kind {
	case KindNotFound:
		msg += ": not found"
	case KindForbidden:
		msg += ": forbidden"
	default:
		msg += ": failed"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *RequestError) Is(target error) bool {
	switch e.Kind {
	case KindNotFound:
		return target == ErrNotFound
	case KindForbidden:
		return target == ErrForbidden
	default:
		return target == ErrRequestFailed
	}
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// DecodeError represents response data the client could not interpret.
type DecodeError struct {
	Type string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("cannot decode response into %s: %v", e.Type, e.Err)
	}
	return fmt.Sprintf("cannot decode response: %v", e.Err)
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrBadData
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Helper functions for creating errors

// NewNotFoundError creates a RequestError for a missing item.
func NewNotFoundError(op, key string) error {
	return &RequestError{Kind: KindNotFound, Op: op, Key: key}
}

// NewForbiddenError creates a RequestError for a refused request.
func NewForbiddenError(op string, cause error) error {
	return &RequestError{Kind: KindForbidden, Op: op, Err: cause}
}

// NewRequestError creates a generic failed RequestError.
func NewRequestError(op string, cause error) error {
	return &RequestError{Kind: KindFailed, Op: op, Err: cause}
}

// NewDecodeError creates a DecodeError for the named target type.
func NewDecodeError(typeName string, cause error) error {
	return &DecodeError{Type: typeName, Err: cause}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsForbidden checks if an error is a forbidden error
func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}

// IsRequestError checks if an error belongs to the request family
func IsRequestError(err error) bool {
	var re *RequestError
	return errors.As(err, &re)
}

// IsDecodeError checks if an error belongs to the decode family
func IsDecodeError(err error) bool {
	return errors.Is(err, ErrBadData)
}
