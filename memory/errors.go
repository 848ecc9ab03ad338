package memory

import (
	"fmt"
)

// ErrorCode represents different types of simulation errors
type ErrorCode int

const (
	// Generic errors
	ErrCodeUnknown ErrorCode = iota
	ErrCodeInternal

	// Input errors
	ErrCodeInvalidInput
	ErrCodeInvalidSize
	ErrCodeInvalidFrameCount
	ErrCodeInvalidPosition
	ErrCodeUnknownPolicy

	// Allocation outcomes
	ErrCodeNoFit

	// Workload file errors
	ErrCodeWorkloadCorrupted
	ErrCodeUnsupportedCompression
)

// SimError represents a simulator error with context
type SimError struct {
	Code    ErrorCode
	Message string
	Op      string // Operation that failed
	Err     error  // Underlying error (if any)
}

// Error implements the error interface
func (e *SimError) Error() string {
	if e.Op != "" {
		if e.Err != nil {
			return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
		}
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *SimError) Unwrap() error {
	return e.Err
}

// Is checks if the error matches a specific error code
func (e *SimError) Is(target error) bool {
	if t, ok := target.(*SimError); ok {
		return e.Code == t.Code
	}
	return false
}

// NewSimError creates a new simulator error
func NewSimError(code ErrorCode, op, message string, err error) *SimError {
	return &SimError{
		Code:    code,
		Message: message,
		Op:      op,
		Err:     err,
	}
}

// Helper functions for common errors

func ErrInvalidInput(op string, message string, err error) *SimError {
	return NewSimError(ErrCodeInvalidInput, op, message, err)
}

func ErrInvalidSize(op string, size int) *SimError {
	return NewSimError(
		ErrCodeInvalidSize,
		op,
		fmt.Sprintf("requested size %d must be greater than 0", size),
		nil,
	)
}

func ErrInvalidFrameCount(op string, frameCount int) *SimError {
	return NewSimError(
		ErrCodeInvalidFrameCount,
		op,
		fmt.Sprintf("frame count %d must be at least 1", frameCount),
		nil,
	)
}

func ErrInvalidPosition(op string, position, blockCount int) *SimError {
	return NewSimError(
		ErrCodeInvalidPosition,
		op,
		fmt.Sprintf("last position %d out of range for %d blocks", position, blockCount),
		nil,
	)
}

func ErrUnknownPolicy(op string, name string) *SimError {
	return NewSimError(
		ErrCodeUnknownPolicy,
		op,
		fmt.Sprintf("unknown policy %q", name),
		nil,
	)
}

func ErrNoFit(op string, size int, policy FitPolicy) *SimError {
	return NewSimError(
		ErrCodeNoFit,
		op,
		fmt.Sprintf("no block can hold %d under %s", size, policy),
		nil,
	)
}

func ErrWorkloadCorrupted(op string, err error) *SimError {
	return NewSimError(
		ErrCodeWorkloadCorrupted,
		op,
		"workload data is corrupted",
		err,
	)
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	if se, ok := err.(*SimError); ok {
		return se.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrCodeUnknown
func GetErrorCode(err error) ErrorCode {
	if se, ok := err.(*SimError); ok {
		return se.Code
	}
	return ErrCodeUnknown
}
