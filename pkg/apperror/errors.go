// Package apperror provides a structured way to handle application errors
// with specific codes, severity levels, and additional details. It also
// includes utilities for converting to gRPC status errors so the library
// can be embedded into RPC services without re-mapping.
package apperror

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorCode represents a specific application error code.
type ErrorCode string

const (
	// Validation
	CodeInvalidVertex    ErrorCode = "INVALID_VERTEX"
	CodeDuplicateVertex  ErrorCode = "DUPLICATE_VERTEX"
	CodeVertexNotFound   ErrorCode = "VERTEX_NOT_FOUND"
	CodeDuplicateEdge    ErrorCode = "DUPLICATE_EDGE"
	CodeEdgeNotFound     ErrorCode = "EDGE_NOT_FOUND"
	CodeSelfLoop         ErrorCode = "SELF_LOOP"
	CodeInvalidCapacity  ErrorCode = "INVALID_CAPACITY"
	CodeCapacityOverflow ErrorCode = "CAPACITY_OVERFLOW"
	CodeInvalidFlow      ErrorCode = "INVALID_FLOW"

	// State
	CodeSourceUnset      ErrorCode = "SOURCE_UNSET"
	CodeSinkUnset        ErrorCode = "SINK_UNSET"
	CodeSourceEqualsSink ErrorCode = "SOURCE_EQUALS_SINK"

	// Algorithms
	CodeAlgorithmError   ErrorCode = "ALGORITHM_ERROR"
	CodeInvalidAlgorithm ErrorCode = "INVALID_ALGORITHM"
	CodeTimeout          ErrorCode = "TIMEOUT"

	// Flow-related
	CodeFlowViolation         ErrorCode = "FLOW_VIOLATION"
	CodeConservationViolation ErrorCode = "CONSERVATION_VIOLATION"

	// I/O
	CodeSnapshotRead    ErrorCode = "SNAPSHOT_READ"
	CodeSnapshotWrite   ErrorCode = "SNAPSHOT_WRITE"
	CodeSnapshotCorrupt ErrorCode = "SNAPSHOT_CORRUPT"

	// General
	CodeInternal        ErrorCode = "INTERNAL_ERROR"
	CodeNotFound        ErrorCode = "NOT_FOUND"
	CodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	CodeNilInput        ErrorCode = "NIL_INPUT"
	CodeUnimplemented   ErrorCode = "UNIMPLEMENTED"
)

// Severity defines the criticality level of an error.
type Severity int

const (
	// SeverityWarning indicates a non-critical issue that can be ignored or automatically resolved.
	SeverityWarning Severity = iota
	// SeverityError indicates a standard error that requires attention.
	SeverityError
	// SeverityCritical indicates a severe error that might require immediate human intervention.
	SeverityCritical
)

// String returns the string representation of the Severity.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Error is a custom error type that includes an ErrorCode, message,
// an optional field, additional details, an underlying cause, and a severity level.
type Error struct {
	Code     ErrorCode      // Code is a unique identifier for the type of error.
	Message  string         // Message is a human-readable description of the error.
	Field    string         // Field indicates which input field caused the error, if applicable.
	Details  map[string]any // Details provides additional structured information about the error.
	Cause    error          // Cause is the underlying error that triggered this application error.
	Severity Severity       // Severity indicates the criticality level of the error.
}

// Error implements the error interface, returning a string representation of the error.
func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("[%s] %s (field: %s)", e.Code, e.Message, e.Field)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error, allowing for error chain introspection.
func (e *Error) Unwrap() error {
	return e.Cause
}

// GRPCStatus converts the application error into a gRPC status.Status.
func (e *Error) GRPCStatus() *status.Status {
	return status.New(e.grpcCode(), e.Message)
}

// grpcCode maps an ErrorCode to an appropriate gRPC codes.Code.
func (e *Error) grpcCode() codes.Code {
	switch e.Code {
	case CodeInvalidVertex, CodeDuplicateVertex, CodeDuplicateEdge, CodeSelfLoop,
		CodeInvalidCapacity, CodeCapacityOverflow, CodeInvalidFlow,
		CodeSourceEqualsSink, CodeInvalidArgument, CodeNilInput, CodeInvalidAlgorithm:
		return codes.InvalidArgument

	case CodeSourceUnset, CodeSinkUnset:
		return codes.FailedPrecondition

	case CodeVertexNotFound, CodeEdgeNotFound, CodeNotFound:
		return codes.NotFound

	case CodeTimeout:
		return codes.DeadlineExceeded

	case CodeFlowViolation, CodeConservationViolation:
		return codes.DataLoss

	case CodeSnapshotRead, CodeSnapshotWrite, CodeSnapshotCorrupt:
		return codes.Unavailable

	case CodeUnimplemented:
		return codes.Unimplemented

	default:
		return codes.Internal
	}
}

// New creates a new application error with the given code and message.
// The default severity is SeverityError.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Details:  make(map[string]any),
		Severity: SeverityError,
	}
}

// Newf creates a new application error with a formatted message.
func Newf(code ErrorCode, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// NewWithField creates a new application error with the given code, message, and field.
// The default severity is SeverityError.
func NewWithField(code ErrorCode, message, field string) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Field:    field,
		Details:  make(map[string]any),
		Severity: SeverityError,
	}
}

// NewWarning creates a new application error with SeverityWarning.
func NewWarning(code ErrorCode, message string) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Details:  make(map[string]any),
		Severity: SeverityWarning,
	}
}

// NewCritical creates a new application error with SeverityCritical.
func NewCritical(code ErrorCode, message string) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Details:  make(map[string]any),
		Severity: SeverityCritical,
	}
}

// Wrap creates a new application error wrapping an underlying cause.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Details:  make(map[string]any),
		Cause:    cause,
		Severity: SeverityError,
	}
}

// WithDetail attaches a structured detail to the error and returns it.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// IsCode reports whether err is an application error with the given code.
func IsCode(err error, code ErrorCode) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// CodeOf returns the code of an application error, or CodeInternal for
// any other error.
func CodeOf(err error) ErrorCode {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}
