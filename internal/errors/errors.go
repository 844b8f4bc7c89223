package errors

import (
	"fmt"
	"log"
	"os"
)

// ErrorCode represents different types of errors in xfer
type ErrorCode int

const (
	// Application errors
	ErrCodeUnknown ErrorCode = iota
	ErrCodeConfiguration
	ErrCodeLocationParsing
	ErrCodeTransfer
	ErrCodeProcessExec
	ErrCodeListing
	ErrCodeUserInput
	ErrCodeValidation
)

// XferError represents a structured error with operation context and error code
type XferError struct {
	Op       string    // Operation that failed (e.g., "config_load", "parse_location")
	Code     ErrorCode // Error classification
	Err      error     // Underlying error
	Context  string    // Additional context (optional)
	ExitCode int       // Child process exit code, when Code is ErrCodeProcessExec
	Fatal    bool      // Whether this error should cause program exit
}

// Error implements the error interface
func (e *XferError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Context, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error wrapping support
func (e *XferError) Unwrap() error {
	return e.Err
}

// IsFatal returns whether this error should cause program termination
func (e *XferError) IsFatal() bool {
	return e.Fatal
}

// GetCode returns the error classification code
func (e *XferError) GetCode() ErrorCode {
	return e.Code
}

// ErrorHandler provides standardized error handling across the application
type ErrorHandler struct {
	logger *log.Logger
	debug  bool
}

// NewErrorHandler creates a new error handler with the given logger
func NewErrorHandler(logger *log.Logger, debug bool) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
		debug:  debug,
	}
}

// Handle processes an error according to its type and severity
func (eh *ErrorHandler) Handle(err error) {
	if err == nil {
		return
	}

	var xferErr *XferError
	if e, ok := err.(*XferError); ok {
		xferErr = e
	} else {
		// Wrap unknown errors
		xferErr = &XferError{
			Op:   "unknown_operation",
			Code: ErrCodeUnknown,
			Err:  err,
		}
	}

	// Log the error with appropriate level
	if eh.debug {
		eh.logger.Printf("[%s] %s", eh.codeToString(xferErr.Code), xferErr.Error())
	} else {
		eh.logger.Printf("Error: %s", xferErr.Error())
	}

	// Handle fatal errors
	if xferErr.IsFatal() {
		os.Exit(1)
	}
}

// codeToString converts error codes to readable strings
func (eh *ErrorHandler) codeToString(code ErrorCode) string {
	switch code {
	case ErrCodeConfiguration:
		return "CONFIGURATION"
	case ErrCodeLocationParsing:
		return "LOCATION_PARSING"
	case ErrCodeTransfer:
		return "TRANSFER"
	case ErrCodeProcessExec:
		return "PROCESS_EXEC"
	case ErrCodeListing:
		return "LISTING"
	case ErrCodeUserInput:
		return "USER_INPUT"
	case ErrCodeValidation:
		return "VALIDATION"
	default:
		return "UNKNOWN"
	}
}

// Helper functions for creating common error types

// NewConfigurationError creates a config store error
func NewConfigurationError(operation, path string, err error) *XferError {
	return &XferError{
		Op:      "config_" + operation,
		Code:    ErrCodeConfiguration,
		Err:     err,
		Context: fmt.Sprintf("path: %s", path),
		Fatal:   true,
	}
}

// NewLocationError creates a location string parsing error
func NewLocationError(raw string, err error) *XferError {
	return &XferError{
		Op:      "parse_location",
		Code:    ErrCodeLocationParsing,
		Err:     err,
		Context: fmt.Sprintf("location: %s", raw),
		Fatal:   true,
	}
}

// NewTransferError creates a transfer dispatch error
func NewTransferError(src, dst string, err error) *XferError {
	return &XferError{
		Op:      "transfer",
		Code:    ErrCodeTransfer,
		Err:     err,
		Context: fmt.Sprintf("src: %s, dst: %s", src, dst),
	}
}

// NewProcessExecError creates an error for a child process that could not run
// or exited non-zero. exitCode is -1 when the process never started.
func NewProcessExecError(binary string, exitCode int, err error) *XferError {
	return &XferError{
		Op:       "exec",
		Code:     ErrCodeProcessExec,
		Err:      err,
		Context:  fmt.Sprintf("binary: %s", binary),
		ExitCode: exitCode,
	}
}

// NewListingError creates a remote listing error
func NewListingError(alias string, err error) *XferError {
	return &XferError{
		Op:      "remote_listing",
		Code:    ErrCodeListing,
		Err:     err,
		Context: fmt.Sprintf("alias: %s", alias),
	}
}

// NewUserInputError creates a user input error
func NewUserInputError(prompt string, err error) *XferError {
	return &XferError{
		Op:      "user_input",
		Code:    ErrCodeUserInput,
		Err:     err,
		Context: fmt.Sprintf("prompt: %s", prompt),
	}
}

// NewValidationError creates an input validation error
func NewValidationError(operation string, err error) *XferError {
	return &XferError{
		Op:      "validation",
		Code:    ErrCodeValidation,
		Err:     err,
		Context: operation,
		Fatal:   true,
	}
}
