package errors

import (
	stderrors "errors"
	"fmt"
)

// Application error types organized by category for better error handling

type ErrorType int

// Domain errors - raised before or while talking to upstream services
const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeValidation
	ErrorTypeNotFound

	// Upstream errors - every failure of a weather or geocoding call lands in one of these
	ErrorTypeMalformedResponse
	ErrorTypeTimeout
	ErrorTypeUpstreamHTTP
	ErrorTypeServiceUnavailable

	// Infrastructure Errors
	ErrorTypeDatabase

	// System/Configuration Errors
	ErrorTypeConfiguration

	// Agent loop outcomes
	ErrorTypeModelBehavior
	ErrorTypeMaxTurnsExceeded
)

// String returns the string representation of error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeValidation:
		return "VALIDATION_ERROR"
	case ErrorTypeNotFound:
		return "NOT_FOUND_ERROR"
	case ErrorTypeMalformedResponse:
		return "MALFORMED_RESPONSE_ERROR"
	case ErrorTypeTimeout:
		return "TIMEOUT_ERROR"
	case ErrorTypeUpstreamHTTP:
		return "UPSTREAM_HTTP_ERROR"
	case ErrorTypeServiceUnavailable:
		return "SERVICE_UNAVAILABLE_ERROR"
	case ErrorTypeDatabase:
		return "DATABASE_ERROR"
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	case ErrorTypeModelBehavior:
		return "MODEL_BEHAVIOR_ERROR"
	case ErrorTypeMaxTurnsExceeded:
		return "MAX_TURNS_EXCEEDED_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// Short aliases used across adapters
const (
	ValidationError         = ErrorTypeValidation
	NotFoundError           = ErrorTypeNotFound
	MalformedResponseError  = ErrorTypeMalformedResponse
	TimeoutError            = ErrorTypeTimeout
	UpstreamHTTPError       = ErrorTypeUpstreamHTTP
	ServiceUnavailableError = ErrorTypeServiceUnavailable
	DatabaseError           = ErrorTypeDatabase
	ConfigurationError      = ErrorTypeConfiguration
	ModelBehaviorError      = ErrorTypeModelBehavior
	MaxTurnsExceededError   = ErrorTypeMaxTurnsExceeded
)

// AppError is the single error shape crossing package boundaries.
// Status is only set for UpstreamHTTPError.
type AppError struct {
	Type    ErrorType
	Message string
	Status  int
	Cause   error
}

func (e *AppError) Error() string {
	msg := e.Message
	if e.Type == ErrorTypeUpstreamHTTP && e.Status != 0 {
		msg = fmt.Sprintf("%s (status %d)", e.Message, e.Status)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), msg)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// Domain Error Constructors
func NewValidationError(message string) *AppError {
	return New(ValidationError, message)
}

func NewNotFoundError(message string) *AppError {
	return New(NotFoundError, message)
}

// Upstream Error Constructors
func NewMalformedResponseError(message string, cause error) *AppError {
	return Wrap(MalformedResponseError, message, cause)
}

func NewTimeoutError(message string, cause error) *AppError {
	return Wrap(TimeoutError, message, cause)
}

func NewUpstreamHTTPError(status int, message string) *AppError {
	return &AppError{
		Type:    UpstreamHTTPError,
		Message: message,
		Status:  status,
	}
}

func NewServiceUnavailableError(message string, cause error) *AppError {
	return Wrap(ServiceUnavailableError, message, cause)
}

// Infrastructure Error Constructors
func NewDatabaseError(message string, cause error) *AppError {
	return Wrap(DatabaseError, message, cause)
}

// System/Configuration Error Constructors
func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ConfigurationError, message, cause)
}

// Agent loop Error Constructors
func NewModelBehaviorError(message string, cause error) *AppError {
	return Wrap(ModelBehaviorError, message, cause)
}

func NewMaxTurnsExceededError(maxTurns int) *AppError {
	return New(MaxTurnsExceededError, fmt.Sprintf("max turns (%d) exceeded", maxTurns))
}

// As returns the first AppError in err's chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// TypeOf returns the type of the first AppError in err's chain, or ErrorTypeUnknown.
func TypeOf(err error) ErrorType {
	if appErr, ok := As(err); ok {
		return appErr.Type
	}
	return ErrorTypeUnknown
}

// UpstreamStatus returns the HTTP status carried by an UpstreamHTTPError.
func UpstreamStatus(err error) (int, bool) {
	if appErr, ok := As(err); ok && appErr.Type == UpstreamHTTPError {
		return appErr.Status, true
	}
	return 0, false
}

func is(err error, errorType ErrorType) bool {
	return err != nil && TypeOf(err) == errorType
}

// Helper functions for error type checking
func IsValidationError(err error) bool {
	return is(err, ValidationError)
}

func IsNotFoundError(err error) bool {
	return is(err, NotFoundError)
}

func IsMalformedResponseError(err error) bool {
	return is(err, MalformedResponseError)
}

func IsTimeoutError(err error) bool {
	return is(err, TimeoutError)
}

func IsUpstreamHTTPError(err error) bool {
	return is(err, UpstreamHTTPError)
}

func IsServiceUnavailableError(err error) bool {
	return is(err, ServiceUnavailableError)
}

func IsDatabaseError(err error) bool {
	return is(err, DatabaseError)
}

func IsConfigurationError(err error) bool {
	return is(err, ConfigurationError)
}

func IsModelBehaviorError(err error) bool {
	return is(err, ModelBehaviorError)
}

func IsMaxTurnsExceededError(err error) bool {
	return is(err, MaxTurnsExceededError)
}
