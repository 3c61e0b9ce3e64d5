package domain

import (
	"fmt"
	"net/http"
)

// Error codes
const (
	ErrCodeBadRequest        = "BAD_REQUEST"
	ErrCodeMethodNotAllowed  = "METHOD_NOT_ALLOWED"
	ErrCodeSourceUnavailable = "SOURCE_UNAVAILABLE"
	ErrCodeInternalError     = "INTERNAL_ERROR"
)

// AppError represents application-specific errors
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"status"`
	Cause      error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Predefined errors
var (
	ErrMethodNotAllowed = &AppError{
		Code:       ErrCodeMethodNotAllowed,
		Message:    "Method not allowed for this endpoint",
		HTTPStatus: http.StatusMethodNotAllowed,
	}
)

// NewAppError creates a new application error
func NewAppError(code, message string, httpStatus int, cause error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Cause:      cause,
	}
}

// NewBadRequestError creates a bad request error
func NewBadRequestError(message string, cause error) *AppError {
	return NewAppError(ErrCodeBadRequest, message, http.StatusBadRequest, cause)
}

// NewSourceUnavailableError creates an error for a pillar source that could not be read
func NewSourceUnavailableError(message string, cause error) *AppError {
	return NewAppError(ErrCodeSourceUnavailable, message, http.StatusServiceUnavailable, cause)
}

// NewInternalError creates an internal error
func NewInternalError(message string, cause error) *AppError {
	return NewAppError(ErrCodeInternalError, message, http.StatusInternalServerError, cause)
}

// ValidationKind classifies a pillar rule violation.
type ValidationKind string

const (
	// ValidationKindNone is reported for a valid pillar.
	ValidationKindNone ValidationKind = "none"
	// ValidationKindMissing means a required value is unset or empty.
	ValidationKindMissing ValidationKind = "missing"
	// ValidationKindType means a value has the wrong type.
	ValidationKindType ValidationKind = "type"
	// ValidationKindLoopback means the Mon IP is a loopback address.
	ValidationKindLoopback ValidationKind = "loopback"
	// ValidationKindBootstrapNotAdmin means the bootstrap minion lacks the admin role.
	ValidationKindBootstrapNotAdmin ValidationKind = "bootstrap_not_admin"
	// ValidationKindNotClusterMinion means a cephadm minion is not in the cluster.
	ValidationKindNotClusterMinion ValidationKind = "not_cluster_minion"
	// ValidationKindAdminWithoutCephadm means an admin minion lacks the cephadm role.
	ValidationKindAdminWithoutCephadm ValidationKind = "admin_without_cephadm"
	// ValidationKindTimeServerNotMinion means a time server setting has no effect.
	ValidationKindTimeServerNotMinion ValidationKind = "time_server_not_minion"
)

// ValidationSeverity tells callers how to treat a violation.
type ValidationSeverity string

const (
	ValidationSeverityError    ValidationSeverity = "error"
	ValidationSeverityAdvisory ValidationSeverity = "advisory"
)

// ValidationError is a pillar rule violation. Error() renders the
// message text operators and scripts already match against, so the
// wording of every kind must stay stable.
type ValidationError struct {
	Kind ValidationKind
	// Key is the full pillar key the violation refers to.
	Key string
	// Subject is the human name of the setting, e.g. "dashboard username".
	Subject string
	// Hostname is set for role and membership violations.
	Hostname string
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case ValidationKindMissing:
		return fmt.Sprintf("No %s specified in config", e.Subject)
	case ValidationKindType:
		return fmt.Sprintf("'%s' must be of type Boolean", e.Key)
	case ValidationKindLoopback:
		return "Mon IP cannot be the loopback interface IP"
	case ValidationKindBootstrapNotAdmin:
		return "Bootstrap minion must be 'Admin'"
	case ValidationKindNotClusterMinion:
		return fmt.Sprintf("Minion '%s' has 'cephadm' role but is not a cluster minion", e.Hostname)
	case ValidationKindAdminWithoutCephadm:
		return fmt.Sprintf("Minion '%s' has 'admin' role but not 'cephadm' role", e.Hostname)
	case ValidationKindTimeServerNotMinion:
		return fmt.Sprintf("Time server is not a minion: %s setting will not have any effect", e.Subject)
	case ValidationKindNone:
		return "configuration is valid"
	default:
		return fmt.Sprintf("invalid value for '%s'", e.Key)
	}
}

// Severity reports whether the violation is a hard error or an advisory
// notice. Both are returned through the same channel.
func (e *ValidationError) Severity() ValidationSeverity {
	if e.Kind == ValidationKindTimeServerNotMinion {
		return ValidationSeverityAdvisory
	}

	return ValidationSeverityError
}

// NewMissingValueError reports an unset required value.
func NewMissingValueError(key, subject string) *ValidationError {
	return &ValidationError{Kind: ValidationKindMissing, Key: key, Subject: subject}
}

// NewBooleanTypeError reports a value that must be a boolean.
func NewBooleanTypeError(key string) *ValidationError {
	return &ValidationError{Kind: ValidationKindType, Key: key}
}

// NewLoopbackError reports a loopback Mon IP.
func NewLoopbackError(key string) *ValidationError {
	return &ValidationError{Kind: ValidationKindLoopback, Key: key}
}

// NewBootstrapNotAdminError reports a bootstrap minion without the admin role.
func NewBootstrapNotAdminError(key, hostname string) *ValidationError {
	return &ValidationError{Kind: ValidationKindBootstrapNotAdmin, Key: key, Hostname: hostname}
}

// NewNotClusterMinionError reports a cephadm minion missing from the cluster.
func NewNotClusterMinionError(key, hostname string) *ValidationError {
	return &ValidationError{Kind: ValidationKindNotClusterMinion, Key: key, Hostname: hostname}
}

// NewAdminWithoutCephadmError reports an admin minion missing the cephadm role.
func NewAdminWithoutCephadmError(key, hostname string) *ValidationError {
	return &ValidationError{Kind: ValidationKindAdminWithoutCephadm, Key: key, Hostname: hostname}
}

// NewTimeServerNotMinionError reports a time server setting that has no effect.
func NewTimeServerNotMinionError(key, subject string) *ValidationError {
	return &ValidationError{Kind: ValidationKindTimeServerNotMinion, Key: key, Subject: subject}
}
