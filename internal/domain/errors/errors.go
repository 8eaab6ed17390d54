package errors

import (
	"net/http"

	"nursehub/internal/errors"
)

// Kind classifies an AppError for propagation and retry decisions.
type Kind string

const (
	KindValidation     Kind = "validation"     // malformed or missing caller input
	KindAuthentication Kind = "authentication" // missing or invalid identity
	KindConfiguration  Kind = "configuration"  // missing required process configuration
	KindUpstream       Kind = "upstream"       // identity provider, payment processor or store failure
	KindSignature      Kind = "signature"      // webhook signature verification failure
	KindNotFound       Kind = "not_found"      // requested record does not exist
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
	Kind() Kind        // Error classification
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Kind returns the error classification
func (e *BaseError) Kind() Kind {
	return e.kind
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		kind:      e.kind,
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithMessage returns a copy carrying a different user-facing message
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		kind:      e.kind,
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Is matches errors sharing the same business error code, so copies made by
// WithDetails and WithMessage still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Validation errors
	ErrValidationFailed = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Request validation failed",
		"",
	)

	ErrInvalidProductKey = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"INVALID_PRODUCT_KEY",
		"Unknown product",
		"",
	)

	ErrGuestEmailRequired = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"GUEST_EMAIL_REQUIRED",
		"email required for guest checkout",
		"",
	)

	ErrIdentityRequired = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"IDENTITY_REQUIRED",
		"An identity is required",
		"",
	)

	ErrIdentityEmailMissing = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"IDENTITY_EMAIL_MISSING",
		"Your account has no email address on file",
		"",
	)

	ErrIdentityEmailUnverified = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"IDENTITY_EMAIL_UNVERIFIED",
		"Verify your email address before claiming purchases",
		"",
	)

	ErrProfileNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"No profile is stored for this account",
		"",
	)

	ErrSubscriptionRefRequired = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"SUBSCRIPTION_REF_REQUIRED",
		"A subscription reference is required",
		"",
	)

	// Authentication errors
	ErrAuthenticationRequired = NewBaseError(
		KindAuthentication,
		http.StatusUnauthorized,
		"AUTHENTICATION_REQUIRED",
		"Sign in to continue",
		"",
	)

	ErrInvalidSession = NewBaseError(
		KindAuthentication,
		http.StatusUnauthorized,
		"INVALID_SESSION",
		"Invalid or expired session",
		"",
	)

	// Configuration errors
	ErrPaymentSecretMissing = NewBaseError(
		KindConfiguration,
		http.StatusInternalServerError,
		"PAYMENT_SECRET_MISSING",
		"Checkout is not available right now",
		"",
	)

	ErrPriceNotConfigured = NewBaseError(
		KindConfiguration,
		http.StatusInternalServerError,
		"PRICE_NOT_CONFIGURED",
		"This product is not available for purchase yet",
		"",
	)

	ErrPriceMisconfigured = NewBaseError(
		KindConfiguration,
		http.StatusInternalServerError,
		"PRICE_MISCONFIGURED",
		"The price configured for this product was not recognized by the payment processor; please contact support",
		"",
	)

	// Upstream errors
	ErrUpstream = NewBaseError(
		KindUpstream,
		http.StatusBadGateway,
		"UPSTREAM_ERROR",
		"A backing service failed, please try again",
		"",
	)

	ErrPaymentProvider = NewBaseError(
		KindUpstream,
		http.StatusBadGateway,
		"PAYMENT_PROVIDER_FAILED",
		"The payment provider could not start checkout, please try again",
		"",
	)

	ErrWebhookProcessing = NewBaseError(
		KindUpstream,
		http.StatusInternalServerError,
		"WEBHOOK_PROCESSING_FAILED",
		"Webhook processing failed",
		"",
	)

	// Signature errors
	ErrWebhookSignature = NewBaseError(
		KindSignature,
		http.StatusBadRequest,
		"WEBHOOK_SIGNATURE_INVALID",
		"Webhook signature verification failed",
		"",
	)

	// Rate limiting
	ErrTooManyRequests = NewBaseError(
		KindValidation,
		http.StatusTooManyRequests,
		"TOO_MANY_REQUESTS",
		"Too many requests, please slow down",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		KindUpstream,
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error, please try again later",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error for server-side inspection
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "A storage error occurred, please try again"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Kind returns the error classification
func (e *DatabaseExecuteError) Kind() Kind {
	return KindUpstream
}

// KindOf returns the kind of the first AppError in err's chain, or KindUpstream for unclassified errors.
func KindOf(err error) Kind {
	if appErr, ok := errors.AsType[AppError](err); ok {
		return appErr.Kind()
	}

	return KindUpstream
}
