package core

import (
	"errors"
	"fmt"
	"time"
)

// ErrorType classifies an exchange rejection.
type ErrorType int

const (
	ErrorTypeUnknown ErrorType = iota
	// ErrorTypeRateLimit covers request weight and order count limits, and IP bans.
	ErrorTypeRateLimit
	// ErrorTypeAuthentication covers bad keys, bad signatures and stale timestamps.
	ErrorTypeAuthentication
	ErrorTypeBadRequest
	ErrorTypeNotFound
	ErrorTypeServerError
	ErrorTypeInsufficientFunds
	// ErrorTypeInvalidOrder covers orders the matching engine refuses.
	ErrorTypeInvalidOrder
)

var errorTypeNames = [...]string{
	"UNKNOWN",
	"RATE_LIMIT",
	"AUTHENTICATION",
	"BAD_REQUEST",
	"NOT_FOUND",
	"SERVER_ERROR",
	"INSUFFICIENT_FUNDS",
	"INVALID_ORDER",
}

func (t ErrorType) String() string {
	return codeOf(errorTypeNames[:], int(t))
}

// Sentinel errors for conditions detected before anything is sent.
var (
	// ErrConfiguration is the root of every client construction error.
	ErrConfiguration = errors.New("configuration error")
	// ErrValidation is the root of every argument validation error.
	ErrValidation = errors.New("validation error")

	// ErrMarketMismatch is returned when credentials belong to another market than the client.
	ErrMarketMismatch = fmt.Errorf("%w: credential market does not match client market", ErrConfiguration)
	// ErrInvalidTimestampKind is returned for timestamp kinds other than Local and Exchange.
	ErrInvalidTimestampKind = fmt.Errorf("%w: timestamp kind must be Local or Exchange", ErrValidation)
	// ErrNoCredentials is returned when a signed call has no API credentials.
	ErrNoCredentials = errors.New("no credentials configured")
)

// ExchangeError represents a rejection returned by the exchange for a non-2xx response.
// It keeps the raw body so no information from the response is lost.
type ExchangeError struct {
	// Type categorizes the error for programmatic handling.
	Type ErrorType `json:"type"`
	// StatusCode is the HTTP status code from the response.
	StatusCode int `json:"status_code"`
	// Code is the exchange-specific error code.
	Code string `json:"code"`
	// Message is the human-readable error description.
	Message string `json:"message"`
	// Body is the raw response body.
	Body []byte `json:"body,omitempty"`
	// Exchange identifies which exchange returned this error.
	Exchange string `json:"exchange"`
	// Timestamp is when the error occurred.
	Timestamp time.Time `json:"timestamp"`
}

// Error implements the error interface for ExchangeError.
// It returns a formatted string with exchange name, error type, status code, and message.
func (e *ExchangeError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("[%s] %s (%d/%s): %s",
			e.Exchange, e.Type, e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("[%s] %s (%d): %s",
		e.Exchange, e.Type, e.StatusCode, e.Message)
}

// WithCode returns the ExchangeError with the specified error code.
func (e *ExchangeError) WithCode(code ErrorCode) *ExchangeError {
	e.Code = string(code)
	return e
}

// WithBody attaches the raw response body.
func (e *ExchangeError) WithBody(body []byte) *ExchangeError {
	e.Body = body
	return e
}

// NewExchangeError creates a new ExchangeError with the specified details.
// The timestamp is automatically set to the current time.
func NewExchangeError(exchange string, errorType ErrorType, statusCode int, message string) *ExchangeError {
	return &ExchangeError{
		Type:       errorType,
		StatusCode: statusCode,
		Message:    message,
		Exchange:   exchange,
		Timestamp:  time.Now(),
	}
}

// NewExchangeErrorWithCode creates a new ExchangeError including an exchange-specific error code.
// The timestamp is automatically set to the current time.
func NewExchangeErrorWithCode(exchange string, errorType ErrorType, statusCode int, code, message string) *ExchangeError {
	return &ExchangeError{
		Type:       errorType,
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
		Exchange:   exchange,
		Timestamp:  time.Now(),
	}
}

// AsExchangeError unwraps err to an *ExchangeError.
func AsExchangeError(err error) (*ExchangeError, bool) {
	var e *ExchangeError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func isType(err error, t ErrorType) bool {
	e, ok := AsExchangeError(err)
	return ok && e.Type == t
}

// IsRateLimitError returns true if the error is a rate limit violation.
func IsRateLimitError(err error) bool {
	return isType(err, ErrorTypeRateLimit)
}

// IsAuthenticationError returns true if the error is an authentication failure.
// A rejected signature is reported this way.
func IsAuthenticationError(err error) bool {
	return isType(err, ErrorTypeAuthentication)
}

// IsServerError returns true if the exchange failed on its side.
func IsServerError(err error) bool {
	return isType(err, ErrorTypeServerError)
}

// IsTerminalError returns true if the error indicates a terminal condition.
// Terminal errors will not succeed when resent unchanged.
func IsTerminalError(err error) bool {
	e, ok := AsExchangeError(err)
	if !ok {
		return false
	}
	return e.Type == ErrorTypeInsufficientFunds ||
		e.Type == ErrorTypeInvalidOrder ||
		e.Type == ErrorTypeNotFound ||
		e.Type == ErrorTypeBadRequest
}

// IsConfigurationError reports whether err stems from invalid client configuration.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

// IsValidationError reports whether err stems from an invalid argument.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}
