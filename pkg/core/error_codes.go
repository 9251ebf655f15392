package core

// ErrorCode represents a library-level error identifier.
// Error codes provide a stable, machine-readable way to identify specific error conditions.
type ErrorCode string

// Error code constants. Exchange rejections carry the exchange's own numeric code instead.
const (
	// ErrCodeHTTP marks a non-2xx response whose body is not an exchange error document.
	ErrCodeHTTP ErrorCode = "HTTP_ERROR"
)

// IsErrorCode checks if the error matches the specified error code.
// It extracts the exchange error and compares its code field against the provided ErrorCode.
func IsErrorCode(err error, code ErrorCode) bool {
	e, ok := AsExchangeError(err)
	return ok && ErrorCode(e.Code) == code
}
