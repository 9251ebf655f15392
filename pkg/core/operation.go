package core

// Operation describes a single exchange method: its HTTP verb, endpoint
// suffix, whether it must be signed, and its parameters in declaration order.
// Method, Path and Signed are fixed per operation kind.
type Operation interface {
	// Method returns the HTTP method (GET, POST or DELETE).
	Method() string
	// Path returns the endpoint suffix appended after the namespace prefix, e.g. "/v1/order".
	Path() string
	// Signed reports whether the query string must carry an HMAC signature.
	Signed() bool
	// Params returns the operation parameters in declaration order with defaults applied.
	Params() Params
}

// Validator is implemented by operations that check their own arguments before being built.
type Validator interface {
	Validate() error
}
