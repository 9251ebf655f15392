package core

import "context"

// APIKeyHeader is the header carrying the API key on every request.
const APIKeyHeader = "X-MBX-APIKEY"

// Transport sends a built request and returns the raw response.
// Any HTTP client can serve as a Transport. Implementations must not retry
// and must return non-2xx responses as responses, not errors.
type Transport interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}
