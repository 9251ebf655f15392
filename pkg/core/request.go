package core

import (
	"net/http"

	"github.com/bytedance/sonic"
)

// Param is a single named request parameter. A nil Value, or a nil pointer
// held in Value, marks the parameter as absent.
type Param struct {
	Key   string
	Value any
}

// Params is an ordered parameter list. Order is significant: it is the order
// parameters are serialized and signed in.
type Params []Param

// Get returns the value of the first parameter with the given key.
func (p Params) Get(key string) (any, bool) {
	for _, param := range p {
		if param.Key == key {
			return param.Value, true
		}
	}
	return nil, false
}

// Keys returns the parameter names in order.
func (p Params) Keys() []string {
	keys := make([]string, len(p))
	for i, param := range p {
		keys[i] = param.Key
	}
	return keys
}

// Request is a fully built HTTP request ready for a Transport.
type Request struct {
	Method  string            `json:"method"`
	URL     string            `json:"url"`
	Headers map[string]string `json:"headers,omitempty"`
}

func NewRequest(method, url string) *Request {
	return &Request{
		Method:  method,
		URL:     url,
		Headers: make(map[string]string),
	}
}

func (r *Request) SetHeader(key, value string) *Request {
	if r.Headers == nil {
		r.Headers = make(map[string]string)
	}
	r.Headers[key] = value
	return r
}

// Response represents an HTTP response with its status code, body, and headers.
type Response struct {
	// StatusCode is the HTTP status code returned by the server.
	StatusCode int

	// Body contains the raw response body bytes.
	Body []byte

	// Headers contains the response headers as key-value pairs.
	Headers map[string]string
}

// IsSuccess returns true if the response status code indicates success (2xx).
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

// Unmarshal parses the response body into the provided value using sonic.
func (r *Response) Unmarshal(v any) error {
	return sonic.Unmarshal(r.Body, v)
}

// JSON decodes the body into generic maps, slices and numbers.
func (r *Response) JSON() (any, error) {
	var v any
	if len(r.Body) == 0 {
		return v, nil
	}
	if err := sonic.Unmarshal(r.Body, &v); err != nil {
		return nil, err
	}
	return v, nil
}
