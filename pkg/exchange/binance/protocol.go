package binance

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/apd/v3"

	"binrest/pkg/core"
)

// Name identifies the exchange in errors and logs.
const Name = "binance"

// Serialize renders the operation parameters as a query string in declaration
// order. Absent parameters are skipped. Values are percent-encoded, so the
// string is exactly what goes on the wire and what gets signed.
func Serialize(op core.Operation) string {
	var b strings.Builder
	for _, p := range op.Params() {
		val, ok := formatValue(p.Value)
		if !ok {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(p.Key)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(val))
	}
	return b.String()
}

// Sign returns the lowercase hex HMAC-SHA256 of query keyed by secret.
func Sign(query, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(query))
	return hex.EncodeToString(h.Sum(nil))
}

// Build validates and serializes op. For signed operations the signature of
// the serialized string is appended as the last parameter.
func Build(op core.Operation, secret string) (string, error) {
	if v, ok := op.(core.Validator); ok {
		if err := v.Validate(); err != nil {
			return "", err
		}
	}

	query := Serialize(op)
	if !op.Signed() {
		return query, nil
	}

	if secret == "" {
		return "", fmt.Errorf("sign %s: %w", op.Path(), core.ErrNoCredentials)
	}

	signature := Sign(query, secret)
	if query == "" {
		return "signature=" + signature, nil
	}
	return query + "&signature=" + signature, nil
}

// formatValue converts a parameter value to its wire form. It reports false
// for absent values: nil and nil pointers of any type. Non-nil pointers are
// rendered as the value they point to. Enums render their wire code through String.
func formatValue(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case *apd.Decimal:
		if val == nil {
			return "", false
		}
		return val.Text('f'), true
	}

	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "", false
		}
		return formatValue(rv.Elem().Interface())
	}

	switch val := v.(type) {
	case string:
		return val, true
	case int:
		return strconv.Itoa(val), true
	case int64:
		return strconv.FormatInt(val, 10), true
	case bool:
		return strconv.FormatBool(val), true
	case apd.Decimal:
		return val.Text('f'), true
	case fmt.Stringer:
		return val.String(), true
	default:
		return fmt.Sprint(val), true
	}
}

type binanceAPIError struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

// parseError turns a non-2xx response into an *core.ExchangeError, keeping the raw body.
func parseError(resp *core.Response) *core.ExchangeError {
	var apiErr binanceAPIError
	if err := sonic.Unmarshal(resp.Body, &apiErr); err == nil && apiErr.Code != 0 {
		return core.NewExchangeErrorWithCode(
			Name,
			mapBinanceErrorCode(apiErr.Code, resp.StatusCode),
			resp.StatusCode,
			strconv.Itoa(apiErr.Code),
			apiErr.Msg,
		).WithBody(resp.Body)
	}

	return core.NewExchangeError(
		Name,
		mapHTTPStatus(resp.StatusCode),
		resp.StatusCode,
		fmt.Sprintf("HTTP error: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	).WithCode(core.ErrCodeHTTP).WithBody(resp.Body)
}

func mapBinanceErrorCode(code, status int) core.ErrorType {
	switch code {
	case -1003, -1015:
		return core.ErrorTypeRateLimit
	case -1021, -1022, -2014, -2015:
		return core.ErrorTypeAuthentication
	case -2018, -2019:
		return core.ErrorTypeInsufficientFunds
	case -2011, -2013:
		return core.ErrorTypeNotFound
	}

	switch {
	case code <= -1100 && code > -1200:
		return core.ErrorTypeBadRequest
	case code <= -2000 && code > -3000:
		return core.ErrorTypeInvalidOrder
	case code <= -4000 && code > -5000:
		return core.ErrorTypeInvalidOrder
	default:
		return mapHTTPStatus(status)
	}
}

func mapHTTPStatus(status int) core.ErrorType {
	switch {
	case status == http.StatusTooManyRequests || status == http.StatusTeapot:
		return core.ErrorTypeRateLimit
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return core.ErrorTypeAuthentication
	case status == http.StatusNotFound:
		return core.ErrorTypeNotFound
	case status >= http.StatusInternalServerError:
		return core.ErrorTypeServerError
	case status >= http.StatusBadRequest:
		return core.ErrorTypeBadRequest
	default:
		return core.ErrorTypeUnknown
	}
}
