package core

import (
	"fmt"
	"strings"
)

// Credentials holds API authentication credentials for one market.
// The secret is only ever used to sign; it is never sent.
type Credentials struct {
	// APIKey is the public API key identifier, sent in the X-MBX-APIKEY header.
	APIKey string `json:"api_key" yaml:"api_key" validate:"required"`
	// SecretKey is the private key used for signing requests.
	SecretKey string `json:"secret_key" yaml:"secret_key" validate:"required"`
	// Market is the uppercased market tag the keys were issued for, e.g. "FUTURES".
	Market string `json:"market" yaml:"market" validate:"required"`
}

// NewCredentials creates credentials for the given market.
func NewCredentials(secret, apiKey string, market Market) Credentials {
	return Credentials{
		APIKey:    apiKey,
		SecretKey: secret,
		Market:    market.String(),
	}
}

// Normalized returns a copy with the market tag trimmed and uppercased.
func (c Credentials) Normalized() Credentials {
	c.Market = strings.ToUpper(strings.TrimSpace(c.Market))
	return c
}

// Matches reports whether the credentials were issued for market m.
func (c Credentials) Matches(m Market) bool {
	return c.Normalized().Market == m.String()
}

// String masks the API key and omits the secret.
func (c Credentials) String() string {
	return fmt.Sprintf("Credentials{Market:%s, APIKey:%s}", c.Market, MaskKey(c.APIKey))
}

// MaskKey hides all but the first and last four characters of a key.
func MaskKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "****" + key[len(key)-4:]
}
