package keyring

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"

	"binrest/pkg/core"
)

// DefaultPrefix is the variable prefix used when none is given.
const DefaultPrefix = "BINANCE"

// ReadEnvFile parses a KEY=VALUE file. The process environment is left untouched.
func ReadEnvFile(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}
	return values, nil
}

// Names returns the API key and secret variable names for prefix and market,
// e.g. BINANCE_FUTURES_API_KEY and BINANCE_FUTURES_SECRET_KEY.
func Names(prefix string, market core.Market) (apiKey, secretKey string) {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	base := strings.ToUpper(prefix) + "_" + market.String()
	return base + "_API_KEY", base + "_SECRET_KEY"
}

// Credentials looks up the key pair of market in values.
// A missing or blank entry yields core.ErrNoCredentials.
func Credentials(values map[string]string, prefix string, market core.Market) (*core.Credentials, error) {
	keyName, secretName := Names(prefix, market)

	apiKey := strings.TrimSpace(values[keyName])
	if apiKey == "" {
		return nil, fmt.Errorf("%w: %s is not set", core.ErrNoCredentials, keyName)
	}
	secret := strings.TrimSpace(values[secretName])
	if secret == "" {
		return nil, fmt.Errorf("%w: %s is not set", core.ErrNoCredentials, secretName)
	}

	creds := core.NewCredentials(secret, apiKey, market)
	return &creds, nil
}

// FromEnvFile reads path and returns the credentials of market.
func FromEnvFile(path, prefix string, market core.Market) (*core.Credentials, error) {
	values, err := ReadEnvFile(path)
	if err != nil {
		return nil, err
	}
	return Credentials(values, prefix, market)
}
