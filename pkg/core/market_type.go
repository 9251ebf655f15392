package core

import (
	"fmt"
	"strings"
)

// Market selects the exchange host a client talks to.
type Market int

// Market constants name the supported Binance hosts.
const (
	// MarketTestnetFutures is the USDⓈ-M futures testnet.
	MarketTestnetFutures Market = iota
	// MarketFutures is the production USDⓈ-M futures host.
	MarketFutures
	// MarketSpot is the production spot host.
	MarketSpot
)

var (
	marketNames = [...]string{"TESTNET_FUTURES", "FUTURES", "SPOT"}
	marketHosts = [...]string{
		"https://testnet.binancefuture.com",
		"https://fapi.binance.com",
		"https://api.binance.com",
	}
)

// String returns the market tag ("TESTNET_FUTURES", "FUTURES" or "SPOT").
func (m Market) String() string {
	return codeOf(marketNames[:], int(m))
}

// Host returns the base host URL of the market.
func (m Market) Host() string {
	if !m.Valid() {
		return ""
	}
	return marketHosts[m]
}

// Valid reports whether m is a known market.
func (m Market) Valid() bool {
	return int(m) >= 0 && int(m) < len(marketNames)
}

// ParseMarket resolves a market tag case-insensitively.
func ParseMarket(s string) (Market, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range marketNames {
		if n == name {
			return Market(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown market %q", ErrConfiguration, s)
}

// MarshalText implements encoding.TextMarshaler for Market.
func (m Market) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Market.
func (m *Market) UnmarshalText(text []byte) error {
	v, err := ParseMarket(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Namespace is the API path prefix that selects spot, USDⓈ-M or COIN-M endpoints.
type Namespace int

const (
	NamespaceSpot Namespace = iota
	NamespaceFutures
	NamespaceCoinFutures
)

var (
	namespaceNames    = [...]string{"API", "FAPI", "DAPI"}
	namespacePrefixes = [...]string{"/api", "/fapi", "/dapi"}
)

// String returns the namespace tag ("API", "FAPI" or "DAPI").
func (n Namespace) String() string {
	return codeOf(namespaceNames[:], int(n))
}

// Prefix returns the path prefix of the namespace.
func (n Namespace) Prefix() string {
	if !n.Valid() {
		return ""
	}
	return namespacePrefixes[n]
}

// Valid reports whether n is a known namespace.
func (n Namespace) Valid() bool {
	return int(n) >= 0 && int(n) < len(namespaceNames)
}

// ParseNamespace resolves a namespace tag case-insensitively.
// Both the tag ("FAPI") and the prefix ("/fapi") are accepted.
func ParseNamespace(s string) (Namespace, error) {
	name := strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(s), "/"))
	for i, n := range namespaceNames {
		if n == name {
			return Namespace(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown namespace %q", ErrConfiguration, s)
}

// MarshalText implements encoding.TextMarshaler for Namespace.
func (n Namespace) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Namespace.
func (n *Namespace) UnmarshalText(text []byte) error {
	v, err := ParseNamespace(string(text))
	if err != nil {
		return err
	}
	*n = v
	return nil
}

// TimestampKind selects the clock used for request timestamps.
type TimestampKind int

const (
	// TimestampLocal reads the local wall clock.
	TimestampLocal TimestampKind = iota
	// TimestampExchange asks the exchange for its server time.
	TimestampExchange
)

// String returns "Local" or "Exchange".
func (k TimestampKind) String() string {
	switch k {
	case TimestampLocal:
		return "Local"
	case TimestampExchange:
		return "Exchange"
	default:
		return "UNKNOWN"
	}
}

// ParseTimestampKind resolves "local" or "exchange" case-insensitively.
// "server" is accepted as an alias of "exchange".
func ParseTimestampKind(s string) (TimestampKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "local":
		return TimestampLocal, nil
	case "exchange", "server":
		return TimestampExchange, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimestampKind, s)
	}
}
