// Package binance implements a REST client for the Binance spot and futures APIs.
//
// The package includes:
//   - Operations: one struct per endpoint, with its method, path, signing
//     requirement and ordered parameters
//   - Protocol: query serialization, HMAC-SHA256 signing and error parsing
//   - Client: sends operations over a core.Transport and maps rejections to
//     *core.ExchangeError
//
// Example usage:
//
//	cfg := core.DefaultConfig(core.MarketFutures, core.NamespaceFutures).
//	    WithCredentials(&creds)
//	client, err := binance.New(cfg)
//	ts, err := client.Timestamp(ctx, core.TimestampLocal)
//	orders, err := binance.Do[[]binance.Order](ctx, client, binance.OpenOrders{
//	    Timestamp: ts,
//	    Symbol:    "BTCUSDT",
//	})
package binance
