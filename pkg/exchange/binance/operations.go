package binance

import (
	"net/http"

	"github.com/cockroachdb/apd/v3"

	"binrest/pkg/core"
)

// DefaultRecvWindow is the recvWindow sent when an operation leaves it zero.
const DefaultRecvWindow int64 = 5000

const (
	defaultTradesLimit  = 1000
	defaultHistoryLimit = 500
)

// Optional string parameters are absent when empty, optional numeric and
// boolean parameters when nil. Zero RecvWindow and Limit fields take their defaults.

// TestConnectivity checks that the REST API is reachable.
type TestConnectivity struct{}

func (TestConnectivity) Method() string      { return http.MethodGet }
func (TestConnectivity) Path() string        { return "/v1/ping" }
func (TestConnectivity) Signed() bool        { return false }
func (TestConnectivity) Params() core.Params { return nil }

// ServerTime returns the exchange clock as {"serverTime": <ms>}.
type ServerTime struct{}

func (ServerTime) Method() string      { return http.MethodGet }
func (ServerTime) Path() string        { return "/v1/time" }
func (ServerTime) Signed() bool        { return false }
func (ServerTime) Params() core.Params { return nil }

// ExchangeInfo returns trading rules and symbol information.
type ExchangeInfo struct{}

func (ExchangeInfo) Method() string      { return http.MethodGet }
func (ExchangeInfo) Path() string        { return "/v1/exchangeInfo" }
func (ExchangeInfo) Signed() bool        { return false }
func (ExchangeInfo) Params() core.Params { return nil }

// RecentTrades lists the latest public trades of a symbol.
type RecentTrades struct {
	Symbol string `validate:"required"`
	Limit  int    `validate:"min=0,max=1000"`
}

func (RecentTrades) Method() string { return http.MethodGet }
func (RecentTrades) Path() string   { return "/v1/trades" }
func (RecentTrades) Signed() bool   { return false }

func (o RecentTrades) Params() core.Params {
	return core.Params{
		{Key: "symbol", Value: o.Symbol},
		{Key: "limit", Value: withDefault(o.Limit, defaultTradesLimit)},
	}
}

func (o RecentTrades) Validate() error { return core.ValidateStruct(o) }

// MarkPrice returns mark price and funding rate. Without a symbol it covers every symbol.
type MarkPrice struct {
	Symbol string
}

func (MarkPrice) Method() string { return http.MethodGet }
func (MarkPrice) Path() string   { return "/v1/premiumIndex" }
func (MarkPrice) Signed() bool   { return false }

func (o MarkPrice) Params() core.Params {
	return core.Params{
		{Key: "symbol", Value: optString(o.Symbol)},
	}
}

// OpenOrders lists all open orders of a symbol.
type OpenOrders struct {
	Timestamp  string `validate:"required,numeric"`
	Symbol     string `validate:"required"`
	RecvWindow int64  `validate:"min=0,max=60000"`
}

func (OpenOrders) Method() string { return http.MethodGet }
func (OpenOrders) Path() string   { return "/v1/openOrders" }
func (OpenOrders) Signed() bool   { return true }

func (o OpenOrders) Params() core.Params {
	return core.Params{
		{Key: "timestamp", Value: o.Timestamp},
		{Key: "symbol", Value: o.Symbol},
		{Key: "recvWindow", Value: recvWindow(o.RecvWindow)},
	}
}

func (o OpenOrders) Validate() error { return core.ValidateStruct(o) }

// OpenOrder queries a single open order by exchange or client id.
type OpenOrder struct {
	Timestamp         string `validate:"required,numeric"`
	Symbol            string `validate:"required"`
	OrderID           *int64 `validate:"required_without=OrigClientOrderID"`
	OrigClientOrderID string
	RecvWindow        int64 `validate:"min=0,max=60000"`
}

func (OpenOrder) Method() string { return http.MethodGet }
func (OpenOrder) Path() string   { return "/v1/openOrder" }
func (OpenOrder) Signed() bool   { return true }

func (o OpenOrder) Params() core.Params {
	return core.Params{
		{Key: "timestamp", Value: o.Timestamp},
		{Key: "symbol", Value: o.Symbol},
		{Key: "orderId", Value: o.OrderID},
		{Key: "origClientOrderId", Value: optString(o.OrigClientOrderID)},
		{Key: "recvWindow", Value: recvWindow(o.RecvWindow)},
	}
}

func (o OpenOrder) Validate() error { return core.ValidateStruct(o) }

// FuturesBalance returns the futures account balance per asset.
type FuturesBalance struct {
	Timestamp  string `validate:"required,numeric"`
	RecvWindow int64  `validate:"min=0,max=60000"`
}

func (FuturesBalance) Method() string { return http.MethodGet }
func (FuturesBalance) Path() string   { return "/v2/balance" }
func (FuturesBalance) Signed() bool   { return true }

func (o FuturesBalance) Params() core.Params {
	return core.Params{
		{Key: "timestamp", Value: o.Timestamp},
		{Key: "recvWindow", Value: recvWindow(o.RecvWindow)},
	}
}

func (o FuturesBalance) Validate() error { return core.ValidateStruct(o) }

// AccountInformation returns the current account state.
type AccountInformation struct {
	Timestamp  string `validate:"required,numeric"`
	RecvWindow int64  `validate:"min=0,max=60000"`
}

func (AccountInformation) Method() string { return http.MethodGet }
func (AccountInformation) Path() string   { return "/v2/account" }
func (AccountInformation) Signed() bool   { return true }

func (o AccountInformation) Params() core.Params {
	return core.Params{
		{Key: "timestamp", Value: o.Timestamp},
		{Key: "recvWindow", Value: recvWindow(o.RecvWindow)},
	}
}

func (o AccountInformation) Validate() error { return core.ValidateStruct(o) }

// PositionInformation returns position risk for a symbol.
type PositionInformation struct {
	Timestamp  string `validate:"required,numeric"`
	Symbol     string `validate:"required"`
	RecvWindow int64  `validate:"min=0,max=60000"`
}

func (PositionInformation) Method() string { return http.MethodGet }
func (PositionInformation) Path() string   { return "/v2/positionRisk" }
func (PositionInformation) Signed() bool   { return true }

func (o PositionInformation) Params() core.Params {
	return core.Params{
		{Key: "timestamp", Value: o.Timestamp},
		{Key: "symbol", Value: o.Symbol},
		{Key: "recvWindow", Value: recvWindow(o.RecvWindow)},
	}
}

func (o PositionInformation) Validate() error { return core.ValidateStruct(o) }

// AllOrders returns the order history of a symbol.
type AllOrders struct {
	Timestamp  string `validate:"required,numeric"`
	Symbol     string `validate:"required"`
	OrderID    *int64
	StartTime  *int64
	EndTime    *int64
	Limit      int   `validate:"min=0,max=1000"`
	RecvWindow int64 `validate:"min=0,max=60000"`
}

func (AllOrders) Method() string { return http.MethodGet }
func (AllOrders) Path() string   { return "/v1/allOrders" }
func (AllOrders) Signed() bool   { return true }

func (o AllOrders) Params() core.Params {
	return core.Params{
		{Key: "timestamp", Value: o.Timestamp},
		{Key: "symbol", Value: o.Symbol},
		{Key: "orderId", Value: o.OrderID},
		{Key: "startTime", Value: o.StartTime},
		{Key: "endTime", Value: o.EndTime},
		{Key: "limit", Value: withDefault(o.Limit, defaultHistoryLimit)},
		{Key: "recvWindow", Value: recvWindow(o.RecvWindow)},
	}
}

func (o AllOrders) Validate() error { return core.ValidateStruct(o) }

// UserTrades returns the account's trade history for a symbol.
type UserTrades struct {
	Timestamp  string `validate:"required,numeric"`
	Symbol     string `validate:"required"`
	OrderID    *int64
	StartTime  *int64
	EndTime    *int64
	Limit      int `validate:"min=0,max=1000"`
	FromID     *int64
	RecvWindow int64 `validate:"min=0,max=60000"`
}

func (UserTrades) Method() string { return http.MethodGet }
func (UserTrades) Path() string   { return "/v1/userTrades" }
func (UserTrades) Signed() bool   { return true }

func (o UserTrades) Params() core.Params {
	return core.Params{
		{Key: "timestamp", Value: o.Timestamp},
		{Key: "symbol", Value: o.Symbol},
		{Key: "orderId", Value: o.OrderID},
		{Key: "startTime", Value: o.StartTime},
		{Key: "endTime", Value: o.EndTime},
		{Key: "limit", Value: withDefault(o.Limit, defaultHistoryLimit)},
		{Key: "fromId", Value: o.FromID},
		{Key: "recvWindow", Value: recvWindow(o.RecvWindow)},
	}
}

func (o UserTrades) Validate() error { return core.ValidateStruct(o) }

// CurrentPositionMode reports whether hedge mode (dual side position) is enabled.
type CurrentPositionMode struct {
	Timestamp  string `validate:"required,numeric"`
	RecvWindow int64  `validate:"min=0,max=60000"`
}

func (CurrentPositionMode) Method() string { return http.MethodGet }
func (CurrentPositionMode) Path() string   { return "/v1/positionSide/dual" }
func (CurrentPositionMode) Signed() bool   { return true }

func (o CurrentPositionMode) Params() core.Params {
	return core.Params{
		{Key: "timestamp", Value: o.Timestamp},
		{Key: "recvWindow", Value: recvWindow(o.RecvWindow)},
	}
}

func (o CurrentPositionMode) Validate() error { return core.ValidateStruct(o) }

// ChangePositionMode switches between hedge mode (true) and one-way mode (false).
type ChangePositionMode struct {
	Timestamp        string `validate:"required,numeric"`
	DualSidePosition bool
	RecvWindow       int64 `validate:"min=0,max=60000"`
}

func (ChangePositionMode) Method() string { return http.MethodPost }
func (ChangePositionMode) Path() string   { return "/v1/positionSide/dual" }
func (ChangePositionMode) Signed() bool   { return true }

func (o ChangePositionMode) Params() core.Params {
	return core.Params{
		{Key: "timestamp", Value: o.Timestamp},
		{Key: "dualSidePosition", Value: o.DualSidePosition},
		{Key: "recvWindow", Value: recvWindow(o.RecvWindow)},
	}
}

func (o ChangePositionMode) Validate() error { return core.ValidateStruct(o) }

// NewOrder places an order. Side, PositionSide and Type have no default:
// their zero values fail validation. See pkg/order for a builder that checks
// type-dependent fields.
type NewOrder struct {
	Timestamp        string            `validate:"required,numeric"`
	Symbol           string            `validate:"required"`
	Side             core.OrderSide    `validate:"enum"`
	PositionSide     core.PositionSide `validate:"enum"`
	Type             core.OrderType    `validate:"enum"`
	Quantity         *apd.Decimal      `validate:"-"`
	Price            *apd.Decimal      `validate:"-"`
	TimeInForce      *core.TimeInForce `validate:"omitnil,enum"`
	StopPrice        *apd.Decimal      `validate:"-"`
	ActivationPrice  *apd.Decimal      `validate:"-"`
	CallbackRate     *apd.Decimal      `validate:"-"`
	ClosePosition    bool
	ReduceOnly       *bool
	NewClientOrderID string            `validate:"omitempty,max=36"`
	WorkingType      *core.WorkingType `validate:"omitnil,enum"`
	PriceProtect     *bool
	ResponseType     core.ResponseType `validate:"enum"`
	RecvWindow       int64             `validate:"min=0,max=60000"`
}

func (NewOrder) Method() string { return http.MethodPost }
func (NewOrder) Path() string   { return "/v1/order" }
func (NewOrder) Signed() bool   { return true }

func (o NewOrder) Params() core.Params {
	return core.Params{
		{Key: "timestamp", Value: o.Timestamp},
		{Key: "symbol", Value: o.Symbol},
		{Key: "side", Value: o.Side},
		{Key: "positionSide", Value: o.PositionSide},
		{Key: "type", Value: o.Type},
		{Key: "quantity", Value: o.Quantity},
		{Key: "price", Value: o.Price},
		{Key: "timeInForce", Value: o.TimeInForce},
		{Key: "stopPrice", Value: o.StopPrice},
		{Key: "activationPrice", Value: o.ActivationPrice},
		{Key: "callbackRate", Value: o.CallbackRate},
		{Key: "closePosition", Value: o.ClosePosition},
		{Key: "reduceOnly", Value: o.ReduceOnly},
		{Key: "newClientOrderId", Value: optString(o.NewClientOrderID)},
		{Key: "workingType", Value: o.WorkingType},
		{Key: "priceProtect", Value: o.PriceProtect},
		{Key: "newOrderRespType", Value: o.ResponseType},
		{Key: "recvWindow", Value: recvWindow(o.RecvWindow)},
	}
}

func (o NewOrder) Validate() error { return core.ValidateStruct(o) }

// CancelOrder cancels an active order by exchange or client id.
type CancelOrder struct {
	Timestamp         string `validate:"required,numeric"`
	Symbol            string `validate:"required"`
	OrderID           *int64 `validate:"required_without=OrigClientOrderID"`
	OrigClientOrderID string
	RecvWindow        int64 `validate:"min=0,max=60000"`
}

func (CancelOrder) Method() string { return http.MethodDelete }
func (CancelOrder) Path() string   { return "/v1/order" }
func (CancelOrder) Signed() bool   { return true }

func (o CancelOrder) Params() core.Params {
	return core.Params{
		{Key: "timestamp", Value: o.Timestamp},
		{Key: "symbol", Value: o.Symbol},
		{Key: "orderId", Value: o.OrderID},
		{Key: "origClientOrderId", Value: optString(o.OrigClientOrderID)},
		{Key: "recvWindow", Value: recvWindow(o.RecvWindow)},
	}
}

func (o CancelOrder) Validate() error { return core.ValidateStruct(o) }

// CancelAllOpenOrders cancels every open order of a symbol.
type CancelAllOpenOrders struct {
	Timestamp  string `validate:"required,numeric"`
	Symbol     string `validate:"required"`
	RecvWindow int64  `validate:"min=0,max=60000"`
}

func (CancelAllOpenOrders) Method() string { return http.MethodDelete }
func (CancelAllOpenOrders) Path() string   { return "/v1/allOpenOrders" }
func (CancelAllOpenOrders) Signed() bool   { return true }

func (o CancelAllOpenOrders) Params() core.Params {
	return core.Params{
		{Key: "timestamp", Value: o.Timestamp},
		{Key: "symbol", Value: o.Symbol},
		{Key: "recvWindow", Value: recvWindow(o.RecvWindow)},
	}
}

func (o CancelAllOpenOrders) Validate() error { return core.ValidateStruct(o) }

// Ptr returns a pointer to v, for optional operation fields.
func Ptr[T any](v T) *T {
	return &v
}

func recvWindow(v int64) int64 {
	if v == 0 {
		return DefaultRecvWindow
	}
	return v
}

func withDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

func optString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
