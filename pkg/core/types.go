package core

import "strings"

// The zero value of every decoded enum is its Unknown member. It fails Valid,
// so a field left unset is rejected before signing, and a wire code missing
// from the table decodes to Unknown rather than to a real member.

// OrderSide represents the direction of an order (buy or sell).
type OrderSide int

// Order side constants define the direction of a trade.
const (
	SideUnknown OrderSide = iota
	// SideBuy indicates an order to purchase an asset.
	SideBuy
	// SideSell indicates an order to sell an asset.
	SideSell
)

var orderSideCodes = [...]string{"", "BUY", "SELL"}

// String returns the wire code of the order side ("BUY" or "SELL").
func (s OrderSide) String() string {
	return codeOf(orderSideCodes[:], int(s))
}

// Valid reports whether s is a known order side.
func (s OrderSide) Valid() bool {
	return known(orderSideCodes[:], int(s))
}

// MarshalJSON implements json.Marshaler for OrderSide.
func (s OrderSide) MarshalJSON() ([]byte, error) {
	return quote(s.String()), nil
}

// UnmarshalJSON implements json.Unmarshaler for OrderSide.
// It accepts both uppercase and lowercase formats.
func (s *OrderSide) UnmarshalJSON(data []byte) error {
	*s = OrderSide(indexOf(orderSideCodes[:], data))
	return nil
}

// PositionSide represents the side of a futures position an order applies to.
type PositionSide int

// Position side constants. BOTH is used in one-way position mode.
const (
	PositionUnknown PositionSide = iota
	PositionBoth
	PositionLong
	PositionShort
)

var positionSideCodes = [...]string{"", "BOTH", "LONG", "SHORT"}

// String returns the wire code of the position side.
func (p PositionSide) String() string {
	return codeOf(positionSideCodes[:], int(p))
}

// Valid reports whether p is a known position side.
func (p PositionSide) Valid() bool {
	return known(positionSideCodes[:], int(p))
}

// MarshalJSON implements json.Marshaler for PositionSide.
func (p PositionSide) MarshalJSON() ([]byte, error) {
	return quote(p.String()), nil
}

// UnmarshalJSON implements json.Unmarshaler for PositionSide.
func (p *PositionSide) UnmarshalJSON(data []byte) error {
	*p = PositionSide(indexOf(positionSideCodes[:], data))
	return nil
}

// OrderType represents the type of order to place on an exchange.
type OrderType int

// Order type constants define how an order is executed.
const (
	// TypeUnknown also stands for types that cannot be placed, such as LIQUIDATION.
	TypeUnknown OrderType = iota
	// TypeLimit executes at a specified price or better.
	TypeLimit
	// TypeMarket executes immediately at the best available price.
	TypeMarket
	// TypeStop triggers a limit order when price reaches the stop price.
	TypeStop
	// TypeStopMarket triggers a market order when price reaches the stop price.
	TypeStopMarket
	// TypeTakeProfit triggers a limit order when price reaches the target.
	TypeTakeProfit
	// TypeTakeProfitMarket triggers a market order when price reaches the target.
	TypeTakeProfitMarket
	// TypeTrailingStopMarket follows the price by a callback rate.
	TypeTrailingStopMarket
)

var orderTypeCodes = [...]string{
	"",
	"LIMIT",
	"MARKET",
	"STOP",
	"STOP_MARKET",
	"TAKE_PROFIT",
	"TAKE_PROFIT_MARKET",
	"TRAILING_STOP_MARKET",
}

// String returns the wire code of the order type.
func (t OrderType) String() string {
	return codeOf(orderTypeCodes[:], int(t))
}

// Valid reports whether t is a known order type.
func (t OrderType) Valid() bool {
	return known(orderTypeCodes[:], int(t))
}

// RequiresPrice reports whether orders of this type must carry a limit price.
func (t OrderType) RequiresPrice() bool {
	return t == TypeLimit || t == TypeStop || t == TypeTakeProfit
}

// RequiresStopPrice reports whether orders of this type must carry a trigger price.
func (t OrderType) RequiresStopPrice() bool {
	return t == TypeStop || t == TypeStopMarket || t == TypeTakeProfit || t == TypeTakeProfitMarket
}

// MarshalJSON implements json.Marshaler for OrderType.
func (t OrderType) MarshalJSON() ([]byte, error) {
	return quote(t.String()), nil
}

// UnmarshalJSON implements json.Unmarshaler for OrderType.
func (t *OrderType) UnmarshalJSON(data []byte) error {
	*t = OrderType(indexOf(orderTypeCodes[:], data))
	return nil
}

// TimeInForce defines how long an order remains active.
type TimeInForce int

// Time in force constants define order lifetime behavior.
const (
	TimeInForceUnknown TimeInForce = iota
	// GTC (Good Till Canceled) keeps the order active until filled or canceled.
	GTC
	// IOC (Immediate Or Cancel) requires immediate execution; unfilled portion is canceled.
	IOC
	// FOK (Fill Or Kill) requires complete immediate execution or cancellation.
	FOK
	// GTX (Good Till Crossing) is post-only.
	GTX
	// GTE (Good Till Expired) lives until the attached position closes.
	GTE
	// GTD (Good Till Date) expires at a given time.
	GTD
	// DAY expires at the end of the trading day.
	DAY
)

var timeInForceCodes = [...]string{"", "GTC", "IOC", "FOK", "GTX", "GTE", "GTD", "DAY"}

// String returns the wire code of time in force.
func (t TimeInForce) String() string {
	return codeOf(timeInForceCodes[:], int(t))
}

// Valid reports whether t is a known time in force.
func (t TimeInForce) Valid() bool {
	return known(timeInForceCodes[:], int(t))
}

// MarshalJSON implements json.Marshaler for TimeInForce.
func (t TimeInForce) MarshalJSON() ([]byte, error) {
	return quote(t.String()), nil
}

// UnmarshalJSON implements json.Unmarshaler for TimeInForce.
// It accepts both uppercase and lowercase formats.
func (t *TimeInForce) UnmarshalJSON(data []byte) error {
	*t = TimeInForce(indexOf(timeInForceCodes[:], data))
	return nil
}

// WorkingType selects which price stop orders are triggered by.
type WorkingType int

const (
	WorkingUnknown WorkingType = iota
	WorkingMarkPrice
	WorkingContractPrice
)

var workingTypeCodes = [...]string{"", "MARK_PRICE", "CONTRACT_PRICE"}

// String returns the wire code of the working type.
func (w WorkingType) String() string {
	return codeOf(workingTypeCodes[:], int(w))
}

// Valid reports whether w is a known working type.
func (w WorkingType) Valid() bool {
	return known(workingTypeCodes[:], int(w))
}

// MarshalJSON implements json.Marshaler for WorkingType.
func (w WorkingType) MarshalJSON() ([]byte, error) {
	return quote(w.String()), nil
}

// UnmarshalJSON implements json.Unmarshaler for WorkingType.
func (w *WorkingType) UnmarshalJSON(data []byte) error {
	*w = WorkingType(indexOf(workingTypeCodes[:], data))
	return nil
}

// ResponseType selects how much detail the exchange returns for a new order.
// It is request-only and defaults to ACK.
type ResponseType int

const (
	// RespACK returns only the order identifiers.
	RespACK ResponseType = iota
	// RespResult returns the order with its final state.
	RespResult
)

var responseTypeCodes = [...]string{"ACK", "RESULT"}

// String returns the wire code of the response type.
func (r ResponseType) String() string {
	return codeOf(responseTypeCodes[:], int(r))
}

// Valid reports whether r is a known response type.
func (r ResponseType) Valid() bool {
	return known(responseTypeCodes[:], int(r))
}

// OrderStatus represents the current state of an order.
type OrderStatus int

// Order status constants define the lifecycle state of an order.
const (
	StatusUnknown OrderStatus = iota
	// StatusNew indicates the order has been accepted by the exchange.
	StatusNew
	// StatusPartiallyFilled indicates the order has been partially filled.
	StatusPartiallyFilled
	// StatusFilled indicates the order has been completely filled.
	StatusFilled
	// StatusCanceled indicates the order has been canceled.
	StatusCanceled
	// StatusRejected indicates the order was rejected by the exchange.
	StatusRejected
	// StatusExpired indicates the order has expired.
	StatusExpired
	// StatusExpiredInMatch indicates the order expired by self-trade prevention.
	StatusExpiredInMatch
)

var orderStatusCodes = [...]string{
	"",
	"NEW",
	"PARTIALLY_FILLED",
	"FILLED",
	"CANCELED",
	"REJECTED",
	"EXPIRED",
	"EXPIRED_IN_MATCH",
}

// String returns the string representation of the order status.
func (s OrderStatus) String() string {
	return codeOf(orderStatusCodes[:], int(s))
}

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	return known(orderStatusCodes[:], int(s))
}

// IsTerminal returns true if the order is in a terminal state (no further changes possible).
// StatusUnknown is neither terminal nor live; check Valid first.
func (s OrderStatus) IsTerminal() bool {
	switch s {
	case StatusFilled, StatusCanceled, StatusRejected, StatusExpired, StatusExpiredInMatch:
		return true
	default:
		return false
	}
}

// MarshalJSON implements json.Marshaler for OrderStatus.
func (s OrderStatus) MarshalJSON() ([]byte, error) {
	return quote(s.String()), nil
}

// UnmarshalJSON implements json.Unmarshaler for OrderStatus.
// It accepts both uppercase and lowercase formats.
func (s *OrderStatus) UnmarshalJSON(data []byte) error {
	*s = OrderStatus(indexOf(orderStatusCodes[:], data))
	return nil
}

// codeOf returns codes[i], or "UNKNOWN" when i is out of range or reserved.
func codeOf(codes []string, i int) string {
	if !known(codes, i) {
		return "UNKNOWN"
	}
	return codes[i]
}

func known(codes []string, i int) bool {
	return i >= 0 && i < len(codes) && codes[i] != ""
}

// indexOf returns the index of the code in data, or 0 when it is not in the table.
func indexOf(codes []string, data []byte) int {
	str := strings.ToUpper(strings.Trim(string(data), `"`))
	for i, c := range codes {
		if c != "" && c == str {
			return i
		}
	}
	return 0
}

func quote(s string) []byte {
	return []byte(`"` + s + `"`)
}
