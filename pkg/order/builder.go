package order

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"

	"binrest/pkg/core"
	"binrest/pkg/exchange/binance"
)

// Builder provides a fluent interface for constructing NewOrder operations.
// It accumulates the first parse error and reports it on Build.
//
// Example:
//
//	op, err := order.NewBuilder("BTCUSDT").
//	    Buy().
//	    Limit().
//	    Price("50000").
//	    Quantity("0.001").
//	    Timestamp(ts).
//	    Build()
type Builder struct {
	order *binance.NewOrder
	err   error
}

// NewBuilder creates a builder for symbol. Position side starts as BOTH
// (one-way mode) and response type as ACK. Side and type must be set.
func NewBuilder(symbol string) *Builder {
	return &Builder{
		order: &binance.NewOrder{
			Symbol:       symbol,
			PositionSide: core.PositionBoth,
		},
	}
}

// Side sets the order side.
func (b *Builder) Side(side core.OrderSide) *Builder {
	if b.err != nil {
		return b
	}
	b.order.Side = side
	return b
}

// Buy sets the order side to buy.
func (b *Builder) Buy() *Builder {
	return b.Side(core.SideBuy)
}

// Sell sets the order side to sell.
func (b *Builder) Sell() *Builder {
	return b.Side(core.SideSell)
}

// PositionSide sets the position side used in hedge mode.
func (b *Builder) PositionSide(side core.PositionSide) *Builder {
	if b.err != nil {
		return b
	}
	b.order.PositionSide = side
	return b
}

func (b *Builder) Long() *Builder  { return b.PositionSide(core.PositionLong) }
func (b *Builder) Short() *Builder { return b.PositionSide(core.PositionShort) }
func (b *Builder) Both() *Builder  { return b.PositionSide(core.PositionBoth) }

// Type sets the order type.
func (b *Builder) Type(orderType core.OrderType) *Builder {
	if b.err != nil {
		return b
	}
	b.order.Type = orderType
	return b
}

// Market sets the order type to market.
func (b *Builder) Market() *Builder {
	return b.Type(core.TypeMarket)
}

// Limit sets the order type to limit.
func (b *Builder) Limit() *Builder {
	return b.Type(core.TypeLimit)
}

// Quantity sets the order quantity from a string representation.
func (b *Builder) Quantity(qty string) *Builder {
	return b.setString(&b.order.Quantity, qty, "quantity")
}

// QuantityDecimal sets the order quantity from an apd.Decimal value.
func (b *Builder) QuantityDecimal(qty apd.Decimal) *Builder {
	return b.setDecimal(&b.order.Quantity, qty)
}

// Price sets the limit price from a string representation.
func (b *Builder) Price(price string) *Builder {
	return b.setString(&b.order.Price, price, "price")
}

// PriceDecimal sets the limit price from an apd.Decimal value.
func (b *Builder) PriceDecimal(price apd.Decimal) *Builder {
	return b.setDecimal(&b.order.Price, price)
}

// StopPrice sets the trigger price of stop and take-profit orders.
func (b *Builder) StopPrice(price string) *Builder {
	return b.setString(&b.order.StopPrice, price, "stop price")
}

// ActivationPrice sets the activation price of a trailing stop.
func (b *Builder) ActivationPrice(price string) *Builder {
	return b.setString(&b.order.ActivationPrice, price, "activation price")
}

// CallbackRate sets the trailing stop callback rate in percent.
func (b *Builder) CallbackRate(rate string) *Builder {
	return b.setString(&b.order.CallbackRate, rate, "callback rate")
}

// TimeInForce sets the time-in-force policy for the order.
func (b *Builder) TimeInForce(tif core.TimeInForce) *Builder {
	if b.err != nil {
		return b
	}
	b.order.TimeInForce = &tif
	return b
}

// GTC sets the time-in-force to Good-Till-Cancelled.
func (b *Builder) GTC() *Builder {
	return b.TimeInForce(core.GTC)
}

// IOC sets the time-in-force to Immediate-Or-Cancel.
func (b *Builder) IOC() *Builder {
	return b.TimeInForce(core.IOC)
}

// FOK sets the time-in-force to Fill-Or-Kill.
func (b *Builder) FOK() *Builder {
	return b.TimeInForce(core.FOK)
}

// GTX sets the time-in-force to post-only.
func (b *Builder) GTX() *Builder {
	return b.TimeInForce(core.GTX)
}

// WorkingType selects the price stop orders trigger on.
func (b *Builder) WorkingType(wt core.WorkingType) *Builder {
	if b.err != nil {
		return b
	}
	b.order.WorkingType = &wt
	return b
}

func (b *Builder) ReduceOnly(v bool) *Builder {
	if b.err != nil {
		return b
	}
	b.order.ReduceOnly = &v
	return b
}

// ClosePosition makes a stop or take-profit order close the whole position.
func (b *Builder) ClosePosition() *Builder {
	if b.err != nil {
		return b
	}
	b.order.ClosePosition = true
	return b
}

func (b *Builder) PriceProtect(v bool) *Builder {
	if b.err != nil {
		return b
	}
	b.order.PriceProtect = &v
	return b
}

// ClientOrderID sets a client-assigned identifier for order tracking.
func (b *Builder) ClientOrderID(id string) *Builder {
	if b.err != nil {
		return b
	}
	b.order.NewClientOrderID = id
	return b
}

// NewClientOrderID assigns a random client order id with the given prefix.
func (b *Builder) NewClientOrderID(prefix string) *Builder {
	return b.ClientOrderID(core.NewClientOrderID(prefix))
}

// ResponseType selects the acknowledgement format.
func (b *Builder) ResponseType(rt core.ResponseType) *Builder {
	if b.err != nil {
		return b
	}
	b.order.ResponseType = rt
	return b
}

// RecvWindow sets the validity window in milliseconds. Zero keeps the default.
func (b *Builder) RecvWindow(ms int64) *Builder {
	if b.err != nil {
		return b
	}
	b.order.RecvWindow = ms
	return b
}

// Timestamp sets the request timestamp, see binance.Client.Timestamp.
func (b *Builder) Timestamp(ts string) *Builder {
	if b.err != nil {
		return b
	}
	b.order.Timestamp = ts
	return b
}

// Build validates and returns the operation.
// Returns an error if any required fields are missing or invalid.
func (b *Builder) Build() (*binance.NewOrder, error) {
	if b.err != nil {
		return nil, b.err
	}

	if b.order.Type == core.TypeLimit && b.order.TimeInForce == nil {
		tif := core.GTC
		b.order.TimeInForce = &tif
	}

	if err := validateOrder(b.order); err != nil {
		return nil, err
	}

	op := *b.order
	return &op, nil
}

func (b *Builder) setString(dst **apd.Decimal, s, field string) *Builder {
	if b.err != nil {
		return b
	}
	d, _, err := apd.NewFromString(s)
	if err != nil {
		b.err = fmt.Errorf("%w: parse %s: %v", core.ErrValidation, field, err)
		return b
	}
	*dst = d
	return b
}

func (b *Builder) setDecimal(dst **apd.Decimal, v apd.Decimal) *Builder {
	if b.err != nil {
		return b
	}
	d := new(apd.Decimal)
	d.Set(&v)
	*dst = d
	return b
}

func validateOrder(o *binance.NewOrder) error {
	if o.Symbol == "" {
		return fmt.Errorf("%w: symbol is required", core.ErrValidation)
	}

	if !o.Side.Valid() {
		return fmt.Errorf("%w: invalid order side", core.ErrValidation)
	}

	if !o.PositionSide.Valid() {
		return fmt.Errorf("%w: invalid position side", core.ErrValidation)
	}

	if !o.Type.Valid() {
		return fmt.Errorf("%w: invalid order type", core.ErrValidation)
	}

	if !o.ClosePosition && !positive(o.Quantity) {
		return fmt.Errorf("%w: quantity must be positive", core.ErrValidation)
	}

	if o.Type.RequiresPrice() && !positive(o.Price) {
		return fmt.Errorf("%w: price must be positive for %s orders", core.ErrValidation, o.Type)
	}

	if o.Type.RequiresStopPrice() && !positive(o.StopPrice) {
		return fmt.Errorf("%w: stop price must be positive for %s orders", core.ErrValidation, o.Type)
	}

	if o.Type == core.TypeTrailingStopMarket && !positive(o.CallbackRate) {
		return fmt.Errorf("%w: callback rate is required for %s orders", core.ErrValidation, o.Type)
	}

	if o.Timestamp == "" {
		return fmt.Errorf("%w: timestamp is required", core.ErrValidation)
	}

	return o.Validate()
}

func positive(d *apd.Decimal) bool {
	return d != nil && !d.IsZero() && !d.Negative
}
