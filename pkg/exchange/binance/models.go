package binance

import (
	"github.com/cockroachdb/apd/v3"

	"binrest/pkg/core"
)

// ServerTimeResponse is the body of ServerTime.
type ServerTimeResponse struct {
	ServerTime float64 `json:"serverTime"`
}

// CodeResponse is the acknowledgement body of mode changes and bulk cancels.
type CodeResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

// MarkPriceResponse is one entry of MarkPrice.
type MarkPriceResponse struct {
	Symbol          string      `json:"symbol"`
	MarkPrice       apd.Decimal `json:"markPrice"`
	IndexPrice      apd.Decimal `json:"indexPrice"`
	LastFundingRate apd.Decimal `json:"lastFundingRate"`
	NextFundingTime int64       `json:"nextFundingTime"`
	Time            int64       `json:"time"`
}

// Trade is one public trade from RecentTrades.
type Trade struct {
	ID           int64       `json:"id"`
	Price        apd.Decimal `json:"price"`
	Qty          apd.Decimal `json:"qty"`
	QuoteQty     apd.Decimal `json:"quoteQty"`
	Time         int64       `json:"time"`
	IsBuyerMaker bool        `json:"isBuyerMaker"`
}

// Balance is one asset entry of FuturesBalance.
type Balance struct {
	AccountAlias       string      `json:"accountAlias"`
	Asset              string      `json:"asset"`
	Balance            apd.Decimal `json:"balance"`
	CrossWalletBalance apd.Decimal `json:"crossWalletBalance"`
	AvailableBalance   apd.Decimal `json:"availableBalance"`
	MaxWithdrawAmount  apd.Decimal `json:"maxWithdrawAmount"`
	UpdateTime         int64       `json:"updateTime"`
}

// Position is one entry of PositionInformation.
type Position struct {
	Symbol           string            `json:"symbol"`
	PositionAmt      apd.Decimal       `json:"positionAmt"`
	EntryPrice       apd.Decimal       `json:"entryPrice"`
	MarkPrice        apd.Decimal       `json:"markPrice"`
	UnRealizedProfit apd.Decimal       `json:"unRealizedProfit"`
	LiquidationPrice apd.Decimal       `json:"liquidationPrice"`
	Leverage         string            `json:"leverage"`
	MarginType       string            `json:"marginType"`
	PositionSide     core.PositionSide `json:"positionSide"`
	UpdateTime       int64             `json:"updateTime"`
}

// Order is the order document returned by NewOrder, CancelOrder, OpenOrder,
// OpenOrders and AllOrders.
type Order struct {
	OrderID       int64             `json:"orderId"`
	Symbol        string            `json:"symbol"`
	Status        core.OrderStatus  `json:"status"`
	ClientOrderID string            `json:"clientOrderId"`
	Price         apd.Decimal       `json:"price"`
	AvgPrice      apd.Decimal       `json:"avgPrice"`
	OrigQty       apd.Decimal       `json:"origQty"`
	ExecutedQty   apd.Decimal       `json:"executedQty"`
	CumQuote      apd.Decimal       `json:"cumQuote"`
	TimeInForce   core.TimeInForce  `json:"timeInForce"`
	Type          core.OrderType    `json:"type"`
	ReduceOnly    bool              `json:"reduceOnly"`
	ClosePosition bool              `json:"closePosition"`
	Side          core.OrderSide    `json:"side"`
	PositionSide  core.PositionSide `json:"positionSide"`
	StopPrice     apd.Decimal       `json:"stopPrice"`
	WorkingType   core.WorkingType  `json:"workingType"`
	UpdateTime    int64             `json:"updateTime"`
}

// UserTrade is one fill from UserTrades.
type UserTrade struct {
	ID              int64             `json:"id"`
	OrderID         int64             `json:"orderId"`
	Symbol          string            `json:"symbol"`
	Side            core.OrderSide    `json:"side"`
	PositionSide    core.PositionSide `json:"positionSide"`
	Price           apd.Decimal       `json:"price"`
	Qty             apd.Decimal       `json:"qty"`
	QuoteQty        apd.Decimal       `json:"quoteQty"`
	RealizedPnl     apd.Decimal       `json:"realizedPnl"`
	Commission      apd.Decimal       `json:"commission"`
	CommissionAsset string            `json:"commissionAsset"`
	Buyer           bool              `json:"buyer"`
	Maker           bool              `json:"maker"`
	Time            int64             `json:"time"`
}

// PositionModeResponse is the body of CurrentPositionMode.
type PositionModeResponse struct {
	DualSidePosition bool `json:"dualSidePosition"`
}
