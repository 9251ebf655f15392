package binance

import (
	"strings"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"binrest/pkg/core"
)

const testTimestamp = "1700000000000"

func marketOrder() NewOrder {
	return NewOrder{
		Timestamp:    testTimestamp,
		Symbol:       "BTCUSDT",
		Side:         core.SideBuy,
		PositionSide: core.PositionBoth,
		Type:         core.TypeMarket,
		Quantity:     apd.New(1, -2),
	}
}

func splitSignature(t *testing.T, query string) (string, string) {
	t.Helper()
	idx := strings.LastIndex(query, "&signature=")
	require.NotEqual(t, -1, idx, "no signature in %q", query)
	return query[:idx], query[idx+len("&signature="):]
}

func TestSign(t *testing.T) {
	assert.Equal(t,
		"f7bc83f430538424b13298e6aa6fb143ef4d59a14946175997479dbc2d1a3cd8",
		Sign("The quick brown fox jumps over the lazy dog", "key"))
	assert.Equal(t,
		"e2636077506729a8f61aff2441332e40e844a8ad44489efd80210ea6d1f51088",
		Sign("", "abc"))
}

func TestBuild_NewOrder(t *testing.T) {
	query, err := Build(marketOrder(), "abc")
	require.NoError(t, err)

	want := "timestamp=1700000000000&symbol=BTCUSDT&side=BUY&positionSide=BOTH&type=MARKET" +
		"&quantity=0.01&closePosition=false&newOrderRespType=ACK&recvWindow=5000"
	assert.Equal(t, want+
		"&signature=3a6ced0772ff035d021bc62437c6e6b1097313c0ce7046927538885a5dcf767b", query)

	prefix, sig := splitSignature(t, query)
	assert.Equal(t, want, prefix)
	assert.Equal(t, Sign(prefix, "abc"), sig)
}

func TestBuild_CancelAllOpenOrders(t *testing.T) {
	op := CancelAllOpenOrders{Timestamp: testTimestamp, Symbol: "ETHUSDT"}

	assert.Equal(t, "DELETE", op.Method())
	assert.Equal(t, "/v1/allOpenOrders", op.Path())
	assert.True(t, op.Signed())

	query, err := Build(op, "abc")
	require.NoError(t, err)
	assert.Equal(t, "timestamp=1700000000000&symbol=ETHUSDT&recvWindow=5000"+
		"&signature=a2ab197025606ceef71ab0fb82f48641426d909abd70c7814f80ed99eb512b94", query)
}

func TestBuild_SignatureRoundTrip(t *testing.T) {
	ops := []core.Operation{
		OpenOrders{Timestamp: testTimestamp, Symbol: "BTCUSDT"},
		OpenOrder{Timestamp: testTimestamp, Symbol: "BTCUSDT", OrderID: Ptr(int64(42))},
		FuturesBalance{Timestamp: testTimestamp},
		AccountInformation{Timestamp: testTimestamp, RecvWindow: 10000},
		PositionInformation{Timestamp: testTimestamp, Symbol: "BTCUSDT"},
		AllOrders{Timestamp: testTimestamp, Symbol: "BTCUSDT", StartTime: Ptr(int64(1))},
		UserTrades{Timestamp: testTimestamp, Symbol: "BTCUSDT", FromID: Ptr(int64(7))},
		CurrentPositionMode{Timestamp: testTimestamp},
		ChangePositionMode{Timestamp: testTimestamp, DualSidePosition: true},
		CancelOrder{Timestamp: testTimestamp, Symbol: "BTCUSDT", OrigClientOrderID: "abc-1"},
		marketOrder(),
	}

	for _, op := range ops {
		t.Run(op.Path(), func(t *testing.T) {
			query, err := Build(op, "s3cr3t")
			require.NoError(t, err)

			prefix, sig := splitSignature(t, query)
			assert.Equal(t, Serialize(op), prefix)
			assert.Equal(t, Sign(prefix, "s3cr3t"), sig)
			assert.Len(t, sig, 64)
			assert.Equal(t, 1, strings.Count(query, "signature="))
		})
	}
}

func TestBuild_Unsigned(t *testing.T) {
	tests := []struct {
		op   core.Operation
		want string
	}{
		{TestConnectivity{}, ""},
		{ServerTime{}, ""},
		{ExchangeInfo{}, ""},
		{RecentTrades{Symbol: "BTCUSDT"}, "symbol=BTCUSDT&limit=1000"},
		{RecentTrades{Symbol: "BTCUSDT", Limit: 20}, "symbol=BTCUSDT&limit=20"},
		{MarkPrice{Symbol: "ETHUSDT"}, "symbol=ETHUSDT"},
		{MarkPrice{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.op.Path(), func(t *testing.T) {
			assert.False(t, tt.op.Signed())

			query, err := Build(tt.op, "secret")
			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
			assert.NotContains(t, query, "signature")

			noSecret, err := Build(tt.op, "")
			require.NoError(t, err)
			assert.Equal(t, query, noSecret)
		})
	}
}

func TestBuild_SignedWithoutSecret(t *testing.T) {
	_, err := Build(FuturesBalance{Timestamp: testTimestamp}, "")
	assert.ErrorIs(t, err, core.ErrNoCredentials)
}

func TestBuild_ValidationFailure(t *testing.T) {
	tests := []struct {
		name string
		op   core.Operation
	}{
		{"missing_timestamp", OpenOrders{Symbol: "BTCUSDT"}},
		{"non_numeric_timestamp", OpenOrders{Timestamp: "now", Symbol: "BTCUSDT"}},
		{"missing_symbol", CancelAllOpenOrders{Timestamp: testTimestamp}},
		{"no_order_reference", CancelOrder{Timestamp: testTimestamp, Symbol: "BTCUSDT"}},
		{"limit_too_large", RecentTrades{Symbol: "BTCUSDT", Limit: 5000}},
		{"recv_window_too_large", FuturesBalance{Timestamp: testTimestamp, RecvWindow: 90000}},
		{"invalid_side", NewOrder{Timestamp: testTimestamp, Symbol: "BTCUSDT", Side: core.OrderSide(9)}},
		{"client_id_too_long", NewOrder{Timestamp: testTimestamp, Symbol: "BTCUSDT", NewClientOrderID: strings.Repeat("x", 37)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.op, "abc")
			assert.ErrorIs(t, err, core.ErrValidation)
		})
	}
}

func TestBuild_NewOrderRequiresEnums(t *testing.T) {
	noSide := marketOrder()
	noSide.Side = 0

	noPosition := marketOrder()
	noPosition.PositionSide = 0

	noType := marketOrder()
	noType.Type = 0

	tests := []struct {
		name string
		op   NewOrder
	}{
		{"side_omitted", NewOrder{Timestamp: testTimestamp, Symbol: "BTCUSDT", Type: core.TypeMarket, Quantity: apd.New(1, -2)}},
		{"side_zero", noSide},
		{"position_side_zero", noPosition},
		{"type_zero", noType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := Build(tt.op, "abc")
			assert.ErrorIs(t, err, core.ErrValidation)
			assert.Empty(t, query)
		})
	}

	_, err := Build(marketOrder(), "abc")
	require.NoError(t, err)
}

type pointerParams struct {
	side     *core.OrderSide
	count    *int
	position *core.PositionSide
	nested   **int64
}

func (pointerParams) Method() string { return "GET" }
func (pointerParams) Path() string   { return "/v1/pointers" }
func (pointerParams) Signed() bool   { return false }

func (o pointerParams) Params() core.Params {
	return core.Params{
		{Key: "side", Value: o.side},
		{Key: "count", Value: o.count},
		{Key: "positionSide", Value: o.position},
		{Key: "fromId", Value: o.nested},
	}
}

func TestSerialize_Pointers(t *testing.T) {
	count := 7
	position := core.PositionLong
	id := int64(42)
	idPtr := &id

	tests := []struct {
		name string
		op   pointerParams
		want string
	}{
		{"all_nil", pointerParams{}, ""},
		{"typed_nil_enum", pointerParams{side: nil, count: &count}, "count=7"},
		{"dereferenced", pointerParams{count: &count, position: &position}, "count=7&positionSide=LONG"},
		{"double_pointer", pointerParams{nested: &idPtr}, "fromId=42"},
		{"nil_inner_pointer", pointerParams{nested: new(*int64)}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			require.NotPanics(t, func() { got = Serialize(tt.op) })
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSerialize_OmitsAbsent(t *testing.T) {
	op := AllOrders{Timestamp: testTimestamp, Symbol: "BTCUSDT", EndTime: Ptr(int64(1700000001000))}
	assert.Equal(t,
		"timestamp=1700000000000&symbol=BTCUSDT&endTime=1700000001000&limit=500&recvWindow=5000",
		Serialize(op))

	trades := UserTrades{Timestamp: testTimestamp, Symbol: "BTCUSDT", OrderID: Ptr(int64(0))}
	assert.Equal(t,
		"timestamp=1700000000000&symbol=BTCUSDT&orderId=0&limit=500&recvWindow=5000",
		Serialize(trades))
}

func TestSerialize_NewOrderOptionalFields(t *testing.T) {
	tif := core.GTX
	wt := core.WorkingContractPrice
	op := NewOrder{
		Timestamp:        testTimestamp,
		Symbol:           "BTCUSDT",
		Side:             core.SideSell,
		PositionSide:     core.PositionShort,
		Type:             core.TypeStop,
		Quantity:         apd.New(15, -1),
		Price:            apd.New(4200050, -2),
		TimeInForce:      &tif,
		StopPrice:        apd.New(42100, 0),
		ReduceOnly:       Ptr(true),
		NewClientOrderID: "my-order_1",
		WorkingType:      &wt,
		PriceProtect:     Ptr(false),
		ResponseType:     core.RespResult,
		RecvWindow:       2500,
	}

	assert.Equal(t,
		"timestamp=1700000000000&symbol=BTCUSDT&side=SELL&positionSide=SHORT&type=STOP"+
			"&quantity=1.5&price=42000.50&timeInForce=GTX&stopPrice=42100"+
			"&closePosition=false&reduceOnly=true&newClientOrderId=my-order_1"+
			"&workingType=CONTRACT_PRICE&priceProtect=false&newOrderRespType=RESULT&recvWindow=2500",
		Serialize(op))
}

func TestSerialize_PercentEncoding(t *testing.T) {
	op := CancelOrder{
		Timestamp:         testTimestamp,
		Symbol:            "BTCUSDT",
		OrigClientOrderID: "a b&c=d/+",
	}

	query, err := Build(op, "abc")
	require.NoError(t, err)

	prefix, sig := splitSignature(t, query)
	assert.Equal(t,
		"timestamp=1700000000000&symbol=BTCUSDT&origClientOrderId=a+b%26c%3Dd%2F%2B&recvWindow=5000",
		prefix)
	assert.Equal(t, Sign(prefix, "abc"), sig)
}

func TestSerialize_ParamOrderMatchesDeclaration(t *testing.T) {
	op := UserTrades{
		Timestamp: testTimestamp,
		Symbol:    "BTCUSDT",
		OrderID:   Ptr(int64(1)),
		StartTime: Ptr(int64(2)),
		EndTime:   Ptr(int64(3)),
		Limit:     4,
		FromID:    Ptr(int64(5)),
	}

	assert.Equal(t,
		[]string{"timestamp", "symbol", "orderId", "startTime", "endTime", "limit", "fromId", "recvWindow"},
		op.Params().Keys())
	assert.Equal(t,
		"timestamp=1700000000000&symbol=BTCUSDT&orderId=1&startTime=2&endTime=3&limit=4&fromId=5&recvWindow=5000",
		Serialize(op))
}

func TestParseError(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantType core.ErrorType
		wantCode string
		wantMsg  string
	}{
		{"bad_signature", 400, `{"code":-1022,"msg":"Signature for this request is not valid."}`,
			core.ErrorTypeAuthentication, "-1022", "Signature for this request is not valid."},
		{"rate_limited", 429, `{"code":-1003,"msg":"Too many requests."}`,
			core.ErrorTypeRateLimit, "-1003", "Too many requests."},
		{"bad_param", 400, `{"code":-1102,"msg":"Mandatory parameter 'symbol' was not sent."}`,
			core.ErrorTypeBadRequest, "-1102", "Mandatory parameter 'symbol' was not sent."},
		{"margin", 400, `{"code":-2019,"msg":"Margin is insufficient."}`,
			core.ErrorTypeInsufficientFunds, "-2019", "Margin is insufficient."},
		{"unknown_order", 400, `{"code":-2011,"msg":"Unknown order sent."}`,
			core.ErrorTypeNotFound, "-2011", "Unknown order sent."},
		{"reduce_only", 400, `{"code":-2022,"msg":"ReduceOnly Order is rejected."}`,
			core.ErrorTypeInvalidOrder, "-2022", "ReduceOnly Order is rejected."},
		{"precision", 400, `{"code":-4014,"msg":"Price not increased by tick size."}`,
			core.ErrorTypeInvalidOrder, "-4014", "Price not increased by tick size."},
		{"unmapped_code_uses_status", 503, `{"code":-1001,"msg":"Internal error"}`,
			core.ErrorTypeServerError, "-1001", "Internal error"},
		{"html_body", 502, `<html>Bad Gateway</html>`,
			core.ErrorTypeServerError, "HTTP_ERROR", "HTTP error: 502 Bad Gateway"},
		{"ip_banned", 418, ``,
			core.ErrorTypeRateLimit, "HTTP_ERROR", "HTTP error: 418 I'm a teapot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parseError(&core.Response{StatusCode: tt.status, Body: []byte(tt.body)})

			assert.Equal(t, Name, err.Exchange)
			assert.Equal(t, tt.status, err.StatusCode)
			assert.Equal(t, tt.wantType, err.Type)
			assert.Equal(t, tt.wantCode, err.Code)
			assert.Equal(t, tt.wantMsg, err.Message)
			assert.Equal(t, []byte(tt.body), err.Body)
		})
	}
}
