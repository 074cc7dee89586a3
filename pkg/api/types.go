package api

import (
	"math"
	"strconv"

	"github.com/uhyunpark/tradebook/pkg/app/core"
)

// API response types for REST endpoints and WebSocket messages

// Number is a float64 that survives JSON encoding when it is not finite.
// The registry stores amounts and prices verbatim, so NaN and ±Inf can reach the view;
// they are written as the strings "NaN", "+Inf" and "-Inf".
type Number float64

func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	switch {
	case math.IsNaN(f):
		return []byte(`"NaN"`), nil
	case math.IsInf(f, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Inf"`), nil
	}
	return strconv.AppendFloat(nil, f, 'f', -1, 64), nil
}

// ==============================
// REST Response Types
// ==============================

// OrderInfo is one stored order
type OrderInfo struct {
	ID       uint64    `json:"id"`
	Side     core.Side `json:"side"` // "buy" or "sell"
	Amount   Number    `json:"amount"`
	Price    Number    `json:"price"`
	Notional Number    `json:"notional"` // amount * price
}

func toOrderInfo(o core.Order) OrderInfo {
	return OrderInfo{
		ID:       o.ID,
		Side:     o.Side,
		Amount:   Number(o.Amount),
		Price:    Number(o.Price),
		Notional: Number(o.Notional()),
	}
}

func toOrderInfos(orders []core.Order) []OrderInfo {
	out := make([]OrderInfo, len(orders))
	for i, o := range orders {
		out[i] = toOrderInfo(o)
	}
	return out
}

// BookSummary aggregates both sides
type BookSummary struct {
	Total        int    `json:"total"`
	BuyCount     int    `json:"buyCount"`
	SellCount    int    `json:"sellCount"`
	BuyNotional  Number `json:"buyNotional"`
	SellNotional Number `json:"sellNotional"`
}

// ErrorResponse is returned for all errors
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ==============================
// WebSocket Message Types
// ==============================

// WSMessage is the envelope for control messages ("subscribed", "unsubscribed", "error")
type WSMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// WSSubscribeRequest is sent by client to subscribe to channels
type WSSubscribeRequest struct {
	Op       string   `json:"op"`       // "subscribe" or "unsubscribe"
	Channels []string `json:"channels"` // "orders:buy", "orders:sell"
}

// OrderUpdate is broadcast when an order is submitted
type OrderUpdate struct {
	Type    string    `json:"type"` // "order"
	Channel string    `json:"channel"`
	Order   OrderInfo `json:"order"`
}

// OrdersChannel is the feed channel for one side.
func OrdersChannel(side core.Side) string {
	return "orders:" + side.String()
}
