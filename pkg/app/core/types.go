package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSide is returned by ParseSide for anything that is not a buy or sell.
var ErrUnknownSide = errors.New("unknown order side")

// Side is the direction of an order.
type Side uint8

const (
	Buy  Side = 1
	Sell Side = 2
)

// Sides lists both sides in display order.
var Sides = []Side{Buy, Sell}

func (s Side) String() string {
	switch s {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return "unknown"
	}
}

// Label is the capitalised form used by the text renderer ("Buy", "Sell").
func (s Side) Label() string {
	switch s {
	case Buy:
		return "Buy"
	case Sell:
		return "Sell"
	default:
		return "Unknown"
	}
}

// Valid reports whether s is Buy or Sell.
func (s Side) Valid() bool { return s == Buy || s == Sell }

// ParseSide accepts "buy"/"bid" and "sell"/"ask" in any case.
func ParseSide(v string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "buy", "bid":
		return Buy, nil
	case "sell", "ask":
		return Sell, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSide, v)
	}
}

// MarshalText encodes the side as "buy" or "sell". Invalid sides are an error.
func (s Side) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSide, uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText accepts anything ParseSide does.
func (s *Side) UnmarshalText(b []byte) error {
	v, err := ParseSide(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Order is one submitted order. The registry assigns ID; the remaining fields are
// stored exactly as submitted.
type Order struct {
	ID     uint64
	Side   Side
	Amount float64
	Price  float64
}

// Notional is amount * price.
func (o Order) Notional() float64 { return o.Amount * o.Price }
