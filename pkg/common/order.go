package common

import (
	"errors"
	"fmt"

	"github.com/peter-kozarec/tradekit/pkg/utility/fixed"
)

type OrderType int

const (
	OrderTypeMarket OrderType = iota
	OrderTypeLimit
)

func (t OrderType) String() string {
	switch t {
	case OrderTypeMarket:
		return "market"
	case OrderTypeLimit:
		return "limit"
	default:
		return "unknown"
	}
}

var (
	ErrInvalidQuantity   = errors.New("order quantity must be positive")
	ErrInvalidLimitPrice = errors.New("limit price must be positive")
)

// Order is a closed union over the supported order variants. The type tag
// selects the variant; Price is only meaningful for limit orders.
type Order struct {
	Type     OrderType   `json:"type"`
	Quantity int         `json:"quantity"`
	Price    fixed.Point `json:"price,omitempty"`
}

func NewMarketOrder(quantity int) (Order, error) {
	if quantity <= 0 {
		return Order{}, ErrInvalidQuantity
	}
	return Order{Type: OrderTypeMarket, Quantity: quantity}, nil
}

func NewLimitOrder(quantity int, price fixed.Point) (Order, error) {
	if quantity <= 0 {
		return Order{}, ErrInvalidQuantity
	}
	if price.Lte(fixed.Zero) {
		return Order{}, ErrInvalidLimitPrice
	}
	return Order{Type: OrderTypeLimit, Quantity: quantity, Price: price}, nil
}

// Describe renders a human-readable execution summary for the order.
func (o Order) Describe() string {
	switch o.Type {
	case OrderTypeLimit:
		return fmt.Sprintf("limit order for %d units at %s", o.Quantity, o.Price)
	default:
		return fmt.Sprintf("market order for %d units", o.Quantity)
	}
}
