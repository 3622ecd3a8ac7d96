package risk

import (
	"errors"
	"fmt"

	"github.com/peter-kozarec/tradekit/pkg/utility/fixed"
)

var ErrInvalidStopLoss = errors.New("stop loss price must be below the entry price")

// PositionSize returns the number of units to trade so that a stop-out
// loses exactly riskPerTrade percent of the account balance.
func PositionSize(accountBalance, riskPerTrade, entryPrice, stopLossPrice fixed.Point) (fixed.Point, error) {
	if stopLossPrice.Gte(entryPrice) {
		return fixed.Point{}, ErrInvalidStopLoss
	}

	riskAmount, err := accountBalance.MulChecked(riskPerTrade.Div(fixed.Hundred))
	if err != nil {
		return fixed.Point{}, fmt.Errorf("risk amount: %w", err)
	}
	riskPerUnit, err := entryPrice.SubChecked(stopLossPrice)
	if err != nil {
		return fixed.Point{}, fmt.Errorf("risk per unit: %w", err)
	}

	size, err := riskAmount.DivChecked(riskPerUnit)
	if err != nil {
		return fixed.Point{}, fmt.Errorf("position size: %w", err)
	}
	return size, nil
}
