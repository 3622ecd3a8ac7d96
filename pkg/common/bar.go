package common

import (
	"time"

	"go.uber.org/zap"

	"github.com/peter-kozarec/tradekit/pkg/utility/fixed"
)

// Bar is one OHLCV observation of a symbol.
type Bar struct {
	Symbol    string        `json:"symbol,omitempty"`
	TimeStamp time.Time     `json:"ts"`
	Period    time.Duration `json:"period,omitempty"`
	Open      fixed.Point   `json:"open"`
	High      fixed.Point   `json:"high"`
	Low       fixed.Point   `json:"low"`
	Close     fixed.Point   `json:"close"`
	Volume    fixed.Point   `json:"volume"`
}

func (b Bar) Fields() []zap.Field {
	return []zap.Field{
		zap.String("symbol", b.Symbol),
		zap.Time("ts", b.TimeStamp),
		zap.String("open", b.Open.String()),
		zap.String("high", b.High.String()),
		zap.String("low", b.Low.String()),
		zap.String("close", b.Close.String()),
		zap.String("volume", b.Volume.String()),
	}
}
