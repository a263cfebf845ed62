package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type AlertKind string

const (
	AlertRising  AlertKind = "rising"
	AlertFalling AlertKind = "falling"
)

type Alert struct {
	Symbol    string          `json:"symbol"`
	Kind      AlertKind       `json:"kind"`
	ChangePct decimal.Decimal `json:"changePct"`
	Message   string          `json:"message"`
	At        time.Time       `json:"at"`
}
