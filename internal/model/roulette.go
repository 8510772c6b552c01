package model

import (
	"roulette_backend/internal/roulette"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SpinResult struct {
	ID        uuid.UUID
	Position  int
	Pocket    string
	Outcomes  []roulette.Outcome
	CreatedAt time.Time
}

// SpinRecord Запись спина в истории (без исходов, они восстанавливаются по колесу)
type SpinRecord struct {
	ID        uuid.UUID
	Position  int
	Pocket    string
	CreatedAt time.Time
}

type BinView struct {
	Position int
	Pocket   string
	Outcomes []roulette.Outcome
}

// BetResolution Проверка ставки игрока на выигравшей ячейке
type BetResolution struct {
	Position    int
	OutcomeName string
	Stake       decimal.Decimal
}

type ResolutionResult struct {
	Outcome roulette.Outcome
	Stake   decimal.Decimal
	Win     bool
	Payout  decimal.Decimal
}

// WheelStats Статистика выпадений ячеек
type WheelStats struct {
	TotalSpins  int
	Hits        [roulette.BinCount]int
	WindowSize  int
	WindowSpins int
	ChiSquare   float64
	Suspicious  bool
}
