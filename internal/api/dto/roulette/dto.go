package roulette

import (
	"time"

	"github.com/shopspring/decimal"
)

type Outcome struct {
	Name  string `json:"name"`  // Имя ставки: "17", "Red", "{1 - 2}"
	Odds  int    `json:"odds"`  // Коэффициент выплаты, odds:1
	Label string `json:"label"` // "Red (1:1)"
}

type SpinResponse struct {
	ID        string    `json:"id"`
	Position  int       `json:"position"` // 0-37, 37 = "00"
	Pocket    string    `json:"pocket"`
	Outcomes  []Outcome `json:"outcomes"` // Все исходы, которые выиграли на этом спине
	CreatedAt time.Time `json:"created_at"`
}

type BinResponse struct {
	Position int       `json:"position"`
	Pocket   string    `json:"pocket"`
	Outcomes []Outcome `json:"outcomes"`
}

type OutcomesResponse struct {
	Outcomes []Outcome `json:"outcomes"`
}

type ResolveRequest struct {
	Position *int            `json:"position"` // Выигравшая ячейка
	Outcome  string          `json:"outcome"`  // Имя исхода, на который поставил игрок
	Stake    decimal.Decimal `json:"stake"`    // Ставка (>0)
}

type ResolveResponse struct {
	Outcome Outcome         `json:"outcome"`
	Stake   decimal.Decimal `json:"stake"`
	Win     bool            `json:"win"`
	Payout  decimal.Decimal `json:"payout"` // Выигрыш без учета ставки, 0 при проигрыше
}

type HistoryResponse struct {
	Spins []SpinResponse `json:"spins"`
}

type StatsResponse struct {
	TotalSpins  int     `json:"total_spins"`
	Hits        []int   `json:"hits"` // Выпадения по ячейкам 0-37
	WindowSize  int     `json:"window_size"`
	WindowSpins int     `json:"window_spins"`
	ChiSquare   float64 `json:"chi_square"`
	Suspicious  bool    `json:"suspicious"`
}
