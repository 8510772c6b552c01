package roulette

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Outcome - ставка с фиксированным коэффициентом выплаты.
// Два исхода считаются одним и тем же, если совпадают их имена,
// коэффициент в сравнении не участвует.
type Outcome struct {
	name string
	odds int
}

// NewOutcome создает исход. Валидации нет, конструктор не падает
func NewOutcome(name string, odds int) Outcome {
	return Outcome{name: name, odds: odds}
}

func (o Outcome) Name() string {
	return o.name
}

func (o Outcome) Odds() int {
	return o.odds
}

// WinAmount возвращает выигрыш для ставки stake: odds * stake
func (o Outcome) WinAmount(stake decimal.Decimal) decimal.Decimal {
	return stake.Mul(decimal.NewFromInt(int64(o.odds)))
}

// Equal сравнивает исходы только по имени
func (o Outcome) Equal(other Outcome) bool {
	return o.name == other.name
}

// Key - ключ для множеств и map, согласован с Equal
func (o Outcome) Key() string {
	return o.name
}

func (o Outcome) String() string {
	return fmt.Sprintf("%s (%d:1)", o.name, o.odds)
}
