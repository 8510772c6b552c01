package roulette

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const (
	// Строки сетки 1-36
	rows = 12
	// Колонки сетки 1-36
	columns = 3

	straightOdds   = 35
	splitOdds      = 17
	streetOdds     = 11
	cornerOdds     = 8
	lineOdds       = 5
	columnOdds     = 2
	dozenOdds      = 2
	evenMoneyOdds  = 1
	zeroOdds       = 35
	lowHighBorder  = 18
	dozenSize      = 12
	dozenCount     = 3
	numbersOnTable = rows * columns
)

// Имена ставок 1:1
const (
	Red   = "Red"
	Black = "Black"
	Even  = "Even"
	Odd   = "Odd"
	Low   = "Low"
	High  = "High"
)

// Красные номера, все остальные 1-36 черные
var redNumbers = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true, 12: true,
	14: true, 16: true, 18: true, 19: true, 21: true, 23: true,
	25: true, 27: true, 30: true, 32: true, 34: true, 36: true,
}

// BinBuilder создает исходы всех ставок и раскладывает их по ячейкам колеса.
// Состояния не хранит.
type BinBuilder struct{}

func NewBinBuilder() BinBuilder {
	return BinBuilder{}
}

// BuildBins заполняет все 38 ячеек колеса.
// Если построение упало на середине, колесо нужно выбросить и собрать заново
func (bb BinBuilder) BuildBins(w *Wheel) error {
	generators := []struct {
		name string
		fn   func(*Wheel) error
	}{
		{"straight", bb.generateStraightBets},
		{"split", bb.generateSplitBets},
		{"street", bb.generateStreetBets},
		{"corner", bb.generateCornerBets},
		{"line", bb.generateLineBets},
		{"column", bb.generateColumnBets},
		{"dozen", bb.generateDozenBets},
		{"even money", bb.generateEvenMoneyBets},
		{"zero", bb.generateZeroBet},
		{"double zero", bb.generateDoubleZeroBet},
	}

	for _, g := range generators {
		if err := g.fn(w); err != nil {
			return fmt.Errorf("generate %s bets: %w", g.name, err)
		}
	}
	return nil
}

// NewBuiltWheel создает колесо и сразу заполняет его
func NewBuiltWheel() (*Wheel, error) {
	w := NewWheel()
	if err := NewBinBuilder().BuildBins(w); err != nil {
		return nil, err
	}
	return w, nil
}

// Номер в сетке: строка row 0-11, колонка column 1-3
func gridNumber(row, column int) int {
	return columns*row + column
}

// generateStraightBets ставки на один номер
func (bb BinBuilder) generateStraightBets(w *Wheel) error {
	for n := 1; n <= numbersOnTable; n++ {
		if err := w.AddOutcome(n, NewOutcome(StraightName(n), straightOdds)); err != nil {
			return err
		}
	}
	return nil
}

// generateSplitBets ставки на два соседних номера
func (bb BinBuilder) generateSplitBets(w *Wheel) error {
	// Соседи в одной строке: 1-2 и 2-3
	for row := 0; row < rows; row++ {
		for column := 1; column < columns; column++ {
			n := gridNumber(row, column)
			if err := addToAll(w, NewOutcome(SplitName(n, n+1), splitOdds), n, n+1); err != nil {
				return err
			}
		}
	}

	// Соседи в одной колонке: n и n+3
	for n := 1; n <= numbersOnTable-columns; n++ {
		if err := addToAll(w, NewOutcome(SplitName(n, n+columns), splitOdds), n, n+columns); err != nil {
			return err
		}
	}
	return nil
}

// generateStreetBets ставки на строку из трех номеров
func (bb BinBuilder) generateStreetBets(w *Wheel) error {
	for row := 0; row < rows; row++ {
		n := gridNumber(row, 1)
		numbers := []int{n, n + 1, n + 2}
		if err := addToAll(w, NewOutcome(betName(numbers...), streetOdds), numbers...); err != nil {
			return err
		}
	}
	return nil
}

// generateCornerBets ставки на квадрат 2x2
func (bb BinBuilder) generateCornerBets(w *Wheel) error {
	for row := 0; row < rows-1; row++ {
		for column := 1; column < columns; column++ {
			n := gridNumber(row, column)
			numbers := []int{n, n + 1, n + columns, n + columns + 1}
			if err := addToAll(w, NewOutcome(betName(numbers...), cornerOdds), numbers...); err != nil {
				return err
			}
		}
	}
	return nil
}

// generateLineBets ставки на две соседние строки (6 номеров)
func (bb BinBuilder) generateLineBets(w *Wheel) error {
	for row := 0; row < rows-1; row++ {
		n := gridNumber(row, 1)
		numbers := make([]int, 0, 2*columns)
		for i := 0; i < 2*columns; i++ {
			numbers = append(numbers, n+i)
		}
		if err := addToAll(w, NewOutcome(betName(numbers...), lineOdds), numbers...); err != nil {
			return err
		}
	}
	return nil
}

// generateColumnBets ставки на колонку (12 номеров)
func (bb BinBuilder) generateColumnBets(w *Wheel) error {
	for column := 1; column <= columns; column++ {
		outcome := NewOutcome(ColumnName(column), columnOdds)
		for row := 0; row < rows; row++ {
			if err := w.AddOutcome(gridNumber(row, column), outcome); err != nil {
				return err
			}
		}
	}
	return nil
}

// generateDozenBets ставки на дюжину: 1-12, 13-24, 25-36
func (bb BinBuilder) generateDozenBets(w *Wheel) error {
	for dozen := 0; dozen < dozenCount; dozen++ {
		outcome := NewOutcome(DozenName(dozen+1), dozenOdds)
		for i := 1; i <= dozenSize; i++ {
			if err := w.AddOutcome(dozenSize*dozen+i, outcome); err != nil {
				return err
			}
		}
	}
	return nil
}

// generateEvenMoneyBets ставки 1:1. 0 и 00 в них не участвуют
func (bb BinBuilder) generateEvenMoneyBets(w *Wheel) error {
	red := NewOutcome(Red, evenMoneyOdds)
	black := NewOutcome(Black, evenMoneyOdds)
	even := NewOutcome(Even, evenMoneyOdds)
	odd := NewOutcome(Odd, evenMoneyOdds)
	low := NewOutcome(Low, evenMoneyOdds)
	high := NewOutcome(High, evenMoneyOdds)

	for n := 1; n <= numbersOnTable; n++ {
		outcomes := make([]Outcome, 0, 3)

		if n <= lowHighBorder {
			outcomes = append(outcomes, low)
		} else {
			outcomes = append(outcomes, high)
		}

		if n%2 == 0 {
			outcomes = append(outcomes, even)
		} else {
			outcomes = append(outcomes, odd)
		}

		if redNumbers[n] {
			outcomes = append(outcomes, red)
		} else {
			outcomes = append(outcomes, black)
		}

		for _, o := range outcomes {
			if err := w.AddOutcome(n, o); err != nil {
				return err
			}
		}
	}
	return nil
}

func (bb BinBuilder) generateZeroBet(w *Wheel) error {
	return w.AddOutcome(ZeroPosition, NewOutcome(PocketName(ZeroPosition), zeroOdds))
}

func (bb BinBuilder) generateDoubleZeroBet(w *Wheel) error {
	return w.AddOutcome(DoubleZeroPosition, NewOutcome(PocketName(DoubleZeroPosition), zeroOdds))
}

func addToAll(w *Wheel, o Outcome, positions ...int) error {
	for _, p := range positions {
		if err := w.AddOutcome(p, o); err != nil {
			return err
		}
	}
	return nil
}

// IsRed проверяет цвет номера 1-36
func IsRed(n int) bool {
	return redNumbers[n]
}

func StraightName(n int) string {
	return strconv.Itoa(n)
}

// SplitName имя сплита не зависит от порядка номеров: SplitName(5, 2) == SplitName(2, 5)
func SplitName(a, b int) string {
	return betName(a, b)
}

// StreetName имя стрита по строке 0-11
func StreetName(row int) string {
	n := gridNumber(row, 1)
	return betName(n, n+1, n+2)
}

func ColumnName(column int) string {
	return "Column " + strconv.Itoa(column)
}

func DozenName(dozen int) string {
	return "Dozen " + strconv.Itoa(dozen)
}

// betName собирает имя ставки на несколько номеров вида "{1 - 2 - 4 - 5}".
// Номера сортируются, чтобы одна и та же ставка всегда получала одно имя
func betName(numbers ...int) string {
	sorted := append([]int(nil), numbers...)
	sort.Ints(sorted)

	parts := make([]string, len(sorted))
	for i, n := range sorted {
		parts[i] = strconv.Itoa(n)
	}
	return "{" + strings.Join(parts, " - ") + "}"
}
