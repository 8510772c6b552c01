package roulette

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
)

const (
	// BinCount Количество ячеек американского колеса: 1-36, 0 и 00
	BinCount = 38
	// ZeroPosition Ячейка "0"
	ZeroPosition = 0
	// DoubleZeroPosition Ячейка "00"
	DoubleZeroPosition = 37
)

var ErrPositionOutOfRange = errors.New("bin position out of range")

// Wheel содержит 38 ячеек и генератор случайных чисел для выбора одной из них.
// Ячейки заполняются один раз через BinBuilder, после этого только читаются.
// Спин не потокобезопасен: пересев и выбор - две отдельные операции.
type Wheel struct {
	bins [BinCount]*Bin
	src  *rand.PCG
	rng  *rand.Rand
}

func NewWheel() *Wheel {
	w := &Wheel{}
	for i := range w.bins {
		w.bins[i] = NewBin()
	}
	w.src = rand.NewPCG(0, 0)
	w.rng = rand.New(w.src)
	return w
}

// AddOutcome добавляет исход в ячейку position
func (w *Wheel) AddOutcome(position int, o Outcome) error {
	if err := checkPosition(position); err != nil {
		return err
	}
	w.bins[position].Merge(NewBin(o))
	return nil
}

// Bin возвращает ячейку по номеру. Ячейку нельзя менять вне фазы построения
func (w *Wheel) Bin(position int) (*Bin, error) {
	if err := checkPosition(position); err != nil {
		return nil, err
	}
	return w.bins[position], nil
}

// Seed задает состояние генератора. Нужен для воспроизводимых спинов
func (w *Wheel) Seed(seed1, seed2 uint64) {
	w.src.Seed(seed1, seed2)
}

// Choose выбирает номер ячейки без пересева генератора
func (w *Wheel) Choose() int {
	return w.rng.IntN(BinCount)
}

// Choice выбирает ячейку без пересева генератора
func (w *Wheel) Choice() *Bin {
	return w.bins[w.Choose()]
}

// NextPosition пересевает генератор из crypto/rand и выбирает номер ячейки
func (w *Wheel) NextPosition() (int, error) {
	var seed [16]byte
	if _, err := crand.Read(seed[:]); err != nil {
		return 0, fmt.Errorf("read wheel seed: %w", err)
	}
	w.Seed(binary.LittleEndian.Uint64(seed[:8]), binary.LittleEndian.Uint64(seed[8:]))
	return w.Choose(), nil
}

// Next - спин колеса: пересев генератора и случайная ячейка
func (w *Wheel) Next() (*Bin, error) {
	position, err := w.NextPosition()
	if err != nil {
		return nil, err
	}
	return w.bins[position], nil
}

func (w *Wheel) Len() int {
	return len(w.bins)
}

// Outcomes возвращает все различные исходы колеса, отсортированные по имени
func (w *Wheel) Outcomes() []Outcome {
	all := NewBin()
	for _, b := range w.bins {
		all.Merge(b)
	}
	return all.Outcomes()
}

// PocketName возвращает подпись ячейки: "0", "00" или номер
func PocketName(position int) string {
	switch position {
	case ZeroPosition:
		return "0"
	case DoubleZeroPosition:
		return "00"
	default:
		return strconv.Itoa(position)
	}
}

// Positions возвращает номера ячеек, в которых есть исход o
func (w *Wheel) Positions(o Outcome) []int {
	var positions []int
	for i, b := range w.bins {
		if b.Contains(o) {
			positions = append(positions, i)
		}
	}
	return positions
}

func checkPosition(position int) error {
	if position < 0 || position >= BinCount {
		return fmt.Errorf("%w: %d", ErrPositionOutOfRange, position)
	}
	return nil
}
