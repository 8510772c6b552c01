package model

import (
	"roulette_backend/internal/roulette"
	"time"
)

// Состояние колеса для контроля честности
type WheelState struct {
	TotalSpins int                    // Сколько всего спинов сделано
	Hits       [roulette.BinCount]int // Выпадения по ячейкам за все время

	Window      []int                  // Окно последних выпавших ячеек
	WindowHits  [roulette.BinCount]int // Выпадения по ячейкам в окне
	WindowSize  int                    // Размер окна
	CheckPeriod int                    // Проверка раз в N спинов

	ChiSquare  float64 // Хи-квадрат по окну на последней проверке
	Suspicious bool    // Распределение в окне подозрительно далеко от равномерного

	Alerts []AlertLog // Лог срабатываний
}

// Лог срабатывания проверки
type AlertLog struct {
	Timestamp  time.Time
	ChiSquare  float64
	WindowSize int
	Reason     string
}
