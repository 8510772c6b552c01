package spin_stats_repo

import (
	"roulette_backend/internal/model"
	repoModel "roulette_backend/internal/repository/spin_stats_repo/model"
	"roulette_backend/internal/roulette"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	// criticalChiSquare Критическое значение хи-квадрат для 37 степеней свободы при p = 0.001
	criticalChiSquare = 69.35
	// normalChiSquare Значение при p = 0.05, ниже него снимаем флаг
	normalChiSquare = 52.19
	// minExpectedHits Минимальное ожидаемое число попаданий в ячейку, чтобы критерий имел смысл
	minExpectedHits = 5
)

// Реализация репозитория для хранения статистики колеса
type StateRepo struct {
	mtx    sync.RWMutex
	state  repoModel.WheelState
	logger *zap.Logger
}

// NewSpinStatsRepository Конструктор репозитория с пустой статистикой
func NewSpinStatsRepository(windowSize, checkPeriod int, logger *zap.Logger) *StateRepo {
	return &StateRepo{
		state: repoModel.WheelState{
			Window:      make([]int, 0, windowSize),
			WindowSize:  windowSize,
			CheckPeriod: checkPeriod,
			Alerts:      make([]repoModel.AlertLog, 0),
		},
		logger: logger,
	}
}

// WheelState Возвращает копию состояния
func (r *StateRepo) WheelState() repoModel.WheelState {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	state := r.state
	state.Window = append([]int(nil), r.state.Window...)
	state.Alerts = append([]repoModel.AlertLog(nil), r.state.Alerts...)
	return state
}

// UpdateState Учет выпавшей ячейки.
// Возвращает true, если этот спин закрыл очередной период CheckPeriod и пора вызвать SmartCheck
func (r *StateRepo) UpdateState(position int) bool {
	if position < 0 || position >= roulette.BinCount {
		return false
	}

	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.TotalSpins++
	r.state.Hits[position]++

	r.state.Window = append(r.state.Window, position)
	r.state.WindowHits[position]++

	// Поддерживаем размер окна
	if len(r.state.Window) > r.state.WindowSize {
		r.state.WindowHits[r.state.Window[0]]--
		r.state.Window = r.state.Window[1:]
	}

	return r.state.CheckPeriod > 0 && r.state.TotalSpins%r.state.CheckPeriod == 0
}

// SmartCheck Считает хи-квадрат по окну. Вызывается, когда UpdateState сообщил о конце периода.
// Возвращает true, если флаг Suspicious изменился
func (r *StateRepo) SmartCheck() bool {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if len(r.state.Window) < minExpectedHits*roulette.BinCount {
		return false
	}

	r.state.ChiSquare = chiSquare(r.state.WindowHits, len(r.state.Window))

	// Входим в режим подозрения
	if !r.state.Suspicious && r.state.ChiSquare > criticalChiSquare {
		r.state.Suspicious = true
		r.alert("распределение в окне далеко от равномерного")
		r.logger.Warn("wheel distribution is suspicious",
			zap.Float64("chi_square", r.state.ChiSquare),
			zap.Int("window", len(r.state.Window)),
			zap.Int("total_spins", r.state.TotalSpins),
		)
		return true
	}

	// Выходим, когда распределение вернулось к норме
	if r.state.Suspicious && r.state.ChiSquare < normalChiSquare {
		r.state.Suspicious = false
		r.alert("распределение вернулось к норме")
		r.logger.Info("wheel distribution is back to normal",
			zap.Float64("chi_square", r.state.ChiSquare),
			zap.Int("window", len(r.state.Window)),
		)
		return true
	}

	return false
}

// Stats Статистика для сервиса
func (r *StateRepo) Stats() model.WheelStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	return model.WheelStats{
		TotalSpins:  r.state.TotalSpins,
		Hits:        r.state.Hits,
		WindowSize:  r.state.WindowSize,
		WindowSpins: len(r.state.Window),
		ChiSquare:   r.state.ChiSquare,
		Suspicious:  r.state.Suspicious,
	}
}

func (r *StateRepo) alert(reason string) {
	r.state.Alerts = append(r.state.Alerts, repoModel.AlertLog{
		Timestamp:  time.Now(),
		ChiSquare:  r.state.ChiSquare,
		WindowSize: len(r.state.Window),
		Reason:     reason,
	})
}

// chiSquare Критерий согласия с равномерным распределением по 38 ячейкам
func chiSquare(hits [roulette.BinCount]int, total int) float64 {
	if total == 0 {
		return 0
	}
	expected := float64(total) / roulette.BinCount

	var sum float64
	for _, h := range hits {
		d := float64(h) - expected
		sum += d * d / expected
	}
	return sum
}
