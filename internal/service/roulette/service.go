package roulette

import (
	"roulette_backend/internal/config"
	"roulette_backend/internal/repository"
	engine "roulette_backend/internal/roulette"
	"roulette_backend/internal/service"
	"sync"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"go.uber.org/zap"
)

type serv struct {
	// Колесо заполнено до создания сервиса и дальше только читается.
	// mtx защищает генератор: пересев и выбор ячейки не атомарны
	mtx       sync.Mutex
	wheel     *engine.Wheel
	fixedSeed bool

	// Каталог всех исходов колеса по имени
	catalogue map[string]engine.Outcome

	historyLimit int

	spinRepo  repository.SpinRepository
	statsRepo repository.SpinStatsRepository
	txManager trm.Manager
	logger    *zap.Logger
}

// NewRouletteService Создать сервис рулетки над уже построенным колесом
func NewRouletteService(
	cfg config.WheelConfig,
	wheel *engine.Wheel,
	spinRepo repository.SpinRepository,
	statsRepo repository.SpinStatsRepository,
	txManager trm.Manager,
	logger *zap.Logger,
) service.RouletteService {
	s := &serv{
		wheel:        wheel,
		catalogue:    make(map[string]engine.Outcome),
		historyLimit: cfg.HistoryLimit(),
		spinRepo:     spinRepo,
		statsRepo:    statsRepo,
		txManager:    txManager,
		logger:       logger,
	}

	for _, o := range wheel.Outcomes() {
		s.catalogue[o.Key()] = o
	}

	// Режим воспроизводимых спинов: генератор не пересевается
	if seed1, seed2, ok := cfg.FixedSeed(); ok {
		wheel.Seed(seed1, seed2)
		s.fixedSeed = true
		logger.Warn("wheel runs with fixed seed, spins are reproducible",
			zap.Uint64("seed1", seed1),
			zap.Uint64("seed2", seed2),
		)
	}

	return s
}
