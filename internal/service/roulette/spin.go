package roulette

import (
	"context"
	"fmt"
	"roulette_backend/internal/model"
	engine "roulette_backend/internal/roulette"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Spin выполняет спин колеса и сохраняет результат
func (s *serv) Spin(ctx context.Context) (*model.SpinResult, error) {
	position, err := s.nextPosition()
	if err != nil {
		return nil, err
	}

	bin, err := s.wheel.Bin(position)
	if err != nil {
		return nil, err
	}

	res := &model.SpinResult{
		ID:        uuid.New(),
		Position:  position,
		Pocket:    engine.PocketName(position),
		Outcomes:  bin.Outcomes(),
		CreatedAt: time.Now().UTC(),
	}

	// Спин и его исходы пишутся одной транзакцией
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.spinRepo.SaveSpin(txCtx, res)
	})
	if err != nil {
		return nil, fmt.Errorf("save spin: %w", err)
	}

	// Обновляем статистику, раз в период проверяем распределение
	if s.statsRepo.UpdateState(position) {
		s.statsRepo.SmartCheck()
	}

	s.logger.Debug("wheel spun",
		zap.String("spin_id", res.ID.String()),
		zap.String("pocket", res.Pocket),
		zap.Int("outcomes", len(res.Outcomes)),
	)

	return res, nil
}

func (s *serv) nextPosition() (int, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.fixedSeed {
		return s.wheel.Choose(), nil
	}
	return s.wheel.NextPosition()
}
