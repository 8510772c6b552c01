package roulette

import (
	"context"
	"fmt"
	"roulette_backend/internal/model"
	engine "roulette_backend/internal/roulette"
)

func (s *serv) Bin(position int) (*model.BinView, error) {
	bin, err := s.wheel.Bin(position)
	if err != nil {
		return nil, err
	}

	return &model.BinView{
		Position: position,
		Pocket:   engine.PocketName(position),
		Outcomes: bin.Outcomes(),
	}, nil
}

func (s *serv) Outcomes() []engine.Outcome {
	return s.wheel.Outcomes()
}

// History последние спины. limit вне (0, historyLimit] заменяется на historyLimit
func (s *serv) History(ctx context.Context, limit int) ([]model.SpinResult, error) {
	if limit <= 0 || limit > s.historyLimit {
		limit = s.historyLimit
	}

	records, err := s.spinRepo.ListSpins(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list spins: %w", err)
	}

	result := make([]model.SpinResult, 0, len(records))
	for _, rec := range records {
		bin, err := s.wheel.Bin(rec.Position)
		if err != nil {
			return nil, fmt.Errorf("spin %s: %w", rec.ID, err)
		}
		result = append(result, model.SpinResult{
			ID:        rec.ID,
			Position:  rec.Position,
			Pocket:    rec.Pocket,
			Outcomes:  bin.Outcomes(),
			CreatedAt: rec.CreatedAt,
		})
	}

	return result, nil
}

func (s *serv) Stats() model.WheelStats {
	return s.statsRepo.Stats()
}
