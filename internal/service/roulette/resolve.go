package roulette

import (
	"context"
	"fmt"
	"roulette_backend/internal/model"
	"roulette_backend/internal/service"

	"github.com/shopspring/decimal"
)

// Resolve проверяет, выиграла ли ставка на исход при остановке колеса на req.Position.
// Выплата считается только для выигрыша, ставка в нее не входит
func (s *serv) Resolve(_ context.Context, req model.BetResolution) (*model.ResolutionResult, error) {
	if !req.Stake.IsPositive() {
		return nil, service.ErrInvalidStake
	}

	outcome, ok := s.catalogue[req.OutcomeName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", service.ErrUnknownOutcome, req.OutcomeName)
	}

	bin, err := s.wheel.Bin(req.Position)
	if err != nil {
		return nil, err
	}

	res := &model.ResolutionResult{
		Outcome: outcome,
		Stake:   req.Stake,
		Win:     bin.Contains(outcome),
		Payout:  decimal.Zero,
	}
	if res.Win {
		res.Payout = outcome.WinAmount(req.Stake)
	}

	return res, nil
}
