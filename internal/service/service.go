package service

import (
	"context"
	"errors"
	"roulette_backend/internal/model"
	"roulette_backend/internal/roulette"
)

var (
	ErrUnknownOutcome = errors.New("unknown outcome")
	ErrInvalidStake   = errors.New("stake must be positive")
)

type RouletteService interface {
	Spin(ctx context.Context) (*model.SpinResult, error)
	Bin(position int) (*model.BinView, error)
	Outcomes() []roulette.Outcome
	Resolve(ctx context.Context, req model.BetResolution) (*model.ResolutionResult, error)
	History(ctx context.Context, limit int) ([]model.SpinResult, error)
	Stats() model.WheelStats
}
