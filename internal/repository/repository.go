package repository

import (
	"context"
	"roulette_backend/internal/model"
)

type SpinRepository interface {
	SaveSpin(ctx context.Context, spin *model.SpinResult) error
	ListSpins(ctx context.Context, limit int) ([]model.SpinRecord, error)
}

type SpinStatsRepository interface {
	UpdateState(position int) (checkDue bool)
	SmartCheck() bool
	Stats() model.WheelStats
}
