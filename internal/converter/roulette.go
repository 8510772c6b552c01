package converter

import (
	dto "roulette_backend/internal/api/dto/roulette"
	"roulette_backend/internal/model"
	"roulette_backend/internal/roulette"
)

func ToBetResolution(req dto.ResolveRequest) model.BetResolution {
	var position int
	if req.Position != nil {
		position = *req.Position
	}
	return model.BetResolution{
		Position:    position,
		OutcomeName: req.Outcome,
		Stake:       req.Stake,
	}
}

func ToSpinResponse(res model.SpinResult) dto.SpinResponse {
	return dto.SpinResponse{
		ID:        res.ID.String(),
		Position:  res.Position,
		Pocket:    res.Pocket,
		Outcomes:  ToOutcomes(res.Outcomes),
		CreatedAt: res.CreatedAt,
	}
}

func ToBinResponse(view model.BinView) dto.BinResponse {
	return dto.BinResponse{
		Position: view.Position,
		Pocket:   view.Pocket,
		Outcomes: ToOutcomes(view.Outcomes),
	}
}

func ToResolveResponse(res model.ResolutionResult) dto.ResolveResponse {
	return dto.ResolveResponse{
		Outcome: toOutcome(res.Outcome),
		Stake:   res.Stake,
		Win:     res.Win,
		Payout:  res.Payout,
	}
}

func ToHistoryResponse(spins []model.SpinResult) dto.HistoryResponse {
	result := make([]dto.SpinResponse, len(spins))
	for i, s := range spins {
		result[i] = ToSpinResponse(s)
	}
	return dto.HistoryResponse{Spins: result}
}

func ToStatsResponse(stats model.WheelStats) dto.StatsResponse {
	return dto.StatsResponse{
		TotalSpins:  stats.TotalSpins,
		Hits:        stats.Hits[:],
		WindowSize:  stats.WindowSize,
		WindowSpins: stats.WindowSpins,
		ChiSquare:   stats.ChiSquare,
		Suspicious:  stats.Suspicious,
	}
}

func ToOutcomes(outcomes []roulette.Outcome) []dto.Outcome {
	result := make([]dto.Outcome, len(outcomes))
	for i, o := range outcomes {
		result[i] = toOutcome(o)
	}
	return result
}

func toOutcome(o roulette.Outcome) dto.Outcome {
	return dto.Outcome{
		Name:  o.Name(),
		Odds:  o.Odds(),
		Label: o.String(),
	}
}
