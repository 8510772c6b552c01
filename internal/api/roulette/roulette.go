package roulette

import (
	"errors"
	"net/http"
	dto "roulette_backend/internal/api/dto/roulette"
	"roulette_backend/internal/converter"
	engine "roulette_backend/internal/roulette"
	"roulette_backend/internal/service"
	"roulette_backend/pkg/req"
	"roulette_backend/pkg/resp"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv   service.RouletteService
	Logger *zap.Logger
}

type Handler struct {
	serv   service.RouletteService
	logger *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, logger: deps.Logger}
}

// Spin крутит колесо и возвращает выигравшую ячейку со всеми ее исходами
func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	result, err := h.serv.Spin(r.Context())
	if err != nil {
		h.writeError(w, "spin", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(*result))
}

// Bin возвращает исходы ячейки по номеру 0-37
func (h *Handler) Bin(w http.ResponseWriter, r *http.Request) {
	position, err := strconv.Atoi(chi.URLParam(r, "position"))
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "position must be an integer")
		return
	}

	view, err := h.serv.Bin(position)
	if err != nil {
		h.writeError(w, "bin", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBinResponse(*view))
}

// Outcomes каталог всех ставок колеса
func (h *Handler) Outcomes(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, dto.OutcomesResponse{
		Outcomes: converter.ToOutcomes(h.serv.Outcomes()),
	})
}

// Resolve проверяет ставку игрока на выигравшей ячейке
func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.ResolveRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if payload.Position == nil {
		resp.WriteError(w, http.StatusBadRequest, "position is required")
		return
	}

	result, err := h.serv.Resolve(r.Context(), converter.ToBetResolution(payload))
	if err != nil {
		h.writeError(w, "resolve", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToResolveResponse(*result))
}

// History последние спины, ?limit=N
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	var limit int
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			resp.WriteError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = parsed
	}

	spins, err := h.serv.History(r.Context(), limit)
	if err != nil {
		h.writeError(w, "history", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToHistoryResponse(spins))
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.serv.Stats()))
}

// writeError Ошибки клиента - 400, все остальное - 500 с записью в лог
func (h *Handler) writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, engine.ErrPositionOutOfRange),
		errors.Is(err, service.ErrUnknownOutcome),
		errors.Is(err, service.ErrInvalidStake):
		resp.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("roulette request failed", zap.String("op", op), zap.Error(err))
		resp.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
