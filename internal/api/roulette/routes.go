package roulette

import "github.com/go-chi/chi/v5"

// Routes вешает эндпоинты рулетки на роутер
func (h *Handler) Routes(r chi.Router) {
	r.Post("/spin", h.Spin)
	r.Get("/bins/{position}", h.Bin)
	r.Get("/outcomes", h.Outcomes)
	r.Post("/resolve", h.Resolve)
	r.Get("/history", h.History)
	r.Get("/stats", h.Stats)
}
