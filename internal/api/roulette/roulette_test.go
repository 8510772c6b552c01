package roulette

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"roulette_backend/internal/model"
	engine "roulette_backend/internal/roulette"
	"roulette_backend/internal/service"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubService struct {
	wheel      *engine.Wheel
	spinErr    error
	historyReq int
}

func (s *stubService) Spin(context.Context) (*model.SpinResult, error) {
	if s.spinErr != nil {
		return nil, s.spinErr
	}
	bin, _ := s.wheel.Bin(5)
	return &model.SpinResult{
		ID:        uuid.MustParse("00000000-0000-0000-0000-000000000005"),
		Position:  5,
		Pocket:    "5",
		Outcomes:  bin.Outcomes(),
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}, nil
}

func (s *stubService) Bin(position int) (*model.BinView, error) {
	bin, err := s.wheel.Bin(position)
	if err != nil {
		return nil, err
	}
	return &model.BinView{Position: position, Pocket: engine.PocketName(position), Outcomes: bin.Outcomes()}, nil
}

func (s *stubService) Outcomes() []engine.Outcome {
	return s.wheel.Outcomes()
}

func (s *stubService) Resolve(_ context.Context, r model.BetResolution) (*model.ResolutionResult, error) {
	if !r.Stake.IsPositive() {
		return nil, service.ErrInvalidStake
	}
	if r.OutcomeName != engine.Red {
		return nil, service.ErrUnknownOutcome
	}
	o := engine.NewOutcome(engine.Red, 1)
	return &model.ResolutionResult{Outcome: o, Stake: r.Stake, Win: true, Payout: o.WinAmount(r.Stake)}, nil
}

func (s *stubService) History(_ context.Context, limit int) ([]model.SpinResult, error) {
	s.historyReq = limit
	return []model.SpinResult{}, nil
}

func (s *stubService) Stats() model.WheelStats {
	stats := model.WheelStats{TotalSpins: 1, WindowSize: 3800, WindowSpins: 1}
	stats.Hits[5] = 1
	return stats
}

func newRouter(t *testing.T, s *stubService) http.Handler {
	t.Helper()
	w, err := engine.NewBuiltWheel()
	require.NoError(t, err)
	s.wheel = w

	h := NewHandler(HandlerDeps{Serv: s, Logger: zap.NewNop()})
	r := chi.NewRouter()
	r.Route("/roulette", h.Routes)
	return r
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestSpinHandler(t *testing.T) {
	h := newRouter(t, &stubService{})

	rec := do(t, h, http.MethodPost, "/roulette/spin", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		ID       string `json:"id"`
		Pocket   string `json:"pocket"`
		Outcomes []struct {
			Name  string `json:"name"`
			Label string `json:"label"`
		} `json:"outcomes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "00000000-0000-0000-0000-000000000005", body.ID)
	assert.Equal(t, "5", body.Pocket)
	assert.Len(t, body.Outcomes, 17)
}

func TestSpinHandlerInternalError(t *testing.T) {
	h := newRouter(t, &stubService{spinErr: errors.New("db is down")})

	rec := do(t, h, http.MethodPost, "/roulette/spin", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "db is down")
}

func TestBinHandler(t *testing.T) {
	h := newRouter(t, &stubService{})

	rec := do(t, h, http.MethodGet, "/roulette/bins/37", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"pocket":"00"`)

	rec = do(t, h, http.MethodGet, "/roulette/bins/38", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodGet, "/roulette/bins/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOutcomesHandler(t *testing.T) {
	h := newRouter(t, &stubService{})

	rec := do(t, h, http.MethodGet, "/roulette/outcomes", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Outcomes []json.RawMessage `json:"outcomes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Outcomes, 152)
}

func TestResolveHandler(t *testing.T) {
	h := newRouter(t, &stubService{})

	cases := []struct {
		name   string
		body   string
		status int
	}{
		{name: "Win", body: `{"position":5,"outcome":"Red","stake":"2.5"}`, status: http.StatusOK},
		{name: "NumericStake", body: `{"position":5,"outcome":"Red","stake":2}`, status: http.StatusOK},
		{name: "MissingPosition", body: `{"outcome":"Red","stake":"1"}`, status: http.StatusBadRequest},
		{name: "UnknownOutcome", body: `{"position":5,"outcome":"Green","stake":"1"}`, status: http.StatusBadRequest},
		{name: "ZeroStake", body: `{"position":5,"outcome":"Red","stake":"0"}`, status: http.StatusBadRequest},
		{name: "BadJSON", body: `{`, status: http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/roulette/resolve", tc.body)
			assert.Equal(t, tc.status, rec.Code, rec.Body.String())
		})
	}

	rec := do(t, h, http.MethodPost, "/roulette/resolve", `{"position":5,"outcome":"Red","stake":"2.5"}`)
	var body struct {
		Win    bool            `json:"win"`
		Payout decimal.Decimal `json:"payout"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Win)
	assert.True(t, decimal.RequireFromString("2.5").Equal(body.Payout))
}

func TestHistoryHandler(t *testing.T) {
	s := &stubService{}
	h := newRouter(t, s)

	rec := do(t, h, http.MethodGet, "/roulette/history?limit=5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, s.historyReq)
	assert.JSONEq(t, `{"spins":[]}`, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/roulette/history?limit=x", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStatsHandler(t *testing.T) {
	h := newRouter(t, &stubService{})

	rec := do(t, h, http.MethodGet, "/roulette/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		TotalSpins int   `json:"total_spins"`
		Hits       []int `json:"hits"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.TotalSpins)
	require.Len(t, body.Hits, engine.BinCount)
	assert.Equal(t, 1, body.Hits[5])
}
