package spin_repo

import (
	"context"
	"roulette_backend/internal/model"
	"roulette_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	spinsTable   = "spins"
	colID        = "id"
	colPosition  = "position"
	colPocket    = "pocket"
	colCreatedAt = "created_at"

	outcomesTable = "spin_outcomes"
	colSpinID     = "spin_id"
	colName       = "name"
	colOdds       = "odds"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewSpinRepository(dbc *pgxpool.Pool) repository.SpinRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// SaveSpin - сохраняет спин и все выигравшие на нем исходы.
// Если в контексте есть транзакция менеджера - пишет в нее
func (r *repo) SaveSpin(ctx context.Context, spin *model.SpinResult) error {
	tr := r.getter.DefaultTrOrDB(ctx, r.dbc)

	// Формируем запрос
	query := sq.Insert(spinsTable).
		Columns(colID, colPosition, colPocket, colCreatedAt).
		Values(spin.ID, spin.Position, spin.Pocket, spin.CreatedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	if _, err = tr.Exec(ctx, sqlStr, args...); err != nil {
		return err
	}

	if len(spin.Outcomes) == 0 {
		return nil
	}

	// Все исходы одной вставкой
	outcomesQuery := sq.Insert(outcomesTable).
		Columns(colSpinID, colName, colOdds).
		PlaceholderFormat(sq.Dollar)
	for _, o := range spin.Outcomes {
		outcomesQuery = outcomesQuery.Values(spin.ID, o.Name(), o.Odds())
	}

	sqlStr, args, err = outcomesQuery.ToSql()
	if err != nil {
		return err
	}

	_, err = tr.Exec(ctx, sqlStr, args...)
	return err
}

// ListSpins - последние limit спинов, новые первыми
func (r *repo) ListSpins(ctx context.Context, limit int) ([]model.SpinRecord, error) {
	tr := r.getter.DefaultTrOrDB(ctx, r.dbc)

	query := sq.Select(colID, colPosition, colPocket, colCreatedAt).
		From(spinsTable).
		OrderBy(colCreatedAt + " DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := tr.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]model.SpinRecord, 0, limit)
	for rows.Next() {
		var rec model.SpinRecord
		if err := rows.Scan(&rec.ID, &rec.Position, &rec.Pocket, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
