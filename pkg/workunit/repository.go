package workunit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/centavo/centavo/pkg/money"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

type Repository interface {
	Store(ctx context.Context, userId int, w WorkUnit) (int, error)
	GetAll(ctx context.Context, userId int) ([]WorkUnit, error)
	Get(ctx context.Context, userId int, workUnitId int) (WorkUnit, bool, error)
	Update(ctx context.Context, userId int, w WorkUnit) (bool, error)
	Delete(ctx context.Context, userId int, workUnitId int) (bool, error)
}

type RepositoryImpl struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r RepositoryImpl) Store(ctx context.Context, userId int, w WorkUnit) (int, error) {
	query := `INSERT INTO work_unit (name, price_cents, estimated_seconds, category_id, account_id, user_id)
				VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`

	var id int
	err := r.db.QueryRow(ctx, query,
		w.Name,
		int64(w.Price),
		int64(w.EstimatedHours.Seconds()),
		w.CategoryId,
		w.AccountId,
		userId,
	).Scan(&id)
	if err != nil {
		err := fmt.Errorf("could not store work unit: %w", err)
		log.Error(err)
		return 0, err
	}
	return id, nil
}

func (r RepositoryImpl) GetAll(ctx context.Context, userId int) ([]WorkUnit, error) {
	query := `SELECT id, name, price_cents, estimated_seconds, category_id, account_id
				FROM work_unit WHERE user_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, userId)
	if err != nil {
		err := fmt.Errorf("could not query work units: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var units []WorkUnit
	for rows.Next() {
		w, err := scanWorkUnit(rows)
		if err != nil {
			log.Error(err)
			return nil, err
		}
		units = append(units, w)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return units, nil
}

func (r RepositoryImpl) Get(ctx context.Context, userId int, workUnitId int) (WorkUnit, bool, error) {
	query := `SELECT id, name, price_cents, estimated_seconds, category_id, account_id
				FROM work_unit WHERE id = $1 AND user_id = $2`

	w, err := scanWorkUnit(r.db.QueryRow(ctx, query, workUnitId, userId))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return WorkUnit{}, false, nil
		}
		log.Error(err)
		return WorkUnit{}, false, err
	}
	return w, true, nil
}

func scanWorkUnit(row pgx.Row) (WorkUnit, error) {
	var w WorkUnit
	var priceCents, estimatedSeconds int64
	if err := row.Scan(&w.Id, &w.Name, &priceCents, &estimatedSeconds, &w.CategoryId, &w.AccountId); err != nil {
		return WorkUnit{}, fmt.Errorf("could not scan work unit: %w", err)
	}
	w.Price = money.Cents(priceCents)
	w.EstimatedHours = time.Duration(estimatedSeconds) * time.Second
	return w, nil
}

func (r RepositoryImpl) Update(ctx context.Context, userId int, w WorkUnit) (bool, error) {
	query := `UPDATE work_unit SET name = $1, price_cents = $2, estimated_seconds = $3, category_id = $4, account_id = $5
				WHERE id = $6 AND user_id = $7`
	result, err := r.db.Exec(ctx, query,
		w.Name,
		int64(w.Price),
		int64(w.EstimatedHours.Seconds()),
		w.CategoryId,
		w.AccountId,
		w.Id,
		userId,
	)
	if err != nil {
		err := fmt.Errorf("could not update work unit: %w", err)
		log.Error(err)
		return false, err
	}
	return result.RowsAffected() == 1, nil
}

func (r RepositoryImpl) Delete(ctx context.Context, userId int, workUnitId int) (bool, error) {
	query := `DELETE FROM work_unit WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(ctx, query, workUnitId, userId)
	if err != nil {
		err := fmt.Errorf("could not delete work unit: %w", err)
		log.Error(err)
		return false, err
	}
	return result.RowsAffected() == 1, nil
}
