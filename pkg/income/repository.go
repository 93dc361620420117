package income

import (
	"context"
	"fmt"

	"github.com/centavo/centavo/pkg/money"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

type Repository interface {
	Store(ctx context.Context, userId int, s Source) (int, error)
	GetAll(ctx context.Context, userId int) ([]Source, error)
	Update(ctx context.Context, userId int, s Source) (bool, error)
	Delete(ctx context.Context, userId int, sourceId int) (bool, error)
}

type RepositoryImpl struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r RepositoryImpl) Store(ctx context.Context, userId int, s Source) (int, error) {
	query := `INSERT INTO income_source (name, amount_cents, pay_day, category_id, account_id, user_id)
				VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`

	var id int
	err := r.db.QueryRow(ctx, query,
		s.Name,
		int64(s.Amount),
		s.PayDay,
		s.CategoryId,
		s.AccountId,
		userId,
	).Scan(&id)
	if err != nil {
		err := fmt.Errorf("could not store income source: %w", err)
		log.Error(err)
		return 0, err
	}
	return id, nil
}

func (r RepositoryImpl) GetAll(ctx context.Context, userId int) ([]Source, error) {
	query := `SELECT id, name, amount_cents, pay_day, category_id, account_id
				FROM income_source WHERE user_id = $1 ORDER BY pay_day, id`

	rows, err := r.db.Query(ctx, query, userId)
	if err != nil {
		err := fmt.Errorf("could not query income sources: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var sources []Source
	for rows.Next() {
		s, err := scanSource(rows)
		if err != nil {
			log.Error(err)
			return nil, err
		}
		sources = append(sources, s)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return sources, nil
}

func scanSource(row pgx.Row) (Source, error) {
	var s Source
	var amountCents int64
	if err := row.Scan(&s.Id, &s.Name, &amountCents, &s.PayDay, &s.CategoryId, &s.AccountId); err != nil {
		return Source{}, fmt.Errorf("could not scan income source: %w", err)
	}
	s.Amount = money.Cents(amountCents)
	return s, nil
}

func (r RepositoryImpl) Update(ctx context.Context, userId int, s Source) (bool, error) {
	query := `UPDATE income_source SET name = $1, amount_cents = $2, pay_day = $3, category_id = $4, account_id = $5
				WHERE id = $6 AND user_id = $7`
	result, err := r.db.Exec(ctx, query,
		s.Name,
		int64(s.Amount),
		s.PayDay,
		s.CategoryId,
		s.AccountId,
		s.Id,
		userId,
	)
	if err != nil {
		err := fmt.Errorf("could not update income source: %w", err)
		log.Error(err)
		return false, err
	}
	return result.RowsAffected() == 1, nil
}

func (r RepositoryImpl) Delete(ctx context.Context, userId int, sourceId int) (bool, error) {
	query := `DELETE FROM income_source WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(ctx, query, sourceId, userId)
	if err != nil {
		err := fmt.Errorf("could not delete income source: %w", err)
		log.Error(err)
		return false, err
	}
	return result.RowsAffected() == 1, nil
}
