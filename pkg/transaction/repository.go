package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/centavo/centavo/pkg/money"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

type Repository interface {
	Store(ctx context.Context, userId int, t Transaction) (int, error)
	// FindByPeriod returns all transactions with from <= date < to.
	FindByPeriod(ctx context.Context, userId int, from, to time.Time) ([]Transaction, error)
	Update(ctx context.Context, userId int, t Transaction) (bool, error)
	Delete(ctx context.Context, userId int, transactionId int) (bool, error)
}

type RepositoryImpl struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r RepositoryImpl) Store(ctx context.Context, userId int, t Transaction) (int, error) {
	query := `INSERT INTO transaction (date, amount_cents, type, description, category_id, account_id, user_id)
				VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`

	var id int
	err := r.db.QueryRow(ctx, query,
		t.Date,
		int64(t.Amount),
		t.Type,
		t.Description,
		t.CategoryId,
		t.AccountId,
		userId,
	).Scan(&id)
	if err != nil {
		err := fmt.Errorf("could not store transaction: %w", err)
		log.Error(err)
		return 0, err
	}
	return id, nil
}

func (r RepositoryImpl) FindByPeriod(ctx context.Context, userId int, from, to time.Time) ([]Transaction, error) {
	query := `SELECT id, date, amount_cents, type, description, category_id, account_id
				FROM transaction
				WHERE user_id = $1 AND date >= $2 AND date < $3
				ORDER BY date, id`
	rows, err := r.db.Query(ctx, query, userId, from, to)
	if err != nil {
		err := fmt.Errorf("could not query transactions: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var transactions []Transaction
	for rows.Next() {
		var t Transaction
		var amountCents int64
		if err := rows.Scan(&t.Id, &t.Date, &amountCents, &t.Type, &t.Description, &t.CategoryId, &t.AccountId); err != nil {
			err := fmt.Errorf("could not scan transaction: %w", err)
			log.Error(err)
			return nil, err
		}
		t.Amount = money.Cents(amountCents)
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return transactions, nil
}

func (r RepositoryImpl) Update(ctx context.Context, userId int, t Transaction) (bool, error) {
	query := `UPDATE transaction SET date = $1, amount_cents = $2, type = $3, description = $4,
					category_id = $5, account_id = $6
				WHERE id = $7 AND user_id = $8`
	result, err := r.db.Exec(ctx, query,
		t.Date,
		int64(t.Amount),
		t.Type,
		t.Description,
		t.CategoryId,
		t.AccountId,
		t.Id,
		userId,
	)
	if err != nil {
		err := fmt.Errorf("could not update transaction: %w", err)
		log.Error(err)
		return false, err
	}
	return result.RowsAffected() == 1, nil
}

func (r RepositoryImpl) Delete(ctx context.Context, userId int, transactionId int) (bool, error) {
	query := `DELETE FROM transaction WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(ctx, query, transactionId, userId)
	if err != nil {
		err := fmt.Errorf("could not delete transaction: %w", err)
		log.Error(err)
		return false, err
	}
	return result.RowsAffected() == 1, nil
}
