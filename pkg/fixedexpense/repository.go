package fixedexpense

import (
	"context"
	"fmt"
	"time"

	"github.com/centavo/centavo/pkg/money"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

type Repository interface {
	Store(ctx context.Context, userId int, e FixedExpense) (int, error)
	GetAll(ctx context.Context, userId int) ([]FixedExpense, error)
	FindAutoCreate(ctx context.Context, userId int) ([]FixedExpense, error)
	Update(ctx context.Context, userId int, e FixedExpense) (bool, error)
	MarkAutoCreated(ctx context.Context, userId int, expenseId int, dueDate time.Time) error
	Delete(ctx context.Context, userId int, expenseId int) (bool, error)
}

type RepositoryImpl struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r RepositoryImpl) Store(ctx context.Context, userId int, e FixedExpense) (int, error) {
	query := `INSERT INTO fixed_expense (description, amount_cents, due_day, auto_create, category_id, account_id, user_id)
				VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`

	var id int
	err := r.db.QueryRow(ctx, query,
		e.Description,
		int64(e.Amount),
		e.DueDay,
		e.AutoCreate,
		e.CategoryId,
		e.AccountId,
		userId,
	).Scan(&id)
	if err != nil {
		err := fmt.Errorf("could not store fixed expense: %w", err)
		log.Error(err)
		return 0, err
	}
	return id, nil
}

func (r RepositoryImpl) GetAll(ctx context.Context, userId int) ([]FixedExpense, error) {
	return r.find(ctx, userId, false)
}

func (r RepositoryImpl) FindAutoCreate(ctx context.Context, userId int) ([]FixedExpense, error) {
	return r.find(ctx, userId, true)
}

func (r RepositoryImpl) find(ctx context.Context, userId int, autoCreateOnly bool) ([]FixedExpense, error) {
	query := `SELECT id, description, amount_cents, due_day, auto_create, category_id, account_id, last_auto_created
				FROM fixed_expense WHERE user_id = $1`
	if autoCreateOnly {
		query += ` AND auto_create`
	}
	query += ` ORDER BY due_day, id`

	rows, err := r.db.Query(ctx, query, userId)
	if err != nil {
		err := fmt.Errorf("could not query fixed expenses: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var expenses []FixedExpense
	for rows.Next() {
		e, err := scanFixedExpense(rows)
		if err != nil {
			log.Error(err)
			return nil, err
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return expenses, nil
}

func scanFixedExpense(row pgx.Row) (FixedExpense, error) {
	var e FixedExpense
	var amountCents int64
	if err := row.Scan(&e.Id, &e.Description, &amountCents, &e.DueDay, &e.AutoCreate, &e.CategoryId, &e.AccountId, &e.LastAutoCreated); err != nil {
		return FixedExpense{}, fmt.Errorf("could not scan fixed expense: %w", err)
	}
	e.Amount = money.Cents(amountCents)
	return e, nil
}

func (r RepositoryImpl) Update(ctx context.Context, userId int, e FixedExpense) (bool, error) {
	query := `UPDATE fixed_expense SET description = $1, amount_cents = $2, due_day = $3, auto_create = $4,
					category_id = $5, account_id = $6
				WHERE id = $7 AND user_id = $8`
	result, err := r.db.Exec(ctx, query,
		e.Description,
		int64(e.Amount),
		e.DueDay,
		e.AutoCreate,
		e.CategoryId,
		e.AccountId,
		e.Id,
		userId,
	)
	if err != nil {
		err := fmt.Errorf("could not update fixed expense: %w", err)
		log.Error(err)
		return false, err
	}
	return result.RowsAffected() == 1, nil
}

func (r RepositoryImpl) MarkAutoCreated(ctx context.Context, userId int, expenseId int, dueDate time.Time) error {
	query := `UPDATE fixed_expense SET last_auto_created = $1 WHERE id = $2 AND user_id = $3`
	_, err := r.db.Exec(ctx, query, dueDate, expenseId, userId)
	if err != nil {
		err := fmt.Errorf("could not mark fixed expense as auto created: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r RepositoryImpl) Delete(ctx context.Context, userId int, expenseId int) (bool, error) {
	query := `DELETE FROM fixed_expense WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(ctx, query, expenseId, userId)
	if err != nil {
		err := fmt.Errorf("could not delete fixed expense: %w", err)
		log.Error(err)
		return false, err
	}
	return result.RowsAffected() == 1, nil
}
