package debt

import (
	"context"
	"errors"
	"fmt"

	"github.com/centavo/centavo/pkg/money"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

type Repository interface {
	Store(ctx context.Context, userId int, d Debt) (int, error)
	GetAll(ctx context.Context, userId int) ([]Debt, error)
	Get(ctx context.Context, userId int, debtId int) (Debt, bool, error)
	Update(ctx context.Context, userId int, d Debt) (bool, error)
	UpdateInstallmentsPaid(ctx context.Context, userId int, debtId int, installmentsPaid int) (bool, error)
	Delete(ctx context.Context, userId int, debtId int) (bool, error)
}

type RepositoryImpl struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r RepositoryImpl) Store(ctx context.Context, userId int, d Debt) (int, error) {
	query := `INSERT INTO debt (name, installments_total, installments_paid, first_installment_date, due_day,
					minimum_payment_cents, category_id, account_id, user_id)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`

	var id int
	err := r.db.QueryRow(ctx, query,
		d.Name,
		d.InstallmentsTotal,
		d.InstallmentsPaid,
		d.FirstInstallmentDate,
		d.DueDay,
		int64(d.MinimumPayment),
		d.CategoryId,
		d.AccountId,
		userId,
	).Scan(&id)
	if err != nil {
		err := fmt.Errorf("could not store debt: %w", err)
		log.Error(err)
		return 0, err
	}
	return id, nil
}

func (r RepositoryImpl) GetAll(ctx context.Context, userId int) ([]Debt, error) {
	query := `SELECT id, name, installments_total, installments_paid, first_installment_date, due_day,
					minimum_payment_cents, category_id, account_id
				FROM debt WHERE user_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, userId)
	if err != nil {
		err := fmt.Errorf("could not query debts: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var debts []Debt
	for rows.Next() {
		d, err := scanDebt(rows)
		if err != nil {
			log.Error(err)
			return nil, err
		}
		debts = append(debts, d)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return debts, nil
}

func (r RepositoryImpl) Get(ctx context.Context, userId int, debtId int) (Debt, bool, error) {
	query := `SELECT id, name, installments_total, installments_paid, first_installment_date, due_day,
					minimum_payment_cents, category_id, account_id
				FROM debt WHERE id = $1 AND user_id = $2`

	d, err := scanDebt(r.db.QueryRow(ctx, query, debtId, userId))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Debt{}, false, nil
		}
		log.Error(err)
		return Debt{}, false, err
	}
	return d, true, nil
}

func scanDebt(row pgx.Row) (Debt, error) {
	var d Debt
	var minimumPaymentCents int64
	if err := row.Scan(&d.Id, &d.Name, &d.InstallmentsTotal, &d.InstallmentsPaid, &d.FirstInstallmentDate,
		&d.DueDay, &minimumPaymentCents, &d.CategoryId, &d.AccountId); err != nil {
		return Debt{}, fmt.Errorf("could not scan debt: %w", err)
	}
	d.MinimumPayment = money.Cents(minimumPaymentCents)
	return d, nil
}

func (r RepositoryImpl) Update(ctx context.Context, userId int, d Debt) (bool, error) {
	query := `UPDATE debt SET name = $1, installments_total = $2, first_installment_date = $3, due_day = $4,
					minimum_payment_cents = $5, category_id = $6, account_id = $7
				WHERE id = $8 AND user_id = $9`
	result, err := r.db.Exec(ctx, query,
		d.Name,
		d.InstallmentsTotal,
		d.FirstInstallmentDate,
		d.DueDay,
		int64(d.MinimumPayment),
		d.CategoryId,
		d.AccountId,
		d.Id,
		userId,
	)
	if err != nil {
		err := fmt.Errorf("could not update debt: %w", err)
		log.Error(err)
		return false, err
	}
	return result.RowsAffected() == 1, nil
}

func (r RepositoryImpl) UpdateInstallmentsPaid(ctx context.Context, userId int, debtId int, installmentsPaid int) (bool, error) {
	query := `UPDATE debt SET installments_paid = $1 WHERE id = $2 AND user_id = $3`
	result, err := r.db.Exec(ctx, query, installmentsPaid, debtId, userId)
	if err != nil {
		err := fmt.Errorf("could not update debt installments: %w", err)
		log.Error(err)
		return false, err
	}
	return result.RowsAffected() == 1, nil
}

func (r RepositoryImpl) Delete(ctx context.Context, userId int, debtId int) (bool, error) {
	query := `DELETE FROM debt WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(ctx, query, debtId, userId)
	if err != nil {
		err := fmt.Errorf("could not delete debt: %w", err)
		log.Error(err)
		return false, err
	}
	return result.RowsAffected() == 1, nil
}
