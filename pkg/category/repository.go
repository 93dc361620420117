package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/centavo/centavo/pkg/money"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

var ErrCategoryNotFound = errors.New("category not found")

type Repository interface {
	Store(ctx context.Context, userId int, category Category) (int, error)
	GetAll(ctx context.Context, userId int) ([]Category, error)
	Get(ctx context.Context, userId int, categoryId int) (Category, error)
	Update(ctx context.Context, userId int, category Category) (bool, error)
	UpdateLimit(ctx context.Context, userId int, categoryId int, limit money.Cents) (bool, error)
	HasChildren(ctx context.Context, userId int, categoryId int) (bool, error)
	Delete(ctx context.Context, userId int, categoryId int) (bool, error)
}

type RepositoryImpl struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r RepositoryImpl) Store(ctx context.Context, userId int, category Category) (int, error) {
	query := `INSERT INTO category (name, color, type, budget_limit_cents, parent_id, user_id)
				VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`

	var id int
	err := r.db.QueryRow(ctx, query,
		category.Name,
		category.Color,
		category.Type,
		int64(category.BudgetLimit),
		category.ParentId,
		userId,
	).Scan(&id)
	if err != nil {
		err := fmt.Errorf("could not store category: %w", err)
		log.Error(err)
		return 0, err
	}
	return id, nil
}

func (r RepositoryImpl) GetAll(ctx context.Context, userId int) ([]Category, error) {
	query := `SELECT id, name, color, type, budget_limit_cents, parent_id
				FROM category WHERE user_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, query, userId)
	if err != nil {
		err := fmt.Errorf("could not query categories: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var categories []Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			log.Error(err)
			return nil, err
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return categories, nil
}

func (r RepositoryImpl) Get(ctx context.Context, userId int, categoryId int) (Category, error) {
	query := `SELECT id, name, color, type, budget_limit_cents, parent_id
				FROM category WHERE id = $1 AND user_id = $2`
	row := r.db.QueryRow(ctx, query, categoryId, userId)
	c, err := scanCategory(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Category{}, ErrCategoryNotFound
	} else if err != nil {
		log.Error(err)
		return Category{}, err
	}
	return c, nil
}

func scanCategory(row pgx.Row) (Category, error) {
	var c Category
	var limitCents int64
	if err := row.Scan(&c.Id, &c.Name, &c.Color, &c.Type, &limitCents, &c.ParentId); err != nil {
		return Category{}, err
	}
	c.BudgetLimit = money.Cents(limitCents)
	return c, nil
}

func (r RepositoryImpl) Update(ctx context.Context, userId int, category Category) (bool, error) {
	query := `UPDATE category SET name = $1, color = $2, type = $3, parent_id = $4
				WHERE id = $5 AND user_id = $6`
	result, err := r.db.Exec(ctx, query,
		category.Name,
		category.Color,
		category.Type,
		category.ParentId,
		category.Id,
		userId,
	)
	if err != nil {
		err := fmt.Errorf("could not update category: %w", err)
		log.Error(err)
		return false, err
	}
	return result.RowsAffected() == 1, nil
}

func (r RepositoryImpl) UpdateLimit(ctx context.Context, userId int, categoryId int, limit money.Cents) (bool, error) {
	query := `UPDATE category SET budget_limit_cents = $1 WHERE id = $2 AND user_id = $3`
	result, err := r.db.Exec(ctx, query, int64(limit), categoryId, userId)
	if err != nil {
		err := fmt.Errorf("could not update category limit: %w", err)
		log.Error(err)
		return false, err
	}
	return result.RowsAffected() == 1, nil
}

func (r RepositoryImpl) HasChildren(ctx context.Context, userId int, categoryId int) (bool, error) {
	query := `SELECT COUNT(*) FROM category WHERE parent_id = $1 AND user_id = $2`
	var count int
	if err := r.db.QueryRow(ctx, query, categoryId, userId).Scan(&count); err != nil {
		err := fmt.Errorf("could not count child categories: %w", err)
		log.Error(err)
		return false, err
	}
	return count > 0, nil
}

func (r RepositoryImpl) Delete(ctx context.Context, userId int, categoryId int) (bool, error) {
	// Children keep their parent_id; the tree builder demotes them to roots
	// on the next read.
	query := `DELETE FROM category WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(ctx, query, categoryId, userId)
	if err != nil {
		err := fmt.Errorf("could not delete category: %w", err)
		log.Error(err)
		return false, err
	}
	return result.RowsAffected() == 1, nil
}
