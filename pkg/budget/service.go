package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/centavo/centavo/pkg/category"
	"github.com/centavo/centavo/pkg/transaction"
)

type Service interface {
	// GetStatus aggregates the period's transactions against the category
	// tree. The window is half-open: [from, to).
	GetStatus(ctx context.Context, from, to time.Time) ([]CategoryStatus, error)
}

type ServiceImpl struct {
	categories   category.Service
	transactions transaction.Service
}

func NewService(categories category.Service, transactions transaction.Service) *ServiceImpl {
	return &ServiceImpl{categories: categories, transactions: transactions}
}

func (s *ServiceImpl) GetStatus(ctx context.Context, from, to time.Time) ([]CategoryStatus, error) {
	forest, err := s.categories.GetTree(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	transactions, err := s.transactions.GetForPeriod(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}
	return Aggregate(forest, transactions), nil
}
