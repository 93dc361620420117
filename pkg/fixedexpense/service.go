package fixedexpense

import (
	"context"
	"fmt"

	"github.com/centavo/centavo/pkg/recurrence"
	"github.com/centavo/centavo/pkg/user"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	GetAll(ctx context.Context) ([]FixedExpense, error)
	Create(ctx context.Context, e FixedExpense) (FixedExpense, error)
	Update(ctx context.Context, e FixedExpense) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type ServiceImpl struct {
	repo Repository
}

func NewService(repo Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) GetAll(ctx context.Context) ([]FixedExpense, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetAll(ctx, userId)
}

func (s *ServiceImpl) Create(ctx context.Context, e FixedExpense) (FixedExpense, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return FixedExpense{}, fmt.Errorf("failed to get current user: %w", err)
	}
	e.DueDay = recurrence.ClampDueDay(e.DueDay)

	id, err := s.repo.Store(ctx, userId, e)
	if err != nil {
		return FixedExpense{}, err
	}
	e.Id = id
	return e, nil
}

func (s *ServiceImpl) Update(ctx context.Context, e FixedExpense) (bool, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get current user: %w", err)
	}
	e.DueDay = recurrence.ClampDueDay(e.DueDay)

	updated, err := s.repo.Update(ctx, userId, e)
	if err != nil {
		return false, err
	}
	if !updated {
		log.Warnf("fixed expense not updated, probably because it does not exist (%d) or the user (%d) is not the owner", e.Id, userId)
		return false, nil
	}
	return true, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id int) (bool, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get current user: %w", err)
	}

	deleted, err := s.repo.Delete(ctx, userId, id)
	if err != nil {
		return false, err
	}
	if !deleted {
		log.Warnf("fixed expense not deleted, probably because it does not exist (%d) or the user (%d) is not the owner", id, userId)
		return false, nil
	}
	return true, nil
}
