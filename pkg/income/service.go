package income

import (
	"context"
	"fmt"

	"github.com/centavo/centavo/pkg/recurrence"
	"github.com/centavo/centavo/pkg/user"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	GetAll(ctx context.Context) ([]Source, error)
	Create(ctx context.Context, s Source) (Source, error)
	Update(ctx context.Context, s Source) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type ServiceImpl struct {
	repo Repository
}

func NewService(repo Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) GetAll(ctx context.Context) ([]Source, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetAll(ctx, userId)
}

func (s *ServiceImpl) Create(ctx context.Context, source Source) (Source, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Source{}, fmt.Errorf("failed to get current user: %w", err)
	}
	source.PayDay = recurrence.ClampDueDay(source.PayDay)

	id, err := s.repo.Store(ctx, userId, source)
	if err != nil {
		return Source{}, err
	}
	source.Id = id
	return source, nil
}

func (s *ServiceImpl) Update(ctx context.Context, source Source) (bool, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get current user: %w", err)
	}
	source.PayDay = recurrence.ClampDueDay(source.PayDay)

	updated, err := s.repo.Update(ctx, userId, source)
	if err != nil {
		return false, err
	}
	if !updated {
		log.Warnf("income source not updated, probably because it does not exist (%d) or the user (%d) is not the owner", source.Id, userId)
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
		log.Warnf("income source not deleted, probably because it does not exist (%d) or the user (%d) is not the owner", id, userId)
		return false, nil
	}
	return true, nil
}
