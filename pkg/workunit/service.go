package workunit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/centavo/centavo/pkg/user"
	log "github.com/sirupsen/logrus"
)

var (
	ErrWorkUnitNotFound = errors.New("work unit not found")
	ErrInvalidHours     = errors.New("hours must be positive")
)

type Service interface {
	GetAll(ctx context.Context) ([]WorkUnit, error)
	Create(ctx context.Context, w WorkUnit) (WorkUnit, error)
	Update(ctx context.Context, w WorkUnit) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
	// Allocations spreads the unit's estimated hours over calendar days
	// starting at start.
	Allocations(ctx context.Context, workUnitId int, perDay time.Duration, skipWeekends bool, start time.Time) ([]DayAllocation, error)
}

type ServiceImpl struct {
	repo Repository
}

func NewService(repo Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) GetAll(ctx context.Context) ([]WorkUnit, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetAll(ctx, userId)
}

func (s *ServiceImpl) Create(ctx context.Context, w WorkUnit) (WorkUnit, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return WorkUnit{}, fmt.Errorf("failed to get current user: %w", err)
	}
	if w.EstimatedHours <= 0 {
		return WorkUnit{}, ErrInvalidHours
	}

	id, err := s.repo.Store(ctx, userId, w)
	if err != nil {
		return WorkUnit{}, err
	}
	w.Id = id
	return w, nil
}

func (s *ServiceImpl) Update(ctx context.Context, w WorkUnit) (bool, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get current user: %w", err)
	}
	if w.EstimatedHours <= 0 {
		return false, ErrInvalidHours
	}

	updated, err := s.repo.Update(ctx, userId, w)
	if err != nil {
		return false, err
	}
	if !updated {
		log.Warnf("work unit not updated, probably because it does not exist (%d) or the user (%d) is not the owner", w.Id, userId)
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
		log.Warnf("work unit not deleted, probably because it does not exist (%d) or the user (%d) is not the owner", id, userId)
		return false, nil
	}
	return true, nil
}

func (s *ServiceImpl) Allocations(ctx context.Context, workUnitId int, perDay time.Duration, skipWeekends bool, start time.Time) ([]DayAllocation, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	if perDay <= 0 {
		return nil, ErrInvalidHours
	}

	w, found, err := s.repo.Get(ctx, userId, workUnitId)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrWorkUnitNotFound
	}

	return Distribute(w.EstimatedHours, perDay, skipWeekends, start), nil
}
