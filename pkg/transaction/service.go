package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/centavo/centavo/internal/event_bus"
	"github.com/centavo/centavo/pkg/user"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	// GetForPeriod returns the user's transactions with from <= date < to.
	GetForPeriod(ctx context.Context, from, to time.Time) ([]Transaction, error)
	Create(ctx context.Context, t Transaction) (Transaction, error)
	Update(ctx context.Context, t Transaction) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type ServiceImpl struct {
	repo Repository
	bus  *event_bus.EventBus
}

func NewService(repo Repository, bus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{repo: repo, bus: bus}
}

func (s *ServiceImpl) GetForPeriod(ctx context.Context, from, to time.Time) ([]Transaction, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.FindByPeriod(ctx, userId, from, to)
}

func (s *ServiceImpl) Create(ctx context.Context, t Transaction) (Transaction, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Transaction{}, fmt.Errorf("failed to get current user: %w", err)
	}

	id, err := s.repo.Store(ctx, userId, t)
	if err != nil {
		return Transaction{}, err
	}
	t.Id = id

	if err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.TransactionRecordedEvent, event_bus.TransactionRecorded{
		Id:         t.Id,
		Date:       t.Date,
		Amount:     t.Amount,
		Type:       string(t.Type),
		CategoryId: t.CategoryId,
	})); err != nil {
		// Subscribers are side channels; their failures must not undo the write.
		log.Warnf("transaction %d stored but event delivery failed: %v", t.Id, err)
	}

	return t, nil
}

func (s *ServiceImpl) Update(ctx context.Context, t Transaction) (bool, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get current user: %w", err)
	}

	updated, err := s.repo.Update(ctx, userId, t)
	if err != nil {
		return false, err
	}
	if !updated {
		log.Warnf("transaction not updated, probably because it does not exist (%d) or the user (%d) is not the owner", t.Id, userId)
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
		log.Warnf("transaction not deleted, probably because it does not exist (%d) or the user (%d) is not the owner", id, userId)
		return false, nil
	}
	return true, nil
}
