package debt

import (
	"context"
	"errors"
	"fmt"

	"github.com/centavo/centavo/internal/event_bus"
	"github.com/centavo/centavo/internal/utils"
	"github.com/centavo/centavo/pkg/recurrence"
	"github.com/centavo/centavo/pkg/user"
	log "github.com/sirupsen/logrus"
)

var (
	ErrDebtNotFound        = errors.New("debt not found")
	ErrInvalidInstallment  = errors.New("installment number outside the schedule")
	ErrInvalidInstallments = errors.New("installmentsTotal must be at least 1")
)

type Service interface {
	GetAll(ctx context.Context) ([]Debt, error)
	Create(ctx context.Context, d Debt) (Debt, error)
	Update(ctx context.Context, d Debt) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
	// GetSchedule derives the debt's installment list from its stored
	// payment counter.
	GetSchedule(ctx context.Context, debtId int) ([]Installment, bool, error)
	// ToggleInstallment flips a single installment between paid and pending,
	// persists the resulting counter, and returns the regenerated schedule.
	ToggleInstallment(ctx context.Context, debtId int, number int) ([]Installment, error)
}

type ServiceImpl struct {
	repo  Repository
	bus   *event_bus.EventBus
	clock utils.Clock
}

func NewService(repo Repository, bus *event_bus.EventBus, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{repo: repo, bus: bus, clock: clock}
}

func (s *ServiceImpl) GetAll(ctx context.Context) ([]Debt, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetAll(ctx, userId)
}

func (s *ServiceImpl) Create(ctx context.Context, d Debt) (Debt, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Debt{}, fmt.Errorf("failed to get current user: %w", err)
	}
	if d.InstallmentsTotal < 1 {
		return Debt{}, ErrInvalidInstallments
	}
	d.DueDay = recurrence.ClampDueDay(d.DueDay)
	if d.InstallmentsPaid < 0 {
		d.InstallmentsPaid = 0
	}
	if d.InstallmentsPaid > d.InstallmentsTotal {
		d.InstallmentsPaid = d.InstallmentsTotal
	}

	id, err := s.repo.Store(ctx, userId, d)
	if err != nil {
		return Debt{}, err
	}
	d.Id = id
	return d, nil
}

func (s *ServiceImpl) Update(ctx context.Context, d Debt) (bool, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get current user: %w", err)
	}
	if d.InstallmentsTotal < 1 {
		return false, ErrInvalidInstallments
	}
	d.DueDay = recurrence.ClampDueDay(d.DueDay)

	updated, err := s.repo.Update(ctx, userId, d)
	if err != nil {
		return false, err
	}
	if !updated {
		log.Warnf("debt not updated, probably because it does not exist (%d) or the user (%d) is not the owner", d.Id, userId)
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
		log.Warnf("debt not deleted, probably because it does not exist (%d) or the user (%d) is not the owner", id, userId)
		return false, nil
	}
	return true, nil
}

func (s *ServiceImpl) GetSchedule(ctx context.Context, debtId int) ([]Installment, bool, error) {
	d, err := s.get(ctx, debtId)
	if err != nil {
		return nil, false, err
	}

	installments, inconsistent := Schedule(d, s.clock.Now())
	if inconsistent {
		log.Warnf("debt %d has %d installments paid out of %d, clamping", d.Id, d.InstallmentsPaid, d.InstallmentsTotal)
	}
	return installments, inconsistent, nil
}

func (s *ServiceImpl) ToggleInstallment(ctx context.Context, debtId int, number int) ([]Installment, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}

	d, err := s.get(ctx, debtId)
	if err != nil {
		return nil, err
	}

	paid, ok := TogglePaid(d, number)
	if !ok {
		return nil, ErrInvalidInstallment
	}

	updated, err := s.repo.UpdateInstallmentsPaid(ctx, userId, debtId, paid)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrDebtNotFound
	}
	d.InstallmentsPaid = paid

	if paid == d.InstallmentsTotal {
		if err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.DebtPaidOffEvent, event_bus.DebtPaidOff{
			DebtId: d.Id,
			Name:   d.Name,
		})); err != nil {
			log.Warnf("debt %d fully paid but event delivery failed: %v", d.Id, err)
		}
	}

	installments, _ := Schedule(d, s.clock.Now())
	return installments, nil
}

func (s *ServiceImpl) get(ctx context.Context, debtId int) (Debt, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Debt{}, fmt.Errorf("failed to get current user: %w", err)
	}

	d, found, err := s.repo.Get(ctx, userId, debtId)
	if err != nil {
		return Debt{}, err
	}
	if !found {
		return Debt{}, ErrDebtNotFound
	}
	return d, nil
}
