package projection

import (
	"context"
	"fmt"
	"time"

	"github.com/centavo/centavo/internal/utils"
	"github.com/centavo/centavo/pkg/debt"
	"github.com/centavo/centavo/pkg/fixedexpense"
	"github.com/centavo/centavo/pkg/income"
	"github.com/centavo/centavo/pkg/money"
	"github.com/centavo/centavo/pkg/user"
	"github.com/centavo/centavo/pkg/workunit"
)

// DefaultHoursPerDay is the distribution rate assumed for work units when
// the caller does not supply one.
const DefaultHoursPerDay = 8 * time.Hour

type Service interface {
	// Project merges all recurring sources into a chronological sequence of
	// entries inside [from, to). Work units are distributed starting at
	// from with perDay hours a day; skipWeekends passes Saturdays and
	// Sundays over.
	Project(ctx context.Context, from, to time.Time, perDay time.Duration, skipWeekends bool) ([]Entry, error)
}

type ServiceImpl struct {
	fixedExpenses fixedexpense.Repository
	incomes       income.Repository
	debts         debt.Repository
	workUnits     workunit.Repository
	clock         utils.Clock
}

func NewService(
	fixedExpenses fixedexpense.Repository,
	incomes income.Repository,
	debts debt.Repository,
	workUnits workunit.Repository,
	clock utils.Clock,
) *ServiceImpl {
	return &ServiceImpl{
		fixedExpenses: fixedExpenses,
		incomes:       incomes,
		debts:         debts,
		workUnits:     workUnits,
		clock:         clock,
	}
}

func (s *ServiceImpl) Project(ctx context.Context, from, to time.Time, perDay time.Duration, skipWeekends bool) ([]Entry, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	if perDay <= 0 {
		perDay = DefaultHoursPerDay
	}

	fixedExpenses, err := s.fixedExpenses.GetAll(ctx, userId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch fixed expenses: %w", err)
	}
	incomes, err := s.incomes.GetAll(ctx, userId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch income sources: %w", err)
	}
	debts, err := s.debts.GetAll(ctx, userId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch debts: %w", err)
	}
	units, err := s.workUnits.GetAll(ctx, userId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch work units: %w", err)
	}

	var allocations []WorkUnitAllocation
	for _, u := range units {
		allocations = append(allocations, allocatePrice(u, perDay, skipWeekends, from)...)
	}

	return Compose(fixedExpenses, incomes, debts, allocations, from, to, s.clock.Now()), nil
}

// allocatePrice distributes a work unit's estimated hours over days starting
// at start and splits its price across those days in proportion to the hours,
// with the final day absorbing rounding so the shares sum to the price
// exactly.
func allocatePrice(u workunit.WorkUnit, perDay time.Duration, skipWeekends bool, start time.Time) []WorkUnitAllocation {
	days := workunit.Distribute(u.EstimatedHours, perDay, skipWeekends, start)
	if len(days) == 0 {
		return nil
	}

	allocations := make([]WorkUnitAllocation, 0, len(days))
	var allocated money.Cents
	for i, d := range days {
		// proportion in whole seconds; multiplying cents by nanoseconds
		// would overflow int64 for realistic prices
		share := money.Cents(int64(u.Price) * int64(d.Hours/time.Second) / int64(u.EstimatedHours/time.Second))
		if i == len(days)-1 {
			share = u.Price - allocated
		}
		allocated += share
		allocations = append(allocations, WorkUnitAllocation{
			WorkUnitId: u.Id,
			CategoryId: u.CategoryId,
			Date:       d.Date,
			Amount:     share,
		})
	}
	return allocations
}
