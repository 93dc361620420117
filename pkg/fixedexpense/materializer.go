package fixedexpense

import (
	"context"
	"time"

	"github.com/centavo/centavo/internal/event_bus"
	"github.com/centavo/centavo/pkg/category"
	"github.com/centavo/centavo/pkg/recurrence"
	"github.com/centavo/centavo/pkg/transaction"
	"github.com/centavo/centavo/pkg/user"
	log "github.com/sirupsen/logrus"
)

// Materializer records the month's transaction for every auto-create fixed
// expense whose due day has been reached. It is driven by a ticker in the
// application and is safe to run repeatedly: each expense is materialized at
// most once per due date.
type Materializer struct {
	repo         Repository
	transactions transaction.Service
	users        user.Service
	bus          *event_bus.EventBus
}

func NewMaterializer(repo Repository, transactions transaction.Service, users user.Service, bus *event_bus.EventBus) *Materializer {
	return &Materializer{repo: repo, transactions: transactions, users: users, bus: bus}
}

// ProcessDue materializes all due auto-create expenses across all users and
// returns how many transactions were recorded. Failures are logged per
// expense; one broken expense does not stop the run.
func (m *Materializer) ProcessDue(ctx context.Context, now time.Time) (int, error) {
	users, err := m.users.GetAllUsers(ctx)
	if err != nil {
		return 0, err
	}

	processed := 0
	for _, u := range users {
		userCtx := user.WithUser(ctx, u)
		n, err := m.processUser(userCtx, u.Id, now)
		if err != nil {
			log.Errorf("failed to process fixed expenses for user %d: %v", u.Id, err)
			continue
		}
		processed += n
	}

	log.Debugf("fixed expense materialization complete, %d transaction(s) recorded", processed)
	return processed, nil
}

func (m *Materializer) processUser(ctx context.Context, userId int, now time.Time) (int, error) {
	expenses, err := m.repo.FindAutoCreate(ctx, userId)
	if err != nil {
		return 0, err
	}

	processed := 0
	for _, e := range expenses {
		dueDate := currentDueDate(e.DueDay, now)
		if now.Before(dueDate) {
			continue
		}
		if e.LastAutoCreated != nil && !e.LastAutoCreated.Before(dueDate) {
			continue
		}

		created, err := m.transactions.Create(ctx, transaction.Transaction{
			Date:        dueDate,
			Amount:      e.Amount,
			Type:        category.TypeExpense,
			Description: e.Description,
			CategoryId:  e.CategoryId,
			AccountId:   e.AccountId,
		})
		if err != nil {
			log.Errorf("failed to record transaction for fixed expense %d: %v", e.Id, err)
			continue
		}

		if err := m.repo.MarkAutoCreated(ctx, userId, e.Id, dueDate); err != nil {
			// The transaction exists; the next run may duplicate it. Surface loudly.
			log.Errorf("fixed expense %d materialized as transaction %d but could not be marked: %v", e.Id, created.Id, err)
			continue
		}

		if err := m.bus.Publish(event_bus.NewEvent(ctx, event_bus.FixedExpenseMaterializedEvent, event_bus.FixedExpenseMaterialized{
			FixedExpenseId: e.Id,
			TransactionId:  created.Id,
			DueDate:        dueDate,
		})); err != nil {
			log.Warnf("fixed expense %d materialized but event delivery failed: %v", e.Id, err)
		}

		processed++
		log.Infof("recorded transaction %d from fixed expense %q due %s", created.Id, e.Description, dueDate.Format("2006-01-02"))
	}
	return processed, nil
}

// currentDueDate resolves the expense's due date in the month of now,
// clipped to the month length.
func currentDueDate(dueDay int, now time.Time) time.Time {
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return recurrence.NthOccurrence(dueDay, firstOfMonth, 0)
}
