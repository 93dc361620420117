package app

import (
	"github.com/centavo/centavo/internal/config"
	"github.com/centavo/centavo/internal/event_bus"
	"github.com/centavo/centavo/internal/utils"
	"github.com/centavo/centavo/pkg/budget"
	"github.com/centavo/centavo/pkg/category"
	"github.com/centavo/centavo/pkg/debt"
	"github.com/centavo/centavo/pkg/fixedexpense"
	"github.com/centavo/centavo/pkg/google"
	"github.com/centavo/centavo/pkg/income"
	"github.com/centavo/centavo/pkg/projection"
	"github.com/centavo/centavo/pkg/transaction"
	"github.com/centavo/centavo/pkg/user"
	"github.com/centavo/centavo/pkg/workunit"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	EventBus *event_bus.EventBus
	Clock    utils.Clock

	UserService user.Service
	UserHandler *user.Handler

	CategoryRepo    category.Repository
	CategoryService category.Service
	CategoryHandler *category.Handler

	TransactionRepo    transaction.Repository
	TransactionService transaction.Service
	TransactionHandler *transaction.Handler

	FixedExpenseRepo    fixedexpense.Repository
	FixedExpenseService fixedexpense.Service
	FixedExpenseHandler *fixedexpense.Handler
	Materializer        *fixedexpense.Materializer

	IncomeRepo    income.Repository
	IncomeService income.Service
	IncomeHandler *income.Handler

	DebtRepo    debt.Repository
	DebtService debt.Service
	DebtHandler *debt.Handler

	WorkUnitRepo    workunit.Repository
	WorkUnitService workunit.Service
	WorkUnitHandler *workunit.Handler

	BudgetService budget.Service
	CsvRenderer   *budget.CsvRendererImpl
	BudgetHandler *budget.Handler

	ProjectionService projection.Service
	ProjectionHandler *projection.Handler

	GoogleAuth    *google.GoogleAuth
	GoogleService google.Service
	GoogleHandler *google.Handler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *pgxpool.Pool, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.EventBus = event_bus.NewEventBus()
	deps.Clock = &utils.SystemClock{}

	deps.UserService = user.NewUserService(user.NewUserRepo(db))
	deps.UserHandler = user.NewHandler(deps.UserService)

	deps.CategoryRepo = category.NewRepository(db)
	deps.CategoryService = category.NewService(deps.CategoryRepo)
	deps.CategoryHandler = category.NewHandler(deps.CategoryService)

	deps.TransactionRepo = transaction.NewRepository(db)
	deps.TransactionService = transaction.NewService(deps.TransactionRepo, deps.EventBus)
	deps.TransactionHandler = transaction.NewHandler(deps.TransactionService)

	deps.FixedExpenseRepo = fixedexpense.NewRepository(db)
	deps.FixedExpenseService = fixedexpense.NewService(deps.FixedExpenseRepo)
	deps.FixedExpenseHandler = fixedexpense.NewHandler(deps.FixedExpenseService)
	deps.Materializer = fixedexpense.NewMaterializer(deps.FixedExpenseRepo, deps.TransactionService, deps.UserService, deps.EventBus)

	deps.IncomeRepo = income.NewRepository(db)
	deps.IncomeService = income.NewService(deps.IncomeRepo)
	deps.IncomeHandler = income.NewHandler(deps.IncomeService)

	deps.DebtRepo = debt.NewRepository(db)
	deps.DebtService = debt.NewService(deps.DebtRepo, deps.EventBus, deps.Clock)
	deps.DebtHandler = debt.NewHandler(deps.DebtService)

	deps.WorkUnitRepo = workunit.NewRepository(db)
	deps.WorkUnitService = workunit.NewService(deps.WorkUnitRepo)
	deps.WorkUnitHandler = workunit.NewHandler(deps.WorkUnitService)

	deps.BudgetService = budget.NewService(deps.CategoryService, deps.TransactionService)
	deps.CsvRenderer = budget.NewCsvRenderer()
	deps.BudgetHandler = budget.NewHandler(deps.BudgetService, deps.CsvRenderer)

	deps.ProjectionService = projection.NewService(deps.FixedExpenseRepo, deps.IncomeRepo, deps.DebtRepo, deps.WorkUnitRepo, deps.Clock)
	deps.ProjectionHandler = projection.NewHandler(deps.ProjectionService)

	deps.GoogleAuth = google.NewGoogleAuth(db, deps.UserService, cfg)
	deps.GoogleService = google.NewService(deps.GoogleAuth, deps.BudgetService)
	deps.GoogleHandler = google.NewHandler(deps.GoogleService)

	registerSubscribers(deps.EventBus)

	return deps
}

// registerSubscribers attaches the application-level event listeners.
func registerSubscribers(bus *event_bus.EventBus) {
	event_bus.SubscribeTyped[event_bus.DebtPaidOff](bus, event_bus.DebtPaidOffEvent,
		func(e event_bus.EventT[event_bus.DebtPaidOff]) error {
			log.Infof("debt %q (%d) is fully paid off", e.Data.Name, e.Data.DebtId)
			return nil
		})
	event_bus.SubscribeTyped[event_bus.FixedExpenseMaterialized](bus, event_bus.FixedExpenseMaterializedEvent,
		func(e event_bus.EventT[event_bus.FixedExpenseMaterialized]) error {
			log.Debugf("fixed expense %d materialized as transaction %d", e.Data.FixedExpenseId, e.Data.TransactionId)
			return nil
		})
}
