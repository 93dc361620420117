package app

import (
	"github.com/centavo/centavo/internal/config"
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Categories
	r.HandleFunc("/api/category", deps.CategoryHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/category/tree", deps.CategoryHandler.GetTree).Methods("GET")
	r.HandleFunc("/api/category", deps.CategoryHandler.Create).Methods("POST")
	r.HandleFunc("/api/category/{id}", deps.CategoryHandler.Update).Methods("PUT")
	r.HandleFunc("/api/category/{id}/limit", deps.CategoryHandler.UpdateLimit).Methods("PUT")
	r.HandleFunc("/api/category/{id}", deps.CategoryHandler.Delete).Methods("DELETE")

	// Transactions
	r.HandleFunc("/api/transaction", deps.TransactionHandler.GetForPeriod).Queries("from", "{from}", "to", "{to}").Methods("GET")
	r.HandleFunc("/api/transaction", deps.TransactionHandler.Create).Methods("POST")
	r.HandleFunc("/api/transaction/{id}", deps.TransactionHandler.Update).Methods("PUT")
	r.HandleFunc("/api/transaction/{id}", deps.TransactionHandler.Delete).Methods("DELETE")

	// Fixed expenses
	r.HandleFunc("/api/fixed-expense", deps.FixedExpenseHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/fixed-expense", deps.FixedExpenseHandler.Create).Methods("POST")
	r.HandleFunc("/api/fixed-expense/{id}", deps.FixedExpenseHandler.Update).Methods("PUT")
	r.HandleFunc("/api/fixed-expense/{id}", deps.FixedExpenseHandler.Delete).Methods("DELETE")

	// Income sources
	r.HandleFunc("/api/income-source", deps.IncomeHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/income-source", deps.IncomeHandler.Create).Methods("POST")
	r.HandleFunc("/api/income-source/{id}", deps.IncomeHandler.Update).Methods("PUT")
	r.HandleFunc("/api/income-source/{id}", deps.IncomeHandler.Delete).Methods("DELETE")

	// Debts and installment schedules
	r.HandleFunc("/api/debt", deps.DebtHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/debt", deps.DebtHandler.Create).Methods("POST")
	r.HandleFunc("/api/debt/{id}", deps.DebtHandler.Update).Methods("PUT")
	r.HandleFunc("/api/debt/{id}", deps.DebtHandler.Delete).Methods("DELETE")
	r.HandleFunc("/api/debt/{id}/installments", deps.DebtHandler.GetInstallments).Methods("GET")
	r.HandleFunc("/api/debt/{id}/installments/{number}", deps.DebtHandler.ToggleInstallment).Methods("PUT")

	// Work units
	r.HandleFunc("/api/workunit", deps.WorkUnitHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/workunit", deps.WorkUnitHandler.Create).Methods("POST")
	r.HandleFunc("/api/workunit/{id}", deps.WorkUnitHandler.Update).Methods("PUT")
	r.HandleFunc("/api/workunit/{id}", deps.WorkUnitHandler.Delete).Methods("DELETE")
	r.HandleFunc("/api/workunit/{id}/allocations", deps.WorkUnitHandler.GetAllocations).Methods("GET")

	// Budget status
	r.HandleFunc("/api/budget/status", deps.BudgetHandler.GetStatus).Queries("from", "{from}", "to", "{to}").Methods("GET")
	r.HandleFunc("/api/budget/status/csv", deps.BudgetHandler.GetStatusCsv).Queries("from", "{from}", "to", "{to}").Methods("GET")

	// Projections
	r.HandleFunc("/api/projection", deps.ProjectionHandler.GetProjection).Methods("GET")

	// User management
	r.HandleFunc("/api/user/current", deps.UserHandler.CurrentUser).Methods("GET")
	r.HandleFunc("/api/user/current", deps.UserHandler.UpdateUser).Methods("PUT")
	r.HandleFunc("/api/user", deps.UserHandler.CreateUser).Methods("POST")
	r.HandleFunc("/api/user", deps.UserHandler.GetAvailableUsers).Methods("GET")

	// Google integration
	r.HandleFunc("/api/integrations/google/auth/login", deps.GoogleAuth.OAuthLogin).Methods("GET")
	r.HandleFunc("/api/integrations/google/auth/logout", deps.GoogleAuth.OAuthLogout).Methods("DELETE")
	r.HandleFunc("/api/integrations/google/auth/callback", deps.GoogleAuth.OAuthCallback).Methods("GET")
	r.HandleFunc("/api/reports/google-sheets", deps.GoogleHandler.ExportBudgetReport).Methods("POST")
}
