package google

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/centavo/centavo/pkg/budget"
	"github.com/centavo/centavo/pkg/user"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// ErrUnauthenticated marks a user who has not completed the Google OAuth
// flow yet.
var ErrUnauthenticated = errors.New("user is not authenticated with Google")

type Service interface {
	// ExportBudgetReport writes the period's budget figures to a new
	// spreadsheet and returns its URL.
	ExportBudgetReport(ctx context.Context, from, to time.Time) (string, error)
}

type ServiceImpl struct {
	auth    *GoogleAuth
	budgets budget.Service
}

func NewService(auth *GoogleAuth, budgets budget.Service) *ServiceImpl {
	return &ServiceImpl{auth: auth, budgets: budgets}
}

func (s *ServiceImpl) ExportBudgetReport(ctx context.Context, from, to time.Time) (string, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get current user: %w", err)
	}

	sheet, err := s.prepareBudgetSheet(ctx, userId)
	if err != nil {
		return "", err
	}

	statuses, err := s.budgets.GetStatus(ctx, from, to)
	if err != nil {
		return "", fmt.Errorf("failed to aggregate budget: %w", err)
	}

	return sheet.WriteReport(ctx, from, to, statuses)
}

func (s *ServiceImpl) prepareBudgetSheet(ctx context.Context, userId int) (*BudgetSheet, error) {
	client, err := s.auth.getClient(ctx, userId)
	if err != nil {
		err := fmt.Errorf("unable to retrieve Google auth client: %v", err)
		log.Error(err)
		return nil, err
	}
	if client == nil {
		log.Debug("user is unauthenticated, authentication is required")
		return nil, ErrUnauthenticated
	}
	service, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		err := fmt.Errorf("unable to retrieve Sheets client: %v", err)
		log.Error(err)
		return nil, err
	}

	return newBudgetSheet(service, userId), nil
}
