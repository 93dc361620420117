package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/centavo/centavo/pkg/money"
	"github.com/centavo/centavo/pkg/user"
	log "github.com/sirupsen/logrus"
)

// ErrParentLimitReadOnly is returned when a limit update targets a category
// with children; parent limits are derived from children and never editable.
var ErrParentLimitReadOnly = errors.New("category has children, its limit is derived")

type Service interface {
	GetAll(ctx context.Context) ([]Category, error)
	GetTree(ctx context.Context) ([]*Node, error)
	Create(ctx context.Context, category Category) (Category, error)
	Update(ctx context.Context, category Category) (bool, error)
	UpdateLimit(ctx context.Context, categoryId int, limit money.Cents) error
	Delete(ctx context.Context, id int) (bool, error)
}

type ServiceImpl struct {
	repo Repository
}

func NewService(repo Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) GetAll(ctx context.Context) ([]Category, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetAll(ctx, userId)
}

func (s *ServiceImpl) GetTree(ctx context.Context) ([]*Node, error) {
	categories, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return BuildForest(categories), nil
}

func (s *ServiceImpl) Create(ctx context.Context, category Category) (Category, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Category{}, fmt.Errorf("failed to get current user: %w", err)
	}

	id, err := s.repo.Store(ctx, userId, category)
	if err != nil {
		return Category{}, err
	}
	category.Id = id
	return category, nil
}

func (s *ServiceImpl) Update(ctx context.Context, category Category) (bool, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get current user: %w", err)
	}

	updated, err := s.repo.Update(ctx, userId, category)
	if err != nil {
		return false, err
	}
	if !updated {
		log.Warnf("category not updated, probably because it does not exist (%d) or the user (%d) is not the owner", category.Id, userId)
		return false, nil
	}
	return true, nil
}

// UpdateLimit stores a new budget limit for a leaf category. Categories
// with children reject the update with ErrParentLimitReadOnly.
func (s *ServiceImpl) UpdateLimit(ctx context.Context, categoryId int, limit money.Cents) error {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current user: %w", err)
	}

	hasChildren, err := s.repo.HasChildren(ctx, userId, categoryId)
	if err != nil {
		return err
	}
	if hasChildren {
		return ErrParentLimitReadOnly
	}

	updated, err := s.repo.UpdateLimit(ctx, userId, categoryId, limit)
	if err != nil {
		return err
	}
	if !updated {
		return ErrCategoryNotFound
	}
	return nil
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
		log.Warnf("category not deleted, probably because it does not exist (%d) or the user (%d) is not the owner", id, userId)
		return false, nil
	}
	return true, nil
}
