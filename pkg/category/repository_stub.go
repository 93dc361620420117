package category

import (
	"context"

	"github.com/centavo/centavo/pkg/money"
)

// RepositoryStub is an in-memory Repository for tests.
type RepositoryStub struct {
	categories map[int]map[int]Category // userId -> categoryId -> Category
	nextId     int
}

func NewRepositoryStub() *RepositoryStub {
	return &RepositoryStub{categories: map[int]map[int]Category{}, nextId: 1}
}

func (s *RepositoryStub) Store(_ context.Context, userId int, c Category) (int, error) {
	if s.categories[userId] == nil {
		s.categories[userId] = map[int]Category{}
	}
	c.Id = s.nextId
	s.nextId++
	s.categories[userId][c.Id] = c
	return c.Id, nil
}

func (s *RepositoryStub) GetAll(_ context.Context, userId int) ([]Category, error) {
	all := make([]Category, 0, len(s.categories[userId]))
	for id := 1; id < s.nextId; id++ {
		if c, ok := s.categories[userId][id]; ok {
			all = append(all, c)
		}
	}
	return all, nil
}

func (s *RepositoryStub) Get(_ context.Context, userId int, categoryId int) (Category, error) {
	c, ok := s.categories[userId][categoryId]
	if !ok {
		return Category{}, ErrCategoryNotFound
	}
	return c, nil
}

func (s *RepositoryStub) Update(_ context.Context, userId int, c Category) (bool, error) {
	if _, ok := s.categories[userId][c.Id]; !ok {
		return false, nil
	}
	existing := s.categories[userId][c.Id]
	c.BudgetLimit = existing.BudgetLimit
	s.categories[userId][c.Id] = c
	return true, nil
}

func (s *RepositoryStub) UpdateLimit(_ context.Context, userId int, categoryId int, limit money.Cents) (bool, error) {
	c, ok := s.categories[userId][categoryId]
	if !ok {
		return false, nil
	}
	c.BudgetLimit = limit
	s.categories[userId][categoryId] = c
	return true, nil
}

func (s *RepositoryStub) HasChildren(_ context.Context, userId int, categoryId int) (bool, error) {
	for _, c := range s.categories[userId] {
		if c.ParentId != nil && *c.ParentId == categoryId {
			return true, nil
		}
	}
	return false, nil
}

func (s *RepositoryStub) Delete(_ context.Context, userId int, categoryId int) (bool, error) {
	if _, ok := s.categories[userId][categoryId]; !ok {
		return false, nil
	}
	delete(s.categories[userId], categoryId)
	return true, nil
}

func (s *RepositoryStub) Reset() {
	s.categories = map[int]map[int]Category{}
	s.nextId = 1
}
