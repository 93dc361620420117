package fixedexpense

import (
	"context"
	"time"
)

// RepositoryStub is an in-memory Repository for tests.
type RepositoryStub struct {
	expenses map[int]map[int]FixedExpense // userId -> expenseId -> FixedExpense
	nextId   int
}

func NewRepositoryStub() *RepositoryStub {
	return &RepositoryStub{expenses: map[int]map[int]FixedExpense{}, nextId: 1}
}

func (s *RepositoryStub) Store(_ context.Context, userId int, e FixedExpense) (int, error) {
	if s.expenses[userId] == nil {
		s.expenses[userId] = map[int]FixedExpense{}
	}
	e.Id = s.nextId
	s.nextId++
	s.expenses[userId][e.Id] = e
	return e.Id, nil
}

func (s *RepositoryStub) GetAll(_ context.Context, userId int) ([]FixedExpense, error) {
	return s.collect(userId, false), nil
}

func (s *RepositoryStub) FindAutoCreate(_ context.Context, userId int) ([]FixedExpense, error) {
	return s.collect(userId, true), nil
}

func (s *RepositoryStub) collect(userId int, autoCreateOnly bool) []FixedExpense {
	var all []FixedExpense
	for id := 1; id < s.nextId; id++ {
		if e, ok := s.expenses[userId][id]; ok {
			if autoCreateOnly && !e.AutoCreate {
				continue
			}
			all = append(all, e)
		}
	}
	return all
}

func (s *RepositoryStub) Update(_ context.Context, userId int, e FixedExpense) (bool, error) {
	existing, ok := s.expenses[userId][e.Id]
	if !ok {
		return false, nil
	}
	e.LastAutoCreated = existing.LastAutoCreated
	s.expenses[userId][e.Id] = e
	return true, nil
}

func (s *RepositoryStub) MarkAutoCreated(_ context.Context, userId int, expenseId int, dueDate time.Time) error {
	if e, ok := s.expenses[userId][expenseId]; ok {
		e.LastAutoCreated = &dueDate
		s.expenses[userId][expenseId] = e
	}
	return nil
}

func (s *RepositoryStub) Delete(_ context.Context, userId int, expenseId int) (bool, error) {
	if _, ok := s.expenses[userId][expenseId]; !ok {
		return false, nil
	}
	delete(s.expenses[userId], expenseId)
	return true, nil
}

func (s *RepositoryStub) Reset() {
	s.expenses = map[int]map[int]FixedExpense{}
	s.nextId = 1
}
