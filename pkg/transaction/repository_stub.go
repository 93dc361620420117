package transaction

import (
	"context"
	"time"
)

// RepositoryStub is an in-memory Repository for tests.
type RepositoryStub struct {
	transactions map[int][]Transaction // userId -> transactions
	nextId       int
}

func NewRepositoryStub() *RepositoryStub {
	return &RepositoryStub{transactions: map[int][]Transaction{}, nextId: 1}
}

func (s *RepositoryStub) Store(_ context.Context, userId int, t Transaction) (int, error) {
	t.Id = s.nextId
	s.nextId++
	s.transactions[userId] = append(s.transactions[userId], t)
	return t.Id, nil
}

func (s *RepositoryStub) FindByPeriod(_ context.Context, userId int, from, to time.Time) ([]Transaction, error) {
	var result []Transaction
	for _, t := range s.transactions[userId] {
		if !t.Date.Before(from) && t.Date.Before(to) {
			result = append(result, t)
		}
	}
	return result, nil
}

func (s *RepositoryStub) Update(_ context.Context, userId int, t Transaction) (bool, error) {
	for i, existing := range s.transactions[userId] {
		if existing.Id == t.Id {
			s.transactions[userId][i] = t
			return true, nil
		}
	}
	return false, nil
}

func (s *RepositoryStub) Delete(_ context.Context, userId int, transactionId int) (bool, error) {
	for i, existing := range s.transactions[userId] {
		if existing.Id == transactionId {
			s.transactions[userId] = append(s.transactions[userId][:i], s.transactions[userId][i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *RepositoryStub) Reset() {
	s.transactions = map[int][]Transaction{}
	s.nextId = 1
}
