package debt

import "context"

// RepositoryStub is an in-memory Repository for tests.
type RepositoryStub struct {
	debts  map[int]map[int]Debt // userId -> debtId -> Debt
	nextId int
}

func NewRepositoryStub() *RepositoryStub {
	return &RepositoryStub{debts: map[int]map[int]Debt{}, nextId: 1}
}

func (s *RepositoryStub) Store(_ context.Context, userId int, d Debt) (int, error) {
	if s.debts[userId] == nil {
		s.debts[userId] = map[int]Debt{}
	}
	d.Id = s.nextId
	s.nextId++
	s.debts[userId][d.Id] = d
	return d.Id, nil
}

func (s *RepositoryStub) GetAll(_ context.Context, userId int) ([]Debt, error) {
	var result []Debt
	for id := 1; id < s.nextId; id++ {
		if d, ok := s.debts[userId][id]; ok {
			result = append(result, d)
		}
	}
	return result, nil
}

func (s *RepositoryStub) Get(_ context.Context, userId int, debtId int) (Debt, bool, error) {
	d, ok := s.debts[userId][debtId]
	return d, ok, nil
}

func (s *RepositoryStub) Update(_ context.Context, userId int, d Debt) (bool, error) {
	existing, ok := s.debts[userId][d.Id]
	if !ok {
		return false, nil
	}
	d.InstallmentsPaid = existing.InstallmentsPaid
	s.debts[userId][d.Id] = d
	return true, nil
}

func (s *RepositoryStub) UpdateInstallmentsPaid(_ context.Context, userId int, debtId int, installmentsPaid int) (bool, error) {
	d, ok := s.debts[userId][debtId]
	if !ok {
		return false, nil
	}
	d.InstallmentsPaid = installmentsPaid
	s.debts[userId][debtId] = d
	return true, nil
}

func (s *RepositoryStub) Delete(_ context.Context, userId int, debtId int) (bool, error) {
	if _, ok := s.debts[userId][debtId]; !ok {
		return false, nil
	}
	delete(s.debts[userId], debtId)
	return true, nil
}

func (s *RepositoryStub) Reset() {
	s.debts = map[int]map[int]Debt{}
	s.nextId = 1
}
