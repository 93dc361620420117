package workunit

import "context"

// RepositoryStub is an in-memory Repository for tests.
type RepositoryStub struct {
	units  map[int]map[int]WorkUnit // userId -> workUnitId -> WorkUnit
	nextId int
}

func NewRepositoryStub() *RepositoryStub {
	return &RepositoryStub{units: map[int]map[int]WorkUnit{}, nextId: 1}
}

func (s *RepositoryStub) Store(_ context.Context, userId int, w WorkUnit) (int, error) {
	if s.units[userId] == nil {
		s.units[userId] = map[int]WorkUnit{}
	}
	w.Id = s.nextId
	s.nextId++
	s.units[userId][w.Id] = w
	return w.Id, nil
}

func (s *RepositoryStub) GetAll(_ context.Context, userId int) ([]WorkUnit, error) {
	var result []WorkUnit
	for id := 1; id < s.nextId; id++ {
		if w, ok := s.units[userId][id]; ok {
			result = append(result, w)
		}
	}
	return result, nil
}

func (s *RepositoryStub) Get(_ context.Context, userId int, workUnitId int) (WorkUnit, bool, error) {
	w, ok := s.units[userId][workUnitId]
	return w, ok, nil
}

func (s *RepositoryStub) Update(_ context.Context, userId int, w WorkUnit) (bool, error) {
	if _, ok := s.units[userId][w.Id]; !ok {
		return false, nil
	}
	s.units[userId][w.Id] = w
	return true, nil
}

func (s *RepositoryStub) Delete(_ context.Context, userId int, workUnitId int) (bool, error) {
	if _, ok := s.units[userId][workUnitId]; !ok {
		return false, nil
	}
	delete(s.units[userId], workUnitId)
	return true, nil
}

func (s *RepositoryStub) Reset() {
	s.units = map[int]map[int]WorkUnit{}
	s.nextId = 1
}
