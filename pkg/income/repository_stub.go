package income

import "context"

// RepositoryStub is an in-memory Repository for tests.
type RepositoryStub struct {
	sources map[int]map[int]Source // userId -> sourceId -> Source
	nextId  int
}

func NewRepositoryStub() *RepositoryStub {
	return &RepositoryStub{sources: map[int]map[int]Source{}, nextId: 1}
}

func (s *RepositoryStub) Store(_ context.Context, userId int, source Source) (int, error) {
	if s.sources[userId] == nil {
		s.sources[userId] = map[int]Source{}
	}
	source.Id = s.nextId
	s.nextId++
	s.sources[userId][source.Id] = source
	return source.Id, nil
}

func (s *RepositoryStub) GetAll(_ context.Context, userId int) ([]Source, error) {
	var result []Source
	for id := 1; id < s.nextId; id++ {
		if source, ok := s.sources[userId][id]; ok {
			result = append(result, source)
		}
	}
	return result, nil
}

func (s *RepositoryStub) Update(_ context.Context, userId int, source Source) (bool, error) {
	if _, ok := s.sources[userId][source.Id]; !ok {
		return false, nil
	}
	s.sources[userId][source.Id] = source
	return true, nil
}

func (s *RepositoryStub) Delete(_ context.Context, userId int, sourceId int) (bool, error) {
	if _, ok := s.sources[userId][sourceId]; !ok {
		return false, nil
	}
	delete(s.sources[userId], sourceId)
	return true, nil
}

func (s *RepositoryStub) Reset() {
	s.sources = map[int]map[int]Source{}
	s.nextId = 1
}
