package user

import "context"

// StubRepo is an in-memory Repo for tests.
type StubRepo struct {
	users  map[int]User
	nextId int
}

func NewStubRepo() *StubRepo {
	return &StubRepo{users: map[int]User{}, nextId: 1}
}

func (s *StubRepo) CreateUser(_ context.Context, u User) (int, error) {
	id := s.nextId
	s.nextId++
	u.Id = id
	s.users[id] = u
	return id, nil
}

func (s *StubRepo) GetUser(_ context.Context, id int) (User, error) {
	u, ok := s.users[id]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return u, nil
}

func (s *StubRepo) GetUserByUid(_ context.Context, uid string) (User, error) {
	for _, u := range s.users {
		if u.Uid == uid {
			return u, nil
		}
	}
	return User{}, ErrUserNotFound
}

func (s *StubRepo) UpdateUser(_ context.Context, userId int, u User) (User, error) {
	if _, ok := s.users[userId]; !ok {
		return User{}, ErrUserNotFound
	}
	u.Id = userId
	s.users[userId] = u
	return u, nil
}

func (s *StubRepo) GetAllUsers(_ context.Context) ([]User, error) {
	all := make([]User, 0, len(s.users))
	for _, u := range s.users {
		all = append(all, u)
	}
	return all, nil
}

func (s *StubRepo) Reset() {
	s.users = map[int]User{}
	s.nextId = 1
}
