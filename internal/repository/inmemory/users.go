package inmemory

import (
	"context"
	"strings"
	"time"

	"github.com/yurykissin/RecrutTrack/internal/domain/user"
)

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, usr := range s.users {
		if strings.EqualFold(usr.Email, email) {
			found := usr
			return &found, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (s *Store) GetUserByID(ctx context.Context, id int) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	usr, ok := s.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return &usr, nil
}

func (s *Store) CreateUser(ctx context.Context, usr *user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.userSeq++
	usr.ID = s.userSeq
	s.users[usr.ID] = *usr
	return nil
}

func (s *Store) UpdateLastLogin(ctx context.Context, id int, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	usr, ok := s.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	usr.LastLogin = &at
	s.users[id] = usr
	return nil
}
