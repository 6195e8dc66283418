package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"tastebite/internal/domain"
)

const userStateKey = "user"

var ErrInvalidCredentials = errors.New("name and email are required")

// AccountService keeps the session user. Login is simulated locally:
// a user record is materialized from the submitted name and email.
type AccountService struct {
	mu    sync.Mutex
	user  *domain.User
	store StateStore
}

func NewAccountService(store StateStore) *AccountService {
	return &AccountService{store: store}
}

func (s *AccountService) Hydrate(ctx context.Context) error {
	data, err := s.store.Load(ctx, userStateKey)
	if errors.Is(err, ErrNoSavedState) {
		return nil
	}
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return json.Unmarshal(data, &s.user)
}

func (s *AccountService) Login(ctx context.Context, name, email string) (*domain.User, error) {
	if name == "" || email == "" {
		return nil, ErrInvalidCredentials
	}

	user := domain.User{
		ID:     "u1",
		Name:   name,
		Email:  email,
		Avatar: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", email),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = &user
	data, err := json.Marshal(s.user)
	if err != nil {
		log.Printf("[account] marshal failed: %v", err)
		return &user, nil
	}
	if err := s.store.Save(ctx, userStateKey, data); err != nil {
		log.Printf("[account] persist failed: %v", err)
	}
	return &user, nil
}

func (s *AccountService) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	if err := s.store.Delete(ctx, userStateKey); err != nil {
		log.Printf("[account] delete failed: %v", err)
	}
}

func (s *AccountService) Current() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

var _ AccountServiceInterface = (*AccountService)(nil)
