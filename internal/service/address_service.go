package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"tastebite/internal/domain"
)

const addressesStateKey = "addresses"

var ErrAddressNotFound = errors.New("address not found")

// AddressService keeps the delivery-address registry. At most one
// address carries the default flag; marking a new default clears the
// flag on every other address in the same mutation.
type AddressService struct {
	mu        sync.Mutex
	addresses []domain.Address
	store     StateStore
	ids       IDProvider
}

func NewAddressService(store StateStore, ids IDProvider) *AddressService {
	return &AddressService{store: store, ids: ids}
}

func (s *AddressService) Hydrate(ctx context.Context) error {
	data, err := s.store.Load(ctx, addressesStateKey)
	if errors.Is(err, ErrNoSavedState) {
		return nil
	}
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return json.Unmarshal(data, &s.addresses)
}

func (s *AddressService) List() []domain.Address {
	s.mu.Lock()
	defer s.mu.Unlock()

	addresses := make([]domain.Address, len(s.addresses))
	copy(addresses, s.addresses)
	return addresses
}

func (s *AddressService) Get(id string) (*domain.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, addr := range s.addresses {
		if addr.ID == id {
			found := addr
			return &found, nil
		}
	}
	return nil, ErrAddressNotFound
}

// Default returns the default address, nil when none is marked.
func (s *AddressService) Default() *domain.Address {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, addr := range s.addresses {
		if addr.IsDefault {
			found := addr
			return &found
		}
	}
	return nil
}

func (s *AddressService) Add(ctx context.Context, addr domain.Address) (*domain.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	addr.ID = s.ids.AddressID()
	if addr.IsDefault {
		s.clearDefaultLocked()
	}
	s.addresses = append(s.addresses, addr)
	s.persistLocked(ctx)
	return &addr, nil
}

func (s *AddressService) Update(ctx context.Context, id string, addr domain.Address) (*domain.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.addresses {
		if s.addresses[i].ID == id {
			if addr.IsDefault {
				s.clearDefaultLocked()
			}
			addr.ID = id
			s.addresses[i] = addr
			s.persistLocked(ctx)
			return &addr, nil
		}
	}
	return nil, ErrAddressNotFound
}

func (s *AddressService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.addresses {
		if s.addresses[i].ID == id {
			s.addresses = append(s.addresses[:i], s.addresses[i+1:]...)
			s.persistLocked(ctx)
			return nil
		}
	}
	return ErrAddressNotFound
}

func (s *AddressService) clearDefaultLocked() {
	for i := range s.addresses {
		s.addresses[i].IsDefault = false
	}
}

func (s *AddressService) persistLocked(ctx context.Context) {
	data, err := json.Marshal(s.addresses)
	if err != nil {
		log.Printf("[addresses] marshal failed: %v", err)
		return
	}
	if err := s.store.Save(ctx, addressesStateKey, data); err != nil {
		log.Printf("[addresses] persist failed: %v", err)
	}
}

var _ AddressServiceInterface = (*AddressService)(nil)
