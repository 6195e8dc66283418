package service

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/google/uuid"
)

// DefaultIDProvider issues session-unique ids. Order ids keep the
// human-readable ORD- prefix with a random six-digit suffix; registry
// ids are uuids.
type DefaultIDProvider struct {
	mu     sync.Mutex
	issued map[string]bool
}

func NewDefaultIDProvider() *DefaultIDProvider {
	return &DefaultIDProvider{issued: make(map[string]bool)}
}

func (p *DefaultIDProvider) OrderID() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	for {
		id := fmt.Sprintf("ORD-%06d", 100000+rand.Intn(900000))
		if !p.issued[id] {
			p.issued[id] = true
			return id
		}
	}
}

func (p *DefaultIDProvider) ReviewID() string {
	return "rev-" + uuid.NewString()
}

func (p *DefaultIDProvider) AddressID() string {
	return uuid.NewString()
}

var _ IDProvider = (*DefaultIDProvider)(nil)
