package service

import (
	"sync"

	"tastebite/internal/domain"
)

// CartService holds the single active cart for the session. The cart is
// deliberately never persisted: it is ephemeral per session while every
// other collection survives restarts.
type CartService struct {
	mu    sync.Mutex
	items []domain.CartItem
}

func NewCartService() *CartService {
	return &CartService{}
}

// AddToCart adds one unit of the dish. When the cart already holds items
// from a different restaurant the cart is unconditionally replaced with a
// single-item cart for the new restaurant. Callers that want the user's
// confirmation before the reset must obtain it before calling; the engine
// itself never asks.
func (s *CartService) AddToCart(dish domain.Dish, restaurantID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dish.RestaurantID = restaurantID

	if len(s.items) > 0 && s.items[0].RestaurantID != restaurantID {
		s.items = []domain.CartItem{{Dish: dish, Quantity: 1}}
		return
	}

	for i := range s.items {
		if s.items[i].ID == dish.ID {
			s.items[i].Quantity++
			return
		}
	}

	s.items = append(s.items, domain.CartItem{Dish: dish, Quantity: 1})
}

// UpdateQuantity adds delta to the item's quantity. A resulting quantity
// of zero or less removes the item. Unknown ids are ignored.
func (s *CartService) UpdateQuantity(dishID string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == dishID {
			s.items[i].Quantity += delta
			if s.items[i].Quantity <= 0 {
				s.items = append(s.items[:i], s.items[i+1:]...)
			}
			return
		}
	}
}

func (s *CartService) RemoveFromCart(dishID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == dishID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

func (s *CartService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Items returns a copy of the cart in insertion order.
func (s *CartService) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]domain.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

func (s *CartService) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, item := range s.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// RestaurantID returns the owning restaurant of the current cart, empty
// when the cart is empty.
func (s *CartService) RestaurantID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.items) == 0 {
		return ""
	}
	return s.items[0].RestaurantID
}

var _ CartServiceInterface = (*CartService)(nil)
