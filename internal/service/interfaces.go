package service

import (
	"context"
	"errors"

	"tastebite/internal/domain"
)

// ErrNoSavedState is returned by StateStore.Load when nothing has been
// saved under the key yet.
var ErrNoSavedState = errors.New("no saved state")

// StateStore is the external key-value store the session state is
// hydrated from at startup and re-serialized to after every mutation.
type StateStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

type CatalogRepository interface {
	ListRestaurants() ([]domain.Restaurant, error)
	GetRestaurant(id string) (*domain.Restaurant, error)
	ListDishes(restaurantID string) ([]domain.Dish, error)
	GetDish(dishID string) (*domain.Dish, error)
}

type OrderPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type IDProvider interface {
	OrderID() string
	ReviewID() string
	AddressID() string
}

// CartClearer is the slice of the cart engine the order engine needs:
// placing an order empties the active cart.
type CartClearer interface {
	Clear()
}

type CartServiceInterface interface {
	AddToCart(dish domain.Dish, restaurantID string)
	UpdateQuantity(dishID string, delta int)
	RemoveFromCart(dishID string)
	Clear()
	Items() []domain.CartItem
	Subtotal() float64
	RestaurantID() string
}

type OrderServiceInterface interface {
	Hydrate(ctx context.Context) error
	PlaceOrder(ctx context.Context, items []domain.CartItem, restaurantName, paymentMethod, note string) (*domain.Order, error)
	AdvanceStatus(ctx context.Context, orderID string) (*domain.Order, error)
	CancelOrder(ctx context.Context, orderID, reason string) (*domain.Order, error)
	List() []domain.Order
	Get(orderID string) (*domain.Order, error)
	QRCode(orderID string) ([]byte, error)
}

type AddressServiceInterface interface {
	Hydrate(ctx context.Context) error
	List() []domain.Address
	Get(id string) (*domain.Address, error)
	Default() *domain.Address
	Add(ctx context.Context, addr domain.Address) (*domain.Address, error)
	Update(ctx context.Context, id string, addr domain.Address) (*domain.Address, error)
	Delete(ctx context.Context, id string) error
}

type ReviewServiceInterface interface {
	Hydrate(ctx context.Context) error
	Add(ctx context.Context, review domain.Review) (*domain.Review, error)
	ListByRestaurant(restaurantID string) []domain.Review
}

type FavoriteServiceInterface interface {
	Hydrate(ctx context.Context) error
	Toggle(ctx context.Context, restaurantID string) bool
	IsFavorite(restaurantID string) bool
	List() []string
}

type AccountServiceInterface interface {
	Hydrate(ctx context.Context) error
	Login(ctx context.Context, name, email string) (*domain.User, error)
	Logout(ctx context.Context)
	Current() *domain.User
}

type CatalogServiceInterface interface {
	ListRestaurants() ([]domain.Restaurant, error)
	GetRestaurant(id string) (*domain.Restaurant, error)
	ListDishes(restaurantID string) ([]domain.Dish, error)
	GetDish(dishID string) (*domain.Dish, error)
}
