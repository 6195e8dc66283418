package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"tastebite/internal/domain"
)

const (
	DeliveryFee = 2.99
	PlatformFee = 0.99

	ordersStateKey = "orders"
)

var (
	ErrEmptyCart         = errors.New("cannot place an order with an empty cart")
	ErrOrderNotFound     = errors.New("order not found")
	ErrTerminalStatus    = errors.New("order is already in a terminal status")
	ErrNotCancellable    = errors.New("order can no longer be cancelled")
	ErrEmptyCancelReason = errors.New("cancellation requires a reason")
)

// OrderService materializes carts into orders and drives each order
// through the status pipeline. Order history is newest-first, hydrated
// from the state store at startup and re-serialized after every mutation.
type OrderService struct {
	mu        sync.Mutex
	orders    []domain.Order
	store     StateStore
	cart      CartClearer
	ids       IDProvider
	publisher OrderPublisher
	qrEncoder QRGenerator
}

func NewOrderService(store StateStore, cart CartClearer, ids IDProvider, publisher OrderPublisher, qr QRGenerator) *OrderService {
	return &OrderService{
		store:     store,
		cart:      cart,
		ids:       ids,
		publisher: publisher,
		qrEncoder: qr,
	}
}

// Hydrate loads the saved order history. A missing key leaves the
// history empty without error.
func (s *OrderService) Hydrate(ctx context.Context) error {
	data, err := s.store.Load(ctx, ordersStateKey)
	if errors.Is(err, ErrNoSavedState) {
		return nil
	}
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return json.Unmarshal(data, &s.orders)
}

func (s *OrderService) PlaceOrder(ctx context.Context, items []domain.CartItem, restaurantName, paymentMethod, note string) (*domain.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	var subtotal float64
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}

	snapshot := make([]domain.CartItem, len(items))
	copy(snapshot, items)

	order := domain.Order{
		ID:             s.ids.OrderID(),
		Items:          snapshot,
		Total:          subtotal + DeliveryFee + PlatformFee,
		CreatedAt:      time.Now(),
		Status:         domain.StatusPending,
		RestaurantName: restaurantName,
		PaymentMethod:  paymentMethod,
		Note:           note,
	}

	s.mu.Lock()
	s.orders = append([]domain.Order{order}, s.orders...)
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.cart.Clear()
	s.publish(ctx, "order_placed", order)

	return &order, nil
}

// AdvanceStatus moves the order to the next status in the pipeline.
func (s *OrderService) AdvanceStatus(ctx context.Context, orderID string) (*domain.Order, error) {
	s.mu.Lock()
	order := s.findLocked(orderID)
	if order == nil {
		s.mu.Unlock()
		return nil, ErrOrderNotFound
	}

	next, ok := order.Status.Next()
	if !ok {
		s.mu.Unlock()
		return nil, ErrTerminalStatus
	}

	order.Status = next
	updated := *order
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.publish(ctx, "status_changed", updated)
	return &updated, nil
}

// CancelOrder cancels an order that is still Pending or Preparing and
// stores the reason verbatim.
func (s *OrderService) CancelOrder(ctx context.Context, orderID, reason string) (*domain.Order, error) {
	if reason == "" {
		return nil, ErrEmptyCancelReason
	}

	s.mu.Lock()
	order := s.findLocked(orderID)
	if order == nil {
		s.mu.Unlock()
		return nil, ErrOrderNotFound
	}

	if !order.Status.Cancellable() {
		s.mu.Unlock()
		return nil, ErrNotCancellable
	}

	order.Status = domain.StatusCancelled
	order.CancelReason = reason
	updated := *order
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.publish(ctx, "order_cancelled", updated)
	return &updated, nil
}

// List returns the order history, newest first.
func (s *OrderService) List() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := make([]domain.Order, len(s.orders))
	copy(orders, s.orders)
	return orders
}

func (s *OrderService) Get(orderID string) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := s.findLocked(orderID)
	if order == nil {
		return nil, ErrOrderNotFound
	}
	found := *order
	return &found, nil
}

func (s *OrderService) QRCode(orderID string) ([]byte, error) {
	if _, err := s.Get(orderID); err != nil {
		return nil, err
	}
	if s.qrEncoder == nil {
		return nil, errors.New("qr encoding unavailable")
	}
	return s.qrEncoder.Generate(orderID)
}

func (s *OrderService) findLocked(orderID string) *domain.Order {
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			return &s.orders[i]
		}
	}
	return nil
}

// persistLocked re-serializes the whole history. A write failure is
// logged and ignored: in-memory state stays authoritative for the
// session.
func (s *OrderService) persistLocked(ctx context.Context) {
	data, err := json.Marshal(s.orders)
	if err != nil {
		log.Printf("[orders] marshal failed: %v", err)
		return
	}
	if err := s.store.Save(ctx, ordersStateKey, data); err != nil {
		log.Printf("[orders] persist failed: %v", err)
	}
}

func (s *OrderService) publish(ctx context.Context, eventType string, order domain.Order) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishOrderEvent(ctx, domain.OrderEvent{
		Type:           eventType,
		OrderID:        order.ID,
		RestaurantName: order.RestaurantName,
		Status:         string(order.Status),
		Total:          order.Total,
		Timestamp:      time.Now(),
	})
	if err != nil {
		log.Printf("[orders] publish %s failed: %v", eventType, err)
	}
}

var _ OrderServiceInterface = (*OrderService)(nil)
