package tests

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpapi "tastebite/internal/api/http"
	"tastebite/internal/domain"
	"tastebite/internal/mocks"
	"tastebite/internal/service"
)

func setupTestRouter(handler *httpapi.Handler) *mux.Router {
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func TestHandler_addToCart(t *testing.T) {
	dish := domain.Dish{ID: "d1", Name: "Classic Cheeseburger", Price: 12.99}

	tests := []struct {
		name         string
		payload      string
		prepareMocks func(catalog *mocks.CatalogServiceInterface, cart *mocks.CartServiceInterface)
		expectedCode int
	}{
		{
			name:    "success_empty_cart",
			payload: `{"dish_id":"d1","restaurant_id":"1"}`,
			prepareMocks: func(catalog *mocks.CatalogServiceInterface, cart *mocks.CartServiceInterface) {
				catalog.On("GetDish", "d1").Return(&dish, nil).Once()
				cart.On("RestaurantID").Return("").Once()
				cart.On("AddToCart", mock.Anything, "1").Once()
				cart.On("Items").Return([]domain.CartItem{{Dish: dish, Quantity: 1}}).Once()
				cart.On("Subtotal").Return(12.99).Once()
				cart.On("RestaurantID").Return("1").Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:    "cross_restaurant_unconfirmed_conflict",
			payload: `{"dish_id":"d1","restaurant_id":"2"}`,
			prepareMocks: func(catalog *mocks.CatalogServiceInterface, cart *mocks.CartServiceInterface) {
				catalog.On("GetDish", "d1").Return(&dish, nil).Once()
				cart.On("RestaurantID").Return("1").Once()
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:    "cross_restaurant_confirmed_resets",
			payload: `{"dish_id":"d1","restaurant_id":"2","confirmed":true}`,
			prepareMocks: func(catalog *mocks.CatalogServiceInterface, cart *mocks.CartServiceInterface) {
				catalog.On("GetDish", "d1").Return(&dish, nil).Once()
				cart.On("RestaurantID").Return("1").Once()
				cart.On("AddToCart", mock.Anything, "2").Once()
				cart.On("Items").Return([]domain.CartItem{{Dish: dish, Quantity: 1}}).Once()
				cart.On("Subtotal").Return(12.99).Once()
				cart.On("RestaurantID").Return("2").Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:    "unknown_dish",
			payload: `{"dish_id":"nope","restaurant_id":"1"}`,
			prepareMocks: func(catalog *mocks.CatalogServiceInterface, cart *mocks.CartServiceInterface) {
				catalog.On("GetDish", "nope").Return(nil, service.ErrDishNotFound).Once()
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "invalid_json",
			payload:      `bad json`,
			prepareMocks: func(catalog *mocks.CatalogServiceInterface, cart *mocks.CartServiceInterface) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			catalog := mocks.NewCatalogServiceInterface(t)
			cart := mocks.NewCartServiceInterface(t)
			testCase.prepareMocks(catalog, cart)

			router := setupTestRouter(&httpapi.Handler{Catalog: catalog, Cart: cart})
			req := httptest.NewRequest("POST", "/api/cart/items", bytes.NewBufferString(testCase.payload))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, testCase.expectedCode, recorder.Code)
		})
	}
}

func TestHandler_placeOrder(t *testing.T) {
	items := []domain.CartItem{{Dish: domain.Dish{ID: "d1", Price: 12.99, RestaurantID: "1"}, Quantity: 2}}
	placed := &domain.Order{ID: "ORD-100001", Status: domain.StatusPending, Total: 29.96}

	tests := []struct {
		name         string
		payload      string
		prepareMocks func(orders *mocks.OrderServiceInterface, cart *mocks.CartServiceInterface, addresses *mocks.AddressServiceInterface, catalog *mocks.CatalogServiceInterface)
		expectedCode int
		expectedBody string
	}{
		{
			name:    "success",
			payload: `{"address_id":"a1","payment_method":"Credit Card","note":"No onions"}`,
			prepareMocks: func(orders *mocks.OrderServiceInterface, cart *mocks.CartServiceInterface, addresses *mocks.AddressServiceInterface, catalog *mocks.CatalogServiceInterface) {
				addresses.On("Get", "a1").Return(&domain.Address{ID: "a1"}, nil).Once()
				cart.On("RestaurantID").Return("1").Once()
				catalog.On("GetRestaurant", "1").Return(&domain.Restaurant{ID: "1", Name: "Burger Haven"}, nil).Once()
				cart.On("Items").Return(items).Once()
				orders.On("PlaceOrder", mock.Anything, items, "Burger Haven", "Credit Card", "No onions").
					Return(placed, nil).Once()
			},
			expectedCode: http.StatusCreated,
			expectedBody: `"ORD-100001"`,
		},
		{
			name:    "missing_address",
			payload: `{"payment_method":"Cash"}`,
			prepareMocks: func(orders *mocks.OrderServiceInterface, cart *mocks.CartServiceInterface, addresses *mocks.AddressServiceInterface, catalog *mocks.CatalogServiceInterface) {
				addresses.On("Get", "").Return(nil, service.ErrAddressNotFound).Once()
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "empty_cart",
			payload: `{"address_id":"a1","payment_method":"Cash"}`,
			prepareMocks: func(orders *mocks.OrderServiceInterface, cart *mocks.CartServiceInterface, addresses *mocks.AddressServiceInterface, catalog *mocks.CatalogServiceInterface) {
				addresses.On("Get", "a1").Return(&domain.Address{ID: "a1"}, nil).Once()
				cart.On("RestaurantID").Return("").Once()
				cart.On("Items").Return(nil).Once()
				orders.On("PlaceOrder", mock.Anything, mock.Anything, "", "Cash", "").
					Return(nil, service.ErrEmptyCart).Once()
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			orders := mocks.NewOrderServiceInterface(t)
			cart := mocks.NewCartServiceInterface(t)
			addresses := mocks.NewAddressServiceInterface(t)
			catalog := mocks.NewCatalogServiceInterface(t)
			testCase.prepareMocks(orders, cart, addresses, catalog)

			router := setupTestRouter(&httpapi.Handler{
				Catalog:   catalog,
				Cart:      cart,
				Orders:    orders,
				Addresses: addresses,
			})
			req := httptest.NewRequest("POST", "/api/orders", bytes.NewBufferString(testCase.payload))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestHandler_advanceOrder(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{name: "success", err: nil, expectedCode: http.StatusOK},
		{name: "not_found", err: service.ErrOrderNotFound, expectedCode: http.StatusNotFound},
		{name: "terminal", err: service.ErrTerminalStatus, expectedCode: http.StatusConflict},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			orders := mocks.NewOrderServiceInterface(t)
			if testCase.err == nil {
				orders.On("AdvanceStatus", mock.Anything, "ORD-100001").
					Return(&domain.Order{ID: "ORD-100001", Status: domain.StatusPreparing}, nil).Once()
			} else {
				orders.On("AdvanceStatus", mock.Anything, "ORD-100001").
					Return(nil, testCase.err).Once()
			}

			router := setupTestRouter(&httpapi.Handler{Orders: orders})
			req := httptest.NewRequest("POST", "/api/orders/ORD-100001/advance", nil)
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, testCase.expectedCode, recorder.Code)
		})
	}
}

func TestHandler_cancelOrder(t *testing.T) {
	tests := []struct {
		name         string
		payload      string
		err          error
		expectedCode int
	}{
		{name: "success", payload: `{"reason":"Changed my mind"}`, expectedCode: http.StatusOK},
		{name: "empty_reason", payload: `{"reason":""}`, err: service.ErrEmptyCancelReason, expectedCode: http.StatusBadRequest},
		{name: "not_cancellable", payload: `{"reason":"Changed my mind"}`, err: service.ErrNotCancellable, expectedCode: http.StatusConflict},
		{name: "not_found", payload: `{"reason":"Changed my mind"}`, err: service.ErrOrderNotFound, expectedCode: http.StatusNotFound},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			orders := mocks.NewOrderServiceInterface(t)
			if testCase.err == nil {
				orders.On("CancelOrder", mock.Anything, "ORD-100001", mock.Anything).
					Return(&domain.Order{ID: "ORD-100001", Status: domain.StatusCancelled, CancelReason: "Changed my mind"}, nil).Once()
			} else {
				orders.On("CancelOrder", mock.Anything, "ORD-100001", mock.Anything).
					Return(nil, testCase.err).Once()
			}

			router := setupTestRouter(&httpapi.Handler{Orders: orders})
			req := httptest.NewRequest("POST", "/api/orders/ORD-100001/cancel", bytes.NewBufferString(testCase.payload))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, testCase.expectedCode, recorder.Code)
		})
	}
}

func TestHandler_toggleFavorite(t *testing.T) {
	favorites := mocks.NewFavoriteServiceInterface(t)
	favorites.On("Toggle", mock.Anything, "1").Return(true).Once()

	router := setupTestRouter(&httpapi.Handler{Favorites: favorites})
	req := httptest.NewRequest("POST", "/api/favorites/1/toggle", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"favorite":true`)
}

func TestHandler_createReview_InvalidRating(t *testing.T) {
	reviews := mocks.NewReviewServiceInterface(t)
	reviews.On("Add", mock.Anything, mock.Anything).Return(nil, service.ErrInvalidRating).Once()
	account := mocks.NewAccountServiceInterface(t)
	account.On("Current").Return(nil).Once()

	router := setupTestRouter(&httpapi.Handler{Reviews: reviews, Account: account})
	req := httptest.NewRequest("POST", "/api/restaurants/1/reviews", bytes.NewBufferString(`{"rating":9,"comment":"!"}`))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandler_cancelReasons(t *testing.T) {
	router := setupTestRouter(&httpapi.Handler{})
	req := httptest.NewRequest("GET", "/api/orders/cancel-reasons", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Changed my mind")
}

func TestHandler_currentUser_NotLoggedIn(t *testing.T) {
	account := mocks.NewAccountServiceInterface(t)
	account.On("Current").Return(nil).Once()

	router := setupTestRouter(&httpapi.Handler{Account: account})
	req := httptest.NewRequest("GET", "/api/auth/me", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
