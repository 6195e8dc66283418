package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"tastebite/internal/domain"
	"tastebite/internal/service"
	"tastebite/internal/suggest"
)

// Suggester is the slice of the text-suggestion client the handlers
// consume. All methods degrade to canned text internally.
type Suggester interface {
	DishSummary(ctx context.Context, name, description string) string
	Reviews(ctx context.Context, restaurantName string, reviews []suggest.ReviewInput) suggest.ReviewSummary
	OrderNotes(ctx context.Context, dishNames []string) []string
	TasteProfile(ctx context.Context, orderedDishes []string) string
	PersonalizedPick(ctx context.Context, favoriteNames []string, all []suggest.RestaurantInfo) *suggest.Pick
}

type Handler struct {
	Catalog   service.CatalogServiceInterface
	Cart      service.CartServiceInterface
	Orders    service.OrderServiceInterface
	Addresses service.AddressServiceInterface
	Reviews   service.ReviewServiceInterface
	Favorites service.FavoriteServiceInterface
	Account   service.AccountServiceInterface
	Suggest   Suggester
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/restaurants", h.listRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/dishes", h.listDishes).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/reviews", h.listReviews).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/reviews", h.createReview).Methods("POST")

	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/items", h.addToCart).Methods("POST")
	r.HandleFunc("/api/cart/items/{dishId}", h.updateCartItem).Methods("PATCH")
	r.HandleFunc("/api/cart/items/{dishId}", h.removeCartItem).Methods("DELETE")

	r.HandleFunc("/api/orders", h.placeOrder).Methods("POST")
	r.HandleFunc("/api/orders", h.listOrders).Methods("GET")
	r.HandleFunc("/api/orders/cancel-reasons", h.cancelReasons).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/advance", h.advanceOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id}/cancel", h.cancelOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id}/qrcode", h.orderQRCode).Methods("GET")

	r.HandleFunc("/api/addresses", h.listAddresses).Methods("GET")
	r.HandleFunc("/api/addresses", h.createAddress).Methods("POST")
	r.HandleFunc("/api/addresses/{id}", h.updateAddress).Methods("PUT")
	r.HandleFunc("/api/addresses/{id}", h.deleteAddress).Methods("DELETE")

	r.HandleFunc("/api/favorites", h.listFavorites).Methods("GET")
	r.HandleFunc("/api/favorites/{restaurantId}/toggle", h.toggleFavorite).Methods("POST")

	r.HandleFunc("/api/auth/login", h.login).Methods("POST")
	r.HandleFunc("/api/auth/logout", h.logout).Methods("POST")
	r.HandleFunc("/api/auth/me", h.currentUser).Methods("GET")

	r.HandleFunc("/api/suggest/dishes/{dishId}/summary", h.suggestDishSummary).Methods("GET")
	r.HandleFunc("/api/suggest/restaurants/{id}/vibe", h.suggestRestaurantVibe).Methods("GET")
	r.HandleFunc("/api/suggest/order-notes", h.suggestOrderNotes).Methods("GET")
	r.HandleFunc("/api/suggest/taste-profile", h.suggestTasteProfile).Methods("GET")
	r.HandleFunc("/api/suggest/personalized-pick", h.suggestPersonalizedPick).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "tastebite",
	})
}

func (h *Handler) listRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Catalog.ListRestaurants()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	restaurant, err := h.Catalog.GetRestaurant(mux.Vars(r)["id"])
	if errors.Is(err, service.ErrRestaurantNotFound) {
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, restaurant)
}

func (h *Handler) listDishes(w http.ResponseWriter, r *http.Request) {
	dishes, err := h.Catalog.ListDishes(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, dishes)
}

type cartPayload struct {
	Items        []domain.CartItem `json:"items"`
	Subtotal     float64           `json:"subtotal"`
	RestaurantID string            `json:"restaurant_id,omitempty"`
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, cartPayload{
		Items:        h.Cart.Items(),
		Subtotal:     h.Cart.Subtotal(),
		RestaurantID: h.Cart.RestaurantID(),
	})
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		DishID       string `json:"dish_id"`
		RestaurantID string `json:"restaurant_id"`
		Confirmed    bool   `json:"confirmed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	dish, err := h.Catalog.GetDish(payload.DishID)
	if errors.Is(err, service.ErrDishNotFound) {
		http.Error(w, "Dish not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// The cart engine resets unconditionally on a restaurant switch, so
	// the destructive path is gated here: a cross-restaurant add must
	// carry the user's confirmation.
	current := h.Cart.RestaurantID()
	if current != "" && current != payload.RestaurantID && !payload.Confirmed {
		http.Error(w, "Cart holds items from another restaurant; confirm to replace it", http.StatusConflict)
		return
	}

	h.Cart.AddToCart(*dish, payload.RestaurantID)
	h.getCart(w, r)
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Delta int `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.Cart.UpdateQuantity(mux.Vars(r)["dishId"], payload.Delta)
	h.getCart(w, r)
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	h.Cart.RemoveFromCart(mux.Vars(r)["dishId"])
	h.getCart(w, r)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	h.Cart.Clear()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		AddressID     string `json:"address_id"`
		PaymentMethod string `json:"payment_method"`
		Note          string `json:"note"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Address selection is checkout's job, enforced before the order
	// engine is invoked.
	if _, err := h.Addresses.Get(payload.AddressID); err != nil {
		http.Error(w, "A delivery address must be selected", http.StatusBadRequest)
		return
	}

	restaurantName := ""
	if id := h.Cart.RestaurantID(); id != "" {
		if restaurant, err := h.Catalog.GetRestaurant(id); err == nil {
			restaurantName = restaurant.Name
		}
	}

	order, err := h.Orders.PlaceOrder(r.Context(), h.Cart.Items(), restaurantName, payload.PaymentMethod, payload.Note)
	if errors.Is(err, service.ErrEmptyCart) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Orders.List())
}

func (h *Handler) cancelReasons(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.CancelReasons)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.Get(mux.Vars(r)["id"])
	if errors.Is(err, service.ErrOrderNotFound) {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) advanceOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.AdvanceStatus(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, service.ErrTerminalStatus):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.Orders.CancelOrder(r.Context(), mux.Vars(r)["id"], payload.Reason)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, service.ErrEmptyCancelReason):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrNotCancellable):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) orderQRCode(w http.ResponseWriter, r *http.Request) {
	qr, err := h.Orders.QRCode(mux.Vars(r)["id"])
	if errors.Is(err, service.ErrOrderNotFound) {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qr)
}

func (h *Handler) listAddresses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Addresses.List())
}

func (h *Handler) createAddress(w http.ResponseWriter, r *http.Request) {
	var addr domain.Address
	if err := json.NewDecoder(r.Body).Decode(&addr); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.Addresses.Add(r.Context(), addr)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) updateAddress(w http.ResponseWriter, r *http.Request) {
	var addr domain.Address
	if err := json.NewDecoder(r.Body).Decode(&addr); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.Addresses.Update(r.Context(), mux.Vars(r)["id"], addr)
	if errors.Is(err, service.ErrAddressNotFound) {
		http.Error(w, "Address not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) deleteAddress(w http.ResponseWriter, r *http.Request) {
	err := h.Addresses.Delete(r.Context(), mux.Vars(r)["id"])
	if errors.Is(err, service.ErrAddressNotFound) {
		http.Error(w, "Address not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listReviews(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Reviews.ListByRestaurant(mux.Vars(r)["id"]))
}

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	var review domain.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	review.RestaurantID = mux.Vars(r)["id"]
	if user := h.Account.Current(); user != nil && review.UserName == "" {
		review.UserName = user.Name
		review.UserAvatar = user.Avatar
	}

	created, err := h.Reviews.Add(r.Context(), review)
	if errors.Is(err, service.ErrInvalidRating) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) listFavorites(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Favorites.List())
}

func (h *Handler) toggleFavorite(w http.ResponseWriter, r *http.Request) {
	restaurantID := mux.Vars(r)["restaurantId"]
	favorite := h.Favorites.Toggle(r.Context(), restaurantID)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"restaurant_id": restaurantID,
		"favorite":      favorite,
	})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.Account.Login(r.Context(), payload.Name, payload.Email)
	if errors.Is(err, service.ErrInvalidCredentials) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.Account.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	user := h.Account.Current()
	if user == nil {
		http.Error(w, "Not logged in", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) suggestDishSummary(w http.ResponseWriter, r *http.Request) {
	dish, err := h.Catalog.GetDish(mux.Vars(r)["dishId"])
	if errors.Is(err, service.ErrDishNotFound) {
		http.Error(w, "Dish not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	summary := h.Suggest.DishSummary(r.Context(), dish.Name, dish.Description)
	writeJSON(w, http.StatusOK, map[string]string{"summary": summary})
}

func (h *Handler) suggestRestaurantVibe(w http.ResponseWriter, r *http.Request) {
	restaurant, err := h.Catalog.GetRestaurant(mux.Vars(r)["id"])
	if errors.Is(err, service.ErrRestaurantNotFound) {
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	inputs := []suggest.ReviewInput{}
	for _, review := range h.Reviews.ListByRestaurant(restaurant.ID) {
		inputs = append(inputs, suggest.ReviewInput{Rating: review.Rating, Comment: review.Comment})
	}

	writeJSON(w, http.StatusOK, h.Suggest.Reviews(r.Context(), restaurant.Name, inputs))
}

func (h *Handler) suggestOrderNotes(w http.ResponseWriter, r *http.Request) {
	names := []string{}
	for _, item := range h.Cart.Items() {
		names = append(names, item.Name)
	}
	writeJSON(w, http.StatusOK, map[string][]string{"notes": h.Suggest.OrderNotes(r.Context(), names)})
}

func (h *Handler) suggestTasteProfile(w http.ResponseWriter, r *http.Request) {
	names := []string{}
	for _, order := range h.Orders.List() {
		for _, item := range order.Items {
			names = append(names, item.Name)
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"profile": h.Suggest.TasteProfile(r.Context(), names)})
}

func (h *Handler) suggestPersonalizedPick(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Catalog.ListRestaurants()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	favoriteNames := []string{}
	infos := []suggest.RestaurantInfo{}
	for _, restaurant := range restaurants {
		infos = append(infos, suggest.RestaurantInfo{
			Name:        restaurant.Name,
			Cuisine:     restaurant.Cuisine,
			Description: restaurant.Description,
		})
		if h.Favorites.IsFavorite(restaurant.ID) {
			favoriteNames = append(favoriteNames, restaurant.Name)
		}
	}

	pick := h.Suggest.PersonalizedPick(r.Context(), favoriteNames, infos)
	if pick == nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{"pick": nil})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"pick": pick})
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
