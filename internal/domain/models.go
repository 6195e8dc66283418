package domain

import "time"

type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

type Restaurant struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Cuisine      string  `json:"cuisine"`
	Rating       float64 `json:"rating"`
	DeliveryTime string  `json:"delivery_time"`
	MinOrder     float64 `json:"min_order"`
	Image        string  `json:"image"`
	Featured     bool    `json:"featured"`
}

type Dish struct {
	ID           string  `json:"id"`
	RestaurantID string  `json:"restaurant_id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Image        string  `json:"image"`
	Category     string  `json:"category"`
}

type CartItem struct {
	Dish
	Quantity int `json:"quantity"`
}

type Address struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	FullAddress string `json:"full_address"`
	Phone       string `json:"phone"`
	IsDefault   bool   `json:"is_default"`
}

type Review struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	UserName     string    `json:"user_name"`
	UserAvatar   string    `json:"user_avatar"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
}

type Order struct {
	ID             string      `json:"id"`
	Items          []CartItem  `json:"items"`
	Total          float64     `json:"total"`
	CreatedAt      time.Time   `json:"created_at"`
	Status         OrderStatus `json:"status"`
	RestaurantName string      `json:"restaurant_name"`
	PaymentMethod  string      `json:"payment_method"`
	Note           string      `json:"note,omitempty"`
	CancelReason   string      `json:"cancel_reason,omitempty"`
}

type OrderEvent struct {
	Type           string    `json:"type"`
	OrderID        string    `json:"order_id"`
	RestaurantName string    `json:"restaurant_name"`
	Status         string    `json:"status"`
	Total          float64   `json:"total"`
	Timestamp      time.Time `json:"timestamp"`
}
