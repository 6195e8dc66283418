package storage

import (
	"database/sql"
	"fmt"

	"tastebite/internal/domain"
	"tastebite/internal/service"
)

// PostgresCatalog serves the read-only restaurant/dish reference data.
type PostgresCatalog struct {
	DB *sql.DB
}

func NewPostgresCatalog(db *sql.DB) *PostgresCatalog {
	return &PostgresCatalog{DB: db}
}

func (r *PostgresCatalog) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS restaurants (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			cuisine TEXT NOT NULL DEFAULT '',
			rating NUMERIC NOT NULL DEFAULT 0,
			delivery_time TEXT NOT NULL DEFAULT '',
			min_order NUMERIC NOT NULL DEFAULT 0,
			image TEXT NOT NULL DEFAULT '',
			featured BOOLEAN NOT NULL DEFAULT FALSE
		)`,
		`CREATE TABLE IF NOT EXISTS dishes (
			id TEXT PRIMARY KEY,
			restaurant_id TEXT NOT NULL REFERENCES restaurants(id),
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price NUMERIC NOT NULL,
			image TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT ''
		)`,
	}

	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}

	return nil
}

func (r *PostgresCatalog) ListRestaurants() ([]domain.Restaurant, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, description, cuisine, rating, delivery_time, min_order, image, featured
		FROM restaurants
		ORDER BY featured DESC, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := []domain.Restaurant{}
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.Description, &rest.Cuisine,
			&rest.Rating, &rest.DeliveryTime, &rest.MinOrder, &rest.Image, &rest.Featured); err != nil {
			continue
		}
		restaurants = append(restaurants, rest)
	}

	return restaurants, nil
}

func (r *PostgresCatalog) GetRestaurant(id string) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.DB.QueryRow(`
		SELECT id, name, description, cuisine, rating, delivery_time, min_order, image, featured
		FROM restaurants
		WHERE id = $1`, id).
		Scan(&rest.ID, &rest.Name, &rest.Description, &rest.Cuisine,
			&rest.Rating, &rest.DeliveryTime, &rest.MinOrder, &rest.Image, &rest.Featured)
	if err == sql.ErrNoRows {
		return nil, service.ErrRestaurantNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *PostgresCatalog) ListDishes(restaurantID string) ([]domain.Dish, error) {
	rows, err := r.DB.Query(`
		SELECT id, restaurant_id, name, description, price, image, category
		FROM dishes
		WHERE restaurant_id = $1
		ORDER BY category, name`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dishes := []domain.Dish{}
	for rows.Next() {
		var dish domain.Dish
		if err := rows.Scan(&dish.ID, &dish.RestaurantID, &dish.Name, &dish.Description,
			&dish.Price, &dish.Image, &dish.Category); err != nil {
			continue
		}
		dishes = append(dishes, dish)
	}

	return dishes, nil
}

func (r *PostgresCatalog) GetDish(dishID string) (*domain.Dish, error) {
	var dish domain.Dish
	err := r.DB.QueryRow(`
		SELECT id, restaurant_id, name, description, price, image, category
		FROM dishes
		WHERE id = $1`, dishID).
		Scan(&dish.ID, &dish.RestaurantID, &dish.Name, &dish.Description,
			&dish.Price, &dish.Image, &dish.Category)
	if err == sql.ErrNoRows {
		return nil, service.ErrDishNotFound
	}
	if err != nil {
		return nil, err
	}
	return &dish, nil
}

var _ service.CatalogRepository = (*PostgresCatalog)(nil)
