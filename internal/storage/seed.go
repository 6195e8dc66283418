package storage

import (
	"fmt"

	"tastebite/internal/domain"
)

var seedRestaurants = []domain.Restaurant{
	{ID: "1", Name: "Burger Haven", Description: "Experience the ultimate gourmet burger journey with our signature aged wagyu patties and secret house sauces.", Cuisine: "American • Burgers", Rating: 4.8, DeliveryTime: "20-30 min", MinOrder: 15, Image: "https://images.unsplash.com/photo-1571091718767-18b5b1457add?w=800", Featured: true},
	{ID: "2", Name: "Sushi Zen", Description: "Authentic Edo-style sushi prepared by master chefs with daily fresh imports from the world's best fish markets.", Cuisine: "Japanese • Sushi", Rating: 4.9, DeliveryTime: "30-45 min", MinOrder: 25, Image: "https://images.unsplash.com/photo-1579871494447-9811cf80d66c?w=800", Featured: true},
	{ID: "3", Name: "Pasta Palace", Description: "Fresh, hand-rolled pasta made every morning, served with traditional family recipes that have crossed oceans.", Cuisine: "Italian • Pasta", Rating: 4.6, DeliveryTime: "25-35 min", MinOrder: 20, Image: "https://images.unsplash.com/photo-1473093226795-af9932fe5856?w=800", Featured: true},
	{ID: "4", Name: "Taco Fiesta", Description: "Vibrant street-style tacos and traditional Mexican favorites served with a modern, spicy twist.", Cuisine: "Mexican • Street Food", Rating: 4.5, DeliveryTime: "15-25 min", MinOrder: 10, Image: "https://images.unsplash.com/photo-1504674900247-0877df9cc836?w=800", Featured: true},
}

var seedDishes = []domain.Dish{
	{ID: "d1", RestaurantID: "1", Name: "Classic Cheeseburger", Description: "Juicy beef patty with aged cheddar", Price: 12.99, Image: "https://picsum.photos/seed/b1/200/200", Category: "Main"},
	{ID: "d2", RestaurantID: "1", Name: "Bacon Deluxe", Description: "Crispy bacon and smoky BBQ sauce", Price: 14.50, Image: "https://picsum.photos/seed/b2/200/200", Category: "Main"},
	{ID: "d3", RestaurantID: "1", Name: "Truffle Fries", Description: "Hand-cut fries with truffle oil", Price: 6.99, Image: "https://picsum.photos/seed/b3/200/200", Category: "Sides"},
	{ID: "d4", RestaurantID: "2", Name: "Dragon Roll", Description: "Tempura shrimp with avocado topping", Price: 18.00, Image: "https://picsum.photos/seed/s1/200/200", Category: "Sushi"},
	{ID: "d5", RestaurantID: "2", Name: "Salmon Nigiri", Description: "Fresh Atlantic salmon over vinegared rice", Price: 12.00, Image: "https://picsum.photos/seed/s2/200/200", Category: "Nigiri"},
	{ID: "d6", RestaurantID: "3", Name: "Truffle Carbonara", Description: "Creamy pasta with pecorino and guanciale", Price: 16.99, Image: "https://picsum.photos/seed/p1/200/200", Category: "Pasta"},
	{ID: "d7", RestaurantID: "4", Name: "Al Pastor Tacos", Description: "Marinated pork with pineapple", Price: 9.99, Image: "https://picsum.photos/seed/t1/200/200", Category: "Tacos"},
}

// SeedCatalog inserts the starter catalog when the restaurants table is
// empty. Existing data is left untouched.
func (r *PostgresCatalog) SeedCatalog() error {
	var count int
	if err := r.DB.QueryRow("SELECT COUNT(*) FROM restaurants").Scan(&count); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, rest := range seedRestaurants {
		_, err := r.DB.Exec(`
			INSERT INTO restaurants (id, name, description, cuisine, rating, delivery_time, min_order, image, featured)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			rest.ID, rest.Name, rest.Description, rest.Cuisine, rest.Rating,
			rest.DeliveryTime, rest.MinOrder, rest.Image, rest.Featured)
		if err != nil {
			return fmt.Errorf("seed restaurant %s: %w", rest.ID, err)
		}
	}

	for _, dish := range seedDishes {
		_, err := r.DB.Exec(`
			INSERT INTO dishes (id, restaurant_id, name, description, price, image, category)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			dish.ID, dish.RestaurantID, dish.Name, dish.Description, dish.Price, dish.Image, dish.Category)
		if err != nil {
			return fmt.Errorf("seed dish %s: %w", dish.ID, err)
		}
	}

	return nil
}
