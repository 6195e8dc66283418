package main

import (
	"context"
	"log"
	"os"

	"tastebite/config"
	httpapi "tastebite/internal/api/http"
	"tastebite/internal/service"
	"tastebite/internal/storage"
	"tastebite/internal/suggest"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	kafkaWriter := config.NewKafkaWriter("order-events")
	defer kafkaWriter.Close()

	catalogRepo := storage.NewPostgresCatalog(db)
	if err := catalogRepo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure catalog schema:", err)
	}
	if err := catalogRepo.SeedCatalog(); err != nil {
		log.Printf("WARNING: catalog seed failed: %v", err)
	}

	baseURL := os.Getenv("PUBLIC_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	store := storage.NewRedisStore(rdb)
	ids := service.NewDefaultIDProvider()
	publisher := storage.NewKafkaOrderPublisher(kafkaWriter)

	cartSvc := service.NewCartService()
	orderSvc := service.NewOrderService(store, cartSvc, ids, publisher, service.DefaultQRGenerator{BaseURL: baseURL})
	addressSvc := service.NewAddressService(store, ids)
	reviewSvc := service.NewReviewService(store, ids)
	favoriteSvc := service.NewFavoriteService(store)
	accountSvc := service.NewAccountService(store)

	// Each collection hydrates independently: a failed load starts that
	// collection empty without blocking the others.
	ctx := context.Background()
	hydrators := map[string]interface{ Hydrate(context.Context) error }{
		"orders":    orderSvc,
		"addresses": addressSvc,
		"reviews":   reviewSvc,
		"favorites": favoriteSvc,
		"user":      accountSvc,
	}
	for name, h := range hydrators {
		if err := h.Hydrate(ctx); err != nil {
			log.Printf("WARNING: failed to hydrate %s, starting empty: %v", name, err)
		}
	}

	handler := &httpapi.Handler{
		Catalog:   service.NewCatalogService(catalogRepo),
		Cart:      cartSvc,
		Orders:    orderSvc,
		Addresses: addressSvc,
		Reviews:   reviewSvc,
		Favorites: favoriteSvc,
		Account:   accountSvc,
		Suggest:   suggest.NewClient(config.SuggestServiceURL(), nil),
	}

	httpapi.StartServer(config.HTTPAddr(), httpapi.NewRouter(handler))
}
