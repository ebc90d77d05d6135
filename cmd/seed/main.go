package main

import (
	"context"
	"log"
	"time"

	"github.com/greenmart/pos/internal/auth"
	"github.com/greenmart/pos/internal/config"
	"github.com/greenmart/pos/internal/db"
	"github.com/greenmart/pos/internal/models"
	"github.com/greenmart/pos/internal/repo"
)

var products = []models.Product{
	{Name: "Coca Cola 3L", Price: 2500, Category: "Bebidas", Stock: 20},
	{Name: "Papas Lays Clásicas", Price: 1200, Category: "Snacks", Stock: 15},
	{Name: "Leche Soprole Entera 1L", Price: 950, Category: "Lácteos", Stock: 30},
	{Name: "Pan Hallulla (1kg)", Price: 2000, Category: "Panadería", Stock: 10},
	{Name: "Queso Gouda Laminado (250g)", Price: 2800, Category: "Lácteos", Stock: 12},
	{Name: "Galletas Tritón", Price: 800, Category: "Snacks", Stock: 25},
	{Name: "Cerveza Escudo (Lata 470cc)", Price: 1000, Category: "Bebidas", Stock: 50},
	{Name: "Manzana Fuji (1kg)", Price: 1500, Category: "Frutas", Stock: 40},
}

func main() {
	cfg := config.Load()
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	database, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db open: %v", err)
	}

	if err := repo.Migrate(database); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	log.Println("clearing tables")
	for _, table := range []string{"order_items", "orders", "products", "categories"} {
		if err := database.Exec("DELETE FROM " + table).Error; err != nil {
			log.Fatalf("clear %s: %v", table, err)
		}
	}

	log.Println("seeding products")
	seen := map[string]bool{}
	for i := range products {
		if err := database.Create(&products[i]).Error; err != nil {
			log.Fatalf("create product: %v", err)
		}
		if !seen[products[i].Category] {
			seen[products[i].Category] = true
			if err := database.Create(&models.Category{Name: products[i].Category}).Error; err != nil {
				log.Fatalf("create category: %v", err)
			}
		}
	}

	authSvc := &auth.Service{DB: database}
	if _, err := authSvc.RegisterUser(ctx, "admin@greenmart.cl", config.EnvDefault("SEED_ADMIN_PASSWORD", "admin"), auth.RoleAdmin); err != nil {
		log.Printf("admin user: %v", err)
	}

	log.Printf("seeded %d products", len(products))
}
