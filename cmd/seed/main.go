package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"time"

	"github.com/lib/pq"

	"github.com/Maaz9703/maazweb-api/internal/config"
	"github.com/Maaz9703/maazweb-api/internal/db"
	"github.com/Maaz9703/maazweb-api/internal/hash"
	"github.com/Maaz9703/maazweb-api/internal/models"
	"github.com/Maaz9703/maazweb-api/internal/repo"
)

// Seeds an admin account and, with -demo, a small product catalog.
func main() {
	email := flag.String("email", "admin@example.com", "admin email")
	password := flag.String("password", "admin123", "admin password")
	demo := flag.Bool("demo", false, "also create demo products")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	gdb, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	r := &repo.GormRepo{DB: gdb}

	passwordHash, err := hash.HashPassword(*password)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	err = r.CreateUserIfNotExists(ctx, &models.User{
		Name:         "Admin",
		Email:        *email,
		PasswordHash: passwordHash,
		Role:         models.RoleAdmin,
	})
	switch {
	case errors.Is(err, repo.ErrUserAlreadyExists):
		if err := r.PromoteToAdmin(ctx, *email); err != nil {
			log.Fatalf("promote admin: %v", err)
		}
		log.Printf("existing user %s promoted to admin", *email)
	case err != nil:
		log.Fatalf("create admin: %v", err)
	default:
		log.Printf("admin %s created", *email)
	}

	if *demo {
		seedProducts(ctx, r)
	}
}

func seedProducts(ctx context.Context, r *repo.GormRepo) {
	products := []models.Product{
		{
			Title:       "Wireless Headphones",
			Description: "Over-ear bluetooth headphones with 30h battery life.",
			Price:       79.99,
			Stock:       25,
			Category:    "Electronics",
			Images:      pq.StringArray{},
		},
		{
			Title:       "Ceramic Coffee Mug",
			Description: "350ml stoneware mug, dishwasher safe.",
			Price:       12.50,
			Stock:       100,
			Category:    "Home",
			Images:      pq.StringArray{},
		},
		{
			Title:       "Running Shoes",
			Description: "Lightweight trainers for road running.",
			Price:       64.00,
			Stock:       40,
			Category:    "Sports",
			Images:      pq.StringArray{},
			QuantityDiscounts: []models.QuantityDiscount{
				{MinQty: 2, DiscountPercent: 10},
			},
		},
	}

	for i := range products {
		if err := r.CreateProduct(ctx, &products[i]); err != nil {
			log.Printf("seed product %q: %v", products[i].Title, err)
			continue
		}
		log.Printf("seeded product %q (id=%d)", products[i].Title, products[i].ID)
	}
}
