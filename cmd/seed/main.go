package main

import (
	"context"
	"errors"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/tender-marketplace/config"
	"github.com/oksasatya/tender-marketplace/internal/domain/entity"
	"github.com/oksasatya/tender-marketplace/internal/domain/repository"
	pginfra "github.com/oksasatya/tender-marketplace/internal/infrastructure/postgres"
	"github.com/oksasatya/tender-marketplace/pkg/helpers"
)

const demoPassword = "password123"

// seeds two demo companies and one open tender owned by the first
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)

	ctx := context.Background()
	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), 2, 1, time.Hour)
	if err != nil {
		logger.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	seed := []entity.User{
		{Email: "buyer@example.com", Name: "Demo Buyer", CompanyName: "Acme Construction", Industry: "construction", IndustryDescription: "Residential and commercial builds"},
		{Email: "supplier@example.com", Name: "Demo Supplier", CompanyName: "Roofline Supplies", Industry: "materials", IndustryDescription: "Roofing and insulation materials"},
	}
	users := pginfra.NewUserRepository(pool)
	var owner *entity.User
	for i := range seed {
		u, err := ensureUser(ctx, users, &seed[i])
		if err != nil {
			logger.Fatalf("failed to seed user %s: %v", seed[i].Email, err)
		}
		logger.WithFields(logrus.Fields{"id": u.ID, "email": u.Email, "password": demoPassword}).Info("seeded user")
		if owner == nil {
			owner = u
		}
	}

	tenders := pginfra.NewTenderRepository(pool)
	existing, err := tenders.ListByCreator(ctx, owner.ID)
	if err != nil {
		logger.Fatalf("failed to list tenders: %v", err)
	}
	if len(existing) > 0 {
		logger.Info("demo tender already present")
		return
	}
	t := &entity.Tender{
		CreatorID:   owner.ID,
		Title:       "Warehouse roof replacement",
		Description: "Replace 1200 m2 of corrugated roofing including insulation",
		Budget:      85000,
		Deadline:    time.Now().AddDate(0, 1, 0).Truncate(24 * time.Hour),
	}
	if err := tenders.Create(ctx, t); err != nil {
		logger.Fatalf("failed to seed tender: %v", err)
	}
	logger.WithField("id", t.ID).Info("seeded tender")
}

// ensureUser returns the existing user with u's email, creating it otherwise.
func ensureUser(ctx context.Context, users repository.UserRepository, u *entity.User) (*entity.User, error) {
	existing, err := users.GetByEmail(ctx, u.Email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	hash, err := helpers.HashPassword(demoPassword)
	if err != nil {
		return nil, err
	}
	u.Password = hash
	if err := users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
