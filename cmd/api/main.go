package main

import (
	"context"
	"log"
	"time"

	"freight-compare/internal/config"
	"freight-compare/internal/modules/quotes"
	"freight-compare/internal/modules/ranking"
	"freight-compare/pkg/distance"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// requestValidator adapts validator/v10 to echo's Validator interface.
type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatalf("DATABASE_URL not set. Please export DATABASE_URL before running.")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect db: %v", err)
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("database ping failed: %v", err)
	}

	repo := quotes.NewRepository(pool)
	distClient := distance.NewClient(cfg.DistanceAPIURL, cfg.DistanceAPIKey)

	// Accounts with contractual classification exceptions plug in here;
	// everyone else keeps the source classification.
	policyFor := func(customerID string) ranking.ClassificationPolicy {
		return ranking.SourcePolicy{}
	}

	svc := quotes.NewService(repo, distClient, policyFor,
		time.Duration(cfg.QuoteCacheTTLSeconds)*time.Second)
	handler := quotes.NewHandler(svc)

	e := echo.New()
	e.Validator = &requestValidator{validate: validator.New()}
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	if cfg.ClientOrigin != "" {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: []string{cfg.ClientOrigin},
		}))
	}

	api := e.Group("/api")
	handler.RegisterRoutes(api)

	log.Fatal(e.Start(":" + cfg.ServerPort))
}
