package main

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"fintrack/internal/auth"
	"fintrack/internal/config"
	"fintrack/internal/database"
	"fintrack/internal/handlers"
	"fintrack/internal/summary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.New(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	repo := database.NewRepository(db)
	authSvc := auth.NewService(repo, time.Duration(cfg.Auth.SessionTTLHours)*time.Hour)
	summarySvc := summary.NewService(repo)

	h := handlers.New(repo, authSvc, summarySvc)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Get("/api/health", h.Health)
	r.Post("/api/register", h.Register)
	r.Post("/api/login", h.Login)

	// Everything below requires a session token.
	r.Group(func(r chi.Router) {
		r.Use(authSvc.RequireAuth)

		r.Post("/api/logout", h.Logout)
		r.Get("/api/me", h.Me)

		r.Get("/api/accounts", h.ListAccounts)
		r.Post("/api/accounts", h.CreateAccount)
		r.Post("/api/accounts/bulk-delete", h.BulkDeleteAccounts)
		r.Get("/api/accounts/{id}", h.GetAccount)
		r.Patch("/api/accounts/{id}", h.RenameAccount)
		r.Delete("/api/accounts/{id}", h.DeleteAccount)

		r.Get("/api/categories", h.ListCategories)
		r.Post("/api/categories", h.CreateCategory)
		r.Post("/api/categories/bulk-delete", h.BulkDeleteCategories)
		r.Get("/api/categories/{id}", h.GetCategory)
		r.Patch("/api/categories/{id}", h.RenameCategory)
		r.Delete("/api/categories/{id}", h.DeleteCategory)

		r.Get("/api/transactions", h.ListTransactions)
		r.Post("/api/transactions", h.CreateTransaction)
		r.Post("/api/transactions/bulk-delete", h.BulkDeleteTransactions)
		r.Get("/api/transactions/{id}", h.GetTransaction)
		r.Patch("/api/transactions/{id}", h.UpdateTransaction)
		r.Delete("/api/transactions/{id}", h.DeleteTransaction)

		r.Get("/api/summary", h.GetSummary)
	})

	log.Printf("Server starting on http://localhost:%s", cfg.Server.Port)
	if err := http.ListenAndServe(":"+cfg.Server.Port, r); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
